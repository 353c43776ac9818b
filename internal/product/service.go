package product

import (
	"context"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	CreateProduct(ctx context.Context, p *Product) error
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Nome          string
	Descricao     string
	Preco         float64
	UnidadeMedida UnidadeMedida
}

func (p CreateParams) validate() error {
	if p.Nome == "" || p.Preco <= 0 || p.UnidadeMedida == "" {
		return httpx.Wrap(httpx.ErrValidation, "Os campos 'nome', 'preco' e 'unidade_medida' são obrigatórios.")
	}

	if !p.UnidadeMedida.Valid() {
		return httpx.Wrap(httpx.ErrValidation, "A unidade de medida deve ser 'kg' ou 'un'.")
	}

	return nil
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := &Product{
		Nome:          params.Nome,
		Descricao:     params.Descricao,
		Preco:         params.Preco,
		UnidadeMedida: params.UnidadeMedida,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := &Product{
		ID:            id,
		Nome:          params.Nome,
		Descricao:     params.Descricao,
		Preco:         params.Preco,
		UnidadeMedida: params.UnidadeMedida,
	}
	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}
