package sale

import (
	"context"
	"time"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=sale
type Repository interface {
	ListSales(ctx context.Context) ([]*Sale, error)
	CreateSale(ctx context.Context, s *Sale) error
	UpdateSale(ctx context.Context, s *Sale) error
	DeleteSale(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ClienteID          int64
	ProdutoNome        string
	DataVenda          time.Time
	ValorTotal         float64
	Peso               *float64
	DataPagamento      *time.Time
	DataVencimento     *time.Time
	PrecoManual        *float64
	ResponsavelVendaID int64
}

func (p CreateParams) validate() error {
	if p.ClienteID == 0 || p.ProdutoNome == "" || p.DataVenda.IsZero() ||
		p.ValorTotal <= 0 || p.ResponsavelVendaID == 0 {
		return httpx.Wrap(httpx.ErrValidation, "Cliente, produto, data, valor e vendedor responsável são obrigatórios.")
	}

	return nil
}

func (p CreateParams) toSale() *Sale {
	return &Sale{
		ClienteID:          p.ClienteID,
		ProdutoNome:        p.ProdutoNome,
		DataVenda:          p.DataVenda,
		ValorTotal:         p.ValorTotal,
		Peso:               p.Peso,
		DataPagamento:      p.DataPagamento,
		DataVencimento:     p.DataVencimento,
		PrecoManual:        p.PrecoManual,
		ResponsavelVendaID: p.ResponsavelVendaID,
	}
}

func (s *Service) List(ctx context.Context) ([]*Sale, error) {
	return s.repo.ListSales(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Sale, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	venda := params.toSale()
	if err := s.repo.CreateSale(ctx, venda); err != nil {
		return nil, err
	}

	return venda, nil
}

func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (*Sale, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	venda := params.toSale()
	venda.ID = id

	if err := s.repo.UpdateSale(ctx, venda); err != nil {
		return nil, err
	}

	return venda, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteSale(ctx, id)
}
