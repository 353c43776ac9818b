package expense

import (
	"context"
	"time"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	ListExpenses(ctx context.Context) ([]*Expense, error)
	CreateExpense(ctx context.Context, e *Expense) error
	UpdateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	TipoSaida            string
	Discriminacao        string
	NomeRecebedor        string
	DataPagamento        *time.Time
	DataVencimento       *time.Time
	FormaPagamento       string
	Valor                float64
	ResponsavelPagamento string
}

func (p CreateParams) validate() error {
	if p.TipoSaida == "" || p.Valor <= 0 {
		return httpx.Wrap(httpx.ErrValidation, "Tipo de saída e Valor são obrigatórios.")
	}

	return nil
}

func (p CreateParams) toExpense() *Expense {
	return &Expense{
		TipoSaida:            p.TipoSaida,
		Discriminacao:        p.Discriminacao,
		NomeRecebedor:        p.NomeRecebedor,
		DataPagamento:        p.DataPagamento,
		DataVencimento:       p.DataVencimento,
		FormaPagamento:       p.FormaPagamento,
		Valor:                p.Valor,
		ResponsavelPagamento: p.ResponsavelPagamento,
	}
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	e := params.toExpense()
	if err := s.repo.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Update(ctx context.Context, id int64, params CreateParams) (*Expense, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	e := params.toExpense()
	e.ID = id

	if err := s.repo.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteExpense(ctx, id)
}
