package report

import (
	"context"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=report
type Repository interface {
	ClientActivity(ctx context.Context) (*Activity, error)
	SalesByDay(ctx context.Context, r Range) ([]*DailySales, error)
	ProductRanking(ctx context.Context, r Range) ([]*ProductRank, error)
	ClientRanking(ctx context.Context, r Range) ([]*ClientRank, error)
	SellerProductivity(ctx context.Context, r Range) ([]*SellerProductivity, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func requireRange(r Range) error {
	if r.Empty() {
		return httpx.Wrap(httpx.ErrValidation, "As datas de início e fim são obrigatórias.")
	}

	return nil
}

func (s *Service) ClientActivity(ctx context.Context) (*Activity, error) {
	return s.repo.ClientActivity(ctx)
}

func (s *Service) SalesByDay(ctx context.Context, r Range) ([]*DailySales, error) {
	if err := requireRange(r); err != nil {
		return nil, err
	}

	return s.repo.SalesByDay(ctx, r)
}

func (s *Service) ProductRanking(ctx context.Context, r Range) ([]*ProductRank, error) {
	if err := requireRange(r); err != nil {
		return nil, err
	}

	return s.repo.ProductRanking(ctx, r)
}

func (s *Service) ClientRanking(ctx context.Context, r Range) ([]*ClientRank, error) {
	if err := requireRange(r); err != nil {
		return nil, err
	}

	return s.repo.ClientRanking(ctx, r)
}

func (s *Service) SellerProductivity(ctx context.Context, r Range) ([]*SellerProductivity, error) {
	if err := requireRange(r); err != nil {
		return nil, err
	}

	return s.repo.SellerProductivity(ctx, r)
}
