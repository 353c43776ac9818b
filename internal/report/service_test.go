package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/httpx"
)

func validRange() Range {
	return Range{
		Inicio: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Fim:    time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_RangedReportsRequireDates(t *testing.T) {
	tests := []struct {
		name string
		call func(svc *Service, r Range) error
	}{
		{
			name: "SalesByDay",
			call: func(svc *Service, r Range) error {
				_, err := svc.SalesByDay(context.Background(), r)
				return err
			},
		},
		{
			name: "ProductRanking",
			call: func(svc *Service, r Range) error {
				_, err := svc.ProductRanking(context.Background(), r)
				return err
			},
		},
		{
			name: "ClientRanking",
			call: func(svc *Service, r Range) error {
				_, err := svc.ClientRanking(context.Background(), r)
				return err
			},
		},
		{
			name: "SellerProductivity",
			call: func(svc *Service, r Range) error {
				_, err := svc.SellerProductivity(context.Background(), r)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: the repository must not be reached.
			svc := NewService(NewMockRepository(ctrl))

			assert.ErrorIs(t, tt.call(svc, Range{}), httpx.ErrValidation)
			assert.ErrorIs(t, tt.call(svc, Range{Inicio: validRange().Inicio}), httpx.ErrValidation)
			assert.ErrorIs(t, tt.call(svc, Range{Fim: validRange().Fim}), httpx.ErrValidation)
		})
	}
}

func TestService_ClientActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	repo.EXPECT().ClientActivity(gomock.Any()).Return(&Activity{Ativos: 3, Inativos: 1}, nil)

	got, err := NewService(repo).ClientActivity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.Ativos)
	assert.Equal(t, 1, got.Inativos)
}

func TestService_SalesByDayDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := validRange()
	rows := []*DailySales{{Dia: r.Inicio, TotalVendas: 150, PesoTotal: 12, Transacoes: 3}}

	repo := NewMockRepository(ctrl)
	repo.EXPECT().SalesByDay(gomock.Any(), r).Return(rows, nil)

	got, err := NewService(repo).SalesByDay(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestService_SellerProductivityDelegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := validRange()
	rows := []*SellerProductivity{
		{VendedorID: 2, VendedorNome: "Ana", TotalVendas: 500, NumeroVendas: 4, TicketMedio: 125},
		{VendedorID: 5, VendedorNome: "Rui", TotalVendas: 0, NumeroVendas: 0, TicketMedio: 0},
	}

	repo := NewMockRepository(ctrl)
	repo.EXPECT().SellerProductivity(gomock.Any(), r).Return(rows, nil)

	got, err := NewService(repo).SellerProductivity(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestRange_Empty(t *testing.T) {
	assert.True(t, Range{}.Empty())
	assert.True(t, Range{Inicio: validRange().Inicio}.Empty())
	assert.True(t, Range{Fim: validRange().Fim}.Empty())
	assert.False(t, validRange().Empty())
}
