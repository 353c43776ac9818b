package sale_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/sale"
)

func TestService_Create(t *testing.T) {
	dataVenda := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	valid := sale.CreateParams{
		ClienteID:          3,
		ProdutoNome:        "Frango Caipira",
		DataVenda:          dataVenda,
		ValorTotal:         25.00,
		ResponsavelVendaID: 2,
	}

	tests := []struct {
		name      string
		params    sale.CreateParams
		setupMock func(repo *sale.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: valid,
			setupMock: func(repo *sale.MockRepository) {
				repo.EXPECT().
					CreateSale(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, v *sale.Sale) error {
						v.ID = 8
						return nil
					})
			},
		},
		{
			name: "MissingCliente",
			params: func() sale.CreateParams {
				p := valid
				p.ClienteID = 0
				return p
			}(),
			wantErr: httpx.ErrValidation,
		},
		{
			name: "MissingProduto",
			params: func() sale.CreateParams {
				p := valid
				p.ProdutoNome = ""
				return p
			}(),
			wantErr: httpx.ErrValidation,
		},
		{
			name: "NonPositiveValor",
			params: func() sale.CreateParams {
				p := valid
				p.ValorTotal = 0
				return p
			}(),
			wantErr: httpx.ErrValidation,
		},
		{
			name: "MissingResponsavel",
			params: func() sale.CreateParams {
				p := valid
				p.ResponsavelVendaID = 0
				return p
			}(),
			wantErr: httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := sale.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := sale.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(8), got.ID)
			assert.False(t, got.Paid())
		})
	}
}

func TestService_UpdateSetsPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paidAt := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *sale.Sale) error {
			assert.Equal(t, int64(8), v.ID)
			assert.True(t, v.Paid())
			return nil
		})

	got, err := sale.NewService(repo).Update(context.Background(), 8, sale.CreateParams{
		ClienteID:          3,
		ProdutoNome:        "Frango Caipira",
		DataVenda:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		ValorTotal:         25.00,
		DataPagamento:      &paidAt,
		ResponsavelVendaID: 2,
	})

	require.NoError(t, err)
	assert.True(t, got.Paid())
}
