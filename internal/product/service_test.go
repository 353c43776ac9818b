package product_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/product"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    product.CreateParams
		setupMock func(repo *product.MockRepository)
		wantErr   error
	}{
		{
			name: "Success",
			params: product.CreateParams{
				Nome:          "Frango Caipira",
				Preco:         12.50,
				UnidadeMedida: product.UnidadeKg,
			},
			setupMock: func(repo *product.MockRepository) {
				repo.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *product.Product) error {
						p.ID = 4
						return nil
					})
			},
		},
		{
			name:    "MissingNome",
			params:  product.CreateParams{Preco: 12.50, UnidadeMedida: product.UnidadeKg},
			wantErr: httpx.ErrValidation,
		},
		{
			name:    "NonPositivePreco",
			params:  product.CreateParams{Nome: "Frango", Preco: 0, UnidadeMedida: product.UnidadeKg},
			wantErr: httpx.ErrValidation,
		},
		{
			name: "InvalidUnidade",
			params: product.CreateParams{
				Nome:          "Frango",
				Preco:         12.50,
				UnidadeMedida: product.UnidadeMedida("litro"),
			},
			wantErr: httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := product.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), got.ID)
			assert.Equal(t, product.UnidadeKg, got.UnidadeMedida)
		})
	}
}
