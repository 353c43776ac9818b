package expense_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/httpx"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    expense.CreateParams
		setupMock func(repo *expense.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: expense.CreateParams{TipoSaida: "Ração", Valor: 180.00},
			setupMock: func(repo *expense.MockRepository) {
				repo.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *expense.Expense) error {
						e.ID = 6
						return nil
					})
			},
		},
		{
			name:    "MissingTipoSaida",
			params:  expense.CreateParams{Valor: 180.00},
			wantErr: httpx.ErrValidation,
		},
		{
			name:    "NonPositiveValor",
			params:  expense.CreateParams{TipoSaida: "Ração", Valor: 0},
			wantErr: httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := expense.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(6), got.ID)
			assert.Nil(t, got.DataPagamento)
		})
	}
}
