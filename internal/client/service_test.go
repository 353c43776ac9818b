package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/client"
	"github.com/caipirao/caipirao/internal/httpx"
)

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		params    client.CreateParams
		setupMock func(repo *client.MockRepository)
		wantErr   error
	}{
		{
			name:   "Success",
			params: client.CreateParams{Nome: "Maria Souza", Contato: "62999990000"},
			setupMock: func(repo *client.MockRepository) {
				repo.EXPECT().
					CreateClient(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *client.Client) error {
						c.ID = 11
						return nil
					})
			},
		},
		{
			name:    "MissingNome",
			params:  client.CreateParams{Contato: "62999990000"},
			wantErr: httpx.ErrValidation,
		},
		{
			name:    "MissingContato",
			params:  client.CreateParams{Nome: "Maria Souza"},
			wantErr: httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := client.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, err := client.NewService(repo).Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(11), got.ID)
			assert.Equal(t, tt.params.Nome, got.Nome)
		})
	}
}

func TestService_CreateBatch(t *testing.T) {
	t.Run("AllRowsInserted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := client.NewMockRepository(ctrl)
		repo.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		got, err := client.NewService(repo).CreateBatch(context.Background(), []client.CreateParams{
			{Nome: "Maria", Contato: "629"},
			{Nome: "João", Contato: "628"},
		})

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("OneBadRowRejectsWholeFile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// The invalid second row must fail validation before any insert happens.
		repo := client.NewMockRepository(ctrl)

		got, err := client.NewService(repo).CreateBatch(context.Background(), []client.CreateParams{
			{Nome: "Maria", Contato: "629"},
			{Nome: "", Contato: "628"},
		})

		assert.ErrorIs(t, err, httpx.ErrValidation)
		assert.Nil(t, got)
	})
}
