package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/user"
)

func newTestService(t *testing.T, repo *auth.MockRepository) (*auth.Service, *auth.Tokens) {
	t.Helper()

	tokens := auth.NewTokens("test-secret", 8*time.Hour)
	hasher := auth.NewHasher(bcrypt.MinCost)

	return auth.NewService(repo, tokens, hasher), tokens
}

func seededUser(t *testing.T) *user.User {
	t.Helper()

	hash, err := auth.NewHasher(bcrypt.MinCost).Hash("secret123")
	require.NoError(t, err)

	return &user.User{
		ID:        3,
		Email:     "a@b.com",
		Nickname:  "ana",
		Telefone:  "11999990000",
		SenhaHash: hash,
		Perfil:    user.PerfilUser,
	}
}

func TestService_Login(t *testing.T) {
	seed := seededUser(t)

	type testCase struct {
		name          string
		identificador string
		senha         string
		setupMock     func(repo *auth.MockRepository)
		wantErr       error
	}

	tests := []testCase{
		{
			name:          "ByEmail",
			identificador: "a@b.com",
			senha:         "secret123",
			setupMock: func(repo *auth.MockRepository) {
				repo.EXPECT().FindByIdentifier(gomock.Any(), "a@b.com").Return(seed, nil)
			},
		},
		{
			name:          "ByNickname",
			identificador: "ana",
			senha:         "secret123",
			setupMock: func(repo *auth.MockRepository) {
				repo.EXPECT().FindByIdentifier(gomock.Any(), "ana").Return(seed, nil)
			},
		},
		{
			name:          "ByTelefone",
			identificador: "11999990000",
			senha:         "secret123",
			setupMock: func(repo *auth.MockRepository) {
				repo.EXPECT().FindByIdentifier(gomock.Any(), "11999990000").Return(seed, nil)
			},
		},
		{
			name:          "UnknownIdentifier",
			identificador: "nobody",
			senha:         "secret123",
			setupMock: func(repo *auth.MockRepository) {
				repo.EXPECT().FindByIdentifier(gomock.Any(), "nobody").
					Return(nil, httpx.Wrap(httpx.ErrNotFound, "não encontrado"))
			},
			wantErr: httpx.ErrUnauthorized,
		},
		{
			name:          "WrongPassword",
			identificador: "a@b.com",
			senha:         "wrong",
			setupMock: func(repo *auth.MockRepository) {
				repo.EXPECT().FindByIdentifier(gomock.Any(), "a@b.com").Return(seed, nil)
			},
			wantErr: httpx.ErrUnauthorized,
		},
		{
			name:          "MissingFields",
			identificador: "",
			senha:         "",
			wantErr:       httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc, tokens := newTestService(t, repo)
			token, err := svc.Login(context.Background(), tt.identificador, tt.senha)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)

				return
			}

			require.NoError(t, err)

			claims, err := tokens.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, seed.ID, claims.UserID)
			assert.Equal(t, seed.Perfil, claims.Perfil)
		})
	}
}

func TestService_Login_SameMessageForBothFailures(t *testing.T) {
	// The caller must not be able to distinguish an unknown identifier from a
	// wrong password.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().FindByIdentifier(gomock.Any(), "nobody").
		Return(nil, httpx.Wrap(httpx.ErrNotFound, "não encontrado"))
	repo.EXPECT().FindByIdentifier(gomock.Any(), "a@b.com").
		Return(seededUser(t), nil)

	svc, _ := newTestService(t, repo)

	_, errUnknown := svc.Login(context.Background(), "nobody", "secret123")
	_, errWrongPw := svc.Login(context.Background(), "a@b.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestService_Register(t *testing.T) {
	type testCase struct {
		name       string
		email      string
		senha      string
		setupMock  func(repo *auth.MockRepository, tx *auth.MockRegisterTx)
		wantPerfil user.Perfil
		wantErr    error
	}

	tests := []testCase{
		{
			name:  "FirstUserBecomesAdmin",
			email: "founder@example.com",
			senha: "secret123",
			setupMock: func(repo *auth.MockRepository, tx *auth.MockRegisterTx) {
				repo.EXPECT().BeginRegister(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CountUsers(gomock.Any()).Return(0, nil)
				tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = 1
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantPerfil: user.PerfilAdmin,
		},
		{
			name:  "SecondUserIsRegular",
			email: "worker@example.com",
			senha: "secret123",
			setupMock: func(repo *auth.MockRepository, tx *auth.MockRegisterTx) {
				repo.EXPECT().BeginRegister(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CountUsers(gomock.Any()).Return(1, nil)
				tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = 2
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantPerfil: user.PerfilUser,
		},
		{
			name:    "MissingFields",
			email:   "",
			senha:   "",
			wantErr: httpx.ErrValidation,
		},
		{
			name:  "DuplicateEmail",
			email: "founder@example.com",
			senha: "secret123",
			setupMock: func(repo *auth.MockRepository, tx *auth.MockRegisterTx) {
				repo.EXPECT().BeginRegister(gomock.Any()).Return(tx, nil)
				tx.EXPECT().CountUsers(gomock.Any()).Return(1, nil)
				tx.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(httpx.Wrap(httpx.ErrConflict, "Este email já está registrado."))
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantErr: httpx.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := auth.NewMockRepository(ctrl)
			tx := auth.NewMockRegisterTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc, _ := newTestService(t, repo)
			got, err := svc.Register(context.Background(), tt.email, tt.senha)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPerfil, got.Perfil)
			assert.NotEqual(t, tt.senha, got.SenhaHash)
		})
	}
}
