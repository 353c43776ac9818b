package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/user"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    user.CreateParams
		setupMock func(repo *user.MockRepository, hasher *user.MockPasswordHasher)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: user.CreateParams{
				Email:  "ana@example.com",
				Senha:  "secret123",
				Perfil: user.PerfilUser,
			},
			setupMock: func(repo *user.MockRepository, hasher *user.MockPasswordHasher) {
				hasher.EXPECT().Hash("secret123").Return("hashed", nil)
				repo.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = 7
						return nil
					})
			},
		},
		{
			name:    "MissingFields",
			params:  user.CreateParams{Email: "ana@example.com"},
			wantErr: httpx.ErrValidation,
		},
		{
			name: "InvalidPerfil",
			params: user.CreateParams{
				Email:  "ana@example.com",
				Senha:  "secret123",
				Perfil: user.Perfil("SUPERUSER"),
			},
			wantErr: httpx.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			hasher := user.NewMockPasswordHasher(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, hasher)
			}

			svc := user.NewService(repo, hasher)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "hashed", got.SenhaHash)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestService_Update_LastAdminGuard(t *testing.T) {
	type testCase struct {
		name      string
		params    user.UpdateParams
		setupMock func(repo *user.MockRepository, tx *user.MockGuardTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "DemoteLastAdminFails",
			params: user.UpdateParams{Email: "admin@example.com", Perfil: user.PerfilUser},
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).Return(user.PerfilAdmin, nil)
				tx.EXPECT().CountAdmins(gomock.Any()).Return(1, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantErr: httpx.ErrForbidden,
		},
		{
			name:   "DemoteWithTwoAdminsSucceeds",
			params: user.UpdateParams{Email: "admin@example.com", Perfil: user.PerfilUser},
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).Return(user.PerfilAdmin, nil)
				tx.EXPECT().CountAdmins(gomock.Any()).Return(2, nil)
				tx.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:   "KeepingAdminSkipsGuard",
			params: user.UpdateParams{Email: "admin@example.com", Perfil: user.PerfilAdmin},
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:   "DemoteMissingUserReaches404",
			params: user.UpdateParams{Email: "ghost@example.com", Perfil: user.PerfilUser},
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).
					Return(user.Perfil(""), httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado."))
				tx.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
					Return(httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado."))
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantErr: httpx.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tx := user.NewMockGuardTx(ctrl)
			tt.setupMock(repo, tx)

			svc := user.NewService(repo, user.NewMockPasswordHasher(ctrl))
			got, err := svc.Update(context.Background(), 1, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Perfil, got.Perfil)
		})
	}
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		callerID  int64
		targetID  int64
		setupMock func(repo *user.MockRepository, tx *user.MockGuardTx)
		wantErr   error
		wantFail  bool
	}

	tests := []testCase{
		{
			name:     "SelfDeleteForbidden",
			callerID: 5,
			targetID: 5,
			wantErr:  httpx.ErrForbidden,
		},
		{
			name:     "LastAdminProtected",
			callerID: 5,
			targetID: 1,
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).Return(user.PerfilAdmin, nil)
				tx.EXPECT().CountAdmins(gomock.Any()).Return(1, nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantErr: httpx.ErrForbidden,
		},
		{
			name:     "SecondAdminDeletable",
			callerID: 5,
			targetID: 1,
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).Return(user.PerfilAdmin, nil)
				tx.EXPECT().CountAdmins(gomock.Any()).Return(2, nil)
				tx.EXPECT().DeleteUser(gomock.Any(), int64(1)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:     "RegularUserDeletable",
			callerID: 5,
			targetID: 9,
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(9)).Return(user.PerfilUser, nil)
				tx.EXPECT().DeleteUser(gomock.Any(), int64(9)).Return(nil)
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
		},
		{
			name:     "GuardReadFailurePropagates",
			callerID: 5,
			targetID: 1,
			setupMock: func(repo *user.MockRepository, tx *user.MockGuardTx) {
				repo.EXPECT().BeginGuard(gomock.Any()).Return(tx, nil)
				tx.EXPECT().PerfilOf(gomock.Any(), int64(1)).
					Return(user.Perfil(""), errors.New("db down"))
				tx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			tx := user.NewMockGuardTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			svc := user.NewService(repo, user.NewMockPasswordHasher(ctrl))
			err := svc.Delete(context.Background(), tt.callerID, tt.targetID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			if tt.wantFail {
				require.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
