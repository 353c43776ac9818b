package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/caipirao/caipirao/internal/httpx"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	ListUsers(ctx context.Context) ([]*User, error)
	CreateUser(ctx context.Context, u *User) error

	// BeginGuard opens the transaction used by the last-admin protections.
	// The read of the target's role, the admin count and the write all see a
	// serializable snapshot, so two concurrent requests cannot jointly remove
	// the last ADMIN.
	BeginGuard(ctx context.Context) (GuardTx, error)
}

type GuardTx interface {
	PerfilOf(ctx context.Context, id int64) (Perfil, error)
	CountAdmins(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, u *User) error
	DeleteUser(ctx context.Context, id int64) error
	Commit() error
	Rollback() error
}

// PasswordHasher is satisfied by the auth package's bcrypt hasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

type CreateParams struct {
	Email    string
	Senha    string
	Perfil   Perfil
	Nickname string
	Telefone string
}

type UpdateParams struct {
	Email    string
	Perfil   Perfil
	Senha    string // optional; empty keeps the current hash
	Nickname string
	Telefone string
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	if params.Email == "" || params.Senha == "" || params.Perfil == "" {
		return nil, httpx.Wrap(httpx.ErrValidation, "Email, senha e perfil são obrigatórios.")
	}

	if !params.Perfil.Valid() {
		return nil, httpx.Wrap(httpx.ErrValidation, "O perfil deve ser 'ADMIN' ou 'USER'.")
	}

	hash, err := s.hasher.Hash(params.Senha)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		Email:     params.Email,
		SenhaHash: hash,
		Perfil:    params.Perfil,
		Nickname:  params.Nickname,
		Telefone:  params.Telefone,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*User, error) {
	if params.Email == "" || params.Perfil == "" {
		return nil, httpx.Wrap(httpx.ErrValidation, "Email e perfil são obrigatórios.")
	}

	if !params.Perfil.Valid() {
		return nil, httpx.Wrap(httpx.ErrValidation, "O perfil deve ser 'ADMIN' ou 'USER'.")
	}

	u := &User{
		ID:       id,
		Email:    params.Email,
		Perfil:   params.Perfil,
		Nickname: params.Nickname,
		Telefone: params.Telefone,
	}

	if params.Senha != "" {
		hash, err := s.hasher.Hash(params.Senha)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}

		u.SenhaHash = hash
	}

	tx, err := s.repo.BeginGuard(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin guard: %w", err)
	}
	defer tx.Rollback()

	if !params.Perfil.IsAdmin() {
		if err := guardLastAdmin(ctx, tx, id, "Não é possível alterar o perfil do último administrador."); err != nil {
			return nil, err
		}
	}

	if err := tx.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}

	return u, nil
}

// Delete removes a user. Callers may never delete themselves, and the last
// remaining ADMIN is protected.
func (s *Service) Delete(ctx context.Context, callerID, id int64) error {
	if callerID == id {
		return httpx.Wrap(httpx.ErrForbidden, "Não é permitido apagar o seu próprio utilizador.")
	}

	tx, err := s.repo.BeginGuard(ctx)
	if err != nil {
		return fmt.Errorf("begin guard: %w", err)
	}
	defer tx.Rollback()

	if err := guardLastAdmin(ctx, tx, id, "Não é possível remover o último administrador do sistema."); err != nil {
		return err
	}

	if err := tx.DeleteUser(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}

	return nil
}

// guardLastAdmin fails with 403 when the target is the only remaining ADMIN.
// A missing target passes; the subsequent write reports the 404.
func guardLastAdmin(ctx context.Context, tx GuardTx, id int64, message string) error {
	perfil, err := tx.PerfilOf(ctx, id)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil
		}

		return fmt.Errorf("reading target perfil: %w", err)
	}

	if !perfil.IsAdmin() {
		return nil
	}

	count, err := tx.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}

	if count <= 1 {
		return httpx.Wrap(httpx.ErrForbidden, message)
	}

	return nil
}
