package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/user"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	// FindByIdentifier matches the identifier against email, nickname and
	// telefone, in that order.
	FindByIdentifier(ctx context.Context, identificador string) (*user.User, error)

	// BeginRegister opens the transaction that keeps the first-user count and
	// the insert atomic.
	BeginRegister(ctx context.Context) (RegisterTx, error)
}

type RegisterTx interface {
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, u *user.User) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	tokens *Tokens
	hasher *Hasher
}

func NewService(repo Repository, tokens *Tokens, hasher *Hasher) *Service {
	return &Service{repo: repo, tokens: tokens, hasher: hasher}
}

// Login resolves the identifier and checks the password. Unknown identifiers
// and wrong passwords return the same generic error on purpose.
func (s *Service) Login(ctx context.Context, identificador, senha string) (string, error) {
	if identificador == "" || senha == "" {
		return "", httpx.Wrap(httpx.ErrValidation, "Identificador e senha são obrigatórios.")
	}

	u, err := s.repo.FindByIdentifier(ctx, identificador)
	if err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return "", httpx.Wrap(httpx.ErrUnauthorized, "Credenciais inválidas.")
		}

		return "", fmt.Errorf("finding user: %w", err)
	}

	if !s.hasher.Compare(senha, u.SenhaHash) {
		return "", httpx.Wrap(httpx.ErrUnauthorized, "Credenciais inválidas.")
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return "", err
	}

	return token, nil
}

// Register creates an account. The very first user becomes ADMIN; everyone
// after that starts as USER.
func (s *Service) Register(ctx context.Context, email, senha string) (*user.User, error) {
	if email == "" || senha == "" {
		return nil, httpx.Wrap(httpx.ErrValidation, "Email e senha são obrigatórios.")
	}

	hash, err := s.hasher.Hash(senha)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginRegister(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin register: %w", err)
	}
	defer tx.Rollback()

	count, err := tx.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	perfil := user.PerfilUser
	if count == 0 {
		perfil = user.PerfilAdmin
	}

	u := &user.User{
		Email:     email,
		SenhaHash: hash,
		Perfil:    perfil,
	}
	if err := tx.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit register: %w", err)
	}

	return u, nil
}
