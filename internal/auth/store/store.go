package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/database"
	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/user"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindByIdentifier(ctx context.Context, identificador string) (*user.User, error) {
	// The unique constraints keep each column free of duplicates; the CASE
	// ordering makes a cross-column collision resolve deterministically.
	query := `
		SELECT id, email, senha_hash, perfil, nickname, telefone
		FROM utilizadores
		WHERE email = $1 OR nickname = $1 OR telefone = $1
		ORDER BY CASE
			WHEN email = $1 THEN 0
			WHEN nickname = $1 THEN 1
			ELSE 2
		END
		LIMIT 1
	`

	var u user.User

	var perfil string

	var nickname, telefone sql.NullString

	err := s.db.QueryRowContext(ctx, query, identificador).Scan(
		&u.ID, &u.Email, &u.SenhaHash, &perfil, &nickname, &telefone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado.")
		}

		return nil, fmt.Errorf("finding user by identifier: %w", err)
	}

	u.Perfil = user.Perfil(perfil)
	u.Nickname = nickname.String
	u.Telefone = telefone.String

	return &u, nil
}

func (s *Store) BeginRegister(ctx context.Context) (auth.RegisterTx, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("beginning register tx: %w", err)
	}

	return &registerTx{tx: tx}, nil
}

type registerTx struct {
	tx *sql.Tx
}

func (r *registerTx) Commit() error   { return r.tx.Commit() }
func (r *registerTx) Rollback() error { return r.tx.Rollback() }

func (r *registerTx) CountUsers(ctx context.Context) (int, error) {
	var count int

	if err := r.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM utilizadores`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}

	return count, nil
}

func (r *registerTx) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO utilizadores (email, senha_hash, perfil)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.tx.QueryRowContext(ctx, query, u.Email, u.SenhaHash, u.Perfil).Scan(&u.ID)
	if err != nil {
		if _, ok := database.UniqueViolation(err); ok {
			return httpx.Wrap(httpx.ErrConflict, "Este email já está registrado.")
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}
