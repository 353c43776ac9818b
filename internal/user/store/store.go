package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

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

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, email, perfil, nickname, telefone.
func scanUser(s scanner) (*user.User, error) {
	var u user.User

	var perfil string

	var nickname, telefone sql.NullString

	if err := s.Scan(&u.ID, &u.Email, &perfil, &nickname, &telefone); err != nil {
		return nil, err
	}

	u.Perfil = user.Perfil(perfil)
	u.Nickname = nickname.String
	u.Telefone = telefone.String

	return &u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*user.User, error) {
	query := `SELECT id, email, perfil, nickname, telefone FROM utilizadores ORDER BY email ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO utilizadores (email, senha_hash, perfil, nickname, telefone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		u.Email,
		u.SenhaHash,
		u.Perfil,
		nullable(u.Nickname),
		nullable(u.Telefone),
	).Scan(&u.ID)
	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return conflictError(constraint, "já está em uso")
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) BeginGuard(ctx context.Context) (user.GuardTx, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("beginning guard tx: %w", err)
	}

	return &guardTx{tx: tx}, nil
}

type guardTx struct {
	tx *sql.Tx
}

func (g *guardTx) Commit() error   { return g.tx.Commit() }
func (g *guardTx) Rollback() error { return g.tx.Rollback() }

func (g *guardTx) PerfilOf(ctx context.Context, id int64) (user.Perfil, error) {
	var perfil string

	err := g.tx.QueryRowContext(ctx, `SELECT perfil FROM utilizadores WHERE id = $1`, id).Scan(&perfil)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado.")
		}

		return "", fmt.Errorf("reading perfil: %w", err)
	}

	return user.Perfil(perfil), nil
}

func (g *guardTx) CountAdmins(ctx context.Context) (int, error) {
	var count int

	err := g.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM utilizadores WHERE perfil = 'ADMIN'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}

	return count, nil
}

func (g *guardTx) UpdateUser(ctx context.Context, u *user.User) error {
	query := `
		UPDATE utilizadores
		SET email = $1, perfil = $2, nickname = $3, telefone = $4
		WHERE id = $5
	`
	args := []any{u.Email, u.Perfil, nullable(u.Nickname), nullable(u.Telefone), u.ID}

	if u.SenhaHash != "" {
		query = `
			UPDATE utilizadores
			SET email = $1, perfil = $2, nickname = $3, telefone = $4, senha_hash = $5
			WHERE id = $6
		`
		args = []any{u.Email, u.Perfil, nullable(u.Nickname), nullable(u.Telefone), u.SenhaHash, u.ID}
	}

	res, err := g.tx.ExecContext(ctx, query, args...)
	if err != nil {
		if constraint, ok := database.UniqueViolation(err); ok {
			return conflictError(constraint, "já pertence a outro utilizador")
		}

		return fmt.Errorf("updating user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	if affected == 0 {
		return httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado.")
	}

	return nil
}

func (g *guardTx) DeleteUser(ctx context.Context, id int64) error {
	res, err := g.tx.ExecContext(ctx, `DELETE FROM utilizadores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}

	if affected == 0 {
		return httpx.Wrap(httpx.ErrNotFound, "Utilizador não encontrado.")
	}

	return nil
}

// conflictError turns the fired constraint into the field-specific message the
// UI expects.
func conflictError(constraint, suffix string) error {
	campo := "valor"

	switch {
	case strings.Contains(constraint, "email"):
		campo = "e-mail"
	case strings.Contains(constraint, "nickname"):
		campo = "nickname"
	case strings.Contains(constraint, "telefone"):
		campo = "telefone"
	}

	return httpx.Wrap(httpx.ErrConflict, fmt.Sprintf("O %s fornecido %s.", campo, suffix))
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
