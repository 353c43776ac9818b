package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindSuggestion(ctx context.Context, descricao string) (string, error) {
	query := `
		SELECT produto_nome
		FROM produto_sugestoes
		WHERE $1 ILIKE '%' || descricao_livre || '%'
		ORDER BY LENGTH(descricao_livre) DESC, id DESC
		LIMIT 1
	`

	var produtoNome string

	err := s.db.QueryRowContext(ctx, query, descricao).Scan(&produtoNome)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding suggestion: %w", err)
	}

	return produtoNome, nil
}

func (s *Store) SaveSuggestion(ctx context.Context, descricao, produtoNome string) error {
	query := `
		INSERT INTO produto_sugestoes (descricao_livre, produto_nome)
		VALUES ($1, $2)
		ON CONFLICT (descricao_livre) DO UPDATE SET produto_nome = EXCLUDED.produto_nome
	`

	_, err := s.db.ExecContext(ctx, query, descricao, produtoNome)
	if err != nil {
		return fmt.Errorf("saving suggestion: %w", err)
	}

	return nil
}
