package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `
		SELECT id, nome, descricao, preco, unidade_medida
		FROM produtos
		ORDER BY nome ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		var p product.Product

		var descricao sql.NullString

		var unidade string

		if err := rows.Scan(&p.ID, &p.Nome, &descricao, &p.Preco, &unidade); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		p.Descricao = descricao.String
		p.UnidadeMedida = product.UnidadeMedida(unidade)

		products = append(products, &p)
	}

	return products, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO produtos (nome, descricao, preco, unidade_medida)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Nome, nullable(p.Descricao), p.Preco, p.UnidadeMedida,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE produtos
		SET nome = $1, descricao = $2, preco = $3, unidade_medida = $4
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Nome, nullable(p.Descricao), p.Preco, p.UnidadeMedida, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return httpx.Wrap(httpx.ErrNotFound, "Produto não encontrado.")
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
