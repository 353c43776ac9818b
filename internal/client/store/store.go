package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/client"
	"github.com/caipirao/caipirao/internal/httpx"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListClients(ctx context.Context) ([]*client.Client, error) {
	// The status column is computed per row: the latest ENTRADA for the client
	// within the 90-day window makes it Ativo, anything else (including no
	// sales at all, where MAX(data) is NULL) is Inativo.
	query := `
		SELECT
			c.id,
			c.nome,
			c.contato,
			c.nome_responsavel,
			c.telefone_whatsapp,
			c.logradouro,
			c.quadra,
			c.lote,
			c.bairro,
			c.cep,
			c.ponto_referencia,
			CASE
				WHEN (
					SELECT MAX(data)
					FROM movimentacoes
					WHERE cliente_id = c.id AND tipo = 'ENTRADA'
				) >= (CURRENT_DATE - INTERVAL '90 days')
				THEN 'Ativo'
				ELSE 'Inativo'
			END AS status
		FROM clientes c
		ORDER BY c.nome ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		var c client.Client

		var nomeResponsavel, logradouro, quadra, lote, bairro, cep, pontoRef sql.NullString

		var status string

		err := rows.Scan(
			&c.ID, &c.Nome, &c.Contato, &nomeResponsavel, &c.TelefoneWhatsapp,
			&logradouro, &quadra, &lote, &bairro, &cep, &pontoRef, &status,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		c.NomeResponsavel = nomeResponsavel.String
		c.Logradouro = logradouro.String
		c.Quadra = quadra.String
		c.Lote = lote.String
		c.Bairro = bairro.String
		c.CEP = cep.String
		c.PontoReferencia = pontoRef.String
		c.Status = client.Status(status)

		clients = append(clients, &c)
	}

	return clients, rows.Err()
}

func (s *Store) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clientes (nome, contato, nome_responsavel, telefone_whatsapp,
			logradouro, quadra, lote, bairro, cep, ponto_referencia)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Nome, c.Contato, nullable(c.NomeResponsavel), c.TelefoneWhatsapp,
		nullable(c.Logradouro), nullable(c.Quadra), nullable(c.Lote),
		nullable(c.Bairro), nullable(c.CEP), nullable(c.PontoReferencia),
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	// Freshly created clients have no sales yet.
	c.Status = client.StatusInativo

	return nil
}

func (s *Store) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clientes
		SET nome = $1, contato = $2, nome_responsavel = $3, telefone_whatsapp = $4,
			logradouro = $5, quadra = $6, lote = $7, bairro = $8, cep = $9,
			ponto_referencia = $10
		WHERE id = $11
	`

	res, err := s.db.ExecContext(ctx, query,
		c.Nome, c.Contato, nullable(c.NomeResponsavel), c.TelefoneWhatsapp,
		nullable(c.Logradouro), nullable(c.Quadra), nullable(c.Lote),
		nullable(c.Bairro), nullable(c.CEP), nullable(c.PontoReferencia), c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return checkAffected(res, "Cliente não encontrado.")
}

func (s *Store) DeleteClient(ctx context.Context, id int64) error {
	// Sales keep their cliente_id; aggregates treat the dangling reference as
	// an unknown client.
	res, err := s.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	return checkAffected(res, "Cliente não encontrado.")
}

func checkAffected(res sql.Result, notFoundMsg string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return httpx.Wrap(httpx.ErrNotFound, notFoundMsg)
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
