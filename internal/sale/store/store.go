package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/sale"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSales(ctx context.Context) ([]*sale.Sale, error) {
	// LEFT JOINs tolerate sales whose client was deleted and sellers removed
	// by the ON DELETE SET NULL FK.
	query := `
		SELECT
			m.id,
			m.cliente_id,
			m.descricao,
			m.data,
			m.valor,
			m.peso,
			m.data_pagamento,
			m.data_vencimento,
			m.preco_manual,
			m.responsavel_venda_id,
			c.nome AS cliente_nome,
			COALESCE(u.nickname, u.email) AS responsavel_venda_nome
		FROM movimentacoes AS m
		LEFT JOIN clientes AS c ON m.cliente_id = c.id
		LEFT JOIN utilizadores AS u ON m.responsavel_venda_id = u.id
		WHERE m.tipo = 'ENTRADA'
		ORDER BY m.data DESC, m.id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	var sales []*sale.Sale

	for rows.Next() {
		var v sale.Sale

		var clienteID, responsavelID sql.NullInt64

		var peso, precoManual sql.NullFloat64

		var dataPagamento, dataVencimento sql.NullTime

		var clienteNome, responsavelNome sql.NullString

		err := rows.Scan(
			&v.ID, &clienteID, &v.ProdutoNome, &v.DataVenda, &v.ValorTotal,
			&peso, &dataPagamento, &dataVencimento, &precoManual, &responsavelID,
			&clienteNome, &responsavelNome,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning sale: %w", err)
		}

		v.ClienteID = clienteID.Int64
		v.ResponsavelVendaID = responsavelID.Int64
		v.ClienteNome = clienteNome.String
		v.ResponsavelVendaNome = responsavelNome.String

		if peso.Valid {
			v.Peso = &peso.Float64
		}

		if precoManual.Valid {
			v.PrecoManual = &precoManual.Float64
		}

		if dataPagamento.Valid {
			v.DataPagamento = &dataPagamento.Time
		}

		if dataVencimento.Valid {
			v.DataVencimento = &dataVencimento.Time
		}

		sales = append(sales, &v)
	}

	return sales, rows.Err()
}

func (s *Store) CreateSale(ctx context.Context, v *sale.Sale) error {
	query := `
		INSERT INTO movimentacoes (tipo, cliente_id, descricao, data, valor,
			categoria, peso, data_pagamento, data_vencimento, preco_manual,
			responsavel_venda_id)
		VALUES ('ENTRADA', $1, $2, $3, $4, 'VENDA', $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		v.ClienteID, v.ProdutoNome, v.DataVenda, v.ValorTotal,
		v.Peso, v.DataPagamento, v.DataVencimento, v.PrecoManual,
		v.ResponsavelVendaID,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("creating sale: %w", err)
	}

	return nil
}

func (s *Store) UpdateSale(ctx context.Context, v *sale.Sale) error {
	query := `
		UPDATE movimentacoes SET
			cliente_id = $1, descricao = $2, data = $3, valor = $4, peso = $5,
			data_pagamento = $6, data_vencimento = $7, preco_manual = $8,
			responsavel_venda_id = $9
		WHERE id = $10 AND tipo = 'ENTRADA'
	`

	res, err := s.db.ExecContext(ctx, query,
		v.ClienteID, v.ProdutoNome, v.DataVenda, v.ValorTotal, v.Peso,
		v.DataPagamento, v.DataVencimento, v.PrecoManual,
		v.ResponsavelVendaID, v.ID,
	)
	if err != nil {
		return fmt.Errorf("updating sale: %w", err)
	}

	return checkAffected(res, "Venda não encontrada para atualização.")
}

func (s *Store) DeleteSale(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM movimentacoes WHERE id = $1 AND tipo = 'ENTRADA'`, id)
	if err != nil {
		return fmt.Errorf("deleting sale: %w", err)
	}

	return checkAffected(res, "Venda não encontrada para exclusão.")
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
