package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/httpx"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `
		SELECT id, tipo_saida, discriminacao, nome_recebedor, data_pagamento,
			data_vencimento, forma_pagamento, valor, responsavel_pagamento
		FROM despesas
		ORDER BY data_pagamento DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		var e expense.Expense

		var discriminacao, nomeRecebedor, formaPagamento, responsavel sql.NullString

		var dataPagamento, dataVencimento sql.NullTime

		err := rows.Scan(
			&e.ID, &e.TipoSaida, &discriminacao, &nomeRecebedor,
			&dataPagamento, &dataVencimento, &formaPagamento, &e.Valor,
			&responsavel,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		e.Discriminacao = discriminacao.String
		e.NomeRecebedor = nomeRecebedor.String
		e.FormaPagamento = formaPagamento.String
		e.ResponsavelPagamento = responsavel.String

		if dataPagamento.Valid {
			e.DataPagamento = &dataPagamento.Time
		}

		if dataVencimento.Valid {
			e.DataVencimento = &dataVencimento.Time
		}

		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

func (s *Store) CreateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		INSERT INTO despesas (tipo_saida, discriminacao, nome_recebedor,
			data_pagamento, data_vencimento, forma_pagamento, valor,
			responsavel_pagamento)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		e.TipoSaida, nullable(e.Discriminacao), nullable(e.NomeRecebedor),
		e.DataPagamento, e.DataVencimento, nullable(e.FormaPagamento),
		e.Valor, nullable(e.ResponsavelPagamento),
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) UpdateExpense(ctx context.Context, e *expense.Expense) error {
	query := `
		UPDATE despesas SET
			tipo_saida = $1, discriminacao = $2, nome_recebedor = $3,
			data_pagamento = $4, data_vencimento = $5, forma_pagamento = $6,
			valor = $7, responsavel_pagamento = $8
		WHERE id = $9
	`

	res, err := s.db.ExecContext(ctx, query,
		e.TipoSaida, nullable(e.Discriminacao), nullable(e.NomeRecebedor),
		e.DataPagamento, e.DataVencimento, nullable(e.FormaPagamento),
		e.Valor, nullable(e.ResponsavelPagamento), e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}

	return checkAffected(res)
}

func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM despesas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if affected == 0 {
		return httpx.Wrap(httpx.ErrNotFound, "Despesa não encontrada.")
	}

	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}

	return s
}
