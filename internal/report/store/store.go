package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/caipirao/caipirao/internal/report"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ClientActivity(ctx context.Context) (*report.Activity, error) {
	// The subquery finds each buying client's last ENTRADA; the outer LEFT
	// JOIN keeps clients that never bought, whose NULL last purchase makes
	// them Inativo.
	query := `
		WITH ultimas_compras AS (
			SELECT cliente_id, MAX(data) AS ultima_compra
			FROM movimentacoes
			WHERE tipo = 'ENTRADA'
			GROUP BY cliente_id
		)
		SELECT
			COUNT(CASE WHEN c.status = 'ativo' THEN 1 END) AS ativos,
			COUNT(CASE WHEN c.status = 'inativo' THEN 1 END) AS inativos
		FROM (
			SELECT
				c.id,
				CASE
					WHEN uc.ultima_compra >= (CURRENT_DATE - INTERVAL '90 days') THEN 'ativo'
					ELSE 'inativo'
				END AS status
			FROM clientes c
			LEFT JOIN ultimas_compras uc ON c.id = uc.cliente_id
		) AS c
	`

	var a report.Activity

	if err := s.db.QueryRowContext(ctx, query).Scan(&a.Ativos, &a.Inativos); err != nil {
		return nil, fmt.Errorf("client activity: %w", err)
	}

	return &a, nil
}

func (s *Store) SalesByDay(ctx context.Context, r report.Range) ([]*report.DailySales, error) {
	query := `
		SELECT
			DATE(data) AS dia,
			SUM(valor) AS total_vendas,
			COALESCE(SUM(peso), 0) AS peso_total,
			COUNT(id) AS transacoes
		FROM movimentacoes
		WHERE tipo = 'ENTRADA' AND data BETWEEN $1 AND $2
		GROUP BY DATE(data)
		ORDER BY dia ASC
	`

	rows, err := s.db.QueryContext(ctx, query, r.Inicio, r.Fim)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	var days []*report.DailySales

	for rows.Next() {
		var d report.DailySales

		if err := rows.Scan(&d.Dia, &d.TotalVendas, &d.PesoTotal, &d.Transacoes); err != nil {
			return nil, fmt.Errorf("scanning daily sales: %w", err)
		}

		days = append(days, &d)
	}

	return days, rows.Err()
}

func (s *Store) ProductRanking(ctx context.Context, r report.Range) ([]*report.ProductRank, error) {
	// Sales store a product-name snapshot, so the join back to produtos is by
	// name equality; sales of renamed or deleted products fall back to 'kg'.
	query := `
		SELECT
			m.descricao AS produto_nome,
			COALESCE(p.unidade_medida, 'kg') AS unidade_medida,
			SUM(m.valor) AS faturamento_total,
			COALESCE(SUM(m.peso), 0) AS quantidade_vendida,
			COUNT(m.id) AS transacoes
		FROM movimentacoes m
		LEFT JOIN produtos p ON p.nome = m.descricao
		WHERE m.tipo = 'ENTRADA' AND m.data BETWEEN $1 AND $2
		GROUP BY m.descricao, p.unidade_medida
		ORDER BY faturamento_total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, r.Inicio, r.Fim)
	if err != nil {
		return nil, fmt.Errorf("product ranking: %w", err)
	}
	defer rows.Close()

	var ranking []*report.ProductRank

	for rows.Next() {
		var p report.ProductRank

		err := rows.Scan(&p.ProdutoNome, &p.UnidadeMedida, &p.FaturamentoTotal,
			&p.QuantidadeVendida, &p.Transacoes)
		if err != nil {
			return nil, fmt.Errorf("scanning product rank: %w", err)
		}

		ranking = append(ranking, &p)
	}

	return ranking, rows.Err()
}

func (s *Store) ClientRanking(ctx context.Context, r report.Range) ([]*report.ClientRank, error) {
	query := `
		SELECT
			c.nome AS cliente_nome,
			SUM(m.valor) AS faturamento_total,
			COALESCE(SUM(m.peso), 0) AS peso_total,
			COUNT(m.id) AS transacoes
		FROM movimentacoes AS m
		JOIN clientes AS c ON m.cliente_id = c.id
		WHERE m.tipo = 'ENTRADA' AND m.data BETWEEN $1 AND $2
		GROUP BY c.nome
		ORDER BY faturamento_total DESC
	`

	rows, err := s.db.QueryContext(ctx, query, r.Inicio, r.Fim)
	if err != nil {
		return nil, fmt.Errorf("client ranking: %w", err)
	}
	defer rows.Close()

	var ranking []*report.ClientRank

	for rows.Next() {
		var c report.ClientRank

		err := rows.Scan(&c.ClienteNome, &c.FaturamentoTotal, &c.PesoTotal, &c.Transacoes)
		if err != nil {
			return nil, fmt.Errorf("scanning client rank: %w", err)
		}

		ranking = append(ranking, &c)
	}

	return ranking, rows.Err()
}

func (s *Store) SellerProductivity(ctx context.Context, r report.Range) ([]*report.SellerProductivity, error) {
	// Every USER appears even with zero sales in range; ADMINs only appear
	// when they have at least one attributed sale in range.
	query := `
		SELECT
			u.id AS vendedor_id,
			COALESCE(u.nickname, u.email) AS vendedor_nome,
			COALESCE(SUM(m.valor), 0) AS total_vendas,
			COUNT(m.id) AS numero_vendas,
			COALESCE(SUM(m.valor) / NULLIF(COUNT(m.id), 0), 0) AS ticket_medio
		FROM utilizadores u
		LEFT JOIN movimentacoes m ON m.responsavel_venda_id = u.id
			AND m.tipo = 'ENTRADA' AND m.data BETWEEN $1 AND $2
		WHERE u.perfil = 'USER' OR EXISTS (
			SELECT 1 FROM movimentacoes mv
			WHERE mv.responsavel_venda_id = u.id
				AND mv.tipo = 'ENTRADA' AND mv.data BETWEEN $1 AND $2
		)
		GROUP BY u.id, u.nickname, u.email
		ORDER BY total_vendas DESC, vendedor_nome ASC
	`

	rows, err := s.db.QueryContext(ctx, query, r.Inicio, r.Fim)
	if err != nil {
		return nil, fmt.Errorf("seller productivity: %w", err)
	}
	defer rows.Close()

	var sellers []*report.SellerProductivity

	for rows.Next() {
		var v report.SellerProductivity

		err := rows.Scan(&v.VendedorID, &v.VendedorNome, &v.TotalVendas,
			&v.NumeroVendas, &v.TicketMedio)
		if err != nil {
			return nil, fmt.Errorf("scanning seller productivity: %w", err)
		}

		sellers = append(sellers, &v)
	}

	return sellers, rows.Err()
}
