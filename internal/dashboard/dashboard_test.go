package dashboard_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caipirao/caipirao/internal/dashboard"
	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/sale"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(t time.Time) *time.Time { return &t }

func TestMonthKPIs(t *testing.T) {
	now := day(2025, 3, 15)

	sales := []*sale.Sale{
		{ValorTotal: 100, DataVenda: day(2025, 3, 2)},
		{ValorTotal: 50, DataVenda: day(2025, 3, 30)},
		{ValorTotal: 999, DataVenda: day(2025, 2, 28)}, // previous month
	}
	expenses := []*expense.Expense{
		{Valor: 40, DataPagamento: datePtr(day(2025, 3, 10))},
		{Valor: 999, DataPagamento: datePtr(day(2024, 3, 10))}, // same month, other year
		{Valor: 999, DataPagamento: nil},                       // unpaid, never counted
	}

	k := dashboard.MonthKPIs(sales, expenses, now)

	assert.InDelta(t, 150, k.Entradas, 0.001)
	assert.InDelta(t, 40, k.Saidas, 0.001)
	assert.InDelta(t, 110, k.Saldo, 0.001)
}

func TestSeries_SixMonthsShape(t *testing.T) {
	now := day(2025, 6, 15)

	sales := []*sale.Sale{
		{ValorTotal: 100, DataVenda: day(2025, 6, 1)},
		{ValorTotal: 70, DataVenda: day(2025, 1, 20)},  // January, first bucket
		{ValorTotal: 999, DataVenda: day(2024, 12, 5)}, // outside the window
	}
	expenses := []*expense.Expense{
		{Valor: 30, DataPagamento: datePtr(day(2025, 6, 3))},
		{Valor: 999, DataPagamento: nil},
	}

	series := dashboard.Series(sales, expenses, dashboard.PeriodSixMonths, now)

	require.Len(t, series, 6)
	assert.Equal(t, "Jan 25", series[0].Label)
	assert.Equal(t, "Jun 25", series[5].Label)
	assert.InDelta(t, 70, series[0].Entradas, 0.001)
	assert.InDelta(t, 100, series[5].Entradas, 0.001)
	assert.InDelta(t, 30, series[5].Saidas, 0.001)

	// Months without movement stay present with zero totals.
	for _, b := range series[1:5] {
		assert.Zero(t, b.Entradas)
		assert.Zero(t, b.Saidas)
	}
}

func TestSeries_YearIgnoresOtherYears(t *testing.T) {
	now := day(2025, 6, 15)

	sales := []*sale.Sale{
		{ValorTotal: 100, DataVenda: day(2025, 4, 1)},
		{ValorTotal: 999, DataVenda: day(2024, 4, 1)}, // same month name, wrong year
	}

	series := dashboard.Series(sales, nil, dashboard.PeriodYear, now)

	require.Len(t, series, 12)
	assert.Equal(t, "April", series[3].Label)
	assert.InDelta(t, 100, series[3].Entradas, 0.001)
}

func TestSeries_FiveYears(t *testing.T) {
	now := day(2025, 6, 15)

	sales := []*sale.Sale{
		{ValorTotal: 100, DataVenda: day(2021, 2, 1)},
		{ValorTotal: 200, DataVenda: day(2025, 2, 1)},
	}

	series := dashboard.Series(sales, nil, dashboard.PeriodFiveYears, now)

	require.Len(t, series, 5)
	assert.Equal(t, "2021", series[0].Label)
	assert.Equal(t, "2025", series[4].Label)
	assert.InDelta(t, 100, series[0].Entradas, 0.001)
	assert.InDelta(t, 200, series[4].Entradas, 0.001)
}

func TestProductBreakdown(t *testing.T) {
	now := day(2025, 6, 15)
	peso := 2.0

	sales := []*sale.Sale{
		{ProdutoNome: "Frango", ValorTotal: 100, Peso: &peso, DataVenda: day(2025, 5, 1)},
		{ProdutoNome: "Linguiça", ValorTotal: 300, DataVenda: day(2025, 4, 1)},
		{ProdutoNome: "Frango", ValorTotal: 50, Peso: &peso, DataVenda: day(2025, 3, 1)},
		{ProdutoNome: "Frango", ValorTotal: 999, DataVenda: day(2024, 1, 1)}, // outside 6M window
		{ProdutoNome: "", ValorTotal: 999, DataVenda: day(2025, 5, 1)},       // nameless rows skipped
	}

	breakdown := dashboard.ProductBreakdown(sales, dashboard.PeriodSixMonths, now)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Linguiça", breakdown[0].Nome)
	assert.InDelta(t, 300, breakdown[0].Faturamento, 0.001)
	assert.Equal(t, "Frango", breakdown[1].Nome)
	assert.InDelta(t, 150, breakdown[1].Faturamento, 0.001)
	assert.InDelta(t, 4, breakdown[1].Peso, 0.001)
}

func TestFilterHistory(t *testing.T) {
	now := day(2025, 3, 15)

	entries := dashboard.Merge(
		[]*sale.Sale{
			{ValorTotal: 100, ProdutoNome: "Frango", DataVenda: day(2025, 3, 15)},
			{ValorTotal: 50, ProdutoNome: "Linguiça", DataVenda: day(2025, 3, 1)},
			{ValorTotal: 25, ProdutoNome: "Ovos", DataVenda: day(2025, 2, 10)},
		},
		[]*expense.Expense{
			{Valor: 30, TipoSaida: "Ração", DataPagamento: datePtr(day(2025, 3, 15))},
			{Valor: 99, TipoSaida: "Frete", DataPagamento: nil}, // dateless, always dropped
		},
	)

	t.Run("Today", func(t *testing.T) {
		got := dashboard.FilterHistory(entries, dashboard.HistoryFilter{Data: dashboard.FilterToday}, now)

		require.Len(t, got, 2)
		for _, e := range got {
			assert.Equal(t, day(2025, 3, 15), *e.Data)
		}
	})

	t.Run("Month", func(t *testing.T) {
		got := dashboard.FilterHistory(entries, dashboard.HistoryFilter{Data: dashboard.FilterMonth}, now)

		require.Len(t, got, 3)
		// Newest first.
		assert.Equal(t, day(2025, 3, 15), *got[0].Data)
		assert.Equal(t, day(2025, 3, 1), *got[2].Data)
	})

	t.Run("CustomInclusiveBounds", func(t *testing.T) {
		got := dashboard.FilterHistory(entries, dashboard.HistoryFilter{
			Data:   dashboard.FilterCustom,
			Inicio: day(2025, 2, 10),
			Fim:    day(2025, 3, 1),
		}, now)

		require.Len(t, got, 2)
		assert.Equal(t, day(2025, 3, 1), *got[0].Data)
		assert.Equal(t, day(2025, 2, 10), *got[1].Data)
	})

	t.Run("TypeOnlyExpenses", func(t *testing.T) {
		got := dashboard.FilterHistory(entries, dashboard.HistoryFilter{
			Data: dashboard.FilterMonth,
			Tipo: dashboard.EntrySaida,
		}, now)

		require.Len(t, got, 1)
		assert.Equal(t, "Ração", got[0].Descricao)
	})

	t.Run("RunningTotalSigned", func(t *testing.T) {
		got := dashboard.FilterHistory(entries, dashboard.HistoryFilter{Data: dashboard.FilterMonth}, now)

		// 100 + 50 - 30
		assert.InDelta(t, 120, dashboard.RunningTotal(got), 0.001)
	})
}

func TestUpcomingDue(t *testing.T) {
	now := day(2025, 3, 15)
	paidAt := day(2025, 3, 1)

	sales := []*sale.Sale{
		{ID: 1, ClienteNome: "Maria", ValorTotal: 80, DataVencimento: datePtr(day(2025, 3, 20))},
		{ID: 2, ClienteNome: "João", ValorTotal: 120, DataVencimento: datePtr(day(2025, 3, 15))},
		{ID: 3, ClienteNome: "Rui", ValorTotal: 60, DataVencimento: datePtr(day(2025, 3, 21))},  // past the window
		{ID: 4, ClienteNome: "Bia", ValorTotal: 90, DataVencimento: datePtr(day(2025, 3, 14))},  // already overdue
		{ID: 5, ClienteNome: "Zé", ValorTotal: 70, DataVencimento: datePtr(day(2025, 3, 16)), DataPagamento: &paidAt}, // paid
		{ID: 6, ClienteNome: "Lia", ValorTotal: 40},                                             // no due date
	}

	dues := dashboard.UpcomingDue(sales, now)

	require.Len(t, dues, 2)

	assert.Equal(t, int64(2), dues[0].Venda.ID)
	assert.Equal(t, 0, dues[0].DiasParaVencer)

	assert.Equal(t, int64(1), dues[1].Venda.ID)
	assert.Equal(t, 5, dues[1].DiasParaVencer)
}
