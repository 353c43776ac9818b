// Package dashboard derives presentation state from already-fetched sales and
// expenses. Every function here is pure: the caller supplies the rows and the
// reference time, and the same inputs always produce the same output.
package dashboard

import (
	"sort"
	"time"

	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/sale"
)

// DueWindowDays is how far ahead the payment reminder list looks.
const DueWindowDays = 5

// KPIs holds the current-month income, expense and balance totals.
type KPIs struct {
	Entradas float64
	Saidas   float64
	Saldo    float64
}

// MonthKPIs totals sales by sale date and expenses by payment date, both
// restricted to the calendar month of now.
func MonthKPIs(sales []*sale.Sale, expenses []*expense.Expense, now time.Time) KPIs {
	var k KPIs

	for _, s := range sales {
		if sameMonth(s.DataVenda, now) {
			k.Entradas += s.ValorTotal
		}
	}

	for _, e := range expenses {
		if e.DataPagamento != nil && sameMonth(*e.DataPagamento, now) {
			k.Saidas += e.Valor
		}
	}

	k.Saldo = k.Entradas - k.Saidas

	return k
}

// Period selects the bucketing of the income-vs-expense series.
type Period int

const (
	PeriodSixMonths Period = 0
	PeriodYear      Period = 1
	PeriodFiveYears Period = 2
)

func (p Period) String() string {
	switch p {
	case PeriodSixMonths:
		return "6M"
	case PeriodYear:
		return "ANO"
	case PeriodFiveYears:
		return "5A"
	}

	return "Unknown"
}

// windowStart is the inclusive lower bound of rows the period covers.
func (p Period) windowStart(now time.Time) time.Time {
	switch p {
	case PeriodSixMonths:
		return time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	case PeriodFiveYears:
		return time.Date(now.Year()-4, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}
}

// Bucket is one bar of the income-vs-expense series.
type Bucket struct {
	Label    string
	Entradas float64
	Saidas   float64
}

// Series buckets sales and expenses into the period's time slots: six monthly
// buckets, the twelve months of the current year, or the last five calendar
// years. Empty buckets are kept so the series always has a fixed shape.
func Series(sales []*sale.Sale, expenses []*expense.Expense, p Period, now time.Time) []Bucket {
	labels, keyOf := p.buckets(now)

	index := make(map[string]int, len(labels))
	series := make([]Bucket, len(labels))

	for i, label := range labels {
		index[label] = i
		series[i] = Bucket{Label: label}
	}

	for _, s := range sales {
		if i, ok := index[keyOf(s.DataVenda)]; ok {
			series[i].Entradas += s.ValorTotal
		}
	}

	for _, e := range expenses {
		if e.DataPagamento == nil {
			continue
		}

		if i, ok := index[keyOf(*e.DataPagamento)]; ok {
			series[i].Saidas += e.Valor
		}
	}

	return series
}

func (p Period) buckets(now time.Time) ([]string, func(time.Time) string) {
	switch p {
	case PeriodYear:
		labels := make([]string, 12)
		for i := 0; i < 12; i++ {
			labels[i] = time.Month(i + 1).String()
		}

		return labels, func(t time.Time) string {
			if t.Year() != now.Year() {
				return ""
			}

			return t.Month().String()
		}
	case PeriodFiveYears:
		labels := make([]string, 5)
		for i := 0; i < 5; i++ {
			labels[i] = time.Date(now.Year()-4+i, 1, 1, 0, 0, 0, 0, time.UTC).Format("2006")
		}

		return labels, func(t time.Time) string { return t.Format("2006") }
	default:
		labels := make([]string, 6)
		for i := 0; i < 6; i++ {
			labels[i] = time.Date(now.Year(), now.Month()-5+time.Month(i), 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
		}

		return labels, func(t time.Time) string { return t.Format("Jan 06") }
	}
}

// ProductTotal is a revenue/quantity line of the product breakdown.
type ProductTotal struct {
	Nome        string
	Faturamento float64
	Peso        float64
}

// ProductBreakdown groups sales inside the period's window by product name,
// ordered by revenue descending.
func ProductBreakdown(sales []*sale.Sale, p Period, now time.Time) []ProductTotal {
	start := p.windowStart(now)

	totals := make(map[string]*ProductTotal)

	var order []string

	for _, s := range sales {
		if s.ProdutoNome == "" || s.DataVenda.Before(start) {
			continue
		}

		t, ok := totals[s.ProdutoNome]
		if !ok {
			t = &ProductTotal{Nome: s.ProdutoNome}
			totals[s.ProdutoNome] = t

			order = append(order, s.ProdutoNome)
		}

		t.Faturamento += s.ValorTotal

		if s.Peso != nil {
			t.Peso += *s.Peso
		}
	}

	breakdown := make([]ProductTotal, 0, len(order))
	for _, nome := range order {
		breakdown = append(breakdown, *totals[nome])
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Faturamento > breakdown[j].Faturamento
	})

	return breakdown
}

// EntryType distinguishes the two sides of the unified history.
type EntryType string

const (
	EntryEntrada EntryType = "Entrada"
	EntrySaida   EntryType = "Saída"
)

// Entry is one row of the unified transaction history.
type Entry struct {
	Tipo      EntryType
	Data      *time.Time
	Valor     float64
	Descricao string
}

// Merge flattens sales and expenses into a single history. Sales carry their
// sale date and product name; expenses carry their payment date and category.
func Merge(sales []*sale.Sale, expenses []*expense.Expense) []Entry {
	entries := make([]Entry, 0, len(sales)+len(expenses))

	for _, s := range sales {
		d := s.DataVenda
		entries = append(entries, Entry{
			Tipo:      EntryEntrada,
			Data:      &d,
			Valor:     s.ValorTotal,
			Descricao: s.ProdutoNome,
		})
	}

	for _, e := range expenses {
		entries = append(entries, Entry{
			Tipo:      EntrySaida,
			Data:      e.DataPagamento,
			Valor:     e.Valor,
			Descricao: e.TipoSaida,
		})
	}

	return entries
}

// DateFilter selects the history window.
type DateFilter int

const (
	FilterToday  DateFilter = 0
	FilterMonth  DateFilter = 1
	FilterCustom DateFilter = 2
)

// HistoryFilter restricts the unified history by date window and entry type.
// Inicio and Fim are only consulted when Data is FilterCustom.
type HistoryFilter struct {
	Data   DateFilter
	Tipo   EntryType // empty means both types
	Inicio time.Time
	Fim    time.Time
}

// FilterHistory applies the filter and returns the surviving entries ordered
// newest first. Entries without a date never match any window.
func FilterHistory(entries []Entry, f HistoryFilter, now time.Time) []Entry {
	today := truncateDay(now)

	var filtered []Entry

	for _, e := range entries {
		if f.Tipo != "" && e.Tipo != f.Tipo {
			continue
		}

		if e.Data == nil {
			continue
		}

		day := truncateDay(*e.Data)

		switch f.Data {
		case FilterToday:
			if !day.Equal(today) {
				continue
			}
		case FilterMonth:
			if !sameMonth(day, now) {
				continue
			}
		case FilterCustom:
			if day.Before(truncateDay(f.Inicio)) || day.After(truncateDay(f.Fim)) {
				continue
			}
		}

		filtered = append(filtered, e)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Data.After(*filtered[j].Data)
	})

	return filtered
}

// RunningTotal sums the entries with their sign: income adds, expense
// subtracts.
func RunningTotal(entries []Entry) float64 {
	var total float64

	for _, e := range entries {
		if e.Tipo == EntryEntrada {
			total += e.Valor
		} else {
			total -= e.Valor
		}
	}

	return total
}

// Due is one line of the payment reminder list.
type Due struct {
	Venda          *sale.Sale
	ClienteNome    string
	ValorTotal     float64
	DataVencimento time.Time
	DiasParaVencer int
}

// UpcomingDue lists unpaid sales whose due date falls between today and five
// days ahead, both inclusive, ordered by days-to-due ascending. Paid sales and
// sales without a due date are skipped, as are already-overdue ones.
func UpcomingDue(sales []*sale.Sale, now time.Time) []Due {
	today := truncateDay(now)
	limit := today.AddDate(0, 0, DueWindowDays)

	var dues []Due

	for _, s := range sales {
		if s.Paid() || s.DataVencimento == nil {
			continue
		}

		due := truncateDay(*s.DataVencimento)
		if due.Before(today) || due.After(limit) {
			continue
		}

		dues = append(dues, Due{
			Venda:          s,
			ClienteNome:    s.ClienteNome,
			ValorTotal:     s.ValorTotal,
			DataVencimento: due,
			DiasParaVencer: int(due.Sub(today).Hours() / 24),
		})
	}

	sort.SliceStable(dues, func(i, j int) bool {
		return dues[i].DiasParaVencer < dues[j].DiasParaVencer
	})

	return dues
}

func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
