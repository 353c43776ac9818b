package expense

import "time"

// Expense is a despesas row, the SAÍDA counterpart of a sale kept in its own
// table.
type Expense struct {
	ID                   int64
	TipoSaida            string
	Discriminacao        string
	NomeRecebedor        string
	DataPagamento        *time.Time
	DataVencimento       *time.Time
	FormaPagamento       string
	Valor                float64
	ResponsavelPagamento string
}
