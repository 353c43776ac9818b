package sale

import "time"

// Sale is a movimentacoes row with tipo = 'ENTRADA'. The product is a name
// snapshot taken at sale time, not a foreign key; reports join back to
// produtos by name equality.
type Sale struct {
	ID                 int64
	ClienteID          int64
	ProdutoNome        string
	DataVenda          time.Time
	ValorTotal         float64
	Peso               *float64
	DataPagamento      *time.Time
	DataVencimento     *time.Time
	PrecoManual        *float64
	ResponsavelVendaID int64

	// Joined on listings.
	ClienteNome          string
	ResponsavelVendaNome string
}

// Paid reports whether the sale has been settled. A nil data_pagamento means
// unpaid/pending.
func (s *Sale) Paid() bool {
	return s.DataPagamento != nil
}

// TotalValue computes quantity times unit price, with the manual price
// overriding the catalog price when present. Callers compute this before
// submission; the server persists the given total as-is.
func TotalValue(peso, precoUnitario float64, precoManual *float64) float64 {
	preco := precoUnitario
	if precoManual != nil {
		preco = *precoManual
	}

	return peso * preco
}
