package sale

import (
	"time"

	"github.com/caipirao/caipirao/internal/sale"
)

type saleResponse struct {
	ID                   int64    `json:"id"`
	ClienteID            int64    `json:"cliente_id"`
	ClienteNome          string   `json:"cliente_nome,omitempty"`
	ProdutoNome          string   `json:"produto_nome"`
	DataVenda            string   `json:"data_venda"`
	ValorTotal           float64  `json:"valor_total"`
	Peso                 *float64 `json:"peso,omitempty"`
	DataPagamento        *string  `json:"data_pagamento,omitempty"`
	DataVencimento       *string  `json:"data_vencimento,omitempty"`
	PrecoManual          *float64 `json:"preco_manual,omitempty"`
	ResponsavelVendaID   int64    `json:"responsavel_venda_id"`
	ResponsavelVendaNome string   `json:"responsavel_venda_nome,omitempty"`
}

func toResponse(s *sale.Sale) saleResponse {
	return saleResponse{
		ID:                   s.ID,
		ClienteID:            s.ClienteID,
		ClienteNome:          s.ClienteNome,
		ProdutoNome:          s.ProdutoNome,
		DataVenda:            formatDate(s.DataVenda),
		ValorTotal:           s.ValorTotal,
		Peso:                 s.Peso,
		DataPagamento:        formatDatePtr(s.DataPagamento),
		DataVencimento:       formatDatePtr(s.DataVencimento),
		PrecoManual:          s.PrecoManual,
		ResponsavelVendaID:   s.ResponsavelVendaID,
		ResponsavelVendaNome: s.ResponsavelVendaNome,
	}
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
