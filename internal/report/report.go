package report

import "time"

// Range is a closed [Inicio, Fim] date interval.
type Range struct {
	Inicio time.Time
	Fim    time.Time
}

func (r Range) Empty() bool {
	return r.Inicio.IsZero() || r.Fim.IsZero()
}

// Activity partitions every client into Ativo/Inativo by purchase recency.
type Activity struct {
	Ativos   int
	Inativos int
}

type DailySales struct {
	Dia         time.Time
	TotalVendas float64
	PesoTotal   float64
	Transacoes  int
}

type ProductRank struct {
	ProdutoNome       string
	UnidadeMedida     string
	FaturamentoTotal  float64
	QuantidadeVendida float64
	Transacoes        int
}

type ClientRank struct {
	ClienteNome      string
	FaturamentoTotal float64
	PesoTotal        float64
	Transacoes       int
}

type SellerProductivity struct {
	VendedorID   int64
	VendedorNome string
	TotalVendas  float64
	NumeroVendas int
	TicketMedio  float64
}
