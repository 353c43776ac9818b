package report

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/atividade-clientes", h.clientActivity)
	r.Get("/vendas-por-periodo", h.salesByDay)
	r.Get("/ranking-produtos", h.productRanking)
	r.Get("/ranking-clientes", h.clientRanking)
	r.Get("/seller-productivity", h.sellerProductivity)
}

// rangeFrom reads data_inicio/data_fim. Missing or malformed values stay zero
// so the service layer reports the required-range validation message.
func rangeFrom(r *http.Request) report.Range {
	var rng report.Range

	if s := r.URL.Query().Get("data_inicio"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			rng.Inicio = t
		}
	}

	if s := r.URL.Query().Get("data_fim"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			rng.Fim = t
		}
	}

	return rng
}

type activityResponse struct {
	Ativos   int `json:"ativos"`
	Inativos int `json:"inativos"`
}

func (h *Handler) clientActivity(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ClientActivity(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, activityResponse{Ativos: a.Ativos, Inativos: a.Inativos})
}

type dailySalesResponse struct {
	Dia         string  `json:"dia"`
	TotalVendas float64 `json:"total_vendas"`
	PesoTotal   float64 `json:"peso_total"`
	Transacoes  int     `json:"transacoes"`
}

func (h *Handler) salesByDay(w http.ResponseWriter, r *http.Request) {
	days, err := h.svc.SalesByDay(r.Context(), rangeFrom(r))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]dailySalesResponse, len(days))
	for i, d := range days {
		resp[i] = dailySalesResponse{
			Dia:         d.Dia.Format(time.DateOnly),
			TotalVendas: d.TotalVendas,
			PesoTotal:   d.PesoTotal,
			Transacoes:  d.Transacoes,
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

type productRankResponse struct {
	ProdutoNome       string  `json:"produto_nome"`
	UnidadeMedida     string  `json:"unidade_medida"`
	FaturamentoTotal  float64 `json:"faturamento_total"`
	QuantidadeVendida float64 `json:"quantidade_vendida"`
	Transacoes        int     `json:"transacoes"`
}

func (h *Handler) productRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.svc.ProductRanking(r.Context(), rangeFrom(r))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]productRankResponse, len(ranking))
	for i, p := range ranking {
		resp[i] = productRankResponse{
			ProdutoNome:       p.ProdutoNome,
			UnidadeMedida:     p.UnidadeMedida,
			FaturamentoTotal:  p.FaturamentoTotal,
			QuantidadeVendida: p.QuantidadeVendida,
			Transacoes:        p.Transacoes,
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

type clientRankResponse struct {
	ClienteNome      string  `json:"cliente_nome"`
	FaturamentoTotal float64 `json:"faturamento_total"`
	PesoTotal        float64 `json:"peso_total"`
	Transacoes       int     `json:"transacoes"`
}

func (h *Handler) clientRanking(w http.ResponseWriter, r *http.Request) {
	ranking, err := h.svc.ClientRanking(r.Context(), rangeFrom(r))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]clientRankResponse, len(ranking))
	for i, c := range ranking {
		resp[i] = clientRankResponse{
			ClienteNome:      c.ClienteNome,
			FaturamentoTotal: c.FaturamentoTotal,
			PesoTotal:        c.PesoTotal,
			Transacoes:       c.Transacoes,
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}

type sellerProductivityResponse struct {
	VendedorID   int64   `json:"vendedor_id"`
	VendedorNome string  `json:"vendedor_nome"`
	TotalVendas  float64 `json:"total_vendas"`
	NumeroVendas int     `json:"numero_vendas"`
	TicketMedio  float64 `json:"ticket_medio"`
}

func (h *Handler) sellerProductivity(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.svc.SellerProductivity(r.Context(), rangeFrom(r))
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]sellerProductivityResponse, len(sellers))
	for i, v := range sellers {
		resp[i] = sellerProductivityResponse{
			VendedorID:   v.VendedorID,
			VendedorNome: v.VendedorNome,
			TotalVendas:  v.TotalVendas,
			NumeroVendas: v.NumeroVendas,
			TicketMedio:  v.TicketMedio,
		}
	}

	httpx.JSON(w, http.StatusOK, resp)
}
