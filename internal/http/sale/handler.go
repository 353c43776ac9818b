package sale

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type saleRequest struct {
	ClienteID          int64    `json:"cliente_id"`
	ProdutoNome        string   `json:"produto_nome"`
	DataVenda          string   `json:"data_venda"`
	ValorTotal         float64  `json:"valor_total"`
	Peso               *float64 `json:"peso,omitempty"`
	DataPagamento      *string  `json:"data_pagamento,omitempty"`
	DataVencimento     *string  `json:"data_vencimento,omitempty"`
	PrecoManual        *float64 `json:"preco_manual,omitempty"`
	ResponsavelVendaID int64    `json:"responsavel_venda_id"`
}

func (req saleRequest) params() (sale.CreateParams, error) {
	dataVenda, err := parseDate(req.DataVenda)
	if err != nil {
		return sale.CreateParams{}, err
	}

	dataPagamento, err := parseDatePtr(req.DataPagamento)
	if err != nil {
		return sale.CreateParams{}, err
	}

	dataVencimento, err := parseDatePtr(req.DataVencimento)
	if err != nil {
		return sale.CreateParams{}, err
	}

	return sale.CreateParams{
		ClienteID:          req.ClienteID,
		ProdutoNome:        req.ProdutoNome,
		DataVenda:          dataVenda,
		ValorTotal:         req.ValorTotal,
		Peso:               req.Peso,
		DataPagamento:      dataPagamento,
		DataVencimento:     dataVencimento,
		PrecoManual:        req.PrecoManual,
		ResponsavelVendaID: req.ResponsavelVendaID,
	}, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponseList(sales))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	params, err := req.params()
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Data em formato inválido. Use AAAA-MM-DD.")
		return
	}

	venda, err := h.svc.Create(r.Context(), params)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(venda))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	params, err := req.params()
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Data em formato inválido. Use AAAA-MM-DD.")
		return
	}

	venda, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(venda))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Venda removida com sucesso."})
}
