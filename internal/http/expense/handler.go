package expense

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/expense"
	"github.com/caipirao/caipirao/internal/httpx"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type expenseRequest struct {
	TipoSaida            string  `json:"tipo_saida"`
	Discriminacao        string  `json:"discriminacao"`
	NomeRecebedor        string  `json:"nome_recebedor"`
	DataPagamento        *string `json:"data_pagamento,omitempty"`
	DataVencimento       *string `json:"data_vencimento,omitempty"`
	FormaPagamento       string  `json:"forma_pagamento"`
	Valor                float64 `json:"valor"`
	ResponsavelPagamento string  `json:"responsavel_pagamento"`
}

func (req expenseRequest) params() (expense.CreateParams, error) {
	dataPagamento, err := parseDatePtr(req.DataPagamento)
	if err != nil {
		return expense.CreateParams{}, err
	}

	dataVencimento, err := parseDatePtr(req.DataVencimento)
	if err != nil {
		return expense.CreateParams{}, err
	}

	return expense.CreateParams{
		TipoSaida:            req.TipoSaida,
		Discriminacao:        req.Discriminacao,
		NomeRecebedor:        req.NomeRecebedor,
		DataPagamento:        dataPagamento,
		DataVencimento:       dataVencimento,
		FormaPagamento:       req.FormaPagamento,
		Valor:                req.Valor,
		ResponsavelPagamento: req.ResponsavelPagamento,
	}, nil
}

type expenseResponse struct {
	ID                   int64   `json:"id"`
	TipoSaida            string  `json:"tipo_saida"`
	Discriminacao        string  `json:"discriminacao,omitempty"`
	NomeRecebedor        string  `json:"nome_recebedor,omitempty"`
	DataPagamento        *string `json:"data_pagamento,omitempty"`
	DataVencimento       *string `json:"data_vencimento,omitempty"`
	FormaPagamento       string  `json:"forma_pagamento,omitempty"`
	Valor                float64 `json:"valor"`
	ResponsavelPagamento string  `json:"responsavel_pagamento,omitempty"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:                   e.ID,
		TipoSaida:            e.TipoSaida,
		Discriminacao:        e.Discriminacao,
		NomeRecebedor:        e.NomeRecebedor,
		DataPagamento:        formatDatePtr(e.DataPagamento),
		DataVencimento:       formatDatePtr(e.DataVencimento),
		FormaPagamento:       e.FormaPagamento,
		Valor:                e.Valor,
		ResponsavelPagamento: e.ResponsavelPagamento,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]expenseResponse, len(expenses))
	for i, e := range expenses {
		resp[i] = toResponse(e)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	params, err := req.params()
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Data em formato inválido. Use AAAA-MM-DD.")
		return
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(e))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	params, err := req.params()
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Data em formato inválido. Use AAAA-MM-DD.")
		return
	}

	e, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(e))
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

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Despesa removida com sucesso."})
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

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
