package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type productRequest struct {
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao"`
	Preco         float64 `json:"preco"`
	UnidadeMedida string  `json:"unidade_medida"`
}

func (req productRequest) params() product.CreateParams {
	return product.CreateParams{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Preco:         req.Preco,
		UnidadeMedida: product.UnidadeMedida(req.UnidadeMedida),
	}
}

type productResponse struct {
	ID            int64   `json:"id"`
	Nome          string  `json:"nome"`
	Descricao     string  `json:"descricao,omitempty"`
	Preco         float64 `json:"preco"`
	UnidadeMedida string  `json:"unidade_medida"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Preco:         p.Preco,
		UnidadeMedida: string(p.UnidadeMedida),
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	p, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	p, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(p))
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

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Produto removido com sucesso."})
}
