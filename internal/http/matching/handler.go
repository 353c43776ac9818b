package matching

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.suggest)
	r.Post("/", h.learn)
}

type suggestResponse struct {
	Descricao   string `json:"descricao"`
	ProdutoNome string `json:"produto_nome"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	descricao := r.URL.Query().Get("descricao")
	if descricao == "" {
		httpx.Fail(w, http.StatusBadRequest, "O parâmetro 'descricao' é obrigatório.")
		return
	}

	produtoNome, err := h.svc.Suggest(r.Context(), descricao)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, suggestResponse{
		Descricao:   descricao,
		ProdutoNome: produtoNome,
	})
}

type learnRequest struct {
	Descricao   string `json:"descricao"`
	ProdutoNome string `json:"produto_nome"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	if req.Descricao == "" || req.ProdutoNome == "" {
		httpx.Fail(w, http.StatusBadRequest, "Os campos 'descricao' e 'produto_nome' são obrigatórios.")
		return
	}

	if err := h.svc.Learn(r.Context(), req.Descricao, req.ProdutoNome); err != nil {
		httpx.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}
