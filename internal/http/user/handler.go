package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/http/middleware"
	"github.com/caipirao/caipirao/internal/httpx"
	"github.com/caipirao/caipirao/internal/user"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Perfil   string `json:"perfil"`
	Nickname string `json:"nickname,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Perfil:   string(u.Perfil),
		Nickname: u.Nickname,
		Telefone: u.Telefone,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toResponse(u)
	}

	httpx.JSON(w, http.StatusOK, resp)
}

type createUserRequest struct {
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Perfil   string `json:"perfil"`
	Nickname string `json:"nickname"`
	Telefone string `json:"telefone"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	u, err := h.svc.Create(r.Context(), user.CreateParams{
		Email:    req.Email,
		Senha:    req.Senha,
		Perfil:   user.Perfil(req.Perfil),
		Nickname: req.Nickname,
		Telefone: req.Telefone,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(u))
}

type updateUserRequest struct {
	Email    string `json:"email"`
	Senha    string `json:"senha"`
	Perfil   string `json:"perfil"`
	Nickname string `json:"nickname"`
	Telefone string `json:"telefone"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	u, err := h.svc.Update(r.Context(), id, user.UpdateParams{
		Email:    req.Email,
		Perfil:   user.Perfil(req.Perfil),
		Senha:    req.Senha,
		Nickname: req.Nickname,
		Telefone: req.Telefone,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, "ID inválido.")
		return
	}

	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		httpx.Fail(w, http.StatusUnauthorized, "Acesso negado. Nenhum token fornecido.")
		return
	}

	if err := h.svc.Delete(r.Context(), claims.UserID, id); err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Utilizador removido com sucesso."})
}
