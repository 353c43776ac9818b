package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/httpx"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type registerResponse struct {
	ID     int64  `json:"id"`
	Email  string `json:"email"`
	Perfil string `json:"perfil"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	u, err := h.svc.Register(r.Context(), req.Email, req.Senha)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, registerResponse{
		ID:     u.ID,
		Email:  u.Email,
		Perfil: string(u.Perfil),
	})
}

type loginRequest struct {
	Identificador string `json:"identificador"`
	Senha         string `json:"senha"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Fail(w, http.StatusBadRequest, "Corpo da requisição inválido.")
		return
	}

	token, err := h.svc.Login(r.Context(), req.Identificador, req.Senha)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, loginResponse{Token: token})
}
