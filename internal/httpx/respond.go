// Package httpx centralizes JSON responses and the mapping from domain
// errors to HTTP status codes.
package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// Sentinel kinds wrapped by the domain layer.
var (
	ErrNotFound     = errors.New("não encontrado")
	ErrConflict     = errors.New("conflito")
	ErrValidation   = errors.New("dados inválidos")
	ErrForbidden    = errors.New("acesso negado")
	ErrUnauthorized = errors.New("não autorizado")
)

type errorResponse struct {
	Error string `json:"error"`
}

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Fail writes an {error: ...} payload with an explicit status.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorResponse{Error: message})
}

// Error maps a wrapped sentinel to its status code. Unrecognized errors are
// logged and surfaced as a generic 500 message.
func Error(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		Fail(w, http.StatusBadRequest, messageOf(err))
	case errors.Is(err, ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, messageOf(err))
	case errors.Is(err, ErrForbidden):
		Fail(w, http.StatusForbidden, messageOf(err))
	case errors.Is(err, ErrNotFound):
		Fail(w, http.StatusNotFound, messageOf(err))
	case errors.Is(err, ErrConflict):
		Fail(w, http.StatusConflict, messageOf(err))
	default:
		slog.Error("unexpected error", "error", err)
		Fail(w, http.StatusInternalServerError, "Erro interno no servidor.")
	}
}

// messageOf surfaces the wrapping message without the sentinel suffix when the
// error was built with Wrap, falling back to the full text.
func messageOf(err error) string {
	var m *messageError
	if errors.As(err, &m) {
		return m.message
	}

	return err.Error()
}

type messageError struct {
	kind    error
	message string
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.kind }

// Wrap ties a caller-facing message to one of the sentinel kinds.
func Wrap(kind error, message string) error {
	return &messageError{kind: kind, message: message}
}
