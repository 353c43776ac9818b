// Package middleware carries the bearer-token checks composed in front of the
// protected route groups.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/caipirao/caipirao/internal/auth"
	"github.com/caipirao/caipirao/internal/httpx"
)

type ctxKey int

const claimsKey ctxKey = iota

// WithClaims stores verified token claims in the request context.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom retrieves the claims placed by RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// RequireAuth extracts and verifies the bearer token. A missing token is 401;
// a token that fails verification is 403.
func RequireAuth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, prefix) {
				httpx.Fail(w, http.StatusUnauthorized, "Acesso negado. Nenhum token fornecido.")
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				httpx.Fail(w, http.StatusForbidden, "Token inválido ou expirado.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin must run after RequireAuth. The role is interpreted through
// Perfil.IsAdmin, never by comparing the string here.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r.Context())
		if !ok || !claims.Perfil.IsAdmin() {
			httpx.Fail(w, http.StatusForbidden, "Acesso negado. Requer perfil de Administrador.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
