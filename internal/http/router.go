package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authdomain "github.com/caipirao/caipirao/internal/auth"
	authhttp "github.com/caipirao/caipirao/internal/http/auth"
	"github.com/caipirao/caipirao/internal/http/client"
	"github.com/caipirao/caipirao/internal/http/expense"
	"github.com/caipirao/caipirao/internal/http/matching"
	"github.com/caipirao/caipirao/internal/http/middleware"
	"github.com/caipirao/caipirao/internal/http/product"
	"github.com/caipirao/caipirao/internal/http/report"
	"github.com/caipirao/caipirao/internal/http/sale"
	"github.com/caipirao/caipirao/internal/http/user"
)

type Handlers struct {
	Auth     *authhttp.Handler
	Client   *client.Handler
	Product  *product.Handler
	Sale     *sale.Handler
	Expense  *expense.Handler
	User     *user.Handler
	Report   *report.Handler
	Matching *matching.Handler
}

// New mounts the public /auth group and the bearer-protected /api group. The
// user-management routes additionally require the ADMIN role.
func New(tokens *authdomain.Tokens, allowedOrigins []string, h Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Route("/auth", func(r chi.Router) {
		r.Use(chimiddleware.AllowContentType("application/json"))
		h.Auth.Routes(r)
	})

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))

		r.Route("/clientes", h.Client.Routes)
		r.Route("/produtos", h.Product.Routes)
		r.Route("/movimentacoes", h.Sale.Routes)
		r.Route("/despesas", h.Expense.Routes)
		r.Route("/sugestoes", h.Matching.Routes)
		r.Route("/reports", h.Report.Routes)

		r.Route("/users", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			h.User.Routes(r)
		})
	})

	return router
}
