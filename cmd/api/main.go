package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/caipirao/caipirao/internal/auth"
	authStore "github.com/caipirao/caipirao/internal/auth/store"
	"github.com/caipirao/caipirao/internal/client"
	clientStore "github.com/caipirao/caipirao/internal/client/store"
	"github.com/caipirao/caipirao/internal/config"
	"github.com/caipirao/caipirao/internal/database"
	"github.com/caipirao/caipirao/internal/expense"
	expenseStore "github.com/caipirao/caipirao/internal/expense/store"
	caipiraoHttp "github.com/caipirao/caipirao/internal/http"
	authHandler "github.com/caipirao/caipirao/internal/http/auth"
	clientHandler "github.com/caipirao/caipirao/internal/http/client"
	expenseHandler "github.com/caipirao/caipirao/internal/http/expense"
	matchingHandler "github.com/caipirao/caipirao/internal/http/matching"
	productHandler "github.com/caipirao/caipirao/internal/http/product"
	reportHandler "github.com/caipirao/caipirao/internal/http/report"
	saleHandler "github.com/caipirao/caipirao/internal/http/sale"
	userHandler "github.com/caipirao/caipirao/internal/http/user"
	"github.com/caipirao/caipirao/internal/importer"
	"github.com/caipirao/caipirao/internal/matching"
	matchingStore "github.com/caipirao/caipirao/internal/matching/store"
	"github.com/caipirao/caipirao/internal/product"
	productStore "github.com/caipirao/caipirao/internal/product/store"
	"github.com/caipirao/caipirao/internal/report"
	reportStore "github.com/caipirao/caipirao/internal/report/store"
	"github.com/caipirao/caipirao/internal/sale"
	saleStore "github.com/caipirao/caipirao/internal/sale/store"
	"github.com/caipirao/caipirao/internal/user"
	userStore "github.com/caipirao/caipirao/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(context.Background(), db); err != nil {
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}

	var (
		tokens = auth.NewTokens(cfg.JWT.Secret, cfg.JWT.TTL)
		hasher = auth.NewHasher(cfg.Auth.BcryptCost)

		authService     = auth.NewService(authStore.New(db), tokens, hasher)
		userService     = user.NewService(userStore.New(db), hasher)
		clientService   = client.NewService(clientStore.New(db))
		productService  = product.NewService(productStore.New(db))
		saleService     = sale.NewService(saleStore.New(db))
		expenseService  = expense.NewService(expenseStore.New(db))
		reportService   = report.NewService(reportStore.New(db))
		matchingService = matching.NewService(matchingStore.New(db))
		importService   = importer.NewService()
	)

	router := caipiraoHttp.New(tokens, cfg.CORS.AllowedOrigins, caipiraoHttp.Handlers{
		Auth:     authHandler.NewHandler(authService),
		Client:   clientHandler.NewHandler(clientService, importService),
		Product:  productHandler.NewHandler(productService),
		Sale:     saleHandler.NewHandler(saleService),
		Expense:  expenseHandler.NewHandler(expenseService),
		User:     userHandler.NewHandler(userService),
		Report:   reportHandler.NewHandler(reportService),
		Matching: matchingHandler.NewHandler(matchingService),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
