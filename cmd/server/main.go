package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/session"
	"finance-tracker/internal/storage"
	"finance-tracker/web"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	stores, err := storage.Open(cfg.StorageBackend, cfg.DataDir, cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	sessions := session.NewManager(cfg.SessionTTL)
	h := handlers.NewHandlers(stores, sessions, cfg.SecureCookie, logger)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handlers.LogRequests(logger)(setupRouter(h)),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting server", "port", cfg.Port, "backend", cfg.StorageBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("server stopped gracefully")
}

// setupRouter registers all routes. Category and transaction routes are
// gated behind a session; the home page and auth flows are open.
func setupRouter(h *handlers.Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.FileServer(http.FS(web.StaticFS)))

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /register", h.RegisterForm)
	mux.HandleFunc("POST /register", h.Register)
	mux.HandleFunc("GET /login", h.LoginForm)
	mux.HandleFunc("POST /login", h.Login)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.Handle("GET /categorias", h.RequireAuth(http.HandlerFunc(h.ListCategories)))
	mux.Handle("POST /categorias", h.RequireAuth(http.HandlerFunc(h.CreateCategory)))
	mux.Handle("GET /edit_category/{id}", h.RequireAuth(http.HandlerFunc(h.EditCategoryForm)))
	mux.Handle("POST /edit_category/{id}", h.RequireAuth(http.HandlerFunc(h.EditCategory)))
	mux.Handle("GET /delete_category/{id}", h.RequireAuth(http.HandlerFunc(h.DeleteCategory)))

	mux.Handle("GET /transacoes", h.RequireAuth(http.HandlerFunc(h.ListTransactions)))
	mux.Handle("POST /transacoes", h.RequireAuth(http.HandlerFunc(h.CreateTransaction)))
	mux.Handle("GET /delete_transaction/{id}", h.RequireAuth(http.HandlerFunc(h.DeleteTransaction)))

	return mux
}
