package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Preetham1508/DogHTTPImages/internal/app"
	"github.com/Preetham1508/DogHTTPImages/internal/auth"
	"github.com/Preetham1508/DogHTTPImages/internal/lists"
	"github.com/Preetham1508/DogHTTPImages/internal/observability"
	"github.com/Preetham1508/DogHTTPImages/internal/platform/db"
	"github.com/Preetham1508/DogHTTPImages/internal/token"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	tokens := token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL)

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo, auth.NewHasher(), tokens)
	authHandler := auth.NewHandler(logger, authService)
	authGate := auth.Middleware{Logger: logger, Tokens: tokens, Repo: authRepo}

	listsRepo := lists.NewRepository(pool)
	listsService := lists.NewService(listsRepo)
	listsHandler := lists.NewHandler(logger, listsService)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:       logger,
		Config:       cfg,
		AuthHandler:  authHandler,
		AuthGate:     authGate,
		ListsHandler: listsHandler,
		Metrics:      metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
