// Command values-journal starts the values journal HTTP server.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/and161185/values-journal/internal/catalog"
	"github.com/and161185/values-journal/internal/config"
	"github.com/and161185/values-journal/internal/limiter"
	"github.com/and161185/values-journal/internal/migrate"
	"github.com/and161185/values-journal/internal/repository/postgres"
	httpserver "github.com/and161185/values-journal/internal/server/http"
	"github.com/and161185/values-journal/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and starts the HTTP server.
func main() {
	cfg := config.New()

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
	)

	if cfg.JWTKey == "" {
		logger.Fatal("missing jwt signing key (JWT_KEY)")
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.PostgresDSN); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	db, err := postgres.New(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatal("postgres.New", zap.Error(err))
	}
	defer db.Close()

	// Repositories
	userRepo := postgres.NewUserRepo(db)
	entryRepo := postgres.NewEntryRepo(db)

	lim := limiter.NewPGWithQuerier(db.Pool, cfg.LimiterWindow, cfg.LimiterMaxFails, cfg.LimiterBlockFor)

	// Services
	clock := clockwork.NewRealClock()
	authSvc := service.NewAuthService(userRepo, []byte(cfg.JWTKey), cfg.AccessTTL, cfg.BcryptCost, lim)
	entrySvc := service.NewEntryService(entryRepo, clock)

	cat, err := catalog.Load()
	if err != nil {
		logger.Fatal("load value catalog", zap.Error(err))
	}

	srv := httpserver.NewServer(logger, authSvc, entrySvc, cat, db, []byte(cfg.JWTKey), clock)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Addr)
	}()

	// Wait for stop
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
