package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres/content"
	"github.com/heartmarshall/contentflow-backend/internal/adapter/postgres/process"
	"github.com/heartmarshall/contentflow-backend/internal/auth"
	"github.com/heartmarshall/contentflow-backend/internal/config"
	contentsvc "github.com/heartmarshall/contentflow-backend/internal/service/content"
	"github.com/heartmarshall/contentflow-backend/internal/service/workflow"
	"github.com/heartmarshall/contentflow-backend/internal/transport/dataloader"
	"github.com/heartmarshall/contentflow-backend/internal/transport/middleware"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	deps, err := Wire(logger, cfg, pool, limiter)
	if err != nil {
		return err
	}
	handler := NewRouter(deps)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

// Wire builds repositories and services on top of pool.
func Wire(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, limiter *middleware.RateLimiter) (RouterDeps, error) {
	migrator, err := postgres.NewPoolMigrator(pool)
	if err != nil {
		return RouterDeps{}, err
	}

	txm := postgres.NewTxManager(pool)

	activities := activity.New(pool)
	processes := process.New(pool)
	contents := content.NewRegistry(pool)
	auditRepo := audit.New(pool)

	policy := cfg.Workflow.Policy()
	workflowService := workflow.NewService(logger, activities, processes, contents, auditRepo, txm, workflow.Config{
		Policy:      policy,
		ActivityTTL: cfg.Workflow.ActivityTTL,
		ProcessTTL:  cfg.Workflow.ProcessTTL,
	})
	contentService := contentsvc.NewService(logger, contents, workflowService, auditRepo, txm, policy)

	return RouterDeps{
		Logger:   logger,
		Pool:     pool,
		Schema:   migrator,
		Version:  BuildVersion(),
		Tokens:   auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		Content:  contentService,
		Workflow: workflowService,
		Loaders: &dataloader.Repos{
			Activity: activities,
			Content:  contents,
		},
		CORS:           cfg.CORS,
		Limiter:        limiter,
		WriteRateLimit: cfg.Server.WriteRateLimit,
	}, nil
}
