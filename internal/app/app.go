// Package app wires configuration, storage, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mirrornote/backend/internal/adapter/openai"
	"github.com/mirrornote/backend/internal/adapter/postgres"
	userrepo "github.com/mirrornote/backend/internal/adapter/postgres/user"
	"github.com/mirrornote/backend/internal/auth"
	"github.com/mirrornote/backend/internal/config"
	"github.com/mirrornote/backend/internal/service/mutation"
	usersvc "github.com/mirrornote/backend/internal/service/user"
	"github.com/mirrornote/backend/internal/transport/middleware"
	"github.com/mirrornote/backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, applies migrations, builds the dependency graph, and serves
// HTTP until ctx is cancelled.
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

	if cfg.Database.Migrate {
		if err := runMigrations(ctx, cfg.Database.DSN); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Adapters.
	repo := userrepo.New(pool)
	llm := openai.NewClient(cfg.OpenAI, logger)
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	mutations := mutation.NewService(logger, repo, llm)
	users := usersvc.NewService(logger, repo, jwtManager)

	// Transport.
	diaryHandler := rest.NewDiaryHandler(mutations, users, logger)
	userHandler := rest.NewUserHandler(users, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /live", healthHandler.Live)

	mux.HandleFunc("POST /api/v1/register", userHandler.Register)
	mux.HandleFunc("DELETE /api/v1/user", userHandler.Delete)
	mux.Handle("POST /api/v1/diary/mutate",
		rateLimiter.Limit(cfg.Server.MutateRateLimit)(http.HandlerFunc(diaryHandler.Mutate)))
	mux.HandleFunc("GET /api/v1/diary/{id}", diaryHandler.Get)
	mux.HandleFunc("POST /api/v1/diary/publication", diaryHandler.UpdatePublication)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
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
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
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
