package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/worklog-backend/internal/adapter/postgres"
	memorepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/memo"
	projectrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/project"
	recordrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/record"
	tokenrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/worklog-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/worklog-backend/internal/adapter/provider/deepseek"
	"github.com/heartmarshall/worklog-backend/internal/adapter/provider/gemini"
	jwtauth "github.com/heartmarshall/worklog-backend/internal/auth"
	"github.com/heartmarshall/worklog-backend/internal/config"
	aisvc "github.com/heartmarshall/worklog-backend/internal/service/ai"
	authsvc "github.com/heartmarshall/worklog-backend/internal/service/auth"
	memosvc "github.com/heartmarshall/worklog-backend/internal/service/memo"
	projectsvc "github.com/heartmarshall/worklog-backend/internal/service/project"
	recordsvc "github.com/heartmarshall/worklog-backend/internal/service/record"
	syncsvc "github.com/heartmarshall/worklog-backend/internal/service/sync"
	"github.com/heartmarshall/worklog-backend/internal/transport/middleware"
	"github.com/heartmarshall/worklog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires services and the HTTP server, and
// blocks until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Any("ai_providers", cfg.AI.AllowedProviders()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Repositories.
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	records := recordrepo.New(pool)
	projects := projectrepo.New(pool)
	memos := memorepo.New(pool)

	// Services.
	txm := postgres.NewTxManager(pool)
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, tokens, jwtManager, txm, cfg.Auth)
	recordService := recordsvc.NewService(logger, records, cfg.Worklog)
	projectService := projectsvc.NewService(logger, projects, cfg.Worklog)
	memoService := memosvc.NewService(logger, memos)
	aiService := aisvc.NewService(logger, records, cfg.AI,
		gemini.NewProviderWithURL(cfg.AI.GeminiBaseURL, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.RequestTimeout, logger),
		deepseek.NewProviderWithURL(cfg.AI.DeepSeekBaseURL, cfg.AI.DeepSeekAPIKey, cfg.AI.DeepSeekModel, cfg.AI.RequestTimeout, logger),
	)
	syncService := syncsvc.NewService(logger, records, projects, memos)

	// Realtime change feed: postgres NOTIFY -> hub -> SSE subscribers.
	hub := syncsvc.NewHub(logger)
	listener := postgres.NewListener(cfg.Database.DSN, logger)
	go func() {
		if err := listener.Run(ctx, func(ev postgres.ChangeEvent) {
			hub.Publish(ev.UserID, ev.Table)
		}); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("change listener stopped", slog.String("error", err.Error()))
		}
	}()

	// HTTP transport.
	handlers := rest.Handlers{
		Auth:    rest.NewAuthHandler(authService, logger),
		Record:  rest.NewRecordHandler(recordService, logger),
		Project: rest.NewProjectHandler(projectService, logger),
		Memo:    rest.NewMemoHandler(memoService, logger),
		AI:      rest.NewAIHandler(aiService, logger),
		Sync:    rest.NewSyncHandler(syncService, hub, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

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

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
