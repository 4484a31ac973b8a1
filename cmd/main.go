package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hannahenterprises/constructly-server/config"
	"github.com/hannahenterprises/constructly-server/internal/repository"
	"github.com/hannahenterprises/constructly-server/internal/repository/postgres"
	"github.com/hannahenterprises/constructly-server/internal/service"
	"github.com/hannahenterprises/constructly-server/internal/session"
	httpx "github.com/hannahenterprises/constructly-server/internal/transport/http"
	"github.com/hannahenterprises/constructly-server/internal/transport/ws"
	"github.com/hannahenterprises/constructly-server/pkg/logger"
)

func main() {
	// --- config ---
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger.Init(logger.Config{
		Env:       logger.Env(cfg.Logging.Env),
		Service:   cfg.Logging.Service,
		Version:   cfg.Logging.Version,
		Backend:   logger.Backend(cfg.Logging.Backend),
		AddSource: cfg.Logging.AddSource,
		Debug:     cfg.Logging.Debug,
	})
	slog.Info("starting constructly-server",
		"env", cfg.Logging.Env, "version", cfg.Logging.Version)

	// --- postgres ---
	// An unreachable store is not fatal: every path degrades to the session
	// cache, and the pool reconnects on its own if the store comes back.
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, postgres.Config{
		DSN:             cfg.Postgres.DSN,
		ApplicationName: cfg.Logging.Service,
	})
	if err != nil {
		log.Fatalf("postgres config: %v", err)
	}
	defer pool.Close()

	if err := postgres.Ping(ctx, pool); err != nil {
		slog.Warn("postgres unreachable, running in fallback mode", "err", err)
	} else {
		slog.Info("postgres connected")
	}

	// --- repos ---
	builderRepo := postgres.NewBuilderRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	houseRepo := postgres.NewHouseRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)

	// --- session fallback store ---
	cache := session.NewStore()

	// --- services ---
	builderSvc := service.NewBuilderService(builderRepo, cache)
	projectSvc := service.NewProjectService(projectRepo, cache)
	quotationSvc := service.NewQuotationService(quotationRepo, cache)
	houseSvc := service.NewHouseService(houseRepo, cache)
	chatSvc := service.NewChatService(chatRepo)

	if cfg.Seed.Enabled {
		go seedStore(ctx, builderRepo, projectRepo)
	}

	// --- WS Hub & relay ---
	hub := ws.NewHub()
	wsServer := ws.NewServer(hub, chatSvc)

	// --- HTTP ---
	handler := httpx.NewHandler(builderSvc, projectSvc, quotationSvc, houseSvc)
	router := httpx.NewRouter(handler, wsServer)
	httpSrv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("http listen", "addr", cfg.HTTP.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// --- graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal", "sig", sig)
	case err := <-errCh:
		slog.Error("server error", "err", err)
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = httpSrv.Shutdown(ctxShutdown)
	slog.Info("stopped")
}

// seedStore inserts the demo records into an empty, reachable store.
// Best-effort: a dead store just means lists are served from the built-in
// seeds instead.
func seedStore(ctx context.Context, builders repository.BuilderRepository, projects repository.ProjectRepository) {
	if existing, err := builders.List(ctx); err == nil && len(existing) == 0 {
		for _, b := range session.SeedBuilders() {
			if err := builders.Create(ctx, &b); err != nil {
				slog.Warn("seed builders failed", "err", err)
				return
			}
		}
		slog.Info("seeded builders")
	}

	if existing, err := projects.List(ctx); err == nil && len(existing) == 0 {
		for _, p := range session.SeedProjects() {
			if err := projects.Create(ctx, &p); err != nil {
				slog.Warn("seed projects failed", "err", err)
				return
			}
		}
		slog.Info("seeded projects")
	}
}
