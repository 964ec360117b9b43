package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/api"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/cache"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/cleanup"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/config"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/contact"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/defaults"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/health"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/i18n"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/pages"
	"github.com/kirthikaMurugadass/Dzaferi-Gartenbau/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP content service",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slog.Info("starting garden-site",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"dataset", cfg.Store.Dataset,
		"locales", cfg.Routing.Locales,
	)

	// Create context for initialization
	initCtx, initCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer initCancel()

	public, privileged := storeClients(cfg)
	fetcher := newFetcher(cfg, public, privileged)

	loader, err := defaults.NewLoader()
	if err != nil {
		return fmt.Errorf("failed to load embedded defaults: %w", err)
	}
	if cfg.Defaults.File != "" {
		if err := loader.LoadFromFile(cfg.Defaults.File); err != nil {
			slog.Warn("failed to load defaults file, keeping embedded content", "file", cfg.Defaults.File, "error", err)
		}
	}

	pageCache, err := openCache(initCtx, cfg.Redis)
	if err != nil {
		return err
	}
	defer pageCache.Close()

	audit, err := openAudit(initCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer audit.Close()

	registry := health.NewRegistry()
	registry.Register("store", health.CheckerFunc(public.HealthCheck))
	registry.Register("cache", pageCache)
	registry.Register("audit", health.CheckerFunc(audit.Ping))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Database.DSN != "" {
		cleanup.NewCleaner(audit, cfg.Cleanup.Interval, cfg.Cleanup.Retention).Start(ctx)
	}

	server := api.NewServer(cfg.Server, api.Dependencies{
		Assembler:  pages.NewAssembler(fetcher, loader),
		Fetcher:    fetcher,
		Contact:    contact.NewService(privileged),
		Cache:      pageCache,
		CacheTTL:   cfg.Cache.TTL,
		Audit:      audit,
		Health:     registry,
		Routing:    i18n.NewRouting(cfg.Routing.Locales, cfg.Routing.DefaultLocale),
		Revalidate: cfg.Revalidate,
	})
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 70 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	}

	slog.Info("shutting down gracefully...")

	// Cancel context to stop background workers
	cancel()

	// Close event streams first; Shutdown does not wait for hijacked connections
	server.Hub().Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("garden-site stopped")
	return nil
}

// openCache connects to Redis when configured and falls back to the in-process cache
func openCache(ctx context.Context, cfg config.RedisConfig) (cache.Cache, error) {
	if cfg.Address == "" {
		slog.Info("no redis address configured, using in-memory page cache")
		return cache.NewMemory(), nil
	}

	c, err := cache.NewRedis(ctx, cfg.Address, cfg.Password, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("redis page cache connected", "address", cfg.Address)
	return c, nil
}

// openAudit migrates and opens the revalidation audit log, or a no-op log without a DSN
func openAudit(ctx context.Context, cfg config.DatabaseConfig) (storage.Repository, error) {
	if cfg.DSN == "" {
		slog.Info("no database configured, revalidation audit disabled")
		return storage.Noop{}, nil
	}

	repo, err := storage.NewPostgresRepository(ctx, storage.PostgresConfig{DSN: cfg.DSN})
	if err != nil {
		return nil, fmt.Errorf("failed to create database repository: %w", err)
	}
	if err := repo.Migrate(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("database connected successfully")
	return repo, nil
}
