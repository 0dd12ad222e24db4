package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ykatyhoney/sunflower-land/internal/bonus"
	"github.com/ykatyhoney/sunflower-land/internal/bootstrap"
	"github.com/ykatyhoney/sunflower-land/internal/catalog"
	"github.com/ykatyhoney/sunflower-land/internal/config"
	"github.com/ykatyhoney/sunflower-land/internal/eventlog"
	"github.com/ykatyhoney/sunflower-land/internal/farm"
	"github.com/ykatyhoney/sunflower-land/internal/handler"
	"github.com/ykatyhoney/sunflower-land/internal/reconcile"
	"github.com/ykatyhoney/sunflower-land/internal/server"
	"github.com/ykatyhoney/sunflower-land/internal/session"
	"github.com/ykatyhoney/sunflower-land/internal/sse"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	for _, warning := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", warning)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		_ = store.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		_ = store.Close()
		return err
	}

	history := eventlog.NewService(store.EventLog)
	hub := sse.NewHub()
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: history,
		StreamHub:       hub,
	}); err != nil {
		_ = store.Close()
		return err
	}

	processor := farm.NewProcessor(cat, bonus.NewDefaultResolver())
	validator := reconcile.NewValidator(processor, reconcile.DefaultCaps(), cfg.MaxSessionBalance)
	sessions := session.NewService(store.Farms, processor, validator, publisher, session.Options{
		Cache: session.CacheConfig{Size: cfg.StateCacheSize, TTL: cfg.StateCacheTTL},
	})

	handler.InitValidator()
	hub.Start()

	pool, sched := bootstrap.StartBackgroundJobs(cfg, history)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Dependencies{
		Store:    store.Pinger,
		Sessions: sessions,
		History:  history,
		Catalog:  cat,
		Stream:   hub,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		StreamHub:          hub,
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		SessionService:     sessions,
		ResilientPublisher: publisher,
		Storage:            store,
	})

	return err
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Catalog loaded", "path", path, "version", cat.Version())
	return cat, nil
}
