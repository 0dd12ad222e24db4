package bootstrap

import (
	"context"
	"log/slog"

	"github.com/ykatyhoney/sunflower-land/internal/event"
	"github.com/ykatyhoney/sunflower-land/internal/scheduler"
	"github.com/ykatyhoney/sunflower-land/internal/server"
	"github.com/ykatyhoney/sunflower-land/internal/session"
	"github.com/ykatyhoney/sunflower-land/internal/sse"
	"github.com/ykatyhoney/sunflower-land/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	StreamHub          *sse.Hub
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	SessionService     session.Service
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the application in dependency order:
//  1. stream hub (ends open event streams, which would otherwise hold the
//     server shutdown until its deadline)
//  2. HTTP server (stop accepting new requests)
//  3. scheduler and workers (no new cleanup runs)
//  4. session service (wait for in-flight lifecycle publishes)
//  5. event publisher (flush pending retries)
//  6. storage
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.StreamHub != nil {
		components.StreamHub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.SessionService != nil {
		shutdownService(ctx, ServiceNameSession, components.SessionService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Storage != nil {
		if err := components.Storage.Close(); err != nil {
			slog.Error(LogMsgStorageCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
