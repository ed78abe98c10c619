package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/AutomateGardenPot_Go/internal/scheduler"
	"github.com/osse101/AutomateGardenPot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
}

// GracefulShutdown stops the components in order:
// 1. Scheduler (stop enqueueing ticks)
// 2. Worker pool (finish the in-flight tick)
//
// It gives up waiting when ctx expires.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if components.Scheduler != nil {
			components.Scheduler.Stop()
			slog.Info(LogMsgSchedulerStopped)
		}
		if components.WorkerPool != nil {
			components.WorkerPool.Stop()
			slog.Info(LogMsgWorkerPoolStopped)
		}
	}()

	select {
	case <-done:
	case <-ctx.Done():
		slog.Warn(LogMsgShutdownTimeout, "error", ctx.Err())
	}
}
