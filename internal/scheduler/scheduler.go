package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/AutomateGardenPot_Go/internal/logger"
	"github.com/osse101/AutomateGardenPot_Go/internal/worker"
)

// Scheduler feeds jobs into a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop is called.
// A full queue blocks the schedule rather than dropping ticks.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.workerPool.Enqueue(job) {
					return
				}
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}

// RunTicks runs job n times back to back on the calling goroutine.
// It stops early when ctx is cancelled and returns the number of runs.
func RunTicks(ctx context.Context, n int, job worker.Job) int {
	log := logger.FromContext(ctx)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return i
		}
		if err := job.Process(ctx); err != nil {
			log.Error(worker.LogMsgWorkerJobFailed, "error", err, "tick", i+1)
		}
	}
	return n
}
