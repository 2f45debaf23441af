package manager

import (
	"context"
	"errors"
	"time"

	"github.com/kasuboski/discern/pkg/logger"
	"go.uber.org/zap"
)

// Scheduler indexes the library again whenever the last index run is older than its interval
type Scheduler struct {
	manager  *MediaManager
	interval time.Duration
	tick     time.Duration
}

func NewScheduler(manager *MediaManager, interval time.Duration) *Scheduler {
	return &Scheduler{
		manager:  manager,
		interval: interval,
		tick:     time.Minute,
	}
}

// Run checks for due index runs until ctx is cancelled. A non-positive interval disables scheduling.
func (s *Scheduler) Run(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	if s.interval <= 0 {
		log.Debug("library indexing is not scheduled")
		return nil
	}

	s.checkAndIndex(ctx)

	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("scheduler context cancelled")
			return nil
		case <-ticker.C:
			s.checkAndIndex(ctx)
		}
	}
}

func (s *Scheduler) checkAndIndex(ctx context.Context) {
	log := logger.FromCtx(ctx)

	runs, err := s.manager.ListIndexRuns(ctx, 1)
	if err != nil {
		log.Error("failed to get last index run", zap.Error(err))
		return
	}

	if len(runs) > 0 {
		last := runs[0]
		if last.CreatedAt != nil {
			since := time.Since(*last.CreatedAt)
			if since < s.interval {
				log.Debug("interval not elapsed yet",
					zap.Duration("time_since_last", since),
					zap.Duration("interval", s.interval))
				return
			}
		}
	}

	_, err = s.manager.IndexLibrary(ctx)
	if errors.Is(err, ErrIndexInProgress) {
		log.Debug("index already in progress")
		return
	}
	if err != nil {
		log.Error("scheduled index failed", zap.Error(err))
	}
}
