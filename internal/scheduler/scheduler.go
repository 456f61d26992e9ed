// Package scheduler runs the periodic status sweep that advances expired
// upcoming events to completed.
package scheduler

import (
	"context"
	"time"

	"github.com/vivekmohanraj/EventSphere/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventSweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Event, error)
}

type Scheduler struct {
	eventService eventSweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("status sweeper started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("status sweeper stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one bounded sweep. A failed run is logged and retried on the
// next tick; individual event rows either moved or did not.
func (s *Scheduler) tick(ctx context.Context) {
	swept, err := s.eventService.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("failed to sweep expired events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range swept {
		s.logger.Info("event completed",
			logger.String("event_id", e.ID),
			logger.String("name", e.Name),
		)
	}
}
