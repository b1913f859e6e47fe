package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventLister interface {
	ListBookable(ctx context.Context) ([]*domain.Event, error)
}

type attritionSweeper interface {
	SweepAttrition(ctx context.Context, eventID string) ([]domain.AttritionResult, error)
}

type attritionNotifier interface {
	NotifyAttrition(ctx context.Context, event *domain.Event, results []domain.AttritionResult)
}

// Scheduler periodically sweeps attrition rules of every open event and
// alerts on rules that fired during the sweep.
type Scheduler struct {
	events   eventLister
	sweeper  attritionSweeper
	notifier attritionNotifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	events eventLister,
	sweeper attritionSweeper,
	notifier attritionNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		events:   events,
		sweeper:  sweeper,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	events, err := s.events.ListBookable(ctx)
	if err != nil {
		s.logger.Error("failed to list events for attrition sweep",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range events {
		if ctx.Err() != nil {
			return
		}
		s.sweep(ctx, e)
	}
}

func (s *Scheduler) sweep(ctx context.Context, e *domain.Event) {
	results, err := s.sweeper.SweepAttrition(ctx, e.ID)
	if err != nil {
		s.logger.Error("attrition sweep failed",
			logger.String("event_id", e.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	newly := domain.NewlyTriggered(results)
	if len(newly) == 0 {
		return
	}

	s.logger.Info("attrition rules fired",
		logger.String("event_id", e.ID),
		logger.Int("rules", len(newly)),
	)
	s.notifier.NotifyAttrition(ctx, e, newly)
}
