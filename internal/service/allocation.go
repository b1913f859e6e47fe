package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/BlockBooker/internal/allocation"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const autoPlanAttempts = 3

type AllocationService struct {
	eventRepo ports.EventRepo
	blockRepo ports.RoomBlockRepo
	guestRepo ports.GuestRepo
	locker    ports.Locker
	activity  ports.ActivityLog
	logger    logger.Logger
}

func NewAllocationService(
	eventRepo ports.EventRepo,
	blockRepo ports.RoomBlockRepo,
	guestRepo ports.GuestRepo,
	locker ports.Locker,
	activity ports.ActivityLog,
	logger logger.Logger,
) *AllocationService {
	return &AllocationService{
		eventRepo: eventRepo,
		blockRepo: blockRepo,
		guestRepo: guestRepo,
		locker:    locker,
		activity:  activity,
		logger:    logger,
	}
}

// PlanAllocation computes placements from a fresh snapshot and commits the
// changed ones. The store re-checks bucket capacity at commit time; an
// automatic plan that loses that check is recomputed from a new snapshot.
func (s *AllocationService) PlanAllocation(
	ctx context.Context,
	eventID string,
	req domain.AllocationRequest,
) (*domain.AllocationResult, error) {
	switch req.Mode {
	case domain.AllocationModeAuto:
	case domain.AllocationModeManual:
		if len(req.Overrides) == 0 {
			return nil, fmt.Errorf("%w: manual mode needs at least one override", domain.ErrValidation)
		}
	default:
		return nil, fmt.Errorf("%w: unknown allocation mode %q", domain.ErrValidation, req.Mode)
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if req.DryRun {
		res, _, err := s.plan(ctx, eventID, req)
		return res, err
	}

	var res *domain.AllocationResult
	err := s.locker.WithLock(ctx, "allocation:"+eventID, func(ctx context.Context) error {
		var err error
		res, err = s.planAndCommit(ctx, eventID, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("allocation committed",
		logger.String("event_id", eventID),
		logger.String("mode", string(req.Mode)),
		logger.Int("assignments", len(res.Assignments)),
		logger.Int("unplaced", len(res.Unplaced)),
		logger.Int("warnings", len(res.Warnings)),
	)

	go s.activity.Record(context.WithoutCancel(ctx), domain.Activity{
		EventID:  eventID,
		Kind:     domain.ActivityAllocation,
		EntityID: eventID,
		Message: fmt.Sprintf("%s allocation: %d assigned, %d unplaced",
			req.Mode, len(res.Assignments), len(res.Unplaced)),
	})

	return res, nil
}

func (s *AllocationService) planAndCommit(
	ctx context.Context,
	eventID string,
	req domain.AllocationRequest,
) (*domain.AllocationResult, error) {
	attempts := 1
	if req.Mode == domain.AllocationModeAuto {
		attempts = autoPlanAttempts
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var (
			res     *domain.AllocationResult
			changes []domain.Assignment
		)
		res, changes, err = s.plan(ctx, eventID, req)
		if err != nil {
			return nil, err
		}

		if len(changes) == 0 {
			res.Committed = true
			return res, nil
		}

		err = s.guestRepo.CommitAllocation(ctx, eventID, changes)
		if err == nil {
			res.Committed = true
			return res, nil
		}

		retryable := errors.Is(err, domain.ErrBucketFull) || errors.Is(err, domain.ErrConcurrencyConflict)
		if req.Mode != domain.AllocationModeAuto || !retryable {
			return nil, fmt.Errorf("commit allocation: %w", err)
		}

		s.logger.Warn("allocation snapshot went stale, replanning",
			logger.String("event_id", eventID),
			logger.Int("attempt", attempt),
		)
	}

	return nil, fmt.Errorf("commit allocation after %d attempts: %w", attempts, err)
}

// plan returns the planner result and the assignments that differ from the snapshot.
func (s *AllocationService) plan(
	ctx context.Context,
	eventID string,
	req domain.AllocationRequest,
) (*domain.AllocationResult, []domain.Assignment, error) {
	blocks, err := s.blockRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list room blocks: %w", err)
	}

	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("list guests: %w", err)
	}

	buckets := domain.Buckets(blocks)

	var res *domain.AllocationResult
	if req.Mode == domain.AllocationModeAuto {
		res = allocation.Auto(guests, buckets, req.Reset)
	} else {
		res, err = allocation.Manual(guests, buckets, req.Overrides)
		if err != nil {
			return nil, nil, err
		}
	}
	res.Mode = req.Mode

	current := make(map[string]domain.BucketKey, len(guests))
	for _, g := range guests {
		current[g.ID] = domain.BucketKey{Floor: g.AllocatedFloor, Wing: g.AllocatedWing}
	}

	var changes []domain.Assignment
	for _, a := range res.Assignments {
		if current[a.GuestID] != a.Key() {
			changes = append(changes, a)
		}
	}
	if req.Mode == domain.AllocationModeAuto && req.Reset {
		changes = append(changes, clearedUnplaced(res.Unplaced)...)
	}

	return res, changes, nil
}

// clearedUnplaced drops stale placements of guests a reset plan could not place.
func clearedUnplaced(unplaced []domain.Guest) []domain.Assignment {
	var out []domain.Assignment
	for _, g := range unplaced {
		if !g.Allocated() {
			continue
		}
		out = append(out, domain.Assignment{GuestID: g.ID, GuestName: g.Name})
	}
	return out
}
