package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/pricing"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AttritionService decides when attrition rules fire and how much inventory
// and revenue they put at risk. It never notifies anyone; callers do.
type AttritionService struct {
	eventRepo ports.EventRepo
	blockRepo ports.RoomBlockRepo
	ruleRepo  ports.RuleRepo
	activity  ports.ActivityLog
	logger    logger.Logger
	now       func() time.Time
}

func NewAttritionService(
	eventRepo ports.EventRepo,
	blockRepo ports.RoomBlockRepo,
	ruleRepo ports.RuleRepo,
	activity ports.ActivityLog,
	logger logger.Logger,
) *AttritionService {
	return &AttritionService{
		eventRepo: eventRepo,
		blockRepo: blockRepo,
		ruleRepo:  ruleRepo,
		activity:  activity,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// SweepAttrition triggers due rules and reports every triggered rule that is
// still actionable. Safe to call any number of times: the store flips each
// rule exactly once, so the flip is the last step that can fail.
func (s *AttritionService) SweepAttrition(ctx context.Context, eventID string) ([]domain.AttritionResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	rules, err := s.ruleRepo.ListAttritionRules(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attrition rules: %w", err)
	}

	blocks, err := s.blockRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list room blocks: %w", err)
	}

	now := s.now()
	newly, err := s.ruleRepo.TriggerDueAttrition(ctx, eventID, now)
	if err != nil {
		return nil, fmt.Errorf("trigger attrition: %w", err)
	}

	results := EvaluateAttrition(event, rules, newly, blocks, now)

	for _, r := range newly {
		s.logger.Info("attrition rule triggered",
			logger.String("event_id", eventID),
			logger.String("rule_id", r.ID),
			logger.String("release_percent", r.ReleasePercent.String()),
		)
		go s.activity.Record(context.WithoutCancel(ctx), domain.Activity{
			EventID:  eventID,
			Kind:     domain.ActivityAttrition,
			EntityID: r.ID,
			Message:  fmt.Sprintf("attrition rule for %s triggered", r.ReleaseDate.Format(time.DateOnly)),
		})
	}

	return results, nil
}

// EvaluateAttrition computes risk for triggered rules against fresh block
// totals. A rule stops being actionable once nothing is unsold or the event
// has checked in.
func EvaluateAttrition(
	event *domain.Event,
	rules []domain.AttritionRule,
	newly []domain.AttritionRule,
	blocks []domain.RoomBlock,
	now time.Time,
) []domain.AttritionResult {
	fresh := make(map[string]domain.AttritionRule, len(newly))
	for _, r := range newly {
		fresh[r.ID] = r
	}

	inv := domain.SumInventory(blocks)
	unsold := inv.Unsold()
	if unsold == 0 || !now.Before(event.CheckIn) {
		return nil
	}
	rate := RepresentativeRate(blocks)

	// Правила читаются до срабатывания, поэтому берём состояние из newly
	sorted := make([]domain.AttritionRule, 0, len(rules)+len(newly))
	listed := make(map[string]bool, len(rules))
	for _, r := range rules {
		if f, ok := fresh[r.ID]; ok {
			r = f
		}
		listed[r.ID] = true
		sorted = append(sorted, r)
	}
	for _, r := range newly {
		if !listed[r.ID] {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].ReleaseDate.Equal(sorted[j].ReleaseDate) {
			return sorted[i].ReleaseDate.Before(sorted[j].ReleaseDate)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var results []domain.AttritionResult
	for _, r := range sorted {
		_, isNew := fresh[r.ID]
		if !r.IsTriggered && !isNew {
			continue
		}
		r.IsTriggered = true

		atRisk := pricing.CeilPercentOf(unsold, r.ReleasePercent)
		results = append(results, domain.AttritionResult{
			Rule:           r,
			NewlyTriggered: isNew,
			UnsoldRooms:    unsold,
			RoomsAtRisk:    atRisk,
			RevenueAtRisk:  rate.Mul(decimal.NewFromInt(int64(atRisk))),
		})
	}

	return results
}

// RepresentativeRate is the room rate averaged over blocks, weighted by each
// block's total quantity.
func RepresentativeRate(blocks []domain.RoomBlock) decimal.Decimal {
	rates := make([]decimal.Decimal, len(blocks))
	qty := make([]int, len(blocks))
	for i, b := range blocks {
		rates[i] = b.Rate
		qty[i] = b.TotalQty
	}
	return pricing.WeightedRate(rates, qty)
}
