package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
)

// ResolveTier picks, among active rules with MinRooms <= booked, the one with
// the largest MinRooms; equal thresholds go to the higher percent.
func ResolveTier(rules []domain.DiscountRule, booked int) domain.DiscountTier {
	tier := domain.DiscountTier{Percent: decimal.Zero, BookedRooms: booked}

	var best, next *domain.DiscountRule
	for i := range rules {
		r := &rules[i]
		if !r.IsActive {
			continue
		}

		if r.MinRooms <= booked {
			if best == nil ||
				r.MinRooms > best.MinRooms ||
				(r.MinRooms == best.MinRooms && r.DiscountPct.GreaterThan(best.DiscountPct)) {
				best = r
			}
			continue
		}

		if next == nil ||
			r.MinRooms < next.MinRooms ||
			(r.MinRooms == next.MinRooms && r.DiscountPct.GreaterThan(next.DiscountPct)) {
			next = r
		}
	}

	if best != nil {
		rule := *best
		tier.Percent = rule.DiscountPct
		tier.QualifyingTier = &rule
	}
	if next != nil {
		rule := *next
		tier.NextTier = &rule
		tier.RoomsToNext = rule.MinRooms - booked
	}

	return tier
}

// DiscountResolver evaluates tiers against the live booked-room aggregate.
// Nothing is cached: every call reads the rules and the counters afresh.
type DiscountResolver struct {
	eventRepo ports.EventRepo
	ruleRepo  ports.RuleRepo
	inventory ports.InventoryStore
}

func NewDiscountResolver(eventRepo ports.EventRepo, ruleRepo ports.RuleRepo, inventory ports.InventoryStore) *DiscountResolver {
	return &DiscountResolver{
		eventRepo: eventRepo,
		ruleRepo:  ruleRepo,
		inventory: inventory,
	}
}

func (r *DiscountResolver) ResolveDiscount(ctx context.Context, eventID string) (domain.DiscountTier, error) {
	if _, err := r.eventRepo.GetByID(ctx, eventID); err != nil {
		return domain.DiscountTier{}, fmt.Errorf("get event: %w", err)
	}
	return r.Resolve(ctx, eventID)
}

// Resolve skips the event existence check; callers that already hold the event use it.
func (r *DiscountResolver) Resolve(ctx context.Context, eventID string) (domain.DiscountTier, error) {
	rules, err := r.ruleRepo.ListDiscountRules(ctx, eventID)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("list discount rules: %w", err)
	}

	inv, err := r.inventory.BookedTotal(ctx, eventID)
	if err != nil {
		return domain.DiscountTier{}, fmt.Errorf("booked total: %w", err)
	}

	return ResolveTier(rules, inv.BookedRooms), nil
}
