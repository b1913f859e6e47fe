package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/pricing"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
)

type EstimateService struct {
	eventRepo ports.EventRepo
	blockRepo ports.RoomBlockRepo
	ruleRepo  ports.RuleRepo
}

func NewEstimateService(eventRepo ports.EventRepo, blockRepo ports.RoomBlockRepo, ruleRepo ports.RuleRepo) *EstimateService {
	return &EstimateService{
		eventRepo: eventRepo,
		blockRepo: blockRepo,
		ruleRepo:  ruleRepo,
	}
}

// EstimateCost quotes a group of pax for the whole stay. Rooms are priced at
// the representative rate with the tier the room count would unlock.
func (s *EstimateService) EstimateCost(ctx context.Context, eventID string, pax int) (*domain.CostEstimate, error) {
	if pax <= 0 {
		return nil, fmt.Errorf("%w: pax must be positive", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	blocks, err := s.blockRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list room blocks: %w", err)
	}

	rules, err := s.ruleRepo.ListDiscountRules(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list discount rules: %w", err)
	}

	addOns, err := s.eventRepo.ListAddOns(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}

	occupancy := event.RoomOccupancy
	if occupancy <= 0 {
		occupancy = defaultRoomOccupancy
	}

	nights := event.Nights()
	paxDec := decimal.NewFromInt(int64(pax))
	nightsDec := decimal.NewFromInt(int64(nights))
	rooms := pricing.CeilDiv(pax, occupancy)
	tier := ResolveTier(rules, rooms)

	roomsCost := RepresentativeRate(blocks).
		Mul(decimal.NewFromInt(int64(rooms))).
		Mul(nightsDec)
	roomsCost = pricing.ApplyDiscount(roomsCost, tier.Percent)

	food := pricing.RoundHalfUp(event.MealCostPerPaxNight.Mul(paxDec).Mul(nightsDec))
	catering := pricing.RoundHalfUp(event.CateringPerPax.Mul(paxDec))
	addOnsCost := pricing.RoundHalfUp(nonIncludedTotal(addOns, nil).Mul(paxDec))

	total := roomsCost.Add(food).Add(catering).Add(addOnsCost)

	return &domain.CostEstimate{
		Pax:         pax,
		Nights:      nights,
		RoomsNeeded: rooms,
		DiscountPct: tier.Percent,
		Rooms:       roomsCost,
		Food:        food,
		Catering:    catering,
		AddOns:      addOnsCost,
		Total:       total,
		PerPax:      pricing.RoundHalfUp(total.Div(paxDec)),
	}, nil
}

// nonIncludedTotal sums prices of add-ons that are not part of the package.
// A nil selection means every add-on of the event.
func nonIncludedTotal(addOns []domain.AddOn, selected map[string]bool) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range addOns {
		if a.IsIncluded {
			continue
		}
		if selected != nil && !selected[a.ID] {
			continue
		}
		sum = sum.Add(a.Price)
	}
	return sum
}
