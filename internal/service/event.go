package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/pricing"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
)

const defaultRoomOccupancy = 2

type EventService struct {
	repo      ports.EventRepo
	blockRepo ports.RoomBlockRepo
	activity  ports.ActivityLog
}

func NewEventService(repo ports.EventRepo, blockRepo ports.RoomBlockRepo, activity ports.ActivityLog) *EventService {
	return &EventService{
		repo:      repo,
		blockRepo: blockRepo,
		activity:  activity,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventSetup, error) {
	if err := validateEventInput(&input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	status := input.Status
	if status == "" {
		status = domain.EventStatusActive
	}
	occupancy := input.RoomOccupancy
	if occupancy == 0 {
		occupancy = defaultRoomOccupancy
	}

	setup := &domain.EventSetup{
		Event: domain.Event{
			ID:                  uuid.New().String(),
			Name:                input.Name,
			CheckIn:             input.CheckIn,
			CheckOut:            input.CheckOut,
			ExpectedPax:         input.ExpectedPax,
			Status:              status,
			MealCostPerPaxNight: input.MealCostPerPaxNight,
			CateringPerPax:      input.CateringPerPax,
			RoomOccupancy:       occupancy,
			CreatedAt:           now,
			UpdatedAt:           now,
		},
	}
	eventID := setup.Event.ID

	for _, b := range input.RoomBlocks {
		setup.RoomBlocks = append(setup.RoomBlocks, domain.RoomBlock{
			ID:        uuid.New().String(),
			EventID:   eventID,
			RoomType:  b.RoomType,
			Rate:      b.Rate,
			TotalQty:  b.TotalQty,
			Floor:     strings.TrimSpace(b.Floor),
			Wing:      strings.TrimSpace(b.Wing),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	for _, r := range input.DiscountRules {
		active := true
		if r.IsActive != nil {
			active = *r.IsActive
		}
		setup.DiscountRules = append(setup.DiscountRules, domain.DiscountRule{
			ID:          uuid.New().String(),
			EventID:     eventID,
			MinRooms:    r.MinRooms,
			DiscountPct: r.DiscountPct,
			IsActive:    active,
		})
	}
	for _, r := range input.AttritionRules {
		setup.AttritionRules = append(setup.AttritionRules, domain.AttritionRule{
			ID:             uuid.New().String(),
			EventID:        eventID,
			ReleaseDate:    r.ReleaseDate.UTC(),
			ReleasePercent: r.ReleasePercent,
		})
	}
	for _, a := range input.AddOns {
		setup.AddOns = append(setup.AddOns, domain.AddOn{
			ID:         uuid.New().String(),
			EventID:    eventID,
			Name:       a.Name,
			Price:      a.Price,
			IsIncluded: a.IsIncluded,
		})
	}

	if err := s.repo.Create(ctx, setup); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	go s.activity.Record(context.WithoutCancel(ctx), domain.Activity{
		EventID:  eventID,
		Kind:     domain.ActivityEventCreated,
		EntityID: eventID,
		Message:  fmt.Sprintf("event %q created with %d room blocks", input.Name, len(setup.RoomBlocks)),
	})

	return setup, nil
}

func validateEventInput(in *domain.CreateEventInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return fmt.Errorf("%w: check_in and check_out are required", domain.ErrValidation)
	}
	if (&domain.Event{CheckIn: in.CheckIn, CheckOut: in.CheckOut}).Nights() < 1 {
		return fmt.Errorf("%w: check_out must be at least one night after check_in", domain.ErrValidation)
	}
	if in.ExpectedPax < 0 || in.RoomOccupancy < 0 {
		return fmt.Errorf("%w: expected_pax and room_occupancy must not be negative", domain.ErrValidation)
	}
	if in.MealCostPerPaxNight.IsNegative() || in.CateringPerPax.IsNegative() {
		return fmt.Errorf("%w: costs must not be negative", domain.ErrValidation)
	}
	switch in.Status {
	case "", domain.EventStatusDraft, domain.EventStatusActive:
	default:
		return fmt.Errorf("%w: new events must be draft or active", domain.ErrValidation)
	}

	for i, b := range in.RoomBlocks {
		if strings.TrimSpace(b.RoomType) == "" {
			return fmt.Errorf("%w: room_blocks[%d].room_type is required", domain.ErrValidation, i)
		}
		if b.TotalQty <= 0 {
			return fmt.Errorf("%w: room_blocks[%d].total_qty must be positive", domain.ErrValidation, i)
		}
		if b.Rate.IsNegative() {
			return fmt.Errorf("%w: room_blocks[%d].rate must not be negative", domain.ErrValidation, i)
		}
	}

	for i, r := range in.DiscountRules {
		if r.MinRooms <= 0 {
			return fmt.Errorf("%w: discount_rules[%d].min_rooms must be positive", domain.ErrValidation, i)
		}
		if !pricing.ValidPercent(r.DiscountPct) {
			return fmt.Errorf("%w: discount_rules[%d].discount_pct must be within 0..100", domain.ErrValidation, i)
		}
	}
	if err := validateTierOrder(in.DiscountRules); err != nil {
		return err
	}

	for i, r := range in.AttritionRules {
		if r.ReleaseDate.IsZero() {
			return fmt.Errorf("%w: attrition_rules[%d].release_date is required", domain.ErrValidation, i)
		}
		if !pricing.ValidPercent(r.ReleasePercent) || r.ReleasePercent.IsZero() {
			return fmt.Errorf("%w: attrition_rules[%d].release_percent must be within 0..100", domain.ErrValidation, i)
		}
	}

	for i, a := range in.AddOns {
		if strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("%w: add_ons[%d].name is required", domain.ErrValidation, i)
		}
		if a.Price.IsNegative() {
			return fmt.Errorf("%w: add_ons[%d].price must not be negative", domain.ErrValidation, i)
		}
	}

	return nil
}

// validateTierOrder rejects active tiers whose percent drops as the threshold
// rises, so the resolved percent never decreases as more rooms are booked.
func validateTierOrder(rules []domain.DiscountRuleInput) error {
	type tier struct {
		min int
		pct decimal.Decimal
	}
	var active []tier
	for _, r := range rules {
		if r.IsActive != nil && !*r.IsActive {
			continue
		}
		active = append(active, tier{min: r.MinRooms, pct: r.DiscountPct})
	}
	sort.SliceStable(active, func(i, j int) bool {
		if active[i].min != active[j].min {
			return active[i].min < active[j].min
		}
		return active[i].pct.LessThan(active[j].pct)
	})

	for i := 1; i < len(active); i++ {
		if active[i].pct.LessThan(active[i-1].pct) {
			return fmt.Errorf("%w: discount for %d rooms is lower than for %d rooms",
				domain.ErrValidation, active[i].min, active[i-1].min)
		}
	}
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blockRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list room blocks: %w", err)
	}

	addOns, err := s.repo.ListAddOns(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}

	inv := domain.SumInventory(blocks)

	return &domain.EventDetails{
		Event:          *event,
		RoomBlocks:     blocks,
		AddOns:         addOns,
		TotalRooms:     inv.TotalRooms,
		BookedRooms:    inv.BookedRooms,
		AvailableRooms: inv.Unsold(),
	}, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// ListBookable returns draft and active events, the ones attrition still applies to.
func (s *EventService) ListBookable(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListByStatus(ctx, domain.EventStatusDraft, domain.EventStatusActive)
}
