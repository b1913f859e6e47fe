package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/pricing"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingService confirms and cancels bookings. Every reservation taken from
// the ledger either ends up referenced by a stored booking or is released.
type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	blockRepo   ports.RoomBlockRepo
	guestRepo   ports.GuestRepo
	ledger      *InventoryLedger
	discounts   *DiscountResolver
	activity    ports.ActivityLog
	validate    *validator.Validate
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	blockRepo ports.RoomBlockRepo,
	guestRepo ports.GuestRepo,
	ledger *InventoryLedger,
	discounts *DiscountResolver,
	activity ports.ActivityLog,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		blockRepo:   blockRepo,
		guestRepo:   guestRepo,
		ledger:      ledger,
		discounts:   discounts,
		activity:    activity,
		validate:    newValidator(),
		logger:      logger,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error) {
	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.Status.Bookable() {
		return nil, fmt.Errorf("%w: status %s", domain.ErrEventNotBookable, event.Status)
	}

	block, err := s.blockRepo.GetByID(ctx, in.RoomBlockID)
	if err != nil {
		return nil, fmt.Errorf("get room block: %w", err)
	}
	if block.EventID != event.ID {
		return nil, fmt.Errorf("%w: room block does not belong to event", domain.ErrValidation)
	}

	guest, isNew, err := s.resolveGuest(ctx, event.ID, in)
	if err != nil {
		return nil, err
	}

	addOnIDs, addOnsAmount, err := s.priceAddOns(ctx, event.ID, in.AddOnIDs)
	if err != nil {
		return nil, err
	}

	nights := event.Nights()
	if nights < 1 {
		return nil, fmt.Errorf("%w: event has no nights to book", domain.ErrValidation)
	}

	reservation, err := s.ledger.TryReserve(ctx, block.ID, 1)
	if err != nil {
		return nil, fmt.Errorf("reserve room: %w", err)
	}

	// Reads the aggregate after our own reservation.
	tier, err := s.discounts.Resolve(ctx, event.ID)
	if err != nil {
		return nil, s.compensate(ctx, reservation, fmt.Errorf("resolve discount: %w", err))
	}

	original := block.Rate.Mul(decimal.NewFromInt(int64(nights))).Add(addOnsAmount)
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		EventID:        event.ID,
		RoomBlockID:    block.ID,
		GuestID:        guest.ID,
		ReservationID:  reservation.ID,
		AddOnIDs:       addOnIDs,
		Nights:         nights,
		RoomRate:       block.Rate,
		AddOnsAmount:   addOnsAmount,
		OriginalAmount: original,
		DiscountPct:    tier.Percent,
		TotalAmount:    pricing.ApplyDiscount(original, tier.Percent),
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if isNew {
		if err = s.guestRepo.Create(ctx, guest); err != nil {
			return nil, s.compensate(ctx, reservation,
				fmt.Errorf("%w: create guest: %w", domain.ErrPersistence, err))
		}
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if err = s.settleFailedInsert(ctx, booking, reservation, err); err != nil {
			return nil, err
		}
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.String("room_block_id", block.ID),
		logger.String("guest_id", guest.ID),
		logger.String("discount_pct", tier.Percent.String()),
		logger.String("total_amount", booking.TotalAmount.String()),
	)

	go s.activity.Record(context.WithoutCancel(ctx), domain.Activity{
		EventID:  event.ID,
		Kind:     domain.ActivityBookingCreated,
		EntityID: booking.ID,
		Message:  fmt.Sprintf("%s booked %s for %d nights", guest.Name, block.RoomType, nights),
	})

	return &domain.BookingResult{
		Booking:  booking,
		Guest:    guest,
		Discount: tier,
	}, nil
}

// compensate releases a reservation whose booking could not be stored. It
// runs detached from the caller's cancellation.
func (s *BookingService) compensate(ctx context.Context, reservation *domain.Reservation, cause error) error {
	ctx = context.WithoutCancel(ctx)

	if _, err := s.ledger.Release(ctx, reservation.ID); err != nil {
		s.logger.Error("compensating release failed, reservation left held",
			logger.String("reservation_id", reservation.ID),
			logger.String("room_block_id", reservation.RoomBlockID),
			logger.String("cause", cause.Error()),
			logger.String("error", err.Error()),
		)
		return errors.Join(cause, fmt.Errorf("release reservation %s: %w", reservation.ID, err))
	}

	s.logger.Warn("reservation released after failed booking",
		logger.String("reservation_id", reservation.ID),
		logger.String("room_block_id", reservation.RoomBlockID),
		logger.String("cause", cause.Error()),
	)
	return cause
}

// settleFailedInsert decides what a failed booking insert means. The insert
// may have been committed with the acknowledgement lost, so the reservation is
// released only once the booking is known to be absent. Returns nil when the
// booking turns out to be stored.
func (s *BookingService) settleFailedInsert(
	ctx context.Context,
	booking *domain.Booking,
	reservation *domain.Reservation,
	insertErr error,
) error {
	cause := fmt.Errorf("%w: create booking: %w", domain.ErrPersistence, insertErr)

	_, err := s.bookingRepo.GetByID(context.WithoutCancel(ctx), booking.ID)
	switch {
	case err == nil:
		s.logger.Warn("booking insert reported an error but the booking is stored",
			logger.String("booking_id", booking.ID),
			logger.String("error", insertErr.Error()),
		)
		return nil
	case errors.Is(err, domain.ErrBookingNotFound):
		return s.compensate(ctx, reservation, cause)
	default:
		// Исход неизвестен: резерв остаётся, лучше недопродать, чем продать дважды
		s.logger.Error("booking outcome unknown, reservation left held",
			logger.String("booking_id", booking.ID),
			logger.String("reservation_id", reservation.ID),
			logger.String("cause", insertErr.Error()),
			logger.String("error", err.Error()),
		)
		return errors.Join(cause, fmt.Errorf("check booking %s: %w", booking.ID, err))
	}
}

func (s *BookingService) resolveGuest(ctx context.Context, eventID string, in domain.CreateBookingInput) (*domain.Guest, bool, error) {
	if in.GuestID != "" {
		guest, err := s.guestRepo.GetByID(ctx, in.GuestID)
		if err != nil {
			return nil, false, fmt.Errorf("get guest: %w", err)
		}
		if guest.EventID != eventID {
			return nil, false, fmt.Errorf("%w: guest does not belong to event", domain.ErrValidation)
		}
		return guest, false, nil
	}

	info := in.Guest
	if err := validateGuestInfo(s.validate, &info); err != nil {
		return nil, false, err
	}
	return newGuest(eventID, info), true, nil
}

func (s *BookingService) priceAddOns(ctx context.Context, eventID string, ids []string) ([]string, decimal.Decimal, error) {
	if len(ids) == 0 {
		return []string{}, decimal.Zero, nil
	}

	addOns, err := s.eventRepo.ListAddOns(ctx, eventID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("list add-ons: %w", err)
	}

	known := make(map[string]bool, len(addOns))
	for _, a := range addOns {
		known[a.ID] = true
	}

	selected := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if !known[id] {
			return nil, decimal.Zero, fmt.Errorf("%w: unknown add-on %s", domain.ErrValidation, id)
		}
		if selected[id] {
			continue
		}
		selected[id] = true
		unique = append(unique, id)
	}

	return unique, nonIncludedTotal(addOns, selected), nil
}

// CancelBooking marks the booking cancelled and releases its reservation.
// Repeated calls release nothing further.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.CancelResult, error) {
	booking, changed, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	// Released even when the status was already cancelled, so a crash between
	// the two steps heals on retry. The ledger makes the second release a no-op.
	released, err := s.ledger.Release(ctx, booking.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("release reservation: %w", err)
	}

	if changed {
		s.logger.Info("booking cancelled",
			logger.String("booking_id", booking.ID),
			logger.String("event_id", booking.EventID),
			logger.Any("released", released),
		)

		go s.activity.Record(context.WithoutCancel(ctx), domain.Activity{
			EventID:  booking.EventID,
			Kind:     domain.ActivityBookingCancelled,
			EntityID: booking.ID,
			Message:  "booking cancelled",
		})
	}

	return &domain.CancelResult{Booking: booking, Released: released}, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.bookingRepo.ListByEvent(ctx, eventID)
}
