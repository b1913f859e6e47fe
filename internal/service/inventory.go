package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultReserveAttempts = 3

// InventoryLedger serializes every change to a room block's booked quantity
// through the store's conditional update. Conflicts are retried immediately a
// bounded number of times; exhaustion is never retried.
type InventoryLedger struct {
	store    ports.InventoryStore
	attempts int
	logger   logger.Logger
}

func NewInventoryLedger(store ports.InventoryStore, attempts int, logger logger.Logger) *InventoryLedger {
	if attempts <= 0 {
		attempts = defaultReserveAttempts
	}
	return &InventoryLedger{
		store:    store,
		attempts: attempts,
		logger:   logger,
	}
}

func (l *InventoryLedger) TryReserve(ctx context.Context, roomBlockID string, qty int) (*domain.Reservation, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: qty must be positive", domain.ErrValidation)
	}

	var res *domain.Reservation
	err := l.withConflictRetry(ctx, "reserve", roomBlockID, func() error {
		var err error
		res, err = l.store.Reserve(ctx, roomBlockID, qty)
		return err
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Release gives back the quantity held by a reservation. Releasing the same
// reservation again is a no-op and reports false.
func (l *InventoryLedger) Release(ctx context.Context, reservationID string) (bool, error) {
	var released bool
	err := l.withConflictRetry(ctx, "release", reservationID, func() error {
		var err error
		released, err = l.store.Release(ctx, reservationID)
		return err
	})
	if err != nil {
		return false, err
	}

	return released, nil
}

// Inventory returns fresh totals for an event.
func (l *InventoryLedger) Inventory(ctx context.Context, eventID string) (domain.Inventory, error) {
	inv, err := l.store.BookedTotal(ctx, eventID)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("booked total: %w", err)
	}
	return inv, nil
}

func (l *InventoryLedger) withConflictRetry(ctx context.Context, op, id string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= l.attempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}

		l.logger.Warn("inventory conflict",
			logger.String("op", op),
			logger.String("id", id),
			logger.Int("attempt", attempt),
		)

		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", op, ctxErr)
		}
	}

	return fmt.Errorf("%s after %d attempts: %w", op, l.attempts, err)
}
