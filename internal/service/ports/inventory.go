package ports

import (
	"context"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

// InventoryStore is the only writer of room_blocks.booked_qty.
type InventoryStore interface {
	// Reserve increments booked quantity only if it stays within the total.
	Reserve(ctx context.Context, roomBlockID string, qty int) (*domain.Reservation, error)
	// Release returns the reserved quantity once per reservation. The bool is
	// false when the reservation had already been released.
	Release(ctx context.Context, reservationID string) (bool, error)
	BookedTotal(ctx context.Context, eventID string) (domain.Inventory, error)
}
