package ports

import (
	"context"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Cancel marks a booking cancelled. The bool reports whether this call
	// made the transition.
	Cancel(ctx context.Context, id string) (*domain.Booking, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

type GuestRepo interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error)
	// CommitAllocation writes assignments after re-checking bucket capacity
	// against the stored state inside one transaction.
	CommitAllocation(ctx context.Context, eventID string, assignments []domain.Assignment) error
}
