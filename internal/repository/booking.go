package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, event_id, room_block_id, guest_id, reservation_id, add_on_ids, nights,
	room_rate, add_ons_amount, original_amount, discount_pct, total_amount,
	status, checked_in, created_at, updated_at, cancelled_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create is idempotent per booking id: a retry whose first attempt was
// committed but never acknowledged finds its own row and succeeds.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			  ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.EventID, b.RoomBlockID, b.GuestID, b.ReservationID, pq.Array(b.AddOnIDs), b.Nights,
		b.RoomRate, b.AddOnsAmount, b.OriginalAmount, b.DiscountPct, b.TotalAmount,
		b.Status, b.CheckedIn, b.CreatedAt, b.UpdatedAt, b.CancelledAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.EventID, &b.RoomBlockID, &b.GuestID, &b.ReservationID, pq.Array(&b.AddOnIDs), &b.Nights,
		&b.RoomRate, &b.AddOnsAmount, &b.OriginalAmount, &b.DiscountPct, &b.TotalAmount,
		&b.Status, &b.CheckedIn, &b.CreatedAt, &b.UpdatedAt, &b.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Cancel moves a confirmed booking to cancelled. The bool reports whether
// this call changed the status; an already cancelled booking is returned
// as is.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, bool, error) {
	query := `UPDATE bookings
			  SET status = $2, cancelled_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND status = $3
			  RETURNING ` + bookingColumns

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, false, fmt.Errorf("cancel booking: %w", err)
	}

	b, err := scanBooking(row)
	if err == nil {
		return b, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("scan booking: %w", err)
	}

	b, err = r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return b, false, nil
}

func (r *BookingRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
			  WHERE event_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
