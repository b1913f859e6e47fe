package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

func testBooking() *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:             "b1",
		EventID:        "e1",
		RoomBlockID:    "rb1",
		GuestID:        "g1",
		ReservationID:  "r1",
		AddOnIDs:       []string{},
		Nights:         3,
		RoomRate:       decimal.NewFromInt(5000),
		AddOnsAmount:   decimal.Zero,
		OriginalAmount: decimal.NewFromInt(15000),
		DiscountPct:    decimal.Zero,
		TotalAmount:    decimal.NewFromInt(15000),
		Status:         domain.BookingStatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func newFastBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	repo := NewBookingRepo(db)
	repo.strategy = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}
	return repo, mock
}

func TestBookingRepository_Create_RetryAfterLostAckSucceeds(t *testing.T) {
	repo, mock := newFastBookingRepo(t)

	// First attempt committed server-side, the reply was lost.
	mock.ExpectExec(`ON CONFLICT \(id\) DO NOTHING`).
		WillReturnError(errors.New("read tcp: connection reset by peer"))
	// The retry finds its own row.
	mock.ExpectExec(`ON CONFLICT \(id\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Create(context.Background(), testBooking())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_ReservationTakenByAnotherBooking(t *testing.T) {
	repo, mock := newFastBookingRepo(t)

	uniqueErr := &pq.Error{Code: "23505", Constraint: "bookings_reservation_id_key"}
	for i := 0; i < 3; i++ {
		mock.ExpectExec(`INSERT INTO bookings`).WillReturnError(uniqueErr)
	}

	err := repo.Create(context.Background(), testBooking())

	assert.Error(t, err)
}
