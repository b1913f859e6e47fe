package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	RoomBlockID    string          `json:"room_block_id"`
	GuestID        string          `json:"guest_id"`
	ReservationID  string          `json:"reservation_id"`
	AddOnIDs       []string        `json:"add_on_ids"`
	Nights         int             `json:"nights"`
	RoomRate       decimal.Decimal `json:"room_rate"`
	AddOnsAmount   decimal.Decimal `json:"add_ons_amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         BookingStatus   `json:"status"`
	CheckedIn      bool            `json:"checked_in"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	CancelledAt    *time.Time      `json:"cancelled_at,omitempty"`
}

type CreateBookingInput struct {
	EventID     string
	RoomBlockID string
	GuestID     string
	Guest       GuestInfo
	AddOnIDs    []string
}

type BookingResult struct {
	Booking  *Booking     `json:"booking"`
	Guest    *Guest       `json:"guest"`
	Discount DiscountTier `json:"discount"`
}

type CancelResult struct {
	Booking  *Booking `json:"booking"`
	Released bool     `json:"released"`
}
