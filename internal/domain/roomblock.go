package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RoomBlock struct {
	ID        string          `json:"id"`
	EventID   string          `json:"event_id"`
	RoomType  string          `json:"room_type"`
	Rate      decimal.Decimal `json:"rate"`
	TotalQty  int             `json:"total_qty"`
	BookedQty int             `json:"booked_qty"`
	Floor     string          `json:"floor"`
	Wing      string          `json:"wing"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (b *RoomBlock) Available() int {
	return b.TotalQty - b.BookedQty
}

type ReservationStatus string

const (
	ReservationStatusHeld     ReservationStatus = "held"
	ReservationStatusReleased ReservationStatus = "released"
)

// Reservation is the handle returned by the inventory ledger for one reserve call.
type Reservation struct {
	ID          string            `json:"id"`
	RoomBlockID string            `json:"room_block_id"`
	Qty         int               `json:"qty"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

type Inventory struct {
	TotalRooms  int `json:"total_rooms"`
	BookedRooms int `json:"booked_rooms"`
}

func (i Inventory) Unsold() int {
	if i.BookedRooms >= i.TotalRooms {
		return 0
	}
	return i.TotalRooms - i.BookedRooms
}

// SumInventory totals capacity over the given blocks.
func SumInventory(blocks []RoomBlock) Inventory {
	var inv Inventory
	for _, b := range blocks {
		inv.TotalRooms += b.TotalQty
		inv.BookedRooms += b.BookedQty
	}
	return inv
}
