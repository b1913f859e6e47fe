package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// memInventory is an in-process InventoryStore guarded by one mutex per block.
type memInventory struct {
	mu           sync.Mutex
	blocks       map[string]*memBlock
	reservations map[string]*domain.Reservation
	releases     int
}

type memBlock struct {
	mu      sync.Mutex
	eventID string
	total   int
	booked  int
}

func newMemInventory() *memInventory {
	return &memInventory{
		blocks:       make(map[string]*memBlock),
		reservations: make(map[string]*domain.Reservation),
	}
}

func (m *memInventory) addBlock(id, eventID string, total, booked int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocks[id] = &memBlock{eventID: eventID, total: total, booked: booked}
}

func (m *memInventory) block(id string) (*memBlock, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[id]
	return b, ok
}

func (m *memInventory) booked(id string) int {
	b, _ := m.block(id)
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.booked
}

func (m *memInventory) Reserve(_ context.Context, roomBlockID string, qty int) (*domain.Reservation, error) {
	b, ok := m.block(roomBlockID)
	if !ok {
		return nil, domain.ErrRoomBlockNotFound
	}

	b.mu.Lock()
	if b.booked+qty > b.total {
		b.mu.Unlock()
		return nil, domain.ErrExhausted
	}
	b.booked += qty
	b.mu.Unlock()

	res := &domain.Reservation{
		ID:          uuid.New().String(),
		RoomBlockID: roomBlockID,
		Qty:         qty,
		Status:      domain.ReservationStatusHeld,
		CreatedAt:   time.Now(),
	}
	m.mu.Lock()
	m.reservations[res.ID] = res
	m.mu.Unlock()

	return res, nil
}

func (m *memInventory) Release(_ context.Context, reservationID string) (bool, error) {
	m.mu.Lock()
	res, ok := m.reservations[reservationID]
	if !ok {
		m.mu.Unlock()
		return false, domain.ErrReservationNotFound
	}
	if res.Status == domain.ReservationStatusReleased {
		m.mu.Unlock()
		return false, nil
	}
	res.Status = domain.ReservationStatusReleased
	m.releases++
	b := m.blocks[res.RoomBlockID]
	m.mu.Unlock()

	b.mu.Lock()
	b.booked = max(b.booked-res.Qty, 0)
	b.mu.Unlock()

	return true, nil
}

func (m *memInventory) BookedTotal(_ context.Context, eventID string) (domain.Inventory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var inv domain.Inventory
	for _, b := range m.blocks {
		if b.eventID != eventID {
			continue
		}
		b.mu.Lock()
		inv.TotalRooms += b.total
		inv.BookedRooms += b.booked
		b.mu.Unlock()
	}
	return inv, nil
}

// activityRecorder is an ActivityLog that keeps what it was given.
type activityRecorder struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (r *activityRecorder) Record(_ context.Context, a domain.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, a)
}

func (r *activityRecorder) kinds() []domain.ActivityKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityKind, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Kind)
	}
	return out
}
