package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// InventoryRepository keeps room_blocks.booked_qty in step with held
// reservations. Every change is a single conditional UPDATE, so the
// booked_qty <= total_qty bound is enforced by the row itself.
type InventoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewInventoryRepo(db *dbpg.DB) *InventoryRepository {
	return &InventoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *InventoryRepository) Reserve(ctx context.Context, roomBlockID string, qty int) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Увеличиваем счётчик только если остались свободные номера
	reserveQuery := `UPDATE room_blocks
			  SET booked_qty = booked_qty + $2, updated_at = NOW()
			  WHERE id = $1 AND booked_qty + $2 <= total_qty`
	res, err := tx.ExecContext(ctx, reserveQuery, roomBlockID, qty)
	if err != nil {
		if pgCode(err) == pgCheckViolation {
			return nil, domain.ErrExhausted
		}
		return nil, fmt.Errorf("reserve: %w", conflictErr(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("reserve rows affected: %w", err)
	}
	if n == 0 {
		var exists bool
		existsQuery := `SELECT EXISTS (SELECT 1 FROM room_blocks WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, existsQuery, roomBlockID).Scan(&exists); err != nil {
			return nil, fmt.Errorf("check room block: %w", conflictErr(err))
		}
		if !exists {
			return nil, domain.ErrRoomBlockNotFound
		}
		return nil, domain.ErrExhausted
	}

	reservation := &domain.Reservation{
		ID:          uuid.New().String(),
		RoomBlockID: roomBlockID,
		Qty:         qty,
		Status:      domain.ReservationStatusHeld,
		CreatedAt:   time.Now().UTC(),
	}
	insertQuery := `INSERT INTO inventory_reservations (id, room_block_id, qty, status, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(
		ctx, insertQuery,
		reservation.ID, reservation.RoomBlockID, reservation.Qty, reservation.Status, reservation.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert reservation: %w", conflictErr(err))
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reservation: %w", conflictErr(err))
	}

	return reservation, nil
}

// Release returns false without touching the block when the reservation was
// already released.
func (r *InventoryRepository) Release(ctx context.Context, reservationID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// held -> released переключается ровно один раз
	flipQuery := `UPDATE inventory_reservations
			  SET status = $2, released_at = NOW()
			  WHERE id = $1 AND status = $3
			  RETURNING room_block_id, qty`
	var (
		blockID string
		qty     int
	)
	err = tx.QueryRowContext(
		ctx, flipQuery, reservationID,
		domain.ReservationStatusReleased, domain.ReservationStatusHeld,
	).Scan(&blockID, &qty)
	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		existsQuery := `SELECT EXISTS (SELECT 1 FROM inventory_reservations WHERE id = $1)`
		if err = tx.QueryRowContext(ctx, existsQuery, reservationID).Scan(&exists); err != nil {
			return false, fmt.Errorf("check reservation: %w", conflictErr(err))
		}
		if !exists {
			return false, domain.ErrReservationNotFound
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("release reservation: %w", conflictErr(err))
	}

	giveBackQuery := `UPDATE room_blocks
			  SET booked_qty = GREATEST(booked_qty - $2, 0), updated_at = NOW()
			  WHERE id = $1`
	if _, err = tx.ExecContext(ctx, giveBackQuery, blockID, qty); err != nil {
		return false, fmt.Errorf("give back rooms: %w", conflictErr(err))
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit release: %w", conflictErr(err))
	}

	return true, nil
}

func (r *InventoryRepository) BookedTotal(ctx context.Context, eventID string) (domain.Inventory, error) {
	query := `SELECT COALESCE(SUM(total_qty), 0), COALESCE(SUM(booked_qty), 0)
			  FROM room_blocks
			  WHERE event_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("booked total: %w", err)
	}

	var inv domain.Inventory
	if err = row.Scan(&inv.TotalRooms, &inv.BookedRooms); err != nil {
		return domain.Inventory{}, fmt.Errorf("scan booked total: %w", err)
	}

	return inv, nil
}
