package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const roomBlockColumns = `id, event_id, room_type, rate, total_qty, booked_qty, floor, wing, created_at, updated_at`

type RoomBlockRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomBlockRepo(db *dbpg.DB) *RoomBlockRepository {
	return &RoomBlockRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanRoomBlock(row rowScanner) (domain.RoomBlock, error) {
	var b domain.RoomBlock
	err := row.Scan(
		&b.ID, &b.EventID, &b.RoomType, &b.Rate, &b.TotalQty, &b.BookedQty,
		&b.Floor, &b.Wing, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *RoomBlockRepository) GetByID(ctx context.Context, id string) (*domain.RoomBlock, error) {
	query := `SELECT ` + roomBlockColumns + ` FROM room_blocks WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room block: %w", err)
	}

	b, err := scanRoomBlock(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomBlockNotFound
		}
		return nil, fmt.Errorf("scan room block: %w", err)
	}

	return &b, nil
}

func (r *RoomBlockRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.RoomBlock, error) {
	query := `SELECT ` + roomBlockColumns + ` FROM room_blocks
			  WHERE event_id = $1
			  ORDER BY floor, wing, created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list room blocks: %w", err)
	}
	defer rows.Close()

	var res []domain.RoomBlock
	for rows.Next() {
		b, err := scanRoomBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room block: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
