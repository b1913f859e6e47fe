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

const guestColumns = `id, event_id, name, email, phone, group_name, proximity_request,
	allocated_floor, allocated_wing, created_at`

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestRepo(db *dbpg.DB) *GuestRepository {
	return &GuestRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	// Повтор после потерянного ответа не должен падать на своей же строке
	query := `INSERT INTO guests (` + guestColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  ON CONFLICT (id) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		g.ID, g.EventID, g.Name, g.Email, g.Phone, g.Group, g.ProximityRequest,
		g.AllocatedFloor, g.AllocatedWing, g.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("insert guest: %w", err)
	}

	return nil
}

func scanGuest(row rowScanner) (domain.Guest, error) {
	var g domain.Guest
	err := row.Scan(
		&g.ID, &g.EventID, &g.Name, &g.Email, &g.Phone, &g.Group, &g.ProximityRequest,
		&g.AllocatedFloor, &g.AllocatedWing, &g.CreatedAt,
	)
	return g, err
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	g, err := scanGuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("scan guest: %w", err)
	}

	return &g, nil
}

// ListByEvent returns guests in registration order, which is the order the
// allocation planner relies on.
func (r *GuestRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests
			  WHERE event_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var res []domain.Guest
	for rows.Next() {
		g, err := scanGuest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, g)
	}

	return res, rows.Err()
}

// CommitAllocation writes placements and re-checks bucket capacity inside
// the same transaction. A transaction-scoped advisory lock per event makes two
// commits for one event run one after the other; room_blocks rows are only
// read, so reservations never wait on an allocation.
func (r *GuestRepository) CommitAllocation(ctx context.Context, eventID string, assignments []domain.Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, allocationLockQuery, eventID); err != nil {
		return fmt.Errorf("lock allocation: %w", conflictErr(err))
	}

	capacity, err := bucketCapacity(ctx, tx, eventID)
	if err != nil {
		return err
	}

	updateQuery := `UPDATE guests SET allocated_floor = $3, allocated_wing = $4
			  WHERE id = $1 AND event_id = $2`
	touched := make(map[domain.BucketKey]bool)
	for _, a := range assignments {
		key := a.Key()
		if !key.Empty() {
			if _, ok := capacity[key]; !ok {
				return fmt.Errorf("%w: unknown bucket %s/%s", domain.ErrValidation, key.Floor, key.Wing)
			}
			touched[key] = true
		}

		res, err := tx.ExecContext(ctx, updateQuery, a.GuestID, eventID, a.Floor, a.Wing)
		if err != nil {
			return fmt.Errorf("update guest allocation: %w", conflictErr(err))
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("allocation rows affected: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: %s", domain.ErrGuestNotFound, a.GuestID)
		}
	}

	// Пересчитываем занятость после записи
	occupancyQuery := `SELECT allocated_floor, allocated_wing, COUNT(*)
			  FROM guests
			  WHERE event_id = $1 AND (allocated_floor <> '' OR allocated_wing <> '')
			  GROUP BY allocated_floor, allocated_wing`
	rows, err := tx.QueryContext(ctx, occupancyQuery, eventID)
	if err != nil {
		return fmt.Errorf("count allocations: %w", conflictErr(err))
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   domain.BucketKey
			count int
		)
		if err = rows.Scan(&key.Floor, &key.Wing, &count); err != nil {
			return fmt.Errorf("scan allocation count: %w", err)
		}
		if touched[key] && count > capacity[key] {
			return fmt.Errorf("%w: %s/%s holds %d of %d", domain.ErrBucketFull, key.Floor, key.Wing, count, capacity[key])
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("count allocations: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit allocation: %w", conflictErr(err))
	}
	return nil
}

// Снимается автоматически при commit/rollback
const allocationLockQuery = `SELECT pg_advisory_xact_lock(hashtext('allocation:' || $1))`

const bucketCapacityQuery = `SELECT floor, wing, total_qty FROM room_blocks
			  WHERE event_id = $1`

// bucketCapacity sums the capacity of the event's room blocks per bucket.
func bucketCapacity(ctx context.Context, tx *sql.Tx, eventID string) (map[domain.BucketKey]int, error) {
	rows, err := tx.QueryContext(ctx, bucketCapacityQuery, eventID)
	if err != nil {
		return nil, fmt.Errorf("read room blocks: %w", conflictErr(err))
	}
	defer rows.Close()

	capacity := make(map[domain.BucketKey]int)
	for rows.Next() {
		var (
			key   domain.BucketKey
			total int
		)
		if err = rows.Scan(&key.Floor, &key.Wing, &total); err != nil {
			return nil, fmt.Errorf("scan room block: %w", err)
		}
		if key.Empty() {
			continue
		}
		capacity[key] += total
	}

	return capacity, rows.Err()
}
