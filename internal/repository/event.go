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

const eventColumns = `id, name, check_in, check_out, expected_pax, status,
	meal_cost_per_pax_night, catering_per_pax, room_occupancy, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create stores the event together with its blocks, rules and add-ons.
func (r *EventRepository) Create(ctx context.Context, s *domain.EventSetup) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e := s.Event
	eventQuery := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err = tx.ExecContext(
		ctx, eventQuery,
		e.ID, e.Name, e.CheckIn, e.CheckOut, e.ExpectedPax, e.Status,
		e.MealCostPerPaxNight, e.CateringPerPax, e.RoomOccupancy, e.CreatedAt, e.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	blockQuery := `INSERT INTO room_blocks (id, event_id, room_type, rate, total_qty, booked_qty, floor, wing, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, 0, $6, $7, $8, $9)`
	for _, b := range s.RoomBlocks {
		if _, err = tx.ExecContext(
			ctx, blockQuery,
			b.ID, b.EventID, b.RoomType, b.Rate, b.TotalQty, b.Floor, b.Wing, b.CreatedAt, b.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert room block: %w", err)
		}
	}

	discountQuery := `INSERT INTO discount_rules (id, event_id, min_rooms, discount_pct, is_active)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, d := range s.DiscountRules {
		if _, err = tx.ExecContext(ctx, discountQuery, d.ID, d.EventID, d.MinRooms, d.DiscountPct, d.IsActive); err != nil {
			return fmt.Errorf("insert discount rule: %w", err)
		}
	}

	attritionQuery := `INSERT INTO attrition_rules (id, event_id, release_date, release_percent)
			  VALUES ($1, $2, $3, $4)`
	for _, a := range s.AttritionRules {
		if _, err = tx.ExecContext(ctx, attritionQuery, a.ID, a.EventID, a.ReleaseDate, a.ReleasePercent); err != nil {
			return fmt.Errorf("insert attrition rule: %w", err)
		}
	}

	addOnQuery := `INSERT INTO add_ons (id, event_id, name, price, is_included)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, a := range s.AddOns {
		if _, err = tx.ExecContext(ctx, addOnQuery, a.ID, a.EventID, a.Name, a.Price, a.IsIncluded); err != nil {
			return fmt.Errorf("insert add-on: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit event: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.CheckIn, &e.CheckOut, &e.ExpectedPax, &e.Status,
		&e.MealCostPerPaxNight, &e.CateringPerPax, &e.RoomOccupancy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.CheckIn = e.CheckIn.UTC()
	e.CheckOut = e.CheckOut.UTC()
	return &e, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY check_in DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListByStatus(ctx context.Context, statuses ...domain.EventStatus) ([]*domain.Event, error) {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}

	query := `SELECT ` + eventColumns + ` FROM events
			  WHERE status = ANY($1)
			  ORDER BY check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("list events by status: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) ListAddOns(ctx context.Context, eventID string) ([]domain.AddOn, error) {
	query := `SELECT id, event_id, name, price, is_included
			  FROM add_ons
			  WHERE event_id = $1
			  ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}
	defer rows.Close()

	var res []domain.AddOn
	for rows.Next() {
		var a domain.AddOn
		if err = rows.Scan(&a.ID, &a.EventID, &a.Name, &a.Price, &a.IsIncluded); err != nil {
			return nil, fmt.Errorf("scan add-on: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}
