package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const attritionColumns = `id, event_id, release_date, release_percent, is_triggered, triggered_at`

type RuleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRuleRepo(db *dbpg.DB) *RuleRepository {
	return &RuleRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RuleRepository) ListDiscountRules(ctx context.Context, eventID string) ([]domain.DiscountRule, error) {
	query := `SELECT id, event_id, min_rooms, discount_pct, is_active
			  FROM discount_rules
			  WHERE event_id = $1
			  ORDER BY min_rooms, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list discount rules: %w", err)
	}
	defer rows.Close()

	var res []domain.DiscountRule
	for rows.Next() {
		var d domain.DiscountRule
		if err = rows.Scan(&d.ID, &d.EventID, &d.MinRooms, &d.DiscountPct, &d.IsActive); err != nil {
			return nil, fmt.Errorf("scan discount rule: %w", err)
		}
		res = append(res, d)
	}

	return res, rows.Err()
}

func scanAttritionRule(row rowScanner) (domain.AttritionRule, error) {
	var a domain.AttritionRule
	err := row.Scan(&a.ID, &a.EventID, &a.ReleaseDate, &a.ReleasePercent, &a.IsTriggered, &a.TriggeredAt)
	a.ReleaseDate = a.ReleaseDate.UTC()
	return a, err
}

func (r *RuleRepository) ListAttritionRules(ctx context.Context, eventID string) ([]domain.AttritionRule, error) {
	query := `SELECT ` + attritionColumns + ` FROM attrition_rules
			  WHERE event_id = $1
			  ORDER BY release_date, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attrition rules: %w", err)
	}
	defer rows.Close()

	var res []domain.AttritionRule
	for rows.Next() {
		a, err := scanAttritionRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attrition rule: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

// TriggerDueAttrition flips pending rules whose release date has passed and
// returns exactly the rules this call flipped.
func (r *RuleRepository) TriggerDueAttrition(ctx context.Context, eventID string, now time.Time) ([]domain.AttritionRule, error) {
	query := `UPDATE attrition_rules
			  SET is_triggered = TRUE, triggered_at = $2
			  WHERE event_id = $1 AND is_triggered = FALSE AND release_date <= $2
			  RETURNING ` + attritionColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, now)
	if err != nil {
		return nil, fmt.Errorf("trigger attrition: %w", err)
	}
	defer rows.Close()

	var res []domain.AttritionRule
	for rows.Next() {
		a, err := scanAttritionRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attrition rule: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}
