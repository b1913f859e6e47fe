package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountRule struct {
	ID          string          `json:"id"`
	EventID     string          `json:"event_id"`
	MinRooms    int             `json:"min_rooms"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	IsActive    bool            `json:"is_active"`
}

type DiscountTier struct {
	Percent        decimal.Decimal `json:"percent"`
	QualifyingTier *DiscountRule   `json:"qualifying_tier,omitempty"`
	BookedRooms    int             `json:"booked_rooms"`
	NextTier       *DiscountRule   `json:"next_tier,omitempty"`
	RoomsToNext    int             `json:"rooms_to_next,omitempty"`
}

type AttritionRule struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	ReleaseDate    time.Time       `json:"release_date"`
	ReleasePercent decimal.Decimal `json:"release_percent"`
	IsTriggered    bool            `json:"is_triggered"`
	TriggeredAt    *time.Time      `json:"triggered_at,omitempty"`
}

// Due reports whether a pending rule may transition to triggered at now.
func (r *AttritionRule) Due(now time.Time) bool {
	return !r.IsTriggered && !now.Before(r.ReleaseDate)
}

type AttritionResult struct {
	Rule           AttritionRule   `json:"rule"`
	NewlyTriggered bool            `json:"newly_triggered"`
	UnsoldRooms    int             `json:"unsold_rooms"`
	RoomsAtRisk    int             `json:"rooms_at_risk"`
	RevenueAtRisk  decimal.Decimal `json:"revenue_at_risk"`
}

// NewlyTriggered keeps the results whose rule fired in this sweep.
func NewlyTriggered(results []AttritionResult) []AttritionResult {
	var out []AttritionResult
	for _, r := range results {
		if r.NewlyTriggered {
			out = append(out, r)
		}
	}
	return out
}
