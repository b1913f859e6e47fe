package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusActive    EventStatus = "active"
	EventStatusClosed    EventStatus = "closed"
	EventStatusCancelled EventStatus = "cancelled"
)

// Bookable reports whether new bookings may be taken for an event in this status.
func (s EventStatus) Bookable() bool {
	return s == EventStatusDraft || s == EventStatusActive
}

type Event struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	CheckIn             time.Time       `json:"check_in"`
	CheckOut            time.Time       `json:"check_out"`
	ExpectedPax         int             `json:"expected_pax"`
	Status              EventStatus     `json:"status"`
	MealCostPerPaxNight decimal.Decimal `json:"meal_cost_per_pax_night"`
	CateringPerPax      decimal.Decimal `json:"catering_per_pax"`
	RoomOccupancy       int             `json:"room_occupancy"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// Nights is the number of calendar nights between check-in and check-out.
func (e *Event) Nights() int {
	in := time.Date(e.CheckIn.Year(), e.CheckIn.Month(), e.CheckIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(e.CheckOut.Year(), e.CheckOut.Month(), e.CheckOut.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

type AddOn struct {
	ID         string          `json:"id"`
	EventID    string          `json:"event_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	IsIncluded bool            `json:"is_included"`
}

// EventSetup is everything created together with an event.
type EventSetup struct {
	Event          Event           `json:"event"`
	RoomBlocks     []RoomBlock     `json:"room_blocks"`
	DiscountRules  []DiscountRule  `json:"discount_rules"`
	AttritionRules []AttritionRule `json:"attrition_rules"`
	AddOns         []AddOn         `json:"add_ons"`
}

type EventDetails struct {
	Event          Event       `json:"event"`
	RoomBlocks     []RoomBlock `json:"room_blocks"`
	AddOns         []AddOn     `json:"add_ons"`
	TotalRooms     int         `json:"total_rooms"`
	BookedRooms    int         `json:"booked_rooms"`
	AvailableRooms int         `json:"available_rooms"`
}

type CreateEventInput struct {
	Name                string
	CheckIn             time.Time
	CheckOut            time.Time
	ExpectedPax         int
	Status              EventStatus
	MealCostPerPaxNight decimal.Decimal
	CateringPerPax      decimal.Decimal
	RoomOccupancy       int
	RoomBlocks          []RoomBlockInput
	DiscountRules       []DiscountRuleInput
	AttritionRules      []AttritionRuleInput
	AddOns              []AddOnInput
}

type RoomBlockInput struct {
	RoomType string
	Rate     decimal.Decimal
	TotalQty int
	Floor    string
	Wing     string
}

type DiscountRuleInput struct {
	MinRooms    int
	DiscountPct decimal.Decimal
	IsActive    *bool
}

type AttritionRuleInput struct {
	ReleaseDate    time.Time
	ReleasePercent decimal.Decimal
}

type AddOnInput struct {
	Name       string
	Price      decimal.Decimal
	IsIncluded bool
}
