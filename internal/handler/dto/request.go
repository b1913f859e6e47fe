package dto

import "github.com/shopspring/decimal"

type CreateEventRequest struct {
	Name                string                 `json:"name" binding:"required"`
	CheckIn             string                 `json:"check_in" binding:"required"`
	CheckOut            string                 `json:"check_out" binding:"required"`
	ExpectedPax         int                    `json:"expected_pax" binding:"gte=0"`
	Status              string                 `json:"status" binding:"omitempty,oneof=draft active"`
	MealCostPerPaxNight decimal.Decimal        `json:"meal_cost_per_pax_night"`
	CateringPerPax      decimal.Decimal        `json:"catering_per_pax"`
	RoomOccupancy       int                    `json:"room_occupancy" binding:"gte=0"`
	RoomBlocks          []RoomBlockRequest     `json:"room_blocks" binding:"dive"`
	DiscountRules       []DiscountRuleRequest  `json:"discount_rules" binding:"dive"`
	AttritionRules      []AttritionRuleRequest `json:"attrition_rules" binding:"dive"`
	AddOns              []AddOnRequest         `json:"add_ons" binding:"dive"`
}

type RoomBlockRequest struct {
	RoomType string          `json:"room_type" binding:"required"`
	Rate     decimal.Decimal `json:"rate"`
	TotalQty int             `json:"total_qty" binding:"required,gt=0"`
	Floor    string          `json:"floor"`
	Wing     string          `json:"wing"`
}

type DiscountRuleRequest struct {
	MinRooms    int             `json:"min_rooms" binding:"required,gt=0"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	IsActive    *bool           `json:"is_active"`
}

type AttritionRuleRequest struct {
	ReleaseDate    string          `json:"release_date" binding:"required"`
	ReleasePercent decimal.Decimal `json:"release_percent"`
}

type AddOnRequest struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	IsIncluded bool            `json:"is_included"`
}

type GuestRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Group            string `json:"group"`
	ProximityRequest string `json:"proximity_request"`
}

// CreateBookingRequest names either an existing guest or a new one.
type CreateBookingRequest struct {
	RoomBlockID string        `json:"room_block_id" binding:"required,uuid"`
	GuestID     string        `json:"guest_id" binding:"omitempty,uuid"`
	Guest       *GuestRequest `json:"guest"`
	AddOnIDs    []string      `json:"add_on_ids" binding:"dive,uuid"`
}

type AllocationRequest struct {
	Mode      string                    `json:"mode" binding:"required,oneof=manual auto"`
	Overrides []AllocationOverrideInput `json:"overrides" binding:"dive"`
	Reset     bool                      `json:"reset"`
	DryRun    bool                      `json:"dry_run"`
}

type AllocationOverrideInput struct {
	GuestID string `json:"guest_id" binding:"required,uuid"`
	Floor   string `json:"floor"`
	Wing    string `json:"wing"`
}
