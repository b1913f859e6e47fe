package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
)

type EventResponse struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	CheckIn             string          `json:"check_in"`
	CheckOut            string          `json:"check_out"`
	Nights              int             `json:"nights"`
	ExpectedPax         int             `json:"expected_pax"`
	Status              string          `json:"status"`
	MealCostPerPaxNight decimal.Decimal `json:"meal_cost_per_pax_night"`
	CateringPerPax      decimal.Decimal `json:"catering_per_pax"`
	RoomOccupancy       int             `json:"room_occupancy"`
	CreatedAt           string          `json:"created_at"`
}

type RoomBlockResponse struct {
	ID        string          `json:"id"`
	RoomType  string          `json:"room_type"`
	Rate      decimal.Decimal `json:"rate"`
	TotalQty  int             `json:"total_qty"`
	BookedQty int             `json:"booked_qty"`
	Available int             `json:"available"`
	Floor     string          `json:"floor"`
	Wing      string          `json:"wing"`
}

type EventDetailsResponse struct {
	Event          EventResponse       `json:"event"`
	RoomBlocks     []RoomBlockResponse `json:"room_blocks"`
	AddOns         []domain.AddOn      `json:"add_ons"`
	TotalRooms     int                 `json:"total_rooms"`
	BookedRooms    int                 `json:"booked_rooms"`
	AvailableRooms int                 `json:"available_rooms"`
}

type EventSetupResponse struct {
	Event          EventResponse          `json:"event"`
	RoomBlocks     []RoomBlockResponse    `json:"room_blocks"`
	DiscountRules  []domain.DiscountRule  `json:"discount_rules"`
	AttritionRules []domain.AttritionRule `json:"attrition_rules"`
	AddOns         []domain.AddOn         `json:"add_ons"`
}

type GuestResponse struct {
	ID               string `json:"id"`
	EventID          string `json:"event_id"`
	Name             string `json:"name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Group            string `json:"group,omitempty"`
	ProximityRequest string `json:"proximity_request,omitempty"`
	AllocatedFloor   string `json:"allocated_floor,omitempty"`
	AllocatedWing    string `json:"allocated_wing,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type BookingResponse struct {
	ID             string          `json:"id"`
	EventID        string          `json:"event_id"`
	RoomBlockID    string          `json:"room_block_id"`
	GuestID        string          `json:"guest_id"`
	AddOnIDs       []string        `json:"add_on_ids"`
	Nights         int             `json:"nights"`
	RoomRate       decimal.Decimal `json:"room_rate"`
	AddOnsAmount   decimal.Decimal `json:"add_ons_amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at"`
	CancelledAt    string          `json:"cancelled_at,omitempty"`
}

type CreateBookingResponse struct {
	Booking  BookingResponse     `json:"booking"`
	Guest    GuestResponse       `json:"guest"`
	Discount domain.DiscountTier `json:"discount"`
}

type CancelBookingResponse struct {
	Booking  BookingResponse `json:"booking"`
	Released bool            `json:"released"`
}

type SweepResponse struct {
	EventID string                   `json:"event_id"`
	Results []domain.AttritionResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:                  e.ID,
		Name:                e.Name,
		CheckIn:             e.CheckIn.Format(time.RFC3339),
		CheckOut:            e.CheckOut.Format(time.RFC3339),
		Nights:              e.Nights(),
		ExpectedPax:         e.ExpectedPax,
		Status:              string(e.Status),
		MealCostPerPaxNight: e.MealCostPerPaxNight,
		CateringPerPax:      e.CateringPerPax,
		RoomOccupancy:       e.RoomOccupancy,
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToRoomBlockResponses(blocks []domain.RoomBlock) []RoomBlockResponse {
	resp := make([]RoomBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		resp = append(resp, RoomBlockResponse{
			ID:        b.ID,
			RoomType:  b.RoomType,
			Rate:      b.Rate,
			TotalQty:  b.TotalQty,
			BookedQty: b.BookedQty,
			Available: b.Available(),
			Floor:     b.Floor,
			Wing:      b.Wing,
		})
	}
	return resp
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	addOns := d.AddOns
	if addOns == nil {
		addOns = []domain.AddOn{}
	}
	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		RoomBlocks:     ToRoomBlockResponses(d.RoomBlocks),
		AddOns:         addOns,
		TotalRooms:     d.TotalRooms,
		BookedRooms:    d.BookedRooms,
		AvailableRooms: d.AvailableRooms,
	}
}

func ToEventSetupResponse(s *domain.EventSetup) EventSetupResponse {
	return EventSetupResponse{
		Event:          ToEventResponse(&s.Event),
		RoomBlocks:     ToRoomBlockResponses(s.RoomBlocks),
		DiscountRules:  s.DiscountRules,
		AttritionRules: s.AttritionRules,
		AddOns:         s.AddOns,
	}
}

func ToGuestResponse(g *domain.Guest) GuestResponse {
	return GuestResponse{
		ID:               g.ID,
		EventID:          g.EventID,
		Name:             g.Name,
		Email:            g.Email,
		Phone:            g.Phone,
		Group:            g.Group,
		ProximityRequest: g.ProximityRequest,
		AllocatedFloor:   g.AllocatedFloor,
		AllocatedWing:    g.AllocatedWing,
		CreatedAt:        g.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID,
		EventID:        b.EventID,
		RoomBlockID:    b.RoomBlockID,
		GuestID:        b.GuestID,
		AddOnIDs:       b.AddOnIDs,
		Nights:         b.Nights,
		RoomRate:       b.RoomRate,
		AddOnsAmount:   b.AddOnsAmount,
		OriginalAmount: b.OriginalAmount,
		DiscountPct:    b.DiscountPct,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	if resp.AddOnIDs == nil {
		resp.AddOnIDs = []string{}
	}
	if b.CancelledAt != nil {
		resp.CancelledAt = b.CancelledAt.Format(time.RFC3339)
	}
	return resp
}
