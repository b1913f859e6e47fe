package domain

import "time"

type ActivityKind string

const (
	ActivityBookingCreated   ActivityKind = "booking_created"
	ActivityBookingCancelled ActivityKind = "booking_cancelled"
	ActivityAttrition        ActivityKind = "attrition_triggered"
	ActivityAllocation       ActivityKind = "allocation_committed"
	ActivityEventCreated     ActivityKind = "event_created"
)

type Activity struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event_id"`
	Kind      ActivityKind `json:"kind"`
	EntityID  string       `json:"entity_id"`
	Message   string       `json:"message"`
	CreatedAt time.Time    `json:"created_at"`
}
