package domain

import "time"

type Guest struct {
	ID               string    `json:"id"`
	EventID          string    `json:"event_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Group            string    `json:"group,omitempty"`
	ProximityRequest string    `json:"proximity_request,omitempty"`
	AllocatedFloor   string    `json:"allocated_floor,omitempty"`
	AllocatedWing    string    `json:"allocated_wing,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func (g *Guest) Allocated() bool {
	return g.AllocatedFloor != "" || g.AllocatedWing != ""
}

type GuestInfo struct {
	Name             string `validate:"required,max=200"`
	Email            string `validate:"omitempty,email"`
	Phone            string `validate:"omitempty,phone"`
	Group            string `validate:"max=100"`
	ProximityRequest string `validate:"max=200"`
}
