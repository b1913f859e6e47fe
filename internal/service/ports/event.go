package ports

import (
	"context"
	"time"

	"github.com/stpnv0/BlockBooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, setup *domain.EventSetup) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, statuses ...domain.EventStatus) ([]*domain.Event, error)
	ListAddOns(ctx context.Context, eventID string) ([]domain.AddOn, error)
}

type RoomBlockRepo interface {
	GetByID(ctx context.Context, id string) (*domain.RoomBlock, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.RoomBlock, error)
}

type RuleRepo interface {
	ListDiscountRules(ctx context.Context, eventID string) ([]domain.DiscountRule, error)
	ListAttritionRules(ctx context.Context, eventID string) ([]domain.AttritionRule, error)
	// TriggerDueAttrition flips every pending rule whose release date has passed
	// and returns only the rules flipped by this call.
	TriggerDueAttrition(ctx context.Context, eventID string, now time.Time) ([]domain.AttritionRule, error)
}
