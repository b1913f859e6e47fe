package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/service/ports"
)

type GuestService struct {
	repo      ports.GuestRepo
	eventRepo ports.EventRepo
	validate  *validator.Validate
}

func NewGuestService(repo ports.GuestRepo, eventRepo ports.EventRepo) *GuestService {
	return &GuestService{
		repo:      repo,
		eventRepo: eventRepo,
		validate:  newValidator(),
	}
}

func (s *GuestService) Register(ctx context.Context, eventID string, info domain.GuestInfo) (*domain.Guest, error) {
	if err := validateGuestInfo(s.validate, &info); err != nil {
		return nil, err
	}

	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	guest := newGuest(eventID, info)
	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	return guest, nil
}

func (s *GuestService) ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return s.repo.ListByEvent(ctx, eventID)
}

func newGuest(eventID string, info domain.GuestInfo) *domain.Guest {
	return &domain.Guest{
		ID:               uuid.New().String(),
		EventID:          eventID,
		Name:             info.Name,
		Email:            info.Email,
		Phone:            info.Phone,
		Group:            info.Group,
		ProximityRequest: info.ProximityRequest,
		CreatedAt:        time.Now().UTC(),
	}
}
