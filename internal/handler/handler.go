package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.EventSetup, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type GuestSvc interface {
	Register(ctx context.Context, eventID string, info domain.GuestInfo) (*domain.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Guest, error)
}

type BookingSvc interface {
	CreateBooking(ctx context.Context, in domain.CreateBookingInput) (*domain.BookingResult, error)
	CancelBooking(ctx context.Context, id string) (*domain.CancelResult, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
}

type DiscountSvc interface {
	ResolveDiscount(ctx context.Context, eventID string) (domain.DiscountTier, error)
}

type AttritionSvc interface {
	SweepAttrition(ctx context.Context, eventID string) ([]domain.AttritionResult, error)
}

type AllocationSvc interface {
	PlanAllocation(ctx context.Context, eventID string, req domain.AllocationRequest) (*domain.AllocationResult, error)
}

type EstimateSvc interface {
	EstimateCost(ctx context.Context, eventID string, pax int) (*domain.CostEstimate, error)
}

type AttritionNotifier interface {
	NotifyAttrition(ctx context.Context, event *domain.Event, results []domain.AttritionResult)
}

type Services struct {
	Events     EventSvc
	Guests     GuestSvc
	Bookings   BookingSvc
	Discounts  DiscountSvc
	Attrition  AttritionSvc
	Allocation AllocationSvc
	Estimates  EstimateSvc
	Notifier   AttritionNotifier
}

type Handler struct {
	svc    Services
	logger logger.Logger
}

func NewHandler(svc Services, logger logger.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := parseDate(req.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_in format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}
	checkOut, err := parseDate(req.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid check_out format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	input := domain.CreateEventInput{
		Name:                req.Name,
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		ExpectedPax:         req.ExpectedPax,
		Status:              domain.EventStatus(req.Status),
		MealCostPerPaxNight: req.MealCostPerPaxNight,
		CateringPerPax:      req.CateringPerPax,
		RoomOccupancy:       req.RoomOccupancy,
	}
	for _, b := range req.RoomBlocks {
		input.RoomBlocks = append(input.RoomBlocks, domain.RoomBlockInput{
			RoomType: b.RoomType,
			Rate:     b.Rate,
			TotalQty: b.TotalQty,
			Floor:    b.Floor,
			Wing:     b.Wing,
		})
	}
	for _, r := range req.DiscountRules {
		input.DiscountRules = append(input.DiscountRules, domain.DiscountRuleInput{
			MinRooms:    r.MinRooms,
			DiscountPct: r.DiscountPct,
			IsActive:    r.IsActive,
		})
	}
	for _, r := range req.AttritionRules {
		releaseDate, err := parseDate(r.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid release_date format, expected RFC3339 or YYYY-MM-DD",
			})
			return
		}
		input.AttritionRules = append(input.AttritionRules, domain.AttritionRuleInput{
			ReleaseDate:    releaseDate,
			ReleasePercent: r.ReleasePercent,
		})
	}
	for _, a := range req.AddOns {
		input.AddOns = append(input.AddOns, domain.AddOnInput{
			Name:       a.Name,
			Price:      a.Price,
			IsIncluded: a.IsIncluded,
		})
	}

	setup, err := h.svc.Events.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventSetupResponse(setup))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventIDParam(c)
	if !ok {
		return
	}

	details, err := h.svc.Events.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.svc.Events.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Guests

func (h *Handler) RegisterGuest(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.svc.Guests.Register(c.Request.Context(), eventID, toGuestInfo(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *Handler) ListGuests(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	guests, err := h.svc.Guests.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GuestResponse, 0, len(guests))
	for i := range guests {
		resp = append(resp, dto.ToGuestResponse(&guests[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.GuestID == "" && req.Guest == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "either guest_id or guest is required"})
		return
	}

	input := domain.CreateBookingInput{
		EventID:     eventID,
		RoomBlockID: req.RoomBlockID,
		GuestID:     req.GuestID,
		AddOnIDs:    req.AddOnIDs,
	}
	if req.GuestID == "" {
		input.Guest = toGuestInfo(*req.Guest)
	}

	res, err := h.svc.Bookings.CreateBooking(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Booking:  dto.ToBookingResponse(res.Booking),
		Guest:    dto.ToGuestResponse(res.Guest),
		Discount: res.Discount,
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	bookings, err := h.svc.Bookings.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.svc.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	res, err := h.svc.Bookings.CancelBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Booking:  dto.ToBookingResponse(res.Booking),
		Released: res.Released,
	})
}

// Pricing and rules

func (h *Handler) GetDiscount(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	tier, err := h.svc.Discounts.ResolveDiscount(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, tier)
}

func (h *Handler) SweepAttrition(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	results, err := h.svc.Attrition.SweepAttrition(ctx, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if results == nil {
		results = []domain.AttritionResult{}
	}

	h.notifyTriggered(ctx, eventID, results)

	c.JSON(http.StatusOK, dto.SweepResponse{EventID: eventID, Results: results})
}

func (h *Handler) notifyTriggered(ctx context.Context, eventID string, results []domain.AttritionResult) {
	if h.svc.Notifier == nil {
		return
	}

	newly := domain.NewlyTriggered(results)
	if len(newly) == 0 {
		return
	}

	// Правило уже сработало, второго шанса отправить алерт не будет
	event, err := h.svc.Events.GetByID(ctx, eventID)
	if err != nil {
		h.logger.LogAttrs(ctx, logger.WarnLevel, "attrition notification without event details",
			logger.String("event_id", eventID),
			logger.Any("error", err),
		)
		event = &domain.Event{ID: eventID}
	}

	go h.svc.Notifier.NotifyAttrition(context.WithoutCancel(ctx), event, newly)
}

func (h *Handler) PlanAllocation(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.AllocationRequest{
		Mode:   domain.AllocationMode(req.Mode),
		Reset:  req.Reset,
		DryRun: req.DryRun,
	}
	for _, o := range req.Overrides {
		input.Overrides = append(input.Overrides, domain.AllocationOverride{
			GuestID: o.GuestID,
			Floor:   o.Floor,
			Wing:    o.Wing,
		})
	}

	res, err := h.svc.Allocation.PlanAllocation(c.Request.Context(), eventID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) EstimateCost(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	pax, err := strconv.Atoi(c.Query("pax"))
	if err != nil || pax <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "pax must be a positive integer"})
		return
	}

	estimate, err := h.svc.Estimates.EstimateCost(c.Request.Context(), eventID, pax)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, estimate)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRoomBlockNotFound),
		errors.Is(err, domain.ErrGuestNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrExhausted):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrExhausted.Error()})

	case errors.Is(err, domain.ErrBucketFull),
		errors.Is(err, domain.ErrEventNotBookable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConcurrencyConflict):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "temporarily unavailable, please retry"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func eventIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

func toGuestInfo(req dto.GuestRequest) domain.GuestInfo {
	return domain.GuestInfo{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Group:            req.Group,
		ProximityRequest: req.ProximityRequest,
	}
}
