package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/BlockBooker/internal/domain"
	"github.com/stpnv0/BlockBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/BlockBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type testMocks struct {
	events     *hmocks.MockEventSvc
	guests     *hmocks.MockGuestSvc
	bookings   *hmocks.MockBookingSvc
	discounts  *hmocks.MockDiscountSvc
	attrition  *hmocks.MockAttritionSvc
	allocation *hmocks.MockAllocationSvc
	estimates  *hmocks.MockEstimateSvc
	notifier   *hmocks.MockAttritionNotifier
}

func setupRouter(t *testing.T) (*testMocks, http.Handler) {
	t.Helper()
	m := &testMocks{
		events:     hmocks.NewMockEventSvc(t),
		guests:     hmocks.NewMockGuestSvc(t),
		bookings:   hmocks.NewMockBookingSvc(t),
		discounts:  hmocks.NewMockDiscountSvc(t),
		attrition:  hmocks.NewMockAttritionSvc(t),
		allocation: hmocks.NewMockAllocationSvc(t),
		estimates:  hmocks.NewMockEstimateSvc(t),
		notifier:   hmocks.NewMockAttritionNotifier(t),
	}

	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)

	h := NewHandler(Services{
		Events:     m.events,
		Guests:     m.guests,
		Bookings:   m.bookings,
		Discounts:  m.discounts,
		Attrition:  m.attrition,
		Allocation: m.allocation,
		Estimates:  m.estimates,
		Notifier:   m.notifier,
	}, log)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/guests", h.RegisterGuest)
		api.GET("/events/:id/guests", h.ListGuests)
		api.POST("/events/:id/bookings", h.CreateBooking)
		api.GET("/events/:id/bookings", h.ListBookings)
		api.GET("/events/:id/discount", h.GetDiscount)
		api.POST("/events/:id/attrition/sweep", h.SweepAttrition)
		api.POST("/events/:id/allocation", h.PlanAllocation)
		api.GET("/events/:id/estimate", h.EstimateCost)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	checkIn := time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC)
	setup := &domain.EventSetup{
		Event: domain.Event{
			ID:       uuid.New().String(),
			Name:     "Offsite",
			CheckIn:  checkIn,
			CheckOut: checkIn.AddDate(0, 0, 3),
			Status:   domain.EventStatusActive,
		},
		RoomBlocks: []domain.RoomBlock{{ID: uuid.New().String(), RoomType: "Deluxe", Rate: decimal.NewFromInt(5000), TotalQty: 20}},
	}

	m.events.EXPECT().CreateEvent(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Name == "Offsite" &&
			in.CheckIn.Equal(checkIn) &&
			len(in.RoomBlocks) == 1 &&
			in.RoomBlocks[0].Rate.Equal(decimal.NewFromInt(5000)) &&
			len(in.AttritionRules) == 1 &&
			in.AttritionRules[0].ReleaseDate.Equal(time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC))
	})).Return(setup, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:     "Offsite",
		CheckIn:  "2026-12-10",
		CheckOut: "2026-12-13T00:00:00Z",
		RoomBlocks: []dto.RoomBlockRequest{
			{RoomType: "Deluxe", Rate: decimal.NewFromInt(5000), TotalQty: 20},
		},
		AttritionRules: []dto.AttritionRuleRequest{
			{ReleaseDate: "2026-11-10", ReleasePercent: decimal.NewFromInt(20)},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventSetupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Offsite", resp.Event.Name)
	assert.Equal(t, 3, resp.Event.Nights)
	require.Len(t, resp.RoomBlocks, 1)
	assert.Equal(t, 20, resp.RoomBlocks[0].Available)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{"check_in": "2026-12-10"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:     "Offsite",
		CheckIn:  "10.12.2026",
		CheckOut: "2026-12-13",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "check_in")
}

func TestHandler_CreateEvent_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().CreateEvent(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: check_out must be after check_in", domain.ErrValidation))

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Name:     "Offsite",
		CheckIn:  "2026-12-13",
		CheckOut: "2026-12-10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "check_out")
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, id).Return(&domain.EventDetails{
		Event:          domain.Event{ID: id, Name: "Offsite"},
		RoomBlocks:     []domain.RoomBlock{{ID: uuid.New().String(), TotalQty: 15, BookedQty: 9}},
		TotalRooms:     15,
		BookedRooms:    9,
		AvailableRooms: 6,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.AvailableRooms)
	require.Len(t, resp.RoomBlocks, 1)
	assert.Equal(t, 6, resp.RoomBlocks[0].Available)
	assert.NotNil(t, resp.AddOns)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.events.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything).Return([]*domain.Event{
		{ID: uuid.New().String(), Name: "A"},
		{ID: uuid.New().String(), Name: "B"},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

// --- Guests ---

func TestHandler_RegisterGuest_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.guests.EXPECT().Register(mock.Anything, eventID, domain.GuestInfo{Name: "Anna", Group: "Sales"}).
		Return(&domain.Guest{ID: uuid.New().String(), EventID: eventID, Name: "Anna", Group: "Sales"}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/guests", dto.GuestRequest{Name: "Anna", Group: "Sales"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.GuestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sales", resp.Group)
}

func TestHandler_RegisterGuest_MissingName(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/guests", dto.GuestRequest{Email: "a@b.c"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListGuests_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.guests.EXPECT().ListByEvent(mock.Anything, eventID).Return([]domain.Guest{
		{ID: uuid.New().String(), Name: "Anna", AllocatedFloor: "3"},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/guests", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.GuestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "3", resp[0].AllocatedFloor)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	blockID := uuid.New().String()
	guestID := uuid.New().String()

	m.bookings.EXPECT().CreateBooking(mock.Anything, domain.CreateBookingInput{
		EventID:     eventID,
		RoomBlockID: blockID,
		Guest:       domain.GuestInfo{Name: "Anna"},
	}).Return(&domain.BookingResult{
		Booking: &domain.Booking{
			ID:          uuid.New().String(),
			EventID:     eventID,
			RoomBlockID: blockID,
			GuestID:     guestID,
			DiscountPct: decimal.NewFromInt(10),
			TotalAmount: decimal.NewFromInt(13950),
			Status:      domain.BookingStatusConfirmed,
		},
		Guest:    &domain.Guest{ID: guestID, EventID: eventID, Name: "Anna"},
		Discount: domain.DiscountTier{Percent: decimal.NewFromInt(10), BookedRooms: 10},
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/bookings", dto.CreateBookingRequest{
		RoomBlockID: blockID,
		Guest:       &dto.GuestRequest{Name: "Anna"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreateBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Booking.TotalAmount.Equal(decimal.NewFromInt(13950)))
	assert.Equal(t, guestID, resp.Guest.ID)
	assert.Empty(t, resp.Booking.AddOnIDs)
	assert.NotNil(t, resp.Booking.AddOnIDs)
}

func TestHandler_CreateBooking_NoGuest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/bookings", dto.CreateBookingRequest{
		RoomBlockID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_Exhausted(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("reserve: %w", domain.ErrExhausted))

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/bookings", dto.CreateBookingRequest{
		RoomBlockID: uuid.New().String(),
		GuestID:     uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "room no longer available, choose another", decodeError(t, w))
}

func TestHandler_CreateBooking_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.bookings.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("reserve: %w", domain.ErrConcurrencyConflict))

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/bookings", dto.CreateBookingRequest{
		RoomBlockID: uuid.New().String(),
		GuestID:     uuid.New().String(),
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_ListBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.bookings.EXPECT().ListByEvent(mock.Anything, eventID).Return([]*domain.Booking{
		{ID: uuid.New().String(), Status: domain.BookingStatusConfirmed},
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	m.bookings.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	id := uuid.New().String()
	cancelledAt := time.Now()
	m.bookings.EXPECT().CancelBooking(mock.Anything, id).Return(&domain.CancelResult{
		Booking:  &domain.Booking{ID: id, Status: domain.BookingStatusCancelled, CancelledAt: &cancelledAt},
		Released: true,
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+id+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Released)
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.NotEmpty(t, resp.Booking.CancelledAt)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/42/cancel", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Pricing and rules ---

func TestHandler_GetDiscount_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.discounts.EXPECT().ResolveDiscount(mock.Anything, eventID).Return(domain.DiscountTier{
		Percent:     decimal.NewFromInt(5),
		BookedRooms: 7,
		NextTier:    &domain.DiscountRule{MinRooms: 10, DiscountPct: decimal.NewFromInt(10), IsActive: true},
		RoomsToNext: 3,
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/discount", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DiscountTier
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Percent.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 3, resp.RoomsToNext)
}

func TestHandler_SweepAttrition_NotifiesNewlyTriggered(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	event := &domain.Event{ID: eventID, Name: "Offsite"}
	fired := domain.AttritionResult{
		Rule:           domain.AttritionRule{ID: uuid.New().String(), IsTriggered: true},
		NewlyTriggered: true,
		UnsoldRooms:    10,
		RoomsAtRisk:    2,
	}
	old := domain.AttritionResult{Rule: domain.AttritionRule{ID: uuid.New().String(), IsTriggered: true}}

	m.attrition.EXPECT().SweepAttrition(mock.Anything, eventID).Return([]domain.AttritionResult{fired, old}, nil)
	m.events.EXPECT().GetByID(mock.Anything, eventID).Return(event, nil)

	done := make(chan []domain.AttritionResult, 1)
	m.notifier.EXPECT().NotifyAttrition(mock.Anything, event, mock.Anything).
		Run(func(_ context.Context, _ *domain.Event, results []domain.AttritionResult) {
			done <- results
		}).Return()

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/attrition/sweep", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 2)

	select {
	case got := <-done:
		require.Len(t, got, 1)
		assert.Equal(t, fired.Rule.ID, got[0].Rule.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestHandler_SweepAttrition_NotifiesWhenEventLookupFails(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	fired := domain.AttritionResult{
		Rule:           domain.AttritionRule{ID: uuid.New().String(), IsTriggered: true},
		NewlyTriggered: true,
	}

	m.attrition.EXPECT().SweepAttrition(mock.Anything, eventID).Return([]domain.AttritionResult{fired}, nil)
	m.events.EXPECT().GetByID(mock.Anything, eventID).Return(nil, errors.New("connection refused"))

	done := make(chan *domain.Event, 1)
	m.notifier.EXPECT().NotifyAttrition(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *domain.Event, _ []domain.AttritionResult) {
			done <- event
		}).Return()

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/attrition/sweep", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	select {
	case got := <-done:
		require.NotNil(t, got)
		assert.Equal(t, eventID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestHandler_SweepAttrition_NothingNew(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.attrition.EXPECT().SweepAttrition(mock.Anything, eventID).Return(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/attrition/sweep", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SweepResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestHandler_PlanAllocation_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	guestID := uuid.New().String()
	m.allocation.EXPECT().PlanAllocation(mock.Anything, eventID, domain.AllocationRequest{
		Mode: domain.AllocationModeManual,
		Overrides: []domain.AllocationOverride{
			{GuestID: guestID, Floor: "3", Wing: "East"},
		},
	}).Return(&domain.AllocationResult{
		Mode:        domain.AllocationModeManual,
		Committed:   true,
		Assignments: []domain.Assignment{{GuestID: guestID, Floor: "3", Wing: "East"}},
	}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/allocation", dto.AllocationRequest{
		Mode:      "manual",
		Overrides: []dto.AllocationOverrideInput{{GuestID: guestID, Floor: "3", Wing: "East"}},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.AllocationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Committed)
	assert.Len(t, resp.Assignments, 1)
}

func TestHandler_PlanAllocation_UnknownMode(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/allocation", dto.AllocationRequest{Mode: "random"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_PlanAllocation_BucketFull(t *testing.T) {
	m, r := setupRouter(t)

	m.allocation.EXPECT().PlanAllocation(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("commit: %w", domain.ErrBucketFull))

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/allocation", dto.AllocationRequest{Mode: "auto"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_EstimateCost_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.estimates.EXPECT().EstimateCost(mock.Anything, eventID, 21).Return(&domain.CostEstimate{
		Pax:    21,
		Total:  decimal.NewFromInt(284730),
		PerPax: decimal.NewFromInt(13559),
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/estimate?pax=21", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.CostEstimate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.PerPax.Equal(decimal.NewFromInt(13559)))
}

func TestHandler_EstimateCost_BadPax(t *testing.T) {
	_, r := setupRouter(t)

	for _, q := range []string{"", "?pax=0", "?pax=-3", "?pax=abc"} {
		w := doJSON(t, r, http.MethodGet, "/api/events/"+uuid.New().String()+"/estimate"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", decodeError(t, w))
}
