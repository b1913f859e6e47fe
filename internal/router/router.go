package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	RegisterGuest(c *ginext.Context)
	ListGuests(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetDiscount(c *ginext.Context)
	SweepAttrition(c *ginext.Context)
	PlanAllocation(c *ginext.Context)
	EstimateCost(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		// Guests
		api.POST("/events/:id/guests", h.RegisterGuest)
		api.GET("/events/:id/guests", h.ListGuests)

		// Bookings
		api.POST("/events/:id/bookings", h.CreateBooking)
		api.GET("/events/:id/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Pricing, attrition, allocation
		api.GET("/events/:id/discount", h.GetDiscount)
		api.GET("/events/:id/estimate", h.EstimateCost)
		api.POST("/events/:id/attrition/sweep", h.SweepAttrition)
		api.POST("/events/:id/allocation", h.PlanAllocation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
