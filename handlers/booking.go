package handlers

import (
	"net/http"

	"campusportal/middleware"
	"campusportal/models"
	"campusportal/services/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	BookingService booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{BookingService: svc}
}

// CreateBookingHandler handles POST /api/bookings. 201 on admission, 400 with the
// rejection reason otherwise.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	b, err := h.BookingService.CreateBooking(c.Request.Context(),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.GetUserBookings(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListBookingsHandler handles GET /api/bookings?roomId=&date=. Only active
// bookings are listed so the client sees what holds the room.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}
	filter.Status = ""
	filter.ActiveOnly = true
	bookings, err := h.BookingService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req models.BookingStatusInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	b, err := h.BookingService.UpdateBookingStatus(c.Request.Context(),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
