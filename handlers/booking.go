package handlers

import (
	"errors"
	"net/http"

	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/booking"
	"github.com/safad643/eventBook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler books a date range on a service for the caller.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	userID := c.GetString("userID")
	userEmail := c.GetString("userEmail")

	b, err := h.Service.CreateBooking(userID, userEmail, req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// GetMyBookingsHandler lists the caller's bookings, newest first.
func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.Service.ListUserBookings(userID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("userID", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(bookings), "bookings": bookings})
}

// CancelBookingHandler cancels one of the caller's bookings.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	userID := c.GetString("userID")
	userEmail := c.GetString("userEmail")

	b, err := h.Service.CancelBooking(bookingID, userID, userEmail)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// respondBookingError maps service-level booking errors to HTTP statuses.
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	var bErr *booking.BookingError
	if !errors.As(err, &bErr) {
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", "")
		return
	}

	status := http.StatusBadRequest
	if bErr == booking.ErrServiceNotFound || bErr == booking.ErrBookingNotFound {
		status = http.StatusNotFound
	}
	utils.JSONError(c, status, bErr.Message, "")
}
