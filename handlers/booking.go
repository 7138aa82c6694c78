package handlers

import (
	"net/http"
	"strconv"

	bookingRepo "needmeet/database/repository/booking"
	"needmeet/services/booking"
	"needmeet/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "userId, providerId, serviceType, and date are required", err.Error())
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), requester, input)
	if err != nil {
		h.Logger.Warn("Create booking failed", zap.String("requesterID", requester), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required", err.Error())
		return
	}

	updated, err := h.Service.TransitionStatus(c.Request.Context(), requester, bookingID, req.Status)
	if err != nil {
		h.Logger.Warn("Update booking status failed", zap.String("bookingID", bookingID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID := c.Param("id")

	deleted, err := h.Service.CancelBooking(c.Request.Context(), requester, bookingID)
	if err != nil {
		h.Logger.Warn("Cancel booking failed", zap.String("bookingID", bookingID), zap.Error(err))
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully", "booking": deleted})
}

// ListBookingsHandler handles GET /api/bookings with optional status, userId
// and providerId filters plus page/pageSize pagination.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	filter := bookingRepo.BookingFilter{
		Status:     c.Query("status"),
		UserID:     c.Query("userId"),
		ProviderID: c.Query("providerId"),
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	result, err := h.Service.ListBookings(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUserBookingsHandler handles GET /api/bookings/user/:userId.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	filter := bookingRepo.BookingFilter{UserID: c.Param("userId")}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.Service.ListBookings(c.Request.Context(), filter, page, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetProviderBookingsHandler handles GET /api/bookings/provider/:providerId.
func (h *BookingHandler) GetProviderBookingsHandler(c *gin.Context) {
	if _, ok := requesterID(c); !ok {
		return
	}

	filter := bookingRepo.BookingFilter{ProviderID: c.Param("providerId")}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.Service.ListBookings(c.Request.Context(), filter, page, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
