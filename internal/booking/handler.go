package booking

import (
	"errors"
	"net/http"

	"github.com/benyxxxxx/globalconnector-service/internal/api"
	"github.com/benyxxxxx/globalconnector-service/internal/auth"
	"github.com/benyxxxxx/globalconnector-service/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBooking godoc
// @Summary      Create booking
// @Description  Books a service occurrence at the scheduled time. Set force_add to bypass the duplicate check.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} Booking
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		case errors.Is(err, ErrBookingConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You already have a booking for this service at the scheduled time"})
		case errors.Is(err, ErrInvalidDuration), errors.Is(err, ErrInvalidTimeBasedPricing):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBooking godoc
// @Summary      Get booking by ID
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID path string true "Booking ID"
// @Success      200 {object} Booking
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /bookings/{bookingID} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	b, err := h.service.Get(c.Request.Context(), c.Param("bookingID"), userID)
	if err != nil {
		respondBookingError(c, err, "fetch")
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListMyBookings godoc
// @Summary      List my bookings
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Booking
// @Router       /bookings [get]
func (h *Handler) ListMyBookings(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bookings, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBooking godoc
// @Summary      Update booking
// @Description  Partial update of scheduled_at, duration, and attributes. Prices and status are immutable here.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        bookingID path string true "Booking ID"
// @Success      200 {object} Booking
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /bookings/{bookingID} [put]
func (h *Handler) UpdateBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("bookingID"), req, userID)
	if err != nil {
		respondBookingError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, b)
}

// DeleteBooking godoc
// @Summary      Delete booking
// @Tags         bookings
// @Security     BearerAuth
// @Param        bookingID path string true "Booking ID"
// @Success      204
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /bookings/{bookingID} [delete]
func (h *Handler) DeleteBooking(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	err := h.service.Delete(c.Request.Context(), c.Param("bookingID"), userID)
	if err != nil {
		respondBookingError(c, err, "delete")
		return
	}

	c.Status(http.StatusNoContent)
}

func respondBookingError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
	case errors.Is(err, ErrUnauthorized):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only " + action + " your own bookings"})
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to " + action + " booking"})
	}
}
