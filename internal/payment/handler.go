package payment

import (
	"errors"
	"net/http"

	"github.com/benyxxxxx/globalconnector-service/internal/api"
	"github.com/benyxxxxx/globalconnector-service/internal/booking"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreatePayment godoc
// @Summary      Create payment
// @Description  Creates a pending payment against a booking or an external reference (exactly one).
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidPaymentRequest), errors.Is(err, ErrAmountRequired):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary      Get payment by ID
// @Description  Returns the payment, first re-checking unsettled mandel coin payments against the ledger.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        paymentID path string true "Payment ID"
// @Success      200 {object} Payment
// @Failure      404 {object} api.ErrorResponse
// @Failure      502 {object} api.ErrorResponse
// @Router       /payments/{paymentID} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	payment, err := h.service.Get(c.Request.Context(), c.Param("paymentID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, ErrSettlementUnavailable):
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Settlement network unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payment"})
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListBookingPayments godoc
// @Summary      List payments for a booking
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        bookingID path string true "Booking ID"
// @Success      200 {array} Payment
// @Failure      502 {object} api.ErrorResponse
// @Router       /bookings/{bookingID}/payments [get]
func (h *Handler) ListBookingPayments(c *gin.Context) {
	payments, err := h.service.ListByBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, ErrSettlementUnavailable) {
			c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "Settlement network unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
