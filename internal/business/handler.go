package business

import (
	"errors"
	"net/http"

	"github.com/benyxxxxx/globalconnector-service/internal/api"
	"github.com/benyxxxxx/globalconnector-service/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateBusiness godoc
// @Summary      Create business
// @Tags         businesses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} Business
// @Failure      400 {object} api.ErrorResponse
// @Router       /businesses [post]
func (h *Handler) CreateBusiness(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create business"})
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBusiness godoc
// @Summary      Get business by ID
// @Tags         businesses
// @Security     BearerAuth
// @Produce      json
// @Param        businessID path string true "Business ID"
// @Success      200 {object} Business
// @Failure      404 {object} api.ErrorResponse
// @Router       /businesses/{businessID} [get]
func (h *Handler) GetBusiness(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("businessID"))
	if err != nil {
		if errors.Is(err, ErrBusinessNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Business not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch business"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// ListBusinesses godoc
// @Summary      List businesses
// @Tags         businesses
// @Security     BearerAuth
// @Produce      json
// @Param        owner query string false "Filter: only businesses of the caller"
// @Success      200 {array} Business
// @Router       /businesses [get]
func (h *Handler) ListBusinesses(c *gin.Context) {
	if c.Query("owner") == "me" {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
			return
		}
		businesses, err := h.service.ListByOwner(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch businesses"})
			return
		}
		c.JSON(http.StatusOK, businesses)
		return
	}

	businesses, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch businesses"})
		return
	}

	c.JSON(http.StatusOK, businesses)
}

// UpdateBusiness godoc
// @Summary      Update business
// @Tags         businesses
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        businessID path string true "Business ID"
// @Success      200 {object} Business
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /businesses/{businessID} [put]
func (h *Handler) UpdateBusiness(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Business not found"})
		case errors.Is(err, ErrUnauthorized):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only update your own businesses"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update business"})
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

// DeleteBusiness godoc
// @Summary      Delete business
// @Tags         businesses
// @Security     BearerAuth
// @Param        businessID path string true "Business ID"
// @Success      204
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /businesses/{businessID} [delete]
func (h *Handler) DeleteBusiness(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	err := h.service.Delete(c.Request.Context(), c.Param("businessID"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBusinessNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Business not found"})
		case errors.Is(err, ErrUnauthorized):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only delete your own businesses"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete business"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
