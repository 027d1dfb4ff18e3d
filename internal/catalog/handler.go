package catalog

import (
	"errors"
	"net/http"

	"github.com/benyxxxxx/globalconnector-service/internal/api"
	"github.com/benyxxxxx/globalconnector-service/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	manager Manager
}

func NewHandler(manager Manager) *Handler {
	return &Handler{manager: manager}
}

// CreateService godoc
// @Summary      Create service
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Success      201 {object} Service
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /services [post]
func (h *Handler) CreateService(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.manager.Create(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, ErrServiceAlreadyExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

// GetService godoc
// @Summary      Get service by ID
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        serviceID path string true "Service ID"
// @Success      200 {object} Service
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [get]
func (h *Handler) GetService(c *gin.Context) {
	svc, err := h.manager.Get(c.Request.Context(), c.Param("serviceID"))
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListServices godoc
// @Summary      List services
// @Tags         services
// @Security     BearerAuth
// @Produce      json
// @Param        business_id query string false "Filter by business"
// @Param        owner query string false "Filter: only services of the caller"
// @Success      200 {array} Service
// @Router       /services [get]
func (h *Handler) ListServices(c *gin.Context) {
	ctx := c.Request.Context()

	if businessID := c.Query("business_id"); businessID != "" {
		services, err := h.manager.ListByBusiness(ctx, businessID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
		return
	}

	if c.Query("owner") == "me" {
		userID, exists := auth.GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
			return
		}
		services, err := h.manager.ListByOwner(ctx, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
			return
		}
		c.JSON(http.StatusOK, services)
		return
	}

	services, err := h.manager.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateService godoc
// @Summary      Update service
// @Tags         services
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        serviceID path string true "Service ID"
// @Success      200 {object} Service
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [put]
func (h *Handler) UpdateService(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.manager.Update(c.Request.Context(), c.Param("serviceID"), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		case errors.Is(err, ErrUnauthorized):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only update your own services"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update service"})
		}
		return
	}

	c.JSON(http.StatusOK, svc)
}

// DeleteService godoc
// @Summary      Delete service
// @Tags         services
// @Security     BearerAuth
// @Param        serviceID path string true "Service ID"
// @Success      204
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /services/{serviceID} [delete]
func (h *Handler) DeleteService(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	err := h.manager.Delete(c.Request.Context(), c.Param("serviceID"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		case errors.Is(err, ErrUnauthorized):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only delete your own services"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete service"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
