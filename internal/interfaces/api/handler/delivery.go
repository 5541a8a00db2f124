package handler

import (
	"countdown/internal/application/service"
	"countdown/internal/pkg/logger"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// DeliveryHandler serves the log of fired notifications.
type DeliveryHandler struct {
	deliveryService service.DeliveryService
	log             logger.Logger
}

// NewDeliveryHandler creates a new DeliveryHandler.
func NewDeliveryHandler(deliveryService service.DeliveryService, log logger.Logger) *DeliveryHandler {
	return &DeliveryHandler{deliveryService: deliveryService, log: log}
}

// List handles GET /deliveries?limit=N.
func (h *DeliveryHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be an integer"})
		}
		limit = n
	}

	deliveries, err := h.deliveryService.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list deliveries"})
	}
	return c.JSON(http.StatusOK, deliveries)
}
