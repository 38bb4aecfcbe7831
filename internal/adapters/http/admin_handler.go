package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/core/internal/application/services"
	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// AdminHandler handles the order-management and analytics side of the
// admin panel. Book management lives on CatalogHandler.
type AdminHandler struct {
	orderService     *services.OrderService
	analyticsService *services.AnalyticsService
	logger           *logger.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(orderService *services.OrderService, analyticsService *services.AnalyticsService, logger *logger.Logger) *AdminHandler {
	return &AdminHandler{
		orderService:     orderService,
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// ListOrders returns every order in the store, optionally filtered by status
// and sorted by date or total.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	status := entities.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown order status")
	}

	orders, err := h.orderService.ListAll(c.Request().Context(), status, c.QueryParam("sort_by"))
	if err != nil {
		h.logger.Error("Order listing failed", "error", err)
		return httpError(err)
	}

	if orders == nil {
		orders = []*entities.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets the status of a single order.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid order ID")
	}

	var req ports.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		h.logger.Error("Status update failed", "order_id", id, "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order updated"})
}

// Dashboard returns the full analytics snapshot, recomputed from the stored
// documents on every request.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.analyticsService.Dashboard(c.Request().Context())
	if err != nil {
		h.logger.Error("Dashboard aggregation failed", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dashboard)
}
