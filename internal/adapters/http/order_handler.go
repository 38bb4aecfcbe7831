package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/core/internal/application/services"
	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/logger"
)

// cartResponse pairs the grouped cart view with its live money breakdown.
type cartResponse struct {
	Lines    []entities.CartLine `json:"lines"`
	Subtotal float64             `json:"subtotal"`
	Pricing  services.Pricing    `json:"pricing"`
}

// OrderHandler handles the session cart and the customer side of orders.
type OrderHandler struct {
	catalogService *services.CatalogService
	orderService   *services.OrderService
	logger         *logger.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(catalogService *services.CatalogService, orderService *services.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		catalogService: catalogService,
		orderService:   orderService,
		logger:         logger,
	}
}

// GetCart returns the session cart grouped by book plus the pricing preview.
func (h *OrderHandler) GetCart(c echo.Context) error {
	sess := sessionFromContext(c)
	summary := sess.Cart.Summary()
	return c.JSON(http.StatusOK, cartResponse{
		Lines:    summary.Lines,
		Subtotal: summary.Subtotal,
		Pricing:  services.Price(sess.Cart),
	})
}

// AddItem snapshots one copy of a catalog book into the session cart. Adding
// the same book again simply appends another copy.
func (h *OrderHandler) AddItem(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogService.Get(c.Request().Context(), req.BookID)
	if err != nil {
		return httpError(err)
	}

	sess := sessionFromContext(c)
	sess.Cart.Add(*book)

	h.logger.Debug("Book added to cart",
		"username", sess.Username, "book_id", book.ID, "cart_size", sess.Cart.Len())
	return c.JSON(http.StatusOK, MessageResponse{Message: "Added to cart"})
}

// RemoveItem drops every copy of a book from the session cart. Removing a
// book that is not in the cart succeeds without effect.
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	sess := sessionFromContext(c)
	sess.Cart.RemoveBook(id)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Removed from cart"})
}

// ClearCart empties the session cart.
func (h *OrderHandler) ClearCart(c echo.Context) error {
	sess := sessionFromContext(c)
	sess.Cart.Clear()
	return c.JSON(http.StatusOK, MessageResponse{Message: "Cart cleared"})
}

// Checkout commits the session cart into a persisted order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	sess := sessionFromContext(c)

	order, err := h.orderService.Checkout(c.Request().Context(), sess.Username, sess.Cart)
	if err != nil {
		if order != nil {
			// The order was recorded; only the stock write failed.
			h.logger.Error("Checkout completed with stale stock",
				"order_id", order.OrderID, "username", sess.Username, "error", err)
			return c.JSON(http.StatusCreated, order)
		}
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, order)
}

// MyOrders returns the caller's order history, most recent first.
func (h *OrderHandler) MyOrders(c echo.Context) error {
	sess := sessionFromContext(c)

	orders, err := h.orderService.ListForUser(c.Request().Context(), sess.Username)
	if err != nil {
		h.logger.Error("Order history lookup failed", "username", sess.Username, "error", err)
		return httpError(err)
	}

	if orders == nil {
		orders = []*entities.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}
