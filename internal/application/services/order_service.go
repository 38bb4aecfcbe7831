package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// Pricing is the computed money breakdown for a cart.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// OrderService validates carts and commits them into the order log, adjusting
// catalog stock on the way.
type OrderService struct {
	orderRepo ports.OrderRepository
	bookRepo  ports.BookRepository
	logger    *logger.Logger
	now       func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo ports.OrderRepository, bookRepo ports.BookRepository, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// Price computes the money breakdown for a cart without committing anything:
// 8% tax on the subtotal, a flat 5.99 shipping fee waived from 50 upward, and
// every value rounded to two decimal places.
func Price(cart *Cart) Pricing {
	subtotal := cart.Subtotal()
	tax := subtotal * entities.TaxRate
	shipping := 0.0
	if subtotal < entities.FreeShippingThreshold {
		shipping = entities.ShippingFee
	}

	return Pricing{
		Subtotal: entities.Round2(subtotal),
		Tax:      entities.Round2(tax),
		Shipping: entities.Round2(shipping),
		Total:    entities.Round2(subtotal + tax + shipping),
	}
}

// Checkout commits the cart into a persisted order. The commit is a
// non-atomic three-step sequence:
//
//  1. append the order record and persist the order log;
//  2. decrement catalog stock per purchased book, floored at zero, and
//     persist the catalog;
//  3. clear the cart.
//
// If step 1 fails nothing has changed and the cart is retained so the user
// can retry. If a later step fails the order is already durable and the
// stale stock/cart are an accepted inconsistency; no reconciliation pass
// exists. An empty cart fails with entities.ErrEmptyCart before any write.
func (s *OrderService) Checkout(ctx context.Context, username string, cart *Cart) (*entities.Order, error) {
	if cart.IsEmpty() {
		return nil, entities.ErrEmptyCart
	}

	pricing := Price(cart)
	order := &entities.Order{
		Username: username,
		Items:    cart.Items(),
		Subtotal: pricing.Subtotal,
		Tax:      pricing.Tax,
		Shipping: pricing.Shipping,
		Total:    pricing.Total,
		Date:     entities.NewOrderDate(s.now()),
		Status:   entities.OrderStatusPending,
	}

	orderID, err := s.orderRepo.Append(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.bookRepo.AdjustStock(ctx, cart.Quantities()); err != nil {
		// The order is already durable; stock stays stale by design.
		s.logger.Error("Stock adjustment failed after order was recorded",
			"order_id", orderID, "username", username, "error", err)
		return order, fmt.Errorf("order %d recorded but stock update failed: %w", orderID, err)
	}

	cart.Clear()

	s.logger.Info("Order placed",
		"order_id", orderID,
		"username", username,
		"items", len(order.Items),
		"total", order.Total,
	)
	return order, nil
}

// ListForUser returns the user's order history, most recent first.
func (s *OrderService) ListForUser(ctx context.Context, username string) ([]*entities.Order, error) {
	orders, err := s.orderRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool { return orders[i].OrderID > orders[j].OrderID })
	return orders, nil
}

// ListAll returns the full order log for the admin panel, optionally filtered
// by status and sorted by one of the ports.OrderSort options. An empty sort
// defaults to newest first.
func (s *OrderService) ListAll(ctx context.Context, status entities.OrderStatus, sortBy string) ([]*entities.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	switch sortBy {
	case ports.OrderSortOldest:
		sort.SliceStable(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	case ports.OrderSortHighest:
		sort.SliceStable(orders, func(i, j int) bool { return orders[i].Total > orders[j].Total })
	case ports.OrderSortLowest:
		sort.SliceStable(orders, func(i, j int) bool { return orders[i].Total < orders[j].Total })
	default:
		sort.SliceStable(orders, func(i, j int) bool { return orders[i].OrderID > orders[j].OrderID })
	}

	return orders, nil
}

// UpdateStatus sets an order's status. Any known status may replace any
// other; the lifecycle is deliberately unconstrained.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status entities.OrderStatus) error {
	if !status.IsValid() {
		return entities.ErrInvalidStatus
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update order %d: %w", orderID, err)
	}

	s.logger.Info("Order status updated", "order_id", orderID, "status", status)
	return nil
}
