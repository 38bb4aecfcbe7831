package repository

import (
	"context"

	"github.com/bookstore/core/internal/domain/entities"
)

type orderDocument = []entities.Order

// OrderRepository is the append-only order log backed by orders.json.
// Orders are never deleted; status is the only field rewritten in place.
type OrderRepository struct {
	doc *Document[orderDocument]
}

// NewOrderRepository creates an order log for the given file path.
func NewOrderRepository(path string) *OrderRepository {
	return &OrderRepository{doc: NewDocument[orderDocument](path)}
}

// Append assigns order_id = current count + 1, appends and persists. The
// assigned id is returned and written back into order.
func (r *OrderRepository) Append(ctx context.Context, order *entities.Order) (int, error) {
	var assigned int
	err := r.doc.Mutate(orderDocument{}, func(orders orderDocument) (orderDocument, error) {
		assigned = len(orders) + 1
		order.OrderID = assigned
		return append(orders, *order), nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// List returns the full order log in insertion order.
func (r *OrderRepository) List(ctx context.Context) ([]*entities.Order, error) {
	orders := r.doc.Load(orderDocument{})
	out := make([]*entities.Order, len(orders))
	for i := range orders {
		o := orders[i]
		out[i] = &o
	}
	return out, nil
}

// ListByUsername returns the user's orders in insertion order.
func (r *OrderRepository) ListByUsername(ctx context.Context, username string) ([]*entities.Order, error) {
	orders := r.doc.Load(orderDocument{})
	var out []*entities.Order
	for i := range orders {
		if orders[i].Username == username {
			o := orders[i]
			out = append(out, &o)
		}
	}
	return out, nil
}

// Count returns the number of recorded orders.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	return len(r.doc.Load(orderDocument{})), nil
}

// UpdateStatus rewrites the status of an existing order and persists the log.
// Returns entities.ErrOrderNotFound when the id is absent.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID int, status entities.OrderStatus) error {
	return r.doc.Mutate(orderDocument{}, func(orders orderDocument) (orderDocument, error) {
		for i := range orders {
			if orders[i].OrderID == orderID {
				orders[i].Status = status
				return orders, nil
			}
		}
		return nil, entities.ErrOrderNotFound
	})
}
