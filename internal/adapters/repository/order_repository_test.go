package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/domain/entities"
)

func testOrder(username string, total float64) *entities.Order {
	return &entities.Order{
		Username: username,
		Items:    []entities.Book{{ID: 1, Title: "Dune", Price: total}},
		Subtotal: total,
		Total:    total,
		Date:     "2024-03-15 09:05:07",
		Status:   entities.OrderStatusPending,
	}
}

func TestOrderRepositoryAppendAssignsIDs(t *testing.T) {
	repo := NewOrderRepository(tempPath(t, "orders.json"))
	ctx := context.Background()

	first := testOrder("alice", 10)
	id, err := repo.Append(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, first.OrderID)

	id, err = repo.Append(ctx, testOrder("bob", 20))
	require.NoError(t, err)
	assert.Equal(t, 2, id)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOrderRepositoryListByUsername(t *testing.T) {
	repo := NewOrderRepository(tempPath(t, "orders.json"))
	ctx := context.Background()

	_, err := repo.Append(ctx, testOrder("alice", 10))
	require.NoError(t, err)
	_, err = repo.Append(ctx, testOrder("bob", 20))
	require.NoError(t, err)
	_, err = repo.Append(ctx, testOrder("alice", 30))
	require.NoError(t, err)

	orders, err := repo.ListByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].OrderID)
	assert.Equal(t, 3, orders[1].OrderID)

	orders, err = repo.ListByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	repo := NewOrderRepository(tempPath(t, "orders.json"))
	ctx := context.Background()

	_, err := repo.Append(ctx, testOrder("alice", 10))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, 1, entities.OrderStatusShipped))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusShipped, orders[0].Status)

	err = repo.UpdateStatus(ctx, 42, entities.OrderStatusShipped)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestOrderRepositoryItemsAreSnapshots(t *testing.T) {
	repo := NewOrderRepository(tempPath(t, "orders.json"))
	ctx := context.Background()

	order := testOrder("alice", 10)
	_, err := repo.Append(ctx, order)
	require.NoError(t, err)

	// Mutating the caller's copy after the append must not leak into the log.
	order.Items[0].Price = 999

	stored, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10.0, stored[0].Items[0].Price)
}
