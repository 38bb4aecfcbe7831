package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 12.34, 12.34},
		{"half rounds up", 12.345, 12.35},
		{"truncates noise", 3.19999999, 3.2},
		{"zero", 0, 0},
		{"tax on 40", 40 * TaxRate, 3.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
		})
	}
}

func TestOrderStatusIsValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	} {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}

	assert.False(t, OrderStatus("Refunded").IsValid())
	assert.False(t, OrderStatus("pending").IsValid(), "statuses are case sensitive")
	assert.False(t, OrderStatus("").IsValid())
}

func TestBookStock(t *testing.T) {
	b := Book{Stock: 1}
	assert.True(t, b.InStock())

	b.Stock = 0
	assert.False(t, b.InStock())

	b.Stock = 19
	assert.True(t, b.IsLowStock(DefaultLowStockThreshold))

	b.Stock = 20
	assert.False(t, b.IsLowStock(DefaultLowStockThreshold), "threshold is exclusive")
}

func TestNewOrderDate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "2024-03-15 09:05:07", NewOrderDate(ts))
}
