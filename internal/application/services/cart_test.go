package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/domain/entities"
)

var (
	dune   = entities.Book{ID: 1, Title: "Dune", Price: 15.99}
	gatsby = entities.Book{ID: 2, Title: "The Great Gatsby", Price: 10.99}
	hobbit = entities.Book{ID: 3, Title: "The Hobbit", Price: 14.99}
)

func TestCartAddAndLen(t *testing.T) {
	cart := NewCart()
	assert.True(t, cart.IsEmpty())

	cart.Add(dune)
	cart.Add(dune)
	cart.Add(gatsby)

	assert.Equal(t, 3, cart.Len(), "duplicates count as separate entries")
	assert.False(t, cart.IsEmpty())
}

func TestCartSubtotal(t *testing.T) {
	cart := NewCart()
	cart.Add(dune)
	cart.Add(dune)
	cart.Add(gatsby)

	assert.InDelta(t, 2*15.99+10.99, cart.Subtotal(), 1e-9)
}

func TestCartRemoveAt(t *testing.T) {
	cart := NewCart()
	cart.Add(dune)
	cart.Add(gatsby)

	cart.RemoveAt(0)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, gatsby.ID, cart.Items()[0].ID)

	// Out-of-range indices are no-ops.
	cart.RemoveAt(-1)
	cart.RemoveAt(5)
	assert.Equal(t, 1, cart.Len())
}

func TestCartRemoveBook(t *testing.T) {
	cart := NewCart()
	cart.Add(dune)
	cart.Add(gatsby)
	cart.Add(dune)

	cart.RemoveBook(dune.ID)
	require.Equal(t, 1, cart.Len(), "every copy of the book is removed")
	assert.Equal(t, gatsby.ID, cart.Items()[0].ID)

	cart.RemoveBook(42)
	assert.Equal(t, 1, cart.Len(), "removing an absent book is a no-op")
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(dune)
	cart.Clear()
	assert.True(t, cart.IsEmpty())
}

func TestCartSnapshotIsolation(t *testing.T) {
	cart := NewCart()
	book := entities.Book{ID: 9, Title: "Original", Price: 10}
	cart.Add(book)

	// Later catalog edits must not change what is already in the cart.
	book.Price = 99
	book.Title = "Edited"

	items := cart.Items()
	assert.Equal(t, "Original", items[0].Title)
	assert.Equal(t, 10.0, items[0].Price)

	// Mutating the returned copy must not reach into the cart either.
	items[0].Price = 1
	assert.Equal(t, 10.0, cart.Items()[0].Price)
}

func TestCartQuantities(t *testing.T) {
	cart := NewCart()
	cart.Add(dune)
	cart.Add(gatsby)
	cart.Add(dune)
	cart.Add(dune)

	assert.Equal(t, map[int]int{dune.ID: 3, gatsby.ID: 1}, cart.Quantities())
}

func TestCartSummaryGroupsByFirstOccurrence(t *testing.T) {
	cart := NewCart()
	cart.Add(gatsby)
	cart.Add(dune)
	cart.Add(gatsby)
	cart.Add(hobbit)

	summary := cart.Summary()
	require.Len(t, summary.Lines, 3)

	assert.Equal(t, gatsby.ID, summary.Lines[0].Item.ID)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, dune.ID, summary.Lines[1].Item.ID)
	assert.Equal(t, 1, summary.Lines[1].Quantity)
	assert.Equal(t, hobbit.ID, summary.Lines[2].Item.ID)

	assert.InDelta(t, 2*10.99+15.99+14.99, summary.Subtotal, 1e-9)
	assert.Equal(t, 4, cart.Len(), "summary is a pure read")
}
