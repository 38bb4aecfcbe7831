package services

import (
	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/ports"
)

// Cart is the per-session pending selection: an ordered list of full Book
// snapshots taken at add time. Snapshots are value copies, so later catalog
// edits never change what is already in the cart. Quantity of a book is
// implicit in how many identical snapshots the sequence holds.
//
// A Cart has no durable identity. It belongs to one session, is created at
// login and discarded at logout or after a successful checkout.
type Cart struct {
	items []entities.Book
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add appends a snapshot of the given book. No stock check happens here;
// availability is only enforced at checkout.
func (c *Cart) Add(book entities.Book) {
	c.items = append(c.items, book)
}

// RemoveAt removes the entry at the given position. An out-of-range index is
// a no-op.
func (c *Cart) RemoveAt(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

// RemoveBook removes every entry matching the book id.
func (c *Cart) RemoveBook(bookID int) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != bookID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Len returns the number of entries, counting duplicates.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart holds no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the raw entry sequence.
func (c *Cart) Items() []entities.Book {
	out := make([]entities.Book, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal sums the snapshot prices of every entry.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// Quantities groups entries by book id, returning the purchased quantity per
// distinct book.
func (c *Cart) Quantities() map[int]int {
	out := make(map[int]int, len(c.items))
	for _, item := range c.items {
		out[item.ID]++
	}
	return out
}

// Summary groups the entries by book id preserving first-occurrence order and
// reports the running subtotal. It is a pure read; the cart is not modified.
func (c *Cart) Summary() ports.CartSummary {
	index := make(map[int]int)
	var lines []entities.CartLine
	var subtotal float64

	for _, item := range c.items {
		subtotal += item.Price
		if i, ok := index[item.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[item.ID] = len(lines)
		lines = append(lines, entities.CartLine{Item: item, Quantity: 1})
	}

	return ports.CartSummary{Lines: lines, Subtotal: subtotal}
}
