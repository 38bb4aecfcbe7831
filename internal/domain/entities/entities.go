package entities

import (
	"errors"
	"math"
	"time"
)

// Common errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username already exists")
	ErrWrongPassword = errors.New("incorrect password")
	ErrBookNotFound  = errors.New("book not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOutOfStock    = errors.New("book is out of stock")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrUnauthorized  = errors.New("unauthorized")
)

// OrderStatus is the lifecycle label of an order. Transitions are
// unconstrained: an admin may set any status to any other.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// User represents a registered account. The password is stored only as a
// deterministic unsalted SHA-256 digest so that the users.json document stays
// byte-compatible with the original demo data. That scheme is a known weakness
// and must not be reused outside this demo.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"is_admin"`
}

// Book represents a catalog record. IDs are assigned monotonically
// (max existing id + 1) and are never reused after deletion.
type Book struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
}

// Order is an immutable purchase record. Items are full Book snapshots taken
// at add-to-cart time, so later catalog edits never alter past orders.
// Status is the only field mutated after creation.
type Order struct {
	OrderID  int         `json:"order_id"`
	Username string      `json:"username"`
	Items    []Book      `json:"items"`
	Subtotal float64     `json:"subtotal"`
	Tax      float64     `json:"tax"`
	Shipping float64     `json:"shipping"`
	Total    float64     `json:"total"`
	Date     string      `json:"date"`
	Status   OrderStatus `json:"status"`
}

// CartLine is one grouped row of a cart summary: a snapshot plus how many
// identical snapshots the cart holds.
type CartLine struct {
	Item     Book `json:"item"`
	Quantity int  `json:"quantity"`
}

// Pricing rules applied at checkout.
const (
	TaxRate               = 0.08
	ShippingFee           = 5.99
	FreeShippingThreshold = 50.0
)

// OrderDateLayout is the timestamp format stored in orders.json.
const OrderDateLayout = "2006-01-02 15:04:05"

// DefaultLowStockThreshold flags books that need restocking.
const DefaultLowStockThreshold = 20

// Round2 rounds a money value to two decimal places at the point of storage.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// IsValid reports whether the status is one of the five known labels.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// InStock reports whether at least one copy is available.
func (b *Book) InStock() bool {
	return b.Stock > 0
}

// IsLowStock reports whether the book falls under the restock threshold.
func (b *Book) IsLowStock(threshold int) bool {
	return b.Stock < threshold
}

// NewOrderDate formats a creation timestamp the way the order log stores it.
func NewOrderDate(t time.Time) string {
	return t.Format(OrderDateLayout)
}
