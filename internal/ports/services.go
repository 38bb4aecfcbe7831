package ports

import (
	"github.com/bookstore/core/internal/domain/entities"
)

// RegisterRequest is the payload for account creation. Confirmation matching
// and field validation happen at the request layer before the credential
// store is touched.
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful login.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// BookRequest is the admin payload for creating or replacing a catalog record.
type BookRequest struct {
	Title       string  `json:"title" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Image       string  `json:"image"`
}

// CatalogPage is one page of a filtered, sorted catalog listing.
type CatalogPage struct {
	Books      []*entities.Book `json:"books"`
	Page       int              `json:"page"`
	PageCount  int              `json:"page_count"`
	TotalItems int              `json:"total_items"`
}

// CartSummary is the grouped, order-preserving view of a session cart.
type CartSummary struct {
	Lines    []entities.CartLine `json:"lines"`
	Subtotal float64             `json:"subtotal"`
}

// StatusUpdateRequest sets an order's status. Any known status may replace
// any other; no forward-only lifecycle is enforced.
type StatusUpdateRequest struct {
	Status entities.OrderStatus `json:"status" validate:"required"`
}

// CategoryStat is one bucket of a per-category aggregation.
type CategoryStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count,omitempty"`
	Revenue  float64 `json:"revenue,omitempty"`
}

// UserStat summarizes one account for the admin user-management view.
type UserStat struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	IsAdmin    bool    `json:"is_admin"`
	OrderCount int     `json:"order_count"`
	TotalSpent float64 `json:"total_spent"`
}

// Dashboard is the admin analytics snapshot, recomputed fresh on each request.
type Dashboard struct {
	TotalBooks           int              `json:"total_books"`
	TotalOrders          int              `json:"total_orders"`
	TotalUsers           int              `json:"total_users"`
	TotalRevenue         float64          `json:"total_revenue"`
	CategoryDistribution []CategoryStat   `json:"category_distribution"`
	CategoryRevenue      []CategoryStat   `json:"category_revenue"`
	LowStock             []*entities.Book `json:"low_stock"`
	Users                []UserStat       `json:"users"`
}
