package ports

import (
	"context"

	"github.com/bookstore/core/internal/domain/entities"
)

// UserRepository defines the interface for the credential store backed by
// users.json. The document is re-read on every call; there is no in-memory
// shared state between operations.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
	Count(ctx context.Context) (int, error)
}

// BookRepository defines the interface for the catalog store backed by
// books.json.
type BookRepository interface {
	// Create assigns the next id (max existing + 1, or 1 on an empty
	// catalog), appends and persists. Returns the assigned id.
	Create(ctx context.Context, book *entities.Book) (int, error)
	GetByID(ctx context.Context, id int) (*entities.Book, error)
	// Update replaces the record's non-id fields. Returns
	// entities.ErrBookNotFound when the id is absent.
	Update(ctx context.Context, id int, book *entities.Book) error
	// Delete is idempotent: removing an absent id is not an error.
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*entities.Book, error)
	// ReplaceAll overwrites the whole catalog document. Used by the
	// one-time seeder, which supplies records with preassigned ids.
	ReplaceAll(ctx context.Context, books []entities.Book) error
	// AdjustStock decrements stock for each id by the given quantity,
	// floored at zero, and persists the catalog once.
	AdjustStock(ctx context.Context, quantities map[int]int) error
}

// OrderRepository defines the interface for the order log backed by
// orders.json. Orders are append-only; only status is ever rewritten.
type OrderRepository interface {
	// Append assigns order_id = current count + 1, appends and persists.
	// Returns the assigned id.
	Append(ctx context.Context, order *entities.Order) (int, error)
	List(ctx context.Context) ([]*entities.Order, error)
	ListByUsername(ctx context.Context, username string) ([]*entities.Order, error)
	Count(ctx context.Context) (int, error)
	// UpdateStatus rewrites the status of an existing order. Returns
	// entities.ErrOrderNotFound when the id is absent.
	UpdateStatus(ctx context.Context, orderID int, status entities.OrderStatus) error
}

// Sort fields accepted by the catalog filter.
const (
	SortByTitle  = "title"
	SortByPrice  = "price"
	SortByAuthor = "author"
)

// Price bands matching the storefront's fixed price filter.
const (
	PriceBandAll     = ""
	PriceBandUnder15 = "under_15"
	PriceBand15To20  = "15_to_20"
	PriceBandOver20  = "over_20"
)

// CatalogFilter describes a pure transformation over a catalog snapshot.
// Filters combine in a fixed order: search, category, price band, sort,
// pagination. Zero values mean "no constraint".
type CatalogFilter struct {
	// Search is matched case-insensitively as a substring of title or author.
	Search string
	// Category must match exactly when non-empty.
	Category string
	// PriceBand is one of the PriceBand constants.
	PriceBand string
	// SortBy is one of the SortBy constants; empty keeps insertion order.
	SortBy string
	// Descending reverses the sort direction.
	Descending bool
	// Page is the zero-based page index, clamped to the available range.
	Page int
	// PageSize defaults to the configured catalog page size when <= 0.
	PageSize int
}

// OrderSort options for the admin order listing.
const (
	OrderSortNewest  = "newest"
	OrderSortOldest  = "oldest"
	OrderSortHighest = "highest"
	OrderSortLowest  = "lowest"
)
