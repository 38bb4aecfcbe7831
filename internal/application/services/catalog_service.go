package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// DefaultPageSize is the storefront catalog page size.
const DefaultPageSize = 12

// CatalogService manages the book catalog and the pure filter/sort/paginate
// transforms over it.
type CatalogService struct {
	bookRepo ports.BookRepository
	logger   *logger.Logger
	pageSize int
}

// NewCatalogService creates a new catalog service. pageSize <= 0 falls back
// to DefaultPageSize.
func NewCatalogService(bookRepo ports.BookRepository, logger *logger.Logger, pageSize int) *CatalogService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &CatalogService{
		bookRepo: bookRepo,
		logger:   logger,
		pageSize: pageSize,
	}
}

// List returns the full catalog in insertion order.
func (s *CatalogService) List(ctx context.Context) ([]*entities.Book, error) {
	return s.bookRepo.List(ctx)
}

// Get returns one book by id.
func (s *CatalogService) Get(ctx context.Context, id int) (*entities.Book, error) {
	return s.bookRepo.GetByID(ctx, id)
}

// Create adds a new book and returns the assigned id.
func (s *CatalogService) Create(ctx context.Context, req ports.BookRequest) (*entities.Book, error) {
	book := bookFromRequest(req)

	id, err := s.bookRepo.Create(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	s.logger.Info("Book created", "book_id", id, "title", book.Title)
	return book, nil
}

// Update replaces all non-id fields of an existing book.
func (s *CatalogService) Update(ctx context.Context, id int, req ports.BookRequest) (*entities.Book, error) {
	book := bookFromRequest(req)
	book.ID = id

	if err := s.bookRepo.Update(ctx, id, book); err != nil {
		return nil, fmt.Errorf("failed to update book %d: %w", id, err)
	}

	s.logger.Info("Book updated", "book_id", id, "title", book.Title)
	return book, nil
}

// Delete removes a book. Deleting an absent id succeeds silently.
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	if err := s.bookRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete book %d: %w", id, err)
	}

	s.logger.Info("Book deleted", "book_id", id)
	return nil
}

// Categories returns the distinct categories present in the catalog, sorted.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, b := range books {
		if _, ok := seen[b.Category]; !ok {
			seen[b.Category] = struct{}{}
			out = append(out, b.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Browse applies the filter chain to a fresh catalog snapshot and returns the
// requested page.
func (s *CatalogService) Browse(ctx context.Context, filter ports.CatalogFilter) (*ports.CatalogPage, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilter(books, filter)

	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	page, pageCount, paged := Paginate(filtered, filter.Page, pageSize)

	return &ports.CatalogPage{
		Books:      paged,
		Page:       page,
		PageCount:  pageCount,
		TotalItems: len(filtered),
	}, nil
}

func bookFromRequest(req ports.BookRequest) *entities.Book {
	return &entities.Book{
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Stock:       req.Stock,
		Image:       req.Image,
	}
}

// ApplyFilter runs the pure, stateless filter chain over a catalog snapshot.
// Combination order is fixed: search, category, price band, sort. Relative
// order of unfiltered books is preserved; sorting is stable.
func ApplyFilter(books []*entities.Book, filter ports.CatalogFilter) []*entities.Book {
	out := books

	if q := strings.ToLower(strings.TrimSpace(filter.Search)); q != "" {
		var matched []*entities.Book
		for _, b := range out {
			if strings.Contains(strings.ToLower(b.Title), q) ||
				strings.Contains(strings.ToLower(b.Author), q) {
				matched = append(matched, b)
			}
		}
		out = matched
	}

	if filter.Category != "" {
		var matched []*entities.Book
		for _, b := range out {
			if b.Category == filter.Category {
				matched = append(matched, b)
			}
		}
		out = matched
	}

	switch filter.PriceBand {
	case ports.PriceBandUnder15:
		out = filterPrice(out, func(p float64) bool { return p < 15 })
	case ports.PriceBand15To20:
		out = filterPrice(out, func(p float64) bool { return p >= 15 && p <= 20 })
	case ports.PriceBandOver20:
		out = filterPrice(out, func(p float64) bool { return p > 20 })
	}

	if filter.SortBy != "" {
		sorted := make([]*entities.Book, len(out))
		copy(sorted, out)

		less := func(a, b *entities.Book) bool { return a.Title < b.Title }
		switch filter.SortBy {
		case ports.SortByPrice:
			less = func(a, b *entities.Book) bool { return a.Price < b.Price }
		case ports.SortByAuthor:
			less = func(a, b *entities.Book) bool { return a.Author < b.Author }
		}

		sort.SliceStable(sorted, func(i, j int) bool {
			if filter.Descending {
				return less(sorted[j], sorted[i])
			}
			return less(sorted[i], sorted[j])
		})
		out = sorted
	}

	return out
}

func filterPrice(books []*entities.Book, keep func(float64) bool) []*entities.Book {
	var matched []*entities.Book
	for _, b := range books {
		if keep(b.Price) {
			matched = append(matched, b)
		}
	}
	return matched
}

// Paginate slices a filtered sequence into the requested zero-based page. An
// out-of-range page resets to the first page rather than erroring, so a filter
// change that shrinks the result set lands the caller back at the start. An
// empty sequence yields page 0 of 0 with no items.
func Paginate(books []*entities.Book, page, pageSize int) (int, int, []*entities.Book) {
	if len(books) == 0 {
		return 0, 0, nil
	}

	pageCount := (len(books) + pageSize - 1) / pageSize
	if page < 0 || page >= pageCount {
		page = 0
	}

	start := page * pageSize
	end := start + pageSize
	if end > len(books) {
		end = len(books)
	}
	return page, pageCount, books[start:end]
}
