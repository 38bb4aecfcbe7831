package repository

import (
	"context"

	"github.com/bookstore/core/internal/domain/entities"
)

type bookDocument = []entities.Book

// BookRepository is the catalog store backed by books.json. The document is
// an ordered array; List preserves insertion order.
type BookRepository struct {
	doc *Document[bookDocument]
}

// NewBookRepository creates a catalog store for the given file path.
func NewBookRepository(path string) *BookRepository {
	return &BookRepository{doc: NewDocument[bookDocument](path)}
}

// Create assigns the next id (max existing + 1, or 1 on an empty catalog),
// appends the record and persists. The assigned id is returned and also
// written back into book. Deleted ids are never reassigned because the
// maximum only grows.
func (r *BookRepository) Create(ctx context.Context, book *entities.Book) (int, error) {
	var assigned int
	err := r.doc.Mutate(bookDocument{}, func(books bookDocument) (bookDocument, error) {
		maxID := 0
		for _, b := range books {
			if b.ID > maxID {
				maxID = b.ID
			}
		}
		assigned = maxID + 1
		book.ID = assigned
		return append(books, *book), nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// GetByID returns the matching record, or entities.ErrBookNotFound.
func (r *BookRepository) GetByID(ctx context.Context, id int) (*entities.Book, error) {
	books := r.doc.Load(bookDocument{})
	for i := range books {
		if books[i].ID == id {
			b := books[i]
			return &b, nil
		}
	}
	return nil, entities.ErrBookNotFound
}

// Update replaces the record's non-id fields and persists. Returns
// entities.ErrBookNotFound when the id is absent; nothing is written then.
func (r *BookRepository) Update(ctx context.Context, id int, book *entities.Book) error {
	return r.doc.Mutate(bookDocument{}, func(books bookDocument) (bookDocument, error) {
		for i := range books {
			if books[i].ID == id {
				updated := *book
				updated.ID = id
				books[i] = updated
				return books, nil
			}
		}
		return nil, entities.ErrBookNotFound
	})
}

// Delete removes the matching record if present and persists. Deleting an
// absent id is a no-op, not an error.
func (r *BookRepository) Delete(ctx context.Context, id int) error {
	return r.doc.Mutate(bookDocument{}, func(books bookDocument) (bookDocument, error) {
		kept := books[:0]
		for _, b := range books {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		return kept, nil
	})
}

// List returns all books in insertion order.
func (r *BookRepository) List(ctx context.Context) ([]*entities.Book, error) {
	books := r.doc.Load(bookDocument{})
	out := make([]*entities.Book, len(books))
	for i := range books {
		b := books[i]
		out[i] = &b
	}
	return out, nil
}

// ReplaceAll overwrites the whole catalog document with the given records.
func (r *BookRepository) ReplaceAll(ctx context.Context, books []entities.Book) error {
	return r.doc.Save(books)
}

// AdjustStock decrements stock by the purchased quantity per book id, floored
// at zero, and persists the catalog in one write. Ids absent from the catalog
// are skipped.
func (r *BookRepository) AdjustStock(ctx context.Context, quantities map[int]int) error {
	return r.doc.Mutate(bookDocument{}, func(books bookDocument) (bookDocument, error) {
		for i := range books {
			qty, ok := quantities[books[i].ID]
			if !ok {
				continue
			}
			books[i].Stock -= qty
			if books[i].Stock < 0 {
				books[i].Stock = 0
			}
		}
		return books, nil
	})
}
