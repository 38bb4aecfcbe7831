// Package seed provides the one-time data bootstrap: a deterministic
// 200-book starter catalog across ten fixed categories and the default
// admin account. It is a seeding utility, not part of the runtime core;
// the catalog store accepts its output shape unchanged.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/bookstore/core/internal/domain/entities"
	"github.com/bookstore/core/internal/ports"
)

type row struct {
	title       string
	author      string
	price       float64
	description string
	stock       int
}

var spineEmojis = [4]string{"📕", "📗", "📘", "📙"}

type section struct {
	category string
	rows     []row
	// image picks the glyph for the i-th row of the section.
	image func(i int) string
}

func cycled(i int) string { return spineEmojis[i%4] }

// everyFifthShelf marks every fifth entry with the stacked-books glyph.
func everyFifthShelf(i int) string {
	if i%5 == 0 {
		return "📚"
	}
	return spineEmojis[i%4]
}

func shelf(int) string { return "📚" }

// Catalog returns the full 200-book starter catalog with sequential ids
// starting at 1. The output is deterministic: same books, same ids, same
// glyphs on every call.
func Catalog() []entities.Book {
	sections := []section{
		{"Fiction", fiction, cycled},
		{"Science Fiction", scienceFiction, cycled},
		{"Fantasy", fantasy, cycled},
		{"Mystery", mystery, cycled},
		{"Romance", romance, cycled},
		{"Non-Fiction", nonFiction, everyFifthShelf},
		{"Biography", biography, everyFifthShelf},
		{"History", history, everyFifthShelf},
		{"Self-Help", selfHelp, shelf},
		{"Children", children, cycled},
	}

	var books []entities.Book
	id := 1
	for _, sec := range sections {
		for i, r := range sec.rows {
			books = append(books, entities.Book{
				ID:          id,
				Title:       r.title,
				Author:      r.author,
				Price:       r.price,
				Category:    sec.category,
				Description: r.description,
				Stock:       r.stock,
				Image:       sec.image(i),
			})
			id++
		}
	}
	return books
}

// AdminUsername and AdminPassword are the demo bootstrap credentials.
const (
	AdminUsername = "admin"
	AdminPassword = "admin123"
	AdminEmail    = "admin@bookstore.com"
)

// Run seeds the catalog and the default admin account. Existing data is left
// untouched: a non-empty catalog is not reseeded and a taken admin username
// is not overwritten. hashPassword is injected so this package stays free of
// the hashing policy.
func Run(ctx context.Context, books ports.BookRepository, users ports.UserRepository, hashPassword func(string) string) (int, error) {
	existing, err := books.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to inspect catalog: %w", err)
	}

	seeded := 0
	if len(existing) == 0 {
		catalog := Catalog()
		if err := books.ReplaceAll(ctx, catalog); err != nil {
			return 0, fmt.Errorf("failed to seed catalog: %w", err)
		}
		seeded = len(catalog)
	}

	admin := &entities.User{
		Username:     AdminUsername,
		PasswordHash: hashPassword(AdminPassword),
		Email:        AdminEmail,
		IsAdmin:      true,
	}
	if err := users.Create(ctx, admin); err != nil && !errors.Is(err, entities.ErrDuplicateUser) {
		return seeded, fmt.Errorf("failed to seed admin user: %w", err)
	}

	return seeded, nil
}
