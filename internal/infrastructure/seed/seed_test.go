package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/adapters/repository"
	"github.com/bookstore/core/internal/domain/entities"
)

func TestCatalogShape(t *testing.T) {
	books := Catalog()
	require.Len(t, books, 200)

	for i, b := range books {
		assert.Equal(t, i+1, b.ID, "ids are sequential from 1")
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.NotEmpty(t, b.Category)
		assert.NotEmpty(t, b.Description)
		assert.NotEmpty(t, b.Image)
		assert.Greater(t, b.Price, 0.0)
		assert.Greater(t, b.Stock, 0)
	}
}

func TestCatalogCategoryCounts(t *testing.T) {
	counts := make(map[string]int)
	for _, b := range Catalog() {
		counts[b.Category]++
	}

	assert.Equal(t, map[string]int{
		"Fiction":         40,
		"Science Fiction": 30,
		"Fantasy":         30,
		"Mystery":         25,
		"Romance":         20,
		"Non-Fiction":     20,
		"Biography":       15,
		"History":         10,
		"Self-Help":       5,
		"Children":        5,
	}, counts)
}

func TestCatalogDeterministic(t *testing.T) {
	assert.Equal(t, Catalog(), Catalog())
}

func TestRunSeedsEmptyStore(t *testing.T) {
	dir := t.TempDir()
	books := repository.NewBookRepository(filepath.Join(dir, "books.json"))
	users := repository.NewUserRepository(filepath.Join(dir, "users.json"))
	ctx := context.Background()

	hash := func(p string) string { return "hashed:" + p }

	seeded, err := Run(ctx, books, users, hash)
	require.NoError(t, err)
	assert.Equal(t, 200, seeded)

	stored, err := books.List(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 200)

	admin, err := users.GetByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, AdminEmail, admin.Email)
	assert.Equal(t, "hashed:"+AdminPassword, admin.PasswordHash)
}

func TestRunLeavesExistingDataAlone(t *testing.T) {
	dir := t.TempDir()
	books := repository.NewBookRepository(filepath.Join(dir, "books.json"))
	users := repository.NewUserRepository(filepath.Join(dir, "users.json"))
	ctx := context.Background()

	require.NoError(t, books.ReplaceAll(ctx, []entities.Book{{ID: 1, Title: "Custom"}}))
	require.NoError(t, users.Create(ctx, &entities.User{
		Username:     AdminUsername,
		PasswordHash: "custom-digest",
		Email:        "ops@example.com",
		IsAdmin:      true,
	}))

	seeded, err := Run(ctx, books, users, func(p string) string { return "x" })
	require.NoError(t, err)
	assert.Zero(t, seeded, "a non-empty catalog is not reseeded")

	stored, err := books.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Custom", stored[0].Title)

	admin, err := users.GetByUsername(ctx, AdminUsername)
	require.NoError(t, err)
	assert.Equal(t, "custom-digest", admin.PasswordHash, "an existing admin is not overwritten")
}
