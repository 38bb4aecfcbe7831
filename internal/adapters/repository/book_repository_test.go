package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/domain/entities"
)

func TestBookRepositoryCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	first := &entities.Book{Title: "First"}
	id, err := repo.Create(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 1, first.ID)

	second := &entities.Book{Title: "Second"}
	id, err = repo.Create(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestBookRepositoryIDsNeverReused(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.Book{Title: "A"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &entities.Book{Title: "B"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1))

	id, err := repo.Create(ctx, &entities.Book{Title: "C"})
	require.NoError(t, err)
	assert.Equal(t, 3, id, "deleting id 1 must not free it while id 2 exists")
}

func TestBookRepositoryGetByID(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.Book{Title: "Dune", Price: 15.99})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, entities.ErrBookNotFound)
}

func TestBookRepositoryUpdate(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.Book{Title: "Old", Price: 10})
	require.NoError(t, err)

	err = repo.Update(ctx, 1, &entities.Book{ID: 999, Title: "New", Price: 12})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 1, got.ID, "the path id wins over any id in the payload")

	err = repo.Update(ctx, 42, &entities.Book{Title: "Ghost"})
	assert.ErrorIs(t, err, entities.ErrBookNotFound)
}

func TestBookRepositoryDeleteAbsentIsNoOp(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.Book{Title: "Keep"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 42))

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestBookRepositoryReplaceAll(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	_, err := repo.Create(ctx, &entities.Book{Title: "Stale"})
	require.NoError(t, err)

	err = repo.ReplaceAll(ctx, []entities.Book{
		{ID: 1, Title: "A"},
		{ID: 2, Title: "B"},
	})
	require.NoError(t, err)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "A", books[0].Title)
	assert.Equal(t, "B", books[1].Title)
}

func TestBookRepositoryAdjustStock(t *testing.T) {
	repo := NewBookRepository(tempPath(t, "books.json"))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []entities.Book{
		{ID: 1, Title: "A", Stock: 10},
		{ID: 2, Title: "B", Stock: 2},
		{ID: 3, Title: "C", Stock: 5},
	}))

	err := repo.AdjustStock(ctx, map[int]int{
		1:  3,
		2:  5,  // more than available, floors at zero
		42: 99, // absent id, skipped
	})
	require.NoError(t, err)

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, books[0].Stock)
	assert.Equal(t, 0, books[1].Stock)
	assert.Equal(t, 5, books[2].Stock, "untouched book keeps its stock")
}
