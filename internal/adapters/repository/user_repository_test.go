package repository

import (
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/domain/entities"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	repo := NewUserRepository(tempPath(t, "users.json"))
	ctx := context.Background()

	err := repo.Create(ctx, &entities.User{
		Username:     "alice",
		PasswordHash: "digest",
		Email:        "alice@example.com",
	})
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "digest", got.PasswordHash)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.False(t, got.IsAdmin)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(tempPath(t, "users.json"))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Username: "alice", Email: "a@example.com"}))

	err := repo.Create(ctx, &entities.User{Username: "alice", Email: "other@example.com"})
	require.ErrorIs(t, err, entities.ErrDuplicateUser)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", got.Email, "original record is untouched")
}

func TestUserRepositoryGetUnknown(t *testing.T) {
	repo := NewUserRepository(tempPath(t, "users.json"))

	_, err := repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestUserRepositoryReadsExistingDocument(t *testing.T) {
	// A document produced by an earlier deployment must load as-is.
	path := tempPath(t, "users.json")
	raw := `{
  "admin": {"password": "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", "email": "admin@bookstore.com", "is_admin": true}
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	repo := NewUserRepository(path)
	got, err := repo.GetByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
	assert.Equal(t, "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9", got.PasswordHash)
}

func TestUserRepositoryWireFormat(t *testing.T) {
	path := tempPath(t, "users.json")
	repo := NewUserRepository(path)

	require.NoError(t, repo.Create(context.Background(), &entities.User{
		Username:     "bob",
		PasswordHash: "digest",
		Email:        "bob@example.com",
		IsAdmin:      true,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	rec, ok := doc["bob"]
	require.True(t, ok, "document is keyed by username")
	assert.Equal(t, "digest", rec["password"])
	assert.Equal(t, "bob@example.com", rec["email"])
	assert.Equal(t, true, rec["is_admin"])
	assert.NotContains(t, rec, "username", "username is the key, not a field")
}

func TestUserRepositoryListAndCount(t *testing.T) {
	repo := NewUserRepository(tempPath(t, "users.json"))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{Username: "carol"}))
	require.NoError(t, repo.Create(ctx, &entities.User{Username: "alice"}))
	require.NoError(t, repo.Create(ctx, &entities.User{Username: "bob"}))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	assert.Equal(t, "carol", users[2].Username)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
