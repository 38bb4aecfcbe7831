package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstore/core/internal/domain/entities"
)

func TestSessionManagerStart(t *testing.T) {
	m := NewSessionManager()

	s := m.Start("alice", false)
	require.NotNil(t, s)
	assert.Equal(t, "alice", s.Username)
	assert.False(t, s.IsAdmin)
	assert.True(t, s.Cart.IsEmpty())
	assert.NotZero(t, s.ID)
}

func TestSessionManagerFreshLoginReplacesCart(t *testing.T) {
	m := NewSessionManager()

	s := m.Start("alice", false)
	s.Cart.Add(entities.Book{ID: 1, Price: 9.99})

	again := m.Start("alice", false)
	assert.True(t, again.Cart.IsEmpty(), "a new login starts with an empty cart")
	assert.NotEqual(t, s.ID, again.ID)
}

func TestSessionManagerGetReturnsLiveSession(t *testing.T) {
	m := NewSessionManager()

	s := m.Start("alice", true)
	s.Cart.Add(entities.Book{ID: 1, Price: 9.99})

	got := m.Get("alice", true)
	assert.Same(t, s, got)
	assert.Equal(t, 1, got.Cart.Len())
}

func TestSessionManagerGetCreatesLazily(t *testing.T) {
	m := NewSessionManager()

	// A valid token can outlive a restart; the session materializes on use.
	s := m.Get("alice", false)
	require.NotNil(t, s)
	assert.True(t, s.Cart.IsEmpty())

	assert.Same(t, s, m.Get("alice", false))
}

func TestSessionManagerEnd(t *testing.T) {
	m := NewSessionManager()

	first := m.Start("alice", false)
	first.Cart.Add(entities.Book{ID: 1})

	m.End("alice")

	replacement := m.Get("alice", false)
	assert.NotSame(t, first, replacement)
	assert.True(t, replacement.Cart.IsEmpty(), "logout discards the cart")
}
