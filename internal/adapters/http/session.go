package http

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookstore/core/internal/application/services"
)

// Session is the explicit per-login context: who is logged in plus the
// transient cart. It is created at login, discarded at logout, and has no
// durable identity. One session per username, mirroring the single-operator
// demo the store was built for.
type Session struct {
	ID        uuid.UUID
	Username  string
	IsAdmin   bool
	Cart      *services.Cart
	CreatedAt time.Time
}

// SessionManager owns the lifecycle of all live sessions.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// Start creates (or replaces) the session for a username. A fresh login
// always starts with an empty cart.
func (m *SessionManager) Start(username string, isAdmin bool) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:        uuid.New(),
		Username:  username,
		IsAdmin:   isAdmin,
		Cart:      services.NewCart(),
		CreatedAt: time.Now(),
	}
	m.sessions[username] = s
	return s
}

// Get returns the live session for a username, creating one lazily when a
// valid token outlives a server restart.
func (m *SessionManager) Get(username string, isAdmin bool) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[username]; ok {
		return s
	}
	s := &Session{
		ID:        uuid.New(),
		Username:  username,
		IsAdmin:   isAdmin,
		Cart:      services.NewCart(),
		CreatedAt: time.Now(),
	}
	m.sessions[username] = s
	return s
}

// End discards the session and its cart.
func (m *SessionManager) End(username string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, username)
}
