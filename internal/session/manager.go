// Package session keeps login sessions in memory. Sessions are deliberately
// not persisted: a restart logs everyone out, matching the original design.
package session

import (
	"sync"
	"time"

	"finance-tracker/internal/auth"
	"finance-tracker/internal/models"
)

// Manager maps session tokens to account emails with a fixed TTL.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewManager creates a session manager with the given session lifetime.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create establishes a new session bound to email and returns its token.
func (m *Manager) Create(email string) (models.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return models.Session{}, err
	}
	s := models.Session{
		Token:     token,
		Email:     email,
		ExpiresAt: m.now().Add(m.ttl),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the email bound to token. Expired sessions read as absent and
// are evicted on the way out.
func (m *Manager) Get(token string) (string, bool) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if m.now().After(s.ExpiresAt) {
		m.Destroy(token)
		return "", false
	}
	return s.Email, true
}

// Destroy removes the session for token. Unknown tokens are ignored.
func (m *Manager) Destroy(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Len reports the number of live entries, counting not-yet-evicted expired
// sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
