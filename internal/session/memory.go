package session

import (
	"sync"
	"time"

	"katiba/internal/domain"
)

// MemoryStore is an in-process Store. Sessions are copied in and out so a
// caller holding a session cannot change stored state without Set.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
	now      func() time.Time
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]*domain.Session),
		now:      time.Now,
	}
}

// Get returns a copy of the user's session
func (m *MemoryStore) Get(userID int64) (*domain.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Set stores the session and stamps its last activity
func (m *MemoryStore) Set(s *domain.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := s.Clone()
	c.UpdatedAt = m.now()
	m.sessions[s.UserID] = c
}

// Delete drops the user's session if any
func (m *MemoryStore) Delete(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Len returns the number of open sessions
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// ExpireIdle removes sessions untouched for longer than idle and returns how
// many were dropped. A non-positive idle disables expiry.
func (m *MemoryStore) ExpireIdle(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-idle)
	removed := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
