package service

import (
	"context"
	"sync"
	"time"

	"document-scanner/internal/domain"

	"github.com/google/uuid"
)

// MemorySessionStore keeps sessions in process memory. Callers receive
// copies, so a session is only ever changed through Update.
type MemorySessionStore struct {
	mu           sync.Mutex
	sessions     map[string]*domain.Session
	ttl          time.Duration
	defaultTheme domain.ThemePreference
	now          func() time.Time
}

// NewMemorySessionStore creates a store. A zero ttl keeps sessions forever.
func NewMemorySessionStore(ttl time.Duration, defaultDark bool) *MemorySessionStore {
	return &MemorySessionStore{
		sessions:     make(map[string]*domain.Session),
		ttl:          ttl,
		defaultTheme: domain.ThemePreference{Dark: defaultDark},
		now:          time.Now,
	}
}

// Create starts a new session with the default theme
func (s *MemorySessionStore) Create() *domain.Session {
	now := s.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Theme:     s.defaultTheme,
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	copied := *session
	return &copied
}

// Get returns a copy of the session and refreshes its idle timer
func (s *MemorySessionStore) Get(id string) (*domain.Session, error) {
	return s.Update(id, nil)
}

// Update applies mutate under the store lock and returns the result
func (s *MemorySessionStore) Update(id string, mutate func(*domain.Session)) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if s.expired(session, now) {
		delete(s.sessions, id)
		return nil, domain.ErrSessionNotFound
	}

	if mutate != nil {
		mutate(session)
	}
	session.LastSeen = now

	copied := *session
	return &copied, nil
}

// Sweep removes idle sessions and reports how many were dropped
func (s *MemorySessionStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of tracked sessions
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *MemorySessionStore) expired(session *domain.Session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(session.LastSeen) > s.ttl
}

// RunSessionJanitor sweeps store every interval until ctx is done.
func RunSessionJanitor(ctx context.Context, store domain.SessionStore, interval time.Duration, logger domain.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := store.Sweep(now); removed > 0 {
				logger.Debug("Expired sessions removed", "count", removed)
			}
		}
	}
}
