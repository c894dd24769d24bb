package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DraftTTL is how long an untouched draft survives before the cleanup job
// prunes it.
const DraftTTL = 24 * time.Hour

// Store holds the live wizard sessions, keyed by an opaque token. Each
// session is owned by one user; handlers funnel all access through the
// session lock so the draft is never mutated concurrently.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Session pairs a wizard with its owner and freshness bookkeeping.
type Session struct {
	mu          sync.Mutex
	Wizard      *Wizard
	UserID      uuid.UUID
	createdAt   time.Time
	lastTouched time.Time
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create registers a new session and returns its token.
func (s *Store) Create(w *Wizard, userID uuid.UUID) string {
	token := uuid.NewString()
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = &Session{
		Wizard:      w,
		UserID:      userID,
		createdAt:   now,
		lastTouched: now,
	}
	return token
}

// With runs fn while holding the session lock, refreshing the session's
// last-touched time. It returns false when the token is unknown.
func (s *Store) With(token string, fn func(*Session)) bool {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastTouched = time.Now()
	fn(session)
	return true
}

// Delete discards a session, e.g. after successful submission or explicit
// cancellation.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// PruneExpired drops sessions untouched for longer than ttl and reports how
// many were removed.
func (s *Store) PruneExpired(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for token, session := range s.sessions {
		if session.lastTouched.Before(cutoff) {
			delete(s.sessions, token)
			pruned++
		}
	}
	return pruned
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
