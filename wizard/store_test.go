package wizard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spacemen100/house-haven-market-sub000/locations"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore()
	userID := uuid.Must(uuid.NewV7())

	token := store.Create(New(locations.DefaultCatalog()), userID)

	found := store.With(token, func(s *Session) {
		if s.UserID != userID {
			t.Errorf("session user = %v, want %v", s.UserID, userID)
		}
	})
	if !found {
		t.Fatal("expected the session to be found")
	}

	store.Delete(token)
	if store.With(token, func(*Session) {}) {
		t.Error("deleted session must not be found")
	}
}

func TestStoreUnknownToken(t *testing.T) {
	store := NewStore()
	if store.With("no-such-token", func(*Session) {}) {
		t.Error("unknown token must report not found")
	}
}

func TestPruneExpired(t *testing.T) {
	store := NewStore()
	catalog := locations.DefaultCatalog()
	userID := uuid.Must(uuid.NewV7())

	stale := store.Create(New(catalog), userID)
	fresh := store.Create(New(catalog), userID)

	// Age the first session past the TTL
	store.sessions[stale].lastTouched = time.Now().Add(-DraftTTL - time.Minute)

	if pruned := store.PruneExpired(DraftTTL); pruned != 1 {
		t.Errorf("pruned %d sessions, want 1", pruned)
	}
	if store.With(stale, func(*Session) {}) {
		t.Error("stale session survived the prune")
	}
	if !store.With(fresh, func(*Session) {}) {
		t.Error("fresh session was pruned")
	}
}

func TestWithRefreshesFreshness(t *testing.T) {
	store := NewStore()
	token := store.Create(New(locations.DefaultCatalog()), uuid.Must(uuid.NewV7()))

	store.sessions[token].lastTouched = time.Now().Add(-DraftTTL + time.Minute)
	store.With(token, func(*Session) {})

	if pruned := store.PruneExpired(DraftTTL); pruned != 0 {
		t.Errorf("pruned %d sessions, want 0 after a touch", pruned)
	}
}
