// Package session holds per-user conversation state behind a pluggable
// store. State is keyed by the client-supplied userId; entries expire after
// an idle TTL.
package session

import (
	"context"
	"sync"
	"time"

	"sahayak-backend/internal/models"
)

// DefaultUserID is the sentinel key used when a request carries no userId.
const DefaultUserID = "anonymous"

// Store is the session persistence abstraction. Get returns (nil, nil) for
// an unknown user; callers create sessions lazily.
type Store interface {
	Get(ctx context.Context, userID string) (*models.Session, error)
	Put(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, userID string) error
}

// MemoryStore is the single-instance default: a mutex-guarded map swept for
// idle entries on a fixed interval. State does not survive a restart and is
// not shared across instances; multi-instance deployments use the Redis
// store instead.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
	ttl      time.Duration
	stop     chan struct{}
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	st := &MemoryStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	// Sweep goroutine
	go func() {
		ticker := time.NewTicker(ttl / 2)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				st.sweep(time.Now())
			case <-st.stop:
				return
			}
		}
	}()

	return st
}

func (st *MemoryStore) Get(_ context.Context, userID string) (*models.Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		return nil, nil
	}
	// Copy out so callers can mutate without racing the map.
	cp := *s
	cp.Turns = append([]models.Turn(nil), s.Turns...)
	return &cp, nil
}

func (st *MemoryStore) Put(_ context.Context, s *models.Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	cp := *s
	cp.Turns = append([]models.Turn(nil), s.Turns...)
	st.sessions[s.UserID] = &cp
	return nil
}

func (st *MemoryStore) Delete(_ context.Context, userID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, userID)
	return nil
}

// Close stops the sweep goroutine.
func (st *MemoryStore) Close() {
	close(st.stop)
}

func (st *MemoryStore) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, s := range st.sessions {
		if now.Sub(s.LastSeen) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
