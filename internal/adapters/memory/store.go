package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// DefaultMaxSessions bounds the sessions a store tracks when no limit is given
const DefaultMaxSessions = 10000

// sessionState is everything one session has changed. Unset parts fall back
// to the seed data. Values are replaced, never mutated.
type sessionState struct {
	cart    []entities.CartItem
	hasCart bool
	uploads []entities.Document
	card    *entities.HealthCard
}

// Store owns the dataset. Every write replaces the affected slice instead of
// mutating it, so slices handed to readers are never changed underneath them.
// Per-session state is kept for the most recently used sessions only; an
// evicted session starts over from the seed data.
type Store struct {
	mu       sync.RWMutex
	data     *Dataset
	sessions *lru.Cache[string, sessionState]
}

// NewStore creates a store over ds tracking at most maxSessions sessions.
// maxSessions below 1 selects DefaultMaxSessions.
func NewStore(ds *Dataset, maxSessions int) (*Store, error) {
	if maxSessions < 1 {
		maxSessions = DefaultMaxSessions
	}
	sessions, err := lru.New[string, sessionState](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	if ds.Health.Activity == nil {
		ds.Health.Activity = make(map[entities.Period][]entities.ActivityPoint)
	}
	return &Store{
		data:     ds,
		sessions: sessions,
	}, nil
}

// NewSeededStore creates a store over the embedded dataset
func NewSeededStore(maxSessions int) (*Store, error) {
	ds, err := LoadDataset()
	if err != nil {
		return nil, err
	}
	return NewStore(ds, maxSessions)
}

// Dataset returns the seed data the store was built from
func (s *Store) Dataset() *Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// SessionCount returns how many sessions currently hold their own state
func (s *Store) SessionCount() int {
	return s.sessions.Len()
}

func (s *Store) read(fn func(ds *Dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

func (s *Store) write(fn func(ds *Dataset)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// readSession calls fn with the session's state and the seed data
func (s *Store) readSession(sessionID string, fn func(state sessionState, ds *Dataset)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, _ := s.sessions.Get(sessionID)
	fn(state, s.data)
}

// updateSession replaces the session's state with the result of fn
func (s *Store) updateSession(sessionID string, fn func(state sessionState, ds *Dataset) sessionState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, _ := s.sessions.Get(sessionID)
	s.sessions.Add(sessionID, fn(state, s.data))
}

func clone[T any](items []T) []T {
	return append(make([]T, 0, len(items)), items...)
}

func containsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}
