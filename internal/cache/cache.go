// Package cache provides the in-memory store behind the news service.
//
// The store deliberately does not expire entries on its own: freshness is a
// policy decision (live data and fallback data age at different rates), so
// the caller compares Entry.StoredAt against its own TTL. At most one entry
// exists per key and writes replace the whole entry atomically.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/techradar/news-service/internal/domain"
)

// Entry is one cached payload with its write time.
type Entry struct {
	Items    []domain.NewsItem
	StoredAt time.Time
	Fallback bool // true when Items holds demo data rather than upstream data
}

// Store is a thread-safe keyed store for normalized news payloads.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	clock   clockwork.Clock
}

// New creates an empty store. Pass nil to use the real clock.
func New(clk clockwork.Clock) *Store {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Store{
		entries: make(map[string]Entry),
		clock:   clk,
	}
}

// Get returns the entry for key regardless of its age. The second return
// value reports whether an entry exists at all.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return e, ok
}

// Set overwrites the entry for key with the given items, stamping it with
// the current time. Concurrent writers race last-write-wins.
func (s *Store) Set(key string, items []domain.NewsItem, fallback bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{
		Items:    items,
		StoredAt: s.clock.Now(),
		Fallback: fallback,
	}
}

// Clear removes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
}
