package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resource-form/internal/pkg/clock"
	"resource-form/internal/pkg/errs"

	"github.com/google/uuid"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store keeps per-page form state in memory. Nothing survives a restart.
type Store[T any] struct {
	mu         sync.Mutex
	entries    map[uuid.UUID]*entry[T]
	clock      clock.Clock
	ttl        time.Duration
	maxEntries int
	logger     *slog.Logger
}

type Option func(*options)

type options struct {
	maxEntries int
}

// WithMaxEntries bounds the number of live entries. Zero or less means unbounded.
func WithMaxEntries(n int) Option {
	return func(o *options) { o.maxEntries = n }
}

func NewStore[T any](clk clock.Clock, ttl time.Duration, logger *slog.Logger, opts ...Option) *Store[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		entries:    make(map[uuid.UUID]*entry[T]),
		clock:      clk,
		ttl:        ttl,
		maxEntries: o.maxEntries,
		logger:     logger,
	}
}

// Create stores v under a fresh id. When the store is full, expired entries are
// dropped first and then the least recently seen one.
func (s *Store[T]) Create(v T) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.sweepLocked()
		for len(s.entries) >= s.maxEntries {
			s.evictOldestLocked()
		}
	}
	s.entries[id] = &entry[T]{value: v, lastSeen: s.clock.Now()}

	return id
}

// Get returns the value for id and marks it as recently used.
func (s *Store[T]) Get(id uuid.UUID) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok || s.expiredLocked(e) {
		var zero T
		return zero, errs.Wrap(errs.ErrSessionNotFound, "session "+id.String())
	}
	e.lastSeen = s.clock.Now()
	return e.value, nil
}

func (s *Store[T]) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep drops every entry idle for longer than the TTL and returns how many were removed.
func (s *Store[T]) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *Store[T]) sweepLocked() int {
	removed := 0
	for id, e := range s.entries {
		if s.expiredLocked(e) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done. A non-positive interval disables sweeping.
func (s *Store[T]) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("expired form sessions removed", "count", n)
			}
		}
	}
}

func (s *Store[T]) evictOldestLocked() {
	var (
		oldestID uuid.UUID
		oldest   *entry[T]
	)
	for id, e := range s.entries {
		if oldest == nil || e.lastSeen.Before(oldest.lastSeen) {
			oldestID, oldest = id, e
		}
	}
	if oldest == nil {
		return
	}
	delete(s.entries, oldestID)
	s.logger.Warn("form session store full, evicted least recently used session",
		"session_id", oldestID.String(),
		"max_entries", s.maxEntries,
	)
}

func (s *Store[T]) expiredLocked(e *entry[T]) bool {
	return s.ttl > 0 && s.clock.Now().Sub(e.lastSeen) > s.ttl
}
