// Package view keeps per-view fetch state safe against out-of-order
// completions: when a newer fetch starts, the older one is cancelled and
// its late result, should it still arrive, is dropped.
package view

import (
	"context"
	"sync"
)

// Slot holds the latest value or error for one view region. Each Begin
// bumps a generation; only a Publish carrying the current generation wins.
type Slot[T any] struct {
	mu     sync.Mutex
	gen    uint64
	value  T
	err    error
	loaded bool
	cancel context.CancelFunc
}

// Begin starts a new fetch generation, cancelling any fetch still running
// from an earlier one. The returned context should bound the fetch.
func (s *Slot[T]) Begin(parent context.Context) (context.Context, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.gen++
	return ctx, s.gen
}

// Publish records the fetch outcome if gen is still current. A stale
// publish reports false and changes nothing.
func (s *Slot[T]) Publish(gen uint64, value T, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.value = value
	s.err = err
	s.loaded = true
	return true
}

// Get returns the latest published value, whether anything has been
// published yet, and the error the fetch ended with.
func (s *Slot[T]) Get() (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.loaded, s.err
}
