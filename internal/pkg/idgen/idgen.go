// Package idgen provides charm ID generation.
//
// Charm IDs are int64 values that must be unique for the lifetime of a store
// and strictly increasing in creation order.
package idgen

import (
	"sync"

	"github.com/KirkDiggler/charm-tracker/internal/pkg/clock"
)

// Generator hands out strictly increasing IDs
type Generator interface {
	// Next returns an ID greater than every ID returned or observed before
	Next() int64

	// Observe tells the generator an ID is already taken, so later IDs exceed it
	Observe(id int64)
}

// TimestampGenerator derives IDs from the clock in Unix milliseconds.
// Two calls within the same millisecond, or a clock that steps backwards,
// fall back to last+1.
type TimestampGenerator struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewTimestamp creates a timestamp-based generator. A nil clock uses real time.
func NewTimestamp(c clock.Clock) *TimestampGenerator {
	if c == nil {
		c = clock.New()
	}
	return &TimestampGenerator{clock: c}
}

// Next returns the current millisecond timestamp, bumped past the last ID
func (g *TimestampGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.clock.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Observe records an ID that is already in use
func (g *TimestampGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}

// SequentialGenerator generates 1, 2, 3, ... and is mostly used in tests
type SequentialGenerator struct {
	mu      sync.Mutex
	counter int64
}

// NewSequential creates a new sequential generator
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{}
}

// Next returns the next value in the sequence
func (g *SequentialGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	return g.counter
}

// Observe moves the sequence past id
func (g *SequentialGenerator) Observe(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.counter {
		g.counter = id
	}
}

var (
	_ Generator = (*TimestampGenerator)(nil)
	_ Generator = (*SequentialGenerator)(nil)
)
