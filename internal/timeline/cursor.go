// Package timeline implements the shared, mutable time axis that the
// ingestion worker advances and the renderer scrubs through.
package timeline

import "sync"

// Cursor is the {min, max, current} triple, guarded by its own mutex so it
// never shares a lock with the diff cache.
type Cursor struct {
	mu      sync.Mutex
	min     uint64
	max     uint64
	current uint64
}

// NewCursor creates a cursor with the given bounds and current position.
// Callers are expected to pass min <= current <= max; a fresh producer
// always starts it at (0, 0, 0).
func NewCursor(min, max, current uint64) *Cursor {
	return &Cursor{min: min, max: max, current: current}
}

// Snapshot is a point-in-time, lock-free copy of a Cursor's fields, safe to
// read after Read() returns.
type Snapshot struct {
	Min     uint64
	Max     uint64
	Current uint64
}

// Read takes a snapshot of the cursor under a short lock.
func (c *Cursor) Read() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{Min: c.min, Max: c.max, Current: c.current}
}

// BumpMax increments max by one. Called by the ingestion loop after every
// step it successfully records.
func (c *Cursor) BumpMax() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.max++
}

// SetCurrent moves current to n if min <= n <= max, and reports whether the
// assignment took effect. A failed assignment leaves current unchanged.
func (c *Cursor) SetCurrent(n uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < c.min || n > c.max {
		return false
	}
	c.current = n
	return true
}

// Forward advances current by one, saturating at max.
func (c *Cursor) Forward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current < c.max {
		c.current++
	}
}

// Backward retreats current by one, saturating at min.
func (c *Cursor) Backward() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current > c.min {
		c.current--
	}
}
