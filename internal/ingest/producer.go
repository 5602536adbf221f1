// Package ingest drives the user's lazy state sequence on a worker
// goroutine, turning consecutive state pairs into cell-level deltas that
// are written into the shared store and timeline.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/mobanhawi/chronoview/internal/stateviz"
	"github.com/mobanhawi/chronoview/internal/store"
	"github.com/mobanhawi/chronoview/internal/timeline"
)

// Time is the step-index type used throughout the pipeline.
type Time = uint64

// Change is one ingested (coordinate, time, value) tuple.
type Change = store.Change[stateviz.Coord, Time, stateviz.Value]

// Cache is the concrete DiffCache type the producer writes into.
type Cache = store.DiffCache[stateviz.Coord, Time, stateviz.Value]

// ErrProducerUser reports that the user-supplied state sequence panicked
// or otherwise failed abnormally. Ingestion stops but the UI keeps
// serving whatever prefix was recorded — no attempt to resume.
var ErrProducerUser = errors.New("ingest: user sequence failed")

// Producer consumes a lazy state sequence and writes its deltas into a
// shared Cache, bumping a shared Cursor after each step.
//
// The first state's own cells are never individually seeded into the
// cache. The fold starts by assigning the first yielded state to
// "previous" and only emits deltas for subsequent pairs; a coordinate set
// by the first state but never touched again is invisible to Search/View
// until some later state changes it. Readers see the cache's default for
// such coordinates — this is intentional, not an oversight.
type Producer struct {
	cache  *Cache
	cursor *timeline.Cursor
}

// NewProducer builds a producer writing into cache and cursor.
func NewProducer(cache *Cache, cursor *timeline.Cursor) *Producer {
	return &Producer{cache: cache, cursor: cursor}
}

// NewCache builds the concrete DiffCache type the pipeline shares between
// the producer and the renderer, with def as the fallback value for
// coordinates that have never been written.
func NewCache(def stateviz.Value) *Cache {
	return store.NewDiffCache[stateviz.Coord, Time, stateviz.Value](def)
}

// Adapt lifts a sequence of a concrete StateViz implementation into the
// stateviz.StateViz-typed sequence Run expects. Demo generators produce
// iter.Seq[stateviz.Text]; Adapt is how main.go hands that to Run without
// the ingest package needing to be generic over S.
func Adapt[S stateviz.StateViz](seq iter.Seq[S]) iter.Seq[stateviz.StateViz] {
	return func(yield func(stateviz.StateViz) bool) {
		for s := range seq {
			if !yield(s) {
				return
			}
		}
	}
}

// Run drives states to completion (or until ctx is canceled), pushing a
// batch of changes per step and bumping cursor.max after each batch.
//
// Run is single-threaded over states, so pushes for any one coordinate
// always arrive with monotonically non-decreasing time.
//
// A panic inside the user's iterator is recovered and reported as
// ErrProducerUser; a duplicate-time defect reported by the cache aborts
// ingestion and is returned unwrapped so callers can match it with
// errors.As against *store.DuplicateTimeError.
func (p *Producer) Run(ctx context.Context, states iter.Seq[stateviz.StateViz]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProducerUser, r)
		}
	}()

	var (
		step     Time
		previous stateviz.StateViz
		seeded   bool
	)

	for current := range states {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !seeded {
			previous = current
			seeded = true
			continue
		}

		coords := current.Delta(previous)
		changes := make([]Change, 0, len(coords))
		for _, c := range coords {
			v, ok := current.Get(c)
			if !ok {
				continue
			}
			changes = append(changes, Change{Coord: c, Time: step, Value: v})
		}

		if err := p.cache.Append(changes); err != nil {
			return err
		}
		p.cursor.BumpMax()

		step++
		previous = current
	}

	return nil
}
