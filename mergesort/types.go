// SPDX-License-Identifier: MIT

package mergesort

import (
	"fmt"

	"github.com/katalvlaran/lvseq/position"
)

// ErrRunsNotAdjacent is returned when the second run of a merge does not
// start where the first one ends.
var ErrRunsNotAdjacent = fmt.Errorf("%w: merge runs are not adjacent", position.ErrPrecondition)

// opErrorf tags err with the public operation that surfaced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("mergesort: %s: %w", op, err)
}

// Option configures SortN.
type Option func(*Options)

// Options holds the knobs of SortN.
type Options struct {
	// BufferCapacity is the number of scratch values SortN allocates.
	// Negative means ⌈n/2⌉ (the default), which lets every merge go through
	// the buffer; zero sorts purely with rotations.
	BufferCapacity int

	// Stats, if non-nil, receives counters about the run.
	Stats *Stats
}

// Stats are diagnostics filled by SortN.
type Stats struct {
	// BufferedMerges counts merges done through the scratch buffer.
	BufferedMerges int

	// RotatingSplits counts merges that were split by binary search and a
	// rotation because the buffer was too small.
	RotatingSplits int

	// Comparisons counts evaluations of the relation.
	Comparisons int
}

func (s *Stats) buffered() {
	if s != nil {
		s.BufferedMerges++
	}
}

func (s *Stats) split() {
	if s != nil {
		s.RotatingSplits++
	}
}

// counting wraps r so that every evaluation bumps Comparisons. A nil
// receiver returns r unchanged.
func counting[V any](s *Stats, r position.Relation[V]) position.Relation[V] {
	if s == nil {
		return r
	}

	return func(a, b V) bool {
		s.Comparisons++

		return r(a, b)
	}
}

// DefaultOptions returns Options with:
//   - BufferCapacity = -1 (⌈n/2⌉ scratch values)
//   - no Stats
func DefaultOptions() Options {
	return Options{
		BufferCapacity: -1,
		Stats:          nil,
	}
}

// WithBufferCapacity makes SortN allocate exactly n scratch values.
// Panics if n < 0.
func WithBufferCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("mergesort: WithBufferCapacity: n must be ≥ 0, got %d", n))
	}

	return func(o *Options) {
		o.BufferCapacity = n
	}
}

// WithStats makes SortN record its counters into s. Panics if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("mergesort: WithStats: nil *Stats")
	}

	return func(o *Options) {
		o.Stats = s
	}
}
