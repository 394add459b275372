// SPDX-License-Identifier: MIT

package partition

import "fmt"

// opErrorf tags err with the public operation that surfaced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("partition: %s: %w", op, err)
}

// Option configures StableAuto.
type Option func(*Options)

// Options holds the knobs of StableAuto.
type Options struct {
	// BufferCapacity is the number of scratch values StableAuto may
	// allocate. Negative means "as many as the range holds" (the default),
	// zero means "partition in place with rotations only".
	BufferCapacity int

	// Stats, if non-nil, receives counters about the run.
	Stats *Stats
}

// Stats are diagnostics filled by StableAuto.
type Stats struct {
	// BufferedBlocks counts blocks partitioned through the scratch buffer.
	BufferedBlocks int

	// Rotations counts the rotations used to merge partitioned halves.
	Rotations int
}

func (s *Stats) buffered() {
	if s != nil {
		s.BufferedBlocks++
	}
}

func (s *Stats) rotated() {
	if s != nil {
		s.Rotations++
	}
}

// DefaultOptions returns Options with:
//   - BufferCapacity = -1 (a buffer as large as the range)
//   - no Stats
func DefaultOptions() Options {
	return Options{
		BufferCapacity: -1,
		Stats:          nil,
	}
}

// WithBufferCapacity limits the scratch buffer StableAuto allocates to n
// values. Panics if n < 0.
func WithBufferCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("partition: WithBufferCapacity: n must be ≥ 0, got %d", n))
	}

	return func(o *Options) {
		o.BufferCapacity = n
	}
}

// WithStats makes StableAuto record its counters into s. Panics if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("partition: WithStats: nil *Stats")
	}

	return func(o *Options) {
		o.Stats = s
	}
}
