// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/lvseq/position"

// Slice is contiguous storage addressed by SlicePos.
type Slice[V any] struct {
	data []V
}

// NewSlice returns a Slice holding a copy of vals.
func NewSlice[V any](vals ...V) *Slice[V] {
	data := make([]V, len(vals))
	copy(data, vals)

	return &Slice[V]{data: data}
}

// MakeSlice returns a Slice of n zero values (n < 0 is treated as 0).
func MakeSlice[V any](n int) *Slice[V] {
	if n < 0 {
		n = 0
	}

	return &Slice[V]{data: make([]V, n)}
}

// WrapSlice addresses data in place; writes through positions are visible
// in data.
func WrapSlice[V any](data []V) *Slice[V] {
	return &Slice[V]{data: data}
}

// Len returns the number of values.
func (s *Slice[V]) Len() int { return len(s.data) }

// Begin returns the position of the first value.
func (s *Slice[V]) Begin() SlicePos[V] { return SlicePos[V]{s: s, i: 0} }

// End returns the bound position one past the last value.
func (s *Slice[V]) End() SlicePos[V] { return SlicePos[V]{s: s, i: len(s.data)} }

// At returns the position with offset i. It is not validated; an
// out-of-range position simply reports false from every capability.
func (s *Slice[V]) At(i int) SlicePos[V] { return SlicePos[V]{s: s, i: i} }

// Values returns a copy of the stored values.
func (s *Slice[V]) Values() []V {
	out := make([]V, len(s.data))
	copy(out, s.data)

	return out
}

// Bounded returns the whole storage as a bounded range.
func (s *Slice[V]) Bounded() position.Bounded[SlicePos[V]] {
	return position.Bounded[SlicePos[V]]{First: s.Begin(), Last: s.End()}
}

// Counted returns the whole storage as a counted range, typically used as a
// scratch buffer.
func (s *Slice[V]) Counted() position.Counted[SlicePos[V]] {
	return position.Counted[SlicePos[V]]{First: s.Begin(), N: len(s.data)}
}

// SlicePos is a random-access mutable position into a Slice.
type SlicePos[V any] struct {
	s *Slice[V]
	i int
}

// Index returns the offset of p.
func (p SlicePos[V]) Index() int { return p.i }

func (p SlicePos[V]) valid() bool {
	return p.s != nil && p.i >= 0 && p.i < len(p.s.data)
}

// Value returns the addressed value.
func (p SlicePos[V]) Value() (V, bool) {
	if !p.valid() {
		var zero V
		return zero, false
	}

	return p.s.data[p.i], true
}

// Set writes v at p.
func (p SlicePos[V]) Set(v V) bool {
	if !p.valid() {
		return false
	}
	p.s.data[p.i] = v

	return true
}

// Next returns the successor; false at End.
func (p SlicePos[V]) Next() (SlicePos[V], bool) {
	if p.s == nil || p.i < 0 || p.i >= len(p.s.data) {
		return p, false
	}

	return SlicePos[V]{s: p.s, i: p.i + 1}, true
}

// Prev returns the predecessor; false at Begin.
func (p SlicePos[V]) Prev() (SlicePos[V], bool) {
	if p.s == nil || p.i <= 0 || p.i > len(p.s.data) {
		return p, false
	}

	return SlicePos[V]{s: p.s, i: p.i - 1}, true
}

// Advance jumps n ≥ 0 positions forward, staying within [Begin, End].
func (p SlicePos[V]) Advance(n int) (SlicePos[V], bool) {
	if p.s == nil || n < 0 || p.i+n > len(p.s.data) {
		return p, false
	}

	return SlicePos[V]{s: p.s, i: p.i + n}, true
}

// Retreat jumps n ≥ 0 positions backward, staying within [Begin, End].
func (p SlicePos[V]) Retreat(n int) (SlicePos[V], bool) {
	if p.s == nil || n < 0 || p.i-n < 0 {
		return p, false
	}

	return SlicePos[V]{s: p.s, i: p.i - n}, true
}

// Distance returns p - from when from precedes or equals p in the same
// storage.
func (p SlicePos[V]) Distance(from SlicePos[V]) (int, bool) {
	if p.s != from.s || from.i > p.i {
		return 0, false
	}

	return p.i - from.i, true
}

// Less orders positions of the same storage by offset.
func (p SlicePos[V]) Less(o SlicePos[V]) bool { return p.i < o.i }
