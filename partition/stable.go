// SPDX-License-Identifier: MIT

package partition

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rangecopy"
	"github.com/katalvlaran/lvseq/rotate"
	"github.com/katalvlaran/lvseq/storage"
)

// block is a partitioned subrange described by its partition point and its
// end; the block's start is implied by the caller.
type block[I any] struct {
	point I
	last  I
}

// singleton partitions the one-value range starting at f.
func singleton[I position.ForwardReader[I, V], V any](f I, p position.Predicate[V]) (block[I], error) {
	v, err := position.Source[I, V](f)
	if err != nil {
		return block[I]{f, f}, err
	}
	l, err := position.Successor(f)
	if err != nil {
		return block[I]{f, f}, err
	}
	if !p(v) {
		f = l
	}

	return block[I]{point: f, last: l}, nil
}

// combine merges two adjacent partitioned blocks x, y (x.last is the start
// of y) by rotating x's satisfying values behind y's non-satisfying ones.
func combine[I position.ForwardMutable[I, V], V any](x, y block[I], st *Stats) (block[I], error) {
	if x.point != x.last && x.last != y.point {
		st.rotated()
	}
	m, err := rotate.Rotate[I, V](x.point, x.last, y.point)
	if err != nil {
		return x, err
	}

	return block[I]{point: m, last: y.last}, nil
}

// StableN partitions the counted range (f, n) preserving the relative order
// of both groups. It returns the partition point and f + n.
//
// Complexity: O(n log n) moves (rotations), O(log n) recursion depth.
func StableN[I position.ForwardMutable[I, V], V any](f I, n int, p position.Predicate[V]) (I, I, error) {
	b, err := stableN[I, V](f, n, p)
	if err != nil {
		return f, f, opErrorf("StableN", err)
	}

	return b.point, b.last, nil
}

func stableN[I position.ForwardMutable[I, V], V any](f I, n int, p position.Predicate[V]) (block[I], error) {
	if n < 0 {
		return block[I]{f, f}, position.ErrNegativeCount
	}
	if n == 0 {
		return block[I]{f, f}, nil
	}

	return stableNNonempty[I, V](f, n, p)
}

func stableNNonempty[I position.ForwardMutable[I, V], V any](f I, n int, p position.Predicate[V]) (block[I], error) {
	if n == 1 {
		return singleton[I, V](f, p)
	}
	h := n / 2
	x, err := stableNNonempty[I, V](f, h, p)
	if err != nil {
		return x, err
	}
	y, err := stableNNonempty[I, V](x.last, n-h, p)
	if err != nil {
		return y, err
	}

	return combine[I, V](x, y, nil)
}

// Stable partitions [f, l) preserving the relative order of both groups and
// returns the partition point.
func Stable[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	n, err := position.Distance(f, l)
	if err != nil {
		return f, opErrorf("Stable", err)
	}
	b, err := stableN[I, V](f, n, p)
	if err != nil {
		return f, opErrorf("Stable", err)
	}

	return b.point, nil
}

// StableWithBuffer partitions [f, l) stably in one pass: non-satisfying
// values are compacted in place, satisfying ones are parked in buf and
// copied back behind them.
//
// Requires: buf.N ≥ l - f, else ErrBufferUndersized.
// Complexity: n predicate evaluations, at most 2n assignments.
func StableWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](f, l I, buf position.Counted[B], p position.Predicate[V]) (I, error) {
	n, err := position.Distance(f, l)
	if err != nil {
		return f, opErrorf("StableWithBuffer", err)
	}
	if buf.N < n {
		return f, opErrorf("StableWithBuffer", position.ErrBufferUndersized)
	}
	b, err := stableNWithBuffer[I, B, V](f, n, buf.First, p)
	if err != nil {
		return f, opErrorf("StableWithBuffer", err)
	}

	return b.point, nil
}

func stableNWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](f I, n int, fb B, p position.Predicate[V]) (block[I], error) {
	last, ff, lb, err := rangecopy.PartitionCopyN[I, I, B, V](f, n, f, fb, p)
	if err != nil {
		return block[I]{f, f}, err
	}
	if _, err = rangecopy.Copy[B, I, V](fb, lb, ff); err != nil {
		return block[I]{f, f}, err
	}

	return block[I]{point: ff, last: last}, nil
}

// StableNAdaptive partitions (f, n) stably, using buf for every block of at
// most buf.N values and rotations to join larger blocks. Any capacity works,
// including zero. It returns the partition point and f + n.
func StableNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](f I, n int, buf position.Counted[B], p position.Predicate[V]) (I, I, error) {
	b, err := stableNAdaptive[I, B, V](f, n, buf, p, nil)
	if err != nil {
		return f, f, opErrorf("StableNAdaptive", err)
	}

	return b.point, b.last, nil
}

func stableNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f I, n int, buf position.Counted[B], p position.Predicate[V], st *Stats,
) (block[I], error) {
	switch {
	case n < 0:
		return block[I]{f, f}, position.ErrNegativeCount
	case n == 0:
		return block[I]{f, f}, nil
	case n == 1:
		return singleton[I, V](f, p)
	case n <= buf.N:
		st.buffered()

		return stableNWithBuffer[I, B, V](f, n, buf.First, p)
	}
	h := n / 2
	x, err := stableNAdaptive[I, B, V](f, h, buf, p, st)
	if err != nil {
		return x, err
	}
	y, err := stableNAdaptive[I, B, V](x.last, n-h, buf, p, st)
	if err != nil {
		return y, err
	}

	return combine[I, V](x, y, st)
}

// StableIterative partitions [f, l) stably without recursion. Singleton
// blocks are fed into a binary counter whose slot k holds a partitioned
// block of 2^k values; adding a block carries like binary addition, joining
// equal-sized blocks with a rotation. The leftover slots are joined at the
// end, youngest first.
//
// Complexity: O(n log n) moves, O(log n) extra space.
func StableIterative[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	var (
		c   = counter[I, V]{}
		err error
	)
	for i := f; i != l; {
		var b block[I]
		if b, err = singleton[I, V](i, p); err != nil {
			return f, opErrorf("StableIterative", err)
		}
		if err = c.add(b); err != nil {
			return f, opErrorf("StableIterative", err)
		}
		i = b.last
	}
	b, err := c.reduce(f)
	if err != nil {
		return f, opErrorf("StableIterative", err)
	}

	return b.point, nil
}

// counter is the binary counter of StableIterative. An empty slot is
// marked by full == false.
type counter[I position.ForwardMutable[I, V], V any] struct {
	slots []counterSlot[I]
}

type counterSlot[I any] struct {
	b    block[I]
	full bool
}

// add inserts x, which lies after every block already in the counter.
func (c *counter[I, V]) add(x block[I]) error {
	var err error
	for k := range c.slots {
		if !c.slots[k].full {
			c.slots[k] = counterSlot[I]{b: x, full: true}

			return nil
		}
		if x, err = combine[I, V](c.slots[k].b, x, nil); err != nil {
			return err
		}
		c.slots[k].full = false
	}
	c.slots = append(c.slots, counterSlot[I]{b: x, full: true})

	return nil
}

// reduce joins the remaining blocks. Lower slots hold younger (later)
// blocks, so each higher slot goes in front of the accumulated result.
func (c *counter[I, V]) reduce(f I) (block[I], error) {
	var (
		acc  = block[I]{f, f}
		seen bool
		err  error
	)
	for _, s := range c.slots {
		if !s.full {
			continue
		}
		if !seen {
			acc, seen = s.b, true
			continue
		}
		if acc, err = combine[I, V](s.b, acc, nil); err != nil {
			return acc, err
		}
	}

	return acc, nil
}

// StableAuto partitions [f, l) stably, allocating its own scratch buffer.
//
// By default the buffer holds the whole range, which makes the partition a
// single buffered pass. WithBufferCapacity caps the allocation; smaller
// buffers trade memory for rotations, and zero partitions purely in place.
// WithStats reports how the work was split.
func StableAuto[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V], opts ...Option) (I, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n, err := position.Distance(f, l)
	if err != nil {
		return f, opErrorf("StableAuto", err)
	}
	capacity := o.BufferCapacity
	if capacity < 0 || capacity > n {
		capacity = n
	}
	scratch := storage.MakeSlice[V](capacity)
	b, err := stableNAdaptive[I, storage.SlicePos[V], V](f, n, scratch.Counted(), p, o.Stats)
	if err != nil {
		return f, opErrorf("StableAuto", err)
	}

	return b.point, nil
}
