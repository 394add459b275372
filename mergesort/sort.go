// SPDX-License-Identifier: MIT

package mergesort

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/storage"
)

// SortNWithBuffer sorts (f, n) stably: both halves are sorted recursively
// and merged through the buffer. It returns f + n.
//
// Requires: buf.N ≥ ⌈n/2⌉, else ErrBufferUndersized.
// Complexity: O(n log n) comparisons and assignments, O(log n) depth.
func SortNWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f I, n int, buf position.Counted[B], r position.Relation[V],
) (I, error) {
	l, err := checkSort(f, n, buf)
	if err == nil && buf.N < (n+1)/2 {
		err = position.ErrBufferUndersized
	}
	if err == nil {
		_, err = sortNWithBuffer[I, B, V](f, n, buf.First, r)
	}
	if err != nil {
		return f, opErrorf("SortNWithBuffer", err)
	}

	return l, nil
}

func checkSort[I position.Forward[I], B any](f I, n int, buf position.Counted[B]) (I, error) {
	if n < 0 {
		return f, position.ErrNegativeCount
	}
	l, err := position.Advance(f, n)
	if err != nil {
		return f, err
	}

	return l, checkBuffer(f, n, buf)
}

func sortNWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f I, n int, fb B, r position.Relation[V],
) (I, error) {
	h := n / 2
	if h == 0 {
		return position.Advance(f, n)
	}
	m, err := sortNWithBuffer[I, B, V](f, h, fb, r)
	if err != nil {
		return f, err
	}
	l, err := sortNWithBuffer[I, B, V](m, n-h, fb, r)
	if err != nil {
		return f, err
	}

	return l, mergeNWithBuffer[I, B, V](f, h, m, n-h, fb, r)
}

// SortNAdaptive sorts (f, n) stably with whatever buffer is supplied,
// including none (buf.N == 0). It returns f + n.
func SortNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f I, n int, buf position.Counted[B], r position.Relation[V],
) (I, error) {
	l, err := checkSort(f, n, buf)
	if err == nil {
		_, err = sortNAdaptive[I, B, V](f, n, buf, r, nil)
	}
	if err != nil {
		return f, opErrorf("SortNAdaptive", err)
	}

	return l, nil
}

func sortNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f I, n int, buf position.Counted[B], r position.Relation[V], st *Stats,
) (I, error) {
	h := n / 2
	if h == 0 {
		return position.Advance(f, n)
	}
	m, err := sortNAdaptive[I, B, V](f, h, buf, r, st)
	if err != nil {
		return f, err
	}
	l, err := sortNAdaptive[I, B, V](m, n-h, buf, r, st)
	if err != nil {
		return f, err
	}

	return l, mergeNAdaptive[I, B, V](f, h, m, n-h, buf, r, st)
}

// SortN sorts (f, n) stably, allocating a scratch buffer of ⌈n/2⌉ values
// (or WithBufferCapacity's) as a storage.Slice. It returns f + n.
func SortN[I position.ForwardMutable[I, V], V any](f I, n int, r position.Relation[V], opts ...Option) (I, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n < 0 {
		return f, opErrorf("SortN", position.ErrNegativeCount)
	}
	capacity := o.BufferCapacity
	if capacity < 0 {
		capacity = (n + 1) / 2
	}
	scratch := storage.MakeSlice[V](capacity)
	l, err := sortNAdaptive[I, storage.SlicePos[V], V](f, n, scratch.Counted(), counting(o.Stats, r), o.Stats)
	if err != nil {
		return f, opErrorf("SortN", err)
	}

	return l, nil
}
