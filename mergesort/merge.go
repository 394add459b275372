// SPDX-License-Identifier: MIT

package mergesort

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rangecopy"
	"github.com/katalvlaran/lvseq/rotate"
	"github.com/katalvlaran/lvseq/search"
)

// checkRuns validates the counted runs (f0, n0), (f1, n1) of a merge and
// returns f0 + n0 + n1.
func checkRuns[I position.Forward[I]](f0 I, n0 int, f1 I, n1 int) (I, error) {
	if n0 < 0 || n1 < 0 {
		return f0, position.ErrNegativeCount
	}
	m, err := position.Advance(f0, n0)
	if err != nil {
		return f0, err
	}
	if m != f1 {
		return f0, ErrRunsNotAdjacent
	}

	return position.Advance(f1, n1)
}

// checkBuffer reports ErrAliasing when the buffer shares positions with
// (f, n). Buffers of another position type are assumed separate.
func checkBuffer[I position.Forward[I], B any](f I, n int, buf position.Counted[B]) error {
	if buf.N < 0 {
		return position.ErrNegativeCount
	}
	if b, ok := any(buf.First).(I); ok {
		return position.CheckDisjoint(f, n, b, buf.N)
	}

	return nil
}

// MergeNWithBuffer merges the adjacent increasing runs (f0, n0) and
// (f1, n1) in place: run 0 is copied into the buffer and merged back with
// run 1. It returns f0 + n0 + n1.
//
// Requires: buf.N ≥ n0, else ErrBufferUndersized.
// Complexity: n0 + n1 - 1 comparisons at most, 2·n0 + n1 assignments.
func MergeNWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f0 I, n0 int, f1 I, n1 int, buf position.Counted[B], r position.Relation[V],
) (I, error) {
	l, err := checkRuns(f0, n0, f1, n1)
	if err == nil {
		err = checkBuffer(f0, n0+n1, buf)
	}
	if err == nil && buf.N < n0 {
		err = position.ErrBufferUndersized
	}
	if err == nil {
		err = mergeNWithBuffer[I, B, V](f0, n0, f1, n1, buf.First, r)
	}
	if err != nil {
		return f0, opErrorf("MergeNWithBuffer", err)
	}

	return l, nil
}

func mergeNWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f0 I, n0 int, f1 I, n1 int, fb B, r position.Relation[V],
) error {
	if _, _, err := rangecopy.CopyN[I, B, V](f0, n0, fb); err != nil {
		return err
	}
	_, _, _, err := rangecopy.MergeCopyN[B, I, I, V](fb, n0, f1, n1, f0, r)

	return err
}

// MergeNAdaptive merges the adjacent increasing runs (f0, n0) and (f1, n1)
// in place with whatever buffer is available. Merges whose left run fits
// buf go through it; larger ones are split by binary search and a rotation.
// It returns f0 + n0 + n1. Never returns ErrBufferUndersized.
func MergeNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f0 I, n0 int, f1 I, n1 int, buf position.Counted[B], r position.Relation[V],
) (I, error) {
	l, err := checkRuns(f0, n0, f1, n1)
	if err == nil {
		err = checkBuffer(f0, n0+n1, buf)
	}
	if err == nil {
		err = mergeNAdaptive[I, B, V](f0, n0, f1, n1, buf, r, nil)
	}
	if err != nil {
		return f0, opErrorf("MergeNAdaptive", err)
	}

	return l, nil
}

// mergeTask is one pending merge of adjacent runs.
type mergeTask[I any] struct {
	f0 I
	n0 int
	f1 I
	n1 int
}

func mergeNAdaptive[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](
	f0 I, n0 int, f1 I, n1 int, buf position.Counted[B], r position.Relation[V], st *Stats,
) error {
	var (
		stack  = []mergeTask[I]{{f0, n0, f1, n1}}
		lo, hi mergeTask[I]
		err    error
	)
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if t.n0 == 0 || t.n1 == 0 {
			continue
		}
		if t.n0 <= buf.N {
			st.buffered()
			if err = mergeNWithBuffer[I, B, V](t.f0, t.n0, t.f1, t.n1, buf.First, r); err != nil {
				return err
			}
			continue
		}
		st.split()
		if t.n0 < t.n1 {
			lo, hi, err = splitLeft[I, V](t, r)
		} else {
			lo, hi, err = splitRight[I, V](t, r)
		}
		if err != nil {
			return err
		}
		stack = append(stack, hi, lo)
	}

	return nil
}

// splitLeft cuts the left run at its middle value v, finds the first value
// of the right run not less than v, and rotates so that v lands in its
// final place. The values before v form the first sub-merge, the values
// after it the second.
func splitLeft[I position.ForwardMutable[I, V], V any](t mergeTask[I], r position.Relation[V]) (lo, hi mergeTask[I], err error) {
	n00 := t.n0 / 2
	f01, err := position.Advance(t.f0, n00)
	if err != nil {
		return lo, hi, err
	}
	v, err := position.Source[I, V](f01)
	if err != nil {
		return lo, hi, err
	}
	f11, err := search.LowerBoundN[I, V](t.f1, t.n1, v, r)
	if err != nil {
		return lo, hi, err
	}
	n01, err := position.Distance(t.f1, f11)
	if err != nil {
		return lo, hi, err
	}
	f10, err := rotate.Rotate[I, V](f01, t.f1, f11)
	if err != nil {
		return lo, hi, err
	}
	if f10, err = position.Successor(f10); err != nil {
		return lo, hi, err
	}
	lo = mergeTask[I]{f0: t.f0, n0: n00, f1: f01, n1: n01}
	hi = mergeTask[I]{f0: f10, n0: t.n0 - n00 - 1, f1: f11, n1: t.n1 - n01}

	return lo, hi, nil
}

// splitRight is splitLeft with the roles swapped: the right run is cut at
// its middle value v and the left run is searched for the first value
// greater than v, so equal values from the left run stay in front.
func splitRight[I position.ForwardMutable[I, V], V any](t mergeTask[I], r position.Relation[V]) (lo, hi mergeTask[I], err error) {
	n01 := t.n1 / 2
	f11, err := position.Advance(t.f1, n01)
	if err != nil {
		return lo, hi, err
	}
	v, err := position.Source[I, V](f11)
	if err != nil {
		return lo, hi, err
	}
	f01, err := search.UpperBoundN[I, V](t.f0, t.n0, v, r)
	if err != nil {
		return lo, hi, err
	}
	if f11, err = position.Successor(f11); err != nil {
		return lo, hi, err
	}
	n00, err := position.Distance(t.f0, f01)
	if err != nil {
		return lo, hi, err
	}
	f10, err := rotate.Rotate[I, V](f01, t.f1, f11)
	if err != nil {
		return lo, hi, err
	}
	lo = mergeTask[I]{f0: t.f0, n0: n00, f1: f01, n1: n01}
	hi = mergeTask[I]{f0: f10, n0: t.n0 - n00, f1: f11, n1: t.n1 - n01 - 1}

	return lo, hi, nil
}
