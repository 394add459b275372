// SPDX-License-Identifier: MIT

package rangecopy

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// checkedRelation decides whether the head of range 1 goes before the head
// of range 0. It may fail when a head cannot be read.
type checkedRelation[I1, I0 any] func(i1 I1, i0 I0) (bool, error)

func lift[I1, I0 any](r func(I1, I0) bool) checkedRelation[I1, I0] {
	return func(i1 I1, i0 I0) (bool, error) { return r(i1, i0), nil }
}

// valueRelation turns a weak ordering on values into the position relation
// "source(i1) before source(i0)".
func valueRelation[I1 position.Readable[V], I0 position.Readable[V], V any](r position.Relation[V]) checkedRelation[I1, I0] {
	return func(i1 I1, i0 I0) (bool, error) {
		a, ok := i1.Value()
		if !ok {
			return false, position.ErrUnreadable
		}
		b, ok := i0.Value()
		if !ok {
			return false, position.ErrUnreadable
		}

		return r(a, b), nil
	}
}

// CombineCopy merges [fi0, li0) and [fi1, li1) into fo. At each step the
// head of range 1 is taken when r(head1, head0) holds, otherwise the head of
// range 0 is taken; once either side is exhausted the rest of the other is
// copied. Returns the output end.
//
// Complexity: O(n0+n1) steps, at most n0+n1-1 evaluations of r.
func CombineCopy[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, fo O, r func(I1, I0) bool,
) (O, error) {
	return combineCopy[I0, I1, O, V](fi0, li0, fi1, li1, fo, lift(r))
}

func combineCopy[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, fo O, r checkedRelation[I1, I0],
) (O, error) {
	for fi0 != li0 && fi1 != li1 {
		before, err := r(fi1, fi0)
		if err != nil {
			return fo, err
		}
		if before {
			err = step.CopyStep[I1, O, V](&fi1, &fo)
		} else {
			err = step.CopyStep[I0, O, V](&fi0, &fo)
		}
		if err != nil {
			return fo, err
		}
	}
	fo, err := Copy[I0, O, V](fi0, li0, fo)
	if err != nil {
		return fo, err
	}

	return Copy[I1, O, V](fi1, li1, fo)
}

// CombineCopyN is CombineCopy over the counted ranges (fi0, n0), (fi1, n1).
// It returns the final positions of both inputs and of the output.
func CombineCopyN[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0 I0, n0 int, fi1 I1, n1 int, fo O, r func(I1, I0) bool,
) (I0, I1, O, error) {
	return combineCopyN[I0, I1, O, V](fi0, n0, fi1, n1, fo, lift(r))
}

func combineCopyN[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0 I0, n0 int, fi1 I1, n1 int, fo O, r checkedRelation[I1, I0],
) (I0, I1, O, error) {
	if n0 < 0 || n1 < 0 {
		return fi0, fi1, fo, position.ErrNegativeCount
	}
	for {
		if n0 == 0 {
			fi1, fo, err := CopyN[I1, O, V](fi1, n1, fo)

			return fi0, fi1, fo, err
		}
		if n1 == 0 {
			fi0, fo, err := CopyN[I0, O, V](fi0, n0, fo)

			return fi0, fi1, fo, err
		}
		before, err := r(fi1, fi0)
		if err != nil {
			return fi0, fi1, fo, err
		}
		if before {
			err = step.CopyStep[I1, O, V](&fi1, &fo)
			n1--
		} else {
			err = step.CopyStep[I0, O, V](&fi0, &fo)
			n0--
		}
		if err != nil {
			return fi0, fi1, fo, err
		}
	}
}

// CombineCopyBackward merges [fi0, li0) and [fi1, li1) into the range ending
// at lo, walking from the back. When r(last1, last0) holds the last value of
// range 0 is placed first (it is the larger one), otherwise the last value
// of range 1 is. Returns the first written output position.
func CombineCopyBackward[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, lo O, r func(I1, I0) bool,
) (O, error) {
	return combineCopyBackward[I0, I1, O, V](fi0, li0, fi1, li1, lo, lift(r))
}

func combineCopyBackward[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, lo O, r checkedRelation[I1, I0],
) (O, error) {
	for fi0 != li0 && fi1 != li1 {
		p1, ok := li1.Prev()
		if !ok {
			return lo, position.ErrNoPredecessor
		}
		p0, ok := li0.Prev()
		if !ok {
			return lo, position.ErrNoPredecessor
		}
		before, err := r(p1, p0)
		if err != nil {
			return lo, err
		}
		if before {
			err = step.CopyBackwardStep[I0, O, V](&li0, &lo)
		} else {
			err = step.CopyBackwardStep[I1, O, V](&li1, &lo)
		}
		if err != nil {
			return lo, err
		}
	}
	lo, err := CopyBackward[I1, O, V](fi1, li1, lo)
	if err != nil {
		return lo, err
	}

	return CopyBackward[I0, O, V](fi0, li0, lo)
}

// CombineCopyBackwardN is CombineCopyBackward over the counted ranges ending
// at li0 and li1.
func CombineCopyBackwardN[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	li0 I0, n0 int, li1 I1, n1 int, lo O, r func(I1, I0) bool,
) (I0, I1, O, error) {
	return combineCopyBackwardN[I0, I1, O, V](li0, n0, li1, n1, lo, lift(r))
}

func combineCopyBackwardN[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	li0 I0, n0 int, li1 I1, n1 int, lo O, r checkedRelation[I1, I0],
) (I0, I1, O, error) {
	if n0 < 0 || n1 < 0 {
		return li0, li1, lo, position.ErrNegativeCount
	}
	for {
		if n0 == 0 {
			li1, lo, err := CopyBackwardN[I1, O, V](li1, n1, lo)

			return li0, li1, lo, err
		}
		if n1 == 0 {
			li0, lo, err := CopyBackwardN[I0, O, V](li0, n0, lo)

			return li0, li1, lo, err
		}
		p1, ok := li1.Prev()
		if !ok {
			return li0, li1, lo, position.ErrNoPredecessor
		}
		p0, ok := li0.Prev()
		if !ok {
			return li0, li1, lo, position.ErrNoPredecessor
		}
		before, err := r(p1, p0)
		if err != nil {
			return li0, li1, lo, err
		}
		if before {
			err = step.CopyBackwardStep[I0, O, V](&li0, &lo)
			n0--
		} else {
			err = step.CopyBackwardStep[I1, O, V](&li1, &lo)
			n1--
		}
		if err != nil {
			return li0, li1, lo, err
		}
	}
}

// MergeCopy merges two ranges that are increasing under the weak ordering r
// into fo. Equal values keep range 0 ahead of range 1.
//
// Postconditions: the output is increasing under r and is the multiset union
// of both inputs.
func MergeCopy[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, fo O, r position.Relation[V],
) (O, error) {
	return combineCopy[I0, I1, O, V](fi0, li0, fi1, li1, fo, valueRelation[I1, I0, V](r))
}

// MergeCopyN is MergeCopy over counted ranges.
func MergeCopyN[I0 position.ForwardReader[I0, V], I1 position.ForwardReader[I1, V], O position.ForwardWriter[O, V], V any](
	fi0 I0, n0 int, fi1 I1, n1 int, fo O, r position.Relation[V],
) (I0, I1, O, error) {
	return combineCopyN[I0, I1, O, V](fi0, n0, fi1, n1, fo, valueRelation[I1, I0, V](r))
}

// MergeCopyBackward is MergeCopy walking from the back into the range ending
// at lo.
func MergeCopyBackward[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	fi0, li0 I0, fi1, li1 I1, lo O, r position.Relation[V],
) (O, error) {
	return combineCopyBackward[I0, I1, O, V](fi0, li0, fi1, li1, lo, valueRelation[I1, I0, V](r))
}

// MergeCopyBackwardN is MergeCopyBackward over counted ranges ending at li0
// and li1.
func MergeCopyBackwardN[I0 position.BidirectionalReader[I0, V], I1 position.BidirectionalReader[I1, V], O position.BidirectionalWriter[O, V], V any](
	li0 I0, n0 int, li1 I1, n1 int, lo O, r position.Relation[V],
) (I0, I1, O, error) {
	return combineCopyBackwardN[I0, I1, O, V](li0, n0, li1, n1, lo, valueRelation[I1, I0, V](r))
}
