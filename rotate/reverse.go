// SPDX-License-Identifier: MIT

package rotate

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rangecopy"
	"github.com/katalvlaran/lvseq/step"
)

// Reverse reverses [f, l) in place by exchanging from both ends.
//
// Complexity: ⌊n/2⌋ exchanges.
func Reverse[I position.BidirectionalMutable[I, V], V any](f, l I) error {
	if err := reverseBidirectional[I, V](f, l); err != nil {
		return opErrorf("Reverse", err)
	}

	return nil
}

func reverseBidirectional[I position.BidirectionalMutable[I, V], V any](f, l I) error {
	var ok bool
	for f != l {
		if l, ok = l.Prev(); !ok {
			return position.ErrNoPredecessor
		}
		if f == l {
			return nil
		}
		if err := step.ExchangeValues[I, I, V](f, l); err != nil {
			return err
		}
		if f, ok = f.Next(); !ok {
			return position.ErrNoSuccessor
		}
	}

	return nil
}

// ReverseNIndexed reverses the counted range (f, n) using index arithmetic:
// value i is exchanged with value n-1-i.
func ReverseNIndexed[I position.IndexedMutable[I, V], V any](f I, n int) error {
	if err := reverseNIndexed[I, V](f, n); err != nil {
		return opErrorf("ReverseNIndexed", err)
	}

	return nil
}

func reverseNIndexed[I position.IndexedMutable[I, V], V any](f I, n int) error {
	if n < 0 {
		return position.ErrNegativeCount
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a, ok := f.Advance(i)
		if !ok {
			return position.ErrOutOfRange
		}
		b, ok := f.Advance(j)
		if !ok {
			return position.ErrOutOfRange
		}
		if err := step.ExchangeValues[I, I, V](a, b); err != nil {
			return err
		}
	}

	return nil
}

// ReverseIndexed reverses [f, l) for indexed positions.
func ReverseIndexed[I position.IndexedMutable[I, V], V any](f, l I) error {
	n, err := position.Distance(f, l)
	if err == nil {
		err = reverseNIndexed[I, V](f, n)
	}
	if err != nil {
		return opErrorf("ReverseIndexed", err)
	}

	return nil
}

// ReverseNForward reverses (f, n) using only forward steps: reverse both
// halves, then swap them. It returns f + n.
//
// Complexity: O(n log n) swaps, O(log n) recursion depth.
func ReverseNForward[I position.ForwardMutable[I, V], V any](f I, n int) (I, error) {
	l, err := reverseNForward[I, V](f, n)
	if err != nil {
		return f, opErrorf("ReverseNForward", err)
	}

	return l, nil
}

func reverseNForward[I position.ForwardMutable[I, V], V any](f I, n int) (I, error) {
	if n < 0 {
		return f, position.ErrNegativeCount
	}
	if n < 2 {
		return position.Advance(f, n)
	}
	h := n / 2
	m, err := reverseNForward[I, V](f, h)
	if err != nil {
		return f, err
	}
	if m, err = position.Advance(m, n-2*h); err != nil {
		return f, err
	}
	l, err := reverseNForward[I, V](m, h)
	if err != nil {
		return f, err
	}
	if _, _, err = SwapRangesN[I, I, V](f, m, h); err != nil {
		return f, err
	}

	return l, nil
}

// ReverseNWithBuffer reverses (f, n) by copying it into the buffer starting
// at fb and reverse-copying it back. The buffer must hold n values.
// It returns f + n.
func ReverseNWithBuffer[I position.ForwardMutable[I, V], B position.BidirectionalMutable[B, V], V any](f I, n int, fb B) (I, error) {
	l, err := reverseNWithBuffer[I, B, V](f, n, fb)
	if err != nil {
		return f, opErrorf("ReverseNWithBuffer", err)
	}

	return l, nil
}

func reverseNWithBuffer[I position.ForwardMutable[I, V], B position.BidirectionalMutable[B, V], V any](f I, n int, fb B) (I, error) {
	_, lb, err := rangecopy.CopyN[I, B, V](f, n, fb)
	if err != nil {
		return f, err
	}

	return rangecopy.ReverseCopy[B, I, V](fb, lb, f)
}

// ReverseNAdaptive reverses (f, n) through buf when it fits and otherwise
// halves the problem as ReverseNForward does, using buf for the pieces that
// fit. It returns f + n.
func ReverseNAdaptive[I position.ForwardMutable[I, V], B position.BidirectionalMutable[B, V], V any](f I, n int, buf position.Counted[B]) (I, error) {
	l, err := reverseNAdaptive[I, B, V](f, n, buf)
	if err != nil {
		return f, opErrorf("ReverseNAdaptive", err)
	}

	return l, nil
}

func reverseNAdaptive[I position.ForwardMutable[I, V], B position.BidirectionalMutable[B, V], V any](f I, n int, buf position.Counted[B]) (I, error) {
	if n < 0 {
		return f, position.ErrNegativeCount
	}
	if n < 2 {
		return position.Advance(f, n)
	}
	if n <= buf.N {
		return reverseNWithBuffer[I, B, V](f, n, buf.First)
	}
	h := n / 2
	m, err := reverseNAdaptive[I, B, V](f, h, buf)
	if err != nil {
		return f, err
	}
	if m, err = position.Advance(m, n-2*h); err != nil {
		return f, err
	}
	l, err := reverseNAdaptive[I, B, V](m, h, buf)
	if err != nil {
		return f, err
	}
	if _, _, err = SwapRangesN[I, I, V](f, m, h); err != nil {
		return f, err
	}

	return l, nil
}
