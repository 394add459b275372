// SPDX-License-Identifier: MIT

package rangecopy

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// CopyBackward copies [fi, li) to the range ending at lo, walking from the
// back, and returns the first written output position.
//
// Complexity: O(li-fi).
func CopyBackward[I position.BidirectionalReader[I, V], O position.BidirectionalWriter[O, V], V any](fi, li I, lo O) (O, error) {
	for fi != li {
		if err := step.CopyBackwardStep[I, O, V](&li, &lo); err != nil {
			return lo, err
		}
	}

	return lo, nil
}

// CopyBackwardN copies the n values ending at li to the range ending at lo
// and returns the final (first) input and output positions.
func CopyBackwardN[I position.BidirectionalReader[I, V], O position.BidirectionalWriter[O, V], V any](li I, n int, lo O) (I, O, error) {
	if n < 0 {
		return li, lo, position.ErrNegativeCount
	}
	for step.CountDown(&n) {
		if err := step.CopyBackwardStep[I, O, V](&li, &lo); err != nil {
			return li, lo, err
		}
	}

	return li, lo, nil
}

// ReverseCopy copies [fi, li) in reverse order to the range starting at fo.
func ReverseCopy[I position.BidirectionalReader[I, V], O position.ForwardWriter[O, V], V any](fi, li I, fo O) (O, error) {
	for fi != li {
		if err := step.ReverseCopyStep[I, O, V](&li, &fo); err != nil {
			return fo, err
		}
	}

	return fo, nil
}

// ReverseCopyBackward copies [fi, li) in reverse order to the range ending
// at lo and returns the first written output position.
func ReverseCopyBackward[I position.ForwardReader[I, V], O position.BidirectionalWriter[O, V], V any](fi, li I, lo O) (O, error) {
	for fi != li {
		if err := step.ReverseCopyBackwardStep[I, O, V](&fi, &lo); err != nil {
			return lo, err
		}
	}

	return lo, nil
}
