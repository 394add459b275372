// SPDX-License-Identifier: MIT

package rangecopy

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// Copy copies [fi, li) to the range starting at fo and returns the output
// position just past the last written value.
//
// Complexity: O(li-fi).
func Copy[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](fi, li I, fo O) (O, error) {
	for fi != li {
		if err := step.CopyStep[I, O, V](&fi, &fo); err != nil {
			return fo, err
		}
	}

	return fo, nil
}

// CopyBounded copies until either the input [fi, li) or the output [fo, lo)
// is exhausted and returns both final positions.
func CopyBounded[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](fi, li I, fo, lo O) (I, O, error) {
	for fi != li && fo != lo {
		if err := step.CopyStep[I, O, V](&fi, &fo); err != nil {
			return fi, fo, err
		}
	}

	return fi, fo, nil
}

// CopyN copies the counted range (fi, n) to fo and returns the final input
// and output positions.
func CopyN[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](fi I, n int, fo O) (I, O, error) {
	if n < 0 {
		return fi, fo, position.ErrNegativeCount
	}
	for step.CountDown(&n) {
		if err := step.CopyStep[I, O, V](&fi, &fo); err != nil {
			return fi, fo, err
		}
	}

	return fi, fo, nil
}

// Fill writes x to every position of [f, l) and returns l.
func Fill[O position.ForwardWriter[O, V], V any](f, l O, x V) (O, error) {
	for f != l {
		if err := step.FillStep[O, V](&f, x); err != nil {
			return f, err
		}
	}

	return f, nil
}

// FillN writes x to the counted range (f, n) and returns f+n.
func FillN[O position.ForwardWriter[O, V], V any](f O, n int, x V) (O, error) {
	if n < 0 {
		return f, position.ErrNegativeCount
	}
	for step.CountDown(&n) {
		if err := step.FillStep[O, V](&f, x); err != nil {
			return f, err
		}
	}

	return f, nil
}

// Iota writes 0, 1, …, n-1 to the range starting at o and returns o+n.
func Iota[O position.ForwardWriter[O, int]](n int, o O) (O, error) {
	if n < 0 {
		return o, position.ErrNegativeCount
	}
	for i := 0; i < n; i++ {
		if err := step.FillStep[O, int](&o, i); err != nil {
			return o, err
		}
	}

	return o, nil
}
