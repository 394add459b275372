// SPDX-License-Identifier: MIT

package rotate

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// SwapRanges exchanges [f0, l0) with the range of equal length starting at
// f1 and returns the end of the second range.
func SwapRanges[I0 position.ForwardMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](f0, l0 I0, f1 I1) (I1, error) {
	for f0 != l0 {
		if err := step.SwapStep[I0, I1, V](&f0, &f1); err != nil {
			return f1, err
		}
	}

	return f1, nil
}

// SwapRangesBounded exchanges [f0, l0) with [f1, l1) until either range is
// exhausted and returns where both walks stopped.
func SwapRangesBounded[I0 position.ForwardMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](f0, l0 I0, f1, l1 I1) (I0, I1, error) {
	for f0 != l0 && f1 != l1 {
		if err := step.SwapStep[I0, I1, V](&f0, &f1); err != nil {
			return f0, f1, err
		}
	}

	return f0, f1, nil
}

// SwapRangesN exchanges the counted ranges (f0, n) and (f1, n).
func SwapRangesN[I0 position.ForwardMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](f0 I0, f1 I1, n int) (I0, I1, error) {
	if n < 0 {
		return f0, f1, position.ErrNegativeCount
	}
	for step.CountDown(&n) {
		if err := step.SwapStep[I0, I1, V](&f0, &f1); err != nil {
			return f0, f1, err
		}
	}

	return f0, f1, nil
}

// ReverseSwapRanges exchanges [f0, l0), read back to front, with the range
// starting at f1, read front to back. Returns the end of the second range.
func ReverseSwapRanges[I0 position.BidirectionalMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](f0, l0 I0, f1 I1) (I1, error) {
	for f0 != l0 {
		if err := step.ReverseSwapStep[I0, I1, V](&l0, &f1); err != nil {
			return f1, err
		}
	}

	return f1, nil
}

// ReverseSwapRangesBounded is ReverseSwapRanges stopping when either range
// is exhausted. It returns the final back position of the first range and
// the final front position of the second.
func ReverseSwapRangesBounded[I0 position.BidirectionalMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](f0, l0 I0, f1, l1 I1) (I0, I1, error) {
	for f0 != l0 && f1 != l1 {
		if err := step.ReverseSwapStep[I0, I1, V](&l0, &f1); err != nil {
			return l0, f1, err
		}
	}

	return l0, f1, nil
}

// ReverseSwapRangesN is the counted form of ReverseSwapRanges: n values
// before l0 are exchanged with n values from f1.
func ReverseSwapRangesN[I0 position.BidirectionalMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](l0 I0, f1 I1, n int) (I0, I1, error) {
	if n < 0 {
		return l0, f1, position.ErrNegativeCount
	}
	for step.CountDown(&n) {
		if err := step.ReverseSwapStep[I0, I1, V](&l0, &f1); err != nil {
			return l0, f1, err
		}
	}

	return l0, f1, nil
}
