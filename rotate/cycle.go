// SPDX-License-Identifier: MIT

package rotate

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// CycleTo moves every value on the cycle of i under the permutation map to
// into the position to(p) names, using exchanges only.
//
// Requires: to is a permutation whose cycle through i is finite.
// Complexity: k-1 exchanges for a cycle of length k.
func CycleTo[I position.ForwardMutable[I, V], V any](i I, to position.Transformation[I]) error {
	k := to(i)
	for k != i {
		if err := step.ExchangeValues[I, I, V](i, k); err != nil {
			return opErrorf("CycleTo", err)
		}
		k = to(k)
	}

	return nil
}

// CycleFrom fills every position p on the cycle of i with the value held
// at from(p), saving one value in a temporary.
//
// Complexity: k+1 assignments for a cycle of length k.
func CycleFrom[I position.ForwardMutable[I, V], V any](i I, from position.Transformation[I]) error {
	err := cycleFrom[I, V](i, func(p I) (I, error) { return from(p), nil })
	if err != nil {
		return opErrorf("CycleFrom", err)
	}

	return nil
}

// cycleFrom is CycleFrom with a permutation map that can fail.
func cycleFrom[I position.ForwardMutable[I, V], V any](i I, from func(I) (I, error)) error {
	tmp, ok := i.Value()
	if !ok {
		return position.ErrUnreadable
	}
	j := i
	k, err := from(i)
	if err != nil {
		return err
	}
	for k != i {
		v, ok := k.Value()
		if !ok {
			return position.ErrUnreadable
		}
		if !j.Set(v) {
			return position.ErrUnwritable
		}
		j = k
		if k, err = from(k); err != nil {
			return err
		}
	}
	if !j.Set(tmp) {
		return position.ErrUnwritable
	}

	return nil
}

// Gcd returns the greatest common divisor of a and b (Euclid).
// Gcd(0, 0) is 0; negative inputs use their absolute value.
func Gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
