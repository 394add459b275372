// SPDX-License-Identifier: MIT

package partition

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/search"
	"github.com/katalvlaran/lvseq/step"
)

// PartitionedAt reports whether [f, l) is partitioned by p with partition
// point m: no value of [f, m) satisfies p and every value of [m, l) does.
func PartitionedAt[I position.ForwardReader[I, V], V any](f, m, l I, p position.Predicate[V]) (bool, error) {
	none, err := search.None[I, V](f, m, p)
	if err != nil || !none {
		return false, err
	}

	return search.All[I, V](m, l, p)
}

// PotentialPoint returns the position the partition point will occupy once
// [f, l) is partitioned by p: f advanced by the number of values that do
// not satisfy p. The range is not modified.
func PotentialPoint[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	n, err := search.CountIfNot[I, V](f, l, p)
	if err != nil {
		return f, err
	}

	return position.Advance(f, n)
}

// Semistable partitions [f, l) in one forward pass. Values not satisfying p
// keep their relative order; values satisfying p may not.
//
// Complexity: n predicate evaluations, at most n swaps.
func Semistable[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	m, err := semistable[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("Semistable", err)
	}

	return m, nil
}

func semistable[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	i, err := search.FindIf[I, V](f, l, p)
	if err != nil || i == l {
		return i, err
	}
	j, err := position.Successor(i)
	if err != nil {
		return f, err
	}
	for {
		if j, err = search.FindIfNot[I, V](j, l, p); err != nil {
			return f, err
		}
		if j == l {
			return i, nil
		}
		if err = step.SwapStep[I, I, V](&i, &j); err != nil {
			return f, err
		}
	}
}

// RemoveIf moves the values of [f, l) that do not satisfy p to the front,
// in order, and returns the end of that prefix. Values from the returned
// position to l are unspecified.
func RemoveIf[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	i, err := search.FindIf[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("RemoveIf", err)
	}
	if i == l {
		return i, nil
	}
	j, err := position.Successor(i)
	if err != nil {
		return f, opErrorf("RemoveIf", err)
	}
	for {
		if j, err = search.FindIfNot[I, V](j, l, p); err != nil {
			return f, opErrorf("RemoveIf", err)
		}
		if j == l {
			return i, nil
		}
		if err = step.CopyStep[I, I, V](&j, &i); err != nil {
			return f, opErrorf("RemoveIf", err)
		}
	}
}

// Forward partitions [f, l) by first locating the partition point, then
// swapping each misplaced satisfying value before it with a misplaced
// non-satisfying value after it. Every swap moves two values into their
// final group.
//
// Complexity: 2n predicate evaluations, minimal number of swaps.
func Forward[I position.ForwardMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	i, err := PotentialPoint[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("Forward", err)
	}
	j := i
	for {
		if j, err = search.FindIfNot[I, V](j, l, p); err != nil {
			return f, opErrorf("Forward", err)
		}
		if j == l {
			return i, nil
		}
		if f, err = search.FindIfUnguarded[I, V](f, p); err != nil {
			return f, opErrorf("Forward", err)
		}
		if err = step.SwapStep[I, I, V](&f, &j); err != nil {
			return f, opErrorf("Forward", err)
		}
	}
}
