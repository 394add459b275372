// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvseq/position"

// PartitionPointN returns the first position in the counted range (f, n)
// whose value satisfies p, assuming the range is partitioned by p (all false
// values first). Returns f+n when no value satisfies p.
//
// Complexity: O(log n) predicate evaluations; O(log n) jumps on Indexed
// storage, O(n) steps otherwise.
func PartitionPointN[I position.ForwardReader[I, V], V any](f I, n int, p position.Predicate[V]) (I, error) {
	if n < 0 {
		return f, position.ErrNegativeCount
	}
	for n > 0 {
		h := n / 2
		m, err := position.Advance(f, h)
		if err != nil {
			return f, err
		}
		v, ok := m.Value()
		if !ok {
			return f, position.ErrUnreadable
		}
		if p(v) {
			n = h
			continue
		}
		n -= h + 1
		if f, ok = m.Next(); !ok {
			return f, position.ErrNoSuccessor
		}
	}

	return f, nil
}

// PartitionPoint is PartitionPointN over the bounded range [f, l).
func PartitionPoint[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	n, err := position.Distance(f, l)
	if err != nil {
		return f, err
	}

	return PartitionPointN[I, V](f, n, p)
}

// LowerBoundN returns the first position in the increasing counted range
// (f, n) whose value is not less than a under r.
func LowerBoundN[I position.ForwardReader[I, V], V any](f I, n int, a V, r position.Relation[V]) (I, error) {
	return PartitionPointN[I, V](f, n, func(x V) bool { return !r(x, a) })
}

// UpperBoundN returns the first position in the increasing counted range
// (f, n) whose value is greater than a under r.
func UpperBoundN[I position.ForwardReader[I, V], V any](f I, n int, a V, r position.Relation[V]) (I, error) {
	return PartitionPointN[I, V](f, n, func(x V) bool { return r(a, x) })
}

// LowerBound is LowerBoundN over the bounded range [f, l).
func LowerBound[I position.ForwardReader[I, V], V any](f, l I, a V, r position.Relation[V]) (I, error) {
	n, err := position.Distance(f, l)
	if err != nil {
		return f, err
	}

	return LowerBoundN[I, V](f, n, a, r)
}

// UpperBound is UpperBoundN over the bounded range [f, l).
func UpperBound[I position.ForwardReader[I, V], V any](f, l I, a V, r position.Relation[V]) (I, error) {
	n, err := position.Distance(f, l)
	if err != nil {
		return f, err
	}

	return UpperBoundN[I, V](f, n, a, r)
}
