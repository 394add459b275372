// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvseq/position"

// All reports whether every value in [f, l) satisfies p.
func All[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (bool, error) {
	m, err := FindIfNot[I, V](f, l, p)

	return m == l, err
}

// None reports whether no value in [f, l) satisfies p.
func None[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (bool, error) {
	m, err := FindIf[I, V](f, l, p)

	return m == l, err
}

// NotAll reports whether some value in [f, l) does not satisfy p.
func NotAll[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (bool, error) {
	all, err := All[I, V](f, l, p)

	return !all, err
}

// Some reports whether some value in [f, l) satisfies p.
func Some[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (bool, error) {
	none, err := None[I, V](f, l, p)

	return !none, err
}

// CountIf returns how many values in [f, l) satisfy p.
func CountIf[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (int, error) {
	return count[I, V](f, l, p, true)
}

// CountIfNot returns how many values in [f, l) do not satisfy p.
func CountIfNot[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (int, error) {
	return count[I, V](f, l, p, false)
}

func count[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V], want bool) (int, error) {
	var n int
	for f != l {
		v, ok := f.Value()
		if !ok {
			return n, position.ErrUnreadable
		}
		if p(v) == want {
			n++
		}
		if f, ok = f.Next(); !ok {
			return n, position.ErrUnreachable
		}
	}

	return n, nil
}

// Partitioned reports whether every value not satisfying p precedes every
// value satisfying p.
func Partitioned[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (bool, error) {
	m, err := FindIf[I, V](f, l, p)
	if err != nil {
		return false, err
	}
	m, err = FindIfNot[I, V](m, l, p)

	return m == l, err
}

// RelationPreserving reports whether r holds between every pair of adjacent
// values in [f, l).
func RelationPreserving[I position.ForwardReader[I, V], V any](f, l I, r position.Relation[V]) (bool, error) {
	m, err := FindAdjacentMismatch[I, V](f, l, r)

	return m == l, err
}

// StrictlyIncreasingRange reports whether [f, l) is strictly increasing
// under the weak ordering r.
func StrictlyIncreasingRange[I position.ForwardReader[I, V], V any](f, l I, r position.Relation[V]) (bool, error) {
	return RelationPreserving[I, V](f, l, r)
}

// IncreasingRange reports whether [f, l) is non-decreasing under the weak
// ordering r.
func IncreasingRange[I position.ForwardReader[I, V], V any](f, l I, r position.Relation[V]) (bool, error) {
	return RelationPreserving[I, V](f, l, r.ComplementOfConverse())
}
