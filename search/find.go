// SPDX-License-Identifier: MIT

package search

import "github.com/katalvlaran/lvseq/position"

// FindIf returns the first position in [f, l) whose value satisfies p, or l.
// Complexity: O(l-f) evaluations of p.
func FindIf[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	return find[I, V](f, l, p, true)
}

// FindIfNot returns the first position in [f, l) whose value does not
// satisfy p, or l.
func FindIfNot[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	return find[I, V](f, l, p, false)
}

func find[I position.ForwardReader[I, V], V any](f, l I, p position.Predicate[V], want bool) (I, error) {
	var (
		v  V
		ok bool
	)
	for f != l {
		if v, ok = f.Value(); !ok {
			return f, position.ErrUnreadable
		}
		if p(v) == want {
			return f, nil
		}
		if f, ok = f.Next(); !ok {
			return f, position.ErrUnreachable
		}
	}

	return f, nil
}

// FindIfUnguarded returns the first position from f whose value satisfies p.
// Requires that such a position exists before the bound.
func FindIfUnguarded[I position.ForwardReader[I, V], V any](f I, p position.Predicate[V]) (I, error) {
	return findUnguarded[I, V](f, p, true)
}

// FindIfNotUnguarded returns the first position from f whose value does not
// satisfy p. Requires that such a position exists before the bound.
func FindIfNotUnguarded[I position.ForwardReader[I, V], V any](f I, p position.Predicate[V]) (I, error) {
	return findUnguarded[I, V](f, p, false)
}

func findUnguarded[I position.ForwardReader[I, V], V any](f I, p position.Predicate[V], want bool) (I, error) {
	for {
		v, ok := f.Value()
		if !ok {
			return f, position.ErrUnreadable
		}
		if p(v) == want {
			return f, nil
		}
		if f, ok = f.Next(); !ok {
			return f, position.ErrNoSuccessor
		}
	}
}

// FindBackwardIf scans [f, l) from the back and returns the position just
// after the last element satisfying p, or f when none does.
func FindBackwardIf[I position.BidirectionalReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	return findBackward[I, V](f, l, p, true)
}

// FindBackwardIfNot scans [f, l) from the back and returns the position just
// after the last element not satisfying p, or f when all do.
func FindBackwardIfNot[I position.BidirectionalReader[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	return findBackward[I, V](f, l, p, false)
}

func findBackward[I position.BidirectionalReader[I, V], V any](f, l I, p position.Predicate[V], want bool) (I, error) {
	for l != f {
		pl, ok := l.Prev()
		if !ok {
			return l, position.ErrNoPredecessor
		}
		v, ok := pl.Value()
		if !ok {
			return l, position.ErrUnreadable
		}
		if p(v) == want {
			return l, nil
		}
		l = pl
	}

	return l, nil
}

// FindBackwardIfUnguarded returns the last position before l whose value
// satisfies p. Requires that one exists.
func FindBackwardIfUnguarded[I position.BidirectionalReader[I, V], V any](l I, p position.Predicate[V]) (I, error) {
	return findBackwardUnguarded[I, V](l, p, true)
}

// FindBackwardIfNotUnguarded returns the last position before l whose value
// does not satisfy p. Requires that one exists.
func FindBackwardIfNotUnguarded[I position.BidirectionalReader[I, V], V any](l I, p position.Predicate[V]) (I, error) {
	return findBackwardUnguarded[I, V](l, p, false)
}

func findBackwardUnguarded[I position.BidirectionalReader[I, V], V any](l I, p position.Predicate[V], want bool) (I, error) {
	for {
		pl, ok := l.Prev()
		if !ok {
			return l, position.ErrNoPredecessor
		}
		v, ok := pl.Value()
		if !ok {
			return l, position.ErrUnreadable
		}
		l = pl
		if p(v) == want {
			return l, nil
		}
	}
}

// FindAdjacentMismatch returns the first position m in [f, l) such that
// r(source(m-1), source(m)) is false, or l when r holds between every pair of
// neighbours.
func FindAdjacentMismatch[I position.ForwardReader[I, V], V any](f, l I, r position.Relation[V]) (I, error) {
	if f == l {
		return l, nil
	}
	x, ok := f.Value()
	if !ok {
		return f, position.ErrUnreadable
	}
	for {
		if f, ok = f.Next(); !ok {
			return f, position.ErrUnreachable
		}
		if f == l {
			return l, nil
		}
		y, ok := f.Value()
		if !ok {
			return f, position.ErrUnreadable
		}
		if !r(x, y) {
			return f, nil
		}
		x = y
	}
}
