// SPDX-License-Identifier: MIT

package position

// Successor returns the next position or ErrNoSuccessor.
func Successor[P Forward[P]](p P) (P, error) {
	s, ok := p.Next()
	if !ok {
		return p, ErrNoSuccessor
	}

	return s, nil
}

// Predecessor returns the previous position or ErrNoPredecessor.
func Predecessor[P Bidirectional[P]](p P) (P, error) {
	s, ok := p.Prev()
	if !ok {
		return p, ErrNoPredecessor
	}

	return s, nil
}

// Source reads the value at p or returns ErrUnreadable.
func Source[P Readable[V], V any](p P) (V, error) {
	v, ok := p.Value()
	if !ok {
		return v, ErrUnreadable
	}

	return v, nil
}

// Sink writes v at p or returns ErrUnwritable.
func Sink[P Writable[V], V any](p P, v V) error {
	if !p.Set(v) {
		return ErrUnwritable
	}

	return nil
}

// advancer and distancer are the Indexed methods looked up on plain Forward
// positions so that counted algorithms get O(1) jumps where available.
type advancer[P any] interface {
	Advance(n int) (P, bool)
}

type distancer[P any] interface {
	Distance(from P) (int, bool)
}

type retreater[P any] interface {
	Retreat(n int) (P, bool)
}

// Advance returns p moved n steps forward.
//
// Behavior:
//   - n < 0 ⇒ ErrNegativeCount.
//   - Indexed positions jump in O(1); a failed jump is ErrOutOfRange.
//   - Other positions step n times; hitting the bound is ErrNoSuccessor.
//
// Complexity: O(1) for Indexed, O(n) otherwise.
func Advance[P Forward[P]](p P, n int) (P, error) {
	if n < 0 {
		return p, ErrNegativeCount
	}
	if a, ok := any(p).(advancer[P]); ok {
		q, ok := a.Advance(n)
		if !ok {
			return p, ErrOutOfRange
		}

		return q, nil
	}

	var (
		q   = p
		err error
	)
	for ; n > 0; n-- {
		if q, err = Successor(q); err != nil {
			return p, err
		}
	}

	return q, nil
}

// Retreat returns p moved n steps backward.
//
// Complexity: O(1) for RandomAccess, O(n) otherwise.
func Retreat[P Bidirectional[P]](p P, n int) (P, error) {
	if n < 0 {
		return p, ErrNegativeCount
	}
	if r, ok := any(p).(retreater[P]); ok {
		q, ok := r.Retreat(n)
		if !ok {
			return p, ErrOutOfRange
		}

		return q, nil
	}

	var (
		q   = p
		err error
	)
	for ; n > 0; n-- {
		if q, err = Predecessor(q); err != nil {
			return p, err
		}
	}

	return q, nil
}

// Distance returns the number of Next calls taking f to l.
//
// Behavior:
//   - Indexed positions answer in O(1); an unreachable l is ErrUnreachable.
//   - Other positions step from f; reaching the bound before l is
//     ErrUnreachable.
//
// Complexity: O(1) for Indexed, O(l-f) otherwise.
func Distance[P Forward[P]](f, l P) (int, error) {
	if d, ok := any(l).(distancer[P]); ok {
		n, ok := d.Distance(f)
		if !ok {
			return 0, ErrUnreachable
		}

		return n, nil
	}

	var (
		n  int
		ok bool
	)
	for f != l {
		if f, ok = f.Next(); !ok {
			return 0, ErrUnreachable
		}
		n++
	}

	return n, nil
}

// CheckDisjoint reports ErrAliasing when the counted ranges (f0, n0) and
// (f1, n1) share at least one position. The check is exact for positions
// implementing Indexed; for other positions, and for positions of different
// storages, the ranges are assumed disjoint.
//
// Complexity: O(1).
func CheckDisjoint[P Forward[P]](f0 P, n0 int, f1 P, n1 int) error {
	if n0 <= 0 || n1 <= 0 {
		return nil
	}
	d0, ok0 := any(f0).(distancer[P])
	d1, ok1 := any(f1).(distancer[P])
	if !ok0 || !ok1 {
		return nil
	}
	// f1 at or after f0
	if d, ok := d1.Distance(f0); ok && d < n0 {
		return ErrAliasing
	}
	// f0 after f1
	if d, ok := d0.Distance(f1); ok && d < n1 {
		return ErrAliasing
	}

	return nil
}

// InRange reports whether m ∈ [f, l] for the bounded range [f, l).
// It returns the prefix length m-f and the total length l-f.
//
// Complexity: O(1) for Indexed, O(l-f) otherwise.
func InRange[P Forward[P]](f, m, l P) (prefix, total int, err error) {
	if prefix, err = Distance(f, m); err != nil {
		return 0, 0, ErrNotInRange
	}
	suffix, err := Distance(m, l)
	if err != nil {
		return 0, 0, ErrNotInRange
	}

	return prefix, prefix + suffix, nil
}
