// SPDX-License-Identifier: MIT

package partition

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/search"
	"github.com/katalvlaran/lvseq/step"
)

// Bidirectional partitions [f, l) by scanning inward from both ends and
// exchanging the first misplaced pair found from each side. Not stable.
//
// Complexity: n predicate evaluations, at most ⌊n/2⌋ exchanges.
func Bidirectional[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	var err error
	for {
		if f, err = search.FindIf[I, V](f, l, p); err != nil {
			return f, opErrorf("Bidirectional", err)
		}
		if l, err = search.FindBackwardIfNot[I, V](f, l, p); err != nil {
			return f, opErrorf("Bidirectional", err)
		}
		if f == l {
			return f, nil
		}
		if err = step.ReverseSwapStep[I, I, V](&l, &f); err != nil {
			return f, opErrorf("Bidirectional", err)
		}
	}
}

// Sentinel is Bidirectional with the inner scans unguarded: after the first
// exchange, the misplaced values on each side act as sentinels so the scans
// need no bound checks.
func Sentinel[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	m, err := sentinel[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("Sentinel", err)
	}

	return m, nil
}

func sentinel[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	var err error
	if f, err = search.FindIf[I, V](f, l, p); err != nil {
		return f, err
	}
	if l, err = search.FindBackwardIfNot[I, V](f, l, p); err != nil {
		return f, err
	}
	if f == l {
		return f, nil
	}
	if l, err = position.Predecessor(l); err != nil {
		return f, err
	}
	if err = step.ExchangeValues[I, I, V](f, l); err != nil {
		return f, err
	}
	if f, err = position.Successor(f); err != nil {
		return f, err
	}

	return bidirectionalUnguarded[I, V](f, l, p)
}

// bidirectionalUnguarded requires a satisfying value at or after f and a
// non-satisfying value before l; at the first call the values just
// exchanged by sentinel play those roles.
func bidirectionalUnguarded[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	var err error
	for {
		if f, err = search.FindIfUnguarded[I, V](f, p); err != nil {
			return f, err
		}
		if l, err = search.FindBackwardIfNotUnguarded[I, V](l, p); err != nil {
			return f, err
		}
		next, err := position.Successor(l)
		if err != nil {
			return f, err
		}
		if next == f {
			return f, nil
		}
		if err = step.ExchangeValues[I, I, V](f, l); err != nil {
			return f, err
		}
		if f, err = position.Successor(f); err != nil {
			return f, err
		}
	}
}

// SingleCycle partitions [f, l) by moving values along a single cycle: one
// value is held in a temporary while misplaced values from each end fill
// each other's holes. Not stable.
//
// Complexity: n predicate evaluations, k+1 moves for k misplaced pairs.
func SingleCycle[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	m, err := singleCycle[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("SingleCycle", err)
	}

	return m, nil
}

func singleCycle[I position.BidirectionalMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	var err error
	if f, err = search.FindIf[I, V](f, l, p); err != nil {
		return f, err
	}
	if l, err = search.FindBackwardIfNot[I, V](f, l, p); err != nil {
		return f, err
	}
	if f == l {
		return f, nil
	}
	if l, err = position.Predecessor(l); err != nil {
		return f, err
	}
	tmp, err := position.Source[I, V](f)
	if err != nil {
		return f, err
	}
	for {
		if err = move[I, V](l, f); err != nil {
			return f, err
		}
		next, err := position.Successor(f)
		if err != nil {
			return f, err
		}
		if f, err = search.FindIf[I, V](next, l, p); err != nil {
			return f, err
		}
		if f == l {
			if err = position.Sink(l, tmp); err != nil {
				return f, err
			}

			return f, nil
		}
		if err = move[I, V](f, l); err != nil {
			return f, err
		}
		// f is now the hole; the scan must not cross it.
		r, err := search.FindBackwardIfNot[I, V](f, l, p)
		if err != nil {
			return f, err
		}
		if r == f {
			if err = position.Sink(f, tmp); err != nil {
				return f, err
			}

			return f, nil
		}
		if l, err = position.Predecessor(r); err != nil {
			return f, err
		}
	}
}

// move copies the value at src into dst without advancing either.
func move[I position.Mutable[V], V any](src, dst I) error {
	v, err := position.Source[I, V](src)
	if err != nil {
		return err
	}

	return position.Sink(dst, v)
}

// Indexed partitions [f, l) with two converging indices i and j, exchanging
// f+i and f+j at the first mismatch found from each side. Not stable.
func Indexed[I position.IndexedMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	m, err := indexed[I, V](f, l, p)
	if err != nil {
		return f, opErrorf("Indexed", err)
	}

	return m, nil
}

func indexed[I position.IndexedMutable[I, V], V any](f, l I, p position.Predicate[V]) (I, error) {
	j, err := position.Distance(f, l)
	if err != nil {
		return f, err
	}
	at := func(k int) (I, V, error) {
		var zero V
		q, err := position.Advance(f, k)
		if err != nil {
			return f, zero, err
		}
		v, err := position.Source[I, V](q)

		return q, v, err
	}
	i := 0
	for {
		var fi, fj I
		for {
			if i == j {
				return position.Advance(f, i)
			}
			q, v, err := at(i)
			if err != nil {
				return f, err
			}
			if p(v) {
				fi = q
				break
			}
			i++
		}
		for {
			j--
			if i == j {
				return position.Advance(f, j)
			}
			q, v, err := at(j)
			if err != nil {
				return f, err
			}
			if !p(v) {
				fj = q
				break
			}
		}
		if err = step.ExchangeValues[I, I, V](fi, fj); err != nil {
			return f, err
		}
		i++
	}
}
