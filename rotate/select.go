// SPDX-License-Identifier: MIT

package rotate

import "github.com/katalvlaran/lvseq/position"

// Rotate rotates [f, l) around m with the best algorithm the concrete
// position type supports: cycle following for random-access positions,
// three reversals for bidirectional ones, block swapping otherwise.
//
// The choice is made once per call by inspecting the method set of I; the
// selected body is the same one RotateRandomAccess, RotateBidirectional or
// RotateForward run.
func Rotate[I position.ForwardMutable[I, V], V any](f, m, l I) (I, error) {
	var (
		r   I
		err error
	)
	switch any(f).(type) {
	case randomStepper[I]:
		var rv randomView[I, V]
		rv, err = rotateRandomAccess[randomView[I, V], V](randomView[I, V]{f}, randomView[I, V]{m}, randomView[I, V]{l})
		r = rv.p
	case backStepper[I]:
		var bv bidiView[I, V]
		bv, err = rotateBidirectional[bidiView[I, V], V](bidiView[I, V]{f}, bidiView[I, V]{m}, bidiView[I, V]{l})
		r = bv.p
	default:
		r, err = rotateForward[I, V](f, m, l)
	}
	if err != nil {
		return f, opErrorf("Rotate", err)
	}

	return r, nil
}

type backStepper[I any] interface {
	Prev() (I, bool)
}

type randomStepper[I any] interface {
	Prev() (I, bool)
	Advance(n int) (I, bool)
	Distance(from I) (int, bool)
	Retreat(n int) (I, bool)
	Less(o I) bool
}

// bidiView exposes a forward position whose dynamic type also has Prev as a
// BidirectionalMutable position.
type bidiView[I position.ForwardMutable[I, V], V any] struct{ p I }

func (b bidiView[I, V]) Value() (V, bool) { return b.p.Value() }
func (b bidiView[I, V]) Set(v V) bool     { return b.p.Set(v) }

func (b bidiView[I, V]) Next() (bidiView[I, V], bool) {
	q, ok := b.p.Next()

	return bidiView[I, V]{q}, ok
}

func (b bidiView[I, V]) Prev() (bidiView[I, V], bool) {
	q, ok := any(b.p).(backStepper[I]).Prev()

	return bidiView[I, V]{q}, ok
}

// randomView does the same for positions with the full random-access
// method set.
type randomView[I position.ForwardMutable[I, V], V any] struct{ p I }

func (r randomView[I, V]) Value() (V, bool) { return r.p.Value() }
func (r randomView[I, V]) Set(v V) bool     { return r.p.Set(v) }

func (r randomView[I, V]) Next() (randomView[I, V], bool) {
	q, ok := r.p.Next()

	return randomView[I, V]{q}, ok
}

func (r randomView[I, V]) Prev() (randomView[I, V], bool) {
	q, ok := r.steps().Prev()

	return randomView[I, V]{q}, ok
}

func (r randomView[I, V]) Advance(n int) (randomView[I, V], bool) {
	q, ok := r.steps().Advance(n)

	return randomView[I, V]{q}, ok
}

func (r randomView[I, V]) Retreat(n int) (randomView[I, V], bool) {
	q, ok := r.steps().Retreat(n)

	return randomView[I, V]{q}, ok
}

func (r randomView[I, V]) Distance(from randomView[I, V]) (int, bool) {
	return r.steps().Distance(from.p)
}

func (r randomView[I, V]) Less(o randomView[I, V]) bool { return r.steps().Less(o.p) }

func (r randomView[I, V]) steps() randomStepper[I] { return any(r.p).(randomStepper[I]) }
