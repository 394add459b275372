// SPDX-License-Identifier: MIT

package step

import (
	"fmt"

	"github.com/katalvlaran/lvseq/position"
)

// CopyStep copies the value at *src to *dst and advances both.
// Requires: *src readable with a successor, *dst writable with a successor.
func CopyStep[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](src *I, dst *O) error {
	v, ok := (*src).Value()
	if !ok {
		return position.ErrUnreadable
	}
	si, ok := (*src).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	so, ok := (*dst).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if !(*dst).Set(v) {
		return position.ErrUnwritable
	}
	*src, *dst = si, so

	return nil
}

// FillStep writes x at *dst and advances it.
func FillStep[O position.ForwardWriter[O, V], V any](dst *O, x V) error {
	so, ok := (*dst).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if !(*dst).Set(x) {
		return position.ErrUnwritable
	}
	*dst = so

	return nil
}

// ExchangeValues swaps the values addressed by x and y. Positions are not
// advanced. x == y is allowed and leaves the value unchanged.
func ExchangeValues[P0 position.Mutable[V], P1 position.Mutable[V], V any](x P0, y P1) error {
	vx, ok := x.Value()
	if !ok {
		return position.ErrUnreadable
	}
	vy, ok := y.Value()
	if !ok {
		return position.ErrUnreadable
	}
	if !x.Set(vy) {
		return position.ErrUnwritable
	}
	if !y.Set(vx) {
		// undo the write to x so neither slot changes
		if !x.Set(vx) {
			return fmt.Errorf("%w: x holds y's value after a failed restore", position.ErrUnwritable)
		}

		return position.ErrUnwritable
	}

	return nil
}

// SwapStep exchanges *a and *b, then advances both.
func SwapStep[I0 position.ForwardMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](a *I0, b *I1) error {
	na, ok := (*a).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	nb, ok := (*b).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if err := ExchangeValues[I0, I1, V](*a, *b); err != nil {
		return err
	}
	*a, *b = na, nb

	return nil
}

// ReverseSwapStep steps *l backward, exchanges it with *f and advances *f.
func ReverseSwapStep[I0 position.BidirectionalMutable[I0, V], I1 position.ForwardMutable[I1, V], V any](l *I0, f *I1) error {
	pl, ok := (*l).Prev()
	if !ok {
		return position.ErrNoPredecessor
	}
	nf, ok := (*f).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if err := ExchangeValues[I0, I1, V](pl, *f); err != nil {
		return err
	}
	*l, *f = pl, nf

	return nil
}

// CopyBackwardStep steps both positions backward and copies *li to *lo.
func CopyBackwardStep[I position.BidirectionalReader[I, V], O position.BidirectionalWriter[O, V], V any](li *I, lo *O) error {
	pi, ok := (*li).Prev()
	if !ok {
		return position.ErrNoPredecessor
	}
	po, ok := (*lo).Prev()
	if !ok {
		return position.ErrNoPredecessor
	}
	v, ok := pi.Value()
	if !ok {
		return position.ErrUnreadable
	}
	if !po.Set(v) {
		return position.ErrUnwritable
	}
	*li, *lo = pi, po

	return nil
}

// ReverseCopyStep steps *li backward, copies it to *fo and advances *fo.
func ReverseCopyStep[I position.BidirectionalReader[I, V], O position.ForwardWriter[O, V], V any](li *I, fo *O) error {
	pi, ok := (*li).Prev()
	if !ok {
		return position.ErrNoPredecessor
	}
	v, ok := pi.Value()
	if !ok {
		return position.ErrUnreadable
	}
	no, ok := (*fo).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if !(*fo).Set(v) {
		return position.ErrUnwritable
	}
	*li, *fo = pi, no

	return nil
}

// ReverseCopyBackwardStep steps *lo backward, copies *fi to it and advances
// *fi.
func ReverseCopyBackwardStep[I position.ForwardReader[I, V], O position.BidirectionalWriter[O, V], V any](fi *I, lo *O) error {
	po, ok := (*lo).Prev()
	if !ok {
		return position.ErrNoPredecessor
	}
	v, ok := (*fi).Value()
	if !ok {
		return position.ErrUnreadable
	}
	ni, ok := (*fi).Next()
	if !ok {
		return position.ErrNoSuccessor
	}
	if !po.Set(v) {
		return position.ErrUnwritable
	}
	*fi, *lo = ni, po

	return nil
}

// CountDown decrements *n and reports true while *n was positive.
// Used as the loop guard of every counted-range algorithm.
func CountDown(n *int) bool {
	if *n <= 0 {
		return false
	}
	*n--

	return true
}
