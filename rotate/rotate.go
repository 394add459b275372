// SPDX-License-Identifier: MIT

package rotate

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rangecopy"
	"github.com/katalvlaran/lvseq/step"
)

// trivial handles the rotations that move nothing. done reports whether the
// answer r is final.
func trivial[I comparable](f, m, l I) (r I, done bool) {
	switch {
	case m == f:
		return l, true
	case m == l:
		return f, true
	}

	return f, false
}

// RotateForward rotates [f, l) around m with forward steps only, by
// repeatedly swapping the shorter block into place.
//
// Requires: m ∈ [f, l].
// Returns: f + (l - m).
// Complexity: O(n) swaps, O(1) extra space.
func RotateForward[I position.ForwardMutable[I, V], V any](f, m, l I) (I, error) {
	r, err := rotateForward[I, V](f, m, l)
	if err != nil {
		return f, opErrorf("RotateForward", err)
	}

	return r, nil
}

func rotateForward[I position.ForwardMutable[I, V], V any](f, m, l I) (I, error) {
	if _, _, err := position.InRange(f, m, l); err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	if err := rotateForwardStep[I, V](&f, &m, l); err != nil {
		return f, err
	}
	mPrime := f
	for m != l {
		if err := rotateForwardStep[I, V](&f, &m, l); err != nil {
			return f, err
		}
	}

	return mPrime, nil
}

// rotateForwardStep swaps [*f, *m) forward through [*m, l) once, tracking
// where the unfinished block now starts.
func rotateForwardStep[I position.ForwardMutable[I, V], V any](f, m *I, l I) error {
	c := *m
	for {
		if err := step.SwapStep[I, I, V](f, &c); err != nil {
			return err
		}
		if *f == *m {
			*m = c
		}
		if c == l {
			return nil
		}
	}
}

// RotateBidirectional rotates [f, l) around m by reversing both blocks and
// then the whole range, with the last reversal fused into a reverse swap.
//
// Complexity: about n exchanges, no distance queries.
func RotateBidirectional[I position.BidirectionalMutable[I, V], V any](f, m, l I) (I, error) {
	r, err := rotateBidirectional[I, V](f, m, l)
	if err != nil {
		return f, opErrorf("RotateBidirectional", err)
	}

	return r, nil
}

func rotateBidirectional[I position.BidirectionalMutable[I, V], V any](f, m, l I) (I, error) {
	if _, _, err := position.InRange(f, m, l); err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	if err := reverseBidirectional[I, V](f, m); err != nil {
		return f, err
	}
	if err := reverseBidirectional[I, V](m, l); err != nil {
		return f, err
	}
	back, front, err := ReverseSwapRangesBounded[I, I, V](m, l, f, m)
	if err != nil {
		return f, err
	}
	if err = reverseBidirectional[I, V](front, back); err != nil {
		return f, err
	}
	if m == back {
		return front, nil
	}

	return back, nil
}

// RotateIndexed rotates [f, l) around m by following the gcd(m-f, l-m)
// cycles of the rotation, computing the permutation map from distances.
//
// Complexity: n + gcd assignments.
func RotateIndexed[I position.IndexedMutable[I, V], V any](f, m, l I) (I, error) {
	r, err := rotateIndexed[I, V](f, m, l)
	if err != nil {
		return f, opErrorf("RotateIndexed", err)
	}

	return r, nil
}

func rotateIndexed[I position.IndexedMutable[I, V], V any](f, m, l I) (I, error) {
	prefix, total, err := position.InRange(f, m, l)
	if err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	k := total - prefix
	from := func(x I) (I, error) {
		i, ok := x.Distance(f)
		if !ok {
			return x, position.ErrUnreachable
		}
		var p I
		if i < k {
			p, ok = x.Advance(prefix)
		} else {
			p, ok = f.Advance(i - k)
		}
		if !ok {
			return x, position.ErrOutOfRange
		}

		return p, nil
	}

	return rotateCycles[I, V](f, prefix, k, from)
}

// RotateRandomAccess is RotateIndexed with the permutation map computed by
// comparing against the result position and jumping either way.
func RotateRandomAccess[I position.RandomAccessMutable[I, V], V any](f, m, l I) (I, error) {
	r, err := rotateRandomAccess[I, V](f, m, l)
	if err != nil {
		return f, opErrorf("RotateRandomAccess", err)
	}

	return r, nil
}

func rotateRandomAccess[I position.RandomAccessMutable[I, V], V any](f, m, l I) (I, error) {
	prefix, total, err := position.InRange(f, m, l)
	if err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	k := total - prefix
	mPrime, ok := f.Advance(k)
	if !ok {
		return f, position.ErrOutOfRange
	}
	from := func(x I) (I, error) {
		var (
			p  I
			ok bool
		)
		if x.Less(mPrime) {
			p, ok = x.Advance(prefix)
		} else {
			p, ok = x.Retreat(k)
		}
		if !ok {
			return x, position.ErrOutOfRange
		}

		return p, nil
	}

	return rotateCycles[I, V](f, prefix, k, from)
}

// rotateCycles runs cycleFrom on each of the gcd(prefix, k) cycles of the
// rotation; every cycle contains exactly one of the first gcd positions.
func rotateCycles[I position.ForwardMutable[I, V], V any](f I, prefix, k int, from func(I) (I, error)) (I, error) {
	for d := Gcd(prefix, k); step.CountDown(&d); {
		p, err := position.Advance(f, d)
		if err != nil {
			return f, err
		}
		if err = cycleFrom[I, V](p, from); err != nil {
			return f, err
		}
	}

	return position.Advance(f, k)
}

// RotateWithBuffer rotates [f, l) around m by parking [f, m) in buf.
//
// Requires: buf.N ≥ m - f, else ErrBufferUndersized.
// Complexity: n + (m - f) assignments.
func RotateWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](f, m, l I, buf position.Counted[B]) (I, error) {
	r, err := rotateWithBuffer[I, B, V](f, m, l, buf)
	if err != nil {
		return f, opErrorf("RotateWithBuffer", err)
	}

	return r, nil
}

func rotateWithBuffer[I position.ForwardMutable[I, V], B position.ForwardMutable[B, V], V any](f, m, l I, buf position.Counted[B]) (I, error) {
	prefix, _, err := position.InRange(f, m, l)
	if err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	if buf.N < prefix {
		return f, position.ErrBufferUndersized
	}
	lb, err := rangecopy.Copy[I, B, V](f, m, buf.First)
	if err != nil {
		return f, err
	}
	mPrime, err := rangecopy.Copy[I, I, V](m, l, f)
	if err != nil {
		return f, err
	}
	if _, err = rangecopy.Copy[B, I, V](buf.First, lb, mPrime); err != nil {
		return f, err
	}

	return mPrime, nil
}

// RotateWithBufferBackward rotates [f, l) around m by parking [m, l) in buf
// and sliding [f, m) backward.
//
// Requires: buf.N ≥ l - m, else ErrBufferUndersized.
func RotateWithBufferBackward[I position.BidirectionalMutable[I, V], B position.ForwardMutable[B, V], V any](f, m, l I, buf position.Counted[B]) (I, error) {
	r, err := rotateWithBufferBackward[I, B, V](f, m, l, buf)
	if err != nil {
		return f, opErrorf("RotateWithBufferBackward", err)
	}

	return r, nil
}

func rotateWithBufferBackward[I position.BidirectionalMutable[I, V], B position.ForwardMutable[B, V], V any](f, m, l I, buf position.Counted[B]) (I, error) {
	prefix, total, err := position.InRange(f, m, l)
	if err != nil {
		return f, err
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	if buf.N < total-prefix {
		return f, position.ErrBufferUndersized
	}
	lb, err := rangecopy.Copy[I, B, V](m, l, buf.First)
	if err != nil {
		return f, err
	}
	if _, err = rangecopy.CopyBackward[I, I, V](f, m, l); err != nil {
		return f, err
	}

	return rangecopy.Copy[B, I, V](buf.First, lb, f)
}

// RotatePartial moves [m, l) to the front of [f, l) with a single
// SwapRanges pass. The values of [f, m) end up after it as a rotation of
// themselves, not necessarily in their original order.
//
// Returns: f + (l - m).
func RotatePartial[I position.ForwardMutable[I, V], V any](f, m, l I) (I, error) {
	if _, _, err := position.InRange(f, m, l); err != nil {
		return f, opErrorf("RotatePartial", err)
	}
	if r, done := trivial(f, m, l); done {
		return r, nil
	}
	r, err := SwapRanges[I, I, V](m, l, f)
	if err != nil {
		return f, opErrorf("RotatePartial", err)
	}

	return r, nil
}
