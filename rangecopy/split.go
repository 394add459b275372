// SPDX-License-Identifier: MIT

package rangecopy

import (
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
)

// CopySelect copies the positions of [fi, li) accepted by p (a predicate on
// positions, not values) to ft and returns the output end.
func CopySelect[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](fi, li I, ft O, p position.Predicate[I]) (O, error) {
	var ok bool
	for fi != li {
		if p(fi) {
			if err := step.CopyStep[I, O, V](&fi, &ft); err != nil {
				return ft, err
			}
			continue
		}
		if fi, ok = fi.Next(); !ok {
			return ft, position.ErrNoSuccessor
		}
	}

	return ft, nil
}

// CopyIf copies the values of [fi, li) satisfying p to ft. It stops at the
// first unreadable position without copying anything past it.
func CopyIf[I position.ForwardReader[I, V], O position.ForwardWriter[O, V], V any](fi, li I, ft O, p position.Predicate[V]) (O, error) {
	var ok bool
	for fi != li {
		v, readable := fi.Value()
		if !readable {
			return ft, position.ErrUnreadable
		}
		if p(v) {
			if err := step.CopyStep[I, O, V](&fi, &ft); err != nil {
				return ft, err
			}
			continue
		}
		if fi, ok = fi.Next(); !ok {
			return ft, position.ErrNoSuccessor
		}
	}

	return ft, nil
}

// SplitCopy copies every position of [fi, li) either to ft (p true) or to
// ff (p false), preserving relative order in both outputs.
func SplitCopy[I position.ForwardReader[I, V], OF position.ForwardWriter[OF, V], OT position.ForwardWriter[OT, V], V any](
	fi, li I, ff OF, ft OT, p position.Predicate[I],
) (OF, OT, error) {
	var err error
	for fi != li {
		if p(fi) {
			err = step.CopyStep[I, OT, V](&fi, &ft)
		} else {
			err = step.CopyStep[I, OF, V](&fi, &ff)
		}
		if err != nil {
			return ff, ft, err
		}
	}

	return ff, ft, nil
}

// SplitCopyN is SplitCopy over the counted range (fi, n). It returns the
// final input position and both output ends.
func SplitCopyN[I position.ForwardReader[I, V], OF position.ForwardWriter[OF, V], OT position.ForwardWriter[OT, V], V any](
	fi I, n int, ff OF, ft OT, p position.Predicate[I],
) (I, OF, OT, error) {
	if n < 0 {
		return fi, ff, ft, position.ErrNegativeCount
	}
	var err error
	for step.CountDown(&n) {
		if p(fi) {
			err = step.CopyStep[I, OT, V](&fi, &ft)
		} else {
			err = step.CopyStep[I, OF, V](&fi, &ff)
		}
		if err != nil {
			return fi, ff, ft, err
		}
	}

	return fi, ff, ft, nil
}

// PartitionCopy copies the values of [fi, li) satisfying p to ft and the
// rest to ff, stably.
func PartitionCopy[I position.ForwardReader[I, V], OF position.ForwardWriter[OF, V], OT position.ForwardWriter[OT, V], V any](
	fi, li I, ff OF, ft OT, p position.Predicate[V],
) (OF, OT, error) {
	var err error
	for fi != li {
		v, ok := fi.Value()
		if !ok {
			return ff, ft, position.ErrUnreadable
		}
		if p(v) {
			err = step.CopyStep[I, OT, V](&fi, &ft)
		} else {
			err = step.CopyStep[I, OF, V](&fi, &ff)
		}
		if err != nil {
			return ff, ft, err
		}
	}

	return ff, ft, nil
}

// PartitionCopyN is PartitionCopy over the counted range (fi, n).
func PartitionCopyN[I position.ForwardReader[I, V], OF position.ForwardWriter[OF, V], OT position.ForwardWriter[OT, V], V any](
	fi I, n int, ff OF, ft OT, p position.Predicate[V],
) (I, OF, OT, error) {
	if n < 0 {
		return fi, ff, ft, position.ErrNegativeCount
	}
	var err error
	for step.CountDown(&n) {
		v, ok := fi.Value()
		if !ok {
			return fi, ff, ft, position.ErrUnreadable
		}
		if p(v) {
			err = step.CopyStep[I, OT, V](&fi, &ft)
		} else {
			err = step.CopyStep[I, OF, V](&fi, &ff)
		}
		if err != nil {
			return fi, ff, ft, err
		}
	}

	return fi, ff, ft, nil
}
