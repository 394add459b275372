// SPDX-License-Identifier: MIT

package position

import (
	"errors"
	"fmt"
)

// Error taxonomy.
//
// Every algorithm in lvseq returns only these sentinels (possibly wrapped with
// operation context via %w). Match them with errors.Is; never compare strings.
//
//   - ErrPrecondition and its refinements: the caller broke a contract
//     (stepped past a bound, read an undefined position, ...). These are
//     programmer errors; the current call is aborted.
//   - ErrAliasing: two ranges that must be disjoint overlap.
//   - ErrBufferUndersized: a non-adaptive buffer algorithm got less scratch
//     space than it requires. Adaptive algorithms never return it.
var (
	// ErrPrecondition is the root of all precondition violations.
	ErrPrecondition = errors.New("position: precondition violated")

	// ErrNoSuccessor is returned when Next is required at the bound.
	ErrNoSuccessor = fmt.Errorf("%w: no successor", ErrPrecondition)

	// ErrNoPredecessor is returned when Prev is required at the first position.
	ErrNoPredecessor = fmt.Errorf("%w: no predecessor", ErrPrecondition)

	// ErrUnreadable is returned when a position addressing no value is read.
	ErrUnreadable = fmt.Errorf("%w: position is not readable", ErrPrecondition)

	// ErrUnwritable is returned when a position addressing no slot is written.
	ErrUnwritable = fmt.Errorf("%w: position is not writable", ErrPrecondition)

	// ErrOutOfRange is returned when an indexed jump leaves the storage.
	ErrOutOfRange = fmt.Errorf("%w: jump out of range", ErrPrecondition)

	// ErrUnreachable is returned when a bound is not reachable from a first
	// position (the pair is not a bounded range).
	ErrUnreachable = fmt.Errorf("%w: bound not reachable", ErrPrecondition)

	// ErrNegativeCount is returned for a counted range with n < 0.
	ErrNegativeCount = fmt.Errorf("%w: negative count", ErrPrecondition)

	// ErrNotInRange is returned when a middle position lies outside [f, l].
	ErrNotInRange = fmt.Errorf("%w: position not in range", ErrPrecondition)

	// ErrAliasing is returned when ranges that must not overlap do.
	ErrAliasing = errors.New("position: overlapping ranges")

	// ErrBufferUndersized is returned when a scratch buffer is too small for
	// an algorithm that cannot adapt.
	ErrBufferUndersized = errors.New("position: buffer undersized")
)
