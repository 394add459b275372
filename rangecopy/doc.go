// SPDX-License-Identifier: MIT

// Package rangecopy implements the copy/move family over position ranges:
// plain, bounded and counted copies, fills, backward and reversing copies,
// predicate-driven split copies and relation-driven combine/merge copies.
//
// Bounded vs counted:
//
//	Most algorithms exist in a bounded form (stops when the input position
//	equals its bound) and a counted …N form (stops when a counter reaches
//	zero). Counted forms suit backends without a cheap distance, such as
//	singly-linked storage, and they return the final position of every input
//	as well as the output so callers can continue from there.
//
// Overlap rules:
//
//	Copy, CopyN      output may start at or before the input
//	CopyBackward     output may end at or after the input end
//	everything else  ranges must be disjoint
//
// Merge stability: on equal keys the value from the first input range is
// emitted first (forward) or last (backward), so merging two adjacent runs
// of a sequence preserves the original order of equal elements.
//
// Errors: any step that cannot read, write or advance aborts the call with
// a position.ErrPrecondition sentinel; the positions reached so far are
// returned alongside it.
package rangecopy
