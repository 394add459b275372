// SPDX-License-Identifier: MIT

// Package search provides linear and binary searches over position ranges:
// the finds, quantifiers and counts that partition and merge algorithms are
// built from, plus the partition-point family (lower/upper bound).
//
// Conventions:
//   - Bounded ranges are [f, l); the returned position is l when nothing
//     matches.
//   - Backward finds return the position *after* the match, so the result
//     can be used directly as a new bound.
//   - Unguarded finds rely on a caller guarantee that a match exists; if the
//     guarantee is broken they stop with a precondition error at the bound
//     instead of running off the storage.
//   - PartitionPointN performs ⌈log₂(n+1)⌉ predicate evaluations and uses
//     position.Advance, so it is O(log n) jumps on Indexed storage and O(n)
//     steps on lists.
package search
