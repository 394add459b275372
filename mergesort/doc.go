// SPDX-License-Identifier: MIT

// Package mergesort sorts counted ranges stably with a caller-supplied
// scratch buffer, or adaptively with whatever buffer is available.
//
// 🚀 Entry points
//
//	MergeNWithBuffer(f0, n0, f1, n1, buf, r)  buf.N ≥ n0
//	SortNWithBuffer(f, n, buf, r)             buf.N ≥ ⌈n/2⌉
//	MergeNAdaptive(f0, n0, f1, n1, buf, r)    any buf.N, even 0
//	SortNAdaptive(f, n, buf, r)               any buf.N, even 0
//	SortN(f, n, r, opts...)                   allocates its own buffer
//
// ✨ Guarantees
//
//   - The relation r must be a strict weak ordering ("less").
//   - Sorting is stable: on ties the value from the left run goes first.
//   - The two runs of a merge must be adjacent: f1 == f0 + n0.
//   - The buffer must not overlap the runs (checked when the buffer and the
//     runs share a position type; ErrAliasing otherwise).
//
// ⚙️ Adaptive merge
//
// When the left run does not fit the buffer, the longer run is cut in half,
// the matching cut in the other run is found by binary search
// (search.LowerBoundN / search.UpperBoundN), the two middle pieces are
// rotated into place, and the two smaller merges are pushed on an explicit
// work stack. Memory use never exceeds the buffer supplied; a smaller
// buffer only costs more rotations.
//
// Complexity:
//
//	with a ⌈n/2⌉ buffer   O(n log n) comparisons and moves
//	with no buffer        O(n log n) comparisons, O(n log² n) moves
package mergesort
