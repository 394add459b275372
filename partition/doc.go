// SPDX-License-Identifier: MIT

// Package partition reorders a range so that the values NOT satisfying a
// predicate come first, and returns the partition point: the first position
// whose value satisfies it.
//
// 🚀 Variants
//
//	Semistable       forward   O(n) swaps, false group keeps its order
//	Forward          forward   minimal swaps, two passes
//	RemoveIf         forward   keeps only the false group, in order
//	Bidirectional    bidi      swaps mismatches from both ends
//	Sentinel         bidi      as Bidirectional with unguarded inner scans
//	SingleCycle      bidi      one temporary, moves instead of swaps
//	Indexed          indexed   two converging indices
//	StableN/Stable   forward   both groups keep their order, O(n log n)
//	StableWithBuffer forward   both groups keep their order, O(n) with an n-sized buffer
//	StableNAdaptive  forward   buffer where it fits, rotations elsewhere
//	StableIterative  forward   StableN without recursion (counter machine)
//	StableAuto       forward   allocates the buffer itself; Options + Stats
//
// ✨ Edge cases
//
//   - Empty range: the result is f (the pair variants return (f, f)).
//   - One value: the predicate is evaluated exactly once.
//
// Errors are the position sentinels wrapped with the operation name.
package partition
