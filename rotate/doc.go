// SPDX-License-Identifier: MIT

// Package rotate implements swap-ranges, reverse and the rotate family.
//
// 🚀 What is here
//
//   - SwapRanges, SwapRangesBounded, SwapRangesN and their Reverse* mirrors.
//   - Reverse (bidirectional), ReverseIndexed / ReverseNIndexed,
//     ReverseNForward, ReverseNWithBuffer and ReverseNAdaptive.
//   - CycleTo / CycleFrom: follow one cycle of a permutation map.
//   - RotateForward, RotateBidirectional, RotateIndexed, RotateRandomAccess:
//     one body per capability set, each O(n).
//   - RotateWithBuffer, RotateWithBufferBackward, RotatePartial.
//   - Rotate: picks the best of the four for the concrete position type.
//
// ✨ Rotate contract
//
//	rotate(f, m, l): [m, l) moves to the front, [f, m) follows it.
//	Returned position: f + (l - m), where the old *f now lives.
//	m == f ⇒ returns l (nothing moves). m == l ⇒ returns f.
//
// Complexity:
//
//	RotateForward        O(n) swaps, forward stepping only
//	RotateBidirectional  three reversals, ~n swaps
//	RotateIndexed        n + gcd assignments via cycle following
//	RotateRandomAccess   same, with position arithmetic for the map
//
// Errors are the position sentinels wrapped with the operation name,
// e.g. "rotate: RotateForward: position: precondition violated: ...".
package rotate
