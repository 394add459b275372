// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/lvseq/position"

// Compile-time capability checks: instantiating these helpers fails to build
// if a backend stops satisfying the constraint it advertises.
func requireRandomAccess[P position.RandomAccessMutable[P, V], V any]() {}
func requireBidirectional[P position.BidirectionalMutable[P, V], V any]() {}
func requireForward[P position.ForwardMutable[P, V], V any]() {}

var (
	_ = requireRandomAccess[SlicePos[int], int]
	_ = requireRandomAccess[GodsPos[int], int]
	_ = requireBidirectional[ListPos[int], int]
	_ = requireForward[FListPos[int], int]
)
