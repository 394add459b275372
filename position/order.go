// SPDX-License-Identifier: MIT

package position

import "golang.org/x/exp/constraints"

// Less returns the natural strict order a < b of an ordered value type.
// Floating-point NaNs break strict weak ordering; callers sorting floats
// that may hold NaN must supply their own relation.
func Less[V constraints.Ordered]() Relation[V] {
	return func(a, b V) bool { return a < b }
}

// Greater returns a > b, the converse of Less.
func Greater[V constraints.Ordered]() Relation[V] {
	return Less[V]().Converse()
}

// KeyLess orders values by an ordered key extracted from them. Values with
// equal keys are equivalent, which is what stable algorithms preserve.
func KeyLess[V any, K constraints.Ordered](key func(V) K) Relation[V] {
	return func(a, b V) bool { return key(a) < key(b) }
}

// Even reports x%2 == 0.
func Even[V constraints.Integer](x V) bool { return x%2 == 0 }

// Odd reports x%2 != 0, which also holds for negative odd values.
func Odd[V constraints.Integer](x V) bool { return x%2 != 0 }
