// SPDX-License-Identifier: MIT

package position

// Readable is satisfied by positions that can produce the value they address.
// Value reports false when the position addresses no value (e.g. the bound).
type Readable[V any] interface {
	Value() (V, bool)
}

// Writable is satisfied by positions that can accept a value.
// Set reports false when the position addresses no writable slot.
type Writable[V any] interface {
	Set(v V) bool
}

// Mutable combines Readable and Writable over the same value type.
// Law: after Set(v) returns true, Value() returns (v, true).
type Mutable[V any] interface {
	Readable[V]
	Writable[V]
}

// Forward is the minimal traversal capability: identity comparison plus a
// successor. Next reports false only when the receiver is the bound of the
// range it belongs to.
type Forward[P any] interface {
	comparable
	Next() (P, bool)
}

// Bidirectional adds a predecessor. Prev reports false for the first
// position of the underlying sequence.
type Bidirectional[P any] interface {
	Forward[P]
	Prev() (P, bool)
}

// Indexed adds constant-time jumps.
//
// Contract:
//   - Advance(n), n ≥ 0, equals n consecutive Next calls.
//   - p.Distance(from) is the number of Next calls taking from to p; it
//     reports false when p is not reachable from from.
type Indexed[P any] interface {
	Forward[P]
	Advance(n int) (P, bool)
	Distance(from P) (int, bool)
}

// RandomAccess is Indexed and Bidirectional with constant-time backward
// jumps and a total order on positions of the same storage.
type RandomAccess[P any] interface {
	Indexed[P]
	Prev() (P, bool)
	Retreat(n int) (P, bool)
	Less(o P) bool
}

// ForwardReader is a readable forward position.
type ForwardReader[P, V any] interface {
	Forward[P]
	Readable[V]
}

// ForwardWriter is a writable forward position.
type ForwardWriter[P, V any] interface {
	Forward[P]
	Writable[V]
}

// ForwardMutable is a mutable forward position.
type ForwardMutable[P, V any] interface {
	Forward[P]
	Mutable[V]
}

// BidirectionalReader is a readable bidirectional position.
type BidirectionalReader[P, V any] interface {
	Bidirectional[P]
	Readable[V]
}

// BidirectionalWriter is a writable bidirectional position.
type BidirectionalWriter[P, V any] interface {
	Bidirectional[P]
	Writable[V]
}

// BidirectionalMutable is a mutable bidirectional position.
type BidirectionalMutable[P, V any] interface {
	Bidirectional[P]
	Mutable[V]
}

// IndexedMutable is a mutable indexed position.
type IndexedMutable[P, V any] interface {
	Indexed[P]
	Mutable[V]
}

// RandomAccessMutable is a mutable random-access position.
type RandomAccessMutable[P, V any] interface {
	RandomAccess[P]
	Mutable[V]
}

// Bounded is the half-open range [First, Last).
type Bounded[P any] struct {
	First P
	Last  P
}

// Counted is the range of N positions starting at First.
type Counted[P any] struct {
	First P
	N     int
}

// Predicate is a single-value test used by partition and search.
type Predicate[V any] func(x V) bool

// Relation is a binary relation over values. Merge and sort require a strict
// weak ordering (irreflexive, transitive, transitive incomparability).
type Relation[V any] func(a, b V) bool

// Transformation maps a position to a position; rotate uses it as the
// permutation map driving cycle following.
type Transformation[P any] func(p P) P

// Not returns the complement of p.
func (p Predicate[V]) Not() Predicate[V] {
	return func(x V) bool { return !p(x) }
}

// Converse returns r with its arguments swapped.
func (r Relation[V]) Converse() Relation[V] {
	return func(a, b V) bool { return r(b, a) }
}

// ComplementOfConverse returns !r(b, a): "a is not after b". For a strict
// weak ordering this is the matching non-strict order.
func (r Relation[V]) ComplementOfConverse() Relation[V] {
	return func(a, b V) bool { return !r(b, a) }
}
