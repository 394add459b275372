// SPDX-License-Identifier: MIT

// Package position defines the capability model every lvseq algorithm is
// written against: an abstract, comparable cursor into caller-owned storage.
//
// 🚀 What is a position?
//
//	A position is a small value (an array offset, a list node, a cursor) that
//	can be compared with == and, depending on the backend, can:
//	  • produce the value it addresses       Readable  (Value)
//	  • accept a new value                    Writable  (Set)
//	  • step to its successor                 Forward   (Next)
//	  • step to its predecessor               Bidirectional (Prev)
//	  • jump by a distance in O(1)            Indexed   (Advance, Distance)
//	  • jump both ways and order positions    RandomAccess (Retreat, Less)
//
// Every capability method returns an ok flag instead of panicking; the
// helpers in this package (Successor, Predecessor, Source, Sink, Advance,
// Retreat, Distance) turn a false flag into a sentinel error from the
// ErrPrecondition family so algorithms can surface it unmodified.
//
// ✨ Ranges:
//
//	Bounded[P]{First, Last}   Last reachable from First by Next calls.
//	Counted[P]{First, N}      N valid positions starting at First.
//
// Ranges never own storage. Buffers handed to adaptive algorithms are
// Counted ranges whose N is the usable capacity.
//
// ⚙️ Capability selection is static: every algorithm states the narrowest
// constraint it needs (ForwardMutable, BidirectionalMutable, IndexedMutable,
// RandomAccessMutable …) and the compiler rejects backends that lack it.
// Advance and Distance additionally take an O(1) shortcut when a Forward
// position happens to implement Indexed, which keeps the counted algorithms
// linear on lists and constant-time on arrays.
package position
