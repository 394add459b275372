// SPDX-License-Identifier: MIT

// Package storage provides reference storage backends whose positions
// satisfy the lvseq capability constraints.
//
//	Slice[V]     contiguous storage; SlicePos is RandomAccess + Mutable.
//	List[V]      doubly-linked nodes with a sentinel; ListPos is
//	             Bidirectional + Mutable (no O(1) jumps).
//	FList[V]     singly-linked nodes; FListPos is Forward + Mutable only.
//	GodsList[V]  any github.com/emirpasic/gods list addressed by index;
//	             GodsPos is RandomAccess + Mutable.
//
// Slice, List and FList own their values; GodsList addresses a list owned by
// the caller. Positions are small comparable values that never own anything. The end position of every backend is a real position
// (it compares equal to itself and can be used as a bound) but addresses no
// value: Value/Set report false and Next reports false there.
//
// Backends are not safe for concurrent mutation; lvseq algorithms are
// synchronous and expect exclusive access for the duration of a call.
package storage
