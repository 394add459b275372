// SPDX-License-Identifier: MIT

// Package lvseq is a library of generic, position-based sequence
// algorithms: copying, searching, reversing, rotating, partitioning and
// merge sorting, written once against small capability interfaces and run
// on any storage that provides them.
//
// 🚀 What is lvseq?
//
//	A pure-Go toolkit in the tradition of "Elements of Programming":
//		• Positions: Readable / Writable values, Forward / Bidirectional /
//		  Indexed / RandomAccess stepping, all as generic constraints
//		• Storages: Slice (random access), List (doubly linked),
//		  FList (singly linked)
//		• Steps: single-position copy, swap and fill primitives
//		• Search: find, quantifiers, partition point, lower/upper bound
//		• Copying: copy, split, partition-copy, merge-copy (forward and backward)
//		• Rotate: swap-ranges, reverse, and one rotate per capability set
//		• Partition: semistable, bidirectional, single-cycle, stable (buffered,
//		  adaptive and iterative)
//		• Merge sort: buffered and adaptive stable merges and sorts
//
// ✨ Why lvseq?
//
//   - One algorithm body, any storage: the constraint picks what is allowed
//   - Every step is checked: running off a range is an error, never a panic
//   - Adaptive variants work with whatever scratch buffer they are given
//
// Packages:
//
//	position/   capability constraints, ranges, navigation, sentinel errors
//	storage/    Slice, List and FList containers and their positions
//	step/       one-step copy, swap and fill primitives
//	search/     find, quantifiers, bounds
//	rangecopy/  copy, split and merge into another range
//	rotate/     swap-ranges, reverse, rotate
//	partition/  in-place and stable partitions
//	mergesort/  stable merge and merge sort
//
// Quick example:
//
//	s := storage.NewSlice(1, 2, 3, 4, 5)
//	r, _ := rotate.Rotate(s.Begin(), s.At(2), s.End())
//	// s.Values() == [3 4 5 1 2], r.Index() == 3
//
//	go get github.com/katalvlaran/lvseq
package lvseq
