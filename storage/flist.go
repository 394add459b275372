// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/lvseq/position"

type flistNode[V any] struct {
	next *flistNode[V]
	val  V
}

// FList is a singly-linked list. Its positions only step forward and carry
// no O(1) distance, so it exercises the counted (…N) algorithm variants.
type FList[V any] struct {
	head *flistNode[V]
	tail *flistNode[V]
	size int
}

// NewFList returns an FList holding vals in order.
func NewFList[V any](vals ...V) *FList[V] {
	l := &FList[V]{}
	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}

// PushBack appends v.
// Complexity: O(1).
func (l *FList[V]) PushBack(v V) {
	n := &flistNode[V]{val: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Len returns the number of values.
func (l *FList[V]) Len() int { return l.size }

// Begin returns the position of the first value (End when empty).
func (l *FList[V]) Begin() FListPos[V] { return FListPos[V]{n: l.head} }

// End returns the bound; it is the nil node and equal across lists.
func (l *FList[V]) End() FListPos[V] { return FListPos[V]{} }

// At returns the position i steps after Begin, or End when i ≥ Len.
// Complexity: O(i).
func (l *FList[V]) At(i int) FListPos[V] {
	n := l.head
	for ; i > 0 && n != nil; i-- {
		n = n.next
	}

	return FListPos[V]{n: n}
}

// Values returns the stored values in order.
func (l *FList[V]) Values() []V {
	out := make([]V, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}

	return out
}

// Bounded returns the whole list as a bounded range.
func (l *FList[V]) Bounded() position.Bounded[FListPos[V]] {
	return position.Bounded[FListPos[V]]{First: l.Begin(), Last: l.End()}
}

// FListPos is a forward-only mutable position into an FList.
type FListPos[V any] struct {
	n *flistNode[V]
}

// Value returns the addressed value.
func (p FListPos[V]) Value() (V, bool) {
	if p.n == nil {
		var zero V
		return zero, false
	}

	return p.n.val, true
}

// Set writes v at p.
func (p FListPos[V]) Set(v V) bool {
	if p.n == nil {
		return false
	}
	p.n.val = v

	return true
}

// Next returns the successor; false at End.
func (p FListPos[V]) Next() (FListPos[V], bool) {
	if p.n == nil {
		return p, false
	}

	return FListPos[V]{n: p.n.next}, true
}
