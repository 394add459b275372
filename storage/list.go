// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/lvseq/position"

type listNode[V any] struct {
	next, prev *listNode[V]
	val        V
}

// List is a circular doubly-linked list with a sentinel root node. The
// sentinel is the End position.
type List[V any] struct {
	root *listNode[V]
	size int
}

// NewList returns a List holding vals in order.
func NewList[V any](vals ...V) *List[V] {
	root := &listNode[V]{}
	root.next, root.prev = root, root
	l := &List[V]{root: root}
	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}

// PushBack appends v.
// Complexity: O(1).
func (l *List[V]) PushBack(v V) {
	n := &listNode[V]{val: v, prev: l.root.prev, next: l.root}
	l.root.prev.next = n
	l.root.prev = n
	l.size++
}

// Len returns the number of values.
func (l *List[V]) Len() int { return l.size }

// Begin returns the position of the first value (End when empty).
func (l *List[V]) Begin() ListPos[V] { return ListPos[V]{l: l, n: l.root.next} }

// End returns the sentinel bound.
func (l *List[V]) End() ListPos[V] { return ListPos[V]{l: l, n: l.root} }

// At returns the position i steps after Begin, or End when i ≥ Len.
// Complexity: O(i).
func (l *List[V]) At(i int) ListPos[V] {
	n := l.root.next
	for ; i > 0 && n != l.root; i-- {
		n = n.next
	}

	return ListPos[V]{l: l, n: n}
}

// Values returns the stored values in order.
func (l *List[V]) Values() []V {
	out := make([]V, 0, l.size)
	for n := l.root.next; n != l.root; n = n.next {
		out = append(out, n.val)
	}

	return out
}

// Bounded returns the whole list as a bounded range.
func (l *List[V]) Bounded() position.Bounded[ListPos[V]] {
	return position.Bounded[ListPos[V]]{First: l.Begin(), Last: l.End()}
}

// ListPos is a bidirectional mutable position into a List.
type ListPos[V any] struct {
	l *List[V]
	n *listNode[V]
}

func (p ListPos[V]) valid() bool {
	return p.l != nil && p.n != nil && p.n != p.l.root
}

// Value returns the addressed value.
func (p ListPos[V]) Value() (V, bool) {
	if !p.valid() {
		var zero V
		return zero, false
	}

	return p.n.val, true
}

// Set writes v at p.
func (p ListPos[V]) Set(v V) bool {
	if !p.valid() {
		return false
	}
	p.n.val = v

	return true
}

// Next returns the successor; false at End.
func (p ListPos[V]) Next() (ListPos[V], bool) {
	if !p.valid() {
		return p, false
	}

	return ListPos[V]{l: p.l, n: p.n.next}, true
}

// Prev returns the predecessor; false at Begin.
func (p ListPos[V]) Prev() (ListPos[V], bool) {
	if p.l == nil || p.n == nil || p.n.prev == p.l.root {
		return p, false
	}

	return ListPos[V]{l: p.l, n: p.n.prev}, true
}
