// SPDX-License-Identifier: MIT

package storage

import (
	"github.com/emirpasic/gods/lists"

	"github.com/katalvlaran/lvseq/position"
)

// GodsList addresses a gods list (arraylist, doublylinkedlist or
// singlylinkedlist) by index. Values are stored as interface{} by gods; a
// stored value that is not a V reads as unreadable.
//
// Positions are RandomAccess, but every Value and Set goes through the
// list's Get/Set, which is O(i) for the linked implementations.
type GodsList[V any] struct {
	l lists.List
}

// WrapGodsList addresses l in place. Writes through positions are visible in
// l; the list must not change size while positions are in use.
func WrapGodsList[V any](l lists.List) *GodsList[V] {
	return &GodsList[V]{l: l}
}

// Len returns the number of values in the list.
func (g *GodsList[V]) Len() int { return g.l.Size() }

// Begin returns the position of index 0.
func (g *GodsList[V]) Begin() GodsPos[V] { return GodsPos[V]{g: g, i: 0} }

// End returns the position one past the last value.
func (g *GodsList[V]) End() GodsPos[V] { return GodsPos[V]{g: g, i: g.l.Size()} }

// At returns the position of index i.
func (g *GodsList[V]) At(i int) GodsPos[V] { return GodsPos[V]{g: g, i: i} }

// Values returns the values that are V, in order.
func (g *GodsList[V]) Values() []V {
	out := make([]V, 0, g.l.Size())
	for _, x := range g.l.Values() {
		if v, ok := x.(V); ok {
			out = append(out, v)
		}
	}

	return out
}

// Bounded returns the whole list as a bounded range.
func (g *GodsList[V]) Bounded() position.Bounded[GodsPos[V]] {
	return position.Bounded[GodsPos[V]]{First: g.Begin(), Last: g.End()}
}

// GodsPos is a random-access mutable position into a GodsList.
type GodsPos[V any] struct {
	g *GodsList[V]
	i int
}

// Index returns the offset of p.
func (p GodsPos[V]) Index() int { return p.i }

func (p GodsPos[V]) size() int {
	if p.g == nil {
		return -1
	}

	return p.g.l.Size()
}

// Value reads the value at p.
func (p GodsPos[V]) Value() (V, bool) {
	var zero V
	if p.i < 0 || p.i >= p.size() {
		return zero, false
	}
	x, ok := p.g.l.Get(p.i)
	if !ok {
		return zero, false
	}
	v, ok := x.(V)

	return v, ok
}

// Set writes v at p. The end position is not writable: gods would append.
func (p GodsPos[V]) Set(v V) bool {
	if p.i < 0 || p.i >= p.size() {
		return false
	}
	p.g.l.Set(p.i, v)

	return true
}

// Next returns the successor; false at End.
func (p GodsPos[V]) Next() (GodsPos[V], bool) {
	if p.i < 0 || p.i >= p.size() {
		return p, false
	}

	return GodsPos[V]{g: p.g, i: p.i + 1}, true
}

// Prev returns the predecessor; false at Begin.
func (p GodsPos[V]) Prev() (GodsPos[V], bool) {
	if p.i <= 0 || p.i > p.size() {
		return p, false
	}

	return GodsPos[V]{g: p.g, i: p.i - 1}, true
}

// Advance jumps n ≥ 0 positions forward, staying within [Begin, End].
func (p GodsPos[V]) Advance(n int) (GodsPos[V], bool) {
	if n < 0 || p.i < 0 || p.i+n > p.size() {
		return p, false
	}

	return GodsPos[V]{g: p.g, i: p.i + n}, true
}

// Retreat jumps n ≥ 0 positions backward, staying within [Begin, End].
func (p GodsPos[V]) Retreat(n int) (GodsPos[V], bool) {
	if p.g == nil || n < 0 || p.i-n < 0 || p.i > p.size() {
		return p, false
	}

	return GodsPos[V]{g: p.g, i: p.i - n}, true
}

// Distance returns p - from when both address the same list and from does
// not come after p.
func (p GodsPos[V]) Distance(from GodsPos[V]) (int, bool) {
	if p.g == nil || p.g != from.g || from.i > p.i {
		return 0, false
	}

	return p.i - from.i, true
}

// Less orders positions of the same list by offset.
func (p GodsPos[V]) Less(o GodsPos[V]) bool { return p.i < o.i }
