// SPDX-License-Identifier: MIT

package rotate_test

import (
	"fmt"

	"github.com/katalvlaran/lvseq/rotate"
	"github.com/katalvlaran/lvseq/storage"
)

// ExampleRotate rotates a slice so that its third value becomes the first.
// The returned position addresses the value that used to be at the front.
func ExampleRotate() {
	s := storage.NewSlice(1, 2, 3, 4, 5)

	// m = index 2: [1 2 | 3 4 5] → [3 4 5 | 1 2]
	r, err := rotate.Rotate(s.Begin(), s.At(2), s.End())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := r.Value()

	fmt.Println(s.Values(), r.Index(), v)
	// Output:
	// [3 4 5 1 2] 3 1
}

// ExampleRotateForward rotates a singly linked list, where only forward
// steps are available.
func ExampleRotateForward() {
	l := storage.NewFList("c", "d", "e", "a", "b")

	// Bring "a" to the front.
	if _, err := rotate.RotateForward(l.Begin(), l.At(3), l.End()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(l.Values())
	// Output:
	// [a b c d e]
}

// ExampleRotateWithBuffer rotates through a scratch buffer holding the
// shorter prefix.
func ExampleRotateWithBuffer() {
	s := storage.NewSlice(7, 8, 1, 2, 3, 4)
	buf := storage.MakeSlice[int](2)

	if _, err := rotate.RotateWithBuffer(s.Begin(), s.At(2), s.End(), buf.Counted()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(s.Values())
	// Output:
	// [1 2 3 4 7 8]
}

// ExampleReverse reverses a doubly linked list in place.
func ExampleReverse() {
	l := storage.NewList(1, 2, 3, 4)
	if err := rotate.Reverse(l.Begin(), l.End()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(l.Values())
	// Output:
	// [4 3 2 1]
}
