// SPDX-License-Identifier: MIT

package step_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/step"
	"github.com/katalvlaran/lvseq/storage"
)

func TestCopyStep(t *testing.T) {
	src := storage.NewFList(1, 2)
	dst := storage.MakeSlice[int](2)
	i, o := src.Begin(), dst.Begin()

	require.NoError(t, step.CopyStep(&i, &o))
	require.NoError(t, step.CopyStep(&i, &o))
	assert.Equal(t, []int{1, 2}, dst.Values())
	assert.Equal(t, src.End(), i)
	assert.Equal(t, dst.End(), o)

	// both positions stay put on failure
	err := step.CopyStep(&i, &o)
	assert.ErrorIs(t, err, position.ErrUnreadable)
	assert.ErrorIs(t, err, position.ErrPrecondition)
	assert.Equal(t, src.End(), i)
}

func TestCopyStep_OutputExhausted(t *testing.T) {
	src := storage.NewSlice(7)
	dst := storage.MakeSlice[int](0)
	i, o := src.Begin(), dst.Begin()

	err := step.CopyStep(&i, &o)
	assert.ErrorIs(t, err, position.ErrNoSuccessor)
	assert.Equal(t, src.Begin(), i, "input not advanced")
}

func TestFillStep(t *testing.T) {
	s := storage.MakeSlice[string](1)
	o := s.Begin()
	require.NoError(t, step.FillStep(&o, "x"))
	assert.Equal(t, []string{"x"}, s.Values())
	assert.ErrorIs(t, step.FillStep(&o, "y"), position.ErrNoSuccessor)
}

func TestExchangeValues(t *testing.T) {
	s := storage.NewSlice(1, 2)
	l := storage.NewList(3)

	require.NoError(t, step.ExchangeValues[storage.SlicePos[int], storage.ListPos[int], int](s.At(0), l.Begin()))
	assert.Equal(t, []int{3, 2}, s.Values())
	assert.Equal(t, []int{1}, l.Values())

	// same position: no change
	require.NoError(t, step.ExchangeValues[storage.SlicePos[int], storage.SlicePos[int], int](s.At(1), s.At(1)))
	assert.Equal(t, []int{3, 2}, s.Values())

	err := step.ExchangeValues[storage.SlicePos[int], storage.ListPos[int], int](s.At(0), l.End())
	assert.ErrorIs(t, err, position.ErrUnreadable)
	assert.Equal(t, []int{3, 2}, s.Values(), "nothing written")
}

// cell is a single readable slot that accepts *writes more Set calls.
type cell struct {
	v      *int
	writes *int
}

func newCell(v, writes int) cell { return cell{v: &v, writes: &writes} }

func (c cell) Value() (int, bool) { return *c.v, true }

func (c cell) Set(v int) bool {
	if *c.writes == 0 {
		return false
	}
	*c.writes--
	*c.v = v

	return true
}

func TestExchangeValues_Unwritable(t *testing.T) {
	cases := []struct {
		name    string
		xWrites int
		wantX   int
		restore bool
	}{
		{"x restored", 2, 1, true},
		{"restore refused", 1, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := newCell(1, tc.xWrites), newCell(2, 0)
			err := step.ExchangeValues[cell, cell, int](x, y)
			require.ErrorIs(t, err, position.ErrUnwritable)
			assert.ErrorIs(t, err, position.ErrPrecondition)
			assert.Equal(t, tc.wantX, *x.v)
			assert.Equal(t, 2, *y.v)
			if tc.restore {
				assert.Equal(t, position.ErrUnwritable, err)
			} else {
				assert.Contains(t, err.Error(), "failed restore")
			}
		})
	}
}

func TestSwapStep(t *testing.T) {
	a := storage.NewSlice(1, 2)
	b := storage.NewFList(8, 9)
	i, j := a.Begin(), b.Begin()

	require.NoError(t, step.SwapStep(&i, &j))
	require.NoError(t, step.SwapStep(&i, &j))
	assert.Equal(t, []int{8, 9}, a.Values())
	assert.Equal(t, []int{1, 2}, b.Values())
	assert.Equal(t, a.End(), i)
	assert.Equal(t, b.End(), j)
}

func TestReverseSwapStep(t *testing.T) {
	a := storage.NewList(1, 2, 3)
	b := storage.NewSlice(7, 8, 9)
	l, f := a.End(), b.Begin()

	require.NoError(t, step.ReverseSwapStep(&l, &f))
	assert.Equal(t, []int{1, 2, 7}, a.Values())
	assert.Equal(t, []int{3, 8, 9}, b.Values())
	assert.Equal(t, a.At(2), l)
	assert.Equal(t, b.At(1), f)

	first := a.Begin()
	err := step.ReverseSwapStep(&first, &f)
	assert.ErrorIs(t, err, position.ErrNoPredecessor)
}

func TestBackwardSteps(t *testing.T) {
	src := storage.NewSlice(1, 2, 3)
	dst := storage.MakeSlice[int](3)

	li, lo := src.End(), dst.End()
	require.NoError(t, step.CopyBackwardStep(&li, &lo))
	assert.Equal(t, []int{0, 0, 3}, dst.Values())
	assert.Equal(t, 2, li.Index())

	li, fo := src.End(), dst.Begin()
	require.NoError(t, step.ReverseCopyStep(&li, &fo))
	assert.Equal(t, []int{3, 0, 3}, dst.Values())
	assert.Equal(t, 1, fo.Index())

	fi, lo2 := src.Begin(), dst.End()
	require.NoError(t, step.ReverseCopyBackwardStep(&fi, &lo2))
	assert.Equal(t, []int{3, 0, 1}, dst.Values())
	assert.Equal(t, 1, fi.Index())
	assert.Equal(t, 2, lo2.Index())
}

func TestCountDown(t *testing.T) {
	n, calls := 3, 0
	for step.CountDown(&n) {
		calls++
	}
	assert.Equal(t, 3, calls)
	assert.Equal(t, 0, n)

	neg := -2
	assert.False(t, step.CountDown(&neg))
	assert.Equal(t, -2, neg)
}
