// SPDX-License-Identifier: MIT

package rotate_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rotate"
	"github.com/katalvlaran/lvseq/storage"
)

func reversed(n int) []int {
	out := seq(n)
	slices.Reverse(out)

	return out
}

func TestReverse_AllVariants(t *testing.T) {
	for n := 0; n < 12; n++ {
		l := storage.NewList(seq(n)...)
		require.NoError(t, rotate.Reverse(l.Begin(), l.End()))
		assert.Equal(t, reversed(n), l.Values(), "Reverse n=%d", n)

		s := storage.NewSlice(seq(n)...)
		require.NoError(t, rotate.ReverseIndexed(s.Begin(), s.End()))
		assert.Equal(t, reversed(n), s.Values(), "ReverseIndexed n=%d", n)

		fl := storage.NewFList(seq(n)...)
		end, err := rotate.ReverseNForward(fl.Begin(), n)
		require.NoError(t, err)
		assert.Equal(t, fl.End(), end)
		assert.Equal(t, reversed(n), fl.Values(), "ReverseNForward n=%d", n)

		fb := storage.NewFList(seq(n)...)
		buf := storage.MakeSlice[int](n)
		end, err = rotate.ReverseNWithBuffer(fb.Begin(), n, buf.Begin())
		require.NoError(t, err)
		assert.Equal(t, fb.End(), end)
		assert.Equal(t, reversed(n), fb.Values(), "ReverseNWithBuffer n=%d", n)

		for capacity := 0; capacity <= n; capacity++ {
			fa := storage.NewFList(seq(n)...)
			small := storage.MakeSlice[int](capacity)
			end, err = rotate.ReverseNAdaptive(fa.Begin(), n, small.Counted())
			require.NoError(t, err)
			assert.Equal(t, fa.End(), end)
			assert.Equal(t, reversed(n), fa.Values(), "ReverseNAdaptive n=%d cap=%d", n, capacity)
		}
	}
}

func TestReverse_Errors(t *testing.T) {
	s := storage.NewSlice(1, 2, 3)
	err := rotate.ReverseNIndexed(s.Begin(), 5)
	assert.ErrorIs(t, err, position.ErrOutOfRange)
	assert.Contains(t, err.Error(), "rotate: ReverseNIndexed")

	fl := storage.NewFList(1, 2)
	_, err = rotate.ReverseNForward(fl.Begin(), -1)
	assert.ErrorIs(t, err, position.ErrNegativeCount)

	_, err = rotate.ReverseNWithBuffer(fl.Begin(), 2, storage.MakeSlice[int](1).Begin())
	assert.ErrorIs(t, err, position.ErrNoSuccessor)
}

func TestSwapRanges(t *testing.T) {
	a := storage.NewSlice(1, 2, 3)
	b := storage.NewFList(7, 8, 9, 10)

	end, err := rotate.SwapRanges(a.Begin(), a.End(), b.Begin())
	require.NoError(t, err)
	assert.Equal(t, b.At(3), end)
	assert.Equal(t, []int{7, 8, 9}, a.Values())
	assert.Equal(t, []int{1, 2, 3, 10}, b.Values())

	i, j, err := rotate.SwapRangesBounded(a.Begin(), a.End(), b.Begin(), b.At(2))
	require.NoError(t, err)
	assert.Equal(t, a.At(2), i)
	assert.Equal(t, b.At(2), j)
	assert.Equal(t, []int{1, 2, 9}, a.Values())

	_, _, err = rotate.SwapRangesN(a.Begin(), b.Begin(), 5)
	assert.ErrorIs(t, err, position.ErrPrecondition)
	_, _, err = rotate.SwapRangesN(a.Begin(), b.Begin(), -1)
	assert.ErrorIs(t, err, position.ErrNegativeCount)
}

func TestReverseSwapRanges(t *testing.T) {
	a := storage.NewList(1, 2, 3)
	b := storage.NewSlice(7, 8, 9)

	end, err := rotate.ReverseSwapRanges(a.Begin(), a.End(), b.Begin())
	require.NoError(t, err)
	assert.Equal(t, b.End(), end)
	assert.Equal(t, []int{9, 8, 7}, a.Values())
	assert.Equal(t, []int{3, 2, 1}, b.Values())

	l0, f1, err := rotate.ReverseSwapRangesBounded(a.Begin(), a.End(), b.Begin(), b.At(1))
	require.NoError(t, err)
	assert.Equal(t, a.At(2), l0)
	assert.Equal(t, b.At(1), f1)
	assert.Equal(t, []int{9, 8, 3}, a.Values())
	assert.Equal(t, []int{7, 2, 1}, b.Values())

	l0, f1, err = rotate.ReverseSwapRangesN(a.End(), b.Begin(), 2)
	require.NoError(t, err)
	assert.Equal(t, a.At(1), l0)
	assert.Equal(t, b.At(2), f1)
	assert.Equal(t, []int{9, 2, 7}, a.Values())
	assert.Equal(t, []int{3, 8, 1}, b.Values())
}
