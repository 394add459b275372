// SPDX-License-Identifier: MIT

package mergesort_test

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvseq/internal/permgen"
	"github.com/katalvlaran/lvseq/mergesort"
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/storage"
)

type rec = permgen.Record

// scratchPos addresses the scratch buffers passed to the explicit-buffer
// entry points.
type scratchPos = storage.SlicePos[rec]

type backend[P comparable] func(vals []rec) (at func(int) P, values func() []rec)

func sliceBackend(vals []rec) (func(int) storage.SlicePos[rec], func() []rec) {
	s := storage.NewSlice(vals...)
	return s.At, s.Values
}

func listBackend(vals []rec) (func(int) storage.ListPos[rec], func() []rec) {
	l := storage.NewList(vals...)
	return l.At, l.Values
}

func flistBackend(vals []rec) (func(int) storage.FListPos[rec], func() []rec) {
	l := storage.NewFList(vals...)
	return l.At, l.Values
}

func godsBackend(vals []rec) (func(int) storage.GodsPos[rec], func() []rec) {
	l := doublylinkedlist.New()
	for _, v := range vals {
		l.Add(v)
	}
	g := storage.WrapGodsList[rec](l)
	return g.At, g.Values
}

var byKey position.Relation[rec] = permgen.ByKey

func less(a, b int) bool { return a < b }

// stableSorted is the reference result: records ordered by Key, ties by Seq.
func stableSorted(in []rec) []rec {
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b rec) int { return a.Key - b.Key })

	return out
}

type sorter[P comparable] func(f P, n int, r position.Relation[rec]) (P, error)

// sorters lists every sorting entry point, with a few buffer sizes for the
// adaptive ones.
func sorters[P position.ForwardMutable[P, rec]]() map[string]sorter[P] {
	withBuffer := func(f P, n int, r position.Relation[rec]) (P, error) {
		buf := storage.MakeSlice[rec]((n + 1) / 2)
		return mergesort.SortNWithBuffer[P, scratchPos, rec](f, n, buf.Counted(), r)
	}
	adaptive := func(capacity int) sorter[P] {
		return func(f P, n int, r position.Relation[rec]) (P, error) {
			buf := storage.MakeSlice[rec](capacity)
			return mergesort.SortNAdaptive[P, scratchPos, rec](f, n, buf.Counted(), r)
		}
	}
	auto := func(opts ...mergesort.Option) sorter[P] {
		return func(f P, n int, r position.Relation[rec]) (P, error) {
			return mergesort.SortN[P, rec](f, n, r, opts...)
		}
	}

	return map[string]sorter[P]{
		"SortNWithBuffer":     withBuffer,
		"SortNAdaptive/cap0":  adaptive(0),
		"SortNAdaptive/cap1":  adaptive(1),
		"SortNAdaptive/cap4":  adaptive(4),
		"SortN/default":       auto(),
		"SortN/cap0":          auto(mergesort.WithBufferCapacity(0)),
		"SortN/cap3":          auto(mergesort.WithBufferCapacity(3)),
		"SortN/oversized-cap": auto(mergesort.WithBufferCapacity(100)),
	}
}

// checkSorters sorts random records of sizes 0..maxN with few distinct keys
// and compares against a stable reference sort.
func checkSorters[P comparable](t *testing.T, mk backend[P], ss map[string]sorter[P]) {
	t.Helper()
	const maxN = 40
	for name, sort := range ss {
		t.Run(name, func(t *testing.T) {
			rng := permgen.New(42)
			for n := 0; n <= maxN; n++ {
				in, err := permgen.Records(n, 3, rng)
				require.NoError(t, err)
				at, values := mk(in)
				l, err := sort(at(0), n, byKey)
				require.NoError(t, err, "n=%d", n)
				assert.Equal(t, at(n), l, "n=%d: returned end", n)
				assert.Equal(t, stableSorted(in), values(), "n=%d", n)
			}
		})
	}
}

func TestSort_Slice(t *testing.T) {
	checkSorters(t, sliceBackend, sorters[storage.SlicePos[rec]]())
}

func TestSort_List(t *testing.T) {
	checkSorters(t, listBackend, sorters[storage.ListPos[rec]]())
}

func TestSort_FList(t *testing.T) {
	checkSorters(t, flistBackend, sorters[storage.FListPos[rec]]())
}

func TestSort_GodsList(t *testing.T) {
	checkSorters(t, godsBackend, sorters[storage.GodsPos[rec]]())
}

func TestSortNWithBuffer_FiveValues(t *testing.T) {
	s := storage.NewSlice(5, 3, 1, 4, 2)
	buf := storage.MakeSlice[int](3)

	l, err := mergesort.SortNWithBuffer(s.Begin(), s.Len(), buf.Counted(), less)
	require.NoError(t, err)
	assert.Equal(t, s.End(), l)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())
}

func TestSortNWithBuffer_Undersized(t *testing.T) {
	s := storage.NewSlice(5, 3, 1, 4, 2)

	_, err := mergesort.SortNWithBuffer(s.Begin(), s.Len(), storage.MakeSlice[int](2).Counted(), less)
	assert.ErrorIs(t, err, position.ErrBufferUndersized)
	assert.Contains(t, err.Error(), "mergesort: SortNWithBuffer")
	assert.Equal(t, []int{5, 3, 1, 4, 2}, s.Values(), "input must be untouched")

	l, err := mergesort.SortNAdaptive(s.Begin(), s.Len(), storage.MakeSlice[int](0).Counted(), less)
	require.NoError(t, err)
	assert.Equal(t, s.End(), l)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())
}

func TestSort_AlreadySortedAndReversed(t *testing.T) {
	for _, capacity := range []int{0, 2, 8} {
		up := storage.NewList(1, 2, 3, 4, 5, 6, 7, 8)
		_, err := mergesort.SortN(up.Begin(), 8, less, mergesort.WithBufferCapacity(capacity))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, up.Values())

		down := storage.NewFList(8, 7, 6, 5, 4, 3, 2, 1)
		_, err = mergesort.SortN(down.Begin(), 8, less, mergesort.WithBufferCapacity(capacity))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, down.Values())
	}
}

// runs builds two sorted runs of record keys and returns them concatenated,
// with Seq numbering the concatenation.
func runs(t *testing.T, n0, n1 int, seed int64) []rec {
	t.Helper()
	rng := permgen.New(seed)
	a, err := permgen.SortedRun(n0, 0, 2, rng)
	require.NoError(t, err)
	b, err := permgen.SortedRun(n1, 1, 2, rng)
	require.NoError(t, err)
	out := make([]rec, 0, n0+n1)
	for i, k := range append(a, b...) {
		out = append(out, rec{Key: k, Seq: i})
	}

	return out
}

func TestMerge_AllRunSizes(t *testing.T) {
	for n0 := 0; n0 <= 9; n0++ {
		for n1 := 0; n1 <= 9; n1++ {
			in := runs(t, n0, n1, int64(10*n0+n1+1))
			want := stableSorted(in)

			s := storage.NewSlice(in...)
			l, err := mergesort.MergeNWithBuffer(s.Begin(), n0, s.At(n0), n1, storage.MakeSlice[rec](n0).Counted(), byKey)
			require.NoError(t, err, "n0=%d n1=%d", n0, n1)
			assert.Equal(t, s.End(), l)
			assert.Equal(t, want, s.Values(), "MergeNWithBuffer n0=%d n1=%d", n0, n1)

			for _, capacity := range []int{0, 1, 3} {
				fl := storage.NewFList(in...)
				l, err := mergesort.MergeNAdaptive(fl.Begin(), n0, fl.At(n0), n1, storage.MakeSlice[rec](capacity).Counted(), byKey)
				require.NoError(t, err, "n0=%d n1=%d cap=%d", n0, n1, capacity)
				assert.Equal(t, fl.End(), l)
				assert.Equal(t, want, fl.Values(), "MergeNAdaptive n0=%d n1=%d cap=%d", n0, n1, capacity)
			}
		}
	}
}

func TestMerge_Errors(t *testing.T) {
	s := storage.NewSlice(1, 3, 2, 4, 9)
	buf := storage.MakeSlice[int](4).Counted()

	_, err := mergesort.MergeNWithBuffer(s.Begin(), 2, s.At(3), 2, buf, less)
	assert.ErrorIs(t, err, mergesort.ErrRunsNotAdjacent)
	assert.ErrorIs(t, err, position.ErrPrecondition)

	_, err = mergesort.MergeNAdaptive(s.Begin(), -1, s.At(2), 2, buf, less)
	assert.ErrorIs(t, err, position.ErrNegativeCount)

	_, err = mergesort.MergeNWithBuffer(s.Begin(), 3, s.At(3), 2, storage.MakeSlice[int](2).Counted(), less)
	assert.ErrorIs(t, err, position.ErrBufferUndersized)

	_, err = mergesort.MergeNAdaptive(s.Begin(), 2, s.At(2), 4, buf, less)
	assert.ErrorIs(t, err, position.ErrPrecondition)

	aliased := position.Counted[storage.SlicePos[int]]{First: s.At(1), N: 2}
	_, err = mergesort.MergeNWithBuffer(s.Begin(), 2, s.At(2), 2, aliased, less)
	assert.ErrorIs(t, err, position.ErrAliasing)
	_, err = mergesort.SortNAdaptive(s.Begin(), 4, aliased, less)
	assert.ErrorIs(t, err, position.ErrAliasing)

	assert.Equal(t, []int{1, 3, 2, 4, 9}, s.Values(), "failed merges must not write")

	_, err = mergesort.SortN(s.Begin(), -2, less)
	assert.ErrorIs(t, err, position.ErrNegativeCount)
	_, err = mergesort.SortNWithBuffer(s.Begin(), 7, buf, less)
	assert.ErrorIs(t, err, position.ErrPrecondition)
}

func TestSortN_Stats(t *testing.T) {
	t.Run("buffered", func(t *testing.T) {
		var st mergesort.Stats
		s := storage.NewSlice(2, 1)
		_, err := mergesort.SortN(s.Begin(), 2, less, mergesort.WithStats(&st))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, s.Values())
		assert.Equal(t, mergesort.Stats{BufferedMerges: 1, Comparisons: 1}, st)
	})
	t.Run("rotations only", func(t *testing.T) {
		var st mergesort.Stats
		s := storage.NewSlice(2, 1)
		_, err := mergesort.SortN(s.Begin(), 2, less, mergesort.WithBufferCapacity(0), mergesort.WithStats(&st))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, s.Values())
		assert.Zero(t, st.BufferedMerges)
		assert.Equal(t, 1, st.RotatingSplits)
		assert.Positive(t, st.Comparisons)
	})
	t.Run("sorted input", func(t *testing.T) {
		var st mergesort.Stats
		s := storage.NewSlice(1, 2, 3, 4)
		_, err := mergesort.SortN(s.Begin(), 4, less, mergesort.WithStats(&st))
		require.NoError(t, err)
		assert.Equal(t, 3, st.BufferedMerges)
		assert.LessOrEqual(t, st.Comparisons, 5)
	})
}

func TestOptions(t *testing.T) {
	assert.Panics(t, func() { mergesort.WithBufferCapacity(-1) })
	assert.Panics(t, func() { mergesort.WithStats(nil) })

	o := mergesort.DefaultOptions()
	mergesort.WithBufferCapacity(7)(&o)
	assert.Equal(t, 7, o.BufferCapacity)
	assert.Nil(t, o.Stats)
}
