// SPDX-License-Identifier: MIT

package lvseq_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvseq/mergesort"
	"github.com/katalvlaran/lvseq/partition"
	"github.com/katalvlaran/lvseq/position"
	"github.com/katalvlaran/lvseq/rangecopy"
	"github.com/katalvlaran/lvseq/rotate"
	"github.com/katalvlaran/lvseq/storage"
)

// record is a keyed value; only Key takes part in comparisons.
type record struct {
	Key int    `yaml:"key"`
	Tag string `yaml:"tag"`
}

type scenario struct {
	Name        string   `yaml:"name"`
	Op          string   `yaml:"op"`
	Input       []int    `yaml:"input"`
	Second      []int    `yaml:"second"`
	Mid         int      `yaml:"mid"`
	Predicate   string   `yaml:"predicate"`
	Buffer      int      `yaml:"buffer"`
	Want        []int    `yaml:"want"`
	Point       *int     `yaml:"point"`
	Error       string   `yaml:"error"`
	Records     []record `yaml:"records"`
	WantRecords []record `yaml:"want_records"`
}

var (
	predicates = map[string]position.Predicate[int]{
		"even": position.Even[int],
		"odd":  position.Odd[int],
	}
	sentinels = map[string]error{
		"buffer_undersized": position.ErrBufferUndersized,
		"aliasing":          position.ErrAliasing,
		"precondition":      position.ErrPrecondition,
	}
	less  = position.Less[int]()
	byKey = position.KeyLess(func(r record) int { return r.Key })
)

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)
	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Scenarios)

	return doc.Scenarios
}

// store builds a storage of vals and exposes At and Values.
type store[P comparable, V any] func(vals []V) (at func(int) P, values func() []V)

func sliceStore[V any](vals []V) (func(int) storage.SlicePos[V], func() []V) {
	s := storage.NewSlice(vals...)
	return s.At, s.Values
}

func listStore[V any](vals []V) (func(int) storage.ListPos[V], func() []V) {
	l := storage.NewList(vals...)
	return l.At, l.Values
}

func flistStore[V any](vals []V) (func(int) storage.FListPos[V], func() []V) {
	l := storage.NewFList(vals...)
	return l.At, l.Values
}

func TestScenarios(t *testing.T) {
	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			if sc.Records != nil {
				runRecords(t, sc, sliceStore[record])
				runRecords(t, sc, listStore[record])
				runRecords(t, sc, flistStore[record])

				return
			}
			runInts(t, sc, sliceStore[int])
			runInts(t, sc, listStore[int])
			runInts(t, sc, flistStore[int])
		})
	}
}

func runInts[P position.ForwardMutable[P, int]](t *testing.T, sc scenario, mk store[P, int]) {
	t.Helper()
	n := len(sc.Input)
	at, values := mk(sc.Input)

	var (
		point P
		err   error
	)
	switch sc.Op {
	case "rotate":
		point, err = rotate.Rotate[P, int](at(0), at(sc.Mid), at(n))
	case "partition_semistable":
		point, err = partition.Semistable[P, int](at(0), at(n), predicates[sc.Predicate])
	case "partition_stable":
		point, err = partition.Stable[P, int](at(0), at(n), predicates[sc.Predicate])
	case "merge_copy":
		second := storage.NewFList(sc.Second...)
		outAt, outValues := mk(make([]int, n+len(sc.Second)))
		_, err = rangecopy.MergeCopy[P, storage.FListPos[int], P, int](
			at(0), at(n), second.Begin(), second.End(), outAt(0), less)
		require.NoError(t, err)
		assert.Equal(t, sc.Want, outValues())

		return
	case "sort_n_with_buffer":
		buf := storage.MakeSlice[int](sc.Buffer)
		_, err = mergesort.SortNWithBuffer[P, storage.SlicePos[int], int](at(0), n, buf.Counted(), less)
	default:
		t.Fatalf("unknown op %q", sc.Op)
	}

	if sc.Error != "" {
		assert.ErrorIs(t, err, sentinels[sc.Error])
	} else {
		require.NoError(t, err)
	}
	assert.Equal(t, sc.Want, values())
	if sc.Point != nil {
		assert.Equal(t, at(*sc.Point), point, "boundary position")
	}
}

func runRecords[P position.ForwardMutable[P, record]](t *testing.T, sc scenario, mk store[P, record]) {
	t.Helper()
	require.Equal(t, "sort_n_adaptive", sc.Op)
	n := len(sc.Records)
	at, values := mk(sc.Records)
	buf := storage.MakeSlice[record](sc.Buffer)

	l, err := mergesort.SortNAdaptive[P, storage.SlicePos[record], record](at(0), n, buf.Counted(), byKey)
	require.NoError(t, err)
	assert.Equal(t, at(n), l)
	assert.Equal(t, sc.WantRecords, values())
}
