// SPDX-License-Identifier: MIT

// Package permgen generates deterministic inputs for property tests and
// benchmarks: permutations, keyed records with duplicate keys, and sorted
// runs.
//
// Determinism: the same seed yields the same data on every platform.
// math/rand.Rand is not goroutine-safe; use Derive to get independent
// streams instead of sharing one.
package permgen

import (
	"errors"
	"math/rand"
)

// ErrNegativeSize is returned when a generator is asked for n < 0 values.
var ErrNegativeSize = errors.New("permgen: negative size")

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// New returns a deterministic *rand.Rand. Seed 0 selects defaultSeed.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mix folds a parent seed and a stream id into a new seed using the
// SplitMix64 finalizer.
func mix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive returns an independent stream for the given id. One value of base
// is consumed, so deriving twice with the same id still gives two different
// streams. A nil base derives from defaultSeed.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mix(parent, stream)))
}

// orDefault returns rng, or a fresh default stream when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return New(0)
	}

	return rng
}

// Shuffle permutes a in place (Fisher–Yates).
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, rng *rand.Rand) {
	r := orDefault(rng)
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a random permutation of 0..n-1.
func Perm(n int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, rng)

	return p, nil
}

// Ints returns n values drawn uniformly from [0, limit). limit ≤ 0 is
// treated as 1.
func Ints(n, limit int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if limit <= 0 {
		limit = 1
	}
	r := orDefault(rng)
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(limit)
	}

	return out, nil
}

// Record is a value with a sort key and its original position, used to
// observe stability: after a stable sort by Key, records with equal keys
// are ordered by Seq.
type Record struct {
	Key int
	Seq int
}

// Records returns n records with keys in [0, keys) and Seq = index.
// Few distinct keys give many ties.
func Records(n, keys int, rng *rand.Rand) ([]Record, error) {
	ks, err := Ints(n, keys, rng)
	if err != nil {
		return nil, err
	}
	out := make([]Record, n)
	for i, k := range ks {
		out[i] = Record{Key: k, Seq: i}
	}

	return out, nil
}

// ByKey orders records by Key only.
func ByKey(a, b Record) bool { return a.Key < b.Key }

// SortedRun returns n non-decreasing values starting at base, each step
// adding a value in [0, maxStep].
func SortedRun(n, base, maxStep int, rng *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	if maxStep < 0 {
		maxStep = 0
	}
	r := orDefault(rng)
	out := make([]int, n)
	v := base
	for i := range out {
		out[i] = v
		v += r.Intn(maxStep + 1)
	}

	return out, nil
}
