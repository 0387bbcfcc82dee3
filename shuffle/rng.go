// Package shuffle - RNG utilities shared by the arrangement generators.
//
// This file centralizes deterministic random generation for scrambling.
//
// Goals:
//   - Determinism: same seed ⇒ identical scramble across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive independent streams with deriveRNG instead.
package shuffle

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand under the package seed policy:
// seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// Exported so hosts (and the board package) can own a single stream that
// successive generations consume, instead of replaying one seed.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche mix, so successive derangement
// retries draw from decorrelated streams instead of replaying the parent.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from base and a
// stream identifier. If base==nil, defaultRNGSeed is the parent. Otherwise
// base.Int63() is consumed once to decorrelate consecutive derivations,
// then mixed with the stream via deriveSeed.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		// Int63() advances base state; intentional, so reusing a stream id
		// by mistake still yields distinct children.
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using
// rng. If rng==nil, the default deterministic stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	r := rng
	if r == nil {
		r = NewRand(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
