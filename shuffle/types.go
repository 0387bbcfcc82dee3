// Package shuffle defines options, variants, and sentinel errors for
// arrangement generation.
package shuffle

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for arrangement generation.
var (
	// ErrUnknownVariant is returned for a Variant value outside the declared set.
	ErrUnknownVariant = errors.New("shuffle: unknown puzzle variant")

	// ErrNeedTwoColumns is returned when a PairedColumns shuffle is requested
	// on a grid without a second column to scramble.
	ErrNeedTwoColumns = errors.New("shuffle: paired-columns variant requires at least 2 columns")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shuffle: invalid option supplied")

	// ErrRetriesExhausted is returned if the derangement retry cap is hit.
	// For any N ≥ 2 a derangement exists and the randomized pass finds one
	// with probability 1, so hitting the cap indicates an internal defect,
	// not a condition callers should recover from.
	ErrRetriesExhausted = errors.New("shuffle: derangement retry cap exhausted")
)

// Variant selects the scramble/completion rule family of a puzzle instance.
//
//   - Classic       — the full image puzzle: every position scrambles and
//     every tile must return to its own position.
//   - PairedColumns — the educational/combinatorial puzzles: the prompt
//     column stays anchored, only the answer column scrambles, and
//     completion is judged per row. Both source kinds share this engine
//     behavior; only their rendering differs.
type Variant int

const (
	// Classic scrambles all positions and requires the identity to win.
	Classic Variant = iota
	// PairedColumns scrambles only column 1 and judges row correspondence.
	PairedColumns
)

// defaultMaxRetries caps derangement generation attempts. The single-pass
// failure probability is already small at N=2 and vanishes as N grows, so
// this is a safety valve, not a tuning knob.
const defaultMaxRetries = 64

// Option configures arrangement generation via functional arguments.
// If an Option is invalid (e.g. a non-positive retry cap), it is recorded
// internally and surfaced as ErrOptionViolation when Generate is invoked.
type Option func(*Options)

// Options holds parameters customizing Generate.
type Options struct {
	// Seed drives the deterministic RNG. Seed 0 maps to a fixed default
	// seed, so the zero value is still fully reproducible.
	Seed int64

	// Rand, when non-nil, is used directly and overrides Seed.
	Rand *rand.Rand

	// Shuffle toggles scrambling; when false Generate returns identity.
	Shuffle bool

	// MaxRetries caps derangement attempts before ErrRetriesExhausted.
	MaxRetries int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - shuffling enabled
//   - Seed 0 (stable default stream)
//   - MaxRetries = defaultMaxRetries
//   - no injected Rand.
func DefaultOptions() Options {
	return Options{
		Seed:       0,
		Rand:       nil,
		Shuffle:    true,
		MaxRetries: defaultMaxRetries,
		err:        nil,
	}
}

// WithSeed derives the generation RNG deterministically from s.
func WithSeed(s int64) Option {
	return func(o *Options) {
		o.Seed = s
	}
}

// WithRand injects a caller-owned RNG, overriding any seed. A nil r is
// ignored and the seed policy applies instead.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithoutShuffle disables scrambling: Generate returns the identity
// arrangement for any variant. Hosts use this for "practice" boards and
// for re-initialization after a difficulty change.
func WithoutShuffle() Option {
	return func(o *Options) {
		o.Shuffle = false
	}
}

// WithMaxRetries overrides the derangement retry cap.
//
//	n ≥ 1: use n as the cap
//	n < 1: invalid option → ErrOptionViolation
func WithMaxRetries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxRetries must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRetries = n
	}
}
