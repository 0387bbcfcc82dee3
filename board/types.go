// Package board defines options and sentinel errors for board construction
// and mutation.
package board

import (
	"errors"

	"github.com/vasqo/tileswap/shuffle"
)

// Sentinel errors for board operations.
var (
	// ErrPositionOutOfRange is returned by Swap for indices outside [0,N).
	// The source behavior this engine descends from ignored such calls
	// silently; failing fast was chosen instead so integration bugs in the
	// host's cell-to-index mapping surface immediately.
	ErrPositionOutOfRange = errors.New("board: swap position out of range")

	// ErrMappingLength is returned when a mapping's length does not equal
	// the grid's row count.
	ErrMappingLength = errors.New("board: mapping length must equal grid rows")

	// ErrMappingVariant is returned when a mapping is supplied for a
	// variant that never consults one.
	ErrMappingVariant = errors.New("board: mapping requires the paired-columns variant")
)

// Mapping is the educational indirection table: mapping[originalRow] is
// the logical group id of that source row. Two tiles facing each other in
// a paired-columns row are a correct match iff their original rows map to
// the same group. Created once by the content generator at puzzle build
// time, validated by New, and immutable for the Board's lifetime.
type Mapping []int

// Clone returns an independent copy of m.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	copy(out, m)

	return out
}

// Option configures Board construction via functional arguments.
type Option func(*Options)

// Options holds parameters customizing New.
type Options struct {
	// Variant selects the scramble/completion rule family.
	Variant shuffle.Variant

	// Shuffle toggles the initial scramble; when false the board starts
	// solved (practice mode, or host-driven re-initialization).
	Shuffle bool

	// Seed drives the board's deterministic RNG stream. Seed 0 maps to
	// the stable default stream (see shuffle.NewRand).
	Seed int64

	// Mapping is the optional educational indirection table.
	Mapping Mapping

	// OnComplete, when non-nil, is invoked by the swap that completes the
	// board, receiving the final swap count. One-shot: it fires at most
	// once per scramble and is re-armed by Reset and Reshuffle.
	OnComplete func(swaps int)
}

// DefaultOptions returns Options with sane defaults:
//   - Classic variant
//   - initial scramble enabled
//   - Seed 0 (stable default stream)
//   - no mapping, no completion hook.
func DefaultOptions() Options {
	return Options{
		Variant:    shuffle.Classic,
		Shuffle:    true,
		Seed:       0,
		Mapping:    nil,
		OnComplete: nil,
	}
}

// WithVariant selects the puzzle variant.
func WithVariant(v shuffle.Variant) Option {
	return func(o *Options) {
		o.Variant = v
	}
}

// WithoutShuffle starts the board in the solved state.
func WithoutShuffle() Option {
	return func(o *Options) {
		o.Shuffle = false
	}
}

// WithSeed derives the board's RNG stream deterministically from s.
func WithSeed(s int64) Option {
	return func(o *Options) {
		o.Seed = s
	}
}

// WithMapping supplies the educational indirection table. The mapping is
// validated by New: its length must equal the grid's row count and the
// variant must be PairedColumns.
func WithMapping(m Mapping) Option {
	return func(o *Options) {
		if m != nil {
			o.Mapping = m
		}
	}
}

// WithOnComplete registers the one-shot completion hook.
func WithOnComplete(fn func(swaps int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}
