package board

import (
	"fmt"
	"math/rand"

	"github.com/vasqo/tileswap/grid"
	"github.com/vasqo/tileswap/shuffle"
)

// Board is the mutable state of one puzzle in play. It is exclusively
// owned by a single controller; see the package documentation for the
// concurrency contract. Construct with New, mutate only through Swap,
// and discard the Board to change grid, image, or variant.
type Board struct {
	grid    grid.Descriptor
	variant shuffle.Variant
	mapping Mapping

	// arrangement[pos] = tile currently at pos; initial is the canonical
	// solved reference and is always the identity arrangement.
	arrangement shuffle.Arrangement
	initial     shuffle.Arrangement

	swapCount int

	// rng is the board's deterministic stream; successive reshuffles
	// consume it so they differ while staying replayable from one seed.
	rng *rand.Rand

	onComplete    func(swaps int)
	completeFired bool
}

// New constructs a Board over d, generating the initial arrangement via
// shuffle.Generate. Validation is fail-fast:
//   - degenerate dimensions → grid.ErrBadDimensions
//   - PairedColumns on a 1-column grid → shuffle.ErrNeedTwoColumns
//   - mapping length ≠ Rows → ErrMappingLength
//   - mapping with Classic → ErrMappingVariant
//
// Complexity: O(N).
func New(d grid.Descriptor, opts ...Option) (*Board, error) {
	if d.Columns < 1 || d.Rows < 1 {
		return nil, grid.ErrBadDimensions
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Variant == shuffle.PairedColumns && d.Columns < 2 {
		return nil, shuffle.ErrNeedTwoColumns
	}
	if o.Mapping != nil {
		if o.Variant != shuffle.PairedColumns {
			return nil, ErrMappingVariant
		}
		if len(o.Mapping) != d.Rows {
			return nil, fmt.Errorf("%w: got %d, grid has %d rows", ErrMappingLength, len(o.Mapping), d.Rows)
		}
	}

	b := &Board{
		grid:       d,
		variant:    o.Variant,
		mapping:    o.Mapping.Clone(),
		initial:    shuffle.Identity(d.Tiles()),
		rng:        shuffle.NewRand(o.Seed),
		onComplete: o.OnComplete,
	}

	genOpts := []shuffle.Option{shuffle.WithRand(b.rng)}
	if !o.Shuffle {
		genOpts = append(genOpts, shuffle.WithoutShuffle())
	}
	arr, err := shuffle.Generate(d, b.variant, genOpts...)
	if err != nil {
		return nil, err
	}
	b.arrangement = arr

	return b, nil
}

// Swap exchanges the tiles at posA and posB and increments the swap
// counter. Equal positions are a no-op returning nil; a nil receiver is a
// defensive no-op; out-of-range positions return ErrPositionOutOfRange
// without mutating anything. After a mutating swap that completes the
// board, the one-shot completion hook fires with the final swap count.
//
// Complexity: O(1) for the exchange; the completion probe is O(Rows).
func (b *Board) Swap(posA, posB int) error {
	if b == nil {
		return nil
	}
	if !b.grid.InBounds(posA) || !b.grid.InBounds(posB) {
		return fmt.Errorf("%w: (%d,%d) on %d tiles", ErrPositionOutOfRange, posA, posB, b.grid.Tiles())
	}
	if posA == posB {
		return nil
	}

	b.arrangement[posA], b.arrangement[posB] = b.arrangement[posB], b.arrangement[posA]
	b.swapCount++

	if b.onComplete != nil && !b.completeFired && b.IsComplete() {
		b.completeFired = true
		b.onComplete(b.swapCount)
	}

	return nil
}

// Reset restores the solved reference (the identity arrangement,
// regardless of variant), zeroes the swap counter, and re-arms the
// completion hook. It never reshuffles. No-op on a nil receiver.
//
// Complexity: O(N).
func (b *Board) Reset() {
	if b == nil {
		return
	}
	b.arrangement = b.initial.Clone()
	b.swapCount = 0
	b.completeFired = false
}

// Reshuffle regenerates the arrangement for the stored grid and variant
// and zeroes the swap counter, re-arming the completion hook. With no
// options the board's own deterministic stream continues, so consecutive
// reshuffles differ while the whole sequence stays replayable from the
// construction seed; explicit shuffle options replace the stream for that
// one generation. No-op on a nil receiver.
//
// Complexity: O(N).
func (b *Board) Reshuffle(opts ...shuffle.Option) error {
	if b == nil {
		return nil
	}
	if len(opts) == 0 {
		opts = []shuffle.Option{shuffle.WithRand(b.rng)}
	}

	arr, err := shuffle.Generate(b.grid, b.variant, opts...)
	if err != nil {
		return err
	}
	b.arrangement = arr
	b.swapCount = 0
	b.completeFired = false

	return nil
}

// Grid returns the board's immutable descriptor.
func (b *Board) Grid() grid.Descriptor {
	if b == nil {
		return grid.Descriptor{}
	}

	return b.grid
}

// Variant returns the board's puzzle variant.
func (b *Board) Variant() shuffle.Variant {
	if b == nil {
		return shuffle.Classic
	}

	return b.variant
}

// SwapCount returns the number of mutating swaps since the last
// initialize, reset, or reshuffle.
func (b *Board) SwapCount() int {
	if b == nil {
		return 0
	}

	return b.swapCount
}

// Arrangement returns a defensive copy of the current arrangement.
// Complexity: O(N).
func (b *Board) Arrangement() shuffle.Arrangement {
	if b == nil {
		return nil
	}

	return b.arrangement.Clone()
}

// MappingTable returns a defensive copy of the educational mapping, or
// nil when the board has none.
func (b *Board) MappingTable() Mapping {
	if b == nil {
		return nil
	}

	return b.mapping.Clone()
}
