package shuffle

import (
	"math/rand"

	"github.com/vasqo/tileswap/grid"
)

// Generate produces the initial arrangement for a puzzle instance,
// dispatched on variant:
//
//   - shuffling disabled (WithoutShuffle) or fewer than 2 tiles — the
//     identity arrangement; no scramble is meaningful.
//   - Classic — a full derangement of [0,N): zero fixed points, so the
//     player never receives pre-solved positions.
//   - PairedColumns — a uniform Fisher–Yates shuffle restricted to the
//     column-1 positions; every other position keeps its identity tile.
//
// The returned arrangement is always a permutation of [0,N).
// Returns grid.ErrBadDimensions for a degenerate descriptor,
// ErrUnknownVariant for an undeclared variant, ErrNeedTwoColumns when
// PairedColumns is requested on a single-column grid, ErrOptionViolation
// for invalid options, and ErrRetriesExhausted only on internal defect.
//
// Complexity: O(N) per attempt, O(N) memory.
func Generate(d grid.Descriptor, v Variant, opts ...Option) (Arrangement, error) {
	if d.Columns < 1 || d.Rows < 1 {
		return nil, grid.ErrBadDimensions
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := d.Tiles()
	if !o.Shuffle || n < 2 {
		return Identity(n), nil
	}

	rng := o.Rand
	if rng == nil {
		rng = NewRand(o.Seed)
	}

	switch v {
	case Classic:
		return derange(n, rng, o.MaxRetries)
	case PairedColumns:
		return shuffleColumn(d, rng)
	default:
		return nil, ErrUnknownVariant
	}
}

// derange returns a derangement of [0,n): a Fisher–Yates-style downward
// swap pass whose partner j is drawn strictly below i, so j ≠ i is forced
// at every step and the result is a single n-cycle, which cannot have
// fixed points. The zero-fixed-point invariant is still verified over the
// whole array afterwards; a failed verification discards the attempt and
// restarts from a fresh identity on a derived RNG stream.
//
// Termination: a derangement exists for every n ≥ 2 and the pass produces
// one directly, so the loop terminates on the first attempt; maxRetries is
// a safety valve whose exhaustion is a defect, reported as
// ErrRetriesExhausted, never silently swallowed.
func derange(n int, rng *rand.Rand, maxRetries int) (Arrangement, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		r := rng
		if attempt > 0 {
			r = deriveRNG(rng, uint64(attempt))
		}

		a := Identity(n)
		for i := n - 1; i > 0; i-- {
			// Partner below i: forces j ≠ i and keeps the pass a cycle.
			j := r.Intn(i)
			a[i], a[j] = a[j], a[i]
		}

		if a.FixedPoints() == 0 {
			return a, nil
		}
	}

	return nil, ErrRetriesExhausted
}

// shuffleColumn scrambles only column 1 of the grid: the tiles currently
// in the answer column are drawn out, Fisher–Yates shuffled (fixed points
// allowed), and written back; all other positions keep identity tiles.
// The prompt column (column 0) therefore stays anchored.
func shuffleColumn(d grid.Descriptor, rng *rand.Rand) (Arrangement, error) {
	positions, err := d.ColumnPositions(1)
	if err != nil {
		return nil, ErrNeedTwoColumns
	}

	a := Identity(d.Tiles())
	column := make([]int, len(positions))
	for i, pos := range positions {
		column[i] = a[pos]
	}
	shuffleIntsInPlace(column, rng)
	for i, pos := range positions {
		a[pos] = column[i]
	}

	return a, nil
}
