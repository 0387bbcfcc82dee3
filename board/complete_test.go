package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasqo/tileswap/board"
	"github.com/vasqo/tileswap/grid"
	"github.com/vasqo/tileswap/shuffle"
)

// solvedPairedBoard builds a 2×3 paired-columns board in the solved state.
func solvedPairedBoard(t *testing.T, m board.Mapping) *board.Board {
	t.Helper()
	d, err := grid.New(2, 3)
	require.NoError(t, err)

	opts := []board.Option{
		board.WithVariant(shuffle.PairedColumns),
		board.WithoutShuffle(),
	}
	if m != nil {
		opts = append(opts, board.WithMapping(m))
	}
	b, err := board.New(d, opts...)
	require.NoError(t, err)

	return b
}

//----------------------------------------------------------------------------//
// Classic completion
//----------------------------------------------------------------------------//

// TestClassic_CompleteIffIdentity walks a board out of and back into the
// identity arrangement, asserting IsComplete flips exactly with it.
func TestClassic_CompleteIffIdentity(t *testing.T) {
	d, err := grid.New(3, 3)
	require.NoError(t, err)
	b, err := board.New(d, board.WithoutShuffle())
	require.NoError(t, err)

	assert.True(t, b.IsComplete())
	assert.Equal(t, 9, b.CorrectPositionCount())
	assert.Equal(t, 1.0, b.CompletionRatio())

	require.NoError(t, b.Swap(2, 6))
	assert.False(t, b.IsComplete())
	assert.Equal(t, 7, b.CorrectPositionCount())

	require.NoError(t, b.Swap(2, 6))
	assert.True(t, b.IsComplete(), "undoing the only swap must re-solve the board")
}

// TestClassic_RowCorrect checks per-row progress on a classic board.
func TestClassic_RowCorrect(t *testing.T) {
	d, err := grid.New(3, 3)
	require.NoError(t, err)
	b, err := board.New(d, board.WithoutShuffle())
	require.NoError(t, err)

	require.NoError(t, b.Swap(3, 4)) // disturb row 1 only
	assert.True(t, b.RowCorrect(0))
	assert.False(t, b.RowCorrect(1))
	assert.True(t, b.RowCorrect(2))
	assert.False(t, b.RowCorrect(3), "out-of-range row is never correct")
}

//----------------------------------------------------------------------------//
// PairedColumns without mapping
//----------------------------------------------------------------------------//

// TestPaired_NoMapping requires the scrambled answer column to land back
// in solved order, row by row.
func TestPaired_NoMapping(t *testing.T) {
	b := solvedPairedBoard(t, nil)
	assert.True(t, b.IsComplete())

	// Cross-swap the answers of rows 0 and 2: without a mapping this is
	// wrong even though both rows still show a prompt/answer pair.
	require.NoError(t, b.Swap(1, 5))
	assert.False(t, b.IsComplete())
	assert.False(t, b.RowCorrect(0))
	assert.True(t, b.RowCorrect(1))
	assert.False(t, b.RowCorrect(2))

	require.NoError(t, b.Swap(1, 5))
	assert.True(t, b.IsComplete())
}

//----------------------------------------------------------------------------//
// PairedColumns with mapping
//----------------------------------------------------------------------------//

// TestPaired_MappingCrossSwap is the canonical indirection scenario:
// 2 columns × 3 rows, tiles [0..5] row-major, mapping {A, B, A} with rows
// 0 and 2 sharing logical group A. Cross-swapping the two "A" answers
// between their rows must still count as complete, because each row now
// faces a prompt and an answer from the same logical group.
func TestPaired_MappingCrossSwap(t *testing.T) {
	const groupA, groupB = 7, 4
	b := solvedPairedBoard(t, board.Mapping{groupA, groupB, groupA})
	assert.True(t, b.IsComplete())

	// Row 0's answer slot (pos 1) takes tile 5 (original row 2 → A);
	// row 2's answer slot (pos 5) takes tile 1 (original row 0 → A).
	require.NoError(t, b.Swap(1, 5))
	assert.True(t, b.IsComplete(), "same-group cross-swap must remain complete")
	assert.True(t, b.RowCorrect(0))
	assert.True(t, b.RowCorrect(2))

	// Physical progress still reports the displaced tiles.
	assert.Equal(t, 4, b.CorrectPositionCount())
	assert.InDelta(t, 4.0/6.0, b.CompletionRatio(), 1e-9)
}

// TestPaired_MappingDifferentGroups verifies the negative half of the
// scenario: moving an answer into a row of a different logical group
// breaks completion.
func TestPaired_MappingDifferentGroups(t *testing.T) {
	const groupA, groupB = 7, 4
	b := solvedPairedBoard(t, board.Mapping{groupA, groupB, groupA})

	// Tile 3 (original row 1 → B) into row 0 (group A): wrong.
	require.NoError(t, b.Swap(1, 3))
	assert.False(t, b.IsComplete())
	assert.False(t, b.RowCorrect(0))
	assert.False(t, b.RowCorrect(1))
	assert.True(t, b.RowCorrect(2))
}

// TestPaired_MappingJudgesPrompts verifies the correspondence rule reads
// both cells through the mapping: swapping two same-group prompts keeps
// the board complete as well.
func TestPaired_MappingJudgesPrompts(t *testing.T) {
	const groupA, groupB = 7, 4
	b := solvedPairedBoard(t, board.Mapping{groupA, groupB, groupA})

	// Prompts of rows 0 and 2 (positions 0 and 4) are both group A.
	require.NoError(t, b.Swap(0, 4))
	assert.True(t, b.IsComplete())
}

//----------------------------------------------------------------------------//
// One-shot completion hook
//----------------------------------------------------------------------------//

// TestOnComplete_FiresOncePerScramble drives a 2-tile classic board to
// completion twice around a Reset and checks the hook's one-shot contract.
func TestOnComplete_FiresOncePerScramble(t *testing.T) {
	d, err := grid.New(2, 1)
	require.NoError(t, err)

	var fired []int
	b, err := board.New(d,
		board.WithSeed(3),
		board.WithOnComplete(func(swaps int) { fired = append(fired, swaps) }),
	)
	require.NoError(t, err)
	require.Equal(t, shuffle.Arrangement{1, 0}, b.Arrangement(), "the only derangement of 2 tiles")

	require.NoError(t, b.Swap(0, 1)) // solves
	require.Equal(t, []int{1}, fired)

	require.NoError(t, b.Swap(0, 1)) // unsolves
	require.NoError(t, b.Swap(0, 1)) // solves again, same scramble
	require.Equal(t, []int{1}, fired, "the hook must not re-fire within one scramble")

	b.Reset()
	require.NoError(t, b.Swap(0, 1)) // unsolves
	require.NoError(t, b.Swap(0, 1)) // solves: re-armed hook fires with the new count
	require.Equal(t, []int{1, 2}, fired)
}

//----------------------------------------------------------------------------//
// End-to-end scenario
//----------------------------------------------------------------------------//

// TestEndToEnd_ScrambleThenSolve scrambles a 3×3 classic board, verifies
// the derangement, then repairs one position at a time by always swapping
// the lowest unsolved position with the cell holding its tile. Optimal
// pairwise repair solves any permutation in at most N-1 swaps.
func TestEndToEnd_ScrambleThenSolve(t *testing.T) {
	d, err := grid.New(3, 3)
	require.NoError(t, err)
	b, err := board.New(d, board.WithSeed(9))
	require.NoError(t, err)

	arr := b.Arrangement()
	require.Zero(t, arr.FixedPoints(), "scramble must be a derangement")

	n := d.Tiles()
	swaps := 0
	for pos := 0; pos < n; pos++ {
		cur := b.Arrangement()
		if cur[pos] == pos {
			continue
		}
		holder := -1
		for j := pos + 1; j < n; j++ {
			if cur[j] == pos {
				holder = j
				break
			}
		}
		require.NotEqual(t, -1, holder, "permutation integrity: tile %d must be somewhere", pos)
		require.NoError(t, b.Swap(pos, holder))
		swaps++
	}

	assert.True(t, b.IsComplete())
	assert.LessOrEqual(t, swaps, n-1, "optimal pairwise repair bound")
	assert.Equal(t, swaps, b.SwapCount())
}
