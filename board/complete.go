package board

import "github.com/vasqo/tileswap/shuffle"

// IsComplete reports whether the board satisfies its variant's completion
// rule. It is a pure query with no memoization: the grids in play are
// small (≤ 36 cells), so re-evaluating after every swap is negligible.
//
//   - Classic: every position holds its own tile (arrangement = identity).
//   - PairedColumns without mapping: every row holds its identity prompt
//     and answer tiles.
//   - PairedColumns with mapping: in every row, the prompt and answer
//     tiles' original rows resolve to the same logical group.
//
// A nil receiver reports false.
//
// Complexity: O(N) for Classic, O(Rows) for PairedColumns.
func (b *Board) IsComplete() bool {
	if b == nil {
		return false
	}
	for row := 0; row < b.grid.Rows; row++ {
		if !b.RowCorrect(row) {
			return false
		}
	}

	return true
}

// RowCorrect reports whether a single row satisfies the completion rule.
// For Classic every position of the row must hold its own tile; for
// PairedColumns only the prompt/answer pair is judged, through the
// mapping when one is present. Out-of-range rows report false. Hosts use
// this for per-row feedback in educational puzzles.
//
// Complexity: O(Columns).
func (b *Board) RowCorrect(row int) bool {
	if b == nil || row < 0 || row >= b.grid.Rows {
		return false
	}

	if b.variant == shuffle.Classic {
		for col := 0; col < b.grid.Columns; col++ {
			pos := b.grid.Index(col, row)
			if b.arrangement[pos] != pos {
				return false
			}
		}

		return true
	}

	left := b.arrangement[b.grid.Index(0, row)]
	right := b.arrangement[b.grid.Index(1, row)]
	if b.mapping == nil {
		// No indirection: both cells must hold their identity tiles.
		return left == b.grid.Index(0, row) && right == b.grid.Index(1, row)
	}

	// Tiles are generated row-major, so a tile's original row is
	// recoverable from its identity alone (grid.OriginalRow); the pair
	// matches iff both original rows belong to the same logical group.
	return b.mapping[b.grid.OriginalRow(left)] == b.mapping[b.grid.OriginalRow(right)]
}

// CorrectPositionCount counts positions holding their own tile
// (arrangement[i] == i), for progress display.
//
// Complexity: O(N).
func (b *Board) CorrectPositionCount() int {
	if b == nil {
		return 0
	}

	return b.arrangement.FixedPoints()
}

// CompletionRatio returns CorrectPositionCount divided by the tile count,
// in [0,1]. Note that for mapping-based paired puzzles this is a physical
// progress measure; IsComplete may hold before the ratio reaches 1.
//
// Complexity: O(N).
func (b *Board) CompletionRatio() float64 {
	if b == nil {
		return 0
	}

	return float64(b.CorrectPositionCount()) / float64(b.grid.Tiles())
}
