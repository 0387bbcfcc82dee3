package grid

// Descriptor defines the row/column decomposition of a tile-swap board.
// It is a plain value type and is immutable for the lifetime of any board
// built on it; changing difficulty means constructing a new Descriptor.
//
// Positions and tile identities are linear indices in [0, Tiles()),
// laid out row-major: position = row*Columns + col.
type Descriptor struct {
	Columns, Rows int
}

// New constructs a Descriptor, validating that both dimensions are ≥ 1.
// Returns ErrBadDimensions otherwise.
// Complexity: O(1).
func New(columns, rows int) (Descriptor, error) {
	if columns < 1 || rows < 1 {
		return Descriptor{}, ErrBadDimensions
	}

	return Descriptor{Columns: columns, Rows: rows}, nil
}

// Tiles returns the total cell count Columns×Rows.
// Complexity: O(1).
func (d Descriptor) Tiles() int {
	return d.Columns * d.Rows
}

// Index maps (col, row) to its row-major linear position: row*Columns + col.
// Complexity: O(1).
func (d Descriptor) Index(col, row int) int {
	return row*d.Columns + col
}

// Coordinate converts a linear position back to (col, row).
// Complexity: O(1).
func (d Descriptor) Coordinate(idx int) (col, row int) {
	return idx % d.Columns, idx / d.Columns
}

// InBounds reports whether idx is a valid linear position on this grid.
// Complexity: O(1).
func (d Descriptor) InBounds(idx int) bool {
	return idx >= 0 && idx < d.Tiles()
}

// OriginalRow recovers the row a tile was generated in from its identity
// alone: tileID / Columns. This relies on the content generator slicing
// tiles in row-major order; completion rules that compare "original rows"
// of two tiles depend on this contract.
// Complexity: O(1).
func (d Descriptor) OriginalRow(tileID int) int {
	return tileID / d.Columns
}

// ColumnPositions returns the linear positions of every cell in column col,
// ordered top to bottom. Returns ErrColumnIndex if col is out of range.
// Complexity: O(Rows).
func (d Descriptor) ColumnPositions(col int) ([]int, error) {
	if col < 0 || col >= d.Columns {
		return nil, ErrColumnIndex
	}
	positions := make([]int, d.Rows)
	for row := 0; row < d.Rows; row++ {
		positions[row] = d.Index(col, row)
	}

	return positions, nil
}
