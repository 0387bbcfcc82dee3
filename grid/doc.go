// Package grid provides the immutable grid descriptor underlying a
// tile-swap board: a (columns, rows) pair plus the row-major index
// arithmetic that ties a tile's identity to a physical position.
//
// What
//
//   - Descriptor: validated (Columns, Rows) dimensions, Columns ≥ 1 and
//     Rows ≥ 1, immutable after construction.
//   - Index(col, row) / Coordinate(idx): row-major linear index ↔
//     (column, row) conversion, idx = row*Columns + col.
//   - OriginalRow(tileID): recover the row a tile was sliced from, using
//     only its identity. Valid because the content generator emits tiles
//     in row-major order; that ordering is part of its contract.
//   - ColumnPositions(col): the linear positions forming one column, used
//     by restricted shuffles that scramble a single column.
//
// Why
//
//   - Every higher layer (shuffle generation, completion evaluation,
//     progress reporting) speaks in linear positions; this package is the
//     single source of truth for how positions map to geometry.
//   - Resizing a puzzle is not a mutation: hosts construct a new
//     Descriptor and a new board. Keeping the descriptor a small value
//     type makes that cheap and obvious.
//
// Complexity
//
//   - All operations are O(1) except ColumnPositions, which is O(Rows).
//
// Errors
//
//   - ErrBadDimensions if either dimension is < 1.
//   - ErrColumnIndex if a requested column does not exist.
package grid
