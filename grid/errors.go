package grid

import "errors"

var (
	// ErrBadDimensions indicates a descriptor with fewer than one column or row.
	ErrBadDimensions = errors.New("grid: columns and rows must each be at least 1")
	// ErrColumnIndex indicates a requested column index is out of range.
	ErrColumnIndex = errors.New("grid: column index out of range")
)
