// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/vasqo/tileswap/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Coordinate round trip
////////////////////////////////////////////////////////////////////////////////

// ExampleDescriptor_Coordinate demonstrates the row-major layout of a 3×2
// board: positions 0..5 sweep left-to-right, top-to-bottom.
func ExampleDescriptor_Coordinate() {
	d, _ := grid.New(3, 2)
	for idx := 0; idx < d.Tiles(); idx++ {
		col, row := d.Coordinate(idx)
		fmt.Printf("position %d → (col=%d,row=%d)\n", idx, col, row)
	}

	// Output:
	// position 0 → (col=0,row=0)
	// position 1 → (col=1,row=0)
	// position 2 → (col=2,row=0)
	// position 3 → (col=0,row=1)
	// position 4 → (col=1,row=1)
	// position 5 → (col=2,row=1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: OriginalRow
////////////////////////////////////////////////////////////////////////////////

// ExampleDescriptor_OriginalRow shows recovering a tile's source row from
// its identity on a 2-column educational board.
func ExampleDescriptor_OriginalRow() {
	d, _ := grid.New(2, 3)
	for _, tile := range []int{0, 1, 4, 5} {
		fmt.Printf("tile %d was sliced from row %d\n", tile, d.OriginalRow(tile))
	}

	// Output:
	// tile 0 was sliced from row 0
	// tile 1 was sliced from row 0
	// tile 4 was sliced from row 2
	// tile 5 was sliced from row 2
}
