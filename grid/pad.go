package grid

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/clone"
)

// PadBorder surrounds *g with a one-cell border of filler clones and returns
// the padded grid, which is also stored back into *g.
//
// Every existing row gains a clone at each end. A new top row as wide as the
// padded first row and a new bottom row as wide as the padded last row are
// then added. Each border cell comes from clone.Of(filler); none alias the
// filler or each other when T implements clone.Cloner. Pointer, slice and
// map fillers must implement clone.Cloner[T]; otherwise every border cell
// shares the filler.
//
// The padded rows are new slices: *g is replaced by a fresh outer slice and
// each row is rebuilt rather than widened, so a row slice taken from *g
// before the call still holds the unpadded cells. Re-read rows from the
// result.
//
// Returns ErrNilGrid for g == nil and ErrEmptyGrid for a grid with no rows;
// *g is left untouched on error.
// Complexity: O(cells) time and memory.
func PadBorder[T any](g *Grid[T], filler T) (Grid[T], error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", methodPadBorder, ErrNilGrid)
	}
	rows := *g
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", methodPadBorder, ErrEmptyGrid)
	}

	topWidth := len(rows[0]) + 2
	bottomWidth := len(rows[len(rows)-1]) + 2

	padded := make(Grid[T], 0, len(rows)+2)
	padded = append(padded, clone.N(filler, topWidth))
	for _, row := range rows {
		wide := make([]T, 0, len(row)+2)
		wide = append(wide, clone.Of(filler))
		wide = append(wide, row...)
		wide = append(wide, clone.Of(filler))
		padded = append(padded, wide)
	}
	padded = append(padded, clone.N(filler, bottomWidth))

	*g = padded
	return padded, nil
}
