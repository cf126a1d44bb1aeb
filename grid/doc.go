// Package grid reshapes flat slices into 2D grids and pads grids with a
// border of cloned filler cells.
//
// What:
//
//   - Grid[T] is a slice of rows, each row a slice of cells.
//   - Reshape lays a flat slice out row-major with a fixed column count.
//   - PadBorder wraps a grid in a one-cell border of filler clones, in place.
//   - Flatten and IsRectangular support round-trip checks.
//
// Example (PadBorder with filler 0):
//
//	            0 0 0 0 0
//	1 1 1       0 1 1 1 0
//	1 1 1   =>  0 1 1 1 0
//	1 1 1       0 1 1 1 0
//	            0 0 0 0 0
//
// Ragged grids:
//
//	PadBorder sizes the new top row from the first row and the new bottom
//	row from the last row. Inputs whose rows differ in length are padded
//	without complaint and stay ragged; check IsRectangular first if that
//	matters.
//
// Errors:
//
//   - ErrInvalidColumns: Reshape called with columns < 1.
//   - ErrNilGrid:        PadBorder called with a nil *Grid.
//   - ErrEmptyGrid:      PadBorder called on a grid with no rows.
package grid
