package grid

import "fmt"

// Reshape lays flat out row-major into a grid with the given column count:
// flat[i] lands at row i/columns, column i%columns. The last row is shorter
// when len(flat) is not a multiple of columns; no padding is added.
// A row is created only when its first element arrives, so empty input
// yields an empty grid.
// Returns ErrInvalidColumns if columns < 1.
// Complexity: O(len(flat)) time and memory.
func Reshape[T any](flat []T, columns int) (Grid[T], error) {
	if columns < 1 {
		return nil, fmt.Errorf("%s: columns=%d: %w", methodReshape, columns, ErrInvalidColumns)
	}

	rows := 0
	if len(flat) > 0 {
		rows = (len(flat)-1)/columns + 1
	}
	g := make(Grid[T], 0, rows)
	for i, v := range flat {
		r := i / columns
		if r == len(g) {
			g = append(g, make([]T, 0, min(columns, len(flat)-i)))
		}
		// Cells arrive in column order, so append lands v at column i%columns.
		g[r] = append(g[r], v)
	}

	return g, nil
}
