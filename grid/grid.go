package grid

// Grid is an ordered sequence of rows; Grid[r][c] is the cell at row r,
// column c. Rows may differ in length while a grid is being built.
type Grid[T any] [][]T

// Rows returns the number of rows.
func (g Grid[T]) Rows() int {
	return len(g)
}

// IsRectangular reports whether every row has the same length.
// An empty grid is rectangular.
func (g Grid[T]) IsRectangular() bool {
	for _, row := range g {
		if len(row) != len(g[0]) {
			return false
		}
	}

	return true
}

// Flatten returns the cells in row-major order as a new slice.
// Complexity: O(cells) time and memory.
func (g Grid[T]) Flatten() []T {
	n := 0
	for _, row := range g {
		n += len(row)
	}
	out := make([]T, 0, n)
	for _, row := range g {
		out = append(out, row...)
	}

	return out
}
