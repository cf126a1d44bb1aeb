package grid_test

import (
	"testing"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cell struct {
	Kind string
}

func (c *cell) Clone() *cell {
	cp := *c
	return &cp
}

func TestPadBorder_Rectangular(t *testing.T) {
	g := grid.Grid[int]{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	got, err := grid.PadBorder(&g, 0)
	require.NoError(t, err)

	want := grid.Grid[int]{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, want, g, "the caller's grid is padded in place")
}

func TestPadBorder_InteriorPreserved(t *testing.T) {
	const rows, cols = 4, 6
	flat := make([]int, rows*cols)
	for i := range flat {
		flat[i] = i + 1
	}
	orig, err := grid.Reshape(flat, cols)
	require.NoError(t, err)
	g, err := grid.Reshape(flat, cols)
	require.NoError(t, err)

	got, err := grid.PadBorder(&g, -1)
	require.NoError(t, err)
	require.Equal(t, rows+2, got.Rows())
	require.True(t, got.IsRectangular())
	for r := range got {
		require.Len(t, got[r], cols+2)
	}
	for r := 0; r < rows; r++ {
		assert.Equal(t, orig[r], got[r+1][1:cols+1])
	}
	for c := 0; c < cols+2; c++ {
		assert.Equal(t, -1, got[0][c])
		assert.Equal(t, -1, got[rows+1][c])
	}
	for r := 0; r < rows+2; r++ {
		assert.Equal(t, -1, got[r][0])
		assert.Equal(t, -1, got[r][cols+1])
	}
}

func TestPadBorder_DistinctClones(t *testing.T) {
	filler := &cell{Kind: "empty"}
	g := grid.Grid[*cell]{
		{{Kind: "a"}, {Kind: "b"}},
		{{Kind: "c"}, {Kind: "d"}},
	}
	interior := map[*cell]bool{g[0][0]: true, g[0][1]: true, g[1][0]: true, g[1][1]: true}

	got, err := grid.PadBorder(&g, filler)
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())

	seen := map[*cell]bool{}
	for r, row := range got {
		require.Len(t, row, 4)
		for c, p := range row {
			if interior[p] {
				continue
			}
			require.NotSame(t, filler, p, "border cell (%d,%d) aliases the filler", r, c)
			require.False(t, seen[p], "border cell (%d,%d) aliases another border cell", r, c)
			require.Equal(t, "empty", p.Kind)
			seen[p] = true
		}
	}
	require.Len(t, seen, 12)

	got[0][0].Kind = "wall"
	assert.Equal(t, "empty", filler.Kind)
	assert.Equal(t, "empty", got[0][1].Kind)
}

func TestPadBorder_SingleRow(t *testing.T) {
	g := grid.Grid[string]{{"x", "y"}}
	got, err := grid.PadBorder(&g, ".")
	require.NoError(t, err)
	assert.Equal(t, grid.Grid[string]{
		{".", ".", ".", "."},
		{".", "x", "y", "."},
		{".", ".", ".", "."},
	}, got)
}

// TestPadBorder_Ragged pins the first/last-row sizing of the synthetic rows
// for inputs whose rows differ in length.
func TestPadBorder_Ragged(t *testing.T) {
	g := grid.Grid[int]{
		{1},
		{2, 2, 2},
		{3, 3},
	}
	got, err := grid.PadBorder(&g, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Grid[int]{
		{0, 0, 0},
		{0, 1, 0},
		{0, 2, 2, 2, 0},
		{0, 3, 3, 0},
		{0, 0, 0, 0},
	}, got)
	assert.False(t, got.IsRectangular())
}

func TestPadBorder_Errors(t *testing.T) {
	_, err := grid.PadBorder[int](nil, 0)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	empty := grid.Grid[int]{}
	_, err = grid.PadBorder(&empty, 0)
	require.ErrorIs(t, err, grid.ErrEmptyGrid)
	require.Empty(t, empty)
}

func TestPadBorder_EmptyRows(t *testing.T) {
	g := grid.Grid[int]{{}}
	got, err := grid.PadBorder(&g, 7)
	require.NoError(t, err)
	assert.Equal(t, grid.Grid[int]{{7, 7}, {7, 7}, {7, 7}}, got)
}

func TestPadBorder_RowsAreRebuilt(t *testing.T) {
	g := grid.Grid[int]{{1, 2}, {3, 4}}
	oldRow := g[0]

	got, err := grid.PadBorder(&g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, oldRow, "rows held before the call are not widened")
	assert.Equal(t, []int{0, 1, 2, 0}, got[1])
	assert.Equal(t, []int{0, 1, 2, 0}, g[1])
}

func TestErrorContext(t *testing.T) {
	_, err := grid.Reshape([]int{1}, 0)
	require.ErrorIs(t, err, grid.ErrInvalidColumns)
	assert.Contains(t, err.Error(), "Reshape: columns=0")

	_, err = grid.PadBorder[int](nil, 0)
	require.ErrorIs(t, err, grid.ErrNilGrid)
	assert.Contains(t, err.Error(), "PadBorder: ")
}
