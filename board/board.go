package board

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tilegrid/grid"
	"github.com/katalvlaran/tilegrid/random"
)

// ErrInvalidSize indicates a board with fewer than one row or column.
var ErrInvalidSize = errors.New("board: rows and cols must be positive")

// New returns a padded rows×cols board of tiles drawn from kinds.
//
// Tiles of each kind appear in whole multiples of the group size (see
// random.GroupAllocations) and every tile and border cell is a fresh clone
// of its template. rows·cols must be a multiple of the group size.
//
// Errors: ErrInvalidSize, plus the random package sentinels
// (ErrEmptyGroups, ErrIndivisibleFill) wrapped with context.
func New[T any](rows, cols int, kinds []T, empty T, opts ...Option) (grid.Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("board.New: %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	cfg := newConfig(opts...)

	tiles, err := random.FillByGroup(rows*cols, kinds, cfg.groupSize, cfg.rand...)
	if err != nil {
		return nil, fmt.Errorf("board.New: %w", err)
	}
	g, err := grid.Reshape(tiles, cols)
	if err != nil {
		return nil, fmt.Errorf("board.New: %w", err)
	}
	if _, err = grid.PadBorder(&g, empty); err != nil {
		return nil, fmt.Errorf("board.New: %w", err)
	}

	return g, nil
}
