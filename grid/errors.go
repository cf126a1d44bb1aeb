package grid

import "errors"

// Method tags prefixed to wrapped errors.
const (
	methodReshape   = "Reshape"
	methodPadBorder = "PadBorder"
)

var (
	// ErrInvalidColumns indicates a non-positive column count.
	ErrInvalidColumns = errors.New("grid: columns must be positive")
	// ErrNilGrid indicates a nil grid pointer.
	ErrNilGrid = errors.New("grid: grid must not be nil")
	// ErrEmptyGrid indicates a grid with no rows.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row")
)
