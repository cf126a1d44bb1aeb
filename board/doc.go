// Package board lays out a tile-matching board: tiles of each kind come in
// whole groups (pairs by default), are placed at random, arranged into rows
// and wrapped in a one-cell border of empty cells so that connecting paths
// may run around the outside of the board.
//
// Pipeline:
//
//	random.FillByGroup(rows·cols, kinds, groupSize)
//	  → grid.Reshape(cols)
//	  → grid.PadBorder(empty)
//
// The returned grid has rows+2 rows of cols+2 cells.
package board
