// Package tilegrid is a small toolbox of slice and grid transformations for
// laying out tile boards: shuffling, distinct sampling, grouped random
// filling, reshaping a flat slice into rows and padding a grid with a border.
//
// Everything lives in subpackages:
//
//	clone/  — the copy capability used when templates are placed
//	random/ — Shuffle, SampleDistinct, FillByGroup (seedable via options)
//	grid/   — Grid[T], Reshape, PadBorder, Flatten
//	board/  — composes the above into a padded tile-matching board
//
// Quick ASCII example (a 2×3 board of pairs, padded with "."):
//
//	. . . . .
//	. a b a .
//	. b c c .
//	. . . . .
//
// All operations are synchronous and keep no package-level state. Shuffle
// and PadBorder mutate their input; copy first when the original is needed.
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
