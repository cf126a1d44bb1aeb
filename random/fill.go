// SPDX-License-Identifier: MIT
// Package: tilegrid/random
//
// fill.go — grouped random filling.
//
// Allocation model:
//   perGroup = ((fillCount / G) / groupSize) * groupSize
//   rest     = fillCount - perGroup*G
//   group i receives perGroup + groupSize while i < ceil(rest/groupSize),
//   perGroup otherwise, so the remainder lands on the earliest groups in
//   whole groupSize chunks.
//
// Exactness (why sum == fillCount once fillCount%groupSize == 0):
//   Let q = fillCount/G and d = q - perGroup, so 0 ≤ d < groupSize.
//   rest = fillCount%G + d·G ≤ (G-1) + (groupSize-1)·G < groupSize·G.
//   perGroup is a multiple of groupSize, hence so is rest, and exactly
//   rest/groupSize (< G) groups get one extra chunk: the extras add up to rest.
//   Without the divisibility precondition the last chunk overshoots by
//   groupSize - rest%groupSize; FillByGroup rejects that case.

package random

import (
	"fmt"

	"github.com/katalvlaran/tilegrid/clone"
)

const methodFillByGroup = "FillByGroup"

// DefaultGroupSize is the conventional group size: items come in pairs.
const DefaultGroupSize = 2

// GroupAllocations returns how many items each of groupCount groups receives
// for a fill of fillCount items in chunks of groupSize. It performs no
// validation beyond returning nil for groupCount < 1 or groupSize < 1, so
// the raw model can be inspected for any input.
func GroupAllocations(fillCount, groupCount, groupSize int) []int {
	if groupCount < 1 || groupSize < 1 {
		return nil
	}
	perGroup := fillCount / groupCount / groupSize * groupSize
	rest := fillCount - perGroup*groupCount

	// Group i gets a chunk while rest/groupSize > i (real division), i.e. the
	// first ceil(rest/groupSize) groups; none when rest <= 0.
	extra := 0
	if rest > 0 {
		extra = (rest-1)/groupSize + 1
	}

	counts := make([]int, groupCount)
	for i := range counts {
		counts[i] = perGroup
		if i < extra {
			counts[i] += groupSize
		}
	}

	return counts
}

// FillByGroup builds a slice of exactly fillCount items made of clones of the
// group templates, distributed by GroupAllocations and then shuffled.
// Every placed item is produced by clone.Of.
// Pointer, slice and map templates must implement clone.Cloner[T]; without
// it clone.Of returns the template itself and all placements share it.
//
// Validation order: ErrNegativeCount, ErrEmptyGroups, ErrInvalidGroupSize,
// ErrIndivisibleFill. Nothing is allocated on error.
// Complexity: O(fillCount + len(groups)) time and memory.
func FillByGroup[T any](fillCount int, groups []T, groupSize int, opts ...Option) ([]T, error) {
	if fillCount < 0 {
		return nil, fmt.Errorf("%s: fillCount=%d: %w", methodFillByGroup, fillCount, ErrNegativeCount)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFillByGroup, ErrEmptyGroups)
	}
	if groupSize < 1 {
		return nil, fmt.Errorf("%s: groupSize=%d: %w", methodFillByGroup, groupSize, ErrInvalidGroupSize)
	}
	if fillCount%groupSize != 0 {
		return nil, fmt.Errorf("%s: fillCount=%d, groupSize=%d: %w",
			methodFillByGroup, fillCount, groupSize, ErrIndivisibleFill)
	}
	cfg := newConfig(opts...)

	out := make([]T, 0, fillCount)
	for i, n := range GroupAllocations(fillCount, len(groups), groupSize) {
		for k := 0; k < n; k++ {
			out = append(out, clone.Of(groups[i]))
		}
	}

	return shuffleWith(cfg.rng, out), nil
}
