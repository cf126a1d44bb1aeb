// Package random provides randomized slice helpers: an in-place uniform
// shuffle, distinct sampling and grouped random filling.
//
// What:
//
//   - Shuffle:        Fisher–Yates permutation of a slice, in place.
//   - SampleDistinct: count elements drawn without repeating a source index.
//   - FillByGroup:    a slice of fillCount cloned templates, spread as evenly
//     as possible across groups in whole multiples of groupSize, shuffled.
//
// Randomness:
//
//	Every operation draws from a *rand.Rand resolved from options.
//	WithSeed or WithRand make results reproducible; without them a fresh
//	time-seeded source is created for the call. No package-level RNG state
//	is kept.
//
// Complexity:
//
//   - Shuffle:        O(n) time, O(1) extra memory.
//   - SampleDistinct: O(count) expected draws while count stays well below n,
//     O(count) memory for the used-index set.
//   - FillByGroup:    O(fillCount + groups) time and memory.
//
// Errors:
//
//   - ErrNegativeCount:    count or fillCount below zero.
//   - ErrEmptyGroups:      no group templates supplied.
//   - ErrInvalidGroupSize: groupSize below one.
//   - ErrIndivisibleFill:  fillCount is not a multiple of groupSize.
//   - ErrPickerExhausted:  every source index has already been drawn.
//   - ErrRetryLimit:       the bounded rejection loop ran out of attempts.
package random
