// SPDX-License-Identifier: MIT
// Package: tilegrid/random
//
// errors.go — sentinel errors for the random package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Call sites attach context with %w, never by redefining a sentinel.
//   • Validation happens before any caller-visible mutation.

package random

import "errors"

// ErrNegativeCount indicates a requested count (sample size or fill size)
// below zero.
var ErrNegativeCount = errors.New("random: count must be non-negative")

// ErrEmptyGroups indicates FillByGroup was called without group templates.
var ErrEmptyGroups = errors.New("random: at least one group is required")

// ErrInvalidGroupSize indicates a group size below one.
var ErrInvalidGroupSize = errors.New("random: group size must be positive")

// ErrIndivisibleFill indicates a fill size that cannot be split into whole
// groups of groupSize items.
var ErrIndivisibleFill = errors.New("random: fill count must be a multiple of group size")

// ErrPickerExhausted indicates every index of the source was already used.
var ErrPickerExhausted = errors.New("random: no unused index left")

// ErrRetryLimit indicates rejection sampling exceeded its attempt budget
// without finding an unused index.
var ErrRetryLimit = errors.New("random: retry limit exceeded")
