// SPDX-License-Identifier: MIT
// Package: tilegrid/random
//
// options.go — functional options for the random package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     the operations themselves never panic.
//   • Determinism is explicit: seed with WithSeed or pass WithRand.

package random

import (
	"math/rand"
	"time"
)

// attemptsPerSlot scales the default rejection-sampling budget by the source
// length. A pick that still has at least one free index fails to find it in
// 64·n uniform draws with probability below e^-64.
const attemptsPerSlot = 64

// Option customizes a single call by mutating its config before use.
type Option func(*config)

// WithRand supplies an explicit RNG. Panics on nil.
// The RNG is not safe for concurrent use; share it across goroutines only
// under external synchronization.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("random: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed. The RNG is created anew
// each time the option is applied, so reusing one WithSeed option across
// calls replays the same draws; use WithRand to continue a stream.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts caps the number of draws a single index pick may spend.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("random: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// config aggregates the knobs of one call. It is passed by value.
type config struct {
	// rng is never nil after newConfig.
	rng *rand.Rand
	// maxAttempts is the per-pick draw budget; 0 means attemptsPerSlot·n.
	maxAttempts int
}

// newConfig applies opts in order (last wins) and fills in a time-seeded
// RNG when none was given.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}

// attemptBudget resolves the per-pick budget for a source of length n.
func (c config) attemptBudget(n int) int {
	if c.maxAttempts > 0 {
		return c.maxAttempts
	}

	return attemptsPerSlot * n
}
