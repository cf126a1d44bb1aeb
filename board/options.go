package board

import (
	"math/rand"

	"github.com/katalvlaran/tilegrid/random"
)

// Option customizes New.
type Option func(*config)

type config struct {
	groupSize int
	rand      []random.Option
}

// WithGroupSize sets how many tiles of a kind form one group.
// Panics if n < 1.
func WithGroupSize(n int) Option {
	if n < 1 {
		panic("board: WithGroupSize(n<1)")
	}
	return func(c *config) {
		c.groupSize = n
	}
}

// WithSeed makes tile placement reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rand = append(c.rand, random.WithSeed(seed))
	}
}

// WithRand supplies the RNG used for tile placement. Panics on nil.
func WithRand(r *rand.Rand) Option {
	opt := random.WithRand(r)
	return func(c *config) {
		c.rand = append(c.rand, opt)
	}
}

func newConfig(opts ...Option) config {
	cfg := config{groupSize: random.DefaultGroupSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
