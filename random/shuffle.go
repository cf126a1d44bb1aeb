package random

import "math/rand"

// Shuffle permutes s uniformly at random in place and returns s.
// Copy s beforehand if the original order is still needed.
// Complexity: O(len(s)) time, O(1) extra memory.
func Shuffle[T any](s []T, opts ...Option) []T {
	cfg := newConfig(opts...)

	return shuffleWith(cfg.rng, s)
}

// shuffleWith is the Fisher–Yates (Knuth) shuffle: walk i from the end down
// to 1 and swap s[i] with a uniformly chosen s[j], j in [0,i].
func shuffleWith[T any](rng *rand.Rand, s []T) []T {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}

	return s
}
