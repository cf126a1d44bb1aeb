package random

import "fmt"

const methodSampleDistinct = "SampleDistinct"

// SampleDistinct returns count elements of s, never drawing the same source
// index twice. Elements come back in draw order.
//
// When count >= len(s) the whole of s is shuffled in place and s itself is
// returned, so the result has len(s) elements rather than count.
//
// Returns ErrNegativeCount for count < 0, and wraps ErrRetryLimit if the
// bounded rejection loop gives up (see WithMaxAttempts).
func SampleDistinct[T any](s []T, count int, opts ...Option) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%s: count=%d: %w", methodSampleDistinct, count, ErrNegativeCount)
	}
	cfg := newConfig(opts...)

	if count >= len(s) {
		return shuffleWith(cfg.rng, s), nil
	}

	// count < len(s) here, so the used set never fills up and every pick has
	// at least len(s)-count free indices to land on.
	p := newIndexPicker(cfg.rng, len(s), cfg.attemptBudget(len(s)), count)
	out := make([]T, 0, count)
	for len(out) < count {
		idx, err := p.pick()
		if err != nil {
			return nil, fmt.Errorf("%s: pick %d of %d: %w", methodSampleDistinct, len(out)+1, count, err)
		}
		out = append(out, s[idx])
	}

	return out, nil
}
