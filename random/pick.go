package random

import "math/rand"

// indexPicker draws indices in [0,n) without repetition by rejection
// sampling. It is valid for exactly one call of an operation.
type indexPicker struct {
	rng         *rand.Rand
	n           int
	maxAttempts int
	used        map[int]struct{}
}

// newIndexPicker returns a picker over [0,n). sizeHint pre-sizes the used set.
func newIndexPicker(rng *rand.Rand, n, maxAttempts, sizeHint int) *indexPicker {
	return &indexPicker{
		rng:         rng,
		n:           n,
		maxAttempts: maxAttempts,
		used:        make(map[int]struct{}, sizeHint),
	}
}

// pick returns an unused index and records it.
// The loop is bounded by maxAttempts; a full used set fails without drawing.
func (p *indexPicker) pick() (int, error) {
	if len(p.used) >= p.n {
		return -1, ErrPickerExhausted
	}
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		idx := p.rng.Intn(p.n)
		if _, taken := p.used[idx]; taken {
			continue
		}
		p.used[idx] = struct{}{}
		return idx, nil
	}

	return -1, ErrRetryLimit
}
