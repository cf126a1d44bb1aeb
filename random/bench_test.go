package random_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilegrid/random"
)

func BenchmarkShuffle(b *testing.B) {
	s := make([]int, 10_000)
	for i := range s {
		s[i] = i
	}
	r := random.WithRand(rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		random.Shuffle(s, r)
	}
}

func BenchmarkSampleDistinct(b *testing.B) {
	s := make([]int, 10_000)
	for i := range s {
		s[i] = i
	}
	r := random.WithRand(rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = random.SampleDistinct(s, 1_000, r)
	}
}

func BenchmarkFillByGroup(b *testing.B) {
	groups := []int{1, 2, 3, 4, 5, 6, 7, 8}
	r := random.WithRand(rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = random.FillByGroup(1_000, groups, 2, r)
	}
}
