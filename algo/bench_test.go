package algo_test

import (
	"math/rand"
	"testing"

	"github.com/anyarr/anyarr/algo"
	"github.com/anyarr/anyarr/raw"
)

func benchInput(n int) []int64 {
	rng := rand.New(rand.NewSource(42))
	s := make([]int64, n)
	for i := range s {
		s[i] = rng.Int63()
	}
	return s
}

func BenchmarkSort1k(b *testing.B) {
	base := benchInput(1024)
	less := lessI64()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := append([]int64(nil), base...)
		algo.Sort(raw.OfSlice(&s), descI64, less)
	}
}

func BenchmarkFindIfMiss1k(b *testing.B) {
	s := benchInput(1024)
	c := raw.OfSlice(&s)
	pred := raw.Pred1Of(func(v int64) bool { return v < 0 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algo.FindIf(c, descI64, pred)
	}
}

func BenchmarkCountIf1k(b *testing.B) {
	s := benchInput(1024)
	c := raw.OfSlice(&s)
	pred := raw.Pred1Of(func(v int64) bool { return v%2 == 0 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		algo.CountIf(c, descI64, pred)
	}
}
