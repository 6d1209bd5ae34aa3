package algo_test

import (
	"math/rand"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/anyarr/anyarr/algo"
	"github.com/anyarr/anyarr/raw"
)

func sampleInt64s(t *testing.T, input []int64, k int, seed int64) (samples, others []int64) {
	t.Helper()
	c := raw.OfSlice(&input)
	sc := raw.OfSlice(&samples)
	oc := raw.OfSlice(&others)
	algo.RandomSample(c, descI64, k, sc, oc, rand.New(rand.NewSource(seed)))
	return samples, others
}

func TestRandomSamplePartition(t *testing.T) {
	for round := 0; round < 20; round++ {
		n := randomdata.Number(0, 40)
		k := randomdata.Number(0, 50)
		input := randomInt64s(n)

		samples, others := sampleInt64s(t, input, k, int64(round))

		require.Len(t, samples, min(k, n))
		require.Equal(t, n, len(samples)+len(others))
	}
}

func TestRandomSamplePreservesOrder(t *testing.T) {
	input := make([]int64, 50)
	for i := range input {
		input[i] = int64(i)
	}

	samples, others := sampleInt64s(t, input, 20, 1)

	require.True(t, isIncreasing(samples))
	require.True(t, isIncreasing(others))
}

func TestRandomSampleSelectsAllWhenKExceedsLength(t *testing.T) {
	input := []int64{1, 2, 3}

	samples, others := sampleInt64s(t, input, 10, 1)

	require.Equal(t, []int64{1, 2, 3}, samples)
	require.Empty(t, others)
}

func TestRandomSampleZeroOrNegative(t *testing.T) {
	input := []int64{1, 2, 3}

	samples, others := sampleInt64s(t, input, 0, 1)
	require.Empty(t, samples)
	require.Equal(t, []int64{1, 2, 3}, others)

	samples, others = sampleInt64s(t, input, -5, 1)
	require.Empty(t, samples)
	require.Len(t, others, 3)
}

func TestRandomSampleEmptyInput(t *testing.T) {
	samples, others := sampleInt64s(t, nil, 3, 1)
	require.Empty(t, samples)
	require.Empty(t, others)
}

// every element must be selectable: over many seeds each position shows up
// in the sample at least once
func TestRandomSampleCoversAllPositions(t *testing.T) {
	input := []int64{0, 1, 2, 3, 4}
	seen := make(map[int64]bool)

	for seed := int64(0); seed < 200; seed++ {
		samples, _ := sampleInt64s(t, input, 2, seed)
		require.Len(t, samples, 2)
		for _, v := range samples {
			seen[v] = true
		}
	}
	require.Len(t, seen, len(input))
}

func isIncreasing(s []int64) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] >= s[i] {
			return false
		}
	}
	return true
}
