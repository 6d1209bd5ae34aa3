package algo_test

import (
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/stretchr/testify/require"

	"github.com/anyarr/anyarr/algo"
	"github.com/anyarr/anyarr/api"
	"github.com/anyarr/anyarr/raw"
)

var descI64 = raw.TypeOf[int64]()

func lessI64() api.Handle {
	return raw.Pred2Of(func(a, b int64) bool { return a < b })
}

func eqPair() api.Handle {
	return raw.Pred2Of(func(a, b int64) bool { return a == b })
}

func isEven() api.Handle {
	return raw.Pred1Of(func(v int64) bool { return v%2 == 0 })
}

func isOdd() api.Handle {
	return raw.Pred1Of(func(v int64) bool { return v%2 != 0 })
}

func randomInt64s(n int) []int64 {
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = int64(randomdata.Number(-1000, 1000))
	}
	return vals
}

func TestFindIf(t *testing.T) {
	s := []int64{1, 3, 5, 6, 7}
	c := raw.OfSlice(&s)

	i, ok := algo.FindIf(c, descI64, isEven())
	require.True(t, ok)
	require.Equal(t, 3, i)

	i, ok = algo.FindIf(c, descI64, raw.Pred1Of(func(v int64) bool { return v > 100 }))
	require.False(t, ok)
	require.Equal(t, len(s), i) // the not-found sentinel is the length
}

func TestAdjacentFind(t *testing.T) {
	s := []int64{3, 1, 1, 4, 5}
	c := raw.OfSlice(&s)

	i, ok := algo.AdjacentFind(c, descI64, eqPair())
	require.True(t, ok)
	require.Equal(t, 1, i)
}

func TestAdjacentFindNotFound(t *testing.T) {
	s := []int64{3, 1, 4, 1, 5}
	c := raw.OfSlice(&s)

	i, ok := algo.AdjacentFind(c, descI64, eqPair())
	require.False(t, ok)
	require.Equal(t, len(s), i)
}

func TestAdjacentFindShortInputs(t *testing.T) {
	for _, s := range [][]int64{{}, {42}} {
		s := s
		c := raw.OfSlice(&s)
		_, ok := algo.AdjacentFind(c, descI64, eqPair())
		require.False(t, ok)
	}
}

func TestSatisfy(t *testing.T) {
	s := []int64{2, 4, 6}
	c := raw.OfSlice(&s)

	require.True(t, algo.AllSatisfy(c, descI64, isEven()))
	require.True(t, algo.AnySatisfy(c, descI64, isEven()))
	require.False(t, algo.AnySatisfy(c, descI64, isOdd()))
	require.True(t, algo.NoneSatisfy(c, descI64, isOdd()))
}

func TestSatisfyEmptyArray(t *testing.T) {
	var s []int64
	c := raw.OfSlice(&s)

	require.True(t, algo.AllSatisfy(c, descI64, isEven()))
	require.False(t, algo.AnySatisfy(c, descI64, isEven()))
	require.True(t, algo.NoneSatisfy(c, descI64, isEven()))
}

// AllSatisfy(A, P) == !AnySatisfy(A, !P) and NoneSatisfy == !AnySatisfy,
// over randomized inputs.
func TestSatisfyDuality(t *testing.T) {
	for round := 0; round < 20; round++ {
		s := randomInt64s(randomdata.Number(0, 30))
		c := raw.OfSlice(&s)

		all := algo.AllSatisfy(c, descI64, isEven())
		anyNot := algo.AnySatisfy(c, descI64, isOdd())
		require.Equal(t, all, !anyNot)

		none := algo.NoneSatisfy(c, descI64, isEven())
		require.Equal(t, none, !algo.AnySatisfy(c, descI64, isEven()))
	}
}

func TestCount(t *testing.T) {
	s := []int64{1, 2, 1, 3, 1}
	c := raw.OfSlice(&s)

	one := int64(1)
	require.Equal(t, 3, algo.Count(c, descI64, raw.ValueBytes(&one)))

	nine := int64(9)
	require.Equal(t, 0, algo.Count(c, descI64, raw.ValueBytes(&nine)))
}

func TestCountIf(t *testing.T) {
	s := []int64{1, 2, 3, 4, 5, 6}
	c := raw.OfSlice(&s)

	require.Equal(t, 3, algo.CountIf(c, descI64, isEven()))
}

// Count(A, V) == CountIf(A, equal-to-V) over randomized inputs.
func TestCountEqualsCountIf(t *testing.T) {
	for round := 0; round < 20; round++ {
		s := randomInt64s(randomdata.Number(0, 50))
		c := raw.OfSlice(&s)

		v := int64(randomdata.Number(-1000, 1000))
		byValue := algo.Count(c, descI64, raw.ValueBytes(&v))
		byPred := algo.CountIf(c, descI64, raw.Pred1Of(func(e int64) bool { return e == v }))
		require.Equal(t, byValue, byPred)
	}
}

func TestMinMaxConcrete(t *testing.T) {
	s := []int64{3, 1, 4, 1, 5}
	c := raw.OfSlice(&s)

	i, ok := algo.MaxElementIndex(c, descI64, lessI64())
	require.True(t, ok)
	require.Equal(t, 4, i)

	i, ok = algo.MinElementIndex(c, descI64, lessI64())
	require.True(t, ok)
	require.Equal(t, 1, i) // first of the two equal least elements

	five := int64(5)
	r, ok := algo.Max(c, descI64, lessI64())
	require.True(t, ok)
	require.True(t, r.EqualBytes(raw.ValueBytes(&five)))

	one := int64(1)
	r, ok = algo.Min(c, descI64, lessI64())
	require.True(t, ok)
	require.True(t, r.EqualBytes(raw.ValueBytes(&one)))
}

func TestMinMaxEmptyArray(t *testing.T) {
	var s []int64
	c := raw.OfSlice(&s)

	_, ok := algo.Max(c, descI64, lessI64())
	require.False(t, ok)
	_, ok = algo.Min(c, descI64, lessI64())
	require.False(t, ok)
	_, ok = algo.MaxElementIndex(c, descI64, lessI64())
	require.False(t, ok)
	_, ok = algo.MinElementIndex(c, descI64, lessI64())
	require.False(t, ok)
}
