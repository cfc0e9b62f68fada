package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt_Inclusive(t *testing.T) {
	r := New(1)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := r.Int(3, 7)
		require.GreaterOrEqual(t, n, 3)
		require.LessOrEqual(t, n, 7)
		seen[n] = true
	}
	assert.Len(t, seen, 5, "every value in [3, 7] should appear")
}

func TestInt_SingleValue(t *testing.T) {
	r := New(2)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 4, r.Int(4, 4))
	}
}

func TestInt_PanicsOnInvertedRange(t *testing.T) {
	assert.Panics(t, func() { New(3).Int(5, 4) })
}

func TestNew_Reproducible(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
	}
	assert.Equal(t, uint64(42), a.Seed())
}

func TestRead_Reproducible(t *testing.T) {
	p1 := make([]byte, 16)
	p2 := make([]byte, 16)
	_, err := New(9).Read(p1)
	require.NoError(t, err)
	_, err = New(9).Read(p2)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestPickWeighted_ZeroTotalFallsBackToLast(t *testing.T) {
	r := New(5)
	items := []Weighted[string]{{"a", 0}, {"b", 0}, {"c", 0}}
	for i := 0; i < 20; i++ {
		assert.Equal(t, "c", PickWeighted(r, items))
	}
}

func TestPickWeighted_SkipsZeroWeights(t *testing.T) {
	r := New(6)
	items := []Weighted[string]{{"a", 0}, {"b", 1}, {"c", 0}}
	for i := 0; i < 200; i++ {
		assert.Equal(t, "b", PickWeighted(r, items))
	}
}

func TestPickWeighted_Distribution(t *testing.T) {
	r := New(7)
	items := []Weighted[string]{{"rare", 1}, {"common", 9}}
	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[PickWeighted(r, items)]++
	}
	assert.InDelta(t, 9000, counts["common"], 400)
}

func TestDigit_Weighted(t *testing.T) {
	r := New(8)
	w := make([]float64, 10)
	w[7] = 1
	for i := 0; i < 100; i++ {
		assert.Equal(t, 7, r.Digit(w))
	}
}

func TestDigit_UniformWithoutWeights(t *testing.T) {
	r := New(10)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		d := r.Digit(nil)
		require.True(t, d >= 0 && d <= 9)
		seen[d] = true
	}
	assert.Len(t, seen, 10)
}

func TestShuffle_Permutation(t *testing.T) {
	r := New(11)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(r, items)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)
}

func TestSample_Distinct(t *testing.T) {
	r := New(12)
	got := Sample(r, []int{1, 2, 3, 4, 5}, 3)
	require.Len(t, got, 3)
	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestPick_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Pick[int](New(1), nil) })
}

func TestNonZero(t *testing.T) {
	r := New(13)
	for i := 0; i < 500; i++ {
		assert.NotZero(t, r.NonZero(-2, 2))
	}
}
