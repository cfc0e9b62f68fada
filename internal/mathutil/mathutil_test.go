package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{12, 18, 6},
		{-12, 18, 6},
		{7, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GCD(tt.a, tt.b), "GCD(%d, %d)", tt.a, tt.b)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 36, LCM(12, 18))
	assert.Equal(t, 21, LCM(-3, 7))
	assert.Equal(t, 0, LCM(0, 7))
}

func TestReduceFraction(t *testing.T) {
	tests := []struct {
		num, den         int
		wantNum, wantDen int
	}{
		{6, 8, 3, 4},
		{-6, 8, -3, 4},
		{6, -8, -3, 4},
		{-6, -8, 3, 4},
		{0, 5, 0, 1},
		{5, 0, 0, 1},
		{7, 1, 7, 1},
	}
	for _, tt := range tests {
		n, d := ReduceFraction(tt.num, tt.den)
		assert.Equal(t, tt.wantNum, n, "ReduceFraction(%d, %d) num", tt.num, tt.den)
		assert.Equal(t, tt.wantDen, d, "ReduceFraction(%d, %d) den", tt.num, tt.den)
	}
}

func TestReduceFraction_Idempotent(t *testing.T) {
	for p := -30; p <= 30; p++ {
		for q := -30; q <= 30; q++ {
			if q == 0 {
				continue
			}
			n1, d1 := ReduceFraction(p, q)
			n2, d2 := ReduceFraction(n1, d1)
			if n1 != n2 || d1 != d2 {
				t.Fatalf("ReduceFraction not idempotent for %d/%d: %d/%d then %d/%d", p, q, n1, d1, n2, d2)
			}
		}
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 97, 7919}
	for _, p := range primes {
		assert.True(t, IsPrime(p), "%d", p)
	}
	for _, n := range []int{-7, 0, 1, 4, 9, 91, 7917} {
		assert.False(t, IsPrime(n), "%d", n)
	}
}

func TestPrimeFactorize(t *testing.T) {
	assert.Empty(t, PrimeFactorize(1))
	assert.Equal(t, map[int]int{2: 3, 3: 2, 5: 1}, PrimeFactorize(360))
	assert.Equal(t, map[int]int{97: 1}, PrimeFactorize(97))
	assert.Equal(t, []int{2, 3, 5}, SortedPrimes(PrimeFactorize(360)))
}

func TestChoose(t *testing.T) {
	assert.Equal(t, 10, Choose(5, 2))
	assert.Equal(t, 1, Choose(5, 0))
	assert.Equal(t, 1, Choose(5, 5))
	assert.Equal(t, 0, Choose(5, 6))
	assert.Equal(t, 0, Choose(5, -1))
	assert.Equal(t, 184756, Choose(20, 10))
}

func TestISqrt(t *testing.T) {
	assert.Equal(t, 12, ISqrt(144))
	assert.Equal(t, 12, ISqrt(168))
	assert.True(t, IsPerfectSquare(169))
	assert.False(t, IsPerfectSquare(170))
}

func TestDivisors(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, Divisors(12))
	assert.Equal(t, []int{1, 3, 9}, Divisors(9))
}
