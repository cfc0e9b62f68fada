// Package mathutil holds the integer helpers shared by the generators and
// the answer checker.
package mathutil

import "sort"

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) is 1 so callers can always divide by the result.
func GCD(a, b int) int {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|.
// LCM with a zero argument is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return Abs(a/GCD(a, b)*b)
}

// ReduceFraction returns num/den in lowest terms with the sign carried on
// the numerator. A zero denominator yields 0/1.
func ReduceFraction(num, den int) (int, int) {
	if den == 0 {
		return 0, 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := GCD(num, den)
	return num / g, den / g
}

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimeFactorize returns the prime factorisation of n as prime -> exponent.
// n = 1 (and any n < 2) yields an empty map.
func PrimeFactorize(n int) map[int]int {
	factors := make(map[int]int)
	for d := 2; d*d <= n; d++ {
		for n%d == 0 {
			factors[d]++
			n /= d
		}
	}
	if n > 1 {
		factors[n]++
	}
	return factors
}

// SortedPrimes returns the keys of a factorisation in ascending order.
func SortedPrimes(factors map[int]int) []int {
	primes := make([]int, 0, len(factors))
	for p := range factors {
		primes = append(primes, p)
	}
	sort.Ints(primes)
	return primes
}

// Choose returns the binomial coefficient n choose k. Out-of-range k yields 0.
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if n-k < k {
		k = n - k
	}
	result := 1
	for i := 1; i <= k; i++ {
		result = result * (n - k + i) / i
	}
	return result
}

// Factorial returns n! for n >= 0; negative n yields 1.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// IsPerfectSquare reports whether n is the square of an integer.
func IsPerfectSquare(n int) bool {
	if n < 0 {
		return false
	}
	r := ISqrt(n)
	return r*r == n
}

// ISqrt returns the floor of the square root of n >= 0.
func ISqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// Divisors returns every positive divisor of n > 0 in ascending order.
func Divisors(n int) []int {
	var small, large []int
	for d := 1; d*d <= n; d++ {
		if n%d == 0 {
			small = append(small, d)
			if d != n/d {
				large = append(large, n/d)
			}
		}
	}
	for i := len(large) - 1; i >= 0; i-- {
		small = append(small, large[i])
	}
	return small
}
