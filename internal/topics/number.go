package topics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

func rounding(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1, 2:
		unit := 10
		n := r.Int(11, 999)
		if level == 2 {
			unit = rng.Pick(r, []int{100, 1000})
			n = r.Int(1001, 99999)
		}
		rounded := (n + unit/2) / unit * unit
		return intQuestion(r, Rounding, level,
			fmt.Sprintf("Round %d to the nearest %d.", n, unit), rounded,
			fmt.Sprintf("Look at the digit after the %ds: %d rounds to %d.", unit, n, rounded)), nil
	}

	// Levels 3 and 4 round a three-decimal-place value held as thousandths.
	dp := level - 2
	m := r.Int(1000, 99999)
	if m%10 == 0 {
		m++
	}
	drop := 1
	for i := dp; i < 3; i++ {
		drop *= 10
	}
	q := (m + drop/2) / drop
	ans := scaled(q, -dp)
	text := fmt.Sprintf("Round %s to %d decimal place%s.", scaled(m, -3), dp, plural(dp))
	return newQuestion(r, Rounding, level, text, ans,
		answer.New(ans, answer.WithNumeric(0)),
		fmt.Sprintf("%s rounded to %d d.p. is %s.", scaled(m, -3), dp, ans)), nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func significantFigures(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		var digits, exp, sf int
		switch level {
		case 1:
			digits, exp, sf = r.Int(3, 4), 0, 1
		case 2:
			digits, exp, sf = 4, rng.Pick(r, []int{0, -2}), 2
		default:
			digits, exp, sf = 5, rng.Pick(r, []int{-7, -6, -3}), 3
		}
		lo := 1
		for i := 1; i < digits; i++ {
			lo *= 10
		}
		m := r.Int(lo, lo*10-1)
		if m%10 == 0 {
			continue
		}
		drop := 1
		for i := sf; i < digits; i++ {
			drop *= 10
		}
		q := (m + drop/2) / drop
		// 9.96 to 2 s.f. is 10, which would show an extra figure.
		if digitCount(q) != sf {
			continue
		}
		p := exp + digits - sf
		ans := scaled(q, p)
		original := scaled(m, exp)
		return newQuestion(r, SignificantFigs, level,
			fmt.Sprintf("Round %s to %d significant figure%s.", original, sf, plural(sf)), ans,
			answer.New(ans, answer.WithNumeric(0)),
			fmt.Sprintf("Count %d figure%s from the first non-zero digit: %s.", sf, plural(sf), ans)), nil
	}
	return newQuestion(r, SignificantFigs, level, "Round 0.04567 to 2 significant figures.", "0.046",
		answer.New("0.046", answer.WithNumeric(0)), "The first two significant figures are 4 and 5; the next digit 6 rounds up."), nil
}

// coprimeMultiples returns g·xs where the xs share no common factor.
func coprimeMultiples(r *rng.Rand, g, count, maxFactor int) ([]int, bool) {
	xs := make([]int, count)
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		common := 0
		distinct := map[int]bool{}
		for i := range xs {
			xs[i] = r.Int(1, maxFactor)
			distinct[xs[i]] = true
			common = gcdOrFirst(common, xs[i])
		}
		if common == 1 && len(distinct) == count {
			out := make([]int, count)
			for i, x := range xs {
				out[i] = g * x
			}
			return out, true
		}
	}
	return nil, false
}

func gcdOrFirst(acc, n int) int {
	if acc == 0 {
		return n
	}
	return mathutil.GCD(acc, n)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) <= 2 {
		return strings.Join(parts, " and ")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}

func hcf(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var g, count, maxFactor int
	switch level {
	case 1:
		g, count, maxFactor = r.Int(2, 10), 2, 6
	case 2:
		g, count, maxFactor = r.Int(2, 15), 2, 12
	default:
		g, count, maxFactor = r.Int(2, 12), 3, 10
	}
	nums, ok := coprimeMultiples(r, g, count, maxFactor)
	if !ok {
		nums = rng.Pick(r, [][]int{{12, 18}, {24, 36}, {45, 60}, {16, 40, 56}})
	}
	h := 0
	for _, n := range nums {
		h = gcdOrFirst(h, n)
	}
	return intQuestion(r, HCF, level,
		fmt.Sprintf("Find the highest common factor of %s.", joinInts(nums)), h,
		fmt.Sprintf("%d is the largest number that divides %s exactly.", h, joinInts(nums))), nil
}

func lcm(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var nums []int
	switch level {
	case 1:
		nums = []int{r.Int(2, 12), r.Int(2, 12)}
	case 2:
		nums = []int{r.Int(4, 30), r.Int(4, 30)}
	default:
		nums = []int{r.Int(2, 12), r.Int(2, 12), r.Int(2, 12)}
	}
	// Equal numbers make a trivial question.
	for attempt := 0; attempt < problemgen.MaxAttempts && nums[0] == nums[1]; attempt++ {
		nums[1] = r.Int(2, 12)
	}
	if nums[0] == nums[1] {
		nums[1] = nums[0] + 1
	}
	l := 1
	for _, n := range nums {
		l = mathutil.LCM(l, n)
	}
	return intQuestion(r, LCM, level,
		fmt.Sprintf("Find the lowest common multiple of %s.", joinInts(nums)), l,
		fmt.Sprintf("%d is the smallest number that %s all divide into.", l, joinInts(nums))), nil
}

// factorisationString renders a prime factor map as "2³ × 3 × 5".
func factorisationString(factors map[int]int) string {
	primes := mathutil.SortedPrimes(factors)
	parts := make([]string, len(primes))
	for i, p := range primes {
		parts[i] = strconv.Itoa(p)
		if e := factors[p]; e > 1 {
			parts[i] += mathfmt.SuperscriptInt(e)
		}
	}
	return strings.Join(parts, " × ")
}

func primeFactorisation(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	pool, count, limit := []int{2, 3, 5, 7}, 2, 100
	switch level {
	case 2:
		count, limit = r.Int(3, 4), 1000
	case 3:
		pool, count, limit = []int{2, 3, 5, 7, 11, 13}, r.Int(4, 5), 10000
	}

	n := 0
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		n = 1
		for i := 0; i < count; i++ {
			n *= rng.Pick(r, pool)
		}
		// A prime power like 2⁴ is too easy.
		if n <= limit && len(mathutil.PrimeFactorize(n)) > 1 {
			break
		}
		n = 0
	}
	if n == 0 {
		n = rng.Pick(r, []int{60, 84, 90, 360})
	}
	ans := factorisationString(mathutil.PrimeFactorize(n))
	return ruleQuestion(r, PrimeFactors, level,
		fmt.Sprintf("Write %d as a product of its prime factors.", n), ans, answer.RulePrimeFactors,
		fmt.Sprintf("%d = %s", n, ans)), nil
}

func primeCheck(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	lo, hi := 2, 50
	if level >= 2 {
		lo, hi = 51, 200
	}
	wantPrime := r.Bool()
	n := 0
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		c := r.Int(lo, hi)
		// Even numbers other than 2 make the composite case trivial.
		if c%2 == 0 && c != 2 {
			continue
		}
		if mathutil.IsPrime(c) == wantPrime {
			n = c
			break
		}
	}
	if n == 0 {
		n, wantPrime = 91, false
	}

	ans, why := "No", fmt.Sprintf("%d = %s", n, factorisationString(mathutil.PrimeFactorize(n)))
	if wantPrime {
		ans, why = "Yes", fmt.Sprintf("%d has no factors other than 1 and itself.", n)
	}
	return ruleQuestion(r, PrimeCheck, level,
		fmt.Sprintf("Is %d a prime number? (yes/no)", n), ans, answer.RuleYesNo, why), nil
}

func squaresAndRoots(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		n := r.Int(2, 15)
		if template(r, w, "square", "root") == "square" {
			return intQuestion(r, SquaresAndRoots, level, fmt.Sprintf("%d²", n), n*n,
				fmt.Sprintf("%d × %d = %d", n, n, n*n)), nil
		}
		return intQuestion(r, SquaresAndRoots, level, fmt.Sprintf("√%d", n*n), n,
			fmt.Sprintf("%d × %d = %d", n, n, n*n)), nil
	case 2:
		switch template(r, w, "square", "cube", "cube-root") {
		case "square":
			n := r.Int(11, 25)
			return intQuestion(r, SquaresAndRoots, level, fmt.Sprintf("%d²", n), n*n,
				fmt.Sprintf("%d × %d = %d", n, n, n*n)), nil
		case "cube":
			n := r.Int(2, 6)
			return intQuestion(r, SquaresAndRoots, level, fmt.Sprintf("%d³", n), n*n*n,
				fmt.Sprintf("%d × %d × %d = %d", n, n, n, n*n*n)), nil
		default:
			n := r.Int(2, 10)
			return intQuestion(r, SquaresAndRoots, level, fmt.Sprintf("∛%d", n*n*n), n,
				fmt.Sprintf("%d × %d × %d = %d", n, n, n, n*n*n)), nil
		}
	}

	n := 0
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		n = r.Int(2, 200)
		if !mathutil.IsPerfectSquare(n) {
			break
		}
	}
	if mathutil.IsPerfectSquare(n) {
		n++
	}
	v := math.Sqrt(float64(n))
	lo := mathutil.ISqrt(n)
	return decimalQuestion(r, SquaresAndRoots, level,
		fmt.Sprintf("Find √%d to 1 decimal place.", n), v, 1,
		fmt.Sprintf("√%d lies between %d and %d; a calculator gives %s.", n, lo, lo+1, mathfmt.Fixed(v, 3))), nil
}

var indexVariables = []string{"x", "y", "a", "b", "m", "p"}

func indexLaws(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	v := rng.Pick(r, indexVariables)
	m, n := r.Int(2, 9), r.Int(2, 9)

	var text, ans, why string
	switch level {
	case 1:
		text = fmt.Sprintf("Simplify %s × %s", power(v, m), power(v, n))
		ans = power(v, m+n)
		why = fmt.Sprintf("Add the powers: %d + %d = %d", m, n, m+n)
	case 2:
		if template(r, w, "divide", "power-of-power") == "divide" {
			if m == n {
				m++
			}
			if m < n {
				m, n = n, m
			}
			text = fmt.Sprintf("Simplify %s ÷ %s", power(v, m), power(v, n))
			ans = power(v, m-n)
			why = fmt.Sprintf("Subtract the powers: %d - %d = %d", m, n, m-n)
		} else {
			m, n = r.Int(2, 5), r.Int(2, 5)
			text = fmt.Sprintf("Simplify (%s)%s", power(v, m), mathfmt.SuperscriptInt(n))
			ans = power(v, m*n)
			why = fmt.Sprintf("Multiply the powers: %d × %d = %d", m, n, m*n)
		}
	default:
		a, b := r.Int(2, 9), r.Int(2, 9)
		if template(r, w, "multiply", "divide") == "multiply" {
			text = fmt.Sprintf("Simplify %d%s × %d%s", a, power(v, m), b, power(v, n))
			ans = fmt.Sprintf("%d%s", a*b, power(v, m+n))
			why = fmt.Sprintf("Multiply the numbers (%d × %d = %d) and add the powers (%d + %d = %d).", a, b, a*b, m, n, m+n)
		} else {
			if m == n {
				m++
			}
			if m < n {
				m, n = n, m
			}
			text = fmt.Sprintf("Simplify %d%s ÷ %d%s", a*b, power(v, m), b, power(v, n))
			ans = fmt.Sprintf("%s%s", coef(a), power(v, m-n))
			why = fmt.Sprintf("Divide the numbers (%d ÷ %d = %d) and subtract the powers (%d - %d = %d).", a*b, b, a, m, n, m-n)
		}
	}
	return ruleQuestion(r, IndexLaws, level, text, ans, answer.RulePolynomial, why), nil
}

// sigDigits draws a 1-3 digit mantissa with no trailing zero.
func sigDigits(r *rng.Rand) int {
	for {
		m := r.Int(1, 999)
		if m%10 != 0 {
			return m
		}
	}
}

func standardForm(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	m := sigDigits(r)
	d := digitCount(m)
	var p int
	switch level {
	case 1:
		p = r.Int(1, 6)
	case 2:
		p = -r.Int(d+1, d+5)
	default:
		if template(r, w, "large", "small") == "large" {
			p = r.Int(1, 5)
		} else {
			p = -r.Int(d+1, d+4)
		}
	}
	ordinary := scaled(m, p)
	sci := sciFromInt(m, p)

	if level < 3 {
		return newQuestion(r, StandardForm, level,
			fmt.Sprintf("Write %s in standard form.", ordinary), sci,
			answer.New(sci, answer.WithScientific()),
			fmt.Sprintf("Move the decimal point so the number is between 1 and 10: %s", sci)), nil
	}
	return newQuestion(r, StandardForm, level,
		fmt.Sprintf("Write %s as an ordinary number.", sci), ordinary,
		answer.New(ordinary, answer.WithNumeric(0)),
		fmt.Sprintf("%s = %s", sci, ordinary)), nil
}

func standardFormArithmetic(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	m, n := r.Int(2, 9), r.Int(2, 9)
	var a, b int
	var text, ans, why string
	switch level {
	case 1, 2:
		a, b = r.Int(1, 9), r.Int(1, 9)
		for attempt := 0; level == 1 && a*b >= 10 && attempt < problemgen.MaxAttempts; attempt++ {
			a, b = r.Int(1, 4), r.Int(1, 4)
		}
		if level == 1 && a*b >= 10 {
			a, b = 2, 3
		}
		text = fmt.Sprintf("Calculate (%s) × (%s). Give your answer in standard form.", sciFromInt(a, m), sciFromInt(b, n))
		ans = sciFromInt(a*b, m+n)
		why = fmt.Sprintf("Multiply %d × %d = %d and add the powers %d + %d = %d, then adjust: %s", a, b, a*b, m, n, m+n, ans)
	default:
		// The quotient a/b must terminate within two decimal places.
		b = rng.Pick(r, []int{2, 4, 5})
		a = r.Int(1, 9)
		if a == b {
			a = 9
		}
		hundredths := a * 100 / b
		text = fmt.Sprintf("Calculate (%s) ÷ (%s). Give your answer in standard form.", sciFromInt(a, m), sciFromInt(b, n))
		ans = sciFromInt(hundredths, m-n-2)
		why = fmt.Sprintf("Divide %d ÷ %d = %s and subtract the powers %d - %d = %d, then adjust: %s",
			a, b, scaled(hundredths, -2), m, n, m-n, ans)
	}
	return newQuestion(r, StandardFormArith, level, text, ans, answer.New(ans, answer.WithScientific()), why), nil
}
