package topics

import (
	"fmt"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// properFraction draws a reduced p/q with 1 <= p < q and q in [minDen, maxDen].
func properFraction(r *rng.Rand, minDen, maxDen int) (int, int) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		q := r.Int(minDen, maxDen)
		p := r.Int(1, q-1)
		if mathutil.GCD(p, q) == 1 {
			return p, q
		}
	}
	return 1, maxDen
}

// mixed renders p/q (p > 0) as a mixed number, e.g. 11/4 -> "2 3/4".
func mixed(p, q int) string {
	p, q = mathutil.ReduceFraction(p, q)
	whole, rem := p/q, p%q
	switch {
	case rem == 0:
		return fmt.Sprint(whole)
	case whole == 0:
		return mathfmt.Fraction(rem, q)
	default:
		return fmt.Sprintf("%d %d/%d", whole, rem, q)
	}
}

func fractionSimplify(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var p, q, k int
	switch level {
	case 1:
		p, q = properFraction(r, 2, 12)
		k = r.Int(2, 5)
	case 2:
		p, q = properFraction(r, 2, 20)
		k = r.Int(2, 12)
	default:
		p, q = properFraction(r, 2, 9)
		p += q * r.Int(1, 3)
		k = r.Int(2, 9)
	}
	ans := mathfmt.Fraction(p, q)
	opts := []answer.Option{answer.WithFractions()}
	if p > q {
		opts = append(opts, answer.WithAlternates(mixed(p, q)))
	}
	return newQuestion(r, FractionSimplify, level,
		fmt.Sprintf("Simplify %d/%d fully.", p*k, q*k), ans,
		answer.New(ans, opts...),
		fmt.Sprintf("Divide top and bottom by %d: %d/%d = %s", k, p*k, q*k, ans)), nil
}

func fractionAddition(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		var a, b, c, d int
		switch level {
		case 1:
			b = r.Int(3, 12)
			d = b
			a, c = r.Int(1, b-1), r.Int(1, b-1)
		case 2:
			a, b = properFraction(r, 2, 10)
			c, d = properFraction(r, 2, 10)
		default:
			a, b = properFraction(r, 2, 12)
			c, d = properFraction(r, 2, 12)
		}
		if b == d && level > 1 {
			continue
		}
		op, sign := "+", 1
		if level == 3 || (level == 2 && template(r, w, "add", "subtract") == "subtract") {
			op, sign = "-", -1
		}
		num, den := a*d+sign*c*b, b*d
		if num == 0 {
			continue
		}
		text := fmt.Sprintf("%d/%d %s %d/%d", a, b, op, c, d)
		rn, rd := mathutil.ReduceFraction(num, den)
		why := fmt.Sprintf("%s = %d/%d = %s", text, num, den, mathfmt.Fraction(rn, rd))
		if b != d {
			why = fmt.Sprintf("Use a common denominator of %d: %d/%d %s %d/%d = %s",
				den, a*d, den, op, c*b, den, mathfmt.Fraction(rn, rd))
		}
		return fractionQuestion(r, FractionAdd, level, text, num, den, 0, why), nil
	}
	return fractionQuestion(r, FractionAdd, level, "1/2 + 1/3", 5, 6, 0, "3/6 + 2/6 = 5/6"), nil
}

func fractionMultiplication(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		a, b := properFraction(r, 2, 6)
		c, d := properFraction(r, 2, 6)
		return fractionQuestion(r, FractionMultiply, level,
			fmt.Sprintf("%d/%d × %d/%d", a, b, c, d), a*c, b*d, 0,
			fmt.Sprintf("Multiply tops and bottoms: %d/%d, then simplify.", a*c, b*d)), nil
	case 2:
		a, b := properFraction(r, 2, 10)
		n := b * r.Int(1, 6)
		if r.Bool() {
			n = r.Int(2, 15)
		}
		return fractionQuestion(r, FractionMultiply, level,
			fmt.Sprintf("%d/%d × %d", a, b, n), a*n, b, 0,
			fmt.Sprintf("%d × %d = %d, so the answer is %d/%d, then simplify.", a, n, a*n, a*n, b)), nil
	}
	a, b := properFraction(r, 2, 12)
	c, d := properFraction(r, 2, 12)
	a = -a
	return fractionQuestion(r, FractionMultiply, level,
		fmt.Sprintf("%d/%d × %d/%d", a, b, c, d), a*c, b*d, 0,
		fmt.Sprintf("A negative times a positive is negative: %d/%d, then simplify.", a*c, b*d)), nil
}

func fractionDivision(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	a, b := properFraction(r, 2, 9)
	c, d := properFraction(r, 2, 9)
	switch level {
	case 1:
		return fractionQuestion(r, FractionDivide, level,
			fmt.Sprintf("%d/%d ÷ %d/%d", a, b, c, d), a*d, b*c, 0,
			fmt.Sprintf("Flip the second fraction and multiply: %d/%d × %d/%d", a, b, d, c)), nil
	case 2:
		n := r.Int(2, 9)
		if template(r, w, "by-integer", "integer-by") == "by-integer" {
			return fractionQuestion(r, FractionDivide, level,
				fmt.Sprintf("%d/%d ÷ %d", a, b, n), a, b*n, 0,
				fmt.Sprintf("Dividing by %d is multiplying by 1/%d: %d/%d", n, n, a, b*n)), nil
		}
		return fractionQuestion(r, FractionDivide, level,
			fmt.Sprintf("%d ÷ %d/%d", n, c, d), n*d, c, 0,
			fmt.Sprintf("Flip and multiply: %d × %d/%d = %d/%d", n, d, c, n*d, c)), nil
	}
	a, b = properFraction(r, 2, 12)
	c, d = properFraction(r, 2, 12)
	a += b * r.Int(1, 2)
	return fractionQuestion(r, FractionDivide, level,
		fmt.Sprintf("%d/%d ÷ %d/%d", a, b, c, d), a*d, b*c, 0,
		fmt.Sprintf("Flip the second fraction and multiply: %d/%d × %d/%d = %d/%d", a, b, d, c, a*d, b*c)), nil
}

func fractionToDecimal(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var dens []int
	switch level {
	case 1:
		dens = []int{2, 4, 5, 10}
	case 2:
		dens = []int{8, 20, 25, 50}
	default:
		dens = []int{3, 6, 7, 9, 11}
	}
	q := rng.Pick(r, dens)
	p := 1
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		p = r.Int(1, q-1)
		if mathutil.GCD(p, q) == 1 {
			break
		}
	}
	if mathutil.GCD(p, q) != 1 {
		p = 1
	}
	// Sevenths other than 1/7 produce long recurring cycles.
	if q == 7 {
		p = 1
	}
	v := float64(p) / float64(q)
	text := fmt.Sprintf("Write %d/%d as a decimal.", p, q)

	if level < 3 {
		return exactDecimalQuestion(r, FractionDecimal, level, text, v,
			fmt.Sprintf("%d ÷ %d = %s", p, q, mathfmt.CleanDecimal(v))), nil
	}
	ans := mathfmt.Fixed(v, 3)
	return newQuestion(r, FractionDecimal, level,
		fmt.Sprintf("Write %d/%d as a decimal to 3 decimal places.", p, q), ans,
		answer.New(ans, answer.WithNumeric(0.0005)),
		fmt.Sprintf("%d ÷ %d = %s…, which rounds to %s", p, q, mathfmt.Fixed(v, 5), ans)), nil
}

func mixedNumbers(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		p, q := properFraction(r, 2, 9)
		p += q * r.Int(1, 5)
		ans := mixed(p, q)
		return newQuestion(r, MixedNumbers, level,
			fmt.Sprintf("Write %d/%d as a mixed number.", p, q), ans, answer.New(ans),
			fmt.Sprintf("%d ÷ %d = %d remainder %d, so %d/%d = %s", p, q, p/q, p%q, p, q, ans)), nil
	case 2:
		p, q := properFraction(r, 2, 9)
		whole := r.Int(1, 5)
		num := whole*q + p
		return fractionQuestion(r, MixedNumbers, level,
			fmt.Sprintf("Write %d %d/%d as an improper fraction.", whole, p, q), num, q, 0,
			fmt.Sprintf("%d × %d + %d = %d, so the answer is %d/%d", whole, q, p, num, num, q)), nil
	}

	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		a, b := properFraction(r, 2, 8)
		c, d := properFraction(r, 2, 8)
		w1, w2 := r.Int(1, 4), r.Int(1, 4)
		num := (w1*b+a)*d + (w2*d+c)*b
		den := b * d
		rn, rd := mathutil.ReduceFraction(num, den)
		if rd == 1 {
			continue
		}
		ans := mixed(rn, rd)
		return newQuestion(r, MixedNumbers, level,
			fmt.Sprintf("Calculate %d %d/%d + %d %d/%d. Give your answer as a mixed number.", w1, a, b, w2, c, d),
			ans, answer.New(ans, answer.WithAlternates(mathfmt.Fraction(rn, rd))),
			fmt.Sprintf("Add the whole numbers and the fractions separately, then simplify: %s", ans)), nil
	}
	return newQuestion(r, MixedNumbers, level,
		"Calculate 1 1/2 + 2 1/3. Give your answer as a mixed number.", "3 5/6",
		answer.New("3 5/6", answer.WithAlternates("23/6")), "1 + 2 = 3 and 1/2 + 1/3 = 5/6"), nil
}

func percentageOfAmount(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var tenths, amount int
	switch level {
	case 1:
		tenths = 10 * rng.Pick(r, []int{10, 25, 50, 75})
		amount = 4 * r.Int(2, 50)
	case 2:
		tenths = 10 * 5 * r.Int(1, 19)
		amount = r.Int(20, 400)
	default:
		tenths = rng.Pick(r, []int{25, 75, 125, 175, 225, 375})
		amount = r.Int(10, 500)
	}
	// Answers are kept to whole hundredths.
	for attempt := 0; attempt < problemgen.MaxAttempts && tenths*amount%10 != 0; attempt++ {
		amount++
	}
	hundredths := tenths * amount / 10
	pct := scaled(tenths, -1)
	if tenths%10 == 0 {
		pct = fmt.Sprint(tenths / 10)
	}
	v := float64(hundredths) / 100
	return decimalQuestion(r, PercentOf, level,
		fmt.Sprintf("Find %s%% of %d.", pct, amount), v, 2,
		fmt.Sprintf("%s%% of %d = %s ÷ 100 × %d = %s", pct, amount, pct, amount, mathfmt.CleanDecimal(v))), nil
}

func percentageChange(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	pct := 5 * r.Int(1, 12)
	old := 20 * r.Int(1, 25)
	switch level {
	case 1, 2:
		increase := level == 1
		if level == 2 {
			increase = template(r, w, "increase", "decrease") == "increase"
		}
		factor := 100 + pct
		verb := "Increase"
		if !increase {
			factor, verb = 100-pct, "Decrease"
		}
		v := float64(old*factor) / 100
		return decimalQuestion(r, PercentChange, level,
			fmt.Sprintf("%s %d by %d%%.", verb, old, pct), v, 2,
			fmt.Sprintf("Multiply by %s: %d × %s = %s", scaled(factor, -2), old, scaled(factor, -2), mathfmt.CleanDecimal(v))), nil
	}

	increase := r.Bool()
	next := old * (100 + pct) / 100
	kind := "increase"
	if !increase {
		next, kind = old*(100-pct)/100, "decrease"
	}
	ans := fmt.Sprint(pct)
	diff := mathutil.Abs(next - old)
	return newQuestion(r, PercentChange, level,
		fmt.Sprintf("A price changes from £%d to £%d. Find the percentage %s.", old, next, kind), ans,
		answer.New(ans, answer.WithNumeric(0.01), answer.WithAlternates(ans+"%")),
		fmt.Sprintf("Change = %d; %d ÷ %d × 100 = %d%%", diff, diff, old, pct)), nil
}

func ratioSharing(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1, 2:
		parts := []int{r.Int(1, 5), r.Int(1, 5)}
		if level == 2 {
			parts = append(parts, r.Int(1, 5))
		}
		g, total := 0, 0
		for _, p := range parts {
			g = gcdOrFirst(g, p)
			total += p
		}
		for i := range parts {
			parts[i] /= g
		}
		total /= g
		k := r.Int(2, 20)
		shares := make([]int, len(parts))
		for i, p := range parts {
			shares[i] = p * k
		}
		ratio, ans := joinColon(parts), joinColon(shares)
		return newQuestion(r, RatioSharing, level,
			fmt.Sprintf("Share £%d in the ratio %s. Give the shares in the same order, e.g. a:b.", total*k, ratio), ans,
			answer.New(ans, answer.WithAlternates(joinComma(shares))),
			fmt.Sprintf("%d parts in total, each part is £%d: %s", total, k, ans)), nil
	}

	a := r.Int(1, 6)
	b := a + r.Int(1, 5)
	g := mathutil.GCD(a, b)
	a, b = a/g, b/g
	k := r.Int(2, 15)
	return intQuestion(r, RatioSharing, level,
		fmt.Sprintf("Amy and Ben share money in the ratio %d:%d. Ben gets £%d more than Amy. How much does Amy get (in £)?", a, b, (b-a)*k),
		a*k,
		fmt.Sprintf("The difference is %d part%s = £%d, so one part is £%d and Amy gets %d × %d = £%d",
			b-a, plural(b-a), (b-a)*k, k, a, k, a*k)), nil
}

func joinColon(ns []int) string {
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ":"
		}
		s += fmt.Sprint(n)
	}
	return s
}

func joinComma(ns []int) string {
	s := ""
	for i, n := range ns {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(n)
	}
	return s
}
