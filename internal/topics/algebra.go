package topics

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

func linearEquations(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		a, x, b := r.Int(2, 9), r.NonZero(-10, 10), r.NonZero(-20, 20)
		c := a*x + b
		text := fmt.Sprintf("Solve %s = %d", poly("x", a, b), c)
		ans := rootsAnswer("x", fmt.Sprint(x))
		return ruleQuestion(r, LinearEquations, level, text, ans, answer.RuleRoots,
			fmt.Sprintf("%dx = %d - %s = %d, so x = %d", a, c, operand(b), c-b, x)), nil
	case 2:
		for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
			a, c := r.Int(2, 9), r.Int(1, 8)
			if a == c {
				continue
			}
			x, b := r.NonZero(-8, 8), r.Int(-15, 15)
			d := a*x + b - c*x
			text := fmt.Sprintf("Solve %s = %s", poly("x", a, b), poly("x", c, d))
			ans := rootsAnswer("x", fmt.Sprint(x))
			return ruleQuestion(r, LinearEquations, level, text, ans, answer.RuleRoots,
				fmt.Sprintf("Collect x terms: %dx = %d, so x = %d", a-c, d-b, x)), nil
		}
		return ruleQuestion(r, LinearEquations, level, "Solve 5x + 3 = 2x + 12", "x = 3", answer.RuleRoots,
			"3x = 9, so x = 3"), nil
	}

	// Level 3: a(x + b) = c with a non-integer solution.
	a := r.Int(2, 6)
	b := r.NonZero(-6, 6)
	p := r.NonZero(-20, 20)
	if p%a == 0 {
		p++
	}
	// a(x + b) = c gives x = c/a - b; choose c so that x = p/a.
	c := p + a*b
	num, den := mathutil.ReduceFraction(p, a)
	ans := rootsAnswer("x", mathfmt.Fraction(num, den))
	return ruleQuestion(r, LinearEquations, level,
		fmt.Sprintf("Solve %d%s = %d", a, linearFactor("x", 1, b), c), ans, answer.RuleRoots,
		fmt.Sprintf("Expand: %s = %d, so %dx = %d and x = %s", poly("x", a, a*b), c, a, p, mathfmt.Fraction(num, den))), nil
}

func simultaneousEquations(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		x, y := r.Int(-6, 6), r.Int(-6, 6)
		var a1, b1, a2, b2 int
		switch level {
		case 1:
			a1, a2 = r.Int(1, 5), r.Int(1, 5)
			b1 = r.Int(1, 5)
			b2 = b1
			if r.Bool() {
				b2 = -b1
			}
		case 2:
			a1, b1, a2, b2 = r.Int(1, 6), r.Int(1, 6), r.Int(1, 6), r.Int(1, 6)
		default:
			a1, b1, a2, b2 = r.NonZero(-6, 6), r.NonZero(-6, 6), r.NonZero(-6, 6), r.NonZero(-6, 6)
		}
		if a1*b2-a2*b1 == 0 {
			continue
		}
		c1, c2 := a1*x+b1*y, a2*x+b2*y
		eq1 := twoVar(a1, b1) + fmt.Sprintf(" = %d", c1)
		eq2 := twoVar(a2, b2) + fmt.Sprintf(" = %d", c2)
		ans := fmt.Sprintf("x = %d, y = %d", x, y)
		return ruleQuestion(r, Simultaneous, level,
			fmt.Sprintf("Solve the simultaneous equations %s and %s", eq1, eq2), ans, answer.RuleCoordinates,
			fmt.Sprintf("Eliminate one variable, solve for the other and substitute back: %s", ans)), nil
	}
	return ruleQuestion(r, Simultaneous, level,
		"Solve the simultaneous equations 2x + y = 7 and x - y = 2", "x = 3, y = 1", answer.RuleCoordinates,
		"Add the equations: 3x = 9, so x = 3 and y = 1"), nil
}

// twoVar renders ax + by.
func twoVar(a, b int) string {
	s := coef(a) + "x"
	if b < 0 {
		return s + " - " + coef(-b) + "y"
	}
	return s + " + " + coef(b) + "y"
}

func quadraticFactorisation(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		switch level {
		case 1:
			p, q := r.NonZero(-9, 9), r.NonZero(-9, 9)
			// Repeated and cancelling roots are separate exercises.
			if p == q || p+q == 0 {
				continue
			}
			if p < q {
				p, q = q, p
			}
			return factorQuestion(r, level, 1, p, 1, q, 1), nil
		case 2:
			if template(r, w, "difference-of-squares", "common-factor") == "difference-of-squares" {
				p := r.Int(1, 12)
				return factorQuestion(r, level, 1, p, 1, -p, 1), nil
			}
			p := r.NonZero(-12, 12)
			return ruleQuestion(r, QuadraticFactorise, level,
				fmt.Sprintf("Factorise %s", poly("x", 1, p, 0)),
				"x"+linearFactor("x", 1, p), answer.RuleFactorised,
				fmt.Sprintf("x is a common factor: x%s", linearFactor("x", 1, p))), nil
		default:
			a := r.Int(2, 5)
			p, q := r.NonZero(-7, 7), r.NonZero(-7, 7)
			if mathutil.GCD(a, p) != 1 {
				continue
			}
			return factorQuestion(r, level, a, p, 1, q, 1), nil
		}
	}
	return factorQuestion(r, level, 1, 2, 1, 3, 1), nil
}

// factorQuestion asks to factorise k(ax + p)(cx + q).
func factorQuestion(r *rng.Rand, level, a, p, c, q, k int) *problemgen.Question {
	expanded := poly("x", k*a*c, k*(a*q+c*p), k*p*q)
	ans := linearFactor("x", a, p) + linearFactor("x", c, q)
	if k != 1 {
		ans = fmt.Sprint(k) + ans
	}
	return ruleQuestion(r, QuadraticFactorise, level,
		fmt.Sprintf("Factorise %s", expanded), ans, answer.RuleFactorised,
		fmt.Sprintf("Find two numbers that multiply to %d and add to %d: %s", a*c*p*q, a*q+c*p, ans))
}

func quadraticRoots(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		switch level {
		case 1:
			r1, r2 := r.NonZero(-9, 9), r.NonZero(-9, 9)
			// A repeated root gives a single answer.
			if r1 == r2 {
				continue
			}
			lo, hi := sortPair(r1, r2)
			return ruleQuestion(r, QuadraticRoots, level,
				fmt.Sprintf("Solve %s = 0", poly("x", 1, -(r1+r2), r1*r2)),
				rootsAnswer("x", fmt.Sprint(lo), fmt.Sprint(hi)), answer.RuleRoots,
				fmt.Sprintf("(x %s)(x %s) = 0", signedTerm(-r1), signedTerm(-r2))), nil
		case 2:
			a := r.NonZero(-12, 12)
			// x² - ax = 0 or x² - a² = 0
			if template(r, w, "zero-root", "difference-of-squares") == "zero-root" {
				lo, hi := sortPair(0, a)
				return ruleQuestion(r, QuadraticRoots, level,
					fmt.Sprintf("Solve %s = 0", poly("x", 1, -a, 0)),
					rootsAnswer("x", fmt.Sprint(lo), fmt.Sprint(hi)), answer.RuleRoots,
					fmt.Sprintf("x(x %s) = 0", signedTerm(-a))), nil
			}
			a = mathutil.Abs(a)
			return ruleQuestion(r, QuadraticRoots, level,
				fmt.Sprintf("Solve %s = 0", poly("x", 1, 0, -a*a)),
				rootsAnswer("x", fmt.Sprint(-a), fmt.Sprint(a)), answer.RuleRoots,
				fmt.Sprintf("x² = %d, so x = ±%d", a*a, a)), nil
		default:
			if template(r, w, "non-monic", "formula") == "non-monic" {
				// (ax - p)(x - q) = 0
				a := r.Int(2, 5)
				p, q := r.NonZero(-7, 7), r.NonZero(-7, 7)
				if mathutil.GCD(a, p) != 1 {
					continue
				}
				pn, pd := mathutil.ReduceFraction(p, a)
				roots := []float64{float64(p) / float64(a), float64(q)}
				labels := []string{mathfmt.Fraction(pn, pd), fmt.Sprint(q)}
				if roots[0] > roots[1] {
					labels[0], labels[1] = labels[1], labels[0]
				}
				return ruleQuestion(r, QuadraticRoots, level,
					fmt.Sprintf("Solve %s = 0", poly("x", a, -(a*q+p), p*q)),
					rootsAnswer("x", labels...), answer.RuleRoots,
					fmt.Sprintf("%s%s = 0", linearFactor("x", a, -p), linearFactor("x", 1, -q))), nil
			}
			b, c := r.Int(-9, 9), r.Int(-12, 12)
			disc := b*b - 4*c
			if disc <= 0 || mathutil.IsPerfectSquare(disc) {
				continue
			}
			sq := math.Sqrt(float64(disc))
			x1 := (float64(-b) - sq) / 2
			x2 := (float64(-b) + sq) / 2
			return ruleQuestion(r, QuadraticRoots, level,
				fmt.Sprintf("Solve %s = 0, giving your answers to 2 decimal places.", poly("x", 1, b, c)),
				rootsAnswer("x", mathfmt.Fixed(x1, 2), mathfmt.Fixed(x2, 2)), answer.RuleRoots,
				fmt.Sprintf("x = (%d ± √%d) / 2", -b, disc)), nil
		}
	}
	return ruleQuestion(r, QuadraticRoots, level, "Solve x² - 5x + 6 = 0", "x = 2, x = 3", answer.RuleRoots,
		"(x - 2)(x - 3) = 0"), nil
}

func sortPair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func expandBrackets(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var text, ans string
	switch level {
	case 1:
		k, a, b := r.NonZero(-9, 9), r.Int(1, 5), r.NonZero(-9, 9)
		if k == 1 {
			k = 2
		}
		text = fmt.Sprintf("Expand %s%s", coef(k), linearFactor("x", a, b))
		ans = poly("x", k*a, k*b)
	case 2:
		p, q := r.NonZero(-9, 9), r.NonZero(-9, 9)
		text = fmt.Sprintf("Expand and simplify %s%s", linearFactor("x", 1, p), linearFactor("x", 1, q))
		ans = poly("x", 1, p+q, p*q)
	default:
		a, b := r.Int(2, 5), r.Int(1, 5)
		p, q := r.NonZero(-7, 7), r.NonZero(-7, 7)
		text = fmt.Sprintf("Expand and simplify %s%s", linearFactor("x", a, p), linearFactor("x", b, q))
		ans = poly("x", a*b, a*q+b*p, p*q)
	}
	return ruleQuestion(r, ExpandBrackets, level, text, ans, answer.RulePolynomial,
		fmt.Sprintf("Multiply every term in the first bracket by every term in the second: %s", ans)), nil
}

func substitution(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		p, q := r.Int(2, 9), r.NonZero(-9, 9)
		a, b := r.NonZero(-6, 6), r.NonZero(-6, 6)
		expr := fmt.Sprintf("%da %s %db", p, sign(q), mathutil.Abs(q))
		v := p*a + q*b
		return intQuestion(r, Substitution, level,
			fmt.Sprintf("Find the value of %s when a = %d and b = %d.", expr, a, b), v,
			fmt.Sprintf("%d × %s %s %d × %s = %d", p, operand(a), sign(q), mathutil.Abs(q), operand(b), v)), nil
	case 2:
		b, c := r.Int(-9, 9), r.Int(-12, 12)
		x := r.NonZero(-5, 5)
		v := x*x + b*x + c
		return intQuestion(r, Substitution, level,
			fmt.Sprintf("Find the value of %s when x = %d.", poly("x", 1, b, c), x), v,
			fmt.Sprintf("%s² %s × %s %s = %d", operand(x), signedTerm(b), operand(x), signedTerm(c), v)), nil
	}

	if template(r, w, "suvat", "triangle") == "suvat" {
		u, a, t := r.Int(0, 20), r.Int(1, 10), r.Int(1, 12)
		v := u + a*t
		return intQuestion(r, Substitution, level,
			fmt.Sprintf("Use v = u + at to find v when u = %d, a = %d and t = %d.", u, a, t), v,
			fmt.Sprintf("v = %d + %d × %d = %d", u, a, t, v)), nil
	}
	b, h := r.Int(2, 20), r.Int(2, 20)
	area := float64(b*h) / 2
	return exactDecimalQuestion(r, Substitution, level,
		fmt.Sprintf("Use A = ½bh to find A when b = %d and h = %d.", b, h), area,
		fmt.Sprintf("A = ½ × %d × %d = %s", b, h, mathfmt.CleanDecimal(area))), nil
}

func sign(n int) string {
	if n < 0 {
		return "-"
	}
	return "+"
}

func nthTerm(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	var terms []int
	var ans string
	switch level {
	case 1, 2:
		d := r.Int(2, 9)
		if level == 2 {
			d = -r.Int(2, 9)
		}
		first := r.Int(-10, 20)
		for n := 1; n <= 5; n++ {
			terms = append(terms, first+(n-1)*d)
		}
		ans = poly("n", d, first-d)
	default:
		b, c := r.Int(-5, 5), r.Int(-5, 5)
		for n := 1; n <= 5; n++ {
			terms = append(terms, n*n+b*n+c)
		}
		ans = poly("n", 1, b, c)
	}
	seq := make([]string, len(terms))
	for i, t := range terms {
		seq[i] = fmt.Sprint(t)
	}
	return ruleQuestion(r, NthTerm, level,
		fmt.Sprintf("Find the nth term of the sequence %s, …", strings.Join(seq, ", ")), ans, answer.RuleNthTerm,
		fmt.Sprintf("Look at the differences between terms: nth term = %s", ans)), nil
}

func gradient(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1, 2:
		for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
			x1, y1 := r.Int(-6, 6), r.Int(-6, 6)
			dx := r.NonZero(-6, 6)
			var dy int
			if level == 1 {
				dy = dx * r.NonZero(-4, 4)
			} else {
				dy = r.Int(-9, 9)
				if dy%dx == 0 {
					continue
				}
			}
			x2, y2 := x1+dx, y1+dy
			return fractionQuestion(r, Gradient, level,
				fmt.Sprintf("Find the gradient of the line through (%d, %d) and (%d, %d).", x1, y1, x2, y2),
				dy, dx, 0.01,
				fmt.Sprintf("Gradient = change in y ÷ change in x = %d ÷ %d", dy, dx)), nil
		}
		return fractionQuestion(r, Gradient, level,
			"Find the gradient of the line through (0, 1) and (4, 4).", 3, 4, 0.01, "3 ÷ 4"), nil
	}

	a, b := r.NonZero(-6, 6), r.Int(2, 6)
	c := r.Int(-12, 12)
	// ax + by = c rearranges to y = -a/b x + c/b.
	return fractionQuestion(r, Gradient, level,
		fmt.Sprintf("Find the gradient of the line %s = %d.", twoVar(a, b), c),
		-a, b, 0.01,
		fmt.Sprintf("Rearrange to y = mx + c: %dy = %s + %d, so the gradient is %s",
			b, poly("x", -a, 0), c, mathfmt.Fraction(mathutil.ReduceFraction(-a, b)))), nil
}

var inequalityOps = []string{"<", ">", "≤", "≥"}

var flipInequality = map[string]string{"<": ">", ">": "<", "≤": "≥", "≥": "≤"}

func linearInequalities(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	op := rng.Pick(r, inequalityOps)
	s := r.Int(-10, 10)
	var text, why string
	switch level {
	case 1:
		b := r.NonZero(-12, 12)
		text = fmt.Sprintf("Solve %s %s %d", poly("x", 1, b), op, s+b)
		why = fmt.Sprintf("Subtract %d from both sides.", b)
	case 2:
		a, b := r.Int(2, 9), r.NonZero(-12, 12)
		text = fmt.Sprintf("Solve %s %s %d", poly("x", a, b), op, a*s+b)
		why = fmt.Sprintf("Subtract %d, then divide both sides by %d.", b, a)
	default:
		a, b := r.Int(2, 9), r.NonZero(-12, 12)
		text = fmt.Sprintf("Solve %s %s %d", poly("x", -a, b), op, -a*s+b)
		why = fmt.Sprintf("Subtract %d, then divide by -%d and reverse the inequality sign.", b, a)
		op = flipInequality[op]
	}
	ans := fmt.Sprintf("x %s %d", op, s)
	return ruleQuestion(r, LinearInequalities, level, text, ans, answer.RuleInequality, why+" "+ans), nil
}

