package topics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// newQuestion assembles a question whose checker is bound to ans.
func newQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text, ans string, chk *answer.Checker, explanation string) *problemgen.Question {
	if chk != nil && chk.Correct != ans {
		panic(fmt.Sprintf("topics: %s checker bound to %q, answer is %q", topic, chk.Correct, ans))
	}
	return &problemgen.Question{
		ID:          problemgen.NewID(r, topic),
		Topic:       topic,
		Text:        text,
		Answer:      ans,
		Difficulty:  level,
		Checker:     chk,
		Explanation: explanation,
	}
}

// intQuestion is newQuestion for whole-number answers.
func intQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text string, n int, explanation string) *problemgen.Question {
	ans := strconv.Itoa(n)
	return newQuestion(r, topic, level, text, ans, answer.Integer(ans), explanation)
}

// decimalQuestion rounds v to dp places for the canonical answer and
// accepts one unit either side in the last place.
func decimalQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text string, v float64, dp int, explanation string) *problemgen.Question {
	ans := mathfmt.CleanDecimal(mathfmt.Round(v, dp))
	return newQuestion(r, topic, level, text, ans, answer.Decimal(ans, dp), explanation)
}

// exactDecimalQuestion is for values that terminate, such as 7.5. Any
// spelling of the exact value is accepted, nothing else.
func exactDecimalQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text string, v float64, explanation string) *problemgen.Question {
	ans := mathfmt.CleanDecimal(v)
	return newQuestion(r, topic, level, text, ans, answer.New(ans, answer.WithNumeric(0)), explanation)
}

// fractionQuestion answers num/den in lowest terms. Decimal spellings are
// accepted within tol when tol > 0.
func fractionQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text string, num, den int, tol float64, explanation string) *problemgen.Question {
	num, den = mathutil.ReduceFraction(num, den)
	ans := mathfmt.Fraction(num, den)
	opts := []answer.Option{answer.WithFractions()}
	if tol > 0 {
		opts = append(opts, answer.WithNumeric(tol))
	}
	return newQuestion(r, topic, level, text, ans, answer.New(ans, opts...), explanation)
}

// ruleQuestion answers with a named checker rule.
func ruleQuestion(r *rng.Rand, topic problemgen.TopicID, level int, text, ans, rule, explanation string) *problemgen.Question {
	return newQuestion(r, topic, level, text, ans, answer.New(ans, answer.WithRule(rule)), explanation)
}

// withDiagram attaches a JSON diagram payload.
func withDiagram(q *problemgen.Question, d any) *problemgen.Question {
	raw, err := json.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("topics: diagram for %s: %v", q.Topic, err))
	}
	q.Diagram = raw
	return q
}

// number builds a number with the given count of digits, drawing each digit
// through the caller's digit weights. The leading digit is never zero.
func number(r *rng.Rand, w problemgen.Weights, digits int) int {
	dw := w.Digits()
	n := 0
	for i := 0; i < digits; i++ {
		d := r.Digit(dw)
		if i == 0 && d == 0 {
			d = r.Int(1, 9)
		}
		n = n*10 + d
	}
	return n
}

// template picks one of names, weighted by the caller's template weights.
func template(r *rng.Rand, w problemgen.Weights, names ...string) string {
	items := make([]rng.Weighted[string], len(names))
	for i, n := range names {
		items[i] = rng.Weighted[string]{Item: n, Weight: w.Template(n, 1)}
	}
	return rng.PickWeighted(r, items)
}

// operand renders n for use after an operator, bracketing negatives.
func operand(n int) string {
	if n < 0 {
		return fmt.Sprintf("(%d)", n)
	}
	return strconv.Itoa(n)
}

// scaled renders n×10^p exactly, e.g. scaled(45, -3) == "0.045" and
// scaled(45, 2) == "4500".
func scaled(n, p int) string {
	neg := n < 0
	s := strconv.Itoa(mathutil.Abs(n))
	if p >= 0 {
		s += strings.Repeat("0", p)
	} else {
		dp := -p
		if len(s) <= dp {
			s = strings.Repeat("0", dp-len(s)+1) + s
		}
		s = s[:len(s)-dp] + "." + s[len(s)-dp:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

// digitCount returns the number of decimal digits in |n|.
func digitCount(n int) int {
	n = mathutil.Abs(n)
	c := 1
	for n >= 10 {
		n /= 10
		c++
	}
	return c
}

// sciFromInt renders n×10^p in standard form with a superscript exponent.
// Trailing zeros of n are folded into the exponent.
func sciFromInt(n, p int) string {
	if n == 0 {
		return "0"
	}
	for n%10 == 0 {
		n /= 10
		p++
	}
	d := digitCount(n)
	return scaled(n, -(d-1)) + mathfmt.TimesTen + mathfmt.SuperscriptInt(p+d-1)
}

// coef renders a coefficient in front of a variable: 1 -> "", -1 -> "-".
func coef(c int) string {
	switch c {
	case 1:
		return ""
	case -1:
		return "-"
	default:
		return strconv.Itoa(c)
	}
}

// power renders v raised to deg, e.g. "x²".
func power(v string, deg int) string {
	switch deg {
	case 0:
		return ""
	case 1:
		return v
	default:
		return v + mathfmt.SuperscriptInt(deg)
	}
}

// poly renders coefficients from the highest power down, e.g.
// poly("x", 1, -5, 6) == "x² - 5x + 6". Zero terms are skipped.
func poly(v string, coefs ...int) string {
	var b strings.Builder
	deg := len(coefs) - 1
	for i, c := range coefs {
		d := deg - i
		if c == 0 {
			continue
		}
		abs := mathutil.Abs(c)
		if b.Len() == 0 {
			if c < 0 {
				b.WriteString("-")
			}
		} else if c < 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		if d == 0 {
			b.WriteString(strconv.Itoa(abs))
		} else {
			b.WriteString(coef(abs) + power(v, d))
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// linearFactor renders (ax + b) with a in front, e.g. "(2x - 3)".
func linearFactor(v string, a, b int) string {
	return "(" + poly(v, a, b) + ")"
}

// signedTerm renders "+ n" or "- n" for appending to an expression.
func signedTerm(n int) string {
	if n < 0 {
		return fmt.Sprintf("- %d", -n)
	}
	return fmt.Sprintf("+ %d", n)
}

// rootsAnswer renders "x = a, x = b" in ascending order.
func rootsAnswer(v string, roots ...string) string {
	parts := make([]string, len(roots))
	for i, root := range roots {
		parts[i] = v + " = " + root
	}
	return strings.Join(parts, ", ")
}
