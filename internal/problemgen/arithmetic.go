package problemgen

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/abhisek/examforge/internal/answer"
)

// ArithmeticValidator independently recomputes the answer of questions whose
// text is a bare arithmetic expression such as "47 + 38" or "(-3) × 4 - 2".
// Anything else (word problems, algebra) passes through silently.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string { return "arithmetic" }

var (
	arithmeticTextRe = regexp.MustCompile(`^[\d\s.+\-*/()×÷−]+$`)
	arithmeticOpRe   = regexp.MustCompile(`[\d)]\s*[+\-*/×÷−]\s*[\d(−-]`)
	trailingEqualsRe = regexp.MustCompile(`\s*=\s*\??\s*$`)

	// A slash with no surrounding space is a fraction literal, not division.
	fractionLiteralRe = regexp.MustCompile(`(\d+)/(\d+)`)
)

var arithmeticOps = strings.NewReplacer("×", "*", "÷", "/", "−", "-")

func (v *ArithmeticValidator) Validate(q *Question) *ValidationError {
	expr, ok := arithmeticExpression(q.Text)
	if !ok {
		return nil
	}
	want, ok := answer.ParseNumber(q.Answer)
	if !ok {
		return nil
	}
	got, err := evaluate(expr)
	if err != nil {
		return nil
	}
	if math.Abs(got-want) > 1e-9*math.Max(1, math.Abs(want)) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %v but answer is %q", got, q.Answer),
		}
	}
	return nil
}

// arithmeticExpression extracts a govaluate expression from question text,
// reporting false when the text is not pure arithmetic.
func arithmeticExpression(text string) (string, bool) {
	text = trailingEqualsRe.ReplaceAllString(strings.TrimSpace(text), "")
	if !arithmeticTextRe.MatchString(text) || !arithmeticOpRe.MatchString(text) {
		return "", false
	}
	text = fractionLiteralRe.ReplaceAllString(text, "($1/$2)")
	return arithmeticOps.Replace(text), true
}

func evaluate(expr string) (float64, error) {
	e, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, err
	}
	res, err := e.Evaluate(nil)
	if err != nil {
		return 0, err
	}
	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("non-numeric result %T", res)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("result is not finite")
	}
	return f, nil
}
