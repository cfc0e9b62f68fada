package topics

import (
	"fmt"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

// operandDigits maps level to operand sizes for the four column methods.
var operandDigits = map[int][2]int{
	1: {1, 1},
	2: {2, 2},
	3: {3, 3},
	4: {4, 3},
}

func addition(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	d := operandDigits[level]
	return sumQuestion(r, level, number(r, w, d[0]), number(r, w, d[1])), nil
}

func sumQuestion(r *rng.Rand, level, a, b int) *problemgen.Question {
	return intQuestion(r, Addition, level,
		fmt.Sprintf("%d + %d", a, b), a+b,
		fmt.Sprintf("%d + %d = %d", a, b, a+b))
}

func subtraction(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	d := operandDigits[level]
	a, b := number(r, w, d[0]), number(r, w, d[1])
	// Below level 4 the answer is never negative.
	if level < 4 && a < b {
		a, b = b, a
	}
	if level == 4 && r.Bool() {
		a, b = b, a
	}
	return intQuestion(r, Subtraction, level,
		fmt.Sprintf("%d - %d", a, b), a-b,
		fmt.Sprintf("%d - %d = %d", a, b, a-b)), nil
}

func multiplication(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	var a, b int
	switch level {
	case 1:
		a, b = r.Int(2, 10), r.Int(2, 10)
	case 2:
		a, b = number(r, w, 2), r.Int(2, 9)
	case 3:
		a, b = number(r, w, 2), number(r, w, 2)
	default:
		a, b = number(r, w, 3), number(r, w, 2)
	}
	return intQuestion(r, Multiplication, level,
		fmt.Sprintf("%d × %d", a, b), a*b,
		fmt.Sprintf("%d × %d = %d", a, b, a*b)), nil
}

func division(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1, 2, 3:
		var divisor, quotient int
		switch level {
		case 1:
			divisor, quotient = r.Int(2, 10), r.Int(2, 10)
		case 2:
			divisor, quotient = r.Int(2, 12), number(r, w, 2)
		default:
			divisor, quotient = r.Int(11, 25), number(r, w, 2)
		}
		dividend := divisor * quotient
		return intQuestion(r, Division, level,
			fmt.Sprintf("%d ÷ %d", dividend, divisor), quotient,
			fmt.Sprintf("%d × %d = %d, so %d ÷ %d = %d", divisor, quotient, dividend, dividend, divisor, quotient)), nil
	}

	// Level 4: terminating decimal quotients.
	divisor := rng.Pick(r, []int{2, 4, 5, 8})
	dividend := 0
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		dividend = r.Int(10, 99)
		if dividend%divisor != 0 {
			break
		}
	}
	if dividend%divisor == 0 {
		dividend++
	}
	q := float64(dividend) / float64(divisor)
	return exactDecimalQuestion(r, Division, level,
		fmt.Sprintf("%d ÷ %d", dividend, divisor), q,
		fmt.Sprintf("%d ÷ %d = %g", dividend, divisor, q)), nil
}

func negativeNumbers(r *rng.Rand, level int, _ problemgen.Weights) (*problemgen.Question, error) {
	a, b := r.NonZero(-12, 12), r.NonZero(-12, 12)
	if a > 0 && b > 0 {
		a = -a
	}

	var op string
	var result int
	switch level {
	case 1:
		op, result = "+", a+b
	case 2:
		if r.Bool() {
			op, result = "+", a+b
		} else {
			op, result = "-", a-b
		}
	default:
		if r.Bool() {
			op, result = "×", a*b
		} else {
			// Exact division: a is rebuilt as a multiple of b.
			q := r.NonZero(-10, 10)
			a = q * b
			if a > 0 && b > 0 {
				a, q = -a, -q
			}
			op, result = "÷", q
		}
	}

	text := fmt.Sprintf("%d %s %s", a, op, operand(b))
	return intQuestion(r, NegativeNumbers, level, text, result,
		fmt.Sprintf("%s = %d", text, result)), nil
}

func orderOfOperations(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	a, b, c := r.Int(2, 12), r.Int(2, 12), r.Int(2, 12)

	var text, working string
	var result int
	switch level {
	case 1:
		switch template(r, w, "add-product", "product-add", "subtract-product") {
		case "add-product":
			text, result = fmt.Sprintf("%d + %d × %d", a, b, c), a+b*c
			working = fmt.Sprintf("Multiply first: %d × %d = %d, then %d + %d = %d", b, c, b*c, a, b*c, result)
		case "product-add":
			text, result = fmt.Sprintf("%d × %d + %d", a, b, c), a*b+c
			working = fmt.Sprintf("Multiply first: %d × %d = %d, then %d + %d = %d", a, b, a*b, a*b, c, result)
		default:
			text, result = fmt.Sprintf("%d - %d × %d", a, b, c), a-b*c
			working = fmt.Sprintf("Multiply first: %d × %d = %d, then %d - %d = %d", b, c, b*c, a, b*c, result)
		}
	case 2:
		switch template(r, w, "bracket-first", "bracket-second", "mixed") {
		case "bracket-first":
			text, result = fmt.Sprintf("(%d + %d) × %d", a, b, c), (a+b)*c
			working = fmt.Sprintf("Brackets first: %d + %d = %d, then × %d = %d", a, b, a+b, c, result)
		case "bracket-second":
			text, result = fmt.Sprintf("%d × (%d - %d)", a, b, c), a*(b-c)
			working = fmt.Sprintf("Brackets first: %d - %d = %d, then %d × %d = %d", b, c, b-c, a, b-c, result)
		default:
			d := r.Int(2, 12)
			text, result = fmt.Sprintf("%d + %d × %d - %d", a, b, c, d), a+b*c-d
			working = fmt.Sprintf("Multiply first: %d × %d = %d, then work left to right: %d", b, c, b*c, result)
		}
	default:
		switch template(r, w, "divide-chain", "square-bracket", "bracket-divide") {
		case "divide-chain":
			d := r.Int(2, 6)
			k := r.Int(2, 9)
			c = d * k
			text, result = fmt.Sprintf("%d + %d × %d ÷ %d", a, b, c, d), a+b*c/d
			working = fmt.Sprintf("%d × %d = %d, %d ÷ %d = %d, then %d + %d = %d", b, c, b*c, b*c, d, b*c/d, a, b*c/d, result)
		case "square-bracket":
			s := a + b
			text, result = fmt.Sprintf("(%d + %d)² - %d", a, b, c), s*s-c
			working = fmt.Sprintf("Brackets: %d, squared: %d, then - %d = %d", s, s*s, c, result)
		default:
			d := r.Int(2, 6)
			sum := d * r.Int(2, 6)
			b = r.Int(1, sum-1)
			c = sum - b
			text, result = fmt.Sprintf("%d × (%d + %d) ÷ %d", a, b, c, d), a*sum/d
			working = fmt.Sprintf("Brackets: %d, then %d × %d = %d, ÷ %d = %d", sum, a, sum, a*sum, d, result)
		}
	}
	return intQuestion(r, OrderOfOperations, level, text, result, working), nil
}
