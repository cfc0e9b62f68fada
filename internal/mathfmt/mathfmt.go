// Package mathfmt renders numbers the way questions and answers display them.
package mathfmt

import (
	"math"
	"strconv"
	"strings"
)

// TimesTen separates a mantissa from its power of ten in standard form.
const TimesTen = "×10"

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'-': '⁻',
}

// Superscript replaces digits and minus signs with their Unicode superscript
// forms. Any other character passes through unchanged.
func Superscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		if sup, ok := superscripts[r]; ok {
			b.WriteRune(sup)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SuperscriptInt renders n in superscript digits.
func SuperscriptInt(n int) string {
	return Superscript(strconv.Itoa(n))
}

// FromSuperscript is the inverse of Superscript.
func FromSuperscript(s string) string {
	var b strings.Builder
	for _, r := range s {
		replaced := false
		for plain, sup := range superscripts {
			if r == sup {
				b.WriteRune(plain)
				replaced = true
				break
			}
		}
		if !replaced {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CleanDecimal renders x without a trailing ".0" or trailing zeros.
// Floating point noise beyond ten decimal places is rounded away, and values
// within 1e-12 of zero render as "0".
func CleanDecimal(x float64) string {
	if math.Abs(x) < 1e-12 {
		return "0"
	}
	s := strconv.FormatFloat(x, 'f', 10, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Scientific renders mantissa×10^exponent with a superscript exponent,
// e.g. Scientific(3.2, -4) == "3.2×10⁻⁴".
func Scientific(mantissa float64, exponent int) string {
	return CleanDecimal(mantissa) + TimesTen + SuperscriptInt(exponent)
}

// StandardForm splits x into a mantissa in [1, 10) and a power of ten.
// Zero yields (0, 0).
func StandardForm(x float64) (float64, int) {
	if x == 0 {
		return 0, 0
	}
	exp := int(math.Floor(math.Log10(math.Abs(x))))
	m := Round(x/math.Pow(10, float64(exp)), 10)
	// Rounding can push the mantissa to exactly 10.
	if math.Abs(m) >= 10 {
		m /= 10
		exp++
	}
	return m, exp
}

// Round rounds x half away from zero to dp decimal places.
func Round(x float64, dp int) float64 {
	p := math.Pow(10, float64(dp))
	return math.Round(x*p) / p
}

// Fixed renders x rounded to exactly dp decimal places, keeping zeros.
func Fixed(x float64, dp int) string {
	s := strconv.FormatFloat(Round(x, dp), 'f', dp, 64)
	if strings.Trim(s, "-0.") == "" {
		return strings.TrimPrefix(s, "-")
	}
	return s
}

// RoundSF rounds x to sf significant figures.
func RoundSF(x float64, sf int) float64 {
	if x == 0 {
		return 0
	}
	mag := int(math.Floor(math.Log10(math.Abs(x))))
	return Round(x, sf-1-mag)
}

// Fraction renders num/den, collapsing a unit denominator to an integer.
func Fraction(num, den int) string {
	if den == 1 {
		return strconv.Itoa(num)
	}
	return strconv.Itoa(num) + "/" + strconv.Itoa(den)
}
