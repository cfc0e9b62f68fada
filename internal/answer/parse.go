package answer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	operatorRe   = regexp.MustCompile(`\s*([=+\-*/×÷(),<>^:;≤≥])\s*`)

	decimalRe    = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)
	fractionRe   = regexp.MustCompile(`^([+-]?\d+)/([+-]?\d+)$`)
	integerRe    = regexp.MustCompile(`^[+-]?\d+$`)
	scientificRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+))(?:[×x*·]10(?:\^|\*\*)\(?([+-]?\d+)\)?|e([+-]?\d+))$`)
)

var minusLike = strings.NewReplacer("−", "-", "–", "-", "—", "-", "﹣", "-", "－", "-")

// Normalize trims, case-folds and collapses whitespace, folds Unicode minus
// signs to '-', and removes spaces around operators and punctuation.
func Normalize(s string) string {
	s = minusLike.Replace(strings.TrimSpace(s))
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = operatorRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// compact normalises s and drops every remaining space.
func compact(s string) string {
	return strings.ReplaceAll(Normalize(s), " ", "")
}

// parseDecimal parses a plain decimal or integer. Exponent notation,
// infinities and NaN are rejected.
func parseDecimal(s string) (float64, bool) {
	s = Normalize(s)
	if !decimalRe.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFraction parses p/q or an integer p (as p/1). The denominator sign is
// returned as written.
func parseFraction(s string) (int, int, bool) {
	s = Normalize(s)
	if integerRe.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		return n, 1, true
	}
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

// parseRational parses a fraction, an integer or a terminating decimal with
// at most nine decimal places into num/den with den > 0.
func parseRational(s string) (int, int, bool) {
	if n, d, ok := parseFraction(s); ok {
		if d == 0 {
			return 0, 0, false
		}
		if d < 0 {
			n, d = -n, -d
		}
		return n, d, true
	}
	c := Normalize(s)
	if !decimalRe.MatchString(c) {
		return 0, 0, false
	}
	neg := strings.HasPrefix(c, "-")
	c = strings.TrimLeft(c, "+-")
	whole, frac, _ := strings.Cut(c, ".")
	if len(frac) > 9 {
		return 0, 0, false
	}
	if whole == "" {
		whole = "0"
	}
	digits, err := strconv.Atoi(whole + frac)
	if err != nil {
		return 0, 0, false
	}
	den := int(math.Pow10(len(frac)))
	if neg {
		digits = -digits
	}
	return digits, den, true
}

// ParseNumber evaluates a decimal, fraction or standard-form string.
func ParseNumber(s string) (float64, bool) {
	return parseValue(s)
}

// parseValue evaluates a decimal, fraction or standard-form string.
func parseValue(s string) (float64, bool) {
	if v, ok := parseDecimal(s); ok {
		return v, true
	}
	if n, d, ok := parseFraction(s); ok && d != 0 {
		return float64(n) / float64(d), true
	}
	if m, e, ok := parseScientific(s); ok {
		return m * math.Pow(10, float64(e)), true
	}
	return 0, false
}

// parseScientific parses a×10^n, a*10^n, a×10ⁿ (superscript) and aen forms.
// The mantissa must lie in [1, 10) in absolute value.
func parseScientific(s string) (float64, int, bool) {
	s = compact(expandSuperscript(s))
	m := scientificRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	mant, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	expStr := m[2]
	if expStr == "" {
		expStr = m[3]
	}
	exp, err := strconv.Atoi(expStr)
	if err != nil {
		return 0, 0, false
	}
	if a := math.Abs(mant); a != 0 && (a < 1 || a >= 10) {
		return 0, 0, false
	}
	return mant, exp, true
}

// expandSuperscript rewrites a run of superscript characters as '^' followed
// by plain digits, so "10⁻⁴" becomes "10^-4".
func expandSuperscript(s string) string {
	var b strings.Builder
	inRun := false
	for _, r := range s {
		plain := mathfmt.FromSuperscript(string(r))
		isSup := plain != string(r)
		if isSup && !inRun {
			b.WriteByte('^')
		}
		inRun = isSup
		b.WriteString(plain)
	}
	return b.String()
}

func standardForm(v float64) (float64, int) {
	return mathfmt.StandardForm(v)
}

func reduce(num, den int) (int, int) {
	return mathutil.ReduceFraction(num, den)
}
