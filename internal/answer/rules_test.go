package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkRule(t *testing.T, rule, correct string, accept, reject []string) {
	t.Helper()
	c := New(correct, WithRule(rule))
	assert.True(t, c.Check(correct), "%s: canonical %q must pass", rule, correct)
	for _, in := range accept {
		assert.True(t, c.Check(in), "%s: %q should accept %q", rule, correct, in)
	}
	for _, in := range reject {
		assert.False(t, c.Check(in), "%s: %q should reject %q", rule, correct, in)
	}
}

func TestRootsRule(t *testing.T) {
	checkRule(t, RuleRoots, "x = -3, x = 2",
		[]string{"x=2, x=-3", "x = 2 or x = -3", "2, -3", "-3,2", "x=2; x=-3"},
		[]string{"x = 2", "x = 3, x = -2", "", "x = 2, x = -3, x = 4"},
	)
	checkRule(t, RuleRoots, "x = -3/2, x = 4",
		[]string{"x = -1.5, x = 4", "4, -3/2"},
		[]string{"x = 1.5, x = 4"},
	)
}

func TestFactorisedRule(t *testing.T) {
	checkRule(t, RuleFactorised, "(x + 2)(x - 3)",
		[]string{"(x-3)(x+2)", "(x+2)(x-3)", "( x + 2 ) ( x − 3 )", "(2+x)(-3+x)"},
		[]string{"x^2-x-6", "(x+3)(x-2)", "(x+2)", "", "(x+2)(x-3)(x+1)"},
	)
	checkRule(t, RuleFactorised, "(2x + 1)(x - 3)",
		[]string{"(x-3)(2x+1)"},
		[]string{"(4x+2)(x-3)/2", "(x+1)(2x-3)"},
	)
	checkRule(t, RuleFactorised, "2(x + 1)(x + 2)",
		[]string{"2(x+2)(x+1)"},
		[]string{"(2x+2)(x+2)", "(x+1)(x+2)"},
	)
	checkRule(t, RuleFactorised, "x(x + 5)",
		[]string{"x(5+x)"},
		[]string{"x^2+5x"},
	)
}

func TestPolynomialRule(t *testing.T) {
	checkRule(t, RulePolynomial, "x^2 + 5x + 6",
		[]string{"x²+5x+6", "6 + 5x + x^2", "5x+x^2+6", "x^2+5*x+6"},
		[]string{"x^2+5x+7", "x^2+6", "(x+2)(x+3)", "y^2+5y+6", ""},
	)
	checkRule(t, RulePolynomial, "6x^2 - x - 2",
		[]string{"-x+6x^2-2"},
		[]string{"6x^2+x-2"},
	)
}

func TestNthTermRule(t *testing.T) {
	checkRule(t, RuleNthTerm, "3n + 2",
		[]string{"2+3n", "3n+2"},
		[]string{"3n", "3x+2", "n+2"},
	)
	checkRule(t, RuleNthTerm, "-4n + 20",
		[]string{"20-4n", "20 − 4n"},
		[]string{"4n+20"},
	)
}

func TestCoordinatesRule(t *testing.T) {
	checkRule(t, RuleCoordinates, "x = 2, y = -1",
		[]string{"y=-1, x=2", "(2, -1)", "x=2 and y=-1", "2,-1"},
		[]string{"(-1, 2)", "x=2", "x=2, y=1"},
	)
}

func TestSurdRule(t *testing.T) {
	checkRule(t, RuleSurd, "√3/2",
		[]string{"sqrt(3)/2", "√(3)/2", "root3/2"},
		[]string{"0.866", "√2/2", "3/2", ""},
	)
	checkRule(t, RuleSurd, "√2/2",
		[]string{"1/√2", "1/sqrt(2)"},
		[]string{"0.7071"},
	)
	checkRule(t, RuleSurd, "-1/2",
		[]string{"−1/2"},
		[]string{"1/2", "-0.5"},
	)
	checkRule(t, RuleSurd, "2√3",
		[]string{"√12", "2*sqrt(3)"},
		[]string{"√3"},
	)
}

func TestInequalityRule(t *testing.T) {
	checkRule(t, RuleInequality, "x > 3",
		[]string{"x>3", "3 < x", "X > 3"},
		[]string{"x >= 3", "x < 3", "3 > x", "x > 4", "y > 3"},
	)
	checkRule(t, RuleInequality, "x ≤ -7/2",
		[]string{"x <= -3.5", "-7/2 >= x", "x =< -3.5"},
		[]string{"x < -3.5"},
	)
}

func TestYesNoRule(t *testing.T) {
	checkRule(t, RuleYesNo, "Yes",
		[]string{"y", "YES", "true"},
		[]string{"no", "n", "maybe", ""},
	)
	checkRule(t, RuleYesNo, "No",
		[]string{"n", "false"},
		[]string{"yes"},
	)
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	assert.Contains(t, names, RuleRoots)
	assert.Contains(t, names, RuleSurd)
	for _, n := range names {
		_, ok := LookupRule(n)
		assert.True(t, ok, n)
	}
}

func TestPrimeFactorsRule(t *testing.T) {
	checkRule(t, RulePrimeFactors, "2³ × 3 × 5",
		[]string{"2^3 × 3 × 5", "2×2×2×3×5", "5 x 3 x 2^3", "2^(3)*3*5", "2^2*2*3*5"},
		[]string{"2^2×3×5", "8×3×5", "120", "2³×3", ""},
	)
}
