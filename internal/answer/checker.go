// Package answer decides whether a learner's response matches a question's
// canonical answer.
//
// A Checker is plain data so it can travel with a question across process
// boundaries. Question-specific grammars are referenced by rule name and
// resolved through a lookup table rather than embedded as closures.
package answer

import "math"

// Strategy names an opt-in equivalence strategy.
type Strategy string

const (
	// StrategyNumeric accepts decimals within Tolerance of the correct value.
	StrategyNumeric Strategy = "numeric"

	// StrategyFraction accepts p/q in lowest terms equal to the correct value.
	StrategyFraction Strategy = "fraction"

	// StrategyScientific accepts standard form with the same exponent and a
	// mantissa within Tolerance.
	StrategyScientific Strategy = "scientific"
)

// DefaultTolerance is the absolute tolerance used when a numeric strategy
// is enabled without an explicit tolerance.
const DefaultTolerance = 0.01

// floatSlack absorbs binary floating point error at the tolerance boundary.
const floatSlack = 1e-9

// Checker is the acceptance policy for a single question.
type Checker struct {
	// Correct is the canonical answer.
	Correct string `json:"correct"`

	// Accept lists the opt-in strategies. Order is irrelevant; strategies
	// always run numeric, fraction, scientific.
	Accept []Strategy `json:"accept,omitempty"`

	// Tolerance is the absolute tolerance for numeric and scientific
	// comparison. Zero means exact.
	Tolerance float64 `json:"tolerance"`

	// Alternates are further literal answers accepted after normalisation.
	Alternates []string `json:"alternates,omitempty"`

	// Rule names a custom rule. When set its verdict is final.
	Rule string `json:"rule,omitempty"`
}

// Option configures a Checker built by New.
type Option func(*Checker)

// WithNumeric enables decimal comparison within tol.
func WithNumeric(tol float64) Option {
	return func(c *Checker) {
		c.Accept = append(c.Accept, StrategyNumeric)
		c.Tolerance = tol
	}
}

// WithFractions enables reduced-fraction comparison.
func WithFractions() Option {
	return func(c *Checker) { c.Accept = append(c.Accept, StrategyFraction) }
}

// WithScientific enables standard-form comparison.
func WithScientific() Option {
	return func(c *Checker) { c.Accept = append(c.Accept, StrategyScientific) }
}

// WithAlternates adds literal alternates.
func WithAlternates(alts ...string) Option {
	return func(c *Checker) { c.Alternates = append(c.Alternates, alts...) }
}

// WithRule sets the custom rule.
func WithRule(name string) Option {
	return func(c *Checker) { c.Rule = name }
}

// New builds a Checker for correct. Tolerance starts at DefaultTolerance.
func New(correct string, opts ...Option) *Checker {
	c := &Checker{Correct: correct, Tolerance: DefaultTolerance}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Integer returns the policy for whole-number answers: literal match or any
// decimal spelling of the same value ("85.0").
func Integer(correct string) *Checker {
	return New(correct, WithNumeric(0))
}

// Decimal returns the policy for answers rounded to dp decimal places,
// accepting anything within one unit in the last place so that learners who
// rounded an intermediate step are not marked wrong.
func Decimal(correct string, dp int) *Checker {
	return New(correct, WithNumeric(math.Pow(10, -float64(dp))))
}

// Check reports whether user is an acceptable answer.
func (c *Checker) Check(user string) bool {
	if c.Rule != "" {
		rule, ok := LookupRule(c.Rule)
		if !ok {
			return false
		}
		return rule(c.Correct, user)
	}

	u := Normalize(user)
	if u == "" {
		return false
	}
	if u == Normalize(c.Correct) {
		return true
	}
	for _, alt := range c.Alternates {
		if u == Normalize(alt) {
			return true
		}
	}

	if c.accepts(StrategyNumeric) && numericEqual(c.Correct, user, c.Tolerance) {
		return true
	}
	if c.accepts(StrategyFraction) && fractionEqual(c.Correct, user) {
		return true
	}
	if c.accepts(StrategyScientific) && scientificEqual(c.Correct, user, c.Tolerance) {
		return true
	}
	return false
}

func (c *Checker) accepts(s Strategy) bool {
	for _, a := range c.Accept {
		if a == s {
			return true
		}
	}
	return false
}

// Check is the functional form of Checker.Check.
func Check(correct, user string, c Checker) bool {
	c.Correct = correct
	return c.Check(user)
}

func numericEqual(correct, user string, tol float64) bool {
	u, ok := parseDecimal(user)
	if !ok {
		return false
	}
	v, ok := parseValue(correct)
	if !ok {
		return false
	}
	return withinTolerance(u, v, tol)
}

func withinTolerance(a, b, tol float64) bool {
	if tol < 0 {
		tol = 0
	}
	return math.Abs(a-b) <= tol+floatSlack
}

func fractionEqual(correct, user string) bool {
	un, ud, ok := parseFraction(user)
	if !ok || ud <= 0 {
		return false
	}
	// The learner's own form must already be in lowest terms.
	rn, rd := reduce(un, ud)
	if rn != un || rd != ud {
		return false
	}
	cn, cd, ok := parseRational(correct)
	if !ok {
		return false
	}
	cn, cd = reduce(cn, cd)
	return rn == cn && rd == cd
}

func scientificEqual(correct, user string, tol float64) bool {
	um, ue, ok := parseScientific(user)
	if !ok {
		return false
	}
	cm, ce, ok := parseScientific(correct)
	if !ok {
		v, vok := parseValue(correct)
		if !vok {
			return false
		}
		cm, ce = standardForm(v)
	}
	return ue == ce && withinTolerance(um, cm, tol)
}
