package answer

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/abhisek/examforge/internal/mathutil"
)

// Rule is a question-specific equivalence predicate. Rules derive
// everything they need from the canonical answer string.
type Rule func(correct, user string) bool

// Rule names understood by LookupRule.
const (
	RuleRoots        = "roots"
	RuleFactorised   = "factorised"
	RulePolynomial   = "polynomial"
	RuleNthTerm      = "nth-term"
	RuleCoordinates  = "coordinates"
	RuleSurd         = "surd"
	RuleInequality   = "inequality"
	RuleYesNo        = "yes-no"
	RulePrimeFactors = "prime-factors"
)

var rules = map[string]Rule{
	RuleRoots:        rootsRule,
	RuleFactorised:   factorisedRule,
	RulePolynomial:   polynomialRule,
	RuleNthTerm:      polynomialRule,
	RuleCoordinates:  coordinatesRule,
	RuleSurd:         surdRule,
	RuleInequality:   inequalityRule,
	RuleYesNo:        yesNoRule,
	RulePrimeFactors: primeFactorsRule,
}

// LookupRule returns the rule registered under name.
func LookupRule(name string) (Rule, bool) {
	r, ok := rules[name]
	return r, ok
}

// RuleNames returns every registered rule name in sorted order.
func RuleNames() []string {
	names := make([]string, 0, len(rules))
	for n := range rules {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// literalMatch is the first check every rule makes.
func literalMatch(correct, user string) (matched, empty bool) {
	u := compact(user)
	if u == "" {
		return false, true
	}
	return u == compact(correct), false
}

// rootTolerance allows two-decimal-place spellings of rational roots.
const rootTolerance = 0.01

var (
	conjunctionRe = regexp.MustCompile(`\b(or|and)\b|;`)
	assignPrefix  = regexp.MustCompile(`^[a-z]=`)
)

// rootsRule accepts the same set of roots in any order and spelling:
// "x = 2, x = -3", "x=-3 or x=2", "2, -3".
func rootsRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	want, ok := parseRootSet(correct)
	if !ok {
		return false
	}
	got, ok := parseRootSet(user)
	if !ok || len(got) != len(want) {
		return false
	}
	for i := range want {
		if !withinTolerance(got[i], want[i], rootTolerance) {
			return false
		}
	}
	return true
}

func parseRootSet(s string) ([]float64, bool) {
	n := conjunctionRe.ReplaceAllString(Normalize(s), ",")
	n = strings.ReplaceAll(n, " ", "")
	var roots []float64
	for _, part := range strings.Split(n, ",") {
		if part == "" {
			continue
		}
		part = assignPrefix.ReplaceAllString(part, "")
		v, ok := parseValue(part)
		if !ok {
			return nil, false
		}
		roots = append(roots, v)
	}
	if len(roots) == 0 {
		return nil, false
	}
	sort.Float64s(roots)
	return roots, true
}

// poly maps power -> integer coefficient. Zero coefficients are never stored.
type poly map[int]int

var (
	termRe     = regexp.MustCompile(`^([+-]?)(\d*)(?:([a-z])(?:\^(\d+))?)?$`)
	variableRe = regexp.MustCompile(`[a-z]`)
)

// parsePoly parses a sum of integer-coefficient monomials in a single
// variable, e.g. "3x^2-x+5". The variable must be v when v is non-empty.
func parsePoly(s, v string) (poly, bool) {
	c := compact(expandSuperscript(s))
	c = strings.ReplaceAll(c, "*", "")
	if c == "" {
		return nil, false
	}
	var terms []string
	start := 0
	for i := 1; i < len(c); i++ {
		if (c[i] == '+' || c[i] == '-') && c[i-1] != '^' {
			terms = append(terms, c[start:i])
			start = i
		}
	}
	terms = append(terms, c[start:])

	p := poly{}
	for _, t := range terms {
		m := termRe.FindStringSubmatch(t)
		if m == nil || t == "" || t == "+" || t == "-" {
			return nil, false
		}
		sign, digits, name, power := m[1], m[2], m[3], m[4]
		if name == "" && digits == "" {
			return nil, false
		}
		coef := 1
		if digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return nil, false
			}
			coef = n
		}
		if sign == "-" {
			coef = -coef
		}
		deg := 0
		if name != "" {
			if v != "" && name != v {
				return nil, false
			}
			deg = 1
			if power != "" {
				n, err := strconv.Atoi(power)
				if err != nil {
					return nil, false
				}
				deg = n
			}
		}
		p[deg] += coef
		if p[deg] == 0 {
			delete(p, deg)
		}
	}
	return p, true
}

func (p poly) equal(q poly) bool {
	if len(p) != len(q) {
		return false
	}
	for k, v := range p {
		if q[k] != v {
			return false
		}
	}
	return true
}

func (p poly) mul(q poly) poly {
	out := poly{}
	for dp, cp := range p {
		for dq, cq := range q {
			out[dp+dq] += cp * cq
		}
	}
	for k, v := range out {
		if v == 0 {
			delete(out, k)
		}
	}
	return out
}

func (p poly) degree() int {
	d := -1
	for k := range p {
		if k > d {
			d = k
		}
	}
	return d
}

// primitive reports whether the coefficients share no common factor.
func (p poly) primitive() bool {
	g := 0
	for _, c := range p {
		g = gcdInt(g, c)
	}
	return g == 1
}

func gcdInt(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func variableOf(s string) string {
	return variableRe.FindString(Normalize(s))
}

// polynomialRule accepts any term order and spacing of the same polynomial.
func polynomialRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	v := variableOf(correct)
	want, ok := parsePoly(correct, v)
	if !ok {
		return false
	}
	got, ok := parsePoly(user, v)
	return ok && got.equal(want)
}

var factorRe = regexp.MustCompile(`\(([^()]+)\)(?:\^(\d+))?`)

// parseFactorised parses k(ax+b)(cx+d)... into its factors. Every bracketed
// factor must be linear and primitive, which rejects answers that are not
// fully factorised.
func parseFactorised(s, v string) (poly, int, bool) {
	c := compact(expandSuperscript(s))
	c = strings.ReplaceAll(c, "*", "")
	idx := strings.Index(c, "(")
	if idx < 0 {
		return nil, 0, false
	}
	product := poly{0: 1}
	if prefix := c[:idx]; prefix != "" {
		switch prefix {
		case "-":
			product = poly{0: -1}
		case "+":
		default:
			p, ok := parsePoly(prefix, v)
			if !ok || len(p) != 1 {
				return nil, 0, false
			}
			product = p
		}
	}
	rest := c[idx:]
	count := 0
	for rest != "" {
		loc := factorRe.FindStringSubmatchIndex(rest)
		if loc == nil || loc[0] != 0 {
			return nil, 0, false
		}
		inner := rest[loc[2]:loc[3]]
		power := 1
		if loc[4] >= 0 {
			n, err := strconv.Atoi(rest[loc[4]:loc[5]])
			if err != nil || n < 1 {
				return nil, 0, false
			}
			power = n
		}
		f, ok := parsePoly(inner, v)
		if !ok || f.degree() != 1 || !f.primitive() {
			return nil, 0, false
		}
		for i := 0; i < power; i++ {
			product = product.mul(f)
			count++
		}
		rest = rest[loc[1]:]
	}
	return product, count, true
}

// factorisedRule accepts any ordering of the same fully factorised product.
func factorisedRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	v := variableOf(correct)
	want, wantCount, ok := parseFactorised(correct, v)
	if !ok {
		return false
	}
	got, gotCount, ok := parseFactorised(user, v)
	return ok && gotCount == wantCount && got.equal(want)
}

var pairRe = regexp.MustCompile(`^\(?([^,()]+),([^,()]+)\)?$`)

func parseCoordinates(s string) (map[string]float64, bool) {
	n := strings.ReplaceAll(conjunctionRe.ReplaceAllString(Normalize(s), ","), " ", "")
	out := map[string]float64{}
	if m := pairRe.FindStringSubmatch(n); m != nil && !strings.Contains(n, "=") {
		x, ok1 := parseValue(m[1])
		y, ok2 := parseValue(m[2])
		if !ok1 || !ok2 {
			return nil, false
		}
		out["x"], out["y"] = x, y
		return out, true
	}
	for _, part := range strings.Split(n, ",") {
		if part == "" {
			continue
		}
		name, val, found := strings.Cut(part, "=")
		if !found || len(name) != 1 {
			return nil, false
		}
		v, ok := parseValue(val)
		if !ok {
			return nil, false
		}
		out[name] = v
	}
	return out, len(out) > 0
}

// coordinatesRule accepts "x = 2, y = -1", "y=-1, x=2" and "(2, -1)".
func coordinatesRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	want, ok := parseCoordinates(correct)
	if !ok {
		return false
	}
	got, ok := parseCoordinates(user)
	if !ok || len(got) != len(want) {
		return false
	}
	for k, v := range want {
		g, present := got[k]
		if !present || !withinTolerance(g, v, rootTolerance) {
			return false
		}
	}
	return true
}

var (
	sqrtWordRe    = regexp.MustCompile(`sqrt|root`)
	surdDigitsRe  = regexp.MustCompile(`√(\d+)`)
	implicitMulRe = regexp.MustCompile(`([\d)])(√)`)
)

var surdFunctions = map[string]govaluate.ExpressionFunction{
	"sqrt": func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, errBadArity
		}
		x, ok := args[0].(float64)
		if !ok || x < 0 {
			return nil, errBadArity
		}
		return math.Sqrt(x), nil
	},
}

// surdExpression rewrites a surd spelling into a govaluate expression.
func surdExpression(s string) string {
	c := compact(s)
	c = sqrtWordRe.ReplaceAllString(c, "√")
	c = surdDigitsRe.ReplaceAllString(c, "√($1)")
	c = implicitMulRe.ReplaceAllString(c, "$1*$2")
	return strings.ReplaceAll(c, "√", "sqrt")
}

func evalSurd(s string) (v float64, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(surdExpression(s), surdFunctions)
	if err != nil {
		return 0, false
	}
	res, err := expr.Evaluate(nil)
	if err != nil {
		return 0, false
	}
	f, isFloat := res.(float64)
	if !isFloat || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// surdRule accepts exact-form answers that evaluate to the same value:
// "√3/2", "sqrt(3)/2", "1/√2" for "√2/2". Decimal approximations are
// rejected because the exercise asks for exact values.
func surdRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	if strings.Contains(user, ".") {
		return false
	}
	want, ok := evalSurd(correct)
	if !ok {
		return false
	}
	got, ok := evalSurd(user)
	return ok && withinTolerance(got, want, 0)
}

var (
	varFirstRe   = regexp.MustCompile(`^([a-z])(<=|>=|<|>)(.+)$`)
	valueFirstRe = regexp.MustCompile(`^(.+?)(<=|>=|<|>)([a-z])$`)
)

var flipOp = map[string]string{"<": ">", ">": "<", "<=": ">=", ">=": "<="}

func parseInequality(s string) (name, op string, v float64, ok bool) {
	c := compact(s)
	c = strings.NewReplacer("≤", "<=", "≥", ">=", "=<", "<=", "=>", ">=").Replace(c)
	if m := varFirstRe.FindStringSubmatch(c); m != nil {
		v, ok = parseValue(m[3])
		return m[1], m[2], v, ok
	}
	if m := valueFirstRe.FindStringSubmatch(c); m != nil {
		v, ok = parseValue(m[1])
		return m[3], flipOp[m[2]], v, ok
	}
	return "", "", 0, false
}

// inequalityRule accepts "x > 3", "x>3" and "3 < x" as the same answer.
func inequalityRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	wn, wop, wv, ok := parseInequality(correct)
	if !ok {
		return false
	}
	gn, gop, gv, ok := parseInequality(user)
	return ok && gn == wn && gop == wop && withinTolerance(gv, wv, 0)
}

var yesWords = map[string]bool{"yes": true, "y": true, "true": true}
var noWords = map[string]bool{"no": true, "n": true, "false": true}

// yesNoRule treats y/yes/true and n/no/false as the same answer.
func yesNoRule(correct, user string) bool {
	c, u := compact(correct), compact(user)
	switch {
	case yesWords[c]:
		return yesWords[u]
	case noWords[c]:
		return noWords[u]
	default:
		return c == u && u != ""
	}
}

var productSepRe = regexp.MustCompile(`[×x*·]`)

// parsePrimeFactors parses "2³ × 3 × 5", "2^3*3*5" or "2×2×2×3×5" into a
// prime -> exponent map. Every base must be prime.
func parsePrimeFactors(s string) (map[int]int, bool) {
	c := compact(expandSuperscript(s))
	if c == "" {
		return nil, false
	}
	out := map[int]int{}
	for _, part := range productSepRe.Split(c, -1) {
		base, exp, hasExp := strings.Cut(part, "^")
		b, err := strconv.Atoi(base)
		if err != nil || !mathutil.IsPrime(b) {
			return nil, false
		}
		e := 1
		if hasExp {
			e, err = strconv.Atoi(strings.Trim(exp, "()"))
			if err != nil || e < 1 {
				return nil, false
			}
		}
		out[b] += e
	}
	return out, true
}

// primeFactorsRule accepts any ordering and grouping of the same prime
// factorisation.
func primeFactorsRule(correct, user string) bool {
	if ok, empty := literalMatch(correct, user); ok || empty {
		return ok
	}
	want, ok := parsePrimeFactors(correct)
	if !ok {
		return false
	}
	got, ok := parsePrimeFactors(user)
	if !ok || len(got) != len(want) {
		return false
	}
	for p, e := range want {
		if got[p] != e {
			return false
		}
	}
	return true
}
