// Package topics holds the catalogue of question generators: one function
// per topic, grouped into strands.
package topics

import "github.com/abhisek/examforge/internal/problemgen"

// Strands in display order.
const (
	StrandNumber     problemgen.Strand = "number"
	StrandFractions  problemgen.Strand = "fractions-ratio"
	StrandAlgebra    problemgen.Strand = "algebra"
	StrandGeometry   problemgen.Strand = "geometry-trig"
	StrandStatistics problemgen.Strand = "statistics"
	StrandPhysics    problemgen.Strand = "physics"
)

// AllStrands returns all strands in display order.
func AllStrands() []problemgen.Strand {
	return []problemgen.Strand{
		StrandNumber,
		StrandFractions,
		StrandAlgebra,
		StrandGeometry,
		StrandStatistics,
		StrandPhysics,
	}
}

// StrandDisplayName returns a human-readable name for a strand.
func StrandDisplayName(s problemgen.Strand) string {
	switch s {
	case StrandNumber:
		return "Number"
	case StrandFractions:
		return "Fractions, Percentages & Ratio"
	case StrandAlgebra:
		return "Algebra"
	case StrandGeometry:
		return "Geometry & Trigonometry"
	case StrandStatistics:
		return "Statistics & Probability"
	case StrandPhysics:
		return "Physics"
	default:
		return string(s)
	}
}

// Topic identifiers. The catalogue is closed: every id below has exactly one
// generator in Catalog.
const (
	Addition          problemgen.TopicID = "addition"
	Subtraction       problemgen.TopicID = "subtraction"
	Multiplication    problemgen.TopicID = "multiplication"
	Division          problemgen.TopicID = "division"
	NegativeNumbers   problemgen.TopicID = "negative-numbers"
	OrderOfOperations problemgen.TopicID = "order-of-operations"
	Rounding          problemgen.TopicID = "rounding"
	SignificantFigs   problemgen.TopicID = "significant-figures"
	HCF               problemgen.TopicID = "hcf"
	LCM               problemgen.TopicID = "lcm"
	PrimeFactors      problemgen.TopicID = "prime-factorisation"
	PrimeCheck        problemgen.TopicID = "prime-check"
	SquaresAndRoots   problemgen.TopicID = "squares-and-roots"
	IndexLaws         problemgen.TopicID = "index-laws"
	StandardForm      problemgen.TopicID = "standard-form"
	StandardFormArith problemgen.TopicID = "standard-form-arithmetic"

	FractionSimplify problemgen.TopicID = "fraction-simplify"
	FractionAdd      problemgen.TopicID = "fraction-addition"
	FractionMultiply problemgen.TopicID = "fraction-multiplication"
	FractionDivide   problemgen.TopicID = "fraction-division"
	FractionDecimal  problemgen.TopicID = "fraction-to-decimal"
	MixedNumbers     problemgen.TopicID = "mixed-numbers"
	PercentOf        problemgen.TopicID = "percentage-of-amount"
	PercentChange    problemgen.TopicID = "percentage-change"
	RatioSharing     problemgen.TopicID = "ratio-sharing"

	LinearEquations    problemgen.TopicID = "linear-equations"
	Simultaneous       problemgen.TopicID = "simultaneous-equations"
	QuadraticFactorise problemgen.TopicID = "quadratic-factorisation"
	QuadraticRoots     problemgen.TopicID = "quadratic-roots"
	ExpandBrackets     problemgen.TopicID = "expand-brackets"
	Substitution       problemgen.TopicID = "substitution"
	NthTerm            problemgen.TopicID = "nth-term"
	Gradient           problemgen.TopicID = "gradient"
	LinearInequalities problemgen.TopicID = "linear-inequalities"

	Pythagoras      problemgen.TopicID = "pythagoras"
	TrigRatios      problemgen.TopicID = "trig-ratios"
	TrigExactValues problemgen.TopicID = "trig-exact-values"
	Area            problemgen.TopicID = "area"
	Angles          problemgen.TopicID = "angles"
	Circles         problemgen.TopicID = "circles"
	Volume          problemgen.TopicID = "volume"

	Averages     problemgen.TopicID = "averages"
	Probability  problemgen.TopicID = "probability"
	Combinations problemgen.TopicID = "combinations"

	SpeedDistanceTime problemgen.TopicID = "speed-distance-time"
	Kinematics        problemgen.TopicID = "kinematics"
	Density           problemgen.TopicID = "density"
	Forces            problemgen.TopicID = "forces"
	Electricity       problemgen.TopicID = "electricity"
	Energy            problemgen.TopicID = "energy"
)
