package topics

import "github.com/abhisek/examforge/internal/problemgen"

// Catalog returns every topic in display order. The slice is freshly
// allocated on each call.
func Catalog() []problemgen.Entry {
	return []problemgen.Entry{
		{ID: Addition, Name: "Addition", Strand: StrandNumber, MaxLevel: 4, Generate: addition},
		{ID: Subtraction, Name: "Subtraction", Strand: StrandNumber, MaxLevel: 4, Generate: subtraction},
		{ID: Multiplication, Name: "Multiplication", Strand: StrandNumber, MaxLevel: 4, Generate: multiplication},
		{ID: Division, Name: "Division", Strand: StrandNumber, MaxLevel: 4, Generate: division},
		{ID: NegativeNumbers, Name: "Negative Numbers", Strand: StrandNumber, MaxLevel: 3, Generate: negativeNumbers},
		{ID: OrderOfOperations, Name: "Order of Operations", Strand: StrandNumber, MaxLevel: 3, Generate: orderOfOperations},
		{ID: Rounding, Name: "Rounding", Strand: StrandNumber, MaxLevel: 4, Generate: rounding},
		{ID: SignificantFigs, Name: "Significant Figures", Strand: StrandNumber, MaxLevel: 3, Generate: significantFigures},
		{ID: HCF, Name: "Highest Common Factor", Strand: StrandNumber, MaxLevel: 3, Generate: hcf},
		{ID: LCM, Name: "Lowest Common Multiple", Strand: StrandNumber, MaxLevel: 3, Generate: lcm},
		{ID: PrimeFactors, Name: "Prime Factorisation", Strand: StrandNumber, MaxLevel: 3, Generate: primeFactorisation},
		{ID: PrimeCheck, Name: "Prime Numbers", Strand: StrandNumber, MaxLevel: 2, Generate: primeCheck},
		{ID: SquaresAndRoots, Name: "Squares, Cubes & Roots", Strand: StrandNumber, MaxLevel: 3, Generate: squaresAndRoots},
		{ID: IndexLaws, Name: "Laws of Indices", Strand: StrandNumber, MaxLevel: 3, Generate: indexLaws},
		{ID: StandardForm, Name: "Standard Form", Strand: StrandNumber, MaxLevel: 3, Generate: standardForm},
		{ID: StandardFormArith, Name: "Standard Form Arithmetic", Strand: StrandNumber, MaxLevel: 3, Generate: standardFormArithmetic},

		{ID: FractionSimplify, Name: "Simplifying Fractions", Strand: StrandFractions, MaxLevel: 3, Generate: fractionSimplify},
		{ID: FractionAdd, Name: "Adding & Subtracting Fractions", Strand: StrandFractions, MaxLevel: 3, Generate: fractionAddition},
		{ID: FractionMultiply, Name: "Multiplying Fractions", Strand: StrandFractions, MaxLevel: 3, Generate: fractionMultiplication},
		{ID: FractionDivide, Name: "Dividing Fractions", Strand: StrandFractions, MaxLevel: 3, Generate: fractionDivision},
		{ID: FractionDecimal, Name: "Fractions to Decimals", Strand: StrandFractions, MaxLevel: 3, Generate: fractionToDecimal},
		{ID: MixedNumbers, Name: "Mixed Numbers", Strand: StrandFractions, MaxLevel: 3, Generate: mixedNumbers},
		{ID: PercentOf, Name: "Percentage of an Amount", Strand: StrandFractions, MaxLevel: 3, Generate: percentageOfAmount},
		{ID: PercentChange, Name: "Percentage Change", Strand: StrandFractions, MaxLevel: 3, Generate: percentageChange},
		{ID: RatioSharing, Name: "Sharing in a Ratio", Strand: StrandFractions, MaxLevel: 3, Generate: ratioSharing},

		{ID: LinearEquations, Name: "Linear Equations", Strand: StrandAlgebra, MaxLevel: 3, Generate: linearEquations},
		{ID: Simultaneous, Name: "Simultaneous Equations", Strand: StrandAlgebra, MaxLevel: 3, Generate: simultaneousEquations},
		{ID: QuadraticFactorise, Name: "Factorising Quadratics", Strand: StrandAlgebra, MaxLevel: 3, Generate: quadraticFactorisation},
		{ID: QuadraticRoots, Name: "Solving Quadratics", Strand: StrandAlgebra, MaxLevel: 3, Generate: quadraticRoots},
		{ID: ExpandBrackets, Name: "Expanding Brackets", Strand: StrandAlgebra, MaxLevel: 3, Generate: expandBrackets},
		{ID: Substitution, Name: "Substitution", Strand: StrandAlgebra, MaxLevel: 3, Generate: substitution},
		{ID: NthTerm, Name: "nth Term of a Sequence", Strand: StrandAlgebra, MaxLevel: 3, Generate: nthTerm},
		{ID: Gradient, Name: "Gradient of a Line", Strand: StrandAlgebra, MaxLevel: 3, Generate: gradient},
		{ID: LinearInequalities, Name: "Linear Inequalities", Strand: StrandAlgebra, MaxLevel: 3, Generate: linearInequalities},

		{ID: Pythagoras, Name: "Pythagoras' Theorem", Strand: StrandGeometry, MaxLevel: 3, Generate: pythagoras},
		{ID: TrigRatios, Name: "Trigonometric Ratios", Strand: StrandGeometry, MaxLevel: 3, Generate: trigRatios},
		{ID: TrigExactValues, Name: "Exact Trigonometric Values", Strand: StrandGeometry, MaxLevel: 2, Generate: trigExactValues},
		{ID: Area, Name: "Area", Strand: StrandGeometry, MaxLevel: 3, Generate: area},
		{ID: Angles, Name: "Angles", Strand: StrandGeometry, MaxLevel: 3, Generate: angles},
		{ID: Circles, Name: "Circles", Strand: StrandGeometry, MaxLevel: 3, Generate: circles},
		{ID: Volume, Name: "Volume", Strand: StrandGeometry, MaxLevel: 3, Generate: volume},

		{ID: Averages, Name: "Averages & Range", Strand: StrandStatistics, MaxLevel: 3, Generate: averages},
		{ID: Probability, Name: "Probability", Strand: StrandStatistics, MaxLevel: 3, Generate: probability},
		{ID: Combinations, Name: "Counting & Combinations", Strand: StrandStatistics, MaxLevel: 3, Generate: combinations},

		{ID: SpeedDistanceTime, Name: "Speed, Distance & Time", Strand: StrandPhysics, MaxLevel: 3, Generate: speedDistanceTime},
		{ID: Kinematics, Name: "Equations of Motion", Strand: StrandPhysics, MaxLevel: 3, Generate: kinematics},
		{ID: Density, Name: "Density", Strand: StrandPhysics, MaxLevel: 3, Generate: density},
		{ID: Forces, Name: "Forces & Pressure", Strand: StrandPhysics, MaxLevel: 3, Generate: forces},
		{ID: Electricity, Name: "Electricity", Strand: StrandPhysics, MaxLevel: 3, Generate: electricity},
		{ID: Energy, Name: "Energy & Power", Strand: StrandPhysics, MaxLevel: 3, Generate: energy},
	}
}

// ByStrand returns the catalogue entries in strand s.
func ByStrand(s problemgen.Strand) []problemgen.Entry {
	var out []problemgen.Entry
	for _, e := range Catalog() {
		if e.Strand == s {
			out = append(out, e)
		}
	}
	return out
}
