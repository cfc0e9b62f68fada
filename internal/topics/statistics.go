package topics

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/examforge/internal/mathfmt"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

func averages(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		if template(r, w, "mean", "range") == "mean" {
			values := meanList(r, r.Int(4, 6))
			sum := 0
			for _, v := range values {
				sum += v
			}
			return intQuestion(r, Averages, level,
				fmt.Sprintf("Find the mean of %s.", joinComma(values)), sum/len(values),
				fmt.Sprintf("Total = %d, and %d ÷ %d = %d", sum, sum, len(values), sum/len(values))), nil
		}
		values := make([]int, r.Int(5, 8))
		for i := range values {
			values[i] = r.Int(1, 50)
		}
		lo, hi := slices.Min(values), slices.Max(values)
		return intQuestion(r, Averages, level,
			fmt.Sprintf("Find the range of %s.", joinComma(values)), hi-lo,
			fmt.Sprintf("Range = %d - %d = %d", hi, lo, hi-lo)), nil
	case 2:
		if template(r, w, "median", "mode") == "median" {
			values := make([]int, r.Int(5, 8))
			for i := range values {
				values[i] = r.Int(1, 30)
			}
			sorted := slices.Clone(values)
			slices.Sort(sorted)
			n := len(sorted)
			median := float64(sorted[n/2])
			if n%2 == 0 {
				median = float64(sorted[n/2-1]+sorted[n/2]) / 2
			}
			return exactDecimalQuestion(r, Averages, level,
				fmt.Sprintf("Find the median of %s.", joinComma(values)), median,
				fmt.Sprintf("In order: %s. The median is %s", joinComma(sorted), mathfmt.CleanDecimal(median))), nil
		}
		pool := make([]int, 20)
		for i := range pool {
			pool[i] = i + 1
		}
		picked := rng.Sample(r, pool, r.Int(4, 6))
		mode := picked[0]
		values := append([]int{mode, mode}, picked...)
		rng.Shuffle(r, values)
		return intQuestion(r, Averages, level,
			fmt.Sprintf("Find the mode of %s.", joinComma(values)), mode,
			fmt.Sprintf("%d appears 3 times, more than any other value", mode)), nil
	}

	// Frequency table mean.
	start := r.Int(0, 3)
	var xs, fs []string
	sumF, sumFX := 0, 0
	for x := start; x < start+5; x++ {
		f := r.Int(1, 12)
		xs = append(xs, fmt.Sprint(x))
		fs = append(fs, fmt.Sprint(f))
		sumF += f
		sumFX += f * x
	}
	mean := float64(sumFX) / float64(sumF)
	return decimalQuestion(r, Averages, level,
		fmt.Sprintf("A frequency table has values %s with frequencies %s. Find the mean to 1 decimal place.",
			strings.Join(xs, ", "), strings.Join(fs, ", ")),
		mean, 1,
		fmt.Sprintf("Σfx = %d and Σf = %d, so mean = %d ÷ %d = %s", sumFX, sumF, sumFX, sumF, mathfmt.Fixed(mean, 3))), nil
}

// meanList draws n values in [1, 30] whose mean is a whole number.
func meanList(r *rng.Rand, n int) []int {
	m := r.Int(5, 15)
	values := make([]int, n)
	for attempt := 0; attempt < problemgen.MaxAttempts; attempt++ {
		sum := 0
		for i := 0; i < n-1; i++ {
			values[i] = r.Int(1, 25)
			sum += values[i]
		}
		last := m*n - sum
		if last >= 1 && last <= 30 {
			values[n-1] = last
			return values
		}
	}
	for i := range values {
		values[i] = m
	}
	return values
}

var counterColours = []string{"red", "blue", "green", "yellow"}

func probability(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	counts := make([]int, 3)
	total := 0
	for i := range counts {
		counts[i] = r.Int(2, 9)
		total += counts[i]
	}
	colours := rng.Sample(r, counterColours, 3)
	bag := fmt.Sprintf("A bag holds %d %s, %d %s and %d %s counters.",
		counts[0], colours[0], counts[1], colours[1], counts[2], colours[2])
	k := r.Intn(3)
	c, colour := counts[k], colours[k]

	switch level {
	case 1:
		return fractionQuestion(r, Probability, level,
			fmt.Sprintf("%s One is taken at random. What is the probability it is %s?", bag, colour),
			c, total, 0.01,
			fmt.Sprintf("P(%s) = %d/%d", colour, c, total)), nil
	case 2:
		switch template(r, w, "complement", "dice", "with-replacement") {
		case "complement":
			return fractionQuestion(r, Probability, level,
				fmt.Sprintf("%s One is taken at random. What is the probability it is not %s?", bag, colour),
				total-c, total, 0.01,
				fmt.Sprintf("P(not %s) = 1 - %d/%d = %d/%d", colour, c, total, total-c, total)), nil
		case "dice":
			face := r.Int(1, 6)
			return fractionQuestion(r, Probability, level,
				fmt.Sprintf("Two fair dice are rolled. What is the probability both show a %d?", face),
				1, 36, 0.001,
				"P = 1/6 × 1/6 = 1/36"), nil
		default:
			return fractionQuestion(r, Probability, level,
				fmt.Sprintf("%s One is taken, replaced, then another is taken. What is the probability both are %s?", bag, colour),
				c*c, total*total, 0.001,
				fmt.Sprintf("P = %d/%d × %d/%d = %d/%d", c, total, c, total, c*c, total*total)), nil
		}
	}

	num, den := c*(c-1), total*(total-1)
	rn, rd := mathutil.ReduceFraction(num, den)
	return fractionQuestion(r, Probability, level,
		fmt.Sprintf("%s Two are taken without replacement. What is the probability both are %s?", bag, colour),
		num, den, 0.001,
		fmt.Sprintf("P = %d/%d × %d/%d = %d/%d = %s", c, total, c-1, total-1, num, den, mathfmt.Fraction(rn, rd))), nil
}

func combinations(r *rng.Rand, level int, w problemgen.Weights) (*problemgen.Question, error) {
	switch level {
	case 1:
		a, b := r.Int(2, 8), r.Int(2, 8)
		if template(r, w, "menu", "outfits") == "menu" {
			return intQuestion(r, Combinations, level,
				fmt.Sprintf("A menu has %d starters and %d main courses. How many different two-course meals can be chosen?", a, b), a*b,
				fmt.Sprintf("%d × %d = %d", a, b, a*b)), nil
		}
		c := r.Int(2, 5)
		return intQuestion(r, Combinations, level,
			fmt.Sprintf("Sam has %d shirts, %d pairs of trousers and %d pairs of shoes. How many different outfits can Sam make?", a, b, c), a*b*c,
			fmt.Sprintf("%d × %d × %d = %d", a, b, c, a*b*c)), nil
	case 2:
		n := r.Int(3, 7)
		return intQuestion(r, Combinations, level,
			fmt.Sprintf("In how many different orders can %d different books be placed on a shelf?", n), mathutil.Factorial(n),
			fmt.Sprintf("%d! = %d", n, mathutil.Factorial(n))), nil
	}
	n := r.Int(5, 12)
	k := r.Int(2, 4)
	ways := mathutil.Choose(n, k)
	return intQuestion(r, Combinations, level,
		fmt.Sprintf("How many ways are there to choose a team of %d from %d people?", k, n), ways,
		fmt.Sprintf("%dC%d = %d! ÷ (%d! × %d!) = %d", n, k, n, k, n-k, ways)), nil
}
