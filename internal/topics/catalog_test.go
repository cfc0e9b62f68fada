package topics

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/mathutil"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/rng"
)

func TestCatalog_UniqueAndComplete(t *testing.T) {
	seen := map[problemgen.TopicID]bool{}
	for _, e := range Catalog() {
		assert.False(t, seen[e.ID], "duplicate topic %s", e.ID)
		seen[e.ID] = true

		assert.NotEmpty(t, e.Name, e.ID)
		assert.NotNil(t, e.Generate, e.ID)
		assert.GreaterOrEqual(t, e.MaxLevel, 1, e.ID)
		assert.Contains(t, AllStrands(), e.Strand, e.ID)
	}
	assert.Len(t, seen, 50)
}

func TestCatalog_EveryStrandPopulated(t *testing.T) {
	total := 0
	for _, s := range AllStrands() {
		entries := ByStrand(s)
		assert.NotEmpty(t, entries, s)
		assert.NotEqual(t, string(s), StrandDisplayName(s))
		total += len(entries)
	}
	assert.Equal(t, len(Catalog()), total)
}

func TestCatalog_FreshSlice(t *testing.T) {
	a := Catalog()
	a[0].Name = "changed"
	assert.NotEqual(t, "changed", Catalog()[0].Name)
}

// TestGenerators_SelfConsistent draws many questions from every topic and
// level and runs them through the full validator chain. Every canonical
// answer must pass its own checker.
func TestGenerators_SelfConsistent(t *testing.T) {
	draws := 1000
	if testing.Short() {
		draws = 50
	}
	validators := problemgen.DefaultValidators()
	cheap := validators[:3]

	for _, e := range Catalog() {
		for level := 1; level <= e.MaxLevel; level++ {
			t.Run(fmt.Sprintf("%s/L%d", e.ID, level), func(t *testing.T) {
				r := rng.New(uint64(level)*7919 + uint64(len(e.ID)))
				for i := 0; i < draws; i++ {
					q, err := e.Generate(r, level, nil)
					require.NoError(t, err)
					require.NotNil(t, q)

					chain := cheap
					if i < 20 {
						chain = validators
					}
					if verr := problemgen.Validate(q, chain); verr != nil {
						t.Fatalf("draw %d: %v\nquestion: %q\nanswer: %q", i, verr, q.Text, q.Answer)
					}
					assert.Equal(t, e.ID, q.Topic)
					assert.Equal(t, level, q.Difficulty)
				}
			})
		}
	}
}

func TestGenerators_Reproducible(t *testing.T) {
	for _, e := range Catalog() {
		a, err := e.Generate(rng.New(99), e.MaxLevel, nil)
		require.NoError(t, err)
		b, err := e.Generate(rng.New(99), e.MaxLevel, nil)
		require.NoError(t, err)
		assert.Equal(t, a, b, e.ID)
	}
}

var fractionAnswerRe = regexp.MustCompile(`^(-?\d+)/(\d+)$`)

func TestGenerators_FractionAnswersReduced(t *testing.T) {
	for _, e := range Catalog() {
		r := rng.New(3)
		for level := 1; level <= e.MaxLevel; level++ {
			for i := 0; i < 200; i++ {
				q, err := e.Generate(r, level, nil)
				require.NoError(t, err)
				if q.Checker == nil || !slices.Contains(q.Checker.Accept, answer.StrategyFraction) {
					continue
				}
				m := fractionAnswerRe.FindStringSubmatch(q.Answer)
				if m == nil {
					continue
				}
				num, _ := strconv.Atoi(m[1])
				den, _ := strconv.Atoi(m[2])
				assert.Greater(t, den, 1, "%s: %q", e.ID, q.Answer)
				assert.Equal(t, 1, mathutil.GCD(num, den), "%s: %q not reduced", e.ID, q.Answer)
			}
		}
	}
}

func TestGenerators_TemplateWeights(t *testing.T) {
	w := problemgen.Weights{"straight-line": 1, "around-point": 0}
	r := rng.New(5)
	for i := 0; i < 100; i++ {
		q, err := angles(r, 1, w)
		require.NoError(t, err)
		assert.Contains(t, q.Text, "straight line")
	}
}

func TestGenerators_DigitWeights(t *testing.T) {
	// Only sevens may be drawn, apart from the forced non-zero leading digit.
	w := problemgen.Weights{}
	for d := 0; d <= 9; d++ {
		w[strconv.Itoa(d)] = 0
	}
	w["7"] = 1

	r := rng.New(11)
	for i := 0; i < 50; i++ {
		q, err := addition(r, 2, w)
		require.NoError(t, err)
		assert.Equal(t, "77 + 77", q.Text)
		assert.Equal(t, "154", q.Answer)
	}
}

func TestAddition_TwoDigitScenario(t *testing.T) {
	q := sumQuestion(rng.New(1), 2, 47, 38)

	assert.Equal(t, "47 + 38", q.Text)
	assert.Equal(t, "85", q.Answer)
	assert.Equal(t, 2, q.Difficulty)
	assert.True(t, strings.HasPrefix(q.ID, "addition-"))
	for _, in := range []string{"85", " 85 ", "85.0"} {
		assert.True(t, q.Check(in), "%q should be accepted", in)
	}
	for _, in := range []string{"84", "8 5", "", "eighty-five"} {
		assert.False(t, q.Check(in), "%q should be rejected", in)
	}
}

func TestTrigExactValues_NeverUndefined(t *testing.T) {
	r := rng.New(21)
	for level := 1; level <= 2; level++ {
		for i := 0; i < 500; i++ {
			q, err := trigExactValues(r, level, nil)
			require.NoError(t, err)
			assert.NotContains(t, q.Text, "tan 90°")
			assert.NotContains(t, q.Text, "tan 270°")
		}
	}
}

func TestTrigExactValues_AcceptsEquivalentSurds(t *testing.T) {
	q := ruleQuestion(rng.New(1), TrigExactValues, 1, "Write down the exact value of tan 30°.", "√3/3", answer.RuleSurd, "")
	assert.True(t, q.Check("1/√3"))
	assert.False(t, q.Check("0.577"))
}

func TestQuadraticRoots_NeverRepeated(t *testing.T) {
	r := rng.New(8)
	for level := 1; level <= 3; level++ {
		for i := 0; i < 300; i++ {
			q, err := quadraticRoots(r, level, nil)
			require.NoError(t, err)
			assert.Equal(t, 2, strings.Count(q.Answer, "="), "%q", q.Answer)
		}
	}
}
