package topics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/rng"
)

func TestScaled(t *testing.T) {
	tests := []struct {
		n, p int
		want string
	}{
		{45, -3, "0.045"},
		{45, 2, "4500"},
		{45, -1, "4.5"},
		{45, -2, "0.45"},
		{-7, -2, "-0.07"},
		{3, 0, "3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scaled(tt.n, tt.p), "scaled(%d, %d)", tt.n, tt.p)
	}
}

func TestSciFromInt(t *testing.T) {
	assert.Equal(t, "4.5×10⁻²", sciFromInt(45, -3))
	assert.Equal(t, "3×10⁵", sciFromInt(300, 3))
	assert.Equal(t, "1.25×10²", sciFromInt(125, 0))
	assert.Equal(t, "0", sciFromInt(0, 4))
}

func TestPoly(t *testing.T) {
	assert.Equal(t, "x² - 5x + 6", poly("x", 1, -5, 6))
	assert.Equal(t, "-2x² + x", poly("x", -2, 1, 0))
	assert.Equal(t, "x² - 9", poly("x", 1, 0, -9))
	assert.Equal(t, "3n - 1", poly("n", 3, -1))
	assert.Equal(t, "0", poly("x", 0, 0))
	assert.Equal(t, "(2x - 3)", linearFactor("x", 2, -3))
}

func TestRootsAnswer(t *testing.T) {
	assert.Equal(t, "x = -2, x = 3", rootsAnswer("x", "-2", "3"))
}

func TestOperand(t *testing.T) {
	assert.Equal(t, "(-4)", operand(-4))
	assert.Equal(t, "4", operand(4))
}

func TestNewQuestion_PanicsOnMismatchedChecker(t *testing.T) {
	assert.Panics(t, func() {
		newQuestion(rng.New(1), Addition, 1, "1 + 1", "2", answer.Integer("3"), "")
	})
}

func TestDecimalQuestion_OneUnitInLastPlace(t *testing.T) {
	q := decimalQuestion(rng.New(1), Circles, 1, "circumference", 31.4159, 1, "")
	assert.Equal(t, "31.4", q.Answer)
	assert.True(t, q.Check("31.4"))
	assert.True(t, q.Check("31.5"))
	assert.False(t, q.Check("31.6"))
}

func TestFractionQuestion_Reduces(t *testing.T) {
	q := fractionQuestion(rng.New(1), Probability, 1, "p", 6, 8, 0.01, "")
	assert.Equal(t, "3/4", q.Answer)
	assert.True(t, q.Check("0.75"))
	assert.False(t, q.Check("6/8"))
}

func TestWithDiagram(t *testing.T) {
	q := intQuestion(rng.New(1), Area, 1, "area", 12, "")
	withDiagram(q, shape{Kind: "rectangle", Sides: map[string]float64{"length": 3, "width": 4}})
	assert.JSONEq(t, `{"kind":"rectangle","sides":{"length":3,"width":4}}`, string(q.Diagram))
}
