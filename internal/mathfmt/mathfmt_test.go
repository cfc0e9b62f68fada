package mathfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuperscript(t *testing.T) {
	assert.Equal(t, "¹²³", Superscript("123"))
	assert.Equal(t, "⁻⁴", Superscript("-4"))
	assert.Equal(t, "x²", Superscript("x2"))
	assert.Equal(t, "⁻⁴", SuperscriptInt(-4))
	assert.Equal(t, "-4x", FromSuperscript("⁻⁴x"))
}

func TestCleanDecimal(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{85, "85"},
		{0.75, "0.75"},
		{2.50, "2.5"},
		{0.1 + 0.2, "0.3"},
		{-3, "-3"},
		{1e-13, "0"},
		{-1e-13, "0"},
		{1234567.125, "1234567.125"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanDecimal(tt.in), "CleanDecimal(%v)", tt.in)
	}
}

func TestScientific(t *testing.T) {
	assert.Equal(t, "3.2×10⁻⁴", Scientific(3.2, -4))
	assert.Equal(t, "2×10³", Scientific(2, 3))
}

func TestStandardForm(t *testing.T) {
	tests := []struct {
		in   float64
		m    float64
		exp  int
	}{
		{2000, 2, 3},
		{0.00032, 3.2, -4},
		{9.99999999999, 9.99999999999, 0},
		{-4500, -4.5, 3},
		{0, 0, 0},
	}
	for _, tt := range tests {
		m, e := StandardForm(tt.in)
		assert.InDelta(t, tt.m, m, 1e-9, "mantissa of %v", tt.in)
		assert.Equal(t, tt.exp, e, "exponent of %v", tt.in)
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "3.10", Fixed(3.1, 2))
	assert.Equal(t, "2.68", Fixed(2.675000001, 2))
	assert.Equal(t, "0.00", Fixed(-0.001, 2))
	assert.Equal(t, "12", Fixed(12.4, 0))
}

func TestRoundSF(t *testing.T) {
	assert.InDelta(t, 3450, RoundSF(3449.7, 3), 1e-9)
	assert.InDelta(t, 0.00123, RoundSF(0.0012345, 3), 1e-12)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, "3/4", Fraction(3, 4))
	assert.Equal(t, "5", Fraction(5, 1))
}
