package problemgen

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/rng"
)

func TestNewID_ReproducibleFromSeed(t *testing.T) {
	a := NewID(rng.New(7), "addition")
	b := NewID(rng.New(7), "addition")
	c := NewID(rng.New(8), "addition")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "addition-"))
	assert.Len(t, a, len("addition-")+36)
}

func TestQuestionCheck_NoChecker(t *testing.T) {
	q := &Question{Answer: "Yes"}
	assert.True(t, q.Check("yes"))
	assert.True(t, q.Check("  YES "))
	assert.False(t, q.Check("y"))
	assert.False(t, q.Check(""))
}

func TestQuestionCheck_AcceptableBeforeChecker(t *testing.T) {
	q := &Question{
		Answer:     "3/4",
		Checker:    answer.New("3/4", answer.WithFractions()),
		Acceptable: []string{"three quarters"},
	}
	assert.True(t, q.Check("Three  Quarters"))
	assert.True(t, q.Check("3/4"))
	assert.False(t, q.Check("6/8"))
}

func TestQuestion_JSONShape(t *testing.T) {
	q := validQuestion()
	raw, err := json.Marshal(q)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"id", "topicId", "question", "answer", "difficulty", "checker"} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "diagram")

	var back Question
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Check("85.0"))
}

func TestWeights(t *testing.T) {
	var none Weights
	assert.Nil(t, none.Digits())
	assert.Equal(t, 2.5, none.Template("circle", 2.5))

	w := Weights{"7": 5, "circle": 3}
	d := w.Digits()
	require.Len(t, d, 10)
	assert.Equal(t, 5.0, d[7])
	assert.Equal(t, 1.0, d[0])
	assert.Equal(t, 3.0, w.Template("circle", 1))
}

func TestEntryClampLevel(t *testing.T) {
	e := Entry{MaxLevel: 3}
	assert.Equal(t, 1, e.ClampLevel(-4))
	assert.Equal(t, 2, e.ClampLevel(2))
	assert.Equal(t, 3, e.ClampLevel(9))
}

func TestGeneratorFault(t *testing.T) {
	inner := assert.AnError
	err := &GeneratorFault{Topic: "addition", Level: 2, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), `"addition"`)
}
