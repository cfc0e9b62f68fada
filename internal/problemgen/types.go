package problemgen

import (
	"encoding/json"
	"strconv"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/rng"
)

// TopicID identifies a topic generator, e.g. "addition" or "quadratic-roots".
type TopicID string

// Strand groups related topics for listing and filtering.
type Strand string

// Question represents a generated question ready for display.
// A Question is created fresh per call and never mutated after return.
type Question struct {
	// ID is an opaque identifier of the form "<topic>-<uuid>".
	ID string `json:"id"`

	// Topic is the generator that produced the question.
	Topic TopicID `json:"topicId"`

	// Text is the prompt shown to the learner. It may embed formula markup.
	Text string `json:"question"`

	// Answer is the canonical correct answer. It always passes Check.
	Answer string `json:"answer"`

	// Difficulty is the level the question was generated for. Its meaning
	// is topic-specific.
	Difficulty int `json:"difficulty"`

	// Checker is the acceptance policy. Nil means only a normalised exact
	// match against Answer is accepted.
	Checker *answer.Checker `json:"checker,omitempty"`

	// Acceptable lists further literal answers accepted verbatim.
	Acceptable []string `json:"acceptableAnswers,omitempty"`

	// Explanation is a worked solution. Never evaluated.
	Explanation string `json:"explanation,omitempty"`

	// Diagram is an opaque payload for a renderer.
	Diagram json.RawMessage `json:"diagram,omitempty"`
}

// Weights biases a generator. Digit keys "0" to "9" bend digit draws;
// any other key weights the template of that name. Unknown keys are ignored.
type Weights map[string]float64

// Digits returns the ten-element digit bias vector, or nil when no digit
// key is present.
func (w Weights) Digits() []float64 {
	var out []float64
	for d := 0; d <= 9; d++ {
		v, ok := w[strconv.Itoa(d)]
		if !ok {
			continue
		}
		if out == nil {
			out = make([]float64, 10)
			for i := range out {
				out[i] = 1
			}
		}
		out[d] = v
	}
	return out
}

// Template returns the weight for the named template, or def when the
// caller did not supply one.
func (w Weights) Template(name string, def float64) float64 {
	if v, ok := w[name]; ok {
		return v
	}
	return def
}

// Func generates one question for level. Level is already clamped to the
// topic's range by the caller. The Rand is owned by the caller for the
// duration of the call.
type Func func(r *rng.Rand, level int, w Weights) (*Question, error)

// Entry is one row of the topic catalogue.
type Entry struct {
	ID       TopicID
	Name     string
	Strand   Strand
	MaxLevel int
	Generate Func
}

// ClampLevel pins level into [1, MaxLevel].
func (e Entry) ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if e.MaxLevel > 0 && level > e.MaxLevel {
		return e.MaxLevel
	}
	return level
}
