package problemgen

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/rng"
)

// MaxAttempts bounds every resampling loop before a generator falls back to
// its safe pool.
const MaxAttempts = 300

// NewID returns "<topic>-<uuid>" with the UUID drawn from r, so a seeded
// Rand yields reproducible ids.
func NewID(r *rng.Rand, topic TopicID) string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		// rng.Rand.Read never fails.
		panic(fmt.Sprintf("problemgen: uuid from rng: %v", err))
	}
	return fmt.Sprintf("%s-%s", topic, id)
}

// Check reports whether user is an acceptable answer to q.
//
// Acceptable literals are tried first, then the Checker. Without a Checker
// only a normalised match against Answer is accepted.
func (q *Question) Check(user string) bool {
	u := answer.Normalize(user)
	if u == "" {
		return false
	}
	for _, a := range q.Acceptable {
		if u == answer.Normalize(a) {
			return true
		}
	}
	if q.Checker != nil {
		return q.Checker.Check(user)
	}
	return u == answer.Normalize(q.Answer)
}

// GeneratorFault wraps an error or panic raised inside a topic generator.
type GeneratorFault struct {
	Topic TopicID
	Level int
	Err   error
}

func (e *GeneratorFault) Error() string {
	return fmt.Sprintf("generator %q level %d: %v", e.Topic, e.Level, e.Err)
}

func (e *GeneratorFault) Unwrap() error {
	return e.Err
}
