package problemgen

import "fmt"

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "self-check", "arithmetic".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// Validate runs the validators in order and returns the first failure.
func Validate(q *Question, validators []Validator) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}
