package problemgen

import "strings"

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q == nil {
		return &ValidationError{Validator: v.Name(), Message: "question is nil"}
	}
	if q.ID == "" {
		return &ValidationError{Validator: v.Name(), Message: "id is empty"}
	}
	if q.Topic == "" {
		return &ValidationError{Validator: v.Name(), Message: "topicId is empty"}
	}
	if !strings.HasPrefix(q.ID, string(q.Topic)+"-") {
		return &ValidationError{Validator: v.Name(), Message: "id does not start with topicId"}
	}
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty"}
	}
	if len(q.Text) > 1000 {
		return &ValidationError{Validator: v.Name(), Message: "question exceeds 1000 characters"}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	if q.Difficulty < 1 {
		return &ValidationError{Validator: v.Name(), Message: "difficulty must be at least 1"}
	}
	if q.Checker != nil && q.Checker.Correct != q.Answer {
		return &ValidationError{Validator: v.Name(), Message: "checker is bound to a different answer"}
	}
	return nil
}

// SelfCheckValidator requires a question's canonical answer to pass its own
// checker. A question that fails this is unsolvable.
type SelfCheckValidator struct{}

func (v *SelfCheckValidator) Name() string { return "self-check" }

func (v *SelfCheckValidator) Validate(q *Question) *ValidationError {
	if !q.Check(q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "canonical answer " + quote(q.Answer) + " is rejected by its own checker",
		}
	}
	for _, a := range q.Acceptable {
		if !q.Check(a) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "acceptable answer " + quote(a) + " is rejected",
			}
		}
	}
	return nil
}

func quote(s string) string {
	return `"` + s + `"`
}
