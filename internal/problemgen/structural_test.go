package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/examforge/internal/answer"
)

func validQuestion() *Question {
	return &Question{
		ID:          "addition-5b1f0d3e-8d0c-4c7a-9d55-6a3e0f7e4c21",
		Topic:       "addition",
		Text:        "47 + 38",
		Answer:      "85",
		Difficulty:  2,
		Checker:     answer.Integer("85"),
		Explanation: "47 + 38 = 85",
	}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
	}{
		{"empty id", func(q *Question) { q.ID = "" }},
		{"empty topic", func(q *Question) { q.Topic = "" }},
		{"id without topic prefix", func(q *Question) { q.ID = "subtraction-1234" }},
		{"empty text", func(q *Question) { q.Text = "   " }},
		{"long text", func(q *Question) { q.Text = strings.Repeat("a", 1001) }},
		{"empty answer", func(q *Question) { q.Answer = "" }},
		{"zero difficulty", func(q *Question) { q.Difficulty = 0 }},
		{"checker mismatch", func(q *Question) { q.Checker = answer.Integer("86") }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(q)
			err := v.Validate(q)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Validator != "structural" {
				t.Errorf("expected validator %q, got %q", "structural", err.Validator)
			}
		})
	}
}

func TestStructural_NilQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(nil); err == nil {
		t.Fatal("expected error for nil question")
	}
}

func TestSelfCheck(t *testing.T) {
	v := &SelfCheckValidator{}
	if err := v.Validate(validQuestion()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	q := validQuestion()
	q.Checker = answer.New("85", answer.WithRule("no-such-rule"))
	if err := v.Validate(q); err == nil {
		t.Fatal("expected self-check failure when the rule rejects the answer")
	}
}

func TestSelfCheck_NoChecker(t *testing.T) {
	v := &SelfCheckValidator{}
	q := validQuestion()
	q.Checker = nil
	q.Acceptable = []string{"eighty-five"}
	if err := v.Validate(q); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
