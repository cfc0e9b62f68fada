package problemgen

import "testing"

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		answer  string
		wantErr bool
	}{
		{"addition", "47 + 38", "85", false},
		{"wrong addition", "47 + 38", "86", true},
		{"unicode division", "72 ÷ 8", "9", false},
		{"unicode multiplication", "6 × 7", "42", false},
		{"precedence", "3 + 4 × 2", "11", false},
		{"brackets", "(3 + 4) × 2", "14", false},
		{"negatives", "(−3) − (−5)", "2", false},
		{"trailing equals", "12 × 12 = ?", "144", false},
		{"decimal", "0.5 + 0.25", "0.75", false},
		{"fraction answer", "3 ÷ 4", "3/4", false},
		{"fraction division", "2/3 ÷ 4/5", "5/6", false},
		{"fraction addition", "3/4 + 1/6", "11/12", false},
		{"wrong fraction", "2/3 × 3/4", "1/4", true},
		{"word problem skipped", "A car travels 100 m in 5 s. Find its speed.", "999", false},
		{"algebra skipped", "Solve 2x + 3 = 7", "999", false},
		{"single number skipped", "42", "7", false},
		{"non-numeric answer skipped", "2 + 2", "four", false},
	}

	v := &ArithmeticValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			q.Text = tt.text
			q.Answer = tt.answer
			err := v.Validate(q)
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("expected nil, got %v", err)
			}
		})
	}
}
