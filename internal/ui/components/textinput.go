package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing answers. Answers may hold
// fractions, surds, powers and units so no characters are filtered.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Input is frozen once submitted.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a verdict mark once submitted.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a verdict.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the value and verdict for the next question.
func (t *AnswerInput) Reset() {
	t.Model.Reset()
	t.submitted = false
	t.valid = false
}
