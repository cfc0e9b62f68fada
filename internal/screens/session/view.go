package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/ui/components"
	"github.com/abhisek/examforge/internal/ui/layout"
	"github.com/abhisek/examforge/internal/ui/theme"
)

// topicLabel returns the display name and strand for a topic.
func (s *SessionScreen) topicLabel(id problemgen.TopicID) (string, problemgen.Strand) {
	if e, ok := s.reg.Entry(id); ok {
		return e.Name, e.Strand
	}
	return string(id), ""
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	state := s.state
	q := state.Current()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	name, strand := s.topicLabel(q.Topic)
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.StrandColor(strand)).
		Bold(true).
		Render(fmt.Sprintf("  %s · level %d", name, q.Difficulty))

	mins := int(state.Elapsed.Minutes())
	secs := int(state.Elapsed.Seconds()) % 60
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %d:%02d", state.Index+1, len(state.Questions), mins, secs))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n  ")

	progress := float64(state.Index) / float64(len(state.Questions))
	b.WriteString(components.NewProgressBar("", progress, false, width-4).View())
	b.WriteString("\n\n\n")

	text := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "Answer: "+s.input.View()))

	if s.saveErr != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.Hint, width, s.saveErr))
	}
	return b.String()
}

// renderFeedback renders the verdict for the last answer.
func (s *SessionScreen) renderFeedback(width int) string {
	state := s.state
	q := state.Current()

	var b strings.Builder
	b.WriteString("\n\n")

	if state.LastAnswerCorrect {
		b.WriteString(layout.Centered(theme.Correct, width, "Correct!"))
	} else {
		b.WriteString(layout.Centered(theme.Incorrect, width, "Not quite"))
	}
	b.WriteString("\n\n")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if q != nil {
		b.WriteString(layout.Centered(dim, width, q.Text))
		b.WriteString("\n")
		b.WriteString(layout.Centered(dim, width, "Your answer: "+state.LastResponse))
		if !state.LastAnswerCorrect {
			b.WriteString("\n")
			b.WriteString(layout.Centered(theme.Body, width, "Correct answer: "+q.Answer))
		}
		b.WriteString("\n\n")

		if q.Explanation != "" {
			exp := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(q.Explanation)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
			b.WriteString("\n\n")
		}
	}

	if state.Streak >= 3 {
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), width,
			fmt.Sprintf("%d in a row!", state.Streak)))
		b.WriteString("\n\n")
	}

	b.WriteString(layout.Centered(dim, width, "Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the end-early confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), width, "End session early?"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "Answers so far are kept."))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), width, "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), width, "[N] No, keep going"))
	return b.String()
}

func renderLoading(width int) string {
	return layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), width, "\n\n\n  Preparing your questions...")
}
