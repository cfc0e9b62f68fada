package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/router"
	"github.com/abhisek/examforge/internal/screen"
	"github.com/abhisek/examforge/internal/session"
	"github.com/abhisek/examforge/internal/ui/components"
	"github.com/abhisek/examforge/internal/ui/layout"
	"github.com/abhisek/examforge/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
	reg     *registry.Registry
	notice  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. notice, when set, is shown under the
// results, e.g. a failure to save history.
func New(summary *session.Summary, reg *registry.Registry, notice string) *SummaryScreen {
	if reg == nil {
		reg = registry.Default()
	}
	return &SummaryScreen{summary: summary, reg: reg, notice: notice}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	b.WriteString(layout.Centered(theme.Title, width, "Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(layout.Centered(dim, width, fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d      Correct: %d      Accuracy: %.0f%%      Best streak: %d",
		sum.TotalQuestions, sum.TotalCorrect, sum.Accuracy*100, sum.BestStreak)
	b.WriteString(layout.Centered(theme.Body, width, statsLine))
	b.WriteString("\n\n")

	if sum.Skipped > 0 {
		b.WriteString(layout.Centered(theme.Hint, width,
			fmt.Sprintf("%d question(s) could not be generated and were left out.", sum.Skipped)))
		b.WriteString("\n\n")
	}

	if len(sum.TopicResults) > 0 {
		cw := min(width-8, 72)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("Topics")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))))
		b.WriteString("\n\n")

		for _, tr := range sum.TopicResults {
			name, strand := string(tr.TopicID), theme.StrandColor("")
			if e, ok := s.reg.Entry(tr.TopicID); ok {
				name, strand = e.Name, theme.StrandColor(e.Strand)
			}
			var pct float64
			if tr.Attempted > 0 {
				pct = float64(tr.Correct) / float64(tr.Attempted)
			}
			label := lipgloss.NewStyle().Foreground(strand).Render(fmt.Sprintf("%-30s", name)) +
				dim.Render(fmt.Sprintf("%2d/%-2d", tr.Correct, tr.Attempted))
			bar := components.NewProgressBar(label, pct, true, cw)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width, s.notice))
	}
	return b.String()
}
