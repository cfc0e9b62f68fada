package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/router"
	"github.com/abhisek/examforge/internal/screen"
	"github.com/abhisek/examforge/internal/store"
	"github.com/abhisek/examforge/internal/ui/components"
	"github.com/abhisek/examforge/internal/ui/layout"
	"github.com/abhisek/examforge/internal/ui/theme"
)

const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Topics   []store.TopicStat
	Err      error
}

type tab int

const (
	tabSessions tab = iota
	tabTopics
)

// HistoryScreen displays past sessions and per-topic accuracy.
type HistoryScreen struct {
	eventRepo store.EventRepo
	reg       *registry.Registry
	sessions  []store.SessionRecord
	topics    []store.TopicStat
	tab       tab
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, reg *registry.Registry) *HistoryScreen {
	if reg == nil {
		reg = registry.Default()
	}
	return &HistoryScreen{eventRepo: eventRepo, reg: reg}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := repo.RecentSessions(ctx, sessionLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		topics, err := repo.TopicStats(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions, Topics: topics}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Sessions/Topics"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) rows() int {
	if s.tab == tabTopics {
		return len(s.topics)
	}
	return len(s.sessions)
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.topics = msg.Topics
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.tab = 1 - s.tab
			s.selected = 0
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < s.rows()-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.errMsg != "" {
		return layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width, "\n\nError: "+s.errMsg)
	}
	if !s.loaded {
		return layout.Centered(dim, width, "\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return layout.Centered(theme.Hint, width, "\n\n  No sessions yet. Start practising!")
	}

	var b strings.Builder
	b.WriteString("\n")
	sessionsTab, topicsTab := theme.Selected.Render("Sessions"), dim.Render("Topics")
	if s.tab == tabTopics {
		sessionsTab, topicsTab = dim.Render("Sessions"), theme.Selected.Render("Topics")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sessionsTab+"   "+topicsTab))
	b.WriteString("\n\n")

	var lines []string
	if s.tab == tabTopics {
		lines = s.topicLines(width)
	} else {
		lines = s.sessionLines()
	}

	visible := max(height-4, 1)
	start := 0
	if len(lines) > visible {
		start = min(max(s.selected-visible/2, 0), len(lines)-visible)
	}
	for i := start; i < len(lines) && i < start+visible; i++ {
		style := theme.Unselected
		prefix := "  "
		if i == s.selected {
			style = theme.Selected
			prefix = "> "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix)+lines[i]))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HistoryScreen) sessionLines() []string {
	lines := make([]string, len(s.sessions))
	for i, sess := range s.sessions {
		var accuracy float64
		if sess.Questions > 0 {
			accuracy = float64(sess.Correct) / float64(sess.Questions) * 100
		}
		status := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)
		if sess.EndedAt.IsZero() {
			status = "unfinished"
		}
		lines[i] = theme.Body.Render(fmt.Sprintf("%s  %-10s  %2d/%-2d  %3.0f%%  %d topic(s)  seed %d",
			sess.StartedAt.Format("Jan 02 15:04"), status, sess.Correct, sess.Questions,
			accuracy, len(sess.Topics), sess.Seed))
	}
	return lines
}

func (s *HistoryScreen) topicLines(width int) []string {
	lines := make([]string, len(s.topics))
	for i, st := range s.topics {
		name, strand := st.TopicID, problemgen.Strand("")
		if e, ok := s.reg.Entry(problemgen.TopicID(st.TopicID)); ok {
			name, strand = e.Name, e.Strand
		}
		label := lipgloss.NewStyle().Foreground(theme.StrandColor(strand)).Render(fmt.Sprintf("%-30s", name)) +
			theme.Body.Render(fmt.Sprintf("%3d/%-3d", st.Correct, st.Attempts))
		lines[i] = components.NewProgressBar(label, st.Accuracy, true, min(width-8, 72)).View()
	}
	return lines
}
