package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/registry"
	"github.com/abhisek/examforge/internal/rng"
	"github.com/abhisek/examforge/internal/router"
	"github.com/abhisek/examforge/internal/screen"
	"github.com/abhisek/examforge/internal/screens/history"
	sessionscreen "github.com/abhisek/examforge/internal/screens/session"
	"github.com/abhisek/examforge/internal/session"
	"github.com/abhisek/examforge/internal/store"
	"github.com/abhisek/examforge/internal/ui/components"
	"github.com/abhisek/examforge/internal/ui/layout"
	"github.com/abhisek/examforge/internal/ui/theme"
)

// Config wires the home screen to the engine and history store.
type Config struct {
	Registry *registry.Registry
	Composer *session.Composer
	Repo     store.EventRepo // nil disables history

	// Count is the set size; Seed pins the first set when non-nil.
	Count int
	Seed  *uint64
}

// HomeScreen lets the learner tick topics and start a mixed practice set.
type HomeScreen struct {
	cfg     Config
	picker  components.Checklist
	entries []problemgen.Entry
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen listing every registered topic by strand.
func New(cfg Config) *HomeScreen {
	if cfg.Registry == nil {
		cfg.Registry = registry.Default()
	}
	if cfg.Composer == nil {
		cfg.Composer = session.NewComposer(cfg.Registry, nil)
	}
	if cfg.Count <= 0 {
		cfg.Count = session.DefaultPlanCount
	}

	entries := cfg.Registry.Entries()
	items := make([]components.ChecklistItem, len(entries))
	for i, e := range entries {
		items[i] = components.ChecklistItem{
			Label: e.Name,
			Group: string(e.Strand),
			Color: theme.StrandColor(e.Strand),
		}
	}
	return &HomeScreen{
		cfg:     cfg,
		picker:  components.NewChecklist(items),
		entries: entries,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Choose Topics"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Start"},
	}
	if h.cfg.Repo != nil {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return h, nil
	}
	switch kmsg.String() {
	case "esc", "q":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	case "h":
		if h.cfg.Repo == nil {
			return h, nil
		}
		next := history.New(h.cfg.Repo, h.cfg.Registry)
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case "enter":
		return h.start()
	}
	h.errMsg = ""
	h.picker = h.picker.Update(kmsg)
	return h, nil
}

// start composes a set over the ticked topics and pushes a practice screen.
func (h *HomeScreen) start() (screen.Screen, tea.Cmd) {
	picked := h.picker.Checked()
	if len(picked) == 0 {
		picked = []int{h.picker.Cursor}
	}
	ids := make([]problemgen.TopicID, len(picked))
	for i, idx := range picked {
		ids[i] = h.entries[idx].ID
	}

	var src *rng.Rand
	if h.cfg.Seed != nil {
		src = rng.New(*h.cfg.Seed)
		// Later sets from the same screen must differ.
		h.cfg.Seed = nil
	} else {
		src = rng.NewUnseeded()
	}

	questions := h.cfg.Composer.GenerateMixed(src, ids, h.cfg.Count, nil)
	state := session.NewState(uuid.NewString(), src.Seed(), questions)
	if h.cfg.Repo != nil {
		state.EventRepo = h.cfg.Repo
	}
	if len(state.Questions) == 0 {
		h.errMsg = "No questions could be generated for that selection."
		return h, nil
	}

	next := sessionscreen.New(state, h.cfg.Registry)
	return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(theme.Title, width, "What do you want to practise?"))
	b.WriteString("\n")

	n := len(h.picker.Checked())
	sub := fmt.Sprintf("%d questions, mixed from the highlighted topic", h.cfg.Count)
	if n > 0 {
		sub = fmt.Sprintf("%d questions, mixed across %d topic(s)", h.cfg.Count, n)
	}
	b.WriteString(layout.Centered(theme.Subtitle, width, sub))
	b.WriteString("\n\n")

	list := h.picker.View(max(height-6, 5))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Error), width, h.errMsg))
	}
	return b.String()
}
