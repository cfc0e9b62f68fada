package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examforge/internal/screen"
	"github.com/abhisek/examforge/internal/ui/layout"
)

type stubScreen struct{ status string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "stub content" }
func (s *stubScreen) Title() string                           { return "Stub" }
func (s *stubScreen) Status() string                          { return s.status }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Z", Description: "Zap"}}
}

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestView_Frame(t *testing.T) {
	m := sized(newAppModel(&stubScreen{status: "✓ 3/4"}), 100, 30)
	content := m.frame()
	for _, want := range []string{"ExamForge", "Stub", "✓ 3/4", "stub content", "Zap"} {
		if !strings.Contains(content, want) {
			t.Errorf("frame missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := sized(newAppModel(&stubScreen{}), 40, 10)
	if !strings.Contains(m.frame(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(&stubScreen{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
