package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examforge/internal/router"
	"github.com/abhisek/examforge/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Duration:       12 * time.Minute,
		TotalQuestions: 14,
		TotalCorrect:   11,
		Accuracy:       float64(11) / float64(14),
		BestStreak:     6,
		Skipped:        1,
		TopicResults: []session.TopicResult{
			{TopicID: "pythagoras", Attempted: 6, Correct: 5},
			{TopicID: "density", Attempted: 8, Correct: 6},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), nil, "")
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), nil, "")
	view := s.View(100, 30)
	for _, want := range []string{"Session complete!", "Accuracy: 79%", "Pythagoras", "left out"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Notice(t *testing.T) {
	s := New(testSummary(), nil, "History not saved: disk full")
	if !strings.Contains(s.View(100, 30), "disk full") {
		t.Error("expected notice in view")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		s := New(testSummary(), nil, "")
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command on %s", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("%s: expected PopScreenMsg", key.String())
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), nil, "")
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
