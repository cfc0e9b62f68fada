package history

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/examforge/internal/store"
)

func testRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "examforge.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func loaded(t *testing.T, repo store.EventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo, nil)
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("expected history to load")
	}
	return s
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loaded(t, testRepo(t))
	if !strings.Contains(s.View(100, 30), "No sessions yet") {
		t.Error("expected empty-state message")
	}
}

func TestHistoryScreen_SessionsAndTopics(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()
	if err := repo.StartSession(ctx, store.SessionStartData{SessionID: "s1", Seed: 42, Topics: []string{"pythagoras"}}); err != nil {
		t.Fatalf("start: %v", err)
	}
	for _, ok := range []bool{true, false} {
		err := repo.AppendAttempt(ctx, store.AttemptData{
			SessionID: "s1", TopicID: "pythagoras", Level: 1, QuestionID: "q",
			Question: "Hypotenuse of 3, 4?", Answer: "5", Response: "5", Correct: ok,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.EndSession(ctx, store.SessionEndData{SessionID: "s1", Questions: 2, Correct: 1, DurationSecs: 75}); err != nil {
		t.Fatalf("end: %v", err)
	}

	s := loaded(t, repo)
	view := s.View(120, 30)
	if !strings.Contains(view, "seed 42") || !strings.Contains(view, "1:15") {
		t.Errorf("sessions view = %q", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	view = s.View(120, 30)
	if !strings.Contains(view, "Pythagoras") || !strings.Contains(view, "50%") {
		t.Errorf("topics view = %q", view)
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(testRepo(t), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd == nil {
		t.Error("expected pop command")
	}
}
