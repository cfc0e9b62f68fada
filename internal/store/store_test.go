package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "examforge.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"practice_sessions", "attempts", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "examforge.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.EventRepo().StartSession(ctx, SessionStartData{SessionID: "s1", Seed: 1, Topics: []string{"addition"}}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	recs, err := s.EventRepo().RecentSessions(ctx, 5)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "s1" {
		t.Fatalf("sessions after reopen = %+v", recs)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.StartSession(ctx, SessionStartData{
		SessionID: "abc",
		Seed:      1<<63 + 5,
		Topics:    []string{"addition", "pythagoras"},
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := repo.EndSession(ctx, SessionEndData{SessionID: "abc", Questions: 10, Correct: 7, DurationSecs: 300}); err != nil {
		t.Fatalf("end: %v", err)
	}

	recs, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("sessions = %d, want 1", len(recs))
	}
	got := recs[0]
	if got.Seed != 1<<63+5 {
		t.Errorf("seed = %d, want %d", got.Seed, uint64(1<<63+5))
	}
	if len(got.Topics) != 2 || got.Topics[1] != "pythagoras" {
		t.Errorf("topics = %v", got.Topics)
	}
	if got.Questions != 10 || got.Correct != 7 || got.DurationSecs != 300 {
		t.Errorf("tallies = %d/%d in %ds", got.Correct, got.Questions, got.DurationSecs)
	}
	if got.EndedAt.IsZero() {
		t.Error("expected ended_at to be set")
	}
}

func TestEndSessionUnknown(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().EndSession(context.Background(), SessionEndData{SessionID: "missing"})
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestAttemptsAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.StartSession(ctx, SessionStartData{SessionID: "s", Seed: 9}); err != nil {
		t.Fatalf("start: %v", err)
	}

	attempts := []struct {
		topic   string
		correct bool
	}{
		{"addition", true},
		{"addition", false},
		{"addition", true},
		{"addition", true},
		{"pythagoras", false},
	}
	for i, a := range attempts {
		err := repo.AppendAttempt(ctx, AttemptData{
			SessionID:  "s",
			TopicID:    a.topic,
			Level:      2,
			QuestionID: a.topic + "-q",
			Question:   "47 + 38",
			Answer:     "85",
			Response:   "85",
			Correct:    a.correct,
			TimeMs:     1200,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.TopicStats(ctx)
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats rows = %d, want 2", len(stats))
	}
	if stats[0].TopicID != "addition" || stats[0].Attempts != 4 || stats[0].Correct != 3 {
		t.Errorf("addition stats = %+v", stats[0])
	}
	if stats[0].Accuracy != 0.75 {
		t.Errorf("addition accuracy = %v, want 0.75", stats[0].Accuracy)
	}
	if time.Since(stats[0].LastAttempt) > time.Minute {
		t.Errorf("last attempt = %v, expected recent", stats[0].LastAttempt)
	}

	acc, err := repo.TopicAccuracy(ctx, "pythagoras")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0 {
		t.Errorf("pythagoras accuracy = %v, want 0", acc)
	}
	acc, err = repo.TopicAccuracy(ctx, "never-seen")
	if err != nil || acc != 0 {
		t.Errorf("unseen topic accuracy = %v, %v", acc, err)
	}
}

func TestAttemptRequiresSession(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendAttempt(context.Background(), AttemptData{
		SessionID: "nope", TopicID: "addition", QuestionID: "q", Question: "1 + 1", Answer: "2", Response: "2",
	})
	if err == nil {
		t.Fatal("expected foreign key failure")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.StartSession(ctx, SessionStartData{SessionID: "s"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := repo.AppendAttempt(ctx, AttemptData{SessionID: "s", TopicID: "addition", QuestionID: "q", Question: "1 + 1", Answer: "2", Response: "3"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stats, err := repo.TopicStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("stats after reset = %+v", stats)
	}
	recs, err := repo.RecentSessions(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("sessions after reset = %+v", recs)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 1; i <= 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq != int64(i) {
			t.Errorf("seq = %d, want %d", seq, i)
		}
	}
}

func TestSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"first", "second", "third"} {
		if err := repo.StartSession(ctx, SessionStartData{SessionID: id}); err != nil {
			t.Fatalf("start %s: %v", id, err)
		}
	}
	recs, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "third" || recs[1].ID != "second" {
		t.Fatalf("recent = %+v", recs)
	}
}
