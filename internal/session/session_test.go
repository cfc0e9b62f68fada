package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examforge/internal/answer"
	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/store"
)

func q(topic problemgen.TopicID, text, ans string) *problemgen.Question {
	return &problemgen.Question{
		ID:         string(topic) + "-q",
		Topic:      topic,
		Text:       text,
		Answer:     ans,
		Difficulty: 1,
		Checker:    answer.Integer(ans),
	}
}

func testQuestions() []*problemgen.Question {
	return []*problemgen.Question{
		q("addition", "47 + 38", "85"),
		q("pythagoras", "Hypotenuse of a 3, 4 triangle", "5"),
		q("addition", "12 + 30", "42"),
	}
}

func TestNewState_DropsPlaceholders(t *testing.T) {
	qs := testQuestions()
	qs = append(qs,
		placeholder("nonexistent-topic", 1, "placeholder", ComingSoonText),
		nil,
	)

	st := NewState("sid", 7, qs)
	assert.Len(t, st.Questions, 3)
	assert.Equal(t, 2, st.Skipped)
	assert.Equal(t, PhaseActive, st.Phase)
	assert.Len(t, st.PerTopicResults, 2)
	assert.Equal(t, "47 + 38", st.Current().Text)
	assert.Equal(t, 3, st.Remaining())
}

func TestNewState_EmptyGoesToSummary(t *testing.T) {
	st := NewState("sid", 0, []*problemgen.Question{
		placeholder("x", 1, "error", FaultText),
	})
	assert.Equal(t, PhaseSummary, st.Phase)
	assert.Nil(t, st.Current())
}

func TestHandleAnswer_Tallies(t *testing.T) {
	st := NewState("sid", 7, testQuestions())
	ctx := context.Background()

	ok, err := HandleAnswer(ctx, st, " 85 ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, PhaseFeedback, st.Phase)
	assert.Equal(t, " 85 ", st.LastResponse)

	_, err = HandleAnswer(ctx, st, "85")
	require.Error(t, err, "second answer during feedback")

	require.True(t, Advance(st))
	ok, err = HandleAnswer(ctx, st, "4")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Streak)

	require.True(t, Advance(st))
	ok, err = HandleAnswer(ctx, st, "42")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, Advance(st))
	assert.Equal(t, PhaseSummary, st.Phase)
	assert.Equal(t, 3, st.TotalQuestions)
	assert.Equal(t, 2, st.TotalCorrect)
	assert.Equal(t, 1, st.BestStreak)

	add := st.PerTopicResults["addition"]
	assert.Equal(t, 2, add.Attempted)
	assert.Equal(t, 2, add.Correct)
	assert.Equal(t, 0, st.PerTopicResults["pythagoras"].Correct)
}

func TestHandleAnswer_StreakBest(t *testing.T) {
	st := NewState("sid", 1, testQuestions())
	ctx := context.Background()
	for _, resp := range []string{"85", "5", "42"} {
		_, err := HandleAnswer(ctx, st, resp)
		require.NoError(t, err)
		Advance(st)
	}
	assert.Equal(t, 3, st.Streak)
	assert.Equal(t, 3, st.BestStreak)
}

func TestBuildSummary(t *testing.T) {
	qs := testQuestions()
	qs = append(qs, placeholder("nonexistent-topic", 1, "placeholder", ComingSoonText))
	st := NewState("sid", 7, qs)
	ctx := context.Background()
	for _, resp := range []string{"85", "6", "41"} {
		_, err := HandleAnswer(ctx, st, resp)
		require.NoError(t, err)
		Advance(st)
	}
	require.NoError(t, Finish(ctx, st))

	sum := BuildSummary(st)
	assert.Equal(t, 3, sum.TotalQuestions)
	assert.Equal(t, 1, sum.TotalCorrect)
	assert.InDelta(t, 1.0/3, sum.Accuracy, 1e-9)
	assert.Equal(t, 1, sum.Skipped)
	require.Len(t, sum.TopicResults, 2)
	assert.Equal(t, problemgen.TopicID("addition"), sum.TopicResults[0].TopicID)
	assert.Equal(t, problemgen.TopicID("pythagoras"), sum.TopicResults[1].TopicID)
}

func TestBuildSummary_NoAnswers(t *testing.T) {
	sum := BuildSummary(NewState("sid", 0, nil))
	assert.Zero(t, sum.Accuracy)
	assert.Empty(t, sum.TopicResults)
}

func TestSession_RecordsToStore(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "examforge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	st := NewState("rec", 11, testQuestions())
	st.EventRepo = s.EventRepo()

	require.NoError(t, Start(ctx, st))
	for _, resp := range []string{"85", "5", "0"} {
		_, err := HandleAnswer(ctx, st, resp)
		require.NoError(t, err)
		Advance(st)
	}
	require.NoError(t, Finish(ctx, st))

	recs, err := st.EventRepo.RecentSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "rec", recs[0].ID)
	assert.Equal(t, uint64(11), recs[0].Seed)
	assert.Equal(t, []string{"addition", "pythagoras"}, recs[0].Topics)
	assert.Equal(t, 3, recs[0].Questions)
	assert.Equal(t, 2, recs[0].Correct)

	stats, err := st.EventRepo.TopicStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "addition", stats[0].TopicID)
	assert.Equal(t, 2, stats[0].Attempts)
	assert.Equal(t, 1, stats[0].Correct)
}

type failingRepo struct{ store.EventRepo }

func (failingRepo) AppendAttempt(context.Context, store.AttemptData) error {
	return errors.New("disk full")
}

func TestHandleAnswer_RecordFailureKeepsVerdict(t *testing.T) {
	st := NewState("sid", 1, testQuestions())
	st.EventRepo = failingRepo{}

	ok, err := HandleAnswer(context.Background(), st, "85")
	assert.True(t, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 1, st.TotalCorrect)
}
