package session

import (
	"time"

	"github.com/abhisek/examforge/internal/problemgen"
	"github.com/abhisek/examforge/internal/store"
)

// Phase is the current phase of a practice session.
type Phase int

const (
	PhaseActive   Phase = iota // Waiting for an answer
	PhaseFeedback              // Showing the verdict for the last answer
	PhaseSummary               // All questions answered or session quit
)

// State tracks a practice session run over a fixed question set.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	// Seed replays the question set.
	Seed uint64

	// Questions is the set being practised, placeholders removed.
	Questions []*problemgen.Question

	// Skipped counts placeholders dropped from the set.
	Skipped int

	// Index points at the current question.
	Index int

	// TotalQuestions is the count of questions answered so far.
	TotalQuestions int

	// TotalCorrect is the count of correct answers so far.
	TotalCorrect int

	// Streak is the current run of correct answers; BestStreak the longest.
	Streak     int
	BestStreak int

	// PerTopicResults tracks per-topic stats for the summary screen.
	PerTopicResults map[problemgen.TopicID]*TopicResult

	// Phase is the current session phase.
	Phase Phase

	// LastAnswerCorrect and LastResponse describe the most recent answer.
	LastAnswerCorrect bool
	LastResponse      string

	// StartTime is when the session began; Elapsed is set when it ends.
	StartTime time.Time
	Elapsed   time.Duration

	// QuestionStartTime tracks when the current question was first shown.
	QuestionStartTime time.Time

	// EventRepo records attempts (nil disables recording).
	EventRepo store.EventRepo
}

// TopicResult tracks per-topic performance within a single session.
type TopicResult struct {
	TopicID   problemgen.TopicID
	Attempted int
	Correct   int
}

// NewState creates a session over questions. Placeholder questions are
// dropped since they cannot be answered meaningfully.
func NewState(sessionID string, seed uint64, questions []*problemgen.Question) *State {
	var kept []*problemgen.Question
	perTopic := make(map[problemgen.TopicID]*TopicResult)
	for _, q := range questions {
		if q == nil || IsPlaceholder(q) {
			continue
		}
		kept = append(kept, q)
		if _, ok := perTopic[q.Topic]; !ok {
			perTopic[q.Topic] = &TopicResult{TopicID: q.Topic}
		}
	}

	now := time.Now()
	st := &State{
		SessionID:         sessionID,
		Seed:              seed,
		Questions:         kept,
		Skipped:           len(questions) - len(kept),
		PerTopicResults:   perTopic,
		Phase:             PhaseActive,
		StartTime:         now,
		QuestionStartTime: now,
	}
	if len(kept) == 0 {
		st.Phase = PhaseSummary
	}
	return st
}

// Current returns the question being asked, or nil once the set is done.
func (s *State) Current() *problemgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Index]
}

// Remaining returns the number of questions not yet reached.
func (s *State) Remaining() int {
	return max(len(s.Questions)-s.Index, 0)
}
