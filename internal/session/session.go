// Package session composes mixed practice sets and runs practice sessions
// over them.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/examforge/internal/store"
)

// Start records the session opening. It is a no-op without an EventRepo.
func Start(ctx context.Context, state *State) error {
	if state.EventRepo == nil {
		return nil
	}
	topics := make([]string, 0, len(state.PerTopicResults))
	seen := make(map[string]bool)
	for _, q := range state.Questions {
		id := string(q.Topic)
		if !seen[id] {
			seen[id] = true
			topics = append(topics, id)
		}
	}
	return state.EventRepo.StartSession(ctx, store.SessionStartData{
		SessionID: state.SessionID,
		Seed:      state.Seed,
		Topics:    topics,
	})
}

// HandleAnswer checks the learner's response to the current question,
// updates tallies and records the attempt. The session moves to the
// feedback phase. The verdict stands even if recording fails.
func HandleAnswer(ctx context.Context, state *State, response string) (bool, error) {
	q := state.Current()
	if q == nil || state.Phase != PhaseActive {
		return false, fmt.Errorf("no question awaiting an answer")
	}

	correct := q.Check(response)
	state.LastAnswerCorrect = correct
	state.LastResponse = response
	state.TotalQuestions++
	if correct {
		state.TotalCorrect++
		state.Streak++
		state.BestStreak = max(state.BestStreak, state.Streak)
	} else {
		state.Streak = 0
	}

	if tr := state.PerTopicResults[q.Topic]; tr != nil {
		tr.Attempted++
		if correct {
			tr.Correct++
		}
	}
	state.Phase = PhaseFeedback

	if state.EventRepo == nil {
		return correct, nil
	}
	err := state.EventRepo.AppendAttempt(ctx, store.AttemptData{
		SessionID:  state.SessionID,
		TopicID:    string(q.Topic),
		Level:      q.Difficulty,
		QuestionID: q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Response:   response,
		Correct:    correct,
		TimeMs:     time.Since(state.QuestionStartTime).Milliseconds(),
	})
	if err != nil {
		return correct, fmt.Errorf("record attempt: %w", err)
	}
	return correct, nil
}

// Advance moves past the feedback phase to the next question. It returns
// false when the set is exhausted and the session moves to the summary.
func Advance(state *State) bool {
	if state.Phase == PhaseSummary {
		return false
	}
	state.Index++
	if state.Index >= len(state.Questions) {
		state.Phase = PhaseSummary
		return false
	}
	state.Phase = PhaseActive
	state.QuestionStartTime = time.Now()
	return true
}

// Finish ends the session, fixes the elapsed time and records the tallies.
func Finish(ctx context.Context, state *State) error {
	state.Phase = PhaseSummary
	state.Elapsed = time.Since(state.StartTime)
	if state.EventRepo == nil {
		return nil
	}
	return state.EventRepo.EndSession(ctx, store.SessionEndData{
		SessionID:    state.SessionID,
		Questions:    state.TotalQuestions,
		Correct:      state.TotalCorrect,
		DurationSecs: int(state.Elapsed.Seconds()),
	})
}
