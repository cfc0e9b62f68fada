package session

import (
	"slices"
	"time"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Accuracy       float64
	BestStreak     int
	Skipped        int
	TopicResults   []TopicResult
}

// BuildSummary creates a Summary from the session state. Topic results
// follow the order topics first appeared in the set.
func BuildSummary(state *State) *Summary {
	var results []TopicResult
	for _, q := range state.Questions {
		tr, ok := state.PerTopicResults[q.Topic]
		if !ok || slices.ContainsFunc(results, func(r TopicResult) bool { return r.TopicID == q.Topic }) {
			continue
		}
		results = append(results, *tr)
	}

	var accuracy float64
	if state.TotalQuestions > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalQuestions)
	}

	return &Summary{
		Duration:       state.Elapsed,
		TotalQuestions: state.TotalQuestions,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		BestStreak:     state.BestStreak,
		Skipped:        state.Skipped,
		TopicResults:   results,
	}
}
