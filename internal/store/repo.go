// Package store persists practice history for the command-line host. The
// question engine never imports it.
package store

import (
	"context"
	"time"
)

// SessionStartData opens a practice session record.
type SessionStartData struct {
	SessionID string
	Seed      uint64
	Topics    []string
}

// SessionEndData closes a practice session record.
type SessionEndData struct {
	SessionID    string
	Questions    int
	Correct      int
	DurationSecs int
}

// AttemptData captures one answered question.
type AttemptData struct {
	SessionID  string
	TopicID    string
	Level      int
	QuestionID string
	Question   string
	Answer     string // canonical answer
	Response   string // what the learner typed
	Correct    bool
	TimeMs     int64
}

// SessionRecord is a stored practice session.
type SessionRecord struct {
	ID           string
	Sequence     int64
	Seed         uint64
	Topics       []string
	Questions    int
	Correct      int
	DurationSecs int
	StartedAt    time.Time
	EndedAt      time.Time // zero while the session is open
}

// TopicStat aggregates attempts for one topic.
type TopicStat struct {
	TopicID     string
	Attempts    int
	Correct     int
	Accuracy    float64
	LastAttempt time.Time
}

// EventRepo provides append and query access to practice history.
type EventRepo interface {
	// StartSession records a new practice session.
	StartSession(ctx context.Context, data SessionStartData) error

	// EndSession stores the final tallies of a session.
	EndSession(ctx context.Context, data SessionEndData) error

	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptData) error

	// TopicStats returns per-topic aggregates, most attempted first.
	TopicStats(ctx context.Context) ([]TopicStat, error)

	// TopicAccuracy returns the share of correct attempts for a topic,
	// or 0 when there are none.
	TopicAccuracy(ctx context.Context, topicID string) (float64, error)

	// RecentSessions returns up to limit sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// Reset deletes all practice history.
	Reset(ctx context.Context) error
}
