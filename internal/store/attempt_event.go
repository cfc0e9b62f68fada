package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO attempts
		 (sequence, session_id, topic_id, level, question_id, question, answer, response, correct, time_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seqNum, data.SessionID, data.TopicID, data.Level, data.QuestionID, data.Question,
		data.Answer, data.Response, data.Correct, data.TimeMs, time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) TopicStats(ctx context.Context) ([]TopicStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic_id, COUNT(*), SUM(correct), MAX(created_at)
		 FROM attempts GROUP BY topic_id ORDER BY COUNT(*) DESC, topic_id`)
	if err != nil {
		return nil, fmt.Errorf("query topic stats: %w", err)
	}
	defer rows.Close()

	var out []TopicStat
	for rows.Next() {
		var (
			st   TopicStat
			last int64
		)
		if err := rows.Scan(&st.TopicID, &st.Attempts, &st.Correct, &last); err != nil {
			return nil, fmt.Errorf("scan topic stats: %w", err)
		}
		if st.Attempts > 0 {
			st.Accuracy = float64(st.Correct) / float64(st.Attempts)
		}
		st.LastAttempt = time.UnixMilli(last)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *eventRepo) TopicAccuracy(ctx context.Context, topicID string) (float64, error) {
	var total int
	var correct sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), SUM(correct) FROM attempts WHERE topic_id = ?`, topicID,
	).Scan(&total, &correct)
	if err != nil {
		return 0, fmt.Errorf("query topic accuracy: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(correct.Int64) / float64(total), nil
}
