package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

func (r *eventRepo) StartSession(ctx context.Context, data SessionStartData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO practice_sessions (id, sequence, seed, topics, started_at) VALUES (?, ?, ?, ?, ?)`,
		data.SessionID, seqNum, int64(data.Seed), strings.Join(data.Topics, ","), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *eventRepo) EndSession(ctx context.Context, data SessionEndData) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE practice_sessions SET questions = ?, correct = ?, duration_secs = ?, ended_at = ? WHERE id = ?`,
		data.Questions, data.Correct, data.DurationSecs, time.Now().UnixMilli(), data.SessionID,
	)
	if err != nil {
		return fmt.Errorf("save session end: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("end session %q: not started", data.SessionID)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, seed, topics, questions, correct, duration_secs, started_at, ended_at
		 FROM practice_sessions ORDER BY sequence DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec       SessionRecord
			seed      int64
			topics    string
			startedAt int64
			endedAt   sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &seed, &topics, &rec.Questions, &rec.Correct,
			&rec.DurationSecs, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Seed = uint64(seed)
		if topics != "" {
			rec.Topics = strings.Split(topics, ",")
		}
		rec.StartedAt = time.UnixMilli(startedAt)
		if endedAt.Valid {
			rec.EndedAt = time.UnixMilli(endedAt.Int64)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
