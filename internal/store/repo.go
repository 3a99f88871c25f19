package store

import (
	"context"
	"time"

	"github.com/abiram/tonedrill/internal/analytics"
)

// SessionRecord is a finished session row.
type SessionRecord struct {
	ID             string
	LevelID        string
	StartedAt      time.Time
	EndedAt        time.Time
	TotalQuestions int
	CorrectAnswers int
	Accuracy       float64
	Advanced       bool
}

// ItemAggregate is lifetime accuracy for one drilled item.
type ItemAggregate struct {
	FullDescription string
	Attempts        int
	Correct         int
	Accuracy        float64
}

// CategoryAggregate is lifetime accuracy for one question category.
type CategoryAggregate struct {
	Category string
	Attempts int
	Correct  int
	Accuracy float64
}

// CompletedLevels returns the set of completed level IDs.
func (s *Store) CompletedLevels(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT level_id FROM completed_levels`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}

// MarkCompleted records a level as completed. Idempotent.
func (s *Store) MarkCompleted(ctx context.Context, levelID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO completed_levels (level_id, completed_at) VALUES (?, ?)
		 ON CONFLICT(level_id) DO NOTHING`,
		levelID, time.Now().Format(time.RFC3339Nano))
	return err
}

// SaveSession stores a finished session and its answer log in one
// transaction.
func (s *Store) SaveSession(ctx context.Context, rec SessionRecord, answers []analytics.Answer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, level_id, started_at, ended_at, total_questions, correct_answers, accuracy, advanced)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.LevelID,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.TotalQuestions, rec.CorrectAnswers, rec.Accuracy, boolToInt(rec.Advanced))
	if err != nil {
		return err
	}

	if len(answers) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO answer_events (session_id, question_id, level_id, category, item, full_description, user_answer, correct, scale_degree, session_key, response_ms, submitted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, a := range answers {
			_, err := stmt.ExecContext(ctx,
				rec.ID, a.QuestionID, rec.LevelID, string(a.Category), string(a.ItemType),
				a.FullDescription, string(a.UserAnswer), boolToInt(a.IsCorrect),
				a.ScaleDegree, a.SessionKey.String(), a.ResponseTimeMs,
				a.SubmittedAt.Format(time.RFC3339Nano))
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// RecentSessions returns the most recent sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, level_id, started_at, ended_at, total_questions, correct_answers, accuracy, advanced
		 FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var started, ended string
		var advanced int
		if err := rows.Scan(&rec.ID, &rec.LevelID, &started, &ended,
			&rec.TotalQuestions, &rec.CorrectAnswers, &rec.Accuracy, &advanced); err != nil {
			return nil, err
		}
		rec.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		rec.EndedAt, _ = time.Parse(time.RFC3339Nano, ended)
		rec.Advanced = advanced != 0
		out = append(out, rec)
	}
	return out, rows.Err()
}

// WeakestItems aggregates lifetime item accuracy, weakest first, for
// items with at least minAttempts attempts.
func (s *Store) WeakestItems(ctx context.Context, minAttempts, limit int) ([]ItemAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT full_description, COUNT(*) AS attempts, SUM(correct) AS correct
		 FROM answer_events
		 GROUP BY full_description
		 HAVING attempts >= ?
		 ORDER BY CAST(correct AS REAL) / attempts ASC, attempts DESC
		 LIMIT ?`, minAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ItemAggregate
	for rows.Next() {
		var agg ItemAggregate
		if err := rows.Scan(&agg.FullDescription, &agg.Attempts, &agg.Correct); err != nil {
			return nil, err
		}
		if agg.Attempts > 0 {
			agg.Accuracy = float64(agg.Correct) / float64(agg.Attempts) * 100
		}
		out = append(out, agg)
	}
	return out, rows.Err()
}

// CategoryAccuracy aggregates lifetime accuracy per question category.
func (s *Store) CategoryAccuracy(ctx context.Context) ([]CategoryAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) AS attempts, SUM(correct) AS correct
		 FROM answer_events
		 GROUP BY category
		 ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CategoryAggregate
	for rows.Next() {
		var agg CategoryAggregate
		if err := rows.Scan(&agg.Category, &agg.Attempts, &agg.Correct); err != nil {
			return nil, err
		}
		if agg.Attempts > 0 {
			agg.Accuracy = float64(agg.Correct) / float64(agg.Attempts) * 100
		}
		out = append(out, agg)
	}
	return out, rows.Err()
}

// ResetAll deletes all learner history.
func (s *Store) ResetAll(ctx context.Context) error {
	for _, table := range []string{"answer_events", "sessions", "completed_levels"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
