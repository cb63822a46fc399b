package history

import (
	"context"
	"database/sql"
	"time"
)

// Event records one completed extraction.
type Event struct {
	Seq           int64
	UserID        int64
	TestID        string
	Title         string
	QuestionCount int
	CreatedAt     int64
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extraction_log (user_id, test_id, title, question_count, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.UserID, e.TestID, e.Title, e.QuestionCount, time.Now().Unix())
	return err
}

func (r *EventRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM extraction_log`).Scan(&n)
	return n, err
}

func (r *EventRepo) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, user_id, test_id, title, question_count, created_at
		 FROM extraction_log ORDER BY seq DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.UserID, &e.TestID, &e.Title, &e.QuestionCount, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
