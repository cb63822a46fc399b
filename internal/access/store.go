package access

import (
	"context"
	"database/sql"
	"time"
)

// Entry is one row of the allow-list.
type Entry struct {
	UserID  int64
	AddedBy int64
	AddedAt int64
}

// Store is the injected allow-list repository. The bot owner manages it via
// /au and /ru; the admin API exposes the same operations over HTTP.
type Store interface {
	Authorize(ctx context.Context, userID, addedBy int64) error
	Revoke(ctx context.Context, userID int64) error
	IsAuthorized(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context) ([]Entry, error)
	Count(ctx context.Context) (int, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Authorize(ctx context.Context, userID, addedBy int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO authorized_users (user_id, added_by, added_at)
		 VALUES ($1,$2,$3)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID, addedBy, time.Now().Unix())
	return err
}

func (s *SQLStore) Revoke(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM authorized_users WHERE user_id=$1`, userID)
	return err
}

func (s *SQLStore) IsAuthorized(ctx context.Context, userID int64) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM authorized_users WHERE user_id=$1`, userID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, added_by, added_at FROM authorized_users ORDER BY added_at, user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.AddedBy, &e.AddedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM authorized_users`).Scan(&n)
	return n, err
}
