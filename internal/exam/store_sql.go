package exam

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/exam-portal/exam-portal/internal/grading"
)

// sqlStore keeps questions and per-question outcomes as JSON columns; the
// authoritative key never leaves the tests table except through
// Authoritative.
type sqlStore struct {
	db *sql.DB
}

// NewSQLStore builds a catalog+ledger over a database opened by internal/db.
func NewSQLStore(db *sql.DB) Store {
	return &sqlStore{db: db}
}

func (s *sqlStore) PutTest(ctx context.Context, t Test) error {
	qj, err := json.Marshal(t.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO tests (id,title,type,duration,questions_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, type=EXCLUDED.type, duration=EXCLUDED.duration, questions_json=EXCLUDED.questions_json`,
		t.ID, t.Title, t.Type, t.Duration, string(qj), time.Now().Unix())
	return err
}

func (s *sqlStore) ListTests(ctx context.Context) ([]TestSummary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,title,type,duration,questions_json FROM tests ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []TestSummary{}
	for rows.Next() {
		t, err := scanTest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t.Summary())
	}
	return out, rows.Err()
}

func (s *sqlStore) GetTest(ctx context.Context, id int) (PublicTest, error) {
	t, err := s.Authoritative(ctx, id)
	if err != nil {
		return PublicTest{}, err
	}
	return t.Public(), nil
}

func (s *sqlStore) Authoritative(ctx context.Context, id int) (Test, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,type,duration,questions_json FROM tests WHERE id=$1`, id)
	t, err := scanTest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Test{}, ErrTestNotFound
		}
		return Test{}, err
	}
	return t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTest(row rowScanner) (Test, error) {
	var t Test
	var qjson string
	if err := row.Scan(&t.ID, &t.Title, &t.Type, &t.Duration, &qjson); err != nil {
		return Test{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &t.Questions); err != nil {
		return Test{}, err
	}
	return t, nil
}

func (s *sqlStore) Record(ctx context.Context, r Result) (Result, error) {
	r.ID = uuid.NewString()
	dj, err := json.Marshal(r.Details)
	if err != nil {
		return Result{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO results (id,user_id,test_id,test_title,score,total,percentage,details_json,completed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		r.ID, r.UserID, r.TestID, r.TestTitle, r.Score, r.Total, r.Percentage, string(dj), r.CompletedAt.Unix())
	if err != nil {
		return Result{}, err
	}
	return r, nil
}

func (s *sqlStore) ListForUser(ctx context.Context, userID string) ([]ResultSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,test_title,score,total,percentage,completed_at FROM results WHERE user_id=$1 ORDER BY seq`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []ResultSummary{}
	for rows.Next() {
		var rs ResultSummary
		var at int64
		if err := rows.Scan(&rs.ID, &rs.TestTitle, &rs.Score, &rs.Total, &rs.Percentage, &at); err != nil {
			return nil, err
		}
		rs.CompletedAt = time.Unix(at, 0).UTC()
		out = append(out, rs)
	}
	return out, rows.Err()
}

// GetResult loads one full stored result including its breakdown.
func (s *sqlStore) GetResult(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,test_id,test_title,score,total,percentage,details_json,completed_at FROM results WHERE id=$1`, id)
	var r Result
	var dj string
	var at int64
	if err := row.Scan(&r.ID, &r.UserID, &r.TestID, &r.TestTitle, &r.Score, &r.Total, &r.Percentage, &dj, &at); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(dj), &r.Details); err != nil {
		return Result{}, err
	}
	if r.Details == nil {
		r.Details = []grading.Outcome{}
	}
	r.CompletedAt = time.Unix(at, 0).UTC()
	return r, nil
}
