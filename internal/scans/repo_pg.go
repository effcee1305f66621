package scans

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

const scanColumns = `id, user_id, taken_at, overall_score, acne, wrinkles, pigmentation, texture, summary, created_at`

func (r *PGRepo) Create(ctx context.Context, s Scan) error {
	const query = `
INSERT INTO scans (id, user_id, taken_at, overall_score, acne, wrinkles, pigmentation, texture, summary, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.TakenAt,
		s.OverallScore,
		s.Metrics.Acne,
		s.Metrics.Wrinkles,
		s.Metrics.Pigmentation,
		s.Metrics.Texture,
		s.Summary,
		s.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit int) ([]Scan, error) {
	query := `SELECT ` + scanColumns + `
FROM scans
WHERE user_id = $1
ORDER BY taken_at DESC, created_at DESC
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Scan{}
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Latest(ctx context.Context, userID string) (Scan, error) {
	query := `SELECT ` + scanColumns + `
FROM scans
WHERE user_id = $1
ORDER BY taken_at DESC, created_at DESC
LIMIT 1`
	s, err := scanRow(r.DB.QueryRowContext(ctx, query, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return Scan{}, ErrNotFound
	}
	return s, err
}

func (r *PGRepo) Delete(ctx context.Context, userID, scanID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM scans WHERE id = $1 AND user_id = $2`, scanID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRow(row rowScanner) (Scan, error) {
	var s Scan
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.TakenAt,
		&s.OverallScore,
		&s.Metrics.Acne,
		&s.Metrics.Wrinkles,
		&s.Metrics.Pigmentation,
		&s.Metrics.Texture,
		&s.Summary,
		&s.CreatedAt,
	)
	return s, err
}
