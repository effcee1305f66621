package scans

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var columns = []string{"id", "user_id", "taken_at", "overall_score", "acne", "wrinkles", "pigmentation", "texture", "summary", "created_at"}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	s := Scan{ID: "9b2e6c1e-0f6f-4c1e-9d3a-6f7f2d2b1a10", UserID: "u1", TakenAt: now, OverallScore: 80, Summary: "ok", CreatedAt: now}
	s.Metrics.Acne = 30

	mock.ExpectExec("INSERT INTO scans").
		WithArgs(s.ID, "u1", now, 80, 30, 0, 0, 0, "ok", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := &PGRepo{DB: db}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	later := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	earlier := later.Add(-24 * time.Hour)
	mock.ExpectQuery("ORDER BY taken_at DESC").
		WithArgs("u1", 20).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("a", "u1", later, 70, 40, 10, 10, 10, "", later).
			AddRow("b", "u1", earlier, 60, 20, 10, 10, 10, "", earlier))

	repo := &PGRepo{DB: db}
	items, err := repo.ListByUser(context.Background(), "u1", 20)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[0].Metrics.Acne != 40 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestPGRepoLatestNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM scans").WithArgs("u1").WillReturnRows(sqlmock.NewRows(columns))

	repo := &PGRepo{DB: db}
	if _, err := repo.Latest(context.Background(), "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec("DELETE FROM scans").
		WithArgs("id-1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := &PGRepo{DB: db}
	if err := repo.Delete(context.Background(), "u1", "id-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
