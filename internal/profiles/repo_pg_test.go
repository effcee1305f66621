package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
)

var profileColumns = []string{
	"user_id", "name", "age", "gender", "skin_type", "allergies", "sleep_hours", "water_intake",
	"stress_level", "diet", "language", "theme", "custom_checklist", "onboarded", "created_at", "updated_at",
}

func TestPGRepoGetDecodesLists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("FROM profiles").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(profileColumns).AddRow(
			"u1", "Sari", 24, "Female", "Sensitive", []byte(`["Fragrance"]`), 7.5, 2.0,
			"Low", "Vegetarian", "id", "dark", []byte(`[]`), true, now, now,
		))

	repo := &PGRepo{DB: db}
	p, err := repo.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.SkinType != recommendations.SkinSensitive || p.Language != i18n.ID || p.StressLevel != StressLow {
		t.Fatalf("unexpected profile %+v", p)
	}
	if len(p.Allergies) != 1 || p.Allergies[0] != "Fragrance" {
		t.Fatalf("unexpected allergies %v", p.Allergies)
	}
	if p.CustomChecklist == nil {
		t.Fatalf("expected empty checklist, got nil")
	}
}

func TestPGRepoGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM profiles").WithArgs("nobody").WillReturnRows(sqlmock.NewRows(profileColumns))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO profiles").
		WithArgs(
			"u1", "", nil, nil, "Dry", `["Fragrance"]`, 7.0, 1.5,
			"Medium", "Balanced", "en", "light", `[]`, false,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := &PGRepo{DB: db}
	p, err := repo.Save(context.Background(), Profile{
		UserID:      "u1",
		SkinType:    recommendations.SkinDry,
		Allergies:   []string{"Fragrance"},
		SleepHours:  7,
		WaterIntake: 1.5,
		StressLevel: StressMedium,
		Diet:        DietBalanced,
		Language:    i18n.EN,
		Theme:       ThemeLight,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !p.UpdatedAt.Equal(now) {
		t.Fatalf("expected returned timestamps")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
