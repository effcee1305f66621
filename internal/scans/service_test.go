package scans

import (
	"context"
	"errors"
	"testing"
	"time"

	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/shared/validation"
)

func intPtr(v int) *int { return &v }

func validInput(acne, wrinkles, pigmentation, texture int) RecordInput {
	return RecordInput{
		OverallScore: 72,
		Metrics: MetricsInput{
			Acne:         intPtr(acne),
			Wrinkles:     intPtr(wrinkles),
			Pigmentation: intPtr(pigmentation),
			Texture:      intPtr(texture),
		},
		Summary: "  Mild congestion on the T-zone. ",
	}
}

func TestRecordStoresScan(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	fixed := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	scan, err := svc.Record(context.Background(), "u1", validInput(60, 10, 30, 5))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if scan.ID == "" || !scan.TakenAt.Equal(fixed) {
		t.Fatalf("unexpected scan %+v", scan)
	}
	if scan.Summary != "Mild congestion on the T-zone." {
		t.Fatalf("expected trimmed summary, got %q", scan.Summary)
	}
	want := recommendations.ScanMetrics{Acne: 60, Wrinkles: 10, Pigmentation: 30, Texture: 5}
	if scan.Metrics != want {
		t.Fatalf("unexpected metrics %+v", scan.Metrics)
	}

	latest, err := svc.Latest(context.Background(), "u1")
	if err != nil || latest.ID != scan.ID {
		t.Fatalf("Latest: %+v err=%v", latest, err)
	}
}

func TestRecordValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	missing := validInput(10, 10, 10, 10)
	missing.Metrics.Texture = nil

	tests := []struct {
		name  string
		in    RecordInput
		field string
	}{
		{name: "metric above range", in: validInput(101, 0, 0, 0), field: "metrics.acne"},
		{name: "metric below range", in: validInput(0, -1, 0, 0), field: "metrics.wrinkles"},
		{name: "missing metric", in: missing, field: "metrics.texture"},
		{name: "overall score", in: func() RecordInput { in := validInput(0, 0, 0, 0); in.OverallScore = 150; return in }(), field: "overallScore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), "u1", tt.in)
			var verr *validation.Error
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Field != tt.field {
				t.Fatalf("expected %s, got %+v", tt.field, verr.Fields)
			}
		})
	}
}

func TestListNewestFirstWithLimit(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		in := validInput(i, 0, 0, 0)
		at := base.Add(time.Duration(i) * time.Hour)
		in.TakenAt = &at
		if _, err := svc.Record(context.Background(), "u1", in); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	items, err := svc.List(context.Background(), "u1", 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].Metrics.Acne != 2 || items[1].Metrics.Acne != 1 {
		t.Fatalf("unexpected order %+v", items)
	}

	all, _ := svc.List(context.Background(), "u1", 0)
	if len(all) != 3 {
		t.Fatalf("expected default limit to return all 3, got %d", len(all))
	}
}

func TestLatestPrefersNewerScanWithSameTakenAt(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	created := at
	svc.now = func() time.Time { return created }

	first := validInput(10, 0, 0, 0)
	first.TakenAt = &at
	if _, err := svc.Record(context.Background(), "u1", first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	created = at.Add(time.Minute)
	second := validInput(90, 0, 0, 0)
	second.TakenAt = &at
	newer, err := svc.Record(context.Background(), "u1", second)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	latest, err := svc.Latest(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != newer.ID || latest.Metrics.Acne != 90 {
		t.Fatalf("expected newer scan, got %+v", latest)
	}
}

func TestMemoryRepoKeepsInsertionOrderOnFullTie(t *testing.T) {
	repo := NewMemoryRepo()
	at := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b"} {
		if err := repo.Create(context.Background(), Scan{ID: id, UserID: "u1", TakenAt: at, CreatedAt: at}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	latest, err := repo.Latest(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != "b" {
		t.Fatalf("expected last inserted scan, got %s", latest.ID)
	}
}

func TestDeleteScopedToOwner(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	scan, err := svc.Record(context.Background(), "owner", validInput(1, 2, 3, 4))
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if err := svc.Delete(context.Background(), "intruder", scan.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", scan.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Latest(context.Background(), "owner"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no scans after delete, got %v", err)
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		value int
		want  Band
	}{
		{0, BandGood},
		{19, BandGood},
		{20, BandFair},
		{44, BandFair},
		{45, BandPoor},
		{100, BandPoor},
	}
	for _, tt := range tests {
		if got := BandFor(tt.value); got != tt.want {
			t.Errorf("BandFor(%d) = %s, want %s", tt.value, got, tt.want)
		}
	}
}

func TestNewViewDerivesConcern(t *testing.T) {
	v := NewView(Scan{Metrics: recommendations.ScanMetrics{Acne: 10, Wrinkles: 50, Pigmentation: 50, Texture: 30}})
	if v.PrimaryConcern != recommendations.MetricWrinkles {
		t.Fatalf("expected wrinkles, got %s", v.PrimaryConcern)
	}
	if v.Bands[recommendations.MetricAcne] != BandGood || v.Bands[recommendations.MetricTexture] != BandFair {
		t.Fatalf("unexpected bands %v", v.Bands)
	}
}
