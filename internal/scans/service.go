package scans

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/shared/metrics"
	"glowyze-backend/internal/shared/telemetry"
	"glowyze-backend/internal/shared/validation"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

var errNotConfigured = errors.New("scans service not configured")

// MetricsInput carries the four severity scores. Pointers distinguish a
// missing score from zero.
type MetricsInput struct {
	Acne         *int `json:"acne" validate:"required,gte=0,lte=100"`
	Wrinkles     *int `json:"wrinkles" validate:"required,gte=0,lte=100"`
	Pigmentation *int `json:"pigmentation" validate:"required,gte=0,lte=100"`
	Texture      *int `json:"texture" validate:"required,gte=0,lte=100"`
}

// ToScanMetrics converts validated input.
func (m MetricsInput) ToScanMetrics() recommendations.ScanMetrics {
	deref := func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	}
	return recommendations.ScanMetrics{
		Acne:         deref(m.Acne),
		Wrinkles:     deref(m.Wrinkles),
		Pigmentation: deref(m.Pigmentation),
		Texture:      deref(m.Texture),
	}
}

// Validate checks every score is present and within [0,100].
func (m MetricsInput) Validate() error {
	return validation.Struct(m)
}

// RecordInput is the result of an external analysis.
type RecordInput struct {
	TakenAt      *time.Time   `json:"takenAt"`
	OverallScore int          `json:"overallScore" validate:"gte=0,lte=100"`
	Metrics      MetricsInput `json:"metrics"`
	Summary      string       `json:"summary" validate:"max=2000"`
}

type Service struct {
	Repo Repo
	now  func() time.Time
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo, now: time.Now}
}

// Record validates and stores a scan. Validation failures are returned as
// *validation.Error.
func (s *Service) Record(ctx context.Context, userID string, in RecordInput) (Scan, error) {
	if s == nil || s.Repo == nil {
		return Scan{}, errNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return Scan{}, errors.New("user id is required")
	}
	in.Summary = strings.TrimSpace(in.Summary)
	if err := validation.Struct(in); err != nil {
		return Scan{}, err
	}

	now := s.now().UTC()
	takenAt := now
	if in.TakenAt != nil && !in.TakenAt.IsZero() {
		takenAt = in.TakenAt.UTC()
	}
	scan := Scan{
		ID:           uuid.NewString(),
		UserID:       userID,
		TakenAt:      takenAt,
		OverallScore: in.OverallScore,
		Metrics:      in.Metrics.ToScanMetrics(),
		Summary:      in.Summary,
		CreatedAt:    now,
	}
	if err := s.Repo.Create(ctx, scan); err != nil {
		return Scan{}, err
	}
	metrics.IncScansRecorded()
	telemetry.Info("scan.recorded", map[string]any{
		"scan_id":         scan.ID,
		"user_id":         userID,
		"primary_concern": string(recommendations.PrimaryConcern(scan.Metrics)),
	})
	return scan, nil
}

// List returns the user's scans newest first. limit is clamped to
// [1, MaxListLimit]; zero or negative selects DefaultListLimit.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]Scan, error) {
	if s == nil || s.Repo == nil {
		return nil, errNotConfigured
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

// Latest returns the newest scan or ErrNotFound.
func (s *Service) Latest(ctx context.Context, userID string) (Scan, error) {
	if s == nil || s.Repo == nil {
		return Scan{}, errNotConfigured
	}
	return s.Repo.Latest(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, scanID string) error {
	if s == nil || s.Repo == nil {
		return errNotConfigured
	}
	if _, err := uuid.Parse(scanID); err != nil {
		return ErrNotFound
	}
	return s.Repo.Delete(ctx, userID, scanID)
}
