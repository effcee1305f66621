package scans

import (
	"time"

	"glowyze-backend/internal/recommendations"
)

// Scan is one skin analysis result recorded for a user.
type Scan struct {
	ID           string                      `json:"id"`
	UserID       string                      `json:"userId"`
	TakenAt      time.Time                   `json:"takenAt"`
	OverallScore int                         `json:"overallScore"`
	Metrics      recommendations.ScanMetrics `json:"metrics"`
	Summary      string                      `json:"summary"`
	CreatedAt    time.Time                   `json:"createdAt"`
}

type Band string

const (
	BandGood Band = "good"
	BandFair Band = "fair"
	BandPoor Band = "poor"
)

// BandFor maps a severity score to its display band.
func BandFor(value int) Band {
	switch {
	case value < 20:
		return BandGood
	case value < 45:
		return BandFair
	default:
		return BandPoor
	}
}

// View is a scan with derived display fields.
type View struct {
	Scan
	Bands          map[recommendations.Metric]Band `json:"bands"`
	PrimaryConcern recommendations.Metric          `json:"primaryConcern"`
}

func NewView(s Scan) View {
	bands := make(map[recommendations.Metric]Band, len(recommendations.Metrics))
	for _, m := range recommendations.Metrics {
		bands[m] = BandFor(s.Metrics.Value(m))
	}
	return View{
		Scan:           s,
		Bands:          bands,
		PrimaryConcern: recommendations.PrimaryConcern(s.Metrics),
	}
}
