package advice

import (
	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/scans"
)

// Concern is the dominant scan metric.
type Concern struct {
	Metric recommendations.Metric `json:"metric"`
	Label  string                 `json:"label"`
	Prefix string                 `json:"prefix"`
	Value  int                    `json:"value"`
}

// Page is the localized advice screen.
type Page struct {
	Locale         i18n.Locale              `json:"locale"`
	SkinType       recommendations.SkinType `json:"skinType"`
	ScanID         string                   `json:"scanId,omitempty"`
	Title          string                   `json:"title"`
	Subtitle       string                   `json:"subtitle"`
	FocusLabel     string                   `json:"focusLabel"`
	Focus          string                   `json:"focus"`
	PrimaryConcern *Concern                 `json:"primaryConcern,omitempty"`
	Items          []recommendations.View   `json:"items"`
	BadgeLabel     string                   `json:"badgeLabel"`
	EmptyMessage   string                   `json:"emptyMessage"`
	Disclaimer     string                   `json:"disclaimer"`
}

// IngredientView is a catalog entry rendered in one locale.
type IngredientView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

// PreviewInput computes advice without stored state.
type PreviewInput struct {
	Locale   string              `json:"locale"`
	SkinType string              `json:"skinType"`
	Scan     *scans.MetricsInput `json:"scan"`
}
