package recommendations

import (
	"fmt"
	"strings"

	"glowyze-backend/internal/i18n"
)

const (
	// ActivationThreshold is exclusive: a metric must exceed it to fire its rules.
	ActivationThreshold = 25
	// HighlyRecommendedAbove is exclusive: priorities above it get the flag.
	HighlyRecommendedAbove = 20

	highAcneAbove = 50
)

// SkinType is the user's static skin classification.
type SkinType string

const (
	SkinOily        SkinType = "Oily"
	SkinDry         SkinType = "Dry"
	SkinCombination SkinType = "Combination"
	SkinNormal      SkinType = "Normal"
	SkinSensitive   SkinType = "Sensitive"
)

var skinTypes = []SkinType{SkinOily, SkinDry, SkinCombination, SkinNormal, SkinSensitive}

// SkinTypes lists every skin type.
func SkinTypes() []SkinType {
	return append([]SkinType(nil), skinTypes...)
}

// ParseSkinType matches a skin type case-insensitively.
func ParseSkinType(raw string) (SkinType, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, st := range skinTypes {
		if strings.EqualFold(trimmed, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Metric names one of the four scan severity scores.
type Metric string

const (
	MetricAcne         Metric = "acne"
	MetricWrinkles     Metric = "wrinkles"
	MetricPigmentation Metric = "pigmentation"
	MetricTexture      Metric = "texture"
)

// Metrics lists the scan metrics in evaluation order.
var Metrics = []Metric{MetricAcne, MetricWrinkles, MetricPigmentation, MetricTexture}

// ScanMetrics holds severity scores in [0,100] produced by the scan subsystem.
type ScanMetrics struct {
	Acne         int `json:"acne"`
	Wrinkles     int `json:"wrinkles"`
	Pigmentation int `json:"pigmentation"`
	Texture      int `json:"texture"`
}

// Value returns the score for metric.
func (m ScanMetrics) Value(metric Metric) int {
	switch metric {
	case MetricAcne:
		return m.Acne
	case MetricWrinkles:
		return m.Wrinkles
	case MetricPigmentation:
		return m.Pigmentation
	case MetricTexture:
		return m.Texture
	default:
		return 0
	}
}

// Severity is the acne severity label substituted into reasons.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityModerate
	SeverityHigh
)

var severityLabels = map[Severity]i18n.Text{
	SeverityModerate: {EN: "Moderate", ID: "Sedang"},
	SeverityHigh:     {EN: "High", ID: "Tinggi"},
}

// Label renders the severity in the locale.
func (s Severity) Label(l i18n.Locale) string {
	return severityLabels[s].In(l)
}

func acneSeverity(value int) Severity {
	if value > highAcneAbove {
		return SeverityHigh
	}
	return SeverityModerate
}

// Reason is a locale-agnostic justification. Text may contain one %s verb
// that receives the severity label.
type Reason struct {
	Text     i18n.Text
	Severity Severity
}

// Render resolves the reason to text in the locale.
func (r Reason) Render(l i18n.Locale) string {
	text := r.Text.In(l)
	if r.Severity == SeverityNone {
		return text
	}
	return fmt.Sprintf(text, r.Severity.Label(l))
}

// Candidate is a proposed recommendation before merge resolution.
type Candidate struct {
	IngredientID string
	Reason       Reason
	Priority     int
}

// View is a ranked, localized recommendation ready for presentation.
type View struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Description       string `json:"description"`
	Reason            string `json:"reason"`
	Priority          int    `json:"priority"`
	HighlyRecommended bool   `json:"highlyRecommended"`
	Icon              string `json:"icon,omitempty"`
	Color             string `json:"color,omitempty"`
}
