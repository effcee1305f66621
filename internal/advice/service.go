package advice

import (
	"context"
	"errors"
	"strings"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/profiles"
	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/scans"
	"glowyze-backend/internal/shared/metrics"
	"glowyze-backend/internal/shared/telemetry"
	"glowyze-backend/internal/shared/validation"
)

type ProfileSource interface {
	Get(ctx context.Context, userID string) (profiles.Profile, bool, error)
}

type ScanSource interface {
	Latest(ctx context.Context, userID string) (scans.Scan, error)
}

type Service struct {
	Engine        *recommendations.Engine
	Profiles      ProfileSource
	Scans         ScanSource
	DefaultLocale i18n.Locale
}

func NewService(engine *recommendations.Engine, profileSrc ProfileSource, scanSrc ScanSource, defaultLocale i18n.Locale) *Service {
	if defaultLocale == "" {
		defaultLocale = i18n.Default
	}
	return &Service{
		Engine:        engine,
		Profiles:      profileSrc,
		Scans:         scanSrc,
		DefaultLocale: defaultLocale,
	}
}

// ForUser builds the page from the user's profile and latest scan. The locale
// is taken from requested, then the stored profile language, then
// acceptLanguage. A user without a stored profile has no language preference.
func (s *Service) ForUser(ctx context.Context, userID, requested, acceptLanguage string) (Page, error) {
	if s == nil || s.Engine == nil || s.Profiles == nil || s.Scans == nil {
		return Page{}, errors.New("advice service not configured")
	}
	profile, found, err := s.Profiles.Get(ctx, userID)
	if err != nil {
		return Page{}, err
	}
	preferred := ""
	if found {
		preferred = string(profile.Language)
	}

	var latest *scans.Scan
	scan, err := s.Scans.Latest(ctx, userID)
	switch {
	case err == nil:
		latest = &scan
	case !errors.Is(err, scans.ErrNotFound):
		return Page{}, err
	}

	locale := s.resolveLocale(requested, preferred, acceptLanguage)
	page := s.build(locale, profile.SkinType, latest)
	telemetry.Debug("advice.computed", map[string]any{
		"user_id":   userID,
		"locale":    string(locale),
		"skin_type": string(profile.SkinType),
		"items":     len(page.Items),
	})
	return page, nil
}

// Preview builds a page from explicit inputs. An empty skin type means
// Normal. Invalid input is returned as *validation.Error.
func (s *Service) Preview(in PreviewInput, acceptLanguage string) (Page, error) {
	if s == nil || s.Engine == nil {
		return Page{}, errors.New("advice service not configured")
	}

	skinType := recommendations.SkinNormal
	if raw := strings.TrimSpace(in.SkinType); raw != "" {
		st, ok := recommendations.ParseSkinType(raw)
		if !ok {
			return Page{}, &validation.Error{Fields: []validation.FieldError{{
				Field:   "skinType",
				Tag:     "oneof",
				Message: "skinType must be one of: Oily Dry Combination Normal Sensitive",
			}}}
		}
		skinType = st
	}

	var latest *scans.Scan
	if in.Scan != nil {
		if err := in.Scan.Validate(); err != nil {
			return Page{}, err
		}
		latest = &scans.Scan{Metrics: in.Scan.ToScanMetrics()}
	}

	return s.build(s.resolveLocale(in.Locale, "", acceptLanguage), skinType, latest), nil
}

// Ingredients renders the whole catalog in the resolved locale.
func (s *Service) Ingredients(requested, acceptLanguage string) (i18n.Locale, []IngredientView) {
	locale := s.resolveLocale(requested, "", acceptLanguage)
	all := s.Engine.Catalog().All()
	out := make([]IngredientView, 0, len(all))
	for _, item := range all {
		out = append(out, IngredientView{
			ID:          item.ID,
			Name:        item.Name,
			Category:    string(item.Category),
			Description: item.Description.In(locale),
			Reason:      item.DefaultReason.In(locale),
			Icon:        item.Icon,
			Color:       item.Color,
		})
	}
	return locale, out
}

func (s *Service) resolveLocale(requested, preferred, acceptLanguage string) i18n.Locale {
	if l, ok := i18n.Parse(requested); ok {
		return l
	}
	if l, ok := i18n.Parse(preferred); ok {
		return l
	}
	fallback := s.DefaultLocale
	if fallback == "" {
		fallback = i18n.Default
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	return i18n.Negotiate(acceptLanguage, fallback)
}

func (s *Service) build(locale i18n.Locale, skinType recommendations.SkinType, latest *scans.Scan) Page {
	var scanMetrics *recommendations.ScanMetrics
	if latest != nil {
		scanMetrics = &latest.Metrics
	}
	items := s.Engine.Compute(locale, skinType, scanMetrics)
	metrics.ObserveAdvice(string(locale), latest != nil, len(items))

	page := Page{
		Locale:       locale,
		SkinType:     skinType,
		Title:        titleText.In(locale),
		Subtitle:     subtitleText.In(locale),
		FocusLabel:   focusLabelText.In(locale),
		Focus:        string(skinType),
		Items:        items,
		BadgeLabel:   badgeText.In(locale),
		EmptyMessage: emptyText.In(locale),
		Disclaimer:   disclaimerText.In(locale),
	}
	if latest != nil {
		concern := recommendations.PrimaryConcern(latest.Metrics)
		page.ScanID = latest.ID
		page.Focus = currentFocusText.In(locale)
		page.PrimaryConcern = &Concern{
			Metric: concern,
			Label:  strings.ToUpper(metricNames[concern].In(locale)),
			Prefix: concernLabelText.In(locale),
			Value:  latest.Metrics.Value(concern),
		}
	}
	return page
}
