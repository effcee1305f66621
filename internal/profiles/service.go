package profiles

import (
	"context"
	"errors"
	"strings"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
	"glowyze-backend/internal/shared/validation"
)

var errNotConfigured = errors.New("profiles service not configured")

// UpdateInput is the full replacement body for a profile. Empty enum fields
// take their onboarding defaults.
type UpdateInput struct {
	Name            string   `json:"name" validate:"max=100"`
	Age             int      `json:"age" validate:"gte=0,lte=120"`
	Gender          string   `json:"gender" validate:"max=32"`
	SkinType        string   `json:"skinType" validate:"required,oneof=Oily Dry Combination Normal Sensitive"`
	Allergies       []string `json:"allergies" validate:"max=50,dive,max=64"`
	SleepHours      float64  `json:"sleepHours" validate:"gte=0,lte=24"`
	WaterIntake     float64  `json:"waterIntake" validate:"gte=0,lte=20"`
	StressLevel     string   `json:"stressLevel" validate:"oneof=Low Medium High"`
	Diet            string   `json:"diet" validate:"oneof=Balanced 'High Carb' 'High Protein' Vegetarian"`
	Language        string   `json:"language" validate:"oneof=en id"`
	Theme           string   `json:"theme" validate:"oneof=light dark"`
	CustomChecklist []string `json:"customChecklist" validate:"max=30,dive,max=120"`
	Onboarded       bool     `json:"onboarded"`
}

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the stored profile, or the default profile with found=false.
func (s *Service) Get(ctx context.Context, userID string) (Profile, bool, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, false, errNotConfigured
	}
	p, err := s.Repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Default(userID), false, nil
	}
	if err != nil {
		return Profile{}, false, err
	}
	return p, true, nil
}

// Update normalizes and validates in, then replaces the user's profile.
// Validation failures are returned as *validation.Error.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Profile, error) {
	if s == nil || s.Repo == nil {
		return Profile{}, errNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return Profile{}, errors.New("user id is required")
	}

	in = normalize(in)
	if err := validation.Struct(in); err != nil {
		return Profile{}, err
	}

	return s.Repo.Save(ctx, Profile{
		UserID:          userID,
		Name:            in.Name,
		Age:             in.Age,
		Gender:          in.Gender,
		SkinType:        recommendations.SkinType(in.SkinType),
		Allergies:       in.Allergies,
		SleepHours:      in.SleepHours,
		WaterIntake:     in.WaterIntake,
		StressLevel:     StressLevel(in.StressLevel),
		Diet:            in.Diet,
		Language:        i18n.Locale(in.Language),
		Theme:           in.Theme,
		CustomChecklist: in.CustomChecklist,
		Onboarded:       in.Onboarded,
	})
}

func normalize(in UpdateInput) UpdateInput {
	def := Default("")
	in.Name = strings.TrimSpace(in.Name)
	in.Gender = strings.TrimSpace(in.Gender)
	if st, ok := recommendations.ParseSkinType(in.SkinType); ok {
		in.SkinType = string(st)
	}
	in.StressLevel = orDefault(in.StressLevel, string(def.StressLevel))
	in.Diet = orDefault(in.Diet, def.Diet)
	in.Theme = strings.ToLower(orDefault(in.Theme, def.Theme))
	in.Language = strings.TrimSpace(in.Language)
	if in.Language == "" {
		in.Language = string(def.Language)
	} else if l, ok := i18n.Parse(in.Language); ok {
		in.Language = string(l)
	}
	in.Allergies = cleanList(in.Allergies)
	in.CustomChecklist = cleanList(in.CustomChecklist)
	return in
}

func orDefault(value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return def
	}
	return value
}

// cleanList trims entries, drops blanks and removes case-insensitive duplicates.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
