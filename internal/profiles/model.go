package profiles

import (
	"time"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/recommendations"
)

type StressLevel string

const (
	StressLow    StressLevel = "Low"
	StressMedium StressLevel = "Medium"
	StressHigh   StressLevel = "High"
)

const (
	DietBalanced    = "Balanced"
	DietHighCarb    = "High Carb"
	DietHighProtein = "High Protein"
	DietVegetarian  = "Vegetarian"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Profile holds onboarding answers and preferences for one user.
type Profile struct {
	UserID          string                   `json:"userId"`
	Name            string                   `json:"name"`
	Age             int                      `json:"age"`
	Gender          string                   `json:"gender"`
	SkinType        recommendations.SkinType `json:"skinType"`
	Allergies       []string                 `json:"allergies"`
	SleepHours      float64                  `json:"sleepHours"`
	WaterIntake     float64                  `json:"waterIntake"`
	StressLevel     StressLevel              `json:"stressLevel"`
	Diet            string                   `json:"diet"`
	Language        i18n.Locale              `json:"language"`
	Theme           string                   `json:"theme"`
	CustomChecklist []string                 `json:"customChecklist"`
	Onboarded       bool                     `json:"onboarded"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// Default returns the profile used before onboarding.
func Default(userID string) Profile {
	return Profile{
		UserID:          userID,
		Gender:          "Female",
		SkinType:        recommendations.SkinNormal,
		Allergies:       []string{},
		SleepHours:      7,
		WaterIntake:     1.5,
		StressLevel:     StressMedium,
		Diet:            DietBalanced,
		Language:        i18n.Default,
		Theme:           ThemeLight,
		CustomChecklist: []string{},
	}
}
