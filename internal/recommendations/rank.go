package recommendations

import (
	"sort"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/ingredients"
)

// Rank sorts by priority descending. Equal priorities keep merge order.
func Rank(candidates []Candidate) []Candidate {
	out := append([]Candidate(nil), candidates...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// IsHighlyRecommended reports whether priority earns the highlight flag.
func IsHighlyRecommended(priority int) bool {
	return priority > HighlyRecommendedAbove
}

func present(catalog *ingredients.Catalog, locale i18n.Locale, ranked []Candidate) []View {
	out := make([]View, 0, len(ranked))
	for _, c := range ranked {
		item := catalog.MustLookup(c.IngredientID)
		out = append(out, View{
			ID:                item.ID,
			Name:              item.Name,
			Category:          string(item.Category),
			Description:       item.Description.In(locale),
			Reason:            c.Reason.Render(locale),
			Priority:          c.Priority,
			HighlyRecommended: IsHighlyRecommended(c.Priority),
			Icon:              item.Icon,
			Color:             item.Color,
		})
	}
	return out
}
