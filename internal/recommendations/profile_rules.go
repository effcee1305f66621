package recommendations

import (
	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/ingredients"
)

type profileRule struct {
	ingredientID string
	priority     int
	reason       i18n.Text
}

var profileRuleTable = map[SkinType][]profileRule{
	SkinOily: {
		{ingredients.SalicylicAcid, 10, i18n.Text{EN: "Matches Oily skin type", ID: "Sesuai tipe kulit Berminyak"}},
		{ingredients.Niacinamide, 10, i18n.Text{EN: "Oil control for Oily skin", ID: "Kontrol minyak untuk kulit Berminyak"}},
	},
	SkinDry: {
		{ingredients.HyaluronicAcid, 10, i18n.Text{EN: "Hydration for Dry skin", ID: "Hidrasi untuk kulit Kering"}},
		{ingredients.Ceramides, 10, i18n.Text{EN: "Barrier repair for Dry skin", ID: "Perbaikan barrier kulit Kering"}},
		{ingredients.Squalane, 8, i18n.Text{EN: "Moisturizer for Dry skin", ID: "Pelembap untuk kulit Kering"}},
	},
	SkinCombination: {
		{ingredients.Niacinamide, 10, i18n.Text{EN: "Balances Combination skin", ID: "Menyeimbangkan kulit Kombinasi"}},
	},
	SkinSensitive: {
		{ingredients.Centella, 12, i18n.Text{EN: "Soothing for Sensitive skin", ID: "Menenangkan kulit Sensitif"}},
		{ingredients.Ceramides, 10, i18n.Text{EN: "Strengthens Sensitive barrier", ID: "Memperkuat barrier Sensitif"}},
	},
	SkinNormal: {
		{ingredients.VitaminC, 5, i18n.Text{EN: "Maintenance for Normal skin", ID: "Perawatan kulit Normal"}},
	},
}

// fromProfile derives candidates from the skin type. Unrecognized skin types
// get the Normal rules, so the result is never empty.
func fromProfile(skinType SkinType) []Candidate {
	rules, ok := profileRuleTable[skinType]
	if !ok {
		rules = profileRuleTable[SkinNormal]
	}
	out := make([]Candidate, 0, len(rules))
	for _, rule := range rules {
		out = append(out, Candidate{
			IngredientID: rule.ingredientID,
			Reason:       Reason{Text: rule.reason},
			Priority:     rule.priority,
		})
	}
	return out
}
