package recommendations

import (
	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/ingredients"
)

type scanRule struct {
	ingredientID string
	summand      int
	reason       i18n.Text
	withSeverity bool
}

type metricRules struct {
	metric Metric
	rules  []scanRule
}

// Rule order matters: it is the tie-break order for equal priorities.
var scanRuleTable = []metricRules{
	{
		metric: MetricAcne,
		rules: []scanRule{
			{ingredients.SalicylicAcid, 20, i18n.Text{EN: "Targeting detected acne (%s)", ID: "Menargetkan jerawat terdeteksi (%s)"}, true},
			{ingredients.TeaTree, 10, i18n.Text{EN: "Natural anti-bacterial for acne", ID: "Anti-bakteri alami untuk jerawat"}, false},
			{ingredients.AzelaicAcid, 15, i18n.Text{EN: "Reduces acne redness", ID: "Mengurangi kemerahan jerawat"}, false},
		},
	},
	{
		metric: MetricWrinkles,
		rules: []scanRule{
			{ingredients.Retinol, 20, i18n.Text{EN: "Targeting signs of aging", ID: "Menargetkan tanda penuaan"}, false},
			{ingredients.Peptides, 15, i18n.Text{EN: "Collagen support for firming", ID: "Dukungan kolagen untuk pengencangan"}, false},
			{ingredients.HyaluronicAcid, 10, i18n.Text{EN: "Plumps fine lines", ID: "Mengisi garis halus"}, false},
		},
	},
	{
		metric: MetricPigmentation,
		rules: []scanRule{
			{ingredients.VitaminC, 20, i18n.Text{EN: "Brightens detected dark spots", ID: "Mencerahkan noda hitam terdeteksi"}, false},
			{ingredients.AlphaArbutin, 15, i18n.Text{EN: "Targeted spot treatment", ID: "Perawatan noda spesifik"}, false},
			{ingredients.Niacinamide, 10, i18n.Text{EN: "Evens out skin tone", ID: "Meratakan warna kulit"}, false},
			{ingredients.GlycolicAcid, 5, i18n.Text{EN: "Exfoliates pigmented cells", ID: "Mengangkat sel berpigmen"}, false},
		},
	},
	{
		metric: MetricTexture,
		rules: []scanRule{
			{ingredients.GlycolicAcid, 15, i18n.Text{EN: "Smoothes detected texture", ID: "Menghaluskan tekstur terdeteksi"}, false},
			{ingredients.SnailMucin, 10, i18n.Text{EN: "Repairs skin texture", ID: "Memperbaiki tekstur kulit"}, false},
			{ingredients.Squalane, 5, i18n.Text{EN: "Softens rough skin", ID: "Melembutkan kulit kasar"}, false},
		},
	},
}

// fromScan derives candidates from scan metrics. A nil scan contributes nothing.
// Duplicates across metrics are resolved with the merge policy.
func fromScan(scan *ScanMetrics) []Candidate {
	if scan == nil {
		return nil
	}
	acc := newMerger(16)
	for _, set := range scanRuleTable {
		value := scan.Value(set.metric)
		if value <= ActivationThreshold {
			continue
		}
		for _, rule := range set.rules {
			reason := Reason{Text: rule.reason}
			if rule.withSeverity {
				reason.Severity = acneSeverity(value)
			}
			acc.offer(Candidate{
				IngredientID: rule.ingredientID,
				Reason:       reason,
				Priority:     value + rule.summand,
			})
		}
	}
	return acc.candidates()
}
