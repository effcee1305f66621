package recommendations

import (
	"fmt"

	"glowyze-backend/internal/i18n"
	"glowyze-backend/internal/ingredients"
)

// Engine turns a skin profile and an optional scan into ranked advice. It
// holds only the immutable catalog and is safe for concurrent use.
type Engine struct {
	catalog *ingredients.Catalog
}

// NewEngine binds the rule tables to catalog, failing if any rule names an
// ingredient the catalog does not know.
func NewEngine(catalog *ingredients.Catalog) (*Engine, error) {
	if catalog == nil {
		return nil, fmt.Errorf("recommendations: catalog is required")
	}
	for _, id := range ruleIngredientIDs() {
		if _, ok := catalog.Lookup(id); !ok {
			return nil, fmt.Errorf("recommendations: rule references unknown ingredient %q", id)
		}
	}
	return &Engine{catalog: catalog}, nil
}

// Catalog returns the catalog the engine resolves ingredients against.
func (e *Engine) Catalog() *ingredients.Catalog {
	return e.catalog
}

// Candidates runs both evaluators, scan first, and returns the merged,
// ranked candidates.
func (e *Engine) Candidates(skinType SkinType, scan *ScanMetrics) []Candidate {
	return Rank(Merge(fromScan(scan), fromProfile(skinType)))
}

// Compute returns the localized recommendation list.
func (e *Engine) Compute(locale i18n.Locale, skinType SkinType, scan *ScanMetrics) []View {
	return present(e.catalog, locale, e.Candidates(skinType, scan))
}

func ruleIngredientIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, set := range scanRuleTable {
		for _, rule := range set.rules {
			add(rule.ingredientID)
		}
	}
	for _, st := range skinTypes {
		for _, rule := range profileRuleTable[st] {
			add(rule.ingredientID)
		}
	}
	return ids
}
