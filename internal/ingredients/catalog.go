package ingredients

import (
	"fmt"
	"strings"

	"glowyze-backend/internal/i18n"
)

// Category groups ingredients by the concern they address.
type Category string

const (
	CategoryAcneControl Category = "acne-control"
	CategoryBrightening Category = "brightening"
	CategoryAntiAging   Category = "anti-aging"
	CategoryHydration   Category = "hydration"
)

// Ingredient is static catalog metadata. Values are copied out of the catalog,
// so holders cannot mutate the registry.
type Ingredient struct {
	ID            string
	Name          string
	Category      Category
	Description   i18n.Text
	DefaultReason i18n.Text
	Icon          string
	Color         string
}

// Catalog is an immutable ingredient registry keyed by id.
type Catalog struct {
	byID  map[string]Ingredient
	order []string
}

// NewCatalog builds a catalog, rejecting empty or duplicate ids.
func NewCatalog(items []Ingredient) (*Catalog, error) {
	c := &Catalog{
		byID:  make(map[string]Ingredient, len(items)),
		order: make([]string, 0, len(items)),
	}
	for i, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return nil, fmt.Errorf("ingredient %d: empty id", i)
		}
		if _, exists := c.byID[id]; exists {
			return nil, fmt.Errorf("ingredient %q: duplicate id", id)
		}
		item.ID = id
		c.byID[id] = item
		c.order = append(c.order, id)
	}
	return c, nil
}

// Lookup returns the ingredient for id.
func (c *Catalog) Lookup(id string) (Ingredient, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// MustLookup is Lookup for ids that rule tables guarantee to exist. An unknown
// id means a rule table and the catalog are out of sync.
func (c *Catalog) MustLookup(id string) Ingredient {
	item, ok := c.byID[id]
	if !ok {
		panic(fmt.Sprintf("ingredients: unknown ingredient id %q", id))
	}
	return item
}

// All returns every ingredient in declaration order.
func (c *Catalog) All() []Ingredient {
	out := make([]Ingredient, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len reports the number of ingredients.
func (c *Catalog) Len() int {
	return len(c.order)
}
