package kitchen

import (
	"sort"

	"brigade/config"
)

// Catalog maps dish names to their ordered required ingredient lists.
// Read-only after construction.
type Catalog struct {
	recipes map[string][]string
}

// NewCatalog builds the catalog from config. Recipe ingredient lists are
// copied so later config mutation cannot leak into a running session.
func NewCatalog(cfg *config.Config) *Catalog {
	recipes := make(map[string][]string, len(cfg.Recipes))
	for name, required := range cfg.Recipes {
		recipes[name] = append([]string(nil), required...)
	}
	return &Catalog{recipes: recipes}
}

// Get returns a copy of the required ingredient list for a dish.
// The second return is false for unknown dishes.
func (c *Catalog) Get(name string) ([]string, bool) {
	required, ok := c.recipes[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), required...), true
}

// Has reports whether the catalog knows the dish.
func (c *Catalog) Has(name string) bool {
	_, ok := c.recipes[name]
	return ok
}

// Names returns all dish names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.recipes))
	for name := range c.recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
