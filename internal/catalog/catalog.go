// Package catalog holds the immutable content catalog: wine styles and
// the wines belonging to them. The catalog is supplied externally (an
// embedded starter document, a local file, or a fetched mirror) and is
// never mutated once a session starts.
package catalog

import "strings"

// OriginDelimiter separates sub-origins in multi-origin wines,
// e.g. "Spain / Portugal".
const OriginDelimiter = "/"

// Wine is a single catalog entry as it appears on the wire, keyed by
// name. Names are natural identifiers; there is no numeric surrogate.
type Wine struct {
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

// Style is one category of the catalog partition.
type Style struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	Wines       []Wine `json:"wines"`
}

// Catalog is the full content document.
type Catalog struct {
	Version     string  `json:"version"`
	LastUpdated string  `json:"lastUpdated"`
	Styles      []Style `json:"styles"`
}

// Item is a wine flattened together with its parent style's metadata.
// The question generator works over a pool of Items.
type Item struct {
	Name             string
	Origin           string
	StyleID          string
	StyleName        string
	StyleColor       string
	StyleDescription string
}

// StyleByID returns the style with the given id, or nil.
func (c *Catalog) StyleByID(id string) *Style {
	for i := range c.Styles {
		if c.Styles[i].ID == id {
			return &c.Styles[i]
		}
	}
	return nil
}

// FilterStyles returns the styles whose ids are in categoryIDs.
// An empty filter selects every style.
func (c *Catalog) FilterStyles(categoryIDs []string) []Style {
	if len(categoryIDs) == 0 {
		return c.Styles
	}
	selected := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		selected[id] = true
	}
	var out []Style
	for _, s := range c.Styles {
		if selected[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

// Items flattens the given styles into the item pool, attaching each
// wine's parent style metadata.
func Items(styles []Style) []Item {
	var out []Item
	for _, s := range styles {
		for _, w := range s.Wines {
			out = append(out, Item{
				Name:             w.Name,
				Origin:           w.Origin,
				StyleID:          s.ID,
				StyleName:        s.Name,
				StyleColor:       s.Color,
				StyleDescription: s.Description,
			})
		}
	}
	return out
}

// AllItems flattens the whole catalog.
func (c *Catalog) AllItems() []Item {
	return Items(c.Styles)
}

// SplitOrigins splits a (possibly multi-) origin string into its
// trimmed sub-origins.
func SplitOrigins(origin string) []string {
	parts := strings.Split(origin, OriginDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// OriginVocabulary returns the distinct sub-origins across the given
// items, in first-seen order.
func OriginVocabulary(items []Item) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		for _, o := range SplitOrigins(it.Origin) {
			if !seen[o] {
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}
