package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/service/stock"
)

// SortKey selects the ordering of a query result.
type SortKey string

const (
	SortByName        SortKey = "name"
	SortByQuantity    SortKey = "quantity"
	SortByPrice       SortKey = "price"
	SortByLastUpdated SortKey = "lastUpdated"
)

// Config is the ephemeral filter/sort state held by the front ends.
// Empty fields mean "no filter"; an unknown SortKey leaves the filtered
// items in their original order (pass-through, not an error).
type Config struct {
	SearchTerm string       `json:"searchTerm"`
	Category   string       `json:"category"`
	Stock      stock.Status `json:"stockFilter"`
	SortKey    SortKey      `json:"sortKey"`
}

// name sorting is locale-aware and case-insensitive.
var nameCollator = collate.New(language.English, collate.IgnoreCase)

// Apply filters and stably sorts items per cfg. The input slice is never
// mutated; the result is a fresh slice. Deterministic for equal inputs.
// The search term is matched literally (lowercased, not trimmed), so a
// term with leading or trailing spaces only matches where the text has
// them too.
func Apply(items []entity.InventoryItem, cfg Config) []entity.InventoryItem {
	term := strings.ToLower(cfg.SearchTerm)

	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Description), term) {
			continue
		}
		if cfg.Category != "" && it.Category != cfg.Category {
			continue
		}
		if cfg.Stock != "" && stock.ClassifyItem(it) != cfg.Stock {
			continue
		}
		out = append(out, it)
	}

	switch cfg.SortKey {
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByQuantity:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Quantity > out[j].Quantity
		})
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortByLastUpdated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].LastUpdated.After(out[j].LastUpdated)
		})
	}
	return out
}

// Categories returns the distinct categories present, sorted, for the
// filter dropdowns.
func Categories(items []entity.InventoryItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}
