package query

import (
	"testing"
	"time"

	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/service/stock"
)

func names(items []entity.InventoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func equalNames(got []entity.InventoryItem, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Name != want[i] {
			return false
		}
	}
	return true
}

func TestApply_SearchTerm_CaseInsensitive(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Widget", Category: "Tools", Quantity: 5, MinStock: 10},
		{Name: "Gadget", Category: "Parts", Quantity: 0, MinStock: 2},
	}
	got := Apply(items, Config{SearchTerm: "WIDG"})
	if !equalNames(got, "Widget") {
		t.Errorf("search = %v, want [Widget]", names(got))
	}
}

func TestApply_SearchTerm_MatchesDescription(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "A", Description: "ergonomic chair"},
		{Name: "B", Description: "standing desk"},
	}
	got := Apply(items, Config{SearchTerm: "ergo"})
	if !equalNames(got, "A") {
		t.Errorf("search = %v, want [A]", names(got))
	}
}

// Whitespace in the term is part of the match, not stripped.
func TestApply_SearchTerm_SpacesAreLiteral(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Wireless Mouse"},
		{Name: "Mouse Pad", Description: "cloth mouse pad"},
	}
	got := Apply(items, Config{SearchTerm: "mouse "})
	if !equalNames(got, "Mouse Pad") {
		t.Errorf("search %q = %v, want [Mouse Pad]", "mouse ", names(got))
	}
	got = Apply(items, Config{SearchTerm: " mouse"})
	if !equalNames(got, "Wireless Mouse", "Mouse Pad") {
		t.Errorf("search %q = %v, want both", " mouse", names(got))
	}
}

func TestApply_StockFilter(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Widget", Category: "Tools", Quantity: 5, MinStock: 10},
		{Name: "Gadget", Category: "Parts", Quantity: 0, MinStock: 2},
	}
	got := Apply(items, Config{Stock: stock.StatusOutOfStock})
	if !equalNames(got, "Gadget") {
		t.Errorf("stock filter = %v, want [Gadget]", names(got))
	}
}

func TestApply_CategoryExactMatch(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "A", Category: "Tools"},
		{Name: "B", Category: "Tooling"},
	}
	got := Apply(items, Config{Category: "Tools"})
	if !equalNames(got, "A") {
		t.Errorf("category filter = %v, want [A]", names(got))
	}
}

func TestApply_FiltersCombineWithAnd(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "Hammer", Category: "Tools", Quantity: 5, MinStock: 2},
		{Name: "Hammer Drill", Category: "Power", Quantity: 5, MinStock: 2},
		{Name: "Hammer Case", Category: "Tools", Quantity: 0, MinStock: 2},
	}
	got := Apply(items, Config{SearchTerm: "hammer", Category: "Tools", Stock: stock.StatusInStock})
	if !equalNames(got, "Hammer") {
		t.Errorf("combined filters = %v, want [Hammer]", names(got))
	}
}

func TestApply_SortByName(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "zebra"}, {Name: "Apple"}, {Name: "mango"},
	}
	got := Apply(items, Config{SortKey: SortByName})
	if !equalNames(got, "Apple", "mango", "zebra") {
		t.Errorf("sort by name = %v", names(got))
	}
}

func TestApply_SortByQuantityDescending(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "A", Quantity: 5}, {Name: "B", Quantity: 50}, {Name: "C", Quantity: 20},
	}
	got := Apply(items, Config{SortKey: SortByQuantity})
	if !equalNames(got, "B", "C", "A") {
		t.Errorf("sort by quantity = %v", names(got))
	}
}

func TestApply_SortByPriceDescending(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "A", Price: 9.99}, {Name: "B", Price: 199.99}, {Name: "C", Price: 49.5},
	}
	got := Apply(items, Config{SortKey: SortByPrice})
	if !equalNames(got, "B", "C", "A") {
		t.Errorf("sort by price = %v", names(got))
	}
}

func TestApply_SortByLastUpdated_MostRecentFirst(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []entity.InventoryItem{
		{Name: "old", LastUpdated: base},
		{Name: "new", LastUpdated: base.Add(48 * time.Hour)},
		{Name: "mid", LastUpdated: base.Add(24 * time.Hour)},
	}
	got := Apply(items, Config{SortKey: SortByLastUpdated})
	if !equalNames(got, "new", "mid", "old") {
		t.Errorf("sort by lastUpdated = %v", names(got))
	}
}

// Equal sort keys must preserve the original relative order.
func TestApply_SortStability(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "B", Quantity: 7},
		{Name: "A", Description: "first", Quantity: 7},
		{Name: "A", Description: "second", Quantity: 7},
	}
	got := Apply(items, Config{SortKey: SortByQuantity})
	if !equalNames(got, "B", "A", "A") {
		t.Fatalf("stable sort = %v", names(got))
	}
	if got[1].Description != "first" || got[2].Description != "second" {
		t.Errorf("tied items reordered: %q then %q", got[1].Description, got[2].Description)
	}
}

// An unknown sort key is pass-through: filtered items keep their order.
func TestApply_UnknownSortKeyPassThrough(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "zebra"}, {Name: "Apple"},
	}
	got := Apply(items, Config{SortKey: SortKey("weight")})
	if !equalNames(got, "zebra", "Apple") {
		t.Errorf("unknown sort key = %v, want original order", names(got))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, Config{SearchTerm: "x", SortKey: SortByName})
	if len(got) != 0 {
		t.Errorf("empty input: got %d items", len(got))
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	items := []entity.InventoryItem{
		{Name: "B", Quantity: 1}, {Name: "A", Quantity: 2},
	}
	Apply(items, Config{SortKey: SortByName})
	if items[0].Name != "B" || items[1].Name != "A" {
		t.Error("input slice was mutated")
	}
}

func TestCategories(t *testing.T) {
	items := []entity.InventoryItem{
		{Category: "Tools"}, {Category: "Parts"}, {Category: "Tools"}, {Category: ""},
	}
	got := Categories(items)
	if len(got) != 2 || got[0] != "Parts" || got[1] != "Tools" {
		t.Errorf("Categories = %v, want [Parts Tools]", got)
	}
}
