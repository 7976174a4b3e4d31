package stats

import (
	"sort"

	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/service/stock"
)

// Summary holds the dashboard headline numbers for a collection.
type Summary struct {
	TotalItems      int     `json:"totalItems"`
	TotalQuantity   int     `json:"totalQuantity"`
	TotalValue      float64 `json:"totalValue"`
	AveragePrice    float64 `json:"averagePrice"`
	InStockCount    int     `json:"inStockCount"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

// CategoryShare is one slice of the category distribution.
type CategoryShare struct {
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Percentage float64 `json:"percentage"`
}

// SupplierMetrics aggregates one supplier's lines.
type SupplierMetrics struct {
	Name            string   `json:"name"`
	TotalItems      int      `json:"totalItems"`
	TotalValue      float64  `json:"totalValue"`
	LowStockCount   int      `json:"lowStockCount"`
	OutOfStockCount int      `json:"outOfStockCount"`
	AveragePrice    float64  `json:"averagePrice"`
	Categories      []string `json:"categories"`
}

// All reducers here are pure: they take an explicit collection and are
// re-invoked whenever the store changes. No caching, no invalidation.

// Compute returns the Summary for items. Empty input yields all zeros;
// the average is guarded against a zero total quantity.
func Compute(items []entity.InventoryItem) Summary {
	var s Summary
	s.TotalItems = len(items)
	for _, it := range items {
		s.TotalQuantity += it.Quantity
		s.TotalValue += it.TotalValue()
		switch stock.ClassifyItem(it) {
		case stock.StatusInStock:
			s.InStockCount++
		case stock.StatusLowStock:
			s.LowStockCount++
		case stock.StatusOutOfStock:
			s.OutOfStockCount++
		}
	}
	if s.TotalQuantity > 0 {
		s.AveragePrice = s.TotalValue / float64(s.TotalQuantity)
	}
	return s
}

// CategoryDistribution returns one entry per distinct category in
// first-seen order, with each category's share of the total quantity.
func CategoryDistribution(items []entity.InventoryItem) []CategoryShare {
	totalQty := 0
	for _, it := range items {
		totalQty += it.Quantity
	}

	index := make(map[string]int)
	var out []CategoryShare
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(out)
			index[it.Category] = i
			out = append(out, CategoryShare{Category: it.Category})
		}
		out[i].Quantity += it.Quantity
	}
	if totalQty > 0 {
		for i := range out {
			out[i].Percentage = 100 * float64(out[i].Quantity) / float64(totalQty)
		}
	}
	return out
}

// TopByValue returns up to n items sorted by quantity × price descending.
// Ties keep their original relative order.
func TopByValue(items []entity.InventoryItem, n int) []entity.InventoryItem {
	if n <= 0 {
		return nil
	}
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalValue() > out[j].TotalValue()
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BySupplier aggregates items per supplier. Categories are collected in
// first-seen order; the per-supplier average price uses the same
// zero-quantity guard as Compute.
func BySupplier(items []entity.InventoryItem) map[string]SupplierMetrics {
	type acc struct {
		m       SupplierMetrics
		qty     int
		catSeen map[string]bool
	}
	accs := make(map[string]*acc)

	for _, it := range items {
		a, ok := accs[it.Supplier]
		if !ok {
			a = &acc{m: SupplierMetrics{Name: it.Supplier}, catSeen: make(map[string]bool)}
			accs[it.Supplier] = a
		}
		a.m.TotalItems++
		a.m.TotalValue += it.TotalValue()
		a.qty += it.Quantity
		switch stock.ClassifyItem(it) {
		case stock.StatusLowStock:
			a.m.LowStockCount++
		case stock.StatusOutOfStock:
			a.m.OutOfStockCount++
		}
		if it.Category != "" && !a.catSeen[it.Category] {
			a.catSeen[it.Category] = true
			a.m.Categories = append(a.m.Categories, it.Category)
		}
	}

	out := make(map[string]SupplierMetrics, len(accs))
	for name, a := range accs {
		if a.qty > 0 {
			a.m.AveragePrice = a.m.TotalValue / float64(a.qty)
		}
		out[name] = a.m
	}
	return out
}

// Suppliers returns the distinct supplier names, sorted. An empty
// supplier is a name like any other (it sorts first), so items without
// one still show up in per-supplier views.
func Suppliers(items []entity.InventoryItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if seen[it.Supplier] {
			continue
		}
		seen[it.Supplier] = true
		out = append(out, it.Supplier)
	}
	sort.Strings(out)
	return out
}
