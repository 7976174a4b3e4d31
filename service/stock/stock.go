package stock

import entity "inventorypro.GO/model/entity"

// Status is the derived availability of an item. Never stored; always
// recomputed from the current quantity/minStock pair.
type Status string

const (
	StatusInStock    Status = "in-stock"
	StatusLowStock   Status = "low-stock"
	StatusOutOfStock Status = "out-of-stock"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock:
		return true
	}
	return false
}

// Classify derives the stock status. quantity == 0 always wins over the
// reorder threshold; low-stock requires a positive quantity at or below
// minStock.
func Classify(quantity, minStock int) Status {
	if quantity == 0 {
		return StatusOutOfStock
	}
	if quantity <= minStock {
		return StatusLowStock
	}
	return StatusInStock
}

// ClassifyItem is Classify over an item's current fields.
func ClassifyItem(it entity.InventoryItem) Status {
	return Classify(it.Quantity, it.MinStock)
}
