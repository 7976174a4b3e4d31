package entity

import "time"

// InventoryItem represents one stock-keeping unit (inventory_item table).
type InventoryItem struct {
	ID          string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:varchar(128);index" json:"category"`
	Quantity    int       `gorm:"column:quantity;not null;default:0" json:"quantity"`
	MinStock    int       `gorm:"column:min_stock;not null;default:0" json:"minStock"`
	Price       float64   `gorm:"column:price;type:decimal(12,4);not null;default:0" json:"price"`
	Supplier    string    `gorm:"column:supplier;type:varchar(128);index" json:"supplier"`
	LastUpdated time.Time `gorm:"column:last_updated;not null" json:"lastUpdated"`
}

func (InventoryItem) TableName() string {
	return "inventory_item"
}

// TotalValue is the on-hand value of the line (quantity × unit price).
func (i InventoryItem) TotalValue() float64 {
	return float64(i.Quantity) * i.Price
}

// ItemInput carries the caller-settable fields of an InventoryItem.
// ID and LastUpdated are owned by the store and never taken from input.
type ItemInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"minStock"`
	Price       float64 `json:"price"`
	Supplier    string  `json:"supplier"`
}
