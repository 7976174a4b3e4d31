package item

import (
	"fmt"
	"strings"

	entity "inventorypro.GO/model/entity"
)

// Store owns the mutable collection of inventory items. ID and
// LastUpdated are assigned by the store; Delete of an unknown id
// returns entity.ErrNotFound (strict variant, no silent no-op).
type Store interface {
	Create(input entity.ItemInput) (*entity.InventoryItem, error)
	Update(id string, input entity.ItemInput) (*entity.InventoryItem, error)
	Delete(id string) error
	Get(id string) (*entity.InventoryItem, error)
	// List returns all items in insertion order. Consumers that need a
	// particular order must sort themselves (service/query).
	List() ([]entity.InventoryItem, error)
	// Replace swaps the whole collection, keeping the given order.
	Replace(items []entity.InventoryItem) error
}

// validateInput enforces the store-boundary invariants: non-empty name,
// non-negative quantity/minStock/price.
func validateInput(in entity.ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0", entity.ErrInvalidInput)
	}
	if in.MinStock < 0 {
		return fmt.Errorf("%w: minStock must be >= 0", entity.ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must be >= 0", entity.ErrInvalidInput)
	}
	return nil
}
