package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	entity "inventorypro.GO/model/entity"
)

// GormStore keeps the collection in a database behind the same Store
// contract; the query engine and aggregator never notice the swap.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&entity.InventoryItem{}); err != nil {
		return nil, fmt.Errorf("migrate inventory_item: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Create(input entity.ItemInput) (*entity.InventoryItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	it := entity.InventoryItem{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Quantity:    input.Quantity,
		MinStock:    input.MinStock,
		Price:       input.Price,
		Supplier:    input.Supplier,
		LastUpdated: time.Now(),
	}
	if err := s.db.Create(&it).Error; err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return &it, nil
}

func (s *GormStore) Update(id string, input entity.ItemInput) (*entity.InventoryItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	var it entity.InventoryItem
	if err := s.db.First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("update %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("update %s: %w", id, err)
	}
	it.Name = input.Name
	it.Description = input.Description
	it.Category = input.Category
	it.Quantity = input.Quantity
	it.MinStock = input.MinStock
	it.Price = input.Price
	it.Supplier = input.Supplier
	it.LastUpdated = stamp(it.LastUpdated)
	if err := s.db.Save(&it).Error; err != nil {
		return nil, fmt.Errorf("update %s: %w", id, err)
	}
	return &it, nil
}

func (s *GormStore) Delete(id string) error {
	res := s.db.Delete(&entity.InventoryItem{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

func (s *GormStore) Get(id string) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := s.db.First(&it, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get %s: %w", id, entity.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", id, err)
	}
	return &it, nil
}

// List returns items ordered by last_updated ascending, the closest the
// table gets to insertion order. Consumers sort themselves anyway.
func (s *GormStore) List() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	if err := s.db.Order("last_updated ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *GormStore) Replace(items []entity.InventoryItem) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.InventoryItem{}).Error; err != nil {
			return fmt.Errorf("replace: clear: %w", err)
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]entity.InventoryItem, len(items))
		copy(rows, items)
		for i := range rows {
			if rows[i].ID == "" {
				rows[i].ID = uuid.NewString()
			}
			if rows[i].LastUpdated.IsZero() {
				rows[i].LastUpdated = time.Now()
			}
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("replace: insert: %w", err)
		}
		return nil
	})
}
