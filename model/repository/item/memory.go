package item

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	entity "inventorypro.GO/model/entity"
)

// MemoryStore is the default Store backend: items live in process memory
// and are re-seeded on restart. Safe for the single-writer contract and
// then some (mutex-guarded).
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*entity.InventoryItem
	order []string // insertion order of ids
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*entity.InventoryItem)}
}

// stamp returns a timestamp strictly after prev, so LastUpdated strictly
// increases across updates even within one clock tick.
func stamp(prev time.Time) time.Time {
	now := time.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (s *MemoryStore) Create(input entity.ItemInput) (*entity.InventoryItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	it := &entity.InventoryItem{
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
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)

	out := *it
	return &out, nil
}

func (s *MemoryStore) Update(id string, input entity.ItemInput) (*entity.InventoryItem, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("update %s: %w", id, entity.ErrNotFound)
	}
	it.Name = input.Name
	it.Description = input.Description
	it.Category = input.Category
	it.Quantity = input.Quantity
	it.MinStock = input.MinStock
	it.Price = input.Price
	it.Supplier = input.Supplier
	it.LastUpdated = stamp(it.LastUpdated)

	out := *it
	return &out, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return fmt.Errorf("delete %s: %w", id, entity.ErrNotFound)
	}
	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Get(id string) (*entity.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("get %s: %w", id, entity.ErrNotFound)
	}
	out := *it
	return &out, nil
}

func (s *MemoryStore) List() ([]entity.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.InventoryItem, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out, nil
}

func (s *MemoryStore) Replace(items []entity.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*entity.InventoryItem, len(items))
	s.order = s.order[:0]
	for i := range items {
		it := items[i]
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.LastUpdated.IsZero() {
			it.LastUpdated = time.Now()
		}
		s.items[it.ID] = &it
		s.order = append(s.order, it.ID)
	}
	return nil
}
