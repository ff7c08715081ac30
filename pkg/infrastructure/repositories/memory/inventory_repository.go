package memory

import (
	"fmt"

	"github.com/prepstock/prepstock/pkg/domain/entities"
	"github.com/prepstock/prepstock/pkg/domain/repositories"
)

// InventoryRepository provides in-memory storage of owned inventory items
type InventoryRepository struct {
	items []entities.InventoryItem
	byID  map[entities.ItemID]int
}

// NewInventoryRepository creates a new in-memory inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		byID: make(map[entities.ItemID]int),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// LoadItems loads inventory items into the repository
func (r *InventoryRepository) LoadItems(items []*entities.InventoryItem) error {
	for _, item := range items {
		if _, exists := r.byID[item.ID]; exists {
			return fmt.Errorf("duplicate item id: %s", item.ID)
		}
		r.byID[item.ID] = len(r.items)
		r.items = append(r.items, *item)
	}
	return nil
}

// GetItem returns the item with the given id
func (r *InventoryRepository) GetItem(id entities.ItemID) (*entities.InventoryItem, error) {
	idx, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("item not found: %s", id)
	}
	item := r.items[idx]
	return &item, nil
}

// GetItemsByCategory returns the items of one category in load order
func (r *InventoryRepository) GetItemsByCategory(category entities.Category) ([]*entities.InventoryItem, error) {
	var matches []*entities.InventoryItem
	for i := range r.items {
		if r.items[i].Category == category {
			item := r.items[i]
			matches = append(matches, &item)
		}
	}
	return matches, nil
}

// GetAllItems returns every item in load order
func (r *InventoryRepository) GetAllItems() ([]*entities.InventoryItem, error) {
	all := make([]*entities.InventoryItem, 0, len(r.items))
	for i := range r.items {
		item := r.items[i]
		all = append(all, &item)
	}
	return all, nil
}

// Snapshot returns the items by value, for handing to the adequacy engine
func (r *InventoryRepository) Snapshot() []entities.InventoryItem {
	snapshot := make([]entities.InventoryItem, len(r.items))
	copy(snapshot, r.items)
	return snapshot
}
