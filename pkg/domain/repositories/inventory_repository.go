package repositories

import "github.com/prepstock/prepstock/pkg/domain/entities"

// InventoryRepository provides access to owned inventory items
type InventoryRepository interface {
	GetItem(id entities.ItemID) (*entities.InventoryItem, error)
	GetItemsByCategory(category entities.Category) ([]*entities.InventoryItem, error)
	GetAllItems() ([]*entities.InventoryItem, error)
	LoadItems(items []*entities.InventoryItem) error
}
