package entities

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
)

// ItemID is the opaque identifier of an owned inventory item
type ItemID string

// ItemType says what a stocked item is: an instance of a catalog template,
// or a free-form custom entry. Custom items never count toward a template
// and never group with each other.
type ItemType struct {
	templateID TemplateID
	custom     bool
}

// TemplateItemType creates the ItemType for an item stocked against a template
func TemplateItemType(id TemplateID) ItemType {
	return ItemType{templateID: id}
}

// CustomItemType creates the ItemType for a free-form item
func CustomItemType() ItemType {
	return ItemType{custom: true}
}

// TemplateID returns the template the item is stocked against.
// The second result is false for custom items.
func (t ItemType) TemplateID() (TemplateID, bool) {
	if t.custom {
		return "", false
	}
	return t.templateID, true
}

// IsCustom reports whether the item is a free-form entry
func (t ItemType) IsCustom() bool {
	return t.custom
}

// String method for ItemType
func (t ItemType) String() string {
	if t.custom {
		return "custom"
	}
	return string(t.templateID)
}

// InventoryItem is one owned supply entry. Items are created and mutated by
// the storage layer; the adequacy calculations only ever read them.
type InventoryItem struct {
	ID       ItemID
	Category Category
	Type     ItemType
	Name     string
	Quantity decimal.Decimal
	Unit     Unit

	// ExpirationDate is meaningful only when NeverExpires is false.
	// When both are set, NeverExpires wins.
	ExpirationDate *dateonly.Date
	NeverExpires   bool

	// MarkedAsEnough is the manual "I have enough of this" override. It
	// silences quantity checks but not expiration checks.
	MarkedAsEnough bool
}

// NewInventoryItem creates a validated InventoryItem
func NewInventoryItem(
	id ItemID,
	category Category,
	itemType ItemType,
	name string,
	quantity decimal.Decimal,
	unit Unit,
	expirationDate *dateonly.Date,
	neverExpires bool,
	markedAsEnough bool,
) (*InventoryItem, error) {
	if id == "" {
		return nil, fmt.Errorf("item id cannot be empty")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if name == "" {
		return nil, fmt.Errorf("item name cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, fmt.Errorf("quantity cannot be negative, got %s", quantity)
	}
	if !unit.IsValid() {
		return nil, fmt.Errorf("invalid unit: %s", unit)
	}
	if tid, ok := itemType.TemplateID(); ok && tid == "" {
		return nil, fmt.Errorf("template id cannot be empty for a template-typed item")
	}
	if expirationDate != nil && expirationDate.IsZero() {
		return nil, fmt.Errorf("expiration date cannot be the zero date")
	}

	return &InventoryItem{
		ID:             id,
		Category:       category,
		Type:           itemType,
		Name:           name,
		Quantity:       quantity,
		Unit:           unit,
		ExpirationDate: expirationDate,
		NeverExpires:   neverExpires,
		MarkedAsEnough: markedAsEnough,
	}, nil
}
