package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TemplateID is the opaque identifier of a recommended-item template
type TemplateID string

// RecommendedItemTemplate is a catalog definition of a recommended supply
// item, independent of any specific owned item. Templates are immutable
// reference data loaded from a built-in or user-imported catalog.
type RecommendedItemTemplate struct {
	ID           TemplateID
	Category     Category
	Name         string
	BaseQuantity decimal.Decimal
	Unit         Unit

	ScaleWithPeople bool
	ScaleWithDays   bool
	ScaleWithPets   bool
	RequiresFreezer bool

	// DefaultExpirationMonths suggests a shelf life for items created from
	// this template. Zero means no suggestion.
	DefaultExpirationMonths int

	// Derived resource factors, zero when the template contributes nothing
	// to the respective total.
	CaloriesPerUnit    decimal.Decimal
	WaterLitersPerUnit decimal.Decimal
}

// Validate checks the template invariants
func (t RecommendedItemTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id cannot be empty")
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("invalid category: %s", t.Category)
	}
	if t.Name == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if !t.BaseQuantity.IsPositive() {
		return fmt.Errorf("base quantity must be positive, got %s", t.BaseQuantity)
	}
	if !t.Unit.IsValid() {
		return fmt.Errorf("invalid unit: %s", t.Unit)
	}
	if t.DefaultExpirationMonths < 0 {
		return fmt.Errorf("default expiration months cannot be negative, got %d", t.DefaultExpirationMonths)
	}
	if t.CaloriesPerUnit.IsNegative() {
		return fmt.Errorf("calories per unit cannot be negative, got %s", t.CaloriesPerUnit)
	}
	if t.WaterLitersPerUnit.IsNegative() {
		return fmt.Errorf("water liters per unit cannot be negative, got %s", t.WaterLitersPerUnit)
	}
	return nil
}
