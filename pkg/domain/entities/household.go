package entities

import "fmt"

// HouseholdConfig describes the household a supply plan is computed for.
// It is passed by value into every calculation and never mutated.
type HouseholdConfig struct {
	Adults             int
	Children           int
	Pets               int
	SupplyDurationDays int
	UseFreezer         bool
}

// NewHouseholdConfig creates a validated HouseholdConfig
func NewHouseholdConfig(adults, children, pets, supplyDurationDays int, useFreezer bool) (*HouseholdConfig, error) {
	if adults < 0 {
		return nil, fmt.Errorf("adults cannot be negative, got %d", adults)
	}
	if children < 0 {
		return nil, fmt.Errorf("children cannot be negative, got %d", children)
	}
	if pets < 0 {
		return nil, fmt.Errorf("pets cannot be negative, got %d", pets)
	}
	if supplyDurationDays <= 0 {
		return nil, fmt.Errorf("supply duration must be positive, got %d", supplyDurationDays)
	}

	return &HouseholdConfig{
		Adults:             adults,
		Children:           children,
		Pets:               pets,
		SupplyDurationDays: supplyDurationDays,
		UseFreezer:         useFreezer,
	}, nil
}

// PeopleCount returns the total number of household members
func (h HouseholdConfig) PeopleCount() int {
	return h.Adults + h.Children
}
