// Package testing provides shared builders for adequacy and repository tests.
package testing

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// MustCreateItem is a helper for tests - panics on validation error
func MustCreateItem(
	id string,
	category entities.Category,
	itemType entities.ItemType,
	name string,
	quantity string,
	unit entities.Unit,
	expirationDate *dateonly.Date,
	neverExpires bool,
	markedAsEnough bool,
) *entities.InventoryItem {
	item, err := entities.NewInventoryItem(
		entities.ItemID(id),
		category,
		itemType,
		name,
		decimal.RequireFromString(quantity),
		unit,
		expirationDate,
		neverExpires,
		markedAsEnough,
	)
	if err != nil {
		panic(err)
	}
	return item
}

// MustCreateHousehold is a helper for tests - panics on validation error
func MustCreateHousehold(adults, children, pets, days int, useFreezer bool) entities.HouseholdConfig {
	household, err := entities.NewHouseholdConfig(adults, children, pets, days, useFreezer)
	if err != nil {
		panic(err)
	}
	return *household
}

// DateOf is a helper returning a pointer to a parsed date - panics on error
func DateOf(s string) *dateonly.Date {
	d, err := dateonly.Parse(s)
	if err != nil {
		panic(err)
	}
	return &d
}

// BuildSampleCatalog returns a small recommendation catalog spanning
// several categories, scaling rules and exclusion rules
func BuildSampleCatalog() []entities.RecommendedItemTemplate {
	return []entities.RecommendedItemTemplate{
		{
			ID:                 "water-bottled",
			Category:           entities.CategoryWater,
			Name:               "Drinking water",
			BaseQuantity:       decimal.NewFromInt(2),
			Unit:               entities.UnitLiters,
			ScaleWithPeople:    true,
			ScaleWithDays:      true,
			WaterLitersPerUnit: decimal.NewFromInt(1),
		},
		{
			ID:                      "food-canned",
			Category:                entities.CategoryFood,
			Name:                    "Canned meals",
			BaseQuantity:            decimal.NewFromInt(1),
			Unit:                    entities.UnitCans,
			ScaleWithPeople:         true,
			ScaleWithDays:           true,
			DefaultExpirationMonths: 24,
			CaloriesPerUnit:         decimal.NewFromInt(400),
		},
		{
			ID:              "food-frozen",
			Category:        entities.CategoryFood,
			Name:            "Frozen vegetables",
			BaseQuantity:    decimal.NewFromFloat(0.5),
			Unit:            entities.UnitKilograms,
			ScaleWithPeople: true,
			ScaleWithDays:   true,
			RequiresFreezer: true,
			CaloriesPerUnit: decimal.NewFromInt(300),
		},
		{
			ID:           "tools-flashlight",
			Category:     entities.CategoryTools,
			Name:         "Flashlight",
			BaseQuantity: decimal.NewFromInt(1),
			Unit:         entities.UnitPieces,
		},
		{
			ID:            "pets-food",
			Category:      entities.CategoryPets,
			Name:          "Pet food",
			BaseQuantity:  decimal.NewFromFloat(0.3),
			Unit:          entities.UnitKilograms,
			ScaleWithDays: true,
			ScaleWithPets: true,
		},
	}
}

// BuildSampleInventory returns items matched to BuildSampleCatalog plus a
// custom entry, all far from expiring relative to the given day
func BuildSampleInventory() []entities.InventoryItem {
	return []entities.InventoryItem{
		*MustCreateItem("i-water-1", entities.CategoryWater,
			entities.TemplateItemType("water-bottled"), "Water crate",
			"24", entities.UnitLiters, nil, true, false),
		*MustCreateItem("i-food-1", entities.CategoryFood,
			entities.TemplateItemType("food-canned"), "Ravioli cans",
			"10", entities.UnitCans, DateOf("2028-01-01"), false, false),
		*MustCreateItem("i-tools-1", entities.CategoryTools,
			entities.TemplateItemType("tools-flashlight"), "Headlamp",
			"1", entities.UnitPieces, nil, true, false),
		*MustCreateItem("i-custom-1", entities.CategoryTools,
			entities.CustomItemType(), "Duct tape",
			"2", entities.UnitPieces, nil, true, false),
	}
}
