package entities

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
)

func TestItemType(t *testing.T) {
	templated := TemplateItemType("water-bottled")
	if templated.IsCustom() {
		t.Error("template item type must not report custom")
	}
	if id, ok := templated.TemplateID(); !ok || id != "water-bottled" {
		t.Errorf("TemplateID() = %s/%v, want water-bottled/true", id, ok)
	}
	if templated.String() != "water-bottled" {
		t.Errorf("String() = %s, want water-bottled", templated)
	}

	custom := CustomItemType()
	if !custom.IsCustom() {
		t.Error("custom item type must report custom")
	}
	if _, ok := custom.TemplateID(); ok {
		t.Error("custom item type must not carry a template id")
	}
	if custom.String() != "custom" {
		t.Errorf("String() = %s, want custom", custom)
	}
}

func TestInventoryItem_Validation(t *testing.T) {
	expiration, err := dateonly.Parse("2027-01-01")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	valid, err := NewInventoryItem(
		"item-1", CategoryWater, TemplateItemType("water-bottled"),
		"Water crate", decimal.NewFromInt(12), UnitLiters,
		&expiration, false, false,
	)
	if err != nil {
		t.Fatalf("Expected valid item creation to succeed: %v", err)
	}
	if valid.ID != "item-1" {
		t.Errorf("Expected item id item-1, got %s", valid.ID)
	}

	testCases := []struct {
		name        string
		id          ItemID
		category    Category
		itemType    ItemType
		itemName    string
		quantity    decimal.Decimal
		unit        Unit
		expectError string
	}{
		{
			"empty id", "", CategoryWater, CustomItemType(), "name",
			decimal.NewFromInt(1), UnitLiters, "item id cannot be empty",
		},
		{
			"invalid category", "i", "garage", CustomItemType(), "name",
			decimal.NewFromInt(1), UnitLiters, "invalid category: garage",
		},
		{
			"empty name", "i", CategoryWater, CustomItemType(), "",
			decimal.NewFromInt(1), UnitLiters, "item name cannot be empty",
		},
		{
			"negative quantity", "i", CategoryWater, CustomItemType(), "name",
			decimal.NewFromInt(-1), UnitLiters, "quantity cannot be negative, got -1",
		},
		{
			"invalid unit", "i", CategoryWater, CustomItemType(), "name",
			decimal.NewFromInt(1), "buckets", "invalid unit: buckets",
		},
		{
			"empty template id", "i", CategoryWater, TemplateItemType(""), "name",
			decimal.NewFromInt(1), UnitLiters, "template id cannot be empty for a template-typed item",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInventoryItem(
				tc.id, tc.category, tc.itemType, tc.itemName,
				tc.quantity, tc.unit, nil, true, false,
			)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestRecommendedItemTemplate_Validation(t *testing.T) {
	base := RecommendedItemTemplate{
		ID:           "water-bottled",
		Category:     CategoryWater,
		Name:         "Drinking water",
		BaseQuantity: decimal.NewFromInt(2),
		Unit:         UnitLiters,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("Expected valid template to pass validation: %v", err)
	}

	testCases := []struct {
		name        string
		mutate      func(*RecommendedItemTemplate)
		expectError string
	}{
		{"empty id", func(tpl *RecommendedItemTemplate) { tpl.ID = "" }, "template id cannot be empty"},
		{"invalid category", func(tpl *RecommendedItemTemplate) { tpl.Category = "garage" }, "invalid category: garage"},
		{"empty name", func(tpl *RecommendedItemTemplate) { tpl.Name = "" }, "template name cannot be empty"},
		{
			"zero base quantity",
			func(tpl *RecommendedItemTemplate) { tpl.BaseQuantity = decimal.Zero },
			"base quantity must be positive, got 0",
		},
		{
			"negative base quantity",
			func(tpl *RecommendedItemTemplate) { tpl.BaseQuantity = decimal.NewFromInt(-2) },
			"base quantity must be positive, got -2",
		},
		{"invalid unit", func(tpl *RecommendedItemTemplate) { tpl.Unit = "buckets" }, "invalid unit: buckets"},
		{
			"negative expiration months",
			func(tpl *RecommendedItemTemplate) { tpl.DefaultExpirationMonths = -1 },
			"default expiration months cannot be negative, got -1",
		},
		{
			"negative calories",
			func(tpl *RecommendedItemTemplate) { tpl.CaloriesPerUnit = decimal.NewFromInt(-100) },
			"calories per unit cannot be negative, got -100",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := base
			tc.mutate(&tpl)
			err := tpl.Validate()
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestEnums(t *testing.T) {
	if !CategoryWater.IsValid() || Category("garage").IsValid() {
		t.Error("category validity misclassified")
	}
	if !UnitLiters.IsValid() || Unit("buckets").IsValid() {
		t.Error("unit validity misclassified")
	}

	statuses := map[ItemStatus]string{
		StatusOK:       "ok",
		StatusWarning:  "warning",
		StatusCritical: "critical",
	}
	for status, want := range statuses {
		if status.String() != want {
			t.Errorf("ItemStatus(%d).String() = %s, want %s", status, status, want)
		}
	}

	if StatusOK.Worse(StatusCritical) != StatusCritical {
		t.Error("Worse() must pick the more severe status")
	}
	if StatusWarning.Worse(StatusOK) != StatusWarning {
		t.Error("Worse() must keep the more severe receiver")
	}
}
