package adequacy

import (
	"testing"

	"github.com/shopspring/decimal"

	testhelpers "github.com/prepstock/prepstock/pkg/application/services/testing"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

func TestTargetQuantity_Scaling(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name      string
		template  entities.RecommendedItemTemplate
		household entities.HouseholdConfig
		opts      Options
		want      string
	}{
		{
			name: "people and days with default children multiplier",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:    decimal.NewFromInt(3),
				ScaleWithPeople: true,
				ScaleWithDays:   true,
			},
			household: testhelpers.MustCreateHousehold(2, 1, 0, 7, false),
			opts:      opts,
			// 3 * (2 + 1*0.75) * 7 = 57.75, rounded up
			want: "58",
		},
		{
			name: "children multiplier override",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:    decimal.NewFromInt(3),
				ScaleWithPeople: true,
				ScaleWithDays:   true,
			},
			household: testhelpers.MustCreateHousehold(2, 1, 0, 7, false),
			opts: func() Options {
				o := DefaultOptions()
				o.ChildrenMultiplier = decimal.NewFromFloat(0.5)
				return o
			}(),
			// 3 * 2.5 * 7 = 52.5, rounded up
			want: "53",
		},
		{
			name: "flat unscaled recommendation",
			template: entities.RecommendedItemTemplate{
				BaseQuantity: decimal.NewFromInt(1),
			},
			household: testhelpers.MustCreateHousehold(4, 2, 1, 14, true),
			opts:      opts,
			want:      "1",
		},
		{
			name: "empty household needs nothing",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:    decimal.NewFromInt(2),
				ScaleWithPeople: true,
				ScaleWithDays:   true,
			},
			household: testhelpers.MustCreateHousehold(0, 0, 0, 7, false),
			opts:      opts,
			want:      "0",
		},
		{
			name: "pet scaling with zero pets yields zero",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:  decimal.NewFromInt(5),
				ScaleWithDays: true,
				ScaleWithPets: true,
			},
			household: testhelpers.MustCreateHousehold(2, 0, 0, 7, false),
			opts:      opts,
			want:      "0",
		},
		{
			name: "pet scaling multiplies by pet count",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:  decimal.NewFromFloat(0.3),
				ScaleWithDays: true,
				ScaleWithPets: true,
			},
			household: testhelpers.MustCreateHousehold(2, 0, 2, 7, false),
			opts:      opts,
			// 0.3 * 7 * 2 = 4.2, rounded up
			want: "5",
		},
		{
			name: "fractional product always rounds up",
			template: entities.RecommendedItemTemplate{
				BaseQuantity:    decimal.NewFromFloat(0.1),
				ScaleWithPeople: true,
			},
			household: testhelpers.MustCreateHousehold(1, 0, 0, 1, false),
			opts:      opts,
			want:      "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetQuantity(tt.template, tt.household, tt.opts)
			if got.String() != tt.want {
				t.Errorf("TargetQuantity() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTargetQuantity_DegenerateInputsStayFinite(t *testing.T) {
	opts := DefaultOptions()

	// A negative base quantity is a precondition violation upstream; the
	// calculator must still produce a finite non-negative target.
	template := entities.RecommendedItemTemplate{
		BaseQuantity:    decimal.NewFromInt(-3),
		ScaleWithPeople: true,
	}
	household := entities.HouseholdConfig{Adults: 2, SupplyDurationDays: 7}

	got := TargetQuantity(template, household, opts)
	if got.IsNegative() {
		t.Errorf("TargetQuantity() = %s, want non-negative", got)
	}

	// Negative member counts are clamped to zero rather than propagated.
	badHousehold := entities.HouseholdConfig{Adults: -5, Children: -1, SupplyDurationDays: 7}
	got = TargetQuantity(template, badHousehold, opts)
	if !got.IsZero() {
		t.Errorf("TargetQuantity() with clamped members = %s, want 0", got)
	}
}

func TestTemplateApplies(t *testing.T) {
	tests := []struct {
		name      string
		template  entities.RecommendedItemTemplate
		household entities.HouseholdConfig
		want      bool
	}{
		{
			name:      "plain template always applies",
			template:  entities.RecommendedItemTemplate{BaseQuantity: decimal.NewFromInt(1)},
			household: testhelpers.MustCreateHousehold(2, 0, 0, 7, false),
			want:      true,
		},
		{
			name:      "freezer template excluded without freezer",
			template:  entities.RecommendedItemTemplate{RequiresFreezer: true},
			household: testhelpers.MustCreateHousehold(2, 0, 0, 7, false),
			want:      false,
		},
		{
			name:      "freezer template applies with freezer",
			template:  entities.RecommendedItemTemplate{RequiresFreezer: true},
			household: testhelpers.MustCreateHousehold(2, 0, 0, 7, true),
			want:      true,
		},
		{
			name:      "pet template excluded for petless household",
			template:  entities.RecommendedItemTemplate{ScaleWithPets: true},
			household: testhelpers.MustCreateHousehold(2, 0, 0, 7, false),
			want:      false,
		},
		{
			name:      "pet template applies with pets",
			template:  entities.RecommendedItemTemplate{ScaleWithPets: true},
			household: testhelpers.MustCreateHousehold(2, 0, 1, 7, false),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TemplateApplies(tt.template, tt.household); got != tt.want {
				t.Errorf("TemplateApplies() = %v, want %v", got, tt.want)
			}
		})
	}
}
