package adequacy

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// TargetQuantity converts a recommended-item template and a household into
// the target quantity the household should hold of that item.
//
// The base quantity is scaled by the enabled factors and the final product
// is rounded up to the nearest integer. Rounding is always up: the failure
// mode being guarded against is under-provisioning. A household with no
// members yields a people factor of 0, and a pet-scaling template in a
// petless household yields exactly 0.
func TargetQuantity(
	template entities.RecommendedItemTemplate,
	household entities.HouseholdConfig,
	opts Options,
) decimal.Decimal {
	qty := template.BaseQuantity.Abs()

	if template.ScaleWithPeople {
		people := decimal.NewFromInt(clampNonNegative(household.Adults)).
			Add(decimal.NewFromInt(clampNonNegative(household.Children)).Mul(opts.ChildrenMultiplier))
		qty = qty.Mul(people)
	}
	if template.ScaleWithDays {
		days := clampNonNegative(household.SupplyDurationDays)
		qty = qty.Mul(decimal.NewFromInt(days))
	}
	if template.ScaleWithPets {
		qty = qty.Mul(decimal.NewFromInt(clampNonNegative(household.Pets)))
	}

	qty = qty.Ceil()
	if qty.IsNegative() {
		return decimal.Zero
	}
	return qty
}

// TemplateApplies reports whether a template belongs in the household's
// recommendations at all. Freezer-dependent templates disappear without a
// freezer, and pet-scaling templates disappear from a petless household,
// rather than lingering with a zero target.
func TemplateApplies(template entities.RecommendedItemTemplate, household entities.HouseholdConfig) bool {
	if template.RequiresFreezer && !household.UseFreezer {
		return false
	}
	if template.ScaleWithPets && household.Pets <= 0 {
		return false
	}
	return true
}

func clampNonNegative(n int) int64 {
	if n < 0 {
		return 0
	}
	return int64(n)
}
