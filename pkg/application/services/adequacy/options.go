// Package adequacy implements the supply adequacy engine: the pure
// computation that turns inventory items, a household configuration and a
// recommended-item catalog into per-item and per-category sufficiency
// verdicts and shortfall quantities.
//
// Every function here is a total function of its explicit inputs. The only
// impure input, "today", is isolated behind dateonly.Clock so it can be
// substituted in tests. Inputs are never mutated and no result is ever
// NaN, infinite, or outside its defined range.
package adequacy

import "github.com/shopspring/decimal"

// Options holds the tunable constants of the adequacy calculations.
// Passing them explicitly keeps every entry point a pure function of its
// arguments, so non-default thresholds are trivially testable.
type Options struct {
	// ChildrenMultiplier weights a child against an adult when scaling
	// recommended quantities by household members.
	ChildrenMultiplier decimal.Decimal

	// ExpiringSoonThresholdDays is how many days before expiration an item
	// starts reading as a warning.
	ExpiringSoonThresholdDays int

	// LowQuantityWarningRatio is the fraction of the target quantity below
	// which an item reads as a warning rather than ok.
	LowQuantityWarningRatio decimal.Decimal

	// CategoryWarningBelowPercent and CategoryCriticalBelowPercent derive a
	// category verdict from its completion percentage.
	CategoryWarningBelowPercent  decimal.Decimal
	CategoryCriticalBelowPercent decimal.Decimal
}

// DefaultOptions returns the calculation constants used by the app
func DefaultOptions() Options {
	return Options{
		ChildrenMultiplier:           decimal.NewFromFloat(0.75),
		ExpiringSoonThresholdDays:    30,
		LowQuantityWarningRatio:      decimal.NewFromFloat(0.5),
		CategoryWarningBelowPercent:  decimal.NewFromInt(100),
		CategoryCriticalBelowPercent: decimal.NewFromInt(50),
	}
}
