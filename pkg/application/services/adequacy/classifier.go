package adequacy

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// ExpiryState describes where an item stands relative to its expiration date
type ExpiryState int

const (
	// ExpiryNone means the item never expires or has no recorded date
	ExpiryNone ExpiryState = iota
	ExpiryFresh
	ExpiryExpiringSoon
	ExpiryExpired
)

// String method for ExpiryState enum
func (e ExpiryState) String() string {
	switch e {
	case ExpiryNone:
		return "none"
	case ExpiryFresh:
		return "fresh"
	case ExpiryExpiringSoon:
		return "expiring-soon"
	case ExpiryExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Classifier turns one item's quantity, target quantity, expiration data
// and manual override into a three-state verdict.
type Classifier struct {
	clock dateonly.Clock
	opts  Options
}

// NewClassifier creates a Classifier reading "today" from the given clock
func NewClassifier(clock dateonly.Clock, opts Options) *Classifier {
	return &Classifier{clock: clock, opts: opts}
}

// ExpiryStateOf evaluates only the expiration signal of an item.
// NeverExpires wins over a recorded expiration date.
func (c *Classifier) ExpiryStateOf(item entities.InventoryItem) ExpiryState {
	if item.NeverExpires || item.ExpirationDate == nil {
		return ExpiryNone
	}
	daysUntil := dateonly.DaysBetween(c.clock.Today(), *item.ExpirationDate)
	switch {
	case daysUntil < 0:
		return ExpiryExpired
	case daysUntil <= c.opts.ExpiringSoonThresholdDays:
		return ExpiryExpiringSoon
	default:
		return ExpiryFresh
	}
}

// Classify produces the item's status. Precedence, first match wins:
//
//  1. already expired               -> critical
//  2. expiring within the threshold -> warning
//  3. marked as enough              -> ok
//  4. quantity is zero              -> critical
//  5. quantity below ratio * target -> warning
//  6. otherwise                     -> ok
//
// Expiration dominates everything else: a technically sufficient quantity
// of an expired item is still a supply gap, and the manual override is
// meant to silence quantity anxiety, not expiration risk.
func (c *Classifier) Classify(item entities.InventoryItem, target decimal.Decimal) entities.ItemStatus {
	switch c.ExpiryStateOf(item) {
	case ExpiryExpired:
		return entities.StatusCritical
	case ExpiryExpiringSoon:
		return entities.StatusWarning
	}

	if item.MarkedAsEnough {
		return entities.StatusOK
	}

	quantity := item.Quantity.Abs()
	if quantity.IsZero() {
		return entities.StatusCritical
	}
	if target.IsPositive() && quantity.LessThan(target.Mul(c.opts.LowQuantityWarningRatio)) {
		return entities.StatusWarning
	}
	return entities.StatusOK
}
