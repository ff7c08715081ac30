package adequacy

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// GroupItems partitions items into groups that represent the same
// recommended template. Items carrying a template id group by that id;
// custom items never group, each forms a singleton. Groups preserve first
// appearance order and items keep their input order within a group.
func GroupItems(items []entities.InventoryItem) [][]entities.InventoryItem {
	var groups [][]entities.InventoryItem
	indexByTemplate := make(map[entities.TemplateID]int)

	for _, item := range items {
		tid, ok := item.Type.TemplateID()
		if !ok {
			groups = append(groups, []entities.InventoryItem{item})
			continue
		}
		if idx, seen := indexByTemplate[tid]; seen {
			groups[idx] = append(groups[idx], item)
			continue
		}
		indexByTemplate[tid] = len(groups)
		groups = append(groups, []entities.InventoryItem{item})
	}

	return groups
}

// ItemsOfTemplate returns the items stocked against the given template,
// in input order
func ItemsOfTemplate(items []entities.InventoryItem, id entities.TemplateID) []entities.InventoryItem {
	var group []entities.InventoryItem
	for _, item := range items {
		if tid, ok := item.Type.TemplateID(); ok && tid == id {
			group = append(group, item)
		}
	}
	return group
}

// Aggregator computes outstanding quantities for single items and for
// cross-item template groups.
type Aggregator struct {
	classifier *Classifier
}

// NewAggregator creates an Aggregator sharing the classifier's expiration view
func NewAggregator(classifier *Classifier) *Aggregator {
	return &Aggregator{classifier: classifier}
}

// MissingForItem returns the quantity still needed to bring a single item
// up to its target. It is zero unless the item's status is a quantity
// problem: expiration issues are surfaced separately and never counted as
// quantity shortage, and a manual override silences the shortfall.
// The result is never negative and never exceeds the target.
func (a *Aggregator) MissingForItem(item entities.InventoryItem, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	if item.MarkedAsEnough {
		return decimal.Zero
	}
	switch a.classifier.ExpiryStateOf(item) {
	case ExpiryExpired, ExpiryExpiringSoon:
		return decimal.Zero
	}
	if a.classifier.Classify(item, target) == entities.StatusOK {
		return decimal.Zero
	}

	missing := target.Sub(item.Quantity.Abs())
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// MissingForGroup returns the quantity still needed across every item that
// represents the same template as item. Quantities of items marked as
// enough are excluded from the sum. If any group member is expired or
// expiring soon the group-level missing amount is zero, so expiration
// issues are not double-counted as quantity shortage. An empty group falls
// back to the single-item calculation.
func (a *Aggregator) MissingForGroup(
	item entities.InventoryItem,
	all []entities.InventoryItem,
	target decimal.Decimal,
) decimal.Decimal {
	var group []entities.InventoryItem
	if tid, ok := item.Type.TemplateID(); ok {
		group = ItemsOfTemplate(all, tid)
	}
	if len(group) == 0 {
		return a.MissingForItem(item, target)
	}
	if !target.IsPositive() {
		return decimal.Zero
	}

	actual := decimal.Zero
	for _, member := range group {
		switch a.classifier.ExpiryStateOf(member) {
		case ExpiryExpired, ExpiryExpiringSoon:
			return decimal.Zero
		}
		if member.MarkedAsEnough {
			continue
		}
		actual = actual.Add(member.Quantity.Abs())
	}

	missing := target.Sub(actual)
	if missing.IsNegative() {
		return decimal.Zero
	}
	return missing
}

// MissingForTemplate returns the outstanding amount for a template given
// the full item collection. A template with no matching items is missing
// its entire target.
func (a *Aggregator) MissingForTemplate(
	id entities.TemplateID,
	items []entities.InventoryItem,
	target decimal.Decimal,
) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	group := ItemsOfTemplate(items, id)
	if len(group) == 0 {
		return target
	}
	return a.MissingForGroup(group[0], items, target)
}
