package adequacy

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/application/dto"
	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

var hundred = decimal.NewFromInt(100)

// Scorer aggregates the items and templates of one category into a
// completion percentage and a category-level verdict.
type Scorer struct {
	opts       Options
	classifier *Classifier
	aggregator *Aggregator
}

// NewScorer creates a Scorer reading "today" from the given clock
func NewScorer(clock dateonly.Clock, opts Options) *Scorer {
	classifier := NewClassifier(clock, opts)
	return &Scorer{
		opts:       opts,
		classifier: classifier,
		aggregator: NewAggregator(classifier),
	}
}

// Classifier exposes the scorer's item classifier
func (s *Scorer) Classifier() *Classifier {
	return s.classifier
}

// Aggregator exposes the scorer's shortage aggregator
func (s *Scorer) Aggregator() *Aggregator {
	return s.aggregator
}

// Score computes the category summary for one category.
//
// Every applicable template contributes its target to the needed total and
// its matched group's held quantity to the actual total; a template with no
// matching items contributes zero actual, which is how a missing item
// surfaces as a shortfall. A category with nothing required is fully
// satisfied: 100 percent and ok, never a division by zero.
func (s *Scorer) Score(
	category entities.Category,
	items []entities.InventoryItem,
	household entities.HouseholdConfig,
	templates []entities.RecommendedItemTemplate,
	disabledTemplates map[entities.TemplateID]bool,
) dto.CategorySummary {
	summary := dto.CategorySummary{
		Category:             category,
		CompletionPercentage: hundred,
		TotalActual:          decimal.Zero,
		TotalNeeded:          decimal.Zero,
		TotalCalories:        decimal.Zero,
		TotalWaterLiters:     decimal.Zero,
	}

	for _, template := range templates {
		if template.Category != category {
			continue
		}
		if disabledTemplates[template.ID] {
			continue
		}
		if !TemplateApplies(template, household) {
			continue
		}

		target := TargetQuantity(template, household, s.opts)
		actual := s.heldQuantity(template.ID, items, target)

		summary.TotalActual = summary.TotalActual.Add(actual)
		summary.TotalNeeded = summary.TotalNeeded.Add(target)
		summary.TotalCalories = summary.TotalCalories.Add(actual.Mul(template.CaloriesPerUnit))
		summary.TotalWaterLiters = summary.TotalWaterLiters.Add(actual.Mul(template.WaterLitersPerUnit))

		// A group lifted to the target by a manual "enough" mark counts as
		// covered and must not reappear on the shopping list.
		if actual.GreaterThanOrEqual(target) {
			continue
		}
		missing := s.aggregator.MissingForTemplate(template.ID, items, target)
		if missing.IsPositive() {
			summary.Shortages = append(summary.Shortages, dto.ShortageLine{
				TemplateID: template.ID,
				Name:       template.Name,
				Unit:       template.Unit,
				Missing:    missing,
			})
		}
	}

	summary.CompletionPercentage = CompletionPercentage(summary.TotalActual, summary.TotalNeeded)
	summary.Status = s.statusForPercentage(summary.CompletionPercentage)
	summary.StatusLabel = summary.Status.String()
	return summary
}

// heldQuantity sums what the household actually holds against a template.
// A manual "enough" mark on any group member lifts the held amount to at
// least the target, so the override is reflected in the percentage too.
func (s *Scorer) heldQuantity(
	id entities.TemplateID,
	items []entities.InventoryItem,
	target decimal.Decimal,
) decimal.Decimal {
	actual := decimal.Zero
	markedEnough := false
	for _, item := range ItemsOfTemplate(items, id) {
		actual = actual.Add(item.Quantity.Abs())
		if item.MarkedAsEnough {
			markedEnough = true
		}
	}
	if markedEnough && actual.LessThan(target) {
		return target
	}
	return actual
}

// CompletionPercentage returns actual/needed as a percentage clamped to
// [0, 100]. Nothing needed means fully satisfied.
func CompletionPercentage(actual, needed decimal.Decimal) decimal.Decimal {
	if !needed.IsPositive() {
		return hundred
	}
	pct := actual.Abs().Div(needed).Mul(hundred)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

func (s *Scorer) statusForPercentage(pct decimal.Decimal) entities.ItemStatus {
	switch {
	case pct.LessThan(s.opts.CategoryCriticalBelowPercent):
		return entities.StatusCritical
	case pct.LessThan(s.opts.CategoryWarningBelowPercent):
		return entities.StatusWarning
	default:
		return entities.StatusOK
	}
}
