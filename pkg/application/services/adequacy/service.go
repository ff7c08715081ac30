package adequacy

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/application/dto"
	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// Service is the adequacy engine's top-level entry point. It owns no state
// beyond its options and clock; every call recomputes from the snapshots it
// is handed, so re-invoking it on every caller state change is cheap and
// has no observable side effects.
type Service struct {
	clock  dateonly.Clock
	opts   Options
	scorer *Scorer
}

// NewService creates a Service with the given clock and options
func NewService(clock dateonly.Clock, opts Options) *Service {
	return &Service{
		clock:  clock,
		opts:   opts,
		scorer: NewScorer(clock, opts),
	}
}

// NewDefaultService creates a Service on the system clock with default options
func NewDefaultService() *Service {
	return NewService(dateonly.SystemClock(), DefaultOptions())
}

// TargetFor returns the target quantity of one template for the household
func (s *Service) TargetFor(
	template entities.RecommendedItemTemplate,
	household entities.HouseholdConfig,
) decimal.Decimal {
	return TargetQuantity(template, household, s.opts)
}

// ClassifyItem returns the status verdict for one item against its target
func (s *Service) ClassifyItem(item entities.InventoryItem, target decimal.Decimal) entities.ItemStatus {
	return s.scorer.Classifier().Classify(item, target)
}

// MissingForItem returns the single-item shortfall quantity
func (s *Service) MissingForItem(item entities.InventoryItem, target decimal.Decimal) decimal.Decimal {
	return s.scorer.Aggregator().MissingForItem(item, target)
}

// MissingForGroup returns the shortfall across the item's template group
func (s *Service) MissingForGroup(
	item entities.InventoryItem,
	all []entities.InventoryItem,
	target decimal.Decimal,
) decimal.Decimal {
	return s.scorer.Aggregator().MissingForGroup(item, all, target)
}

// ScoreCategory computes the summary for one category
func (s *Service) ScoreCategory(
	category entities.Category,
	items []entities.InventoryItem,
	household entities.HouseholdConfig,
	templates []entities.RecommendedItemTemplate,
	disabledTemplates map[entities.TemplateID]bool,
) dto.CategorySummary {
	return s.scorer.Score(category, items, household, templates, disabledTemplates)
}

// Report computes the whole-household preparedness report: one summary per
// enabled category, an overall percentage weighted by each category's
// needed quantity, and the list of items that need attention because of
// their expiration date.
func (s *Service) Report(
	items []entities.InventoryItem,
	household entities.HouseholdConfig,
	templates []entities.RecommendedItemTemplate,
	disabledTemplates map[entities.TemplateID]bool,
	disabledCategories map[entities.Category]bool,
) dto.PreparednessReport {
	report := dto.PreparednessReport{
		OverallPercentage: hundred,
	}

	overallActual := decimal.Zero
	overallNeeded := decimal.Zero

	for _, category := range entities.AllCategories() {
		if disabledCategories[category] {
			continue
		}
		summary := s.scorer.Score(category, items, household, templates, disabledTemplates)
		report.Categories = append(report.Categories, summary)
		overallActual = overallActual.Add(summary.TotalActual)
		overallNeeded = overallNeeded.Add(summary.TotalNeeded)
	}

	report.OverallPercentage = CompletionPercentage(overallActual, overallNeeded)
	report.OverallStatus = s.scorer.statusForPercentage(report.OverallPercentage)
	report.OverallLabel = report.OverallStatus.String()
	report.ExpiringItems = s.expiringItems(items)
	return report
}

// expiringItems lists expired and soon-expiring items, soonest first
func (s *Service) expiringItems(items []entities.InventoryItem) []dto.ExpiringItem {
	classifier := s.scorer.Classifier()
	today := s.clock.Today()

	var expiring []dto.ExpiringItem
	for _, item := range items {
		state := classifier.ExpiryStateOf(item)
		if state != ExpiryExpired && state != ExpiryExpiringSoon {
			continue
		}
		expiring = append(expiring, dto.ExpiringItem{
			ItemID:         item.ID,
			Name:           item.Name,
			ExpirationDate: *item.ExpirationDate,
			DaysUntil:      dateonly.DaysBetween(today, *item.ExpirationDate),
			Expired:        state == ExpiryExpired,
		})
	}

	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].ExpirationDate.Before(expiring[j].ExpirationDate)
	})
	return expiring
}
