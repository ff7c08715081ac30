package dto

import (
	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// ShortageLine reports the outstanding amount for one recommended template
type ShortageLine struct {
	TemplateID entities.TemplateID `json:"template_id"`
	Name       string              `json:"name"`
	Unit       entities.Unit       `json:"unit"`
	Missing    decimal.Decimal     `json:"missing"`
}

// CategorySummary is the derived adequacy verdict for one supply category.
// It is recomputed on demand and never persisted.
type CategorySummary struct {
	Category             entities.Category   `json:"category"`
	Status               entities.ItemStatus `json:"-"`
	StatusLabel          string              `json:"status"`
	CompletionPercentage decimal.Decimal     `json:"completion_percentage"`
	TotalActual          decimal.Decimal     `json:"total_actual"`
	TotalNeeded          decimal.Decimal     `json:"total_needed"`
	TotalCalories        decimal.Decimal     `json:"total_calories"`
	TotalWaterLiters     decimal.Decimal     `json:"total_water_liters"`
	Shortages            []ShortageLine      `json:"shortages"`
}

// ExpiringItem is one inventory entry that needs attention because it has
// expired or will expire within the configured threshold
type ExpiringItem struct {
	ItemID         entities.ItemID `json:"item_id"`
	Name           string          `json:"name"`
	ExpirationDate dateonly.Date   `json:"expiration_date"`
	DaysUntil      int             `json:"days_until"`
	Expired        bool            `json:"expired"`
}

// PreparednessReport is the whole-household output of one adequacy pass
type PreparednessReport struct {
	Categories        []CategorySummary   `json:"categories"`
	OverallPercentage decimal.Decimal     `json:"overall_percentage"`
	OverallStatus     entities.ItemStatus `json:"-"`
	OverallLabel      string              `json:"overall_status"`
	ExpiringItems     []ExpiringItem      `json:"expiring_items"`
}
