// Package catalog loads recommended-item catalogs and household
// configuration from YAML files.
package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// catalogFile is the YAML shape of a recommendation catalog. Quantities are
// strings so decimal values survive without float round-tripping.
type catalogFile struct {
	Templates []templateEntry `yaml:"templates"`
}

type templateEntry struct {
	ID                      string `yaml:"id"`
	Category                string `yaml:"category"`
	Name                    string `yaml:"name"`
	BaseQuantity            string `yaml:"base_quantity"`
	Unit                    string `yaml:"unit"`
	ScaleWithPeople         bool   `yaml:"scale_with_people"`
	ScaleWithDays           bool   `yaml:"scale_with_days"`
	ScaleWithPets           bool   `yaml:"scale_with_pets"`
	RequiresFreezer         bool   `yaml:"requires_freezer"`
	DefaultExpirationMonths int    `yaml:"default_expiration_months"`
	CaloriesPerUnit         string `yaml:"calories_per_unit"`
	WaterLitersPerUnit      string `yaml:"water_liters_per_unit"`
}

type householdFile struct {
	Adults             int  `yaml:"adults"`
	Children           int  `yaml:"children"`
	Pets               int  `yaml:"pets"`
	SupplyDurationDays int  `yaml:"supply_duration_days"`
	UseFreezer         bool `yaml:"use_freezer"`
}

// LoadTemplates loads and validates a recommendation catalog from a YAML file
func LoadTemplates(filename string) ([]*entities.RecommendedItemTemplate, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filename, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("catalog %s contains no templates", filename)
	}

	templates := make([]*entities.RecommendedItemTemplate, 0, len(file.Templates))
	for i, entry := range file.Templates {
		template, err := entry.toTemplate()
		if err != nil {
			return nil, fmt.Errorf("catalog template %d (%s): %w", i+1, entry.ID, err)
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// LoadHousehold loads and validates a household configuration from a YAML file
func LoadHousehold(filename string) (*entities.HouseholdConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open household file %s: %w", filename, err)
	}

	var file householdFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse household YAML: %w", err)
	}

	return entities.NewHouseholdConfig(
		file.Adults, file.Children, file.Pets,
		file.SupplyDurationDays, file.UseFreezer,
	)
}

func (e templateEntry) toTemplate() (*entities.RecommendedItemTemplate, error) {
	baseQuantity, err := parseQuantity(e.BaseQuantity, "base_quantity")
	if err != nil {
		return nil, err
	}
	calories, err := parseQuantity(e.CaloriesPerUnit, "calories_per_unit")
	if err != nil {
		return nil, err
	}
	water, err := parseQuantity(e.WaterLitersPerUnit, "water_liters_per_unit")
	if err != nil {
		return nil, err
	}

	template := &entities.RecommendedItemTemplate{
		ID:                      entities.TemplateID(e.ID),
		Category:                entities.Category(e.Category),
		Name:                    e.Name,
		BaseQuantity:            baseQuantity,
		Unit:                    entities.Unit(e.Unit),
		ScaleWithPeople:         e.ScaleWithPeople,
		ScaleWithDays:           e.ScaleWithDays,
		ScaleWithPets:           e.ScaleWithPets,
		RequiresFreezer:         e.RequiresFreezer,
		DefaultExpirationMonths: e.DefaultExpirationMonths,
		CaloriesPerUnit:         calories,
		WaterLitersPerUnit:      water,
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}
	return template, nil
}

func parseQuantity(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %s", field, s)
	}
	return value, nil
}
