package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
)

// Loader handles loading inventory data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var inventoryHeader = []string{
	"id", "category", "item_type", "name", "quantity", "unit",
	"expiration_date", "never_expires", "marked_as_enough",
}

// LoadInventory loads inventory items from a CSV file.
// The item_type column holds a template id, or the literal "custom" for
// free-form items. The expiration_date column may be empty.
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryItem, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory CSV: %w", err)
	}

	// A header-only file is a valid empty inventory.
	if len(records) < 1 {
		return nil, fmt.Errorf("inventory CSV must have a header row")
	}

	if !validateHeader(records[0], inventoryHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", inventoryHeader, records[0])
	}

	var items []*entities.InventoryItem
	for i, record := range records[1:] {
		if len(record) != len(inventoryHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(inventoryHeader), len(record))
		}

		item, err := parseItem(record)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}

		items = append(items, item)
	}

	return items, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseItem(record []string) (*entities.InventoryItem, error) {
	id := entities.ItemID(record[0])
	category := entities.Category(record[1])
	itemType := parseItemType(record[2])
	name := record[3]

	quantity, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("invalid quantity: %s", record[4])
	}

	unit := entities.Unit(record[5])

	var expirationDate *dateonly.Date
	if record[6] != "" {
		parsed, err := dateonly.Parse(record[6])
		if err != nil {
			return nil, fmt.Errorf("invalid expiration_date: %w", err)
		}
		expirationDate = &parsed
	}

	neverExpires, err := parseBool(record[7], "never_expires")
	if err != nil {
		return nil, err
	}
	markedAsEnough, err := parseBool(record[8], "marked_as_enough")
	if err != nil {
		return nil, err
	}

	return entities.NewInventoryItem(
		id, category, itemType, name, quantity, unit,
		expirationDate, neverExpires, markedAsEnough,
	)
}

func parseItemType(s string) entities.ItemType {
	if strings.EqualFold(strings.TrimSpace(s), "custom") {
		return entities.CustomItemType()
	}
	return entities.TemplateItemType(entities.TemplateID(s))
}

func parseBool(s, column string) (bool, error) {
	if strings.TrimSpace(s) == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %s (expected true or false)", column, s)
	}
	return value, nil
}
