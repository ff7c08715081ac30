package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prepstock/prepstock/pkg/application/services/adequacy"
	"github.com/prepstock/prepstock/pkg/domain/dateonly"
	"github.com/prepstock/prepstock/pkg/domain/entities"
	"github.com/prepstock/prepstock/pkg/infrastructure/catalog"
	"github.com/prepstock/prepstock/pkg/infrastructure/repositories/csv"
	"github.com/prepstock/prepstock/pkg/infrastructure/repositories/memory"
	"github.com/prepstock/prepstock/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	InventoryFile      string
	CatalogFile        string
	HouseholdFile      string
	Format             string
	DisabledTemplates  string
	DisabledCategories string
	ExpiringSoonDays   int
	Verbose            bool
	Help               bool
}

// ReportCommand computes and renders a preparedness report
type ReportCommand struct {
	config Config
}

// NewReportCommand creates a new report command with the given configuration
func NewReportCommand(config Config) *ReportCommand {
	return &ReportCommand{config: config}
}

// Execute runs the report command
func (c *ReportCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		fmt.Println("📂 Loading data...")
	}

	templates, err := catalog.LoadTemplates(c.config.CatalogFile)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	household, err := catalog.LoadHousehold(c.config.HouseholdFile)
	if err != nil {
		return fmt.Errorf("error loading household: %w", err)
	}

	items, err := csv.NewLoader().LoadInventory(c.config.InventoryFile)
	if err != nil {
		return fmt.Errorf("error loading inventory: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded successfully:\n")
		fmt.Printf("  Templates: %d\n", len(templates))
		fmt.Printf("  Items: %d\n", len(items))
		fmt.Println()
	}

	templateRepo := memory.NewTemplateRepository()
	if err := templateRepo.LoadTemplates(templates); err != nil {
		return fmt.Errorf("failed to load templates into repository: %w", err)
	}

	inventoryRepo := memory.NewInventoryRepository()
	if err := inventoryRepo.LoadItems(items); err != nil {
		return fmt.Errorf("failed to load items into repository: %w", err)
	}

	opts := adequacy.DefaultOptions()
	if c.config.ExpiringSoonDays > 0 {
		opts.ExpiringSoonThresholdDays = c.config.ExpiringSoonDays
	}

	allTemplates, err := templateRepo.GetAllTemplates()
	if err != nil {
		return fmt.Errorf("failed to read templates: %w", err)
	}
	catalogSnapshot := make([]entities.RecommendedItemTemplate, 0, len(allTemplates))
	for _, template := range allTemplates {
		catalogSnapshot = append(catalogSnapshot, *template)
	}

	service := adequacy.NewService(dateonly.SystemClock(), opts)
	report := service.Report(
		inventoryRepo.Snapshot(),
		*household,
		catalogSnapshot,
		c.parseDisabledTemplates(),
		c.parseDisabledCategories(),
	)

	return output.Generate(os.Stdout, &report, output.Config{
		Format:  c.config.Format,
		Verbose: c.config.Verbose,
	})
}

func (c *ReportCommand) validateInputs() error {
	if c.config.InventoryFile == "" {
		return fmt.Errorf("inventory file is required")
	}
	if c.config.CatalogFile == "" {
		return fmt.Errorf("catalog file is required")
	}
	if c.config.HouseholdFile == "" {
		return fmt.Errorf("household file is required")
	}
	switch c.config.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (expected text or json)", c.config.Format)
	}
}

func (c *ReportCommand) parseDisabledTemplates() map[entities.TemplateID]bool {
	disabled := make(map[entities.TemplateID]bool)
	for _, id := range splitList(c.config.DisabledTemplates) {
		disabled[entities.TemplateID(id)] = true
	}
	return disabled
}

func (c *ReportCommand) parseDisabledCategories() map[entities.Category]bool {
	disabled := make(map[entities.Category]bool)
	for _, id := range splitList(c.config.DisabledCategories) {
		disabled[entities.Category(id)] = true
	}
	return disabled
}

func splitList(s string) []string {
	var parts []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func (c *ReportCommand) showHelp() {
	fmt.Println("prepstock - household emergency supply preparedness report")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  prepstock -inventory <file.csv> -catalog <file.yaml> -household <file.yaml> [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -inventory string   Path to inventory CSV file")
	fmt.Println("  -catalog string     Path to recommendation catalog YAML file")
	fmt.Println("  -household string   Path to household YAML file")
	fmt.Println("  -format string      Output format: text, json (default text)")
	fmt.Println("  -disable-templates  Comma-separated template ids to exclude")
	fmt.Println("  -disable-categories Comma-separated category ids to exclude")
	fmt.Println("  -expiring-days int  Days before expiration that count as expiring soon")
	fmt.Println("  -verbose            Enable verbose output")
	fmt.Println("  -help               Show this help message")
}
