package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/prepstock/prepstock/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		inventoryFile = flag.String("inventory", "", "Path to inventory CSV file")
		catalogFile   = flag.String("catalog", "", "Path to recommendation catalog YAML file")
		householdFile = flag.String("household", "", "Path to household YAML file")
		format        = flag.String("format", "text", "Output format: text, json")
		disabledTpls  = flag.String("disable-templates", "", "Comma-separated template ids to exclude")
		disabledCats  = flag.String("disable-categories", "", "Comma-separated category ids to exclude")
		expiringDays  = flag.Int("expiring-days", 0, "Days before expiration that count as expiring soon (0 = default)")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		InventoryFile:      *inventoryFile,
		CatalogFile:        *catalogFile,
		HouseholdFile:      *householdFile,
		Format:             *format,
		DisabledTemplates:  *disabledTpls,
		DisabledCategories: *disabledCats,
		ExpiringSoonDays:   *expiringDays,
		Verbose:            *verbose,
		Help:               *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
