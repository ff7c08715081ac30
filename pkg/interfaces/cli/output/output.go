package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/prepstock/prepstock/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format  string
	Verbose bool
}

// Generate renders the report in the specified format
func Generate(w io.Writer, report *dto.PreparednessReport, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(w, report, config)
	case "json":
		return generateJSONOutput(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, report *dto.PreparednessReport, config Config) error {
	fmt.Fprintf(w, "📊 Preparedness Summary\n")
	fmt.Fprintf(w, "=======================\n\n")
	fmt.Fprintf(w, "Overall: %s%% (%s)\n\n", report.OverallPercentage.Round(1), report.OverallLabel)

	fmt.Fprintf(w, "%-12s %-10s %-8s %-10s %-10s\n",
		"Category", "Status", "Percent", "Held", "Needed")
	fmt.Fprintf(w, "%-12s %-10s %-8s %-10s %-10s\n",
		"------------", "----------", "--------", "----------", "----------")
	for _, summary := range report.Categories {
		fmt.Fprintf(w, "%-12s %-10s %-8s %-10s %-10s\n",
			summary.Category,
			summary.StatusLabel,
			summary.CompletionPercentage.Round(1).String(),
			summary.TotalActual.String(),
			summary.TotalNeeded.String())
	}
	fmt.Fprintln(w)

	shortages := 0
	for _, summary := range report.Categories {
		shortages += len(summary.Shortages)
	}
	if shortages > 0 {
		fmt.Fprintf(w, "🛒 Shopping List:\n")
		fmt.Fprintf(w, "%-12s %-28s %-10s %-6s\n", "Category", "Item", "Missing", "Unit")
		fmt.Fprintf(w, "%-12s %-28s %-10s %-6s\n",
			"------------", "----------------------------", "----------", "------")
		for _, summary := range report.Categories {
			for _, shortage := range summary.Shortages {
				fmt.Fprintf(w, "%-12s %-28s %-10s %-6s\n",
					summary.Category, shortage.Name, shortage.Missing.String(), shortage.Unit)
			}
		}
		fmt.Fprintln(w)
	}

	if len(report.ExpiringItems) > 0 {
		fmt.Fprintf(w, "⚠️  Needs Attention:\n")
		fmt.Fprintf(w, "%-28s %-12s %-10s\n", "Item", "Expires", "Days Left")
		fmt.Fprintf(w, "%-28s %-12s %-10s\n",
			"----------------------------", "------------", "----------")
		for _, item := range report.ExpiringItems {
			daysLeft := fmt.Sprintf("%d", item.DaysUntil)
			if item.Expired {
				daysLeft = "expired"
			}
			fmt.Fprintf(w, "%-28s %-12s %-10s\n", item.Name, item.ExpirationDate, daysLeft)
		}
		fmt.Fprintln(w)
	}

	if config.Verbose {
		for _, summary := range report.Categories {
			if summary.TotalCalories.IsPositive() {
				fmt.Fprintf(w, "Calories covered (%s): %s kcal\n", summary.Category, summary.TotalCalories)
			}
			if summary.TotalWaterLiters.IsPositive() {
				fmt.Fprintf(w, "Drinking water covered (%s): %s l\n", summary.Category, summary.TotalWaterLiters)
			}
		}
	}

	return nil
}

// generateJSONOutput creates machine-readable JSON output
func generateJSONOutput(w io.Writer, report *dto.PreparednessReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return nil
}
