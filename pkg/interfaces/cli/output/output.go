package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storesim/invperf/pkg/application/dto"
	"github.com/storesim/invperf/pkg/application/services/report"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a day run in the specified format
func Generate(result *dto.DayRunResult, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(result, config)
	case "json":
		return generateJSONOutput(result, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(result *dto.DayRunResult, config Config) error {
	fmt.Printf("Inventory Performance Report - %s (week %d)\n", result.Date.Format("2006-01-02"), result.WeekIndex+1)
	fmt.Printf("==============================================\n\n")

	if len(result.Warehouses) > 0 {
		fmt.Printf("Warehouse Allocations:\n")
		fmt.Printf("%-10s %-10s %-8s %-12s %-12s %-10s %-10s\n",
			"Warehouse", "Capacity", "Staff", "Backlog Out", "Today Out", "Remaining", "Hire Cost")
		fmt.Printf("%-10s %-10s %-8s %-12s %-12s %-10s %-10s\n",
			"----------", "----------", "--------", "------------", "------------", "----------", "----------")

		for _, warehouse := range result.Warehouses {
			cost := "-"
			if warehouse.StaffQuote.StaffCount > 0 {
				cost = warehouse.StaffQuote.Cost.StringFixed(2)
			}
			fmt.Printf("%-10s %-10d %-8d %-12d %-12d %-10d %-10s\n",
				warehouse.WarehouseID,
				warehouse.TotalCapacity,
				warehouse.StaffQuote.StaffCount,
				warehouse.Allocation.ShippedFromBacklog,
				warehouse.Allocation.ShippedFromToday,
				warehouse.BacklogRemaining(),
				cost)
		}
		fmt.Println()
	}

	if len(result.Products) > 0 {
		fmt.Printf("Product Performance:\n")
		fmt.Printf("%-12s %-20s %-10s %-10s %-9s %-10s %-10s %-10s %-10s\n",
			"Product", "Name", "Rating", "Band", "Avg/Day", "Profit/Day", "Stock", "StockDays", "Leftover")
		fmt.Printf("%-12s %-20s %-10s %-10s %-9s %-10s %-10s %-10s %-10s\n",
			"------------", "--------------------", "----------", "----------", "---------", "----------", "----------", "----------", "----------")

		for _, row := range result.Products {
			fmt.Printf("%-12s %-20s %-10s %-10s %-9.2f %-10s %-10d %-10s %-10s\n",
				row.ProductID,
				truncate(row.Name, 20),
				row.Score.Label,
				bandColumn(row),
				row.AvgDaily,
				row.DailyProfit.StringFixed(2),
				row.StockOnHand,
				optionalColumn(row.StockDays, "%.1f"),
				optionalColumn(row.ExpectedLeftover, "%.0f"))
		}
		fmt.Println()
	}

	if config.OutputDir != "" {
		if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		filename := filepath.Join(config.OutputDir, "report.txt")
		if err := writeTextFile(result, filename); err != nil {
			return fmt.Errorf("failed to write text report: %w", err)
		}

		if config.Verbose {
			fmt.Printf("Results saved to: %s\n", filename)
		}
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(result *dto.DayRunResult, config Config) error {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("JSON results saved to: %s\n", filename)
	}

	return nil
}

func writeTextFile(result *dto.DayRunResult, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "Inventory Performance Report - %s (week %d)\n\n", result.Date.Format("2006-01-02"), result.WeekIndex+1)
	for _, warehouse := range result.Warehouses {
		fmt.Fprintf(file, "%s: capacity %d, shipped %d, remaining %d\n",
			warehouse.WarehouseID,
			warehouse.TotalCapacity,
			warehouse.Allocation.TotalShipped(),
			warehouse.BacklogRemaining())
	}
	fmt.Fprintln(file)
	for _, row := range result.Products {
		fmt.Fprintf(file, "%s (%s): %s, %.2f/day, stock %d\n",
			row.ProductID, row.Name, row.Score.Label, row.AvgDaily, row.StockOnHand)
	}

	return nil
}

func bandColumn(row report.ProductRow) string {
	if row.Band == nil {
		return "-"
	}
	return row.Band.Grade.String()
}

func optionalColumn(value *float64, format string) string {
	if value == nil {
		return "-"
	}
	return fmt.Sprintf(format, *value)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
