package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/storesim/invperf/pkg/interfaces/cli/commands"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "generate" {
		runGenerate(os.Args[2:])
		return
	}

	// Command line flags
	var (
		scenarioDir = flag.String(
			"scenario",
			"",
			"Path to scenario directory containing CSV files",
		)
		bandsFile    = flag.String("bands", "", "Path to sales bands CSV file")
		curvesFile   = flag.String("curves", "", "Path to season curves CSV file")
		salesFile    = flag.String("sales", "", "Path to sales history CSV file")
		ordersFile   = flag.String("orders", "", "Path to open orders CSV file")
		productsFile = flag.String("products", "", "Path to product catalog CSV file")
		capacityFile = flag.String("capacity", "", "Path to warehouse capacity CSV file")
		date         = flag.String("date", "", "Simulated day YYYY-MM-DD (default: today)")
		weekIndex    = flag.Int("week", -1, "Week-of-year index 0-51 (default: derived from date)")
		sortBy       = flag.String("sort", "performance", "Sort column for the product report")
		ascending    = flag.Bool("asc", false, "Sort ascending instead of descending")
		outputDir    = flag.String("output", "", "Output directory for results (optional)")
		format       = flag.String("format", "text", "Output format: text, json")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showEvents   = flag.Bool("events", false, "Print the allocation event journal")
		help         = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	// Create command configuration
	config := commands.Config{
		ScenarioDir:  *scenarioDir,
		BandsFile:    *bandsFile,
		CurvesFile:   *curvesFile,
		SalesFile:    *salesFile,
		OrdersFile:   *ordersFile,
		ProductsFile: *productsFile,
		CapacityFile: *capacityFile,
		Date:         *date,
		WeekIndex:    *weekIndex,
		SortBy:       *sortBy,
		Ascending:    *ascending,
		OutputDir:    *outputDir,
		Format:       *format,
		Verbose:      *verbose,
		ShowEvents:   *showEvents,
		Help:         *help,
	}

	// Create and execute command
	cmd := commands.NewReportCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	flags := flag.NewFlagSet("generate", flag.ExitOnError)
	products := flags.Int("products", 0, "Number of products to generate")
	warehouses := flags.Int("warehouses", 0, "Number of warehouses to generate")
	days := flags.Int("days", 30, "Days of sales history to generate")
	stock := flags.Float64("stock", 1.0, "Stock multiplier vs expected monthly demand")
	outputDir := flags.String("output", "", "Output directory for generated files")
	seed := flags.Int64("seed", 0, "Random seed for reproducible generation")
	verbose := flags.Bool("verbose", false, "Enable verbose output")
	help := flags.Bool("help", false, "Show help message")
	if err := flags.Parse(args); err != nil {
		os.Exit(1)
	}

	config := commands.GenerateConfig{
		Products:   *products,
		Warehouses: *warehouses,
		Days:       *days,
		Stock:      *stock,
		OutputDir:  *outputDir,
		Seed:       *seed,
		Verbose:    *verbose,
		Help:       *help,
	}

	if !config.Help && (config.Products <= 0 || config.Warehouses <= 0 || config.OutputDir == "") {
		fmt.Fprintln(os.Stderr, "Error: generate requires -products, -warehouses and -output")
		os.Exit(1)
	}

	cmd := commands.NewGenerateCommand(config)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
