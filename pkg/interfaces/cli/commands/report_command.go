package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/storesim/invperf/pkg/application/services/orchestration"
	"github.com/storesim/invperf/pkg/application/services/report"
	"github.com/storesim/invperf/pkg/infrastructure/events"
	"github.com/storesim/invperf/pkg/infrastructure/repositories/csv"
	"github.com/storesim/invperf/pkg/infrastructure/repositories/memory"
	"github.com/storesim/invperf/pkg/interfaces/cli/output"
)

// Config holds configuration for the report command
type Config struct {
	ScenarioDir  string
	BandsFile    string
	CurvesFile   string
	SalesFile    string
	OrdersFile   string
	ProductsFile string
	CapacityFile string
	Date         string
	WeekIndex    int
	SortBy       string
	Ascending    bool
	OutputDir    string
	Format       string
	Verbose      bool
	ShowEvents   bool
	Help         bool
}

// ReportCommand runs one simulated day and renders the performance report
type ReportCommand struct {
	config Config
	log    zerolog.Logger
}

// NewReportCommand creates a report command with the given configuration.
// Logging goes to stderr so stdout stays clean for the rendered report.
func NewReportCommand(config Config) *ReportCommand {
	level := zerolog.WarnLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).
		With().Timestamp().Logger()

	return &ReportCommand{config: config, log: logger}
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

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	date, weekIndex, err := c.resolveDay()
	if err != nil {
		return err
	}

	sortBy, ok := report.ParseSortField(c.config.SortBy)
	if !ok {
		return fmt.Errorf("unknown sort column: %s", c.config.SortBy)
	}

	c.log.Debug().
		Str("date", date.Format("2006-01-02")).
		Int("week", weekIndex).
		Str("sort", sortBy.String()).
		Msg("loading scenario")

	loader := csv.NewLoader()

	bands, err := loader.LoadBands(files["Bands"])
	if err != nil {
		return fmt.Errorf("error loading bands: %w", err)
	}

	curves, err := loader.LoadCurves(files["Curves"])
	if err != nil {
		return fmt.Errorf("error loading curves: %w", err)
	}

	sales, err := loader.LoadSales(files["Sales"])
	if err != nil {
		return fmt.Errorf("error loading sales: %w", err)
	}

	orders, err := loader.LoadOrders(files["Orders"])
	if err != nil {
		return fmt.Errorf("error loading orders: %w", err)
	}

	products, err := loader.LoadProducts(files["Products"])
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}

	capacities, err := loader.LoadCapacities(files["Capacity"])
	if err != nil {
		return fmt.Errorf("error loading capacity: %w", err)
	}

	c.log.Debug().
		Int("bands", len(bands)).
		Int("curves", len(curves)).
		Int("products", len(products)).
		Int("warehouses", len(capacities)).
		Msg("scenario loaded")

	bandRepo := memory.NewBandRepository()
	if err := bandRepo.LoadBands(bands); err != nil {
		return fmt.Errorf("failed to load bands into repository: %w", err)
	}

	curveRepo := memory.NewCurveRepository()
	if err := curveRepo.LoadCurves(curves); err != nil {
		return fmt.Errorf("failed to load curves into repository: %w", err)
	}

	salesRepo := memory.NewSalesRepository()
	for productID, observations := range sales {
		if err := salesRepo.LoadObservations(productID, observations); err != nil {
			return fmt.Errorf("failed to load sales into repository: %w", err)
		}
	}

	backlogRepo := memory.NewBacklogRepository()
	journal := events.NewJournal()

	aggregator := report.NewAggregator(bandRepo, curveRepo, salesRepo)
	orchestrator := orchestration.NewDayOrchestrator(backlogRepo, aggregator, journal)

	plans := make([]orchestration.WarehouseDayPlan, len(capacities))
	for i, warehouse := range capacities {
		plans[i] = orchestration.WarehouseDayPlan{
			WarehouseID:    warehouse.Capacity.WarehouseID,
			Capacity:       warehouse.Capacity,
			TodaysOrders:   orders[warehouse.Capacity.WarehouseID],
			RequestedStaff: warehouse.RequestedStaff,
			StaffRate:      warehouse.StaffRate,
		}
	}

	startTime := time.Now()
	result, err := orchestrator.RunDay(ctx, date, weekIndex, plans, products, sortBy, c.config.Ascending)
	if err != nil {
		return fmt.Errorf("error running day: %w", err)
	}
	c.log.Debug().Dur("elapsed", time.Since(startTime)).Msg("day complete")

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.ShowEvents {
		c.printEvents(journal)
	}

	return nil
}

func (c *ReportCommand) printEvents(journal *events.Journal) {
	for _, event := range journal.ReadAll() {
		entry := c.log.Info().
			Str("stream", event.Stream).
			Int("version", event.Version)

		switch data := event.Data.(type) {
		case events.DayAllocatedData:
			entry = entry.
				Int64("capacity", int64(data.Capacity)).
				Int64("from_backlog", int64(data.ShippedFromBacklog)).
				Int64("from_today", int64(data.ShippedFromToday)).
				Int64("backlog_remaining", int64(data.BacklogRemaining))
		case events.TempStaffHiredData:
			entry = entry.
				Int("staff", data.StaffCount).
				Int64("extra_capacity", int64(data.ExtraCapacity)).
				Str("cost", data.Cost.String())
		}

		entry.Msg(string(event.Type))
	}
}

// validateInputs validates the command configuration
func (c *ReportCommand) validateInputs() error {
	if c.config.ScenarioDir == "" &&
		(c.config.BandsFile == "" || c.config.CurvesFile == "" ||
			c.config.SalesFile == "" || c.config.OrdersFile == "" ||
			c.config.ProductsFile == "" || c.config.CapacityFile == "") {
		return fmt.Errorf("must specify either -scenario directory or individual CSV files")
	}
	return nil
}

// resolveInputFiles determines the actual file paths to use
func (c *ReportCommand) resolveInputFiles() (map[string]string, error) {
	files := map[string]string{
		"Bands":    c.config.BandsFile,
		"Curves":   c.config.CurvesFile,
		"Sales":    c.config.SalesFile,
		"Orders":   c.config.OrdersFile,
		"Products": c.config.ProductsFile,
		"Capacity": c.config.CapacityFile,
	}

	if c.config.ScenarioDir != "" {
		files["Bands"] = filepath.Join(c.config.ScenarioDir, "bands.csv")
		files["Curves"] = filepath.Join(c.config.ScenarioDir, "curves.csv")
		files["Sales"] = filepath.Join(c.config.ScenarioDir, "sales.csv")
		files["Orders"] = filepath.Join(c.config.ScenarioDir, "orders.csv")
		files["Products"] = filepath.Join(c.config.ScenarioDir, "products.csv")
		files["Capacity"] = filepath.Join(c.config.ScenarioDir, "capacity.csv")
	}

	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	return files, nil
}

// resolveDay parses the simulated date and picks the week-of-year index.
// An explicit -week wins; otherwise the index comes from the date.
func (c *ReportCommand) resolveDay() (time.Time, int, error) {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if c.config.Date != "" {
		parsed, err := time.Parse("2006-01-02", c.config.Date)
		if err != nil {
			return time.Time{}, 0, fmt.Errorf("invalid date %s (expected YYYY-MM-DD)", c.config.Date)
		}
		date = parsed
	}

	weekIndex := c.config.WeekIndex
	if weekIndex < 0 {
		_, isoWeek := date.ISOWeek()
		weekIndex = isoWeek - 1
	}

	return date, weekIndex, nil
}

// showHelp displays the help message
func (c *ReportCommand) showHelp() {
	fmt.Printf(`Inventory Performance Engine CLI - seasonal demand scoring and capacity allocation

USAGE:
    invperf -scenario <directory>            # Use scenario directory with CSV files
    invperf -bands <file> -curves <file> ... # Use individual CSV files

OPTIONS:
    -scenario <dir>     Path to scenario directory containing CSV files
    -bands <file>       Path to sales bands CSV file
    -curves <file>      Path to season curves CSV file
    -sales <file>       Path to sales history CSV file
    -orders <file>      Path to open orders CSV file
    -products <file>    Path to product catalog CSV file
    -capacity <file>    Path to warehouse capacity CSV file
    -date <YYYY-MM-DD>  Simulated day (default: today)
    -week <n>           Week-of-year index 0-51 (default: derived from date)
    -sort <column>      Sort column: performance, name, avg-daily, profit,
                        stock-days, season-fit, expected-sold, expected-leftover
    -asc                Sort ascending (default: descending)
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json (default: text)
    -verbose            Enable verbose logging
    -events             Print the allocation event journal after the report
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── bands.csv       # Expected daily-sales bands
    ├── curves.csv      # Weekly season curves (52 score columns)
    ├── sales.csv       # Daily sales history
    ├── orders.csv      # Open customer orders per warehouse
    ├── products.csv    # Product catalog
    └── capacity.csv    # Warehouse capacity and temp-staff rates

CSV FILE FORMATS:

bands.csv:
    category_key,quality_level,tier_min,tier_max,min_daily,max_daily,expected_mode
    toys,2,1,3,10,30,18

curves.csv:
    definition,zone,week_1,...,week_52
    summer-toys,north,0,0,5,10,...

sales.csv:
    product_id,date,units_shipped,units_returned
    PROD-1,2026-08-01,12,2

orders.csv:
    warehouse_id,product_id,order_date,qty_ordered
    WH-1,PROD-1,2026-08-01,40

products.csv:
    product_id,name,category_key,quality_level,tier,stock_on_hand,price_index,blocked_by_price,unit_margin,baseline_units_per_day,curve_definition,curve_zone
    PROD-1,Garden Gnome,decor,2,3,120,1.08,false,4.50,6,summer-decor,north

capacity.csv:
    warehouse_id,units_per_day,staff_capacity_per_worker,staff_base_cost,staff_salary_multiplier,requested_staff
    WH-1,120,8,80,1.25,2

EXAMPLES:
    # Run a scenario for today
    invperf -scenario examples/summer_peak -verbose

    # Sort by days of stock remaining, ascending
    invperf -scenario examples/summer_peak -sort stock-days -asc

    # Simulate a specific day with JSON output
    invperf -scenario examples/summer_peak -date 2026-06-15 -format json -output results/
`)
}
