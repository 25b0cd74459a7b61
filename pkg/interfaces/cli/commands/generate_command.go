package commands

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// GenerateConfig holds configuration for scenario generation
type GenerateConfig struct {
	Products   int     // Number of products to generate
	Warehouses int     // Number of warehouses to generate
	Days       int     // Days of sales history to generate
	Stock      float64 // Stock multiplier relative to expected monthly demand
	OutputDir  string  // Output directory for generated files
	Seed       int64   // Random seed for reproducible generation
	Help       bool    // Show help
	Verbose    bool    // Verbose output
}

// GenerateCommand writes a random but internally consistent scenario
// directory: bands, curves, sales history, open orders, products and
// warehouse capacity.
type GenerateCommand struct {
	config GenerateConfig
	rand   *rand.Rand
	asOf   time.Time
}

// NewGenerateCommand creates a new generate command
func NewGenerateCommand(config GenerateConfig) *GenerateCommand {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &GenerateCommand{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
		asOf:   time.Now().UTC().Truncate(24 * time.Hour),
	}
}

type generatedProduct struct {
	id          string
	name        string
	category    string
	quality     int
	tier        int
	baseline    float64
	curveDef    string
	zone        string
	priceIndex  float64
	unitMargin  float64
	avgDaily    float64
	stockOnHand int
}

var categories = []string{"decor", "toys", "tools", "apparel", "garden", "kitchen"}

var zones = []string{"north", "south"}

// Execute runs the generate command
func (cmd *GenerateCommand) Execute(ctx context.Context) error {
	if cmd.config.Help {
		cmd.printHelp()
		return nil
	}

	if cmd.config.Verbose {
		fmt.Printf("Generating scenario: %d products, %d warehouses, %d days of history\n",
			cmd.config.Products, cmd.config.Warehouses, cmd.config.Days)
		fmt.Printf("Output directory: %s\n", cmd.config.OutputDir)
	}

	if err := os.MkdirAll(cmd.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := cmd.generateBands(); err != nil {
		return fmt.Errorf("failed to generate bands: %w", err)
	}

	if err := cmd.generateCurves(cmd.buildCurves()); err != nil {
		return fmt.Errorf("failed to generate curves: %w", err)
	}

	products := cmd.buildProducts()
	if err := cmd.generateProducts(products); err != nil {
		return fmt.Errorf("failed to generate products: %w", err)
	}

	if err := cmd.generateSales(products); err != nil {
		return fmt.Errorf("failed to generate sales: %w", err)
	}

	if err := cmd.generateOrders(products); err != nil {
		return fmt.Errorf("failed to generate orders: %w", err)
	}

	if err := cmd.generateCapacity(); err != nil {
		return fmt.Errorf("failed to generate capacity: %w", err)
	}

	if cmd.config.Verbose {
		fmt.Printf("Scenario generated successfully in %s\n", cmd.config.OutputDir)
	}

	return nil
}

// generateBands writes one band per category and quality level, split
// across two tier ranges so first-match ordering matters.
func (cmd *GenerateCommand) generateBands() error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "bands.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "category_key,quality_level,tier_min,tier_max,min_daily,max_daily,expected_mode")

	for _, category := range categories {
		for quality := 1; quality <= 3; quality++ {
			minDaily := float64(1+cmd.rand.Intn(8)) * float64(quality)
			maxDaily := minDaily * (2 + cmd.rand.Float64()*2)

			// Low-tier warehouses sell roughly half as much
			fmt.Fprintf(file, "%s,%d,1,2,%.1f,%.1f,\n", category, quality, minDaily/2, maxDaily/2)

			mode := minDaily + (maxDaily-minDaily)*(0.3+cmd.rand.Float64()*0.4)
			fmt.Fprintf(file, "%s,%d,3,5,%.1f,%.1f,%.1f\n", category, quality, minDaily, maxDaily, mode)
		}
	}

	return nil
}

type generatedCurve struct {
	definition string
	zone       string
	weeks      []float64
}

// buildCurves creates one seasonal bell per category and zone, peaking at
// a random week with a random width. Some weeks land on exact zero so
// season-end detection has something to find.
func (cmd *GenerateCommand) buildCurves() []generatedCurve {
	var curves []generatedCurve
	for _, category := range categories {
		for _, zone := range zones {
			peak := cmd.rand.Intn(entities.WeeksPerYear)
			width := 6 + cmd.rand.Float64()*10

			weeks := make([]float64, entities.WeeksPerYear)
			for w := 0; w < entities.WeeksPerYear; w++ {
				// Circular distance from the peak week
				distance := float64(w - peak)
				if distance > entities.WeeksPerYear/2 {
					distance -= entities.WeeksPerYear
				}
				if distance < -entities.WeeksPerYear/2 {
					distance += entities.WeeksPerYear
				}

				score := 100 * math.Exp(-(distance*distance)/(2*width*width))
				if score < 5 {
					score = 0
				}
				weeks[w] = math.Round(score)
			}

			curves = append(curves, generatedCurve{
				definition: "season-" + category,
				zone:       zone,
				weeks:      weeks,
			})
		}
	}
	return curves
}

func (cmd *GenerateCommand) generateCurves(curves []generatedCurve) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "curves.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprint(file, "definition,zone")
	for week := 1; week <= entities.WeeksPerYear; week++ {
		fmt.Fprintf(file, ",week_%d", week)
	}
	fmt.Fprintln(file)

	for _, curve := range curves {
		fmt.Fprintf(file, "%s,%s", curve.definition, curve.zone)
		for _, score := range curve.weeks {
			fmt.Fprintf(file, ",%.0f", score)
		}
		fmt.Fprintln(file)
	}

	return nil
}

func (cmd *GenerateCommand) buildProducts() []generatedProduct {
	adjectives := []string{"Classic", "Deluxe", "Compact", "Premium", "Basic", "Sturdy"}
	nouns := []string{"Gnome", "Lantern", "Planter", "Kettle", "Parasol", "Sled", "Rake", "Mug"}

	products := make([]generatedProduct, cmd.config.Products)
	for i := range products {
		category := categories[cmd.rand.Intn(len(categories))]
		zone := zones[cmd.rand.Intn(len(zones))]
		baseline := 1 + cmd.rand.Float64()*9
		avgDaily := baseline * (0.3 + cmd.rand.Float64()*1.2)

		// Roughly a month of demand at the configured multiplier
		stock := int(avgDaily * 30 * cmd.config.Stock)

		product := generatedProduct{
			id:          fmt.Sprintf("PROD-%04d", i+1),
			name:        fmt.Sprintf("%s %s %d", adjectives[cmd.rand.Intn(len(adjectives))], nouns[cmd.rand.Intn(len(nouns))], i+1),
			category:    category,
			quality:     1 + cmd.rand.Intn(3),
			tier:        1 + cmd.rand.Intn(5),
			baseline:    baseline,
			priceIndex:  0.7 + cmd.rand.Float64()*0.6,
			unitMargin:  0.5 + cmd.rand.Float64()*9.5,
			avgDaily:    avgDaily,
			stockOnHand: stock,
		}

		// A fifth of the catalog has no seasonal curve configured
		if cmd.rand.Float64() >= 0.2 {
			product.curveDef = "season-" + category
			product.zone = zone
		}
		products[i] = product
	}

	return products
}

func (cmd *GenerateCommand) generateProducts(products []generatedProduct) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "products.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "product_id,name,category_key,quality_level,tier,stock_on_hand,price_index,blocked_by_price,unit_margin,baseline_units_per_day,curve_definition,curve_zone")

	for _, product := range products {
		blocked := "false"
		if product.priceIndex > 1.15 && cmd.rand.Float64() < 0.5 {
			blocked = "true"
		}
		fmt.Fprintf(file, "%s,%s,%s,%d,%d,%d,%.2f,%s,%.2f,%.1f,%s,%s\n",
			product.id, product.name, product.category, product.quality, product.tier,
			product.stockOnHand, product.priceIndex, blocked, product.unitMargin,
			product.baseline, product.curveDef, product.zone)
	}

	return nil
}

// generateSales writes per-day observations around each product's average
// rate with Poisson-ish noise and occasional returns.
func (cmd *GenerateCommand) generateSales(products []generatedProduct) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "sales.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "product_id,date,units_shipped,units_returned")

	for _, product := range products {
		for day := cmd.config.Days - 1; day >= 0; day-- {
			date := cmd.asOf.AddDate(0, 0, -day)

			noise := 0.5 + cmd.rand.Float64()
			shipped := int(math.Round(product.avgDaily * noise))
			if shipped < 0 {
				shipped = 0
			}

			returned := 0
			if shipped > 0 && cmd.rand.Float64() < 0.1 {
				returned = 1 + cmd.rand.Intn(shipped)
			}

			fmt.Fprintf(file, "%s,%s,%d,%d\n", product.id, date.Format("2006-01-02"), shipped, returned)
		}
	}

	return nil
}

// generateOrders spreads open orders over the last few days so the FIFO
// backlog has age structure.
func (cmd *GenerateCommand) generateOrders(products []generatedProduct) error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "orders.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "warehouse_id,product_id,order_date,qty_ordered")

	orderCount := cmd.config.Products * 2
	for i := 0; i < orderCount; i++ {
		warehouse := fmt.Sprintf("WH-%02d", 1+cmd.rand.Intn(cmd.config.Warehouses))
		product := products[cmd.rand.Intn(len(products))]
		age := cmd.rand.Intn(4)
		qty := 1 + cmd.rand.Intn(40)

		fmt.Fprintf(file, "%s,%s,%s,%d\n",
			warehouse, product.id, cmd.asOf.AddDate(0, 0, -age).Format("2006-01-02"), qty)
	}

	return nil
}

func (cmd *GenerateCommand) generateCapacity() error {
	file, err := os.Create(filepath.Join(cmd.config.OutputDir, "capacity.csv"))
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintln(file, "warehouse_id,units_per_day,staff_capacity_per_worker,staff_base_cost,staff_salary_multiplier,requested_staff")

	for i := 1; i <= cmd.config.Warehouses; i++ {
		unitsPerDay := 50 + cmd.rand.Intn(200)

		// A third of warehouses cannot hire temp staff
		if cmd.rand.Float64() < 0.33 {
			fmt.Fprintf(file, "WH-%02d,%d,,,,\n", i, unitsPerDay)
			continue
		}

		perWorker := 5 + cmd.rand.Intn(10)
		baseCost := 60 + cmd.rand.Intn(60)
		multiplier := 1.0 + cmd.rand.Float64()*0.5
		requested := cmd.rand.Intn(4)

		fmt.Fprintf(file, "WH-%02d,%d,%d,%d,%.2f,%d\n",
			i, unitsPerDay, perWorker, baseCost, multiplier, requested)
	}

	return nil
}

// printHelp shows usage information
func (cmd *GenerateCommand) printHelp() {
	fmt.Println(`Scenario Generator

USAGE:
    invperf generate [OPTIONS]

OPTIONS:
    --products <N>      Number of products to generate (required)
    --warehouses <N>    Number of warehouses to generate (required)
    --days <N>          Days of sales history to generate (default: 30)
    --stock <F>         Stock multiplier vs expected monthly demand (default: 1.0)
    --output <DIR>      Output directory for generated files (required)
    --seed <N>          Random seed for reproducible generation (optional)
    --verbose           Enable verbose output
    --help              Show this help message

EXAMPLES:
    # Generate a small test scenario
    invperf generate --products 50 --warehouses 3 --output ./test_scenario

    # Generate a large reproducible scenario with thin stock
    invperf generate --products 5000 --warehouses 20 --stock 0.5 --output ./big_scenario --seed 12345`)
}
