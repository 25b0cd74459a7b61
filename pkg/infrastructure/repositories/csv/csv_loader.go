package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/application/services/report"
	"github.com/storesim/invperf/pkg/domain/entities"
)

// Loader handles loading engine data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadBands loads sales band configurations from a CSV file. Row order is
// preserved because band lookup is first-match-wins.
func (l *Loader) LoadBands(filename string) ([]*entities.BandConfig, error) {
	records, err := readAll(filename, "bands")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"category_key", "quality_level", "tier_min", "tier_max", "min_daily", "max_daily", "expected_mode"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("bands CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var bands []*entities.BandConfig
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("bands CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		band, err := parseBand(record)
		if err != nil {
			return nil, fmt.Errorf("bands CSV row %d: %w", i+2, err)
		}

		bands = append(bands, band)
	}

	return bands, nil
}

// LoadCurves loads season curves from a CSV file. Each row carries a curve
// definition, a zone and one score column per week of the year.
func (l *Loader) LoadCurves(filename string) ([]*entities.SeasonCurve, error) {
	records, err := readAll(filename, "curves")
	if err != nil {
		return nil, err
	}

	expectedHeader := make([]string, 0, 2+entities.WeeksPerYear)
	expectedHeader = append(expectedHeader, "definition", "zone")
	for week := 1; week <= entities.WeeksPerYear; week++ {
		expectedHeader = append(expectedHeader, fmt.Sprintf("week_%d", week))
	}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("curves CSV header mismatch: expected definition, zone and %d week columns", entities.WeeksPerYear)
	}

	var curves []*entities.SeasonCurve
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("curves CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		weeks := make([]float64, entities.WeeksPerYear)
		for w := 0; w < entities.WeeksPerYear; w++ {
			score, err := strconv.ParseFloat(strings.TrimSpace(record[2+w]), 64)
			if err != nil {
				return nil, fmt.Errorf("curves CSV row %d: invalid week_%d score: %s", i+2, w+1, record[2+w])
			}
			weeks[w] = score
		}

		curve, err := entities.NewSeasonCurve(entities.CurveScopeKey(record[0], record[1]), weeks)
		if err != nil {
			return nil, fmt.Errorf("curves CSV row %d: %w", i+2, err)
		}

		curves = append(curves, curve)
	}

	return curves, nil
}

// LoadSales loads daily sales observations from a CSV file, grouped by
// product.
func (l *Loader) LoadSales(filename string) (map[entities.ProductID][]entities.SalesObservation, error) {
	records, err := readAll(filename, "sales")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "date", "units_shipped", "units_returned"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("sales CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	sales := make(map[entities.ProductID][]entities.SalesObservation)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sales CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		productID := entities.ProductID(strings.TrimSpace(record[0]))
		if productID == "" {
			return nil, fmt.Errorf("sales CSV row %d: product_id cannot be empty", i+2)
		}

		date, err := time.Parse("2006-01-02", record[1])
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid date format: %s (expected YYYY-MM-DD)", i+2, record[1])
		}

		shipped, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid units_shipped: %s", i+2, record[2])
		}

		returned, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("sales CSV row %d: invalid units_returned: %s", i+2, record[3])
		}

		sales[productID] = append(sales[productID], entities.SalesObservation{
			Date:          date,
			UnitsShipped:  entities.Quantity(shipped),
			UnitsReturned: entities.Quantity(returned),
		})
	}

	return sales, nil
}

// LoadOrders loads open customer orders from a CSV file, grouped by
// warehouse. Entries keep file order; allocation re-sorts by order date.
func (l *Loader) LoadOrders(filename string) (map[entities.WarehouseID][]*entities.BacklogEntry, error) {
	records, err := readAll(filename, "orders")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"warehouse_id", "product_id", "order_date", "qty_ordered"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("orders CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	orders := make(map[entities.WarehouseID][]*entities.BacklogEntry)
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("orders CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		warehouseID := entities.WarehouseID(strings.TrimSpace(record[0]))
		if warehouseID == "" {
			return nil, fmt.Errorf("orders CSV row %d: warehouse_id cannot be empty", i+2)
		}

		orderDate, err := time.Parse("2006-01-02", record[2])
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: invalid order_date format: %s (expected YYYY-MM-DD)", i+2, record[2])
		}

		qty, err := strconv.ParseInt(record[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: invalid qty_ordered: %s", i+2, record[3])
		}

		entry, err := entities.NewBacklogEntry(entities.ProductID(record[1]), orderDate, entities.Quantity(qty))
		if err != nil {
			return nil, fmt.Errorf("orders CSV row %d: %w", i+2, err)
		}

		orders[warehouseID] = append(orders[warehouseID], entry)
	}

	return orders, nil
}

// WarehouseConfig is one warehouse's capacity row: fixed daily capacity
// plus the optional temp-staff rate and standing hire request.
type WarehouseConfig struct {
	Capacity       entities.CapacityConfig
	StaffRate      *entities.TempStaffRate
	RequestedStaff int
}

// LoadCapacities loads per-warehouse capacity configuration from a CSV
// file. Staff columns may be blank when a warehouse cannot hire.
func (l *Loader) LoadCapacities(filename string) ([]WarehouseConfig, error) {
	records, err := readAll(filename, "capacity")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"warehouse_id", "units_per_day", "staff_capacity_per_worker", "staff_base_cost", "staff_salary_multiplier", "requested_staff"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("capacity CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var configs []WarehouseConfig
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("capacity CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		config, err := parseWarehouseConfig(record)
		if err != nil {
			return nil, fmt.Errorf("capacity CSV row %d: %w", i+2, err)
		}

		configs = append(configs, config)
	}

	return configs, nil
}

// LoadProducts loads the product catalog from a CSV file into report inputs.
func (l *Loader) LoadProducts(filename string) ([]report.ProductInput, error) {
	records, err := readAll(filename, "products")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "name", "category_key", "quality_level", "tier", "stock_on_hand", "price_index", "blocked_by_price", "unit_margin", "baseline_units_per_day", "curve_definition", "curve_zone"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []report.ProductInput
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		product, err := parseProduct(record)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		products = append(products, product)
	}

	return products, nil
}

// Helper functions for parsing CSV records

func readAll(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", kind)
	}

	return records, nil
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

func parseBand(record []string) (*entities.BandConfig, error) {
	qualityLevel, err := strconv.Atoi(record[1])
	if err != nil {
		return nil, fmt.Errorf("invalid quality_level: %s", record[1])
	}

	tierMin, err := strconv.Atoi(record[2])
	if err != nil {
		return nil, fmt.Errorf("invalid tier_min: %s", record[2])
	}

	tierMax, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("invalid tier_max: %s", record[3])
	}

	minDaily, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid min_daily: %s", record[4])
	}

	maxDaily, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid max_daily: %s", record[5])
	}

	band, err := entities.NewBandConfig(record[0], qualityLevel, tierMin, tierMax, minDaily, maxDaily)
	if err != nil {
		return nil, err
	}

	// expected_mode is optional; blank means "use the band midpoint"
	if mode := strings.TrimSpace(record[6]); mode != "" {
		expected, err := strconv.ParseFloat(mode, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid expected_mode: %s", record[6])
		}
		band.ExpectedMode = &expected
	}

	return band, nil
}

func parseWarehouseConfig(record []string) (WarehouseConfig, error) {
	warehouseID := entities.WarehouseID(strings.TrimSpace(record[0]))
	if warehouseID == "" {
		return WarehouseConfig{}, fmt.Errorf("warehouse_id cannot be empty")
	}

	unitsPerDay, err := strconv.ParseInt(record[1], 10, 64)
	if err != nil {
		return WarehouseConfig{}, fmt.Errorf("invalid units_per_day: %s", record[1])
	}
	if unitsPerDay < 0 {
		return WarehouseConfig{}, fmt.Errorf("units_per_day cannot be negative: %d", unitsPerDay)
	}

	config := WarehouseConfig{
		Capacity: entities.CapacityConfig{
			WarehouseID: warehouseID,
			UnitsPerDay: entities.Quantity(unitsPerDay),
		},
	}

	// Blank staff columns mean the warehouse cannot hire temp workers
	if strings.TrimSpace(record[2]) == "" {
		return config, nil
	}

	perWorker, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil {
		return WarehouseConfig{}, fmt.Errorf("invalid staff_capacity_per_worker: %s", record[2])
	}

	baseCost, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return WarehouseConfig{}, fmt.Errorf("invalid staff_base_cost: %s", record[3])
	}

	multiplier, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil {
		return WarehouseConfig{}, fmt.Errorf("invalid staff_salary_multiplier: %s", record[4])
	}

	rate, err := entities.NewTempStaffRate(entities.Quantity(perWorker), baseCost, multiplier)
	if err != nil {
		return WarehouseConfig{}, err
	}
	config.StaffRate = rate

	if requested := strings.TrimSpace(record[5]); requested != "" {
		staff, err := strconv.Atoi(requested)
		if err != nil {
			return WarehouseConfig{}, fmt.Errorf("invalid requested_staff: %s", record[5])
		}
		config.RequestedStaff = staff
	}

	return config, nil
}

func parseProduct(record []string) (report.ProductInput, error) {
	productID := entities.ProductID(strings.TrimSpace(record[0]))
	if productID == "" {
		return report.ProductInput{}, fmt.Errorf("product_id cannot be empty")
	}

	qualityLevel, err := strconv.Atoi(record[3])
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid quality_level: %s", record[3])
	}

	tier, err := strconv.Atoi(record[4])
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid tier: %s", record[4])
	}

	stock, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid stock_on_hand: %s", record[5])
	}

	priceIndex, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid price_index: %s", record[6])
	}

	blocked, err := parseBool(record[7])
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid blocked_by_price: %s", record[7])
	}

	margin, err := decimal.NewFromString(strings.TrimSpace(record[8]))
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid unit_margin: %s", record[8])
	}

	baseline, err := strconv.ParseFloat(record[9], 64)
	if err != nil {
		return report.ProductInput{}, fmt.Errorf("invalid baseline_units_per_day: %s", record[9])
	}

	var scopeKey string
	definition := strings.TrimSpace(record[10])
	zone := strings.TrimSpace(record[11])
	if definition != "" {
		scopeKey = entities.CurveScopeKey(definition, zone)
	}

	return report.ProductInput{
		ID:                  productID,
		Name:                record[1],
		CategoryKey:         record[2],
		QualityLevel:        qualityLevel,
		Tier:                tier,
		StockOnHand:         entities.Quantity(stock),
		PriceIndex:          priceIndex,
		BlockedByPrice:      blocked,
		UnitMargin:          margin,
		BaselineUnitsPerDay: baseline,
		CurveScopeKey:       scopeKey,
	}, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("expected true or false, got %s", s)
	}
}
