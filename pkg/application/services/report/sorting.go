package report

import (
	"math"
	"sort"
	"strings"
)

// SortField selects the list column to order product rows by.
type SortField int

const (
	SortPerformance SortField = iota
	SortName
	SortAvgDaily
	SortProfit
	SortStockDays
	SortSeasonFit
	SortExpectedSold
	SortExpectedLeftover
)

// String method for SortField enum
func (f SortField) String() string {
	switch f {
	case SortPerformance:
		return "performance"
	case SortName:
		return "name"
	case SortAvgDaily:
		return "avg-daily"
	case SortProfit:
		return "profit"
	case SortStockDays:
		return "stock-days"
	case SortSeasonFit:
		return "season-fit"
	case SortExpectedSold:
		return "expected-sold"
	case SortExpectedLeftover:
		return "expected-leftover"
	default:
		return "unknown"
	}
}

// ParseSortField maps a column name onto a SortField.
func ParseSortField(s string) (SortField, bool) {
	for field := SortPerformance; field <= SortExpectedLeftover; field++ {
		if field.String() == strings.ToLower(s) {
			return field, true
		}
	}
	return SortPerformance, false
}

// SortRows orders rows in place by the given field. The comparison is a
// total order: rows missing the field's value (or carrying NaN) sort after
// all rows that have one regardless of direction, ties on the primary key
// break on the fixed performance rank and then on name, and equal rows keep
// their relative order (stable sort).
func SortRows(rows []ProductRow, field SortField, ascending bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		if field == SortName {
			return compareNames(rows[i], rows[j], ascending)
		}

		vi, oki := sortKey(rows[i], field)
		vj, okj := sortKey(rows[j], field)

		switch {
		case oki && !okj:
			return true
		case !oki && okj:
			return false
		case oki && okj && vi != vj:
			if ascending {
				return vi < vj
			}
			return vi > vj
		}

		// Primary key ties break on the fixed label rank, then name
		if rows[i].Score.Rank != rows[j].Score.Rank {
			return rows[i].Score.Rank > rows[j].Score.Rank
		}
		return strings.ToLower(rows[i].Name) < strings.ToLower(rows[j].Name)
	})
}

func compareNames(a, b ProductRow, ascending bool) bool {
	na, nb := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if na != nb {
		if ascending {
			return na < nb
		}
		return na > nb
	}
	return a.Score.Rank > b.Score.Rank
}

// sortKey extracts the numeric key for a field. ok is false for missing or
// non-finite values so they can be pushed to the end.
func sortKey(row ProductRow, field SortField) (float64, bool) {
	var value float64
	switch field {
	case SortPerformance:
		value = float64(row.Score.Rank)
	case SortAvgDaily:
		value = row.AvgDaily
	case SortProfit:
		value, _ = row.DailyProfit.Float64()
	case SortStockDays:
		if row.StockDays == nil {
			return 0, false
		}
		value = *row.StockDays
	case SortSeasonFit:
		if row.SeasonFit == nil {
			return 0, false
		}
		value = *row.SeasonFit
	case SortExpectedSold:
		if row.ExpectedSold == nil {
			return 0, false
		}
		value = *row.ExpectedSold
	case SortExpectedLeftover:
		if row.ExpectedLeftover == nil {
			return 0, false
		}
		value = *row.ExpectedLeftover
	default:
		return 0, false
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
