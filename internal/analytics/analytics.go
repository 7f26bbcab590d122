// Package analytics derives chart-ready datasets from a filtered set of
// expense records. All derivations are pure functions of their input.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/expense"
)

// Vendor charts keep only the heaviest spenders.
const topVendorLimit = 6

// DailyPoint is the total spent on one calendar day.
type DailyPoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// CumulativePoint carries the running sum of all daily totals up to and
// including its own day.
type CumulativePoint struct {
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Cumulative decimal.Decimal `json:"cumulative"`
}

// LabelTotal is the total spent under one grouping label.
type LabelTotal struct {
	Label string          `json:"label"`
	Total decimal.Decimal `json:"total"`
}

// Datasets bundles the four chart views derived from one record set.
type Datasets struct {
	Daily      []DailyPoint      `json:"daily"`
	Cumulative []CumulativePoint `json:"cumulative"`
	Categories []LabelTotal      `json:"categories"`
	Vendors    []LabelTotal      `json:"vendors"`
}

// Derive computes all four datasets from the given records. The empty
// input yields four empty datasets.
func Derive(records []expense.Record) Datasets {
	daily := dailyTotals(records)

	categories := groupTotals(records, expense.Record.DisplayCategory)
	sortByTotalDesc(categories)

	vendors := groupTotals(records, expense.Record.DisplayVendor)
	sortByTotalDesc(vendors)

	if len(vendors) > topVendorLimit {
		vendors = vendors[:topVendorLimit]
	}

	return Datasets{
		Daily:      daily,
		Cumulative: cumulativeTotals(daily),
		Categories: categories,
		Vendors:    vendors,
	}
}

func dailyTotals(records []expense.Record) []DailyPoint {
	grouped := groupTotals(records, expense.Record.Day)

	// ISO dates sort lexicographically; the unknown-day bucket lands last.
	sort.Slice(grouped, func(i, j int) bool {
		return grouped[i].Label < grouped[j].Label
	})

	daily := make([]DailyPoint, len(grouped))
	for i, g := range grouped {
		daily[i] = DailyPoint{Date: g.Label, Total: g.Total}
	}

	return daily
}

func cumulativeTotals(daily []DailyPoint) []CumulativePoint {
	cumulative := make([]CumulativePoint, len(daily))

	running := decimal.Decimal{}
	for i, d := range daily {
		running = running.Add(d.Total)
		cumulative[i] = CumulativePoint{Date: d.Date, Total: d.Total, Cumulative: running}
	}

	return cumulative
}

// groupTotals sums amounts per label, preserving first-encounter order so
// ties keep a stable ordering after sorting.
func groupTotals(records []expense.Record, key func(expense.Record) string) []LabelTotal {
	index := make(map[string]int, len(records))
	grouped := make([]LabelTotal, 0, len(records))

	for _, r := range records {
		k := key(r)

		i, ok := index[k]
		if !ok {
			i = len(grouped)
			index[k] = i
			grouped = append(grouped, LabelTotal{Label: k})
		}

		grouped[i].Total = grouped[i].Total.Add(r.Amount.Decimal)
	}

	return grouped
}

func sortByTotalDesc(totals []LabelTotal) {
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total.GreaterThan(totals[j].Total)
	})
}
