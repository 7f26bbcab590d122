package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/statsapi"
)

// Filters is the date window a snapshot is scoped to. Nil bounds mean the
// dashboard covers all time.
type Filters struct {
	DateFrom *time.Time
	DateTo   *time.Time
}

// Explicit reports whether the caller supplied any date bound.
func (f Filters) Explicit() bool {
	return f.DateFrom != nil || f.DateTo != nil
}

// label renders the active date window for display: "from → to" when both
// bounds are set, the single bound when only one is, else the fallback
// reported by the source.
func (f Filters) label(fallback string) string {
	switch {
	case f.DateFrom != nil && f.DateTo != nil:
		return f.DateFrom.Format(time.DateOnly) + " → " + f.DateTo.Format(time.DateOnly)
	case f.DateFrom != nil:
		return f.DateFrom.Format(time.DateOnly)
	case f.DateTo != nil:
		return f.DateTo.Format(time.DateOnly)
	default:
		return fallback
	}
}

// TrendPoint is one period of the trend chart.
type TrendPoint struct {
	Label    string          `json:"label"`
	SubLabel string          `json:"sub_label,omitempty"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// Snapshot is the complete set of derived dashboard values for one
// request. Every field is always populated; failed sources are replaced
// by their documented fallbacks.
type Snapshot struct {
	Summary    statsapi.Summary           `json:"summary"`
	Categories statsapi.CategoryBreakdown `json:"categories"`
	Trend      []TrendPoint               `json:"trend"`
	Vendors    statsapi.VendorStats       `json:"vendors"`
	Recent     []expense.Record           `json:"recent_expenses"`
}

// mapTrend flattens the upstream trend payload into chart points: the
// first present period label wins, week ends become sub-labels, and
// missing totals stay at zero.
func mapTrend(series *statsapi.TrendSeries) []TrendPoint {
	points := make([]TrendPoint, len(series.Data))

	for i, entry := range series.Data {
		label := entry.Date
		if label == "" {
			label = entry.Month
		}

		if label == "" {
			label = entry.WeekStart
		}

		if label == "" {
			label = "—"
		}

		points[i] = TrendPoint{
			Label:    label,
			SubLabel: entry.WeekEnd,
			Total:    entry.Total.Decimal,
			Count:    entry.Count,
		}
	}

	return points
}
