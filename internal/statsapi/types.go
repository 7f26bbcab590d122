package statsapi

import (
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/expense"
)

// ExpenseList is the payload of the expense listing endpoint.
type ExpenseList struct {
	Expenses []expense.Record `json:"expenses"`
	Total    int              `json:"total,omitempty"`
}

// PeriodTotals aggregates one reporting period.
type PeriodTotals struct {
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average,omitempty"`
}

// MonthComparison compares the current month against the previous one.
// The trend tag is computed upstream and passed through opaquely.
type MonthComparison struct {
	PreviousTotal    decimal.Decimal `json:"previous_total"`
	ChangeAmount     decimal.Decimal `json:"change_amount"`
	ChangePercentage float64         `json:"change_percentage"`
	Trend            string          `json:"trend"`
}

// Summary holds the running totals for today, this week, and this month.
type Summary struct {
	CurrentMonth  PeriodTotals    `json:"current_month"`
	CurrentWeek   PeriodTotals    `json:"current_week"`
	Today         PeriodTotals    `json:"today"`
	PreviousMonth MonthComparison `json:"comparison_previous_month"`
}

// CategorySlice is one category's share of the breakdown.
type CategorySlice struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Color        string          `json:"color,omitempty"`
	Icon         string          `json:"icon,omitempty"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
	Percentage   float64         `json:"percentage"`
}

// CategoryBreakdown is the per-category totals for one period.
type CategoryBreakdown struct {
	Period     string          `json:"period"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Categories []CategorySlice `json:"categories"`
}

// VendorSlice is one vendor's share of the leaderboard.
type VendorSlice struct {
	Vendor     string          `json:"vendor"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// VendorStats is the top-vendor leaderboard for one period.
type VendorStats struct {
	Period     string          `json:"period"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	TopVendors []VendorSlice   `json:"top_vendors"`
}

// TrendEntry is one period of the trend series. Daily entries carry a
// date, weekly ones a week range, monthly ones a month tag.
type TrendEntry struct {
	Date      string         `json:"date,omitempty"`
	Month     string         `json:"month,omitempty"`
	WeekStart string         `json:"week_start,omitempty"`
	WeekEnd   string         `json:"week_end,omitempty"`
	Total     expense.Amount `json:"total"`
	Count     int            `json:"count"`
}

// TrendSeries is the trend endpoint payload.
type TrendSeries struct {
	TrendType  string       `json:"trend_type,omitempty"`
	RangeValue int          `json:"range_value,omitempty"`
	Data       []TrendEntry `json:"data"`
}
