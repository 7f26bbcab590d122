package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/statsapi"
)

// Fixed fallback values substituted when a statistics source is
// unavailable or malformed. Constructors return fresh copies so no state
// is shared between requests.

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fallbackSummary() statsapi.Summary {
	return statsapi.Summary{
		CurrentMonth: statsapi.PeriodTotals{Total: money("5420.50"), Count: 82, Average: money("66.10")},
		CurrentWeek:  statsapi.PeriodTotals{Total: money("1280.40"), Count: 18},
		Today:        statsapi.PeriodTotals{Total: money("249.90"), Count: 3},
		PreviousMonth: statsapi.MonthComparison{
			PreviousTotal:    money("4980.20"),
			ChangeAmount:     money("440.30"),
			ChangePercentage: 8.8,
			Trend:            "up",
		},
	}
}

func fallbackCategories() statsapi.CategoryBreakdown {
	return statsapi.CategoryBreakdown{
		Period:     "2025-01",
		GrandTotal: money("5420.50"),
		Categories: []statsapi.CategorySlice{
			{CategoryID: "1", CategoryName: "Groceries", Color: "#34d399", Icon: "shopping-basket", Total: money("2140.22"), Count: 32, Percentage: 39.5},
			{CategoryID: "2", CategoryName: "Transport", Color: "#60a5fa", Icon: "bus", Total: money("940.50"), Count: 18, Percentage: 17.3},
			{CategoryID: "3", CategoryName: "Restaurant", Color: "#f472b6", Icon: "fork-knife", Total: money("870.00"), Count: 11, Percentage: 16.0},
			{CategoryID: "4", CategoryName: "Household", Color: "#facc15", Icon: "home", Total: money("620.35"), Count: 9, Percentage: 11.4},
			{CategoryID: "5", CategoryName: "Entertainment", Color: "#c084fc", Icon: "gamepad", Total: money("410.50"), Count: 7, Percentage: 7.6},
		},
	}
}

func fallbackTrend() []TrendPoint {
	totals := []int64{120, 220, 180, 340, 210, 260, 190, 320, 280, 410}
	counts := []int{2, 3, 3, 4, 2, 3, 2, 3, 3, 5}

	points := make([]TrendPoint, len(totals))
	for i := range totals {
		points[i] = TrendPoint{
			Label: time.Date(2025, 1, i+1, 0, 0, 0, 0, time.UTC).Format(time.DateOnly),
			Total: decimal.NewFromInt(totals[i]),
			Count: counts[i],
		}
	}

	return points
}

func fallbackVendors() statsapi.VendorStats {
	return statsapi.VendorStats{
		Period:     "2025-01",
		GrandTotal: money("5420.50"),
		TopVendors: []statsapi.VendorSlice{
			{Vendor: "Linella", Total: money("960.20"), Count: 8, Percentage: 17.7},
			{Vendor: "Starbucks", Total: money("640.50"), Count: 6, Percentage: 11.8},
			{Vendor: "Ikea", Total: money("540.10"), Count: 3, Percentage: 10.0},
			{Vendor: "Petrom", Total: money("420.60"), Count: 5, Percentage: 7.8},
			{Vendor: "Mega Image", Total: money("390.20"), Count: 4, Percentage: 7.1},
		},
	}
}

func fallbackRecent() []expense.Record {
	purchase := func(s string) *expense.Date {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			panic(err)
		}

		d := expense.NewDate(t)

		return &d
	}

	created := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic(err)
		}

		return t
	}

	return []expense.Record{
		{ID: "1", OwnerUserID: "user", Source: expense.SourceManual, Amount: expense.NewAmount(money("249.90")), Currency: "MDL", Vendor: "Linella", PurchaseDate: purchase("2025-01-10"), CategoryID: "1", AIConfidence: 0.94, CreatedAt: created("2025-01-10T10:21:00Z")},
		{ID: "2", OwnerUserID: "user", Source: expense.SourcePhoto, Amount: expense.NewAmount(money("120.50")), Currency: "MDL", Vendor: "Starbucks", PurchaseDate: purchase("2025-01-09"), CategoryID: "3", AIConfidence: 0.89, CreatedAt: created("2025-01-09T08:05:00Z")},
		{ID: "3", OwnerUserID: "user", Source: expense.SourceVoice, Amount: expense.NewAmount(money("540.10")), Currency: "MDL", Vendor: "Ikea", PurchaseDate: purchase("2025-01-08"), CategoryID: "4", AIConfidence: 0.91, CreatedAt: created("2025-01-08T17:30:00Z")},
		{ID: "4", OwnerUserID: "user", Source: expense.SourceManual, Amount: expense.NewAmount(money("86.40")), Currency: "MDL", Vendor: "Petrom", PurchaseDate: purchase("2025-01-08"), CategoryID: "2", AIConfidence: 0.88, CreatedAt: created("2025-01-08T07:44:00Z")},
		{ID: "5", OwnerUserID: "user", Source: expense.SourcePhoto, Amount: expense.NewAmount(money("410.50")), Currency: "MDL", Vendor: "Mega Image", PurchaseDate: purchase("2025-01-07"), CategoryID: "5", AIConfidence: 0.90, CreatedAt: created("2025-01-07T12:10:00Z")},
	}
}
