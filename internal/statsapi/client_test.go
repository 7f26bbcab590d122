package statsapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/statsapi"
)

func date(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return &t
}

func TestClient_ListExpenses(t *testing.T) {
	var gotQuery string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/expenses", r.URL.Path)
		gotQuery = r.URL.RawQuery

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"expenses": [
				{"id": "1", "amount": 249.9, "vendor": "Linella", "purchase_date": "2025-01-10", "created_at": "2025-01-10T10:21:00Z"}
			],
			"total": 1
		}`))
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	minAmount := decimal.NewFromInt(10)
	list, err := client.ListExpenses(context.Background(), statsapi.ExpenseQuery{
		Limit:       5,
		SortBy:      "purchase_date",
		Order:       "desc",
		DateFrom:    date("2025-01-01"),
		CategoryIDs: []string{"cat-1", "cat-2"},
		MinAmount:   &minAmount,
	})
	require.NoError(t, err)

	require.Len(t, list.Expenses, 1)
	assert.Equal(t, "Linella", list.Expenses[0].Vendor)
	assert.True(t, list.Expenses[0].Amount.Equal(decimal.NewFromFloat(249.9)))

	assert.Contains(t, gotQuery, "limit=5")
	assert.Contains(t, gotQuery, "sort_by=purchase_date")
	assert.Contains(t, gotQuery, "order=desc")
	assert.Contains(t, gotQuery, "date_from=2025-01-01")
	assert.Contains(t, gotQuery, "category_id=cat-1")
	assert.Contains(t, gotQuery, "category_id=cat-2")
	assert.Contains(t, gotQuery, "min_amount=10")
}

func TestClient_Summary(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/statistics/summary", r.URL.Path)
		assert.Equal(t, "2025-01-10", r.URL.Query().Get("target_date"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current_month": {"total": 5420.5, "count": 82, "average": 66.1},
			"current_week": {"total": 1280.4, "count": 18},
			"today": {"total": 249.9, "count": 3},
			"comparison_previous_month": {"previous_total": 4980.2, "change_amount": 440.3, "change_percentage": 8.8, "trend": "up"}
		}`))
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	summary, err := client.Summary(context.Background(), statsapi.SummaryQuery{TargetDate: date("2025-01-10")})
	require.NoError(t, err)

	assert.Equal(t, 82, summary.CurrentMonth.Count)
	assert.True(t, summary.Today.Total.Equal(decimal.NewFromFloat(249.9)))
	assert.Equal(t, "up", summary.PreviousMonth.Trend)
}

func TestClient_CategoryBreakdown(t *testing.T) {
	type testCase struct {
		name    string
		query   statsapi.BreakdownQuery
		payload string
		verify  func(t *testing.T, query string)
		wantErr bool
	}

	tests := []testCase{
		{
			name:    "AllTime",
			query:   statsapi.BreakdownQuery{AllTime: true},
			payload: `{"period": "all", "grand_total": 5420.5, "categories": []}`,
			verify: func(t *testing.T, query string) {
				assert.Contains(t, query, "period=all")
			},
		},
		{
			name:    "DateWindow",
			query:   statsapi.BreakdownQuery{DateFrom: date("2025-01-01"), DateTo: date("2025-01-31")},
			payload: `{"period": "2025-01-01 → 2025-01-31", "grand_total": 100, "categories": [{"category_id": "1", "category_name": "Groceries", "total": 100, "count": 2, "percentage": 100}]}`,
			verify: func(t *testing.T, query string) {
				assert.Contains(t, query, "date_from=2025-01-01")
				assert.Contains(t, query, "date_to=2025-01-31")
			},
		},
		{
			name:    "MissingShape",
			query:   statsapi.BreakdownQuery{AllTime: true},
			payload: `{"period": "all", "grand_total": 0}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery string

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/v1/statistics/by_category", r.URL.Path)
				gotQuery = r.URL.RawQuery

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tc.payload))
			}))
			defer ts.Close()

			client := statsapi.NewClient(ts.URL, 5*time.Second)

			breakdown, err := client.CategoryBreakdown(context.Background(), tc.query)
			if tc.wantErr {
				require.ErrorIs(t, err, statsapi.ErrMalformed)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, breakdown.Categories)

			if tc.verify != nil {
				tc.verify(t, gotQuery)
			}
		})
	}
}

func TestClient_Trend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/statistics/trend", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "daily", q.Get("trend_type"))
		assert.Equal(t, "10", q.Get("range_value"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"trend_type": "daily",
			"range_value": 10,
			"data": [
				{"date": "2025-01-01", "total": 120, "count": 2},
				{"date": "2025-01-02", "total": "garbage", "count": 3}
			]
		}`))
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	series, err := client.Trend(context.Background(), statsapi.TrendQuery{TrendType: "daily", RangeValue: 10})
	require.NoError(t, err)

	require.Len(t, series.Data, 2)
	assert.True(t, series.Data[0].Total.Equal(decimal.NewFromInt(120)))
	// Malformed totals coerce to zero rather than failing the payload.
	assert.True(t, series.Data[1].Total.IsZero())
}

func TestClient_VendorLeaderboard(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/statistics/by_vendor", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "all", q.Get("period"))
		assert.Equal(t, "5", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"period": "all",
			"grand_total": 960.2,
			"top_vendors": [{"vendor": "Linella", "total": 960.2, "count": 8, "percentage": 100}]
		}`))
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	stats, err := client.VendorLeaderboard(context.Background(), statsapi.BreakdownQuery{AllTime: true, Limit: 5})
	require.NoError(t, err)

	require.Len(t, stats.TopVendors, 1)
	assert.Equal(t, "Linella", stats.TopVendors[0].Vendor)
}

func TestClient_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	_, err := client.Summary(context.Background(), statsapi.SummaryQuery{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestClient_MalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [`))
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	_, err := client.Trend(context.Background(), statsapi.TrendQuery{TrendType: "daily", RangeValue: 10})
	require.Error(t, err)
}

func TestClient_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := statsapi.NewClient(ts.URL, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Summary(ctx, statsapi.SummaryQuery{})
	require.Error(t, err)
}
