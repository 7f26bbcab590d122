// Package statsapi is a typed client for the upstream expense API's
// read-only listing and statistics endpoints.
package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMalformed marks a payload that parsed but is missing its expected
// shape; callers treat it like any other source failure.
var ErrMalformed = errors.New("malformed response")

// Client talks to the upstream expense API. All calls are uncached and
// carry the request context; the HTTP timeout bounds each individual call.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ExpenseQuery parameterizes the expense listing endpoint.
type ExpenseQuery struct {
	Limit       int
	SortBy      string
	Order       string
	DateFrom    *time.Time
	DateTo      *time.Time
	CategoryIDs []string
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
}

func (q ExpenseQuery) values() url.Values {
	params := url.Values{}

	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}

	if q.Order != "" {
		params.Set("order", q.Order)
	}

	setDate(params, "date_from", q.DateFrom)
	setDate(params, "date_to", q.DateTo)

	for _, id := range q.CategoryIDs {
		params.Add("category_id", id)
	}

	if q.MinAmount != nil {
		params.Set("min_amount", q.MinAmount.String())
	}

	if q.MaxAmount != nil {
		params.Set("max_amount", q.MaxAmount.String())
	}

	return params
}

// SummaryQuery parameterizes the running-summary endpoint.
type SummaryQuery struct {
	TargetDate *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
}

// BreakdownQuery parameterizes the by-category and by-vendor endpoints.
// AllTime requests the unbounded period instead of a date window.
type BreakdownQuery struct {
	AllTime  bool
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
}

func (q BreakdownQuery) values() url.Values {
	params := url.Values{}

	if q.AllTime {
		params.Set("period", "all")
	}

	setDate(params, "date_from", q.DateFrom)
	setDate(params, "date_to", q.DateTo)

	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	return params
}

// TrendQuery parameterizes the trend endpoint.
type TrendQuery struct {
	TrendType  string
	RangeValue int
	TargetDate *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
}

func (q TrendQuery) values() url.Values {
	params := url.Values{}

	if q.TrendType != "" {
		params.Set("trend_type", q.TrendType)
	}

	if q.RangeValue > 0 {
		params.Set("range_value", strconv.Itoa(q.RangeValue))
	}

	setDate(params, "target_date", q.TargetDate)
	setDate(params, "date_from", q.DateFrom)
	setDate(params, "date_to", q.DateTo)

	return params
}

// ListExpenses fetches expense records matching the query.
func (c *Client) ListExpenses(ctx context.Context, q ExpenseQuery) (*ExpenseList, error) {
	var list ExpenseList
	if err := c.getJSON(ctx, "/api/v1/expenses", q.values(), &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// Summary fetches the running totals for today, this week, and this month.
func (c *Client) Summary(ctx context.Context, q SummaryQuery) (*Summary, error) {
	params := url.Values{}
	setDate(params, "target_date", q.TargetDate)
	setDate(params, "date_from", q.DateFrom)
	setDate(params, "date_to", q.DateTo)

	var summary Summary
	if err := c.getJSON(ctx, "/api/v1/statistics/summary", params, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// CategoryBreakdown fetches per-category totals.
func (c *Client) CategoryBreakdown(ctx context.Context, q BreakdownQuery) (*CategoryBreakdown, error) {
	var breakdown CategoryBreakdown
	if err := c.getJSON(ctx, "/api/v1/statistics/by_category", q.values(), &breakdown); err != nil {
		return nil, err
	}

	if breakdown.Categories == nil {
		return nil, fmt.Errorf("by_category: %w", ErrMalformed)
	}

	return &breakdown, nil
}

// Trend fetches the trend series.
func (c *Client) Trend(ctx context.Context, q TrendQuery) (*TrendSeries, error) {
	var series TrendSeries
	if err := c.getJSON(ctx, "/api/v1/statistics/trend", q.values(), &series); err != nil {
		return nil, err
	}

	if series.Data == nil {
		return nil, fmt.Errorf("trend: %w", ErrMalformed)
	}

	return &series, nil
}

// VendorLeaderboard fetches the top-vendor totals.
func (c *Client) VendorLeaderboard(ctx context.Context, q BreakdownQuery) (*VendorStats, error) {
	var stats VendorStats
	if err := c.getJSON(ctx, "/api/v1/statistics/by_vendor", q.values(), &stats); err != nil {
		return nil, err
	}

	if stats.TopVendors == nil {
		return nil, fmt.Errorf("by_vendor: %w", ErrMalformed)
	}

	return &stats, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	target := c.baseURL + path
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requesting %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}

	return nil
}

func setDate(params url.Values, key string, t *time.Time) {
	if t != nil {
		params.Set(key, t.Format(time.DateOnly))
	}
}
