// Package dashboard assembles the dashboard snapshot: it fans out the
// independent statistics requests concurrently and degrades each failed
// source to a fixed fallback, so a snapshot is always complete.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/statsapi"
)

//go:generate mockgen -source=service.go -destination=client_mock.go -package=dashboard

// Client is the subset of the upstream statistics API the aggregator
// consumes.
type Client interface {
	ListExpenses(ctx context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error)
	Summary(ctx context.Context, q statsapi.SummaryQuery) (*statsapi.Summary, error)
	CategoryBreakdown(ctx context.Context, q statsapi.BreakdownQuery) (*statsapi.CategoryBreakdown, error)
	Trend(ctx context.Context, q statsapi.TrendQuery) (*statsapi.TrendSeries, error)
	VendorLeaderboard(ctx context.Context, q statsapi.BreakdownQuery) (*statsapi.VendorStats, error)
}

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

const (
	recentLimit = 5
	vendorLimit = 5
)

// Snapshot builds the dashboard snapshot for the given date window. It
// never fails outward: every source that errors or returns a malformed
// payload is logged and replaced by its fallback, so the caller always
// receives a structurally complete snapshot.
func (s *Service) Snapshot(ctx context.Context, filters Filters) *Snapshot {
	recent, earliest := s.probeBoundaries(ctx, filters)

	target := firstRecordDate(recent)

	earliestDate := filters.DateFrom
	if earliestDate == nil {
		earliestDate = firstRecordDate(earliest)
	}

	if earliestDate == nil {
		earliestDate = target
	}

	windowEnd := filters.DateTo
	if windowEnd == nil {
		windowEnd = target
	}

	window := TrendWindow(filters.DateFrom, filters.DateTo, earliestDate, windowEnd)

	summary := fallbackSummary()
	categories := fallbackCategories()
	trend := fallbackTrend()
	vendors := fallbackVendors()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := s.client.Summary(gctx, statsapi.SummaryQuery{
			TargetDate: target,
			DateFrom:   filters.DateFrom,
			DateTo:     filters.DateTo,
		})
		if err != nil {
			slog.Warn("summary source degraded to fallback", "error", err)
			return nil
		}

		summary = *resp

		return nil
	})

	g.Go(func() error {
		resp, err := s.client.CategoryBreakdown(gctx, statsapi.BreakdownQuery{
			AllTime:  !filters.Explicit(),
			DateFrom: filters.DateFrom,
			DateTo:   filters.DateTo,
		})
		if err != nil {
			slog.Warn("category breakdown degraded to fallback", "error", err)
			return nil
		}

		categories = *resp

		return nil
	})

	g.Go(func() error {
		resp, err := s.client.Trend(gctx, statsapi.TrendQuery{
			TrendType:  "daily",
			RangeValue: window,
			TargetDate: target,
			DateFrom:   filters.DateFrom,
			DateTo:     filters.DateTo,
		})
		if err != nil {
			slog.Warn("trend source degraded to fallback", "error", err)
			return nil
		}

		trend = mapTrend(resp)

		return nil
	})

	g.Go(func() error {
		resp, err := s.client.VendorLeaderboard(gctx, statsapi.BreakdownQuery{
			AllTime:  !filters.Explicit(),
			DateFrom: filters.DateFrom,
			DateTo:   filters.DateTo,
			Limit:    vendorLimit,
		})
		if err != nil {
			slog.Warn("vendor leaderboard degraded to fallback", "error", err)
			return nil
		}

		vendors = *resp

		return nil
	})

	// Branches absorb their own failures, so the only join outcome is
	// completion.
	_ = g.Wait()

	categories.Period = filters.label(categories.Period)
	vendors.Period = filters.label(vendors.Period)

	return &Snapshot{
		Summary:    summary,
		Categories: categories,
		Trend:      trend,
		Vendors:    vendors,
		Recent:     recentRecords(recent),
	}
}

// probeBoundaries concurrently fetches the most recent records for the
// window and, when no explicit window is set, the single earliest record
// used to size the default trend range. The probes fail independently.
func (s *Service) probeBoundaries(ctx context.Context, filters Filters) (recent, earliest *statsapi.ExpenseList) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.client.ListExpenses(gctx, statsapi.ExpenseQuery{
			Limit:    recentLimit,
			SortBy:   "purchase_date",
			Order:    "desc",
			DateFrom: filters.DateFrom,
			DateTo:   filters.DateTo,
		})
		if err != nil {
			slog.Warn("recent expenses probe failed", "error", err)
			return nil
		}

		recent = list

		return nil
	})

	if !filters.Explicit() {
		g.Go(func() error {
			list, err := s.client.ListExpenses(gctx, statsapi.ExpenseQuery{
				Limit:  1,
				SortBy: "purchase_date",
				Order:  "asc",
			})
			if err != nil {
				slog.Warn("earliest expense probe failed", "error", err)
				return nil
			}

			earliest = list

			return nil
		})
	}

	_ = g.Wait()

	return recent, earliest
}

func firstRecordDate(list *statsapi.ExpenseList) *time.Time {
	if list == nil || len(list.Expenses) == 0 {
		return nil
	}

	if t, ok := list.Expenses[0].EffectiveDate(); ok {
		return &t
	}

	return nil
}

// recentRecords normalizes the recent-transactions panel: vendor labels
// resolved, at most five entries, fallback records when the source was
// unavailable or empty.
func recentRecords(list *statsapi.ExpenseList) []expense.Record {
	if list == nil || len(list.Expenses) == 0 {
		return fallbackRecent()
	}

	records := list.Expenses
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}

	normalized := make([]expense.Record, len(records))
	for i, r := range records {
		r.Vendor = r.DisplayVendor()
		normalized[i] = r
	}

	return normalized
}
