// Package insights produces filtered transaction views: it narrows the
// record set by structured criteria and fuzzy free-text search, then
// derives the chart datasets from the result.
package insights

import (
	"context"
	"fmt"

	"github.com/spendlens/spendlens/internal/analytics"
	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/statsapi"
)

// Client lists expense records from the upstream API.
type Client interface {
	ListExpenses(ctx context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error)
}

type Service struct {
	client Client
}

func NewService(client Client) *Service {
	return &Service{client: client}
}

// Upper bound on how many records one view pulls upstream.
const fetchLimit = 200

// Result is a filtered record set together with the datasets derived
// from it.
type Result struct {
	Records  []expense.Record
	Datasets analytics.Datasets
}

// Query fetches records matching the structured criteria, narrows them
// further with the filter's fuzzy free-text query, and derives the chart
// datasets from the narrowed set.
func (s *Service) Query(ctx context.Context, filter expense.Filter) (*Result, error) {
	list, err := s.client.ListExpenses(ctx, statsapi.ExpenseQuery{
		Limit:       fetchLimit,
		SortBy:      "created_at",
		Order:       "desc",
		DateFrom:    filter.DateFrom,
		DateTo:      filter.DateTo,
		CategoryIDs: filter.Categories,
		MinAmount:   filter.MinAmount,
		MaxAmount:   filter.MaxAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	records := make([]expense.Record, 0, len(list.Expenses))
	for _, r := range list.Expenses {
		if filter.Match(r) {
			records = append(records, r)
		}
	}

	return &Result{
		Records:  records,
		Datasets: analytics.Derive(records),
	}, nil
}
