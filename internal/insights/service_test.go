package insights_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/statsapi"
)

type stubClient struct {
	listExpensesFunc func(ctx context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error)
}

func (s *stubClient) ListExpenses(ctx context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error) {
	return s.listExpensesFunc(ctx, q)
}

func record(id, day, vendor, category string, amount float64) expense.Record {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		panic(err)
	}

	d := expense.NewDate(t)

	return expense.Record{
		ID:           id,
		Amount:       expense.AmountFromFloat(amount),
		Vendor:       vendor,
		CategoryName: category,
		PurchaseDate: &d,
		CreatedAt:    t.Add(12 * time.Hour),
	}
}

func TestService_Query(t *testing.T) {
	records := []expense.Record{
		record("1", "2025-01-01", "Linella", "Groceries", 100),
		record("2", "2025-01-02", "Starbucks", "Restaurant", 50),
		record("3", "2025-01-03", "Mega Image", "Groceries", 75),
	}

	client := &stubClient{
		listExpensesFunc: func(_ context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error) {
			assert.Equal(t, 200, q.Limit)
			assert.Equal(t, "created_at", q.SortBy)
			assert.Equal(t, "desc", q.Order)

			return &statsapi.ExpenseList{Expenses: records, Total: len(records)}, nil
		},
	}

	svc := insights.NewService(client)

	got, err := svc.Query(context.Background(), expense.Filter{Query: "linela"})
	require.NoError(t, err)

	// The typo'd query fuzzily matches only the Linella record.
	require.Len(t, got.Records, 1)
	assert.Equal(t, "1", got.Records[0].ID)

	require.Len(t, got.Datasets.Daily, 1)
	assert.True(t, got.Datasets.Daily[0].Total.Equal(decimal.NewFromInt(100)))
	require.Len(t, got.Datasets.Vendors, 1)
	assert.Equal(t, "Linella", got.Datasets.Vendors[0].Label)
}

func TestService_Query_NoCriteria(t *testing.T) {
	records := []expense.Record{
		record("1", "2025-01-01", "Linella", "Groceries", 100),
		record("2", "2025-01-02", "Starbucks", "Restaurant", 50),
	}

	client := &stubClient{
		listExpensesFunc: func(context.Context, statsapi.ExpenseQuery) (*statsapi.ExpenseList, error) {
			return &statsapi.ExpenseList{Expenses: records}, nil
		},
	}

	svc := insights.NewService(client)

	got, err := svc.Query(context.Background(), expense.Filter{})
	require.NoError(t, err)

	assert.Len(t, got.Records, 2)
	assert.Len(t, got.Datasets.Daily, 2)
	assert.True(t, got.Datasets.Cumulative[1].Cumulative.Equal(decimal.NewFromInt(150)))
}

func TestService_Query_PassesFiltersUpstream(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	minAmount := decimal.NewFromInt(20)

	var gotQuery statsapi.ExpenseQuery

	client := &stubClient{
		listExpensesFunc: func(_ context.Context, q statsapi.ExpenseQuery) (*statsapi.ExpenseList, error) {
			gotQuery = q
			return &statsapi.ExpenseList{}, nil
		},
	}

	svc := insights.NewService(client)

	_, err := svc.Query(context.Background(), expense.Filter{
		DateFrom:   &from,
		Categories: []string{"cat-1"},
		MinAmount:  &minAmount,
	})
	require.NoError(t, err)

	require.NotNil(t, gotQuery.DateFrom)
	assert.Equal(t, "2025-01-01", gotQuery.DateFrom.Format(time.DateOnly))
	assert.Equal(t, []string{"cat-1"}, gotQuery.CategoryIDs)
	require.NotNil(t, gotQuery.MinAmount)
	assert.True(t, gotQuery.MinAmount.Equal(minAmount))
}

func TestService_Query_UpstreamError(t *testing.T) {
	client := &stubClient{
		listExpensesFunc: func(context.Context, statsapi.ExpenseQuery) (*statsapi.ExpenseList, error) {
			return nil, errors.New("connection refused")
		},
	}

	svc := insights.NewService(client)

	_, err := svc.Query(context.Background(), expense.Filter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing expenses")
}
