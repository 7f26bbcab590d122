package expense

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/search"
)

// Filter narrows a record set. A nil bound means unbounded on that
// dimension; the free-text query is matched fuzzily against the vendor and
// category labels.
type Filter struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	Categories []string
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Query      string
}

// IsZero reports whether no criteria are set.
func (f Filter) IsZero() bool {
	return f.DateFrom == nil && f.DateTo == nil &&
		len(f.Categories) == 0 &&
		f.MinAmount == nil && f.MaxAmount == nil &&
		f.Query == ""
}

// Match reports whether the record satisfies every criterion.
func (f Filter) Match(r Record) bool {
	if f.DateFrom != nil || f.DateTo != nil {
		day, ok := r.EffectiveDate()
		if !ok {
			return false
		}

		if f.DateFrom != nil && day.Before(*f.DateFrom) {
			return false
		}

		if f.DateTo != nil && day.After(*f.DateTo) {
			return false
		}
	}

	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.CategoryID) {
		return false
	}

	if f.MinAmount != nil && r.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && r.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	return f.MatchQuery(r)
}

// MatchQuery applies only the free-text criterion: the record matches when
// either its vendor or its category label fuzzily matches the query.
func (f Filter) MatchQuery(r Record) bool {
	if f.Query == "" {
		return true
	}

	return search.Matches(r.DisplayVendor(), f.Query) ||
		search.Matches(r.DisplayCategory(), f.Query)
}
