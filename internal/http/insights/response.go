package insights

import (
	"github.com/spendlens/spendlens/internal/analytics"
	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/insights"
)

type insightsResponse struct {
	Expenses []expense.Record   `json:"expenses"`
	Total    int                `json:"total"`
	Charts   analytics.Datasets `json:"charts"`
}

func toResponse(result *insights.Result) insightsResponse {
	return insightsResponse{
		Expenses: result.Records,
		Total:    len(result.Records),
		Charts:   result.Datasets,
	}
}
