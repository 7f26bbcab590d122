package insights

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/spendlens/spendlens/internal/expense"
	"github.com/spendlens/spendlens/internal/insights"
)

type Handler struct {
	svc *insights.Service
}

func NewHandler(svc *insights.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.query)
}

func (h *Handler) query(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Query(r.Context(), filter)
	if err != nil {
		slog.Error("insights query failed", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseFilter(r *http.Request) (expense.Filter, error) {
	query := r.URL.Query()
	filter := expense.Filter{Query: query.Get("q")}

	if s := query.Get("date_from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return expense.Filter{}, errInvalidParam("date_from")
		}

		filter.DateFrom = &t
	}

	if s := query.Get("date_to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return expense.Filter{}, errInvalidParam("date_to")
		}

		filter.DateTo = &t
	}

	if ids, ok := query["category_id"]; ok {
		filter.Categories = ids
	}

	if s := query.Get("min_amount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return expense.Filter{}, errInvalidParam("min_amount")
		}

		filter.MinAmount = &d
	}

	if s := query.Get("max_amount"); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return expense.Filter{}, errInvalidParam("max_amount")
		}

		filter.MaxAmount = &d
	}

	return filter, nil
}

func errInvalidParam(name string) error {
	return fmt.Errorf("invalid %s", name)
}
