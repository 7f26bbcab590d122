package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/spendlens/spendlens/internal/dashboard"
)

type Handler struct {
	svc *dashboard.Service
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	filters := dashboard.Filters{}

	if s := r.URL.Query().Get("date_from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date_from", http.StatusBadRequest)
			return
		}

		filters.DateFrom = &t
	}

	if s := r.URL.Query().Get("date_to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			http.Error(w, "invalid date_to", http.StatusBadRequest)
			return
		}

		filters.DateTo = &t
	}

	snapshot := h.svc.Snapshot(r.Context(), filters)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
