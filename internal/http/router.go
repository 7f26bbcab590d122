package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/spendlens/spendlens/internal/http/dashboard"
	"github.com/spendlens/spendlens/internal/http/insights"
)

func New(
	allowedOrigins []string,
	dashboardV1 *dashboard.Handler,
	insightsV1 *insights.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(requestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", dashboardV1.Routes)
		r.Route("/insights", insightsV1.Routes)
	})

	return router
}
