package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/spendlens/spendlens/internal/config"
	"github.com/spendlens/spendlens/internal/dashboard"
	spendlensHttp "github.com/spendlens/spendlens/internal/http"
	dashboardHandler "github.com/spendlens/spendlens/internal/http/dashboard"
	insightsHandler "github.com/spendlens/spendlens/internal/http/insights"
	"github.com/spendlens/spendlens/internal/insights"
	"github.com/spendlens/spendlens/internal/statsapi"
)

func main() {
	// Optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client := statsapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)

	var (
		dashboardService = dashboard.NewService(client)
		insightsService  = insights.NewService(client)
	)

	var (
		dashboardH = dashboardHandler.NewHandler(dashboardService)
		insightsH  = insightsHandler.NewHandler(insightsService)
	)

	router := spendlensHttp.New(cfg.CORS.AllowedOrigins, dashboardH, insightsH)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "name", cfg.App.Name, "addr", server.Addr, "upstream", cfg.Upstream.BaseURL)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
