package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/statuswatch/statuswatch/internal/config"
	"github.com/statuswatch/statuswatch/internal/feed"
	"github.com/statuswatch/statuswatch/internal/metrics"
	"github.com/statuswatch/statuswatch/internal/uptime"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a Prometheus exporter",
	Long:  "Periodically fetch the status feed and expose uptime statistics as Prometheus metrics",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("days", "d", 0, "Number of days to look back from now")
	serveCmd.Flags().String("listen", "", "Listen address for the metrics endpoint")
	serveCmd.Flags().Duration("refresh", 0, "Feed refresh interval")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	if days, _ := cmd.Flags().GetInt("days"); days > 0 {
		cfg.WindowDays = days
	}
	if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
		cfg.ListenAddr = listen
	}
	if refresh, _ := cmd.Flags().GetDuration("refresh"); refresh > 0 {
		cfg.RefreshInterval = refresh
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	registry := prometheus.NewRegistry()
	collectors := metrics.New(registry)
	client := feed.NewClient(cfg.FeedURL, cfg.Timeout)

	refresh := func() {
		records, err := client.Fetch(context.Background())
		if err != nil {
			collectors.RefreshErrors.Inc()
			logger.Error("feed refresh failed", "error", err)
			return
		}
		window := uptime.NewWindow(time.Now().UTC(), cfg.WindowDays)
		collectors.Update(uptime.Compute(records, window))
		logger.Info("feed refreshed", "records", len(records), "window_days", cfg.WindowDays)
	}

	refresh()
	go func() {
		ticker := time.NewTicker(cfg.RefreshInterval)
		defer ticker.Stop()
		for range ticker.C {
			refresh()
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	logger.Info("serving metrics", "addr", cfg.ListenAddr, "refresh", cfg.RefreshInterval.String())
	return http.ListenAndServe(cfg.ListenAddr, mux)
}
