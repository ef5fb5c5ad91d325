package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/statuswatch/statuswatch/internal/config"
	"github.com/statuswatch/statuswatch/internal/feed"
	"github.com/statuswatch/statuswatch/internal/models"
	"github.com/statuswatch/statuswatch/internal/parser"
	"github.com/statuswatch/statuswatch/internal/report"
	"github.com/statuswatch/statuswatch/internal/uptime"
)

// computePass runs one full fetch-and-compute pass and assembles the
// presentation options from the config.
func computePass(cfg *config.Config) (models.Report, report.Options, error) {
	opts := report.Options{Days: cfg.WindowDays}
	if cfg.HasTarget() {
		target := cfg.TargetUptime
		opts.TargetUptime = &target
	}

	if cfg.TargetsFile != "" {
		file, err := os.Open(cfg.TargetsFile)
		if err != nil {
			return models.Report{}, opts, fmt.Errorf("failed to open targets file %s: %w", cfg.TargetsFile, err)
		}
		defer file.Close()

		targets, err := parser.ParseTargets(file)
		if err != nil {
			return models.Report{}, opts, err
		}
		opts.Targets = targets
	}

	client := feed.NewClient(cfg.FeedURL, cfg.Timeout)
	records, err := client.Fetch(context.Background())
	if err != nil {
		return models.Report{}, opts, err
	}

	window := uptime.NewWindow(time.Now().UTC(), cfg.WindowDays)
	return uptime.Compute(records, window), opts, nil
}
