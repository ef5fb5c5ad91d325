package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statuswatch/statuswatch/internal/config"
	"github.com/statuswatch/statuswatch/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print an uptime report",
	Long:  "Fetch the status feed and print uptime statistics for the lookback window",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntP("days", "d", 0, "Number of days to look back from now")
	reportCmd.Flags().Float64P("target-uptime", "t", -1, "Required uptime percentage; lines below it are shown in red")
	reportCmd.Flags().String("targets-file", "", "YAML file with per-component uptime targets")
	reportCmd.Flags().Bool("show-intervals", false, "List each merged downtime interval")
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	applyWindowFlags(cmd, cfg)
	showIntervals, _ := cmd.Flags().GetBool("show-intervals")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	rep, opts, err := computePass(cfg)
	if err != nil {
		return err
	}
	opts.ShowIntervals = showIntervals

	report.Write(os.Stdout, rep, opts)
	return nil
}

// applyWindowFlags overrides config values with the window-related flags
// shared by the report and check commands.
func applyWindowFlags(cmd *cobra.Command, cfg *config.Config) {
	if days, _ := cmd.Flags().GetInt("days"); days > 0 {
		cfg.WindowDays = days
	}
	if cmd.Flags().Changed("target-uptime") {
		cfg.TargetUptime, _ = cmd.Flags().GetFloat64("target-uptime")
	}
	if targetsFile, _ := cmd.Flags().GetString("targets-file"); targetsFile != "" {
		cfg.TargetsFile = targetsFile
	}
}
