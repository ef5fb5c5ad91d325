package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/statuswatch/statuswatch/internal/config"
	"github.com/statuswatch/statuswatch/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify uptime against targets",
	Long:  "Fetch the status feed and exit non-zero when overall or component uptime is below its target",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntP("days", "d", 0, "Number of days to look back from now")
	checkCmd.Flags().Float64P("target-uptime", "t", -1, "Required uptime percentage")
	checkCmd.Flags().String("targets-file", "", "YAML file with per-component uptime targets")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	applyWindowFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !cfg.HasTarget() && cfg.TargetsFile == "" {
		return fmt.Errorf("check requires --target-uptime or --targets-file")
	}

	rep, opts, err := computePass(cfg)
	if err != nil {
		return err
	}

	violations := report.Violations(rep, opts)
	if len(violations) == 0 {
		fmt.Printf("OK: uptime within target over %d days\n", cfg.WindowDays)
		return nil
	}

	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s uptime %.5f%% below target %.5f%%\n", v.Scope, v.Uptime, v.Target)
	}
	return fmt.Errorf("%d uptime target violation(s)", len(violations))
}
