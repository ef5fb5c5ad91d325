package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "statuswatch",
	Short: "Status-page uptime statistics",
	Long: `A command line tool that computes uptime statistics from a status-page
RSS history feed: overall and per-component uptime percentages over a
rolling window, plus average incident resolution time.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("feed-url", "", "Status feed URL (overrides STATUSWATCH_FEED_URL)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Feed fetch timeout (overrides STATUSWATCH_TIMEOUT)")
	viper.BindPFlag("feed_url", rootCmd.PersistentFlags().Lookup("feed-url"))
	viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func initConfig() {
	// Environment variables
	viper.SetEnvPrefix("STATUSWATCH")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("feed_url", "https://status.bigchange.com/history.rss")
	viper.SetDefault("timeout", "15s")
	viper.SetDefault("window_days", 30)
	viper.SetDefault("target_uptime", -1.0)
	viper.SetDefault("listen_addr", ":9379")
	viper.SetDefault("refresh_interval", "5m")
}
