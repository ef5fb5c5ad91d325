package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	FeedURL         string
	Timeout         time.Duration
	WindowDays      int
	TargetUptime    float64 // negative when no target is configured
	TargetsFile     string
	ListenAddr      string
	RefreshInterval time.Duration
}

func New() *Config {
	return &Config{
		FeedURL:         viper.GetString("feed_url"),
		Timeout:         viper.GetDuration("timeout"),
		WindowDays:      viper.GetInt("window_days"),
		TargetUptime:    viper.GetFloat64("target_uptime"),
		TargetsFile:     viper.GetString("targets_file"),
		ListenAddr:      viper.GetString("listen_addr"),
		RefreshInterval: viper.GetDuration("refresh_interval"),
	}
}

func (c *Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("feed URL is required")
	}

	u, err := url.Parse(c.FeedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid feed URL: %s", c.FeedURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	if c.WindowDays <= 0 {
		return fmt.Errorf("window must be at least 1 day")
	}

	if c.HasTarget() && c.TargetUptime > 100 {
		return fmt.Errorf("target uptime must be between 0 and 100")
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}

	return nil
}

// HasTarget reports whether a global uptime target was configured.
func (c *Config) HasTarget() bool {
	return c.TargetUptime >= 0
}
