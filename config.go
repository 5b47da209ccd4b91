package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration. Every field comes from the
// environment and can be overridden by a flag.
type Config struct {
	MermaidBaseURL         string `env:"MERMAID_BASE_URL"          envDefault:"https://mermaid.ink"`
	MermaidLiveURL         string `env:"MERMAID_LIVE_URL"          envDefault:"https://mermaid.live"`
	QuickChartURL          string `env:"QUICKCHART_URL"            envDefault:"https://quickchart.io/chart"`
	QuickChartMaxURLLength int    `env:"QUICKCHART_MAX_URL_LENGTH" envDefault:"8000"`
	HTTPTimeout            int    `env:"HTTP_TIMEOUT"              envDefault:"10"`
	DefaultChartWidth      int    `env:"DEFAULT_CHART_WIDTH"       envDefault:"500"`
	DefaultChartHeight     int    `env:"DEFAULT_CHART_HEIGHT"      envDefault:"300"`
	Port                   int    `env:"PORT"                      envDefault:"8000"`
	Transport              string `env:"TRANSPORT"                 envDefault:"stdio"`
	PublicBaseURL          string `env:"PUBLIC_BASE_URL"           envDefault:""`
}

// ParseConfig parses environment variables and flags into a Config.
// Flags win over environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.MermaidBaseURL, "mermaid-base-url", cfg.MermaidBaseURL, "base URL for rendered diagram images")
	fs.StringVar(&cfg.MermaidLiveURL, "mermaid-live-url", cfg.MermaidLiveURL, "base URL for the interactive diagram editor")
	fs.StringVar(&cfg.QuickChartURL, "quickchart-url", cfg.QuickChartURL, "chart rendering endpoint")
	fs.IntVar(&cfg.QuickChartMaxURLLength, "quickchart-max-url-length", cfg.QuickChartMaxURLLength, "maximum length of a generated chart URL")
	fs.IntVar(&cfg.HTTPTimeout, "http-timeout", cfg.HTTPTimeout, "reachability probe timeout in seconds")
	fs.IntVar(&cfg.DefaultChartWidth, "chart-width", cfg.DefaultChartWidth, "default chart width in pixels")
	fs.IntVar(&cfg.DefaultChartHeight, "chart-height", cfg.DefaultChartHeight, "default chart height in pixels")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "listen port for the SSE transport")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "transport type: stdio or sse")
	fs.StringVar(&cfg.PublicBaseURL, "public-base-url", cfg.PublicBaseURL, "externally visible base URL for SSE message endpoints (relative endpoints when empty)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ProbeTimeout returns the reachability probe timeout as a duration.
func (c Config) ProbeTimeout() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
