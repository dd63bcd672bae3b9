package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeWallhaven()
	c.normalizeRateLimit()
	c.normalizeOutput()
	return c.normalizeLogging()
}

func (c *Config) normalizeWallhaven() {
	c.Wallhaven.APIKey = strings.TrimSpace(c.Wallhaven.APIKey)
	// The environment wins over the file so keys can stay out of configs.
	if value, ok := os.LookupEnv("WALLHAVEN_API_KEY"); ok && strings.TrimSpace(value) != "" {
		c.Wallhaven.APIKey = strings.TrimSpace(value)
	}
	c.Wallhaven.BaseURL = strings.TrimSpace(c.Wallhaven.BaseURL)
	if c.Wallhaven.BaseURL == "" {
		c.Wallhaven.BaseURL = defaultBaseURL
	}
	c.Wallhaven.UserAgent = strings.TrimSpace(c.Wallhaven.UserAgent)
	if c.Wallhaven.UserAgent == "" {
		c.Wallhaven.UserAgent = defaultUserAgent
	}
	if c.Wallhaven.TimeoutSeconds == 0 {
		c.Wallhaven.TimeoutSeconds = defaultTimeoutSeconds
	}
}

func (c *Config) normalizeRateLimit() {
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = defaultRateLimitRequests
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = defaultRateLimitWindow
	}
}

func (c *Config) normalizeOutput() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if c.Logging.File != "" {
		expanded, err := expandPath(c.Logging.File)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = defaultLogMaxSizeMB
	}
	if c.Logging.MaxBackups < 0 {
		c.Logging.MaxBackups = defaultLogMaxBackups
	}
	return nil
}
