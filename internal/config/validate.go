package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWallhaven(); err != nil {
		return err
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateWallhaven() error {
	if c.Wallhaven.TimeoutSeconds <= 0 {
		return errors.New("wallhaven.timeout_seconds must be positive (seconds)")
	}
	if _, err := url.Parse(c.Wallhaven.BaseURL); err != nil {
		return fmt.Errorf("wallhaven.base_url: %w", err)
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	if c.RateLimit.Requests <= 0 {
		return errors.New("ratelimit.requests must be positive")
	}
	if c.RateLimit.WindowSeconds <= 0 {
		return errors.New("ratelimit.window_seconds must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "table", "json":
		return nil
	}
	return fmt.Errorf("output.format must be \"table\" or \"json\", got %q", c.Output.Format)
}
