package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"wallhaven"
	"wallhaven/internal/config"
	"wallhaven/internal/logging"
)

type commandContext struct {
	configFlag  *string
	jsonFlag    *bool
	verboseFlag *bool

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	clientOnce sync.Once
	client     *wallhaven.Client
	logger     *slog.Logger
	clientErr  error
}

func newCommandContext(configFlag *string, jsonFlag, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		jsonFlag:    jsonFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

// configLocation reports where configuration was (or would be) read from.
func (c *commandContext) configLocation() (string, bool, error) {
	if _, err := c.ensureConfig(); err != nil {
		return "", false, err
	}
	return c.configPath, c.configExists, nil
}

// ensureClient builds the API client and its logger once per invocation.
// The logger writes to the command's error stream so results on stdout
// stay pipeable.
func (c *commandContext) ensureClient(cmd *cobra.Command) (*wallhaven.Client, *slog.Logger, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}
		opts := logging.Options{
			Level:      cfg.Logging.Level,
			Format:     cfg.Logging.Format,
			File:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			Writer:     cmd.ErrOrStderr(),
		}
		if c.verboseFlag != nil && *c.verboseFlag {
			opts.Level = "debug"
		}
		base, err := logging.New(opts)
		if err != nil {
			c.clientErr = err
			return
		}
		c.logger = logging.NewComponentLogger(base, "cli")

		client, err := wallhaven.New(cfg.ClientConfig())
		if err != nil {
			c.clientErr = err
			return
		}
		c.client = client
	})
	return c.client, c.logger, c.clientErr
}

// JSONMode reports whether command results should render as JSON, either
// via the --json flag or the configured default output format.
func (c *commandContext) JSONMode() bool {
	if c.jsonFlag != nil && *c.jsonFlag {
		return true
	}
	cfg, err := c.ensureConfig()
	if err != nil || cfg == nil {
		return false
	}
	return cfg.Output.Format == "json"
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
