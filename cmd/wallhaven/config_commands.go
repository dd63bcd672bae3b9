package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wallhaven/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand(ctx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			dir := filepath.Dir(target)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create config directory %q: %w", dir, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set api_key (or export WALLHAVEN_API_KEY) before making authenticated requests.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path, exists, err := ctx.configLocation()
			if err != nil {
				return err
			}

			if ctx.JSONMode() {
				return writeJSON(cmd, map[string]any{
					"path":   path,
					"exists": exists,
					"config": redactedConfig(cfg),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", path)
			if !exists {
				fmt.Fprintln(out, "Config file does not exist; defaults are in effect")
			}
			rows := [][]string{
				{"API key", apiKeyLabel(cfg.Wallhaven.APIKey)},
				{"Base URL", cfg.Wallhaven.BaseURL},
				{"User agent", cfg.Wallhaven.UserAgent},
				{"Timeout", fmt.Sprintf("%ds", cfg.Wallhaven.TimeoutSeconds)},
				{"HTTP/3", yesNo(cfg.Wallhaven.HTTP3)},
				{"Rate limit", fmt.Sprintf("%d requests / %ds", cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)},
				{"Output format", cfg.Output.Format},
				{"Log level", cfg.Logging.Level},
				{"Log format", cfg.Logging.Format},
			}
			if cfg.Logging.File != "" {
				rows = append(rows, []string{"Log file", cfg.Logging.File})
			}
			fmt.Fprintln(out, renderKeyValueTable(rows))
			return nil
		},
	}
}

// apiKeyLabel never echoes the key itself.
func apiKeyLabel(key string) string {
	if strings.TrimSpace(key) == "" {
		return "(not set)"
	}
	return "(set)"
}

func redactedConfig(cfg *config.Config) map[string]any {
	return map[string]any{
		"wallhaven": map[string]any{
			"api_key_set":     strings.TrimSpace(cfg.Wallhaven.APIKey) != "",
			"base_url":        cfg.Wallhaven.BaseURL,
			"user_agent":      cfg.Wallhaven.UserAgent,
			"timeout_seconds": cfg.Wallhaven.TimeoutSeconds,
			"http3":           cfg.Wallhaven.HTTP3,
		},
		"ratelimit": map[string]any{
			"requests":       cfg.RateLimit.Requests,
			"window_seconds": cfg.RateLimit.WindowSeconds,
		},
		"output": map[string]any{
			"format": cfg.Output.Format,
		},
		"logging": map[string]any{
			"level":       cfg.Logging.Level,
			"format":      cfg.Logging.Format,
			"file":        cfg.Logging.File,
			"max_size_mb": cfg.Logging.MaxSizeMB,
			"max_backups": cfg.Logging.MaxBackups,
		},
	}
}
