package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"wallhaven"
)

//go:embed sample_config.toml
var sampleConfig string

// Wallhaven contains API connection settings.
type Wallhaven struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	HTTP3          bool   `toml:"http3"`
}

// RateLimit paces outbound API requests.
type RateLimit struct {
	Requests      int `toml:"requests"`
	WindowSeconds int `toml:"window_seconds"`
}

// Output controls how command results render by default.
type Output struct {
	Format string `toml:"format"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format     string `toml:"format"`
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// Config encapsulates all configuration values for the CLI.
//
// Configuration sections:
//   - Wallhaven: API credentials, endpoint, and transport settings
//   - RateLimit: client-side request pacing
//   - Output: default rendering format for command results
//   - Logging: log format, level, and optional rotated file output
type Config struct {
	Wallhaven Wallhaven `toml:"wallhaven"`
	RateLimit RateLimit `toml:"ratelimit"`
	Output    Output    `toml:"output"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/wallhaven/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has paths expanded and environment fallbacks applied.
func Load(path string) (*Config, string, bool, error) {
	// A local .env feeds the environment fallbacks consulted below.
	_ = godotenv.Load()

	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/wallhaven/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("wallhaven.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// ClientConfig derives the API client configuration.
func (c *Config) ClientConfig() wallhaven.Config {
	return wallhaven.Config{
		APIKey:    c.Wallhaven.APIKey,
		BaseURL:   c.Wallhaven.BaseURL,
		UserAgent: c.Wallhaven.UserAgent,
		HTTP3:     c.Wallhaven.HTTP3,
		Timeout:   time.Duration(c.Wallhaven.TimeoutSeconds) * time.Second,
		RateLimit: wallhaven.RateLimit{
			Requests: c.RateLimit.Requests,
			Window:   time.Duration(c.RateLimit.WindowSeconds) * time.Second,
		},
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
