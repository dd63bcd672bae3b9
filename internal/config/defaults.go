package config

const (
	defaultBaseURL           = "https://wallhaven.cc/api/v1"
	defaultUserAgent         = "wallhaven-go/1"
	defaultTimeoutSeconds    = 30
	defaultRateLimitRequests = 12
	defaultRateLimitWindow   = 60
	defaultOutputFormat      = "table"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogMaxSizeMB      = 10
	defaultLogMaxBackups     = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Wallhaven: Wallhaven{
			BaseURL:        defaultBaseURL,
			UserAgent:      defaultUserAgent,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		RateLimit: RateLimit{
			Requests:      defaultRateLimitRequests,
			WindowSeconds: defaultRateLimitWindow,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format:     defaultLogFormat,
			Level:      defaultLogLevel,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
