package config

import (
	"github.com/bnema/takemehome/internal/domain/homepage"
)

// Default configuration constants
const (
	// Browser defaults
	defaultStartTimeoutMs  = 20000
	defaultActionTimeoutMs = 5000

	// Homepage defaults
	defaultRecoveryDelayMs = 500
	defaultHintDelayMs     = 3000
	maxDelayMs             = 60000

	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10 // megabytes
	defaultMaxBackups = 3
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Browser: BrowserConfig{
			NewTabURLs:      append([]string(nil), homepage.DefaultNewTabURLs...),
			StartTimeoutMs:  defaultStartTimeoutMs,
			ActionTimeoutMs: defaultActionTimeoutMs,
		},
		Homepage: HomepageConfig{
			RecoveryDelayMs: defaultRecoveryDelayMs,
			HintDelayMs:     defaultHintDelayMs,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
		},
	}
}
