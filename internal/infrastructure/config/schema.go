// Package config loads, validates and watches the takemehome configuration.
package config

import "time"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config is the root configuration structure.
type Config struct {
	Browser  BrowserConfig  `mapstructure:"browser" toml:"browser" jsonschema:"title=Browser connection"`
	Homepage HomepageConfig `mapstructure:"homepage" toml:"homepage" jsonschema:"title=Homepage behaviour"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" toml:"logging"`
}

// BrowserConfig selects the browser takemehome drives.
type BrowserConfig struct {
	// CDPURL attaches to an already running browser (ws:// or http://).
	// When empty a browser is launched.
	CDPURL      string `mapstructure:"cdp_url" toml:"cdp_url" jsonschema:"description=DevTools endpoint of a running browser"`
	ExecPath    string `mapstructure:"exec_path" toml:"exec_path"`
	Headless    bool   `mapstructure:"headless" toml:"headless"`
	UserDataDir string `mapstructure:"user_data_dir" toml:"user_data_dir"`
	// NewTabURLs are the URL prefixes of the browser's own new-tab page.
	NewTabURLs      []string `mapstructure:"new_tab_urls" toml:"new_tab_urls"`
	StartTimeoutMs  int      `mapstructure:"start_timeout_ms" toml:"start_timeout_ms" jsonschema:"minimum=1000"`
	ActionTimeoutMs int      `mapstructure:"action_timeout_ms" toml:"action_timeout_ms" jsonschema:"minimum=100"`
}

// HomepageConfig tunes the coordinator and the page script.
type HomepageConfig struct {
	// RecoveryDelayMs is how long to wait after a window opens before
	// rescanning for a restored homepage tab.
	RecoveryDelayMs int `mapstructure:"recovery_delay_ms" toml:"recovery_delay_ms" jsonschema:"minimum=1,maximum=60000"`
	// HintDelayMs is how long a new-tab page waits before showing a hint.
	HintDelayMs int `mapstructure:"hint_delay_ms" toml:"hint_delay_ms" jsonschema:"minimum=1,maximum=60000"`
}

// DatabaseConfig holds the preference store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig holds logging output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
}

// StartTimeout returns the browser launch timeout.
func (b BrowserConfig) StartTimeout() time.Duration {
	return time.Duration(b.StartTimeoutMs) * time.Millisecond
}

// ActionTimeout returns the per-command DevTools timeout.
func (b BrowserConfig) ActionTimeout() time.Duration {
	return time.Duration(b.ActionTimeoutMs) * time.Millisecond
}

// RecoveryDelay returns the window-created rescan delay.
func (h HomepageConfig) RecoveryDelay() time.Duration {
	return time.Duration(h.RecoveryDelayMs) * time.Millisecond
}

// HintDelay returns the page hint delay.
func (h HomepageConfig) HintDelay() time.Duration {
	return time.Duration(h.HintDelayMs) * time.Millisecond
}
