package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:   "websocket endpoint",
			mutate: func(c *Config) { c.Browser.CDPURL = "ws://localhost:9222/devtools/browser/x" },
		},
		{
			name:   "http endpoint",
			mutate: func(c *Config) { c.Browser.CDPURL = "http://localhost:9222" },
		},
		{
			name:    "endpoint without host",
			mutate:  func(c *Config) { c.Browser.CDPURL = "ws:///devtools" },
			wantErr: "browser.cdp_url must include a host",
		},
		{
			name:    "endpoint scheme",
			mutate:  func(c *Config) { c.Browser.CDPURL = "ftp://localhost:9222" },
			wantErr: "browser.cdp_url scheme",
		},
		{
			name: "endpoint and exec path",
			mutate: func(c *Config) {
				c.Browser.CDPURL = "ws://localhost:9222"
				c.Browser.ExecPath = "/usr/bin/chromium"
			},
			wantErr: "cannot both be set",
		},
		{
			name:    "new tab page without scheme",
			mutate:  func(c *Config) { c.Browser.NewTabURLs = []string{"newtab"} },
			wantErr: "browser.new_tab_urls",
		},
		{
			name:    "recovery delay too long",
			mutate:  func(c *Config) { c.Homepage.RecoveryDelayMs = maxDelayMs + 1 },
			wantErr: "homepage.recovery_delay_ms",
		},
		{
			name:    "hint delay too long",
			mutate:  func(c *Config) { c.Homepage.HintDelayMs = maxDelayMs + 1 },
			wantErr: "homepage.hint_delay_ms",
		},
		{
			name:    "unknown level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "negative backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Homepage.HintDelayMs = maxDelayMs * 2

	err := validateConfig(cfg)
	assert.ErrorContains(t, err, "logging.level")
	assert.ErrorContains(t, err, "homepage.hint_delay_ms")
}
