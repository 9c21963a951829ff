package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateConfig reports every invalid value at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateHomepage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	b := config.Browser

	if b.CDPURL != "" {
		u, err := url.Parse(b.CDPURL)
		switch {
		case err != nil:
			validationErrors = append(validationErrors, fmt.Sprintf("browser.cdp_url is not a URL: %v", err))
		case u.Host == "":
			validationErrors = append(validationErrors, "browser.cdp_url must include a host")
		default:
			switch u.Scheme {
			case "ws", "wss", "http", "https":
			default:
				validationErrors = append(validationErrors,
					fmt.Sprintf("browser.cdp_url scheme must be ws, wss, http or https (got %q)", u.Scheme))
			}
		}
		if b.ExecPath != "" {
			validationErrors = append(validationErrors, "browser.cdp_url and browser.exec_path cannot both be set")
		}
	}

	for _, page := range b.NewTabURLs {
		if !strings.Contains(page, ":") {
			validationErrors = append(validationErrors,
				fmt.Sprintf("browser.new_tab_urls entry %q must include a scheme", page))
		}
	}
	return validationErrors
}

func validateHomepage(config *Config) []string {
	var validationErrors []string
	if config.Homepage.RecoveryDelayMs > maxDelayMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("homepage.recovery_delay_ms must be at most %d", maxDelayMs))
	}
	if config.Homepage.HintDelayMs > maxDelayMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("homepage.hint_delay_ms must be at most %d", maxDelayMs))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
