package devtools

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/sobek"

	"github.com/bnema/takemehome/internal/app/messaging"
	"github.com/bnema/takemehome/internal/domain/homepage"
)

//go:embed page.js
var pageScriptTemplate string

const configPlaceholder = "__TAKEMEHOME_CONFIG__"

// PageConfig is baked into the page script.
type PageConfig struct {
	Binding     string   `json:"binding"`
	Marker      string   `json:"marker"`
	NewTabURLs  []string `json:"newTabUrls"`
	HintDelayMs int64    `json:"hintDelayMs"`
}

// DefaultPageConfig returns the config matching the coordinator defaults.
func DefaultPageConfig() PageConfig {
	return PageConfig{
		Binding:     messaging.BindingName,
		Marker:      homepage.Marker,
		NewTabURLs:  homepage.DefaultNewTabURLs,
		HintDelayMs: 3000,
	}
}

// RenderPageScript returns the page script with cfg inlined. The result is
// compiled once so a broken template fails at startup instead of in every
// page.
func RenderPageScript(cfg PageConfig) (string, error) {
	if cfg.Binding == "" {
		cfg.Binding = messaging.BindingName
	}
	if cfg.Marker == "" {
		cfg.Marker = homepage.Marker
	}
	if len(cfg.NewTabURLs) == 0 {
		cfg.NewTabURLs = homepage.DefaultNewTabURLs
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode page config: %w", err)
	}
	src := strings.Replace(pageScriptTemplate, configPlaceholder, string(raw), 1)

	if _, err := sobek.Compile("page.js", src, false); err != nil {
		return "", fmt.Errorf("page script does not compile: %w", err)
	}
	return src, nil
}
