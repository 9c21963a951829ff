package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/takemehome/internal/infrastructure/devtools"
)

// ErrNoCDPURL is returned when a one-shot command has no running browser to
// talk to.
var ErrNoCDPURL = errors.New("no running browser: set browser.cdp_url or pass --cdp-url")

// OpenHost attaches to a running browser for a single command. cdpURL
// overrides browser.cdp_url when set. The returned func disconnects.
func OpenHost(ctx context.Context, app *App, cdpURL string) (*devtools.Host, func(), error) {
	opts := BrowserOptions(app.Config)
	if cdpURL != "" {
		opts.CDPURL = cdpURL
	}
	if opts.CDPURL == "" {
		return nil, nil, ErrNoCDPURL
	}
	opts.ExecPath = ""

	browser, err := devtools.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to browser: %w", err)
	}
	bridge, err := devtools.NewBridge(browser, devtools.BridgeOptions{ActionTimeout: opts.ActionTimeout})
	if err != nil {
		browser.Close()
		return nil, nil, err
	}
	return bridge.Host(), browser.Close, nil
}
