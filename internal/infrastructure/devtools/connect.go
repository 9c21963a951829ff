// Package devtools drives a Chromium browser over the DevTools protocol.
package devtools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/bnema/takemehome/internal/logging"
)

const (
	defaultStartTimeout  = 20 * time.Second
	defaultActionTimeout = 5 * time.Second
)

// Options configures how the browser is reached.
type Options struct {
	// CDPURL attaches to an already running browser (ws:// or http://).
	// When empty a browser is launched.
	CDPURL        string
	ExecPath      string
	UserDataDir   string
	Headless      bool
	ExtraFlags    map[string]any
	StartTimeout  time.Duration
	ActionTimeout time.Duration
}

func (o Options) startTimeout() time.Duration {
	if o.StartTimeout <= 0 {
		return defaultStartTimeout
	}
	return o.StartTimeout
}

func (o Options) actionTimeout() time.Duration {
	if o.ActionTimeout <= 0 {
		return defaultActionTimeout
	}
	return o.ActionTimeout
}

// Browser is a live connection to one browser process.
type Browser struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   Options
}

// Connect attaches to or launches the browser and waits until the
// connection is usable.
func Connect(ctx context.Context, opts Options) (*Browser, error) {
	log := logging.FromContext(ctx)

	allocCtx, allocCancel, err := newAllocator(ctx, opts)
	if err != nil {
		return nil, err
	}

	bCtx, bCancel := chromedp.NewContext(allocCtx)
	cancel := func() {
		bCancel()
		allocCancel()
	}

	startCtx, startDone := context.WithTimeout(ctx, opts.startTimeout())
	defer startDone()

	errCh := make(chan error, 1)
	go func() {
		errCh <- chromedp.Run(bCtx, chromedp.ActionFunc(func(ctx context.Context) error {
			return target.SetDiscoverTargets(true).Do(ctx)
		}))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			cancel()
			return nil, fmt.Errorf("failed to start browser session: %w", err)
		}
	case <-startCtx.Done():
		cancel()
		if errors.Is(startCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("browser did not answer within %s", opts.startTimeout())
		}
		return nil, startCtx.Err()
	}

	log.Info().
		Str("cdp_url", opts.CDPURL).
		Bool("headless", opts.Headless).
		Msg("connected to browser")

	return &Browser{ctx: bCtx, cancel: cancel, opts: opts}, nil
}

func newAllocator(ctx context.Context, opts Options) (context.Context, context.CancelFunc, error) {
	if opts.CDPURL != "" {
		logging.FromContext(ctx).Debug().Str("url", opts.CDPURL).Msg("using remote allocator")
		allocCtx, cancel := chromedp.NewRemoteAllocator(ctx, opts.CDPURL)
		return allocCtx, cancel, nil
	}

	if opts.UserDataDir != "" {
		if err := os.MkdirAll(opts.UserDataDir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create profile dir: %w", err)
		}
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOptions(opts)...)
	return allocCtx, cancel, nil
}

func execOptions(opts Options) []chromedp.ExecAllocatorOption {
	out := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-popup-blocking", true),
		chromedp.Flag("disable-session-crashed-bubble", true),
		chromedp.Flag("hide-crash-restore-bubble", true),
		chromedp.Flag("disable-background-timer-throttling", true),
	}
	if opts.UserDataDir != "" {
		out = append(out, chromedp.UserDataDir(opts.UserDataDir))
	}
	if opts.ExecPath != "" {
		out = append(out, chromedp.ExecPath(opts.ExecPath))
	}
	for name, value := range opts.ExtraFlags {
		out = append(out, chromedp.Flag(name, value))
	}
	if opts.Headless {
		out = append(out, chromedp.Headless)
	} else {
		out = append(out, chromedp.Flag("headless", false))
	}
	return out
}

// Context returns the browser-level chromedp context.
func (b *Browser) Context() context.Context {
	return b.ctx
}

// Done is closed when the browser connection goes away.
func (b *Browser) Done() <-chan struct{} {
	return b.ctx.Done()
}

// Close drops the connection. A launched browser is terminated; a remote
// one keeps running.
func (b *Browser) Close() {
	if b.cancel != nil {
		b.cancel()
	}
}
