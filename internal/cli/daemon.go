package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/takemehome/internal/app/dispatch"
	"github.com/bnema/takemehome/internal/app/messaging"
	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/infrastructure/config"
	"github.com/bnema/takemehome/internal/infrastructure/devtools"
	"github.com/bnema/takemehome/internal/logging"
)

// DaemonOptions tunes RunDaemon.
type DaemonOptions struct {
	// Events receives every coordinator event. Sends never block; events
	// are dropped while the receiver is behind.
	Events chan<- usecase.Event
	// Watch reloads the config file on change.
	Watch bool
}

// BrowserOptions maps the browser config section to connection options.
func BrowserOptions(cfg *config.Config) devtools.Options {
	return devtools.Options{
		CDPURL:        cfg.Browser.CDPURL,
		ExecPath:      cfg.Browser.ExecPath,
		UserDataDir:   cfg.Browser.UserDataDir,
		Headless:      cfg.Browser.Headless,
		StartTimeout:  cfg.Browser.StartTimeout(),
		ActionTimeout: cfg.Browser.ActionTimeout(),
	}
}

// RunDaemon connects to the browser and coordinates tabs until ctx is done
// or the browser exits.
func RunDaemon(ctx context.Context, app *App, opts DaemonOptions) error {
	ctx = logging.WithComponent(ctx, "daemon")
	log := logging.FromContext(ctx)
	cfg := app.Config

	script, err := devtools.RenderPageScript(devtools.PageConfig{
		NewTabURLs:  cfg.Browser.NewTabURLs,
		HintDelayMs: int64(cfg.Homepage.HintDelayMs),
	})
	if err != nil {
		return err
	}

	browser, err := devtools.Connect(ctx, BrowserOptions(cfg))
	if err != nil {
		return fmt.Errorf("connect to browser: %w", err)
	}
	defer browser.Close()

	bridge, err := devtools.NewBridge(browser, devtools.BridgeOptions{
		Script:        script,
		ActionTimeout: cfg.Browser.ActionTimeout(),
	})
	if err != nil {
		return err
	}
	host := bridge.Host()

	loop := dispatch.New(dispatch.DefaultQueueSize)
	coord := usecase.NewTabCoordinator(homepage.NewRegistry(host), host, app.Homepage, loop, usecase.CoordinatorOptions{
		NewTabURLs:    cfg.Browser.NewTabURLs,
		RecoveryDelay: cfg.Homepage.RecoveryDelay(),
		HintDelay:     cfg.Homepage.HintDelay(),
	})
	guard := usecase.NewLinkGuard(host)

	observer := eventSink(log, opts.Events)
	coord.SetObserver(observer)
	guard.SetObserver(observer)

	router := messaging.NewRouter()
	if err := messaging.RegisterHandlers(ctx, router, messaging.Config{Coordinator: coord, LinkGuard: guard}); err != nil {
		return err
	}
	bridge.Wire(coord, router, loop)

	if opts.Watch {
		app.Manager.OnConfigChange(func(next *config.Config) {
			applyConfig(ctx, loop, coord, next)
		})
		if err := app.Manager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	log.Info().
		Str("homepage_marker", homepage.Marker).
		Strs("new_tab_urls", cfg.Browser.NewTabURLs).
		Msg("coordinating tabs")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error { return bridge.Run(gctx) })

	err = g.Wait()
	if dropped := loop.Dropped(); dropped > 0 {
		log.Warn().Int64("dropped", dropped).Msg("events dropped by a full queue")
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().Msg("daemon stopped")
	return nil
}

// eventSink logs each event and forwards it to events when there is room.
func eventSink(log *zerolog.Logger, events chan<- usecase.Event) usecase.Observer {
	return func(ev usecase.Event) {
		log.Info().
			Str("event", string(ev.Kind)).
			Str("tab_id", string(ev.TabID)).
			Str("url", ev.URL).
			Str("detail", ev.Detail).
			Msg("homepage event")

		if events == nil {
			return
		}
		select {
		case events <- ev:
		default:
		}
	}
}

// applyConfig pushes live-reloadable settings. The coordinator is only
// touched from the loop; the log level applies immediately.
func applyConfig(ctx context.Context, loop *dispatch.Dispatcher, coord *usecase.TabCoordinator, next *config.Config) {
	zerolog.SetGlobalLevel(logging.ParseLevel(next.Logging.Level))

	delay := next.Homepage.RecoveryDelay()
	if !loop.Post("config-reload", func(context.Context) { coord.SetRecoveryDelay(delay) }) {
		logging.FromContext(ctx).Warn().Msg("config reload dropped, event queue full")
		return
	}
	logging.FromContext(ctx).Info().
		Dur("recovery_delay", delay).
		Str("log_level", next.Logging.Level).
		Msg("config reloaded")
}
