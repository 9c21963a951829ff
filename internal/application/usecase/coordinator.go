package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/domain/repository"
	"github.com/bnema/takemehome/internal/logging"
)

const (
	// DefaultRecoveryDelay gives the browser time to restore a session's
	// tabs before the registry rescans after a window opens.
	DefaultRecoveryDelay = 500 * time.Millisecond

	// DefaultHintDelay is how long the new-tab page waits for a decision
	// before showing its configuration hint.
	DefaultHintDelay = 3 * time.Second

	recoverTaskName = "recover-homepage-tab"
)

// CoordinatorOptions tunes a TabCoordinator.
type CoordinatorOptions struct {
	// NewTabURLs are the URL prefixes of the browser's native new-tab page.
	NewTabURLs    []string
	RecoveryDelay time.Duration
	HintDelay     time.Duration
}

// RedirectDecision answers a new-tab page asking what to do.
type RedirectDecision struct {
	ShouldRedirect   bool         `json:"shouldRedirect"`
	FocusExistingTab bool         `json:"focusExistingTab"`
	HomepageTabID    entity.TabID `json:"homepageTabId,omitempty"`
	ResetURL         bool         `json:"resetUrl,omitempty"`
	ResetToURL       string       `json:"resetToUrl,omitempty"`
	RedirectURL      string       `json:"redirectUrl,omitempty"`
	HintDelayMs      int64        `json:"hintDelayMs"`
}

// Constants is the getConstants response.
type Constants struct {
	Marker      string `json:"marker"`
	HintDelayMs int64  `json:"hintDelayMs"`
}

// MarkResult is the markAsHomepageTab response.
type MarkResult struct {
	Success bool         `json:"success"`
	TabID   entity.TabID `json:"tabId,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// OpenStatus is the isHomepageTabOpen response.
type OpenStatus struct {
	Exists bool         `json:"exists"`
	TabID  entity.TabID `json:"tabId,omitempty"`
}

// Ack is the tabUpdated response.
type Ack struct {
	Success bool `json:"success"`
}

// TabCoordinator decides, for every tab signal, whether to redirect, focus
// the tracked homepage tab or reset it.
//
// A TabCoordinator is not safe for concurrent use. All methods are called
// from the dispatcher goroutine, and the registry is re-validated after
// every host call because other events may have run in between.
type TabCoordinator struct {
	registry  *homepage.Registry
	host      port.TabHost
	prefs     repository.HomepageRepository
	scheduler port.Scheduler
	observer  Observer

	newTabURLs    []string
	recoveryDelay time.Duration
	hintDelay     time.Duration
}

// NewTabCoordinator creates a coordinator owning registry.
func NewTabCoordinator(
	registry *homepage.Registry,
	host port.TabHost,
	prefs repository.HomepageRepository,
	scheduler port.Scheduler,
	opts CoordinatorOptions,
) *TabCoordinator {
	if opts.RecoveryDelay <= 0 {
		opts.RecoveryDelay = DefaultRecoveryDelay
	}
	if opts.HintDelay <= 0 {
		opts.HintDelay = DefaultHintDelay
	}
	if len(opts.NewTabURLs) == 0 {
		opts.NewTabURLs = homepage.DefaultNewTabURLs
	}

	return &TabCoordinator{
		registry:      registry,
		host:          host,
		prefs:         prefs,
		scheduler:     scheduler,
		newTabURLs:    opts.NewTabURLs,
		recoveryDelay: opts.RecoveryDelay,
		hintDelay:     opts.HintDelay,
	}
}

// SetObserver installs the event observer. Call before events flow.
func (c *TabCoordinator) SetObserver(o Observer) {
	c.observer = o
}

// SetRecoveryDelay changes the window-created recovery delay.
func (c *TabCoordinator) SetRecoveryDelay(d time.Duration) {
	if d > 0 {
		c.recoveryDelay = d
	}
}

// RecoveryDelay returns the current window-created recovery delay.
func (c *TabCoordinator) RecoveryDelay() time.Duration {
	return c.recoveryDelay
}

// State reports the tracking state. It performs a host lookup.
func (c *TabCoordinator) State(ctx context.Context) (homepage.TrackingState, entity.TabID) {
	state, tab := c.registry.Inspect(ctx)
	if tab == nil {
		return state, ""
	}
	return state, tab.ID
}

// HandleTabCreated reacts to a freshly created tab showing the native
// new-tab page: focus an open tab already showing the homepage and close
// the new one, or load the homepage into it.
func (c *TabCoordinator) HandleTabCreated(ctx context.Context, tab *entity.Tab) {
	if tab == nil || !c.isNewTab(tab) {
		return
	}
	log := logging.FromContext(ctx)

	pref, ok := c.preference(ctx)
	if !ok {
		log.Debug().Str("tab_id", string(tab.ID)).Msg("no homepage set, leaving new tab alone")
		return
	}

	tabs, err := c.host.QueryTabs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to query tabs for new tab")
		return
	}

	existing, found := lo.Find(tabs, func(t *entity.Tab) bool {
		return t != nil &&
			t.ID != tab.ID &&
			t.PendingURL == "" &&
			strings.Contains(t.URL, pref)
	})

	if found {
		log.Debug().
			Str("tab_id", string(tab.ID)).
			Str("existing_tab_id", string(existing.ID)).
			Msg("homepage already open, focusing it")

		if err := c.host.ActivateTab(ctx, existing.ID); err != nil {
			log.Warn().Err(err).Str("tab_id", string(existing.ID)).Msg("failed to activate homepage tab")
		}
		if err := c.host.CloseTab(ctx, tab.ID); err != nil {
			log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("failed to close new tab")
		}
		c.observer.emit(EventFocused, existing.ID, existing.URL, "new tab closed")
		return
	}

	target := homepage.FormatURL(pref)
	if err := c.host.NavigateTab(ctx, tab.ID, target); err != nil {
		log.Warn().Err(err).Str("tab_id", string(tab.ID)).Str("url", target).Msg("failed to load homepage into new tab")
		return
	}
	c.observer.emit(EventRedirected, tab.ID, target, "new tab")
}

// CheckRedirectStatus answers a new-tab page's redirect request.
//
// While a homepage tab is tracked the requester is told to focus it, and
// to reset it when it has navigated away. Otherwise, with a preference set,
// an untracked requester is claimed optimistically and told to redirect to
// the marked homepage URL.
func (c *TabCoordinator) CheckRedirectStatus(ctx context.Context, sender *entity.Tab) RedirectDecision {
	log := logging.FromContext(ctx)
	pref, hasPref := c.preference(ctx)
	decision := RedirectDecision{HintDelayMs: c.hintDelay.Milliseconds()}

	if _, tracked := c.registry.Current(); tracked && sender != nil && c.isNewTab(sender) {
		state, tab := c.registry.Inspect(ctx)
		switch state {
		case homepage.StateTrackedStale:
			decision.FocusExistingTab = true
			decision.HomepageTabID = tab.ID
			if hasPref {
				decision.ResetURL = true
				decision.ResetToURL = homepage.MarkHomepage(pref)
			}
			// A tab without the marker is no longer the homepage tab. The
			// reset brings it back through navigation-completed adoption.
			c.registry.Clear()
			c.observer.emit(EventCleared, tab.ID, tab.URL, "lost marker")
			log.Debug().Str("homepage_tab_id", string(tab.ID)).Msg("homepage tab navigated away, focusing and resetting it")
			return decision
		case homepage.StateTrackedValid:
			decision.FocusExistingTab = true
			decision.HomepageTabID = tab.ID
			log.Debug().Str("homepage_tab_id", string(tab.ID)).Msg("homepage tab open, focusing it")
			return decision
		}
		// Tracked tab is gone; treat the requester like any other.
	}

	if !hasPref {
		return decision
	}

	if sender != nil {
		if _, tracked := c.registry.Current(); !tracked {
			c.registry.Set(sender.ID)
			c.observer.emit(EventTracked, sender.ID, sender.URL, "claimed by redirect")
		}
	}

	decision.ShouldRedirect = true
	decision.RedirectURL = homepage.MarkHomepage(pref)
	return decision
}

// FocusExistingTab carries out a focus decision on behalf of the new-tab
// page that received it: activate the homepage tab, raise its window,
// reset its URL when asked and close the requesting page.
func (c *TabCoordinator) FocusExistingTab(ctx context.Context, requester *entity.Tab, d RedirectDecision) error {
	if !d.FocusExistingTab || d.HomepageTabID == "" {
		return nil
	}
	log := logging.FromContext(ctx)

	// Raising the window re-activates its visible tab, so the window goes
	// first and the homepage tab is activated last.
	tab, err := c.host.GetTab(ctx, d.HomepageTabID)
	if err != nil {
		log.Debug().Err(err).Str("tab_id", string(d.HomepageTabID)).Msg("homepage tab not found before focusing")
	} else if err := c.host.FocusWindow(ctx, tab.WindowID); err != nil {
		log.Warn().Err(err).Int64("window_id", int64(tab.WindowID)).Msg("failed to focus homepage window")
	}

	if err := c.host.ActivateTab(ctx, d.HomepageTabID); err != nil {
		return err
	}

	if d.ResetURL && d.ResetToURL != "" {
		if err := c.host.NavigateTab(ctx, d.HomepageTabID, d.ResetToURL); err != nil {
			log.Warn().Err(err).Str("tab_id", string(d.HomepageTabID)).Msg("failed to reset homepage tab")
		} else {
			c.observer.emit(EventReset, d.HomepageTabID, d.ResetToURL, "")
		}
	}

	// The requester is the homepage tab itself when it was sent back to the
	// new-tab page; closing it would lose the homepage.
	if requester != nil && requester.ID != d.HomepageTabID {
		if err := c.host.CloseTab(ctx, requester.ID); err != nil {
			log.Warn().Err(err).Str("tab_id", string(requester.ID)).Msg("failed to close new tab")
		}
	}

	c.observer.emit(EventFocused, d.HomepageTabID, d.ResetToURL, "")
	return nil
}

// HandleNavigationCompleted reacts to a finished page load in any tab.
func (c *TabCoordinator) HandleNavigationCompleted(ctx context.Context, tab *entity.Tab) {
	if tab == nil {
		return
	}
	log := logging.FromContext(ctx)

	if c.registry.IsTracked(tab.ID) {
		if !homepage.HasMarker(tab.URL) {
			log.Debug().Str("tab_id", string(tab.ID)).Str("url", tab.URL).Msg("homepage tab left the homepage")
			c.registry.Clear()
			c.observer.emit(EventCleared, tab.ID, tab.URL, "navigated away")
			return
		}
		if tab.Active {
			c.restoreFocus(ctx, tab.ID)
		}
		return
	}

	if !homepage.HasMarker(tab.URL) {
		return
	}
	if _, tracked := c.registry.Current(); tracked {
		// Another homepage tab is already tracked; this one stays an orphan.
		log.Debug().Str("tab_id", string(tab.ID)).Msg("ignoring second marked tab")
		return
	}

	c.registry.Set(tab.ID)
	c.observer.emit(EventTracked, tab.ID, tab.URL, "adopted on load")
	if tab.Active {
		c.restoreFocus(ctx, tab.ID)
	}
}

// HandleWindowCreated schedules a registry recovery once the browser had
// time to restore the window's tabs.
func (c *TabCoordinator) HandleWindowCreated(ctx context.Context, id entity.WindowID) {
	logging.FromContext(ctx).Debug().
		Int64("window_id", int64(id)).
		Dur("delay", c.recoveryDelay).
		Msg("window created, scheduling homepage tab recovery")

	c.scheduler.AfterFunc(c.recoveryDelay, recoverTaskName, c.Recover)
}

// Recover re-validates the tracked tab and, if that fails, adopts the first
// marked tab among the open ones.
func (c *TabCoordinator) Recover(ctx context.Context) {
	log := logging.FromContext(ctx)

	if c.registry.Validate(ctx).Valid {
		return
	}

	tabs, err := c.host.QueryTabs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to query tabs for recovery")
		return
	}

	if c.registry.ScanAndAdopt(ctx, tabs) {
		id, _ := c.registry.Current()
		log.Info().Str("tab_id", string(id)).Msg("recovered homepage tab")
		c.observer.emit(EventRecovered, id, "", "")
		return
	}
	log.Debug().Msg("no homepage tab to recover")
}

// GetConstants returns the values the page script needs.
func (c *TabCoordinator) GetConstants() Constants {
	return Constants{Marker: homepage.Marker, HintDelayMs: c.hintDelay.Milliseconds()}
}

// MarkAsHomepageTab tracks the sender unconditionally.
func (c *TabCoordinator) MarkAsHomepageTab(_ context.Context, sender *entity.Tab) MarkResult {
	if sender == nil {
		return MarkResult{Error: ErrNotFromTab.Error()}
	}
	if !c.registry.IsTracked(sender.ID) {
		c.observer.emit(EventTracked, sender.ID, sender.URL, "registered by page")
	}
	c.registry.Set(sender.ID)
	return MarkResult{Success: true, TabID: sender.ID}
}

// IsHomepageTabOpen reports whether the tracked tab still exists. It does
// not check the marker.
func (c *TabCoordinator) IsHomepageTabOpen(ctx context.Context) OpenStatus {
	id, ok := c.registry.Current()
	if !ok {
		return OpenStatus{}
	}

	tab, err := c.host.GetTab(ctx, id)
	if err != nil || tab == nil {
		if c.registry.IsTracked(id) {
			c.registry.Clear()
			c.observer.emit(EventCleared, id, "", "closed")
		}
		return OpenStatus{}
	}
	return OpenStatus{Exists: true, TabID: id}
}

// TabUpdated stops tracking the sender when it reports a URL without the
// marker.
func (c *TabCoordinator) TabUpdated(_ context.Context, sender *entity.Tab) Ack {
	if sender == nil {
		return Ack{}
	}
	if c.registry.IsTracked(sender.ID) && !homepage.HasMarker(sender.URL) {
		c.registry.Clear()
		c.observer.emit(EventCleared, sender.ID, sender.URL, "page reported navigation")
	}
	return Ack{Success: true}
}

// restoreFocus raises the tab's window, activates the tab and asks the page
// to focus its document, unless the user is typing into it.
func (c *TabCoordinator) restoreFocus(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(ctx)

	tab, err := c.host.GetTab(ctx, id)
	if err != nil {
		log.Debug().Err(err).Str("tab_id", string(id)).Msg("tab gone before focus restore")
		return
	}

	typing, err := c.host.IsUserTyping(ctx, id)
	if err != nil {
		log.Debug().Err(err).Str("tab_id", string(id)).Msg("could not read typing state")
	}
	if typing {
		log.Debug().Str("tab_id", string(id)).Msg("user is typing, not stealing focus")
		return
	}

	if err := c.host.FocusWindow(ctx, tab.WindowID); err != nil {
		log.Warn().Err(err).Int64("window_id", int64(tab.WindowID)).Msg("failed to focus window")
	}
	if err := c.host.ActivateTab(ctx, id); err != nil {
		log.Warn().Err(err).Str("tab_id", string(id)).Msg("failed to activate tab")
	}
	if err := c.host.RequestPageFocus(ctx, id); err != nil {
		log.Debug().Err(err).Str("tab_id", string(id)).Msg("page did not take focus")
	}
	c.observer.emit(EventFocused, id, tab.URL, "focus restored")
}

func (c *TabCoordinator) preference(ctx context.Context) (string, bool) {
	pref, err := c.prefs.Get(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read homepage preference")
		return "", false
	}
	pref = strings.TrimSpace(pref)
	return pref, pref != ""
}

func (c *TabCoordinator) isNewTab(tab *entity.Tab) bool {
	return homepage.IsNewTabURL(tab.EffectiveURL(), c.newTabURLs...) ||
		homepage.IsNewTabURL(tab.URL, c.newTabURLs...)
}
