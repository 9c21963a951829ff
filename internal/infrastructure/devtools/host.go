package devtools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	"github.com/samber/lo"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/logging"
)

const pageTargetType = "page"

var errNoWindow = errors.New("no browser window")

// Page script entry points.
const (
	jsIsVisible       = `document.visibilityState === 'visible'`
	jsHasFocus        = `document.hasFocus()`
	jsEnsurePageFocus = `!!(window.__takeMeHome && window.__takeMeHome.ensurePageFocus())`
	jsIsUserTyping    = `!!(window.__takeMeHome && window.__takeMeHome.isUserTyping())`
)

// Host implements port.TabHost over the DevTools protocol.
type Host struct {
	browserCtx context.Context
	sessions   *sessionTable
	timeout    time.Duration
}

var _ port.TabHost = (*Host)(nil)

func newHost(browserCtx context.Context, sessions *sessionTable, timeout time.Duration) *Host {
	return &Host{browserCtx: browserCtx, sessions: sessions, timeout: timeout}
}

// browserExec returns a context that executes browser-level commands,
// bounded by the action timeout.
func (h *Host) browserExec(ctx context.Context) (context.Context, context.CancelFunc) {
	c := chromedp.FromContext(h.browserCtx)
	tctx, cancel := context.WithTimeout(ctx, h.timeout)
	if c == nil || c.Browser == nil {
		return tctx, cancel
	}
	return cdp.WithExecutor(tctx, c.Browser), cancel
}

// GetTab returns a fresh snapshot of tab id.
func (h *Host) GetTab(ctx context.Context, id entity.TabID) (*entity.Tab, error) {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()

	info, err := target.GetTargetInfo().WithTargetID(target.ID(id)).Do(bctx)
	if err != nil {
		if isNoTarget(err) {
			return nil, &port.HostError{Op: "get", TabID: id, Err: port.ErrTabNotFound}
		}
		return nil, &port.HostError{Op: "get", TabID: id, Err: err}
	}
	if info.Type != pageTargetType {
		return nil, &port.HostError{Op: "get", TabID: id, Err: port.ErrTabNotFound}
	}

	return h.snapshot(ctx, info), nil
}

// QueryTabs lists every open page.
func (h *Host) QueryTabs(ctx context.Context) ([]*entity.Tab, error) {
	infos, err := h.pageTargets(ctx)
	if err != nil {
		return nil, &port.HostError{Op: "query", Err: err}
	}
	tabs := make([]*entity.Tab, 0, len(infos))
	for _, info := range infos {
		tabs = append(tabs, h.snapshot(ctx, info))
	}
	return tabs, nil
}

// CurrentWindow returns the window of the page holding input focus, or the
// window of the first page when none does.
func (h *Host) CurrentWindow(ctx context.Context) (entity.WindowID, error) {
	infos, err := h.pageTargets(ctx)
	if err != nil {
		return 0, &port.HostError{Op: "current-window", Err: err}
	}
	if len(infos) == 0 {
		return 0, &port.HostError{Op: "current-window", Err: errNoWindow}
	}

	focused, ok := lo.Find(infos, func(info *target.Info) bool {
		var hasFocus bool
		err := h.sessions.runIn(ctx, entity.TabID(info.TargetID), chromedp.Evaluate(jsHasFocus, &hasFocus))
		return err == nil && hasFocus
	})
	if !ok {
		focused = infos[0]
	}

	win, err := h.windowFor(ctx, focused.TargetID)
	if err != nil {
		return 0, &port.HostError{Op: "current-window", TabID: entity.TabID(focused.TargetID), Err: err}
	}
	return win, nil
}

// ActivateTab brings the tab to the front of its window.
func (h *Host) ActivateTab(ctx context.Context, id entity.TabID) error {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()
	if err := target.ActivateTarget(target.ID(id)).Do(bctx); err != nil {
		return h.wrap("activate", id, err)
	}
	return nil
}

// FocusWindow restores the window from a minimized state and brings its
// visible tab to the front.
func (h *Host) FocusWindow(ctx context.Context, id entity.WindowID) error {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()

	bounds := &browser.Bounds{WindowState: browser.WindowStateNormal}
	if err := browser.SetWindowBounds(browser.WindowID(id), bounds).Do(bctx); err != nil {
		return &port.HostError{Op: "focus-window", Err: fmt.Errorf("window %d: %w", id, err)}
	}

	tabs, err := h.QueryTabs(ctx)
	if err != nil {
		return err
	}
	front, ok := lo.Find(tabs, func(t *entity.Tab) bool {
		return t.WindowID == id && t.Active
	})
	if !ok {
		return nil
	}
	return h.ActivateTab(ctx, front.ID)
}

// NavigateTab loads url in the tab without waiting for the load to finish.
func (h *Host) NavigateTab(ctx context.Context, id entity.TabID, url string) error {
	err := h.sessions.runIn(ctx, id, chromedp.ActionFunc(func(ctx context.Context) error {
		_, _, errorText, _, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		if errorText != "" {
			return fmt.Errorf("navigation failed: %s", errorText)
		}
		return nil
	}))
	if err != nil {
		return h.wrap("navigate", id, err)
	}
	return nil
}

// CreateTab opens url in a new foreground tab.
func (h *Host) CreateTab(ctx context.Context, url string) (entity.TabID, error) {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()
	id, err := target.CreateTarget(url).Do(bctx)
	if err != nil {
		return "", &port.HostError{Op: "create", Err: err}
	}
	return entity.TabID(id), nil
}

// CloseTab closes the tab.
func (h *Host) CloseTab(ctx context.Context, id entity.TabID) error {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()
	if err := target.CloseTarget(target.ID(id)).Do(bctx); err != nil {
		return h.wrap("close", id, err)
	}
	return nil
}

// RequestPageFocus asks the page script to focus the document.
func (h *Host) RequestPageFocus(ctx context.Context, id entity.TabID) error {
	var focused bool
	if err := h.sessions.runIn(ctx, id, chromedp.Evaluate(jsEnsurePageFocus, &focused)); err != nil {
		return h.wrap("focus-page", id, err)
	}
	if !focused {
		return &port.HostError{Op: "focus-page", TabID: id, Err: errors.New("page declined focus")}
	}
	return nil
}

// IsUserTyping reports whether a filled text input holds focus in the tab.
func (h *Host) IsUserTyping(ctx context.Context, id entity.TabID) (bool, error) {
	var typing bool
	if err := h.sessions.runIn(ctx, id, chromedp.Evaluate(jsIsUserTyping, &typing)); err != nil {
		return false, h.wrap("typing", id, err)
	}
	return typing, nil
}

func (h *Host) pageTargets(ctx context.Context) ([]*target.Info, error) {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()
	infos, err := target.GetTargets().Do(bctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(infos, func(info *target.Info, _ int) bool {
		return info != nil && info.Type == pageTargetType
	}), nil
}

func (h *Host) windowFor(ctx context.Context, id target.ID) (entity.WindowID, error) {
	bctx, cancel := h.browserExec(ctx)
	defer cancel()
	win, _, err := browser.GetWindowForTarget().WithTargetID(id).Do(bctx)
	if err != nil {
		return 0, err
	}
	return entity.WindowID(win), nil
}

// snapshot converts target info into a tab. Window and visibility lookups
// are best effort.
func (h *Host) snapshot(ctx context.Context, info *target.Info) *entity.Tab {
	tab := &entity.Tab{ID: entity.TabID(info.TargetID), URL: info.URL}

	if win, err := h.windowFor(ctx, info.TargetID); err == nil {
		tab.WindowID = win
	} else {
		logging.FromContext(ctx).Trace().Err(err).Str("tab_id", string(info.TargetID)).Msg("no window for tab")
	}

	var visible bool
	if err := h.sessions.runIn(ctx, tab.ID, chromedp.Evaluate(jsIsVisible, &visible)); err == nil {
		tab.Active = visible
	}
	return tab
}

func (h *Host) wrap(op string, id entity.TabID, err error) error {
	if errors.Is(err, port.ErrTabNotFound) || isNoTarget(err) {
		err = port.ErrTabNotFound
	}
	return &port.HostError{Op: op, TabID: id, Err: err}
}

// isNoTarget matches the browser's error for an unknown target ID.
func isNoTarget(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no target with given id") ||
		strings.Contains(msg, "no tab with given id")
}
