package devtools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bnema/takemehome/internal/app/dispatch"
	"github.com/bnema/takemehome/internal/app/messaging"
	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/logging"
)

const windowCacheSize = 64

// ErrBrowserClosed is returned by Run when the browser connection drops.
var ErrBrowserClosed = errors.New("browser connection closed")

var errBusy = errors.New("event queue full")

// Coordinator receives browser events on the dispatcher goroutine.
type Coordinator interface {
	HandleTabCreated(ctx context.Context, tab *entity.Tab)
	HandleNavigationCompleted(ctx context.Context, tab *entity.Tab)
	HandleWindowCreated(ctx context.Context, id entity.WindowID)
	Recover(ctx context.Context)
}

// Poster queues work onto the event loop.
type Poster interface {
	Post(name string, fn dispatch.Task) bool
}

// BridgeOptions configures a bridge.
type BridgeOptions struct {
	Script        string
	ActionTimeout time.Duration
}

// Bridge turns browser events and page messages into coordinator calls
// posted on the event loop, and sends responses back to the pages.
type Bridge struct {
	browser  *Browser
	sessions *sessionTable
	host     *Host

	tabs    port.TabHost
	attach  func(ctx context.Context, id target.ID) error
	reply   func(ctx context.Context, id entity.TabID, resp messaging.Response) error
	windows *lru.Cache[entity.WindowID, struct{}]

	coord  Coordinator
	router *messaging.Router
	poster Poster

	runMu  sync.Mutex
	runCtx context.Context
}

// NewBridge prepares a bridge on an open browser. Host is usable
// immediately; events flow once Run is called.
func NewBridge(b *Browser, opts BridgeOptions) (*Bridge, error) {
	timeout := opts.ActionTimeout
	if timeout <= 0 {
		timeout = b.opts.actionTimeout()
	}
	sessions := newSessionTable(b.Context(), messaging.BindingName, opts.Script, timeout)
	host := newHost(b.Context(), sessions, timeout)

	br, err := newBridge(host)
	if err != nil {
		return nil, err
	}
	br.browser = b
	br.sessions = sessions
	br.host = host
	br.attach = sessions.attach
	br.reply = br.evaluateReply

	sessions.onLoad = func(id target.ID) { br.spawn(func(ctx context.Context) { br.onLoad(ctx, entity.TabID(id)) }) }
	sessions.onBinding = func(id target.ID, payload string) {
		br.spawn(func(ctx context.Context) { br.onMessage(ctx, entity.TabID(id), payload) })
	}
	return br, nil
}

func newBridge(tabs port.TabHost) (*Bridge, error) {
	windows, err := lru.New[entity.WindowID, struct{}](windowCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create window cache: %w", err)
	}
	return &Bridge{tabs: tabs, windows: windows}, nil
}

// Host returns the tab host backed by this browser.
func (b *Bridge) Host() *Host {
	return b.host
}

// Attached reports how many tabs have a live session.
func (b *Bridge) Attached() int {
	if b.sessions == nil {
		return 0
	}
	return b.sessions.len()
}

// Wire sets the event consumers. Call before Run.
func (b *Bridge) Wire(coord Coordinator, router *messaging.Router, poster Poster) {
	b.coord = coord
	b.router = router
	b.poster = poster
}

// Run attaches to every open page, queues a startup recovery and forwards
// events until ctx is done or the browser goes away.
func (b *Bridge) Run(ctx context.Context) error {
	if b.coord == nil || b.router == nil || b.poster == nil {
		return errors.New("bridge is not wired")
	}
	ctx = logging.WithComponent(ctx, "bridge")
	log := logging.FromContext(ctx)

	b.runMu.Lock()
	b.runCtx = ctx
	b.runMu.Unlock()

	lctx, cancel := context.WithCancel(b.browser.Context())
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	chromedp.ListenBrowser(lctx, func(ev any) {
		switch ev := ev.(type) {
		case *target.EventTargetCreated:
			if ev.TargetInfo != nil && ev.TargetInfo.Type == pageTargetType {
				id := entity.TabID(ev.TargetInfo.TargetID)
				b.spawn(func(ctx context.Context) { b.onTabCreated(ctx, id) })
			}
		case *target.EventTargetDestroyed:
			b.sessions.detach(ev.TargetID)
		}
	})

	tabs, err := b.tabs.QueryTabs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list open tabs: %w", err)
	}
	for _, tab := range tabs {
		b.noteWindow(tab.WindowID)
		if err := b.attach(ctx, target.ID(tab.ID)); err != nil {
			log.Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("failed to attach to tab")
		}
	}
	log.Info().Int("tabs", len(tabs)).Int("attached", b.Attached()).Msg("bridge attached to open tabs")

	b.post(ctx, "startup-recover", b.coord.Recover)

	select {
	case <-ctx.Done():
		return nil
	case <-b.browser.Done():
		return ErrBrowserClosed
	}
}

// spawn runs fn off the listener goroutine. CDP listeners must not block.
func (b *Bridge) spawn(fn func(ctx context.Context)) {
	b.runMu.Lock()
	ctx := b.runCtx
	b.runMu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}
	go fn(ctx)
}

func (b *Bridge) post(ctx context.Context, name string, fn dispatch.Task) bool {
	if b.poster.Post(name, fn) {
		return true
	}
	logging.FromContext(ctx).Warn().Str("event", name).Msg("event loop full, dropping event")
	return false
}

// noteWindow records id and reports whether it was seen for the first time.
func (b *Bridge) noteWindow(id entity.WindowID) bool {
	if id == 0 {
		return false
	}
	found, _ := b.windows.ContainsOrAdd(id, struct{}{})
	return !found
}

func (b *Bridge) onTabCreated(ctx context.Context, id entity.TabID) {
	log := logging.FromContext(logging.WithTabID(ctx, string(id)))

	if err := b.attach(ctx, target.ID(id)); err != nil {
		log.Debug().Err(err).Msg("page script not installed in new tab")
	}

	tab, err := b.tabs.GetTab(ctx, id)
	if err != nil {
		log.Debug().Err(err).Msg("new tab vanished before it could be inspected")
		return
	}

	if b.noteWindow(tab.WindowID) {
		win := tab.WindowID
		b.post(ctx, "window-created", func(ctx context.Context) {
			b.coord.HandleWindowCreated(ctx, win)
		})
	}
	b.post(ctx, "tab-created", func(ctx context.Context) {
		b.coord.HandleTabCreated(ctx, tab)
	})
}

func (b *Bridge) onLoad(ctx context.Context, id entity.TabID) {
	tab, err := b.tabs.GetTab(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("tab_id", string(id)).Msg("loaded tab vanished")
		return
	}
	b.post(ctx, "navigation-completed", func(ctx context.Context) {
		b.coord.HandleNavigationCompleted(ctx, tab)
	})
}

func (b *Bridge) onMessage(ctx context.Context, id entity.TabID, payload string) {
	log := logging.FromContext(logging.WithTabID(ctx, string(id)))

	msg, err := messaging.DecodeMessage(payload)
	if err != nil {
		log.Warn().Err(err).Msg("dropping malformed page message")
		return
	}

	sender, err := b.tabs.GetTab(ctx, id)
	if err != nil {
		b.send(ctx, id, messaging.NewErrorResponse(msg.RequestID, err))
		return
	}

	if b.router.IsConcurrent(msg.Action) {
		b.send(ctx, id, b.router.Dispatch(ctx, sender, msg))
		return
	}

	posted := b.post(ctx, "message:"+msg.Action, func(loopCtx context.Context) {
		resp := b.router.Dispatch(loopCtx, sender, msg)
		// Replies evaluate in the page; keep that off the loop.
		go b.send(ctx, id, resp)
	})
	if !posted {
		b.send(ctx, id, messaging.NewErrorResponse(msg.RequestID, errBusy))
	}
}

func (b *Bridge) send(ctx context.Context, id entity.TabID, resp messaging.Response) {
	if err := b.reply(ctx, id, resp); err != nil {
		// Expected when the handler closed the requesting tab.
		logging.FromContext(ctx).Debug().Err(err).
			Str("tab_id", string(id)).
			Str("request_id", resp.RequestID).
			Msg("failed to deliver response")
	}
}

func (b *Bridge) evaluateReply(ctx context.Context, id entity.TabID, resp messaging.Response) error {
	expr, err := resolveExpression(resp)
	if err != nil {
		return err
	}
	return b.sessions.runIn(ctx, id, chromedp.Evaluate(expr, nil))
}

// resolveExpression builds the script that settles a pending page request.
func resolveExpression(resp messaging.Response) (string, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("encode response: %w", err)
	}
	return fmt.Sprintf("window.__takeMeHome && window.__takeMeHome.resolve(%s)", data), nil
}
