package devtools

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/logging"
)

// tabSession is an attached page target.
type tabSession struct {
	id     target.ID
	ctx    context.Context
	cancel context.CancelFunc
}

// sessionTable owns the per-tab chromedp contexts.
type sessionTable struct {
	browserCtx context.Context
	binding    string
	script     string
	timeout    time.Duration

	onLoad    func(id target.ID)
	onBinding func(id target.ID, payload string)

	mu       sync.Mutex
	sessions map[target.ID]*tabSession
}

func newSessionTable(browserCtx context.Context, binding, script string, timeout time.Duration) *sessionTable {
	return &sessionTable{
		browserCtx: browserCtx,
		binding:    binding,
		script:     script,
		timeout:    timeout,
		sessions:   make(map[target.ID]*tabSession),
	}
}

// attach opens a session on id, installs the binding and page script and
// starts listening for page events. Attaching twice is a no-op.
func (t *sessionTable) attach(ctx context.Context, id target.ID) error {
	t.mu.Lock()
	if _, ok := t.sessions[id]; ok {
		t.mu.Unlock()
		return nil
	}
	// Sessions outlive the bridge: cancelling a tab context closes the tab.
	sctx, cancel := chromedp.NewContext(context.WithoutCancel(t.browserCtx), chromedp.WithTargetID(id))
	sess := &tabSession{id: id, ctx: sctx, cancel: cancel}
	t.sessions[id] = sess
	t.mu.Unlock()

	chromedp.ListenTarget(sctx, func(ev any) {
		switch ev := ev.(type) {
		case *page.EventLoadEventFired:
			if t.onLoad != nil {
				t.onLoad(id)
			}
		case *cdpruntime.EventBindingCalled:
			if ev.Name == t.binding && t.onBinding != nil {
				t.onBinding(id, ev.Payload)
			}
		}
	})

	// The first run attaches and must use the session context itself: the
	// target's event loop lives as long as the context it was attached with.
	if err := chromedp.Run(sctx); err != nil {
		t.forget(id)
		return fmt.Errorf("attach %s: %w", id, err)
	}

	err := t.run(ctx, sess, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := cdpruntime.AddBinding(t.binding).Do(ctx); err != nil {
			return fmt.Errorf("add binding: %w", err)
		}
		if _, err := page.AddScriptToEvaluateOnNewDocument(t.script).Do(ctx); err != nil {
			return fmt.Errorf("add page script: %w", err)
		}
		return nil
	}), chromedp.Evaluate(t.script, nil, chromedp.EvalIgnoreExceptions))
	if err != nil {
		// Keep the session: the tab can still be activated and navigated.
		return fmt.Errorf("install page script on %s: %w", id, err)
	}

	logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("attached to tab")
	return nil
}

// detach forgets id. The target is already gone, so the session context is
// released in the background.
func (t *sessionTable) detach(id target.ID) {
	if sess := t.forget(id); sess != nil {
		go sess.cancel()
	}
}

func (t *sessionTable) forget(id target.ID) *tabSession {
	t.mu.Lock()
	defer t.mu.Unlock()
	sess, ok := t.sessions[id]
	if !ok {
		return nil
	}
	delete(t.sessions, id)
	return sess
}

func (t *sessionTable) get(id target.ID) (*tabSession, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	sess, ok := t.sessions[id]
	return sess, ok
}

func (t *sessionTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// runIn runs actions in the session of tab id.
func (t *sessionTable) runIn(ctx context.Context, id entity.TabID, actions ...chromedp.Action) error {
	sess, ok := t.get(target.ID(id))
	if !ok {
		return port.ErrTabNotFound
	}
	return t.run(ctx, sess, actions...)
}

// run bounds actions by the action timeout and by ctx, without tying the
// session itself to either.
func (t *sessionTable) run(ctx context.Context, sess *tabSession, actions ...chromedp.Action) error {
	rctx, cancel := context.WithTimeout(sess.ctx, t.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(rctx, actions...)
}
