package devtools

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/chromedp/cdproto/target"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/app/dispatch"
	"github.com/bnema/takemehome/internal/app/messaging"
	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/application/port/mocks"
	"github.com/bnema/takemehome/internal/domain/entity"
)

type recordingCoordinator struct {
	mu    sync.Mutex
	calls []string
	tabs  []*entity.Tab
}

func (c *recordingCoordinator) record(call string, tab *entity.Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
	c.tabs = append(c.tabs, tab)
}

func (c *recordingCoordinator) HandleTabCreated(_ context.Context, tab *entity.Tab) {
	c.record("tab-created", tab)
}

func (c *recordingCoordinator) HandleNavigationCompleted(_ context.Context, tab *entity.Tab) {
	c.record("navigation-completed", tab)
}

func (c *recordingCoordinator) HandleWindowCreated(context.Context, entity.WindowID) {
	c.record("window-created", nil)
}

func (c *recordingCoordinator) Recover(context.Context) {
	c.record("recover", nil)
}

// inlinePoster runs tasks on the caller's goroutine.
type inlinePoster struct {
	reject bool
	names  []string
}

func (p *inlinePoster) Post(name string, fn dispatch.Task) bool {
	if p.reject {
		return false
	}
	p.names = append(p.names, name)
	fn(context.Background())
	return true
}

type bridgeFixture struct {
	bridge   *Bridge
	tabs     *mocks.MockTabHost
	coord    *recordingCoordinator
	poster   *inlinePoster
	router   *messaging.Router
	replies  chan messaging.Response
	attached []target.ID
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()
	f := &bridgeFixture{
		tabs:    mocks.NewMockTabHost(t),
		coord:   &recordingCoordinator{},
		poster:  &inlinePoster{},
		router:  messaging.NewRouter(),
		replies: make(chan messaging.Response, 4),
	}

	br, err := newBridge(f.tabs)
	require.NoError(t, err)
	br.attach = func(_ context.Context, id target.ID) error {
		f.attached = append(f.attached, id)
		return nil
	}
	br.reply = func(_ context.Context, _ entity.TabID, resp messaging.Response) error {
		f.replies <- resp
		return nil
	}
	br.Wire(f.coord, f.router, f.poster)
	f.bridge = br
	return f
}

func (f *bridgeFixture) nextReply(t *testing.T) messaging.Response {
	t.Helper()
	select {
	case resp := <-f.replies:
		return resp
	case <-time.After(time.Second):
		t.Fatal("no response delivered")
		return messaging.Response{}
	}
}

func TestBridge_TabCreatedInNewWindow(t *testing.T) {
	ctx := testContext()
	f := newBridgeFixture(t)

	first := &entity.Tab{ID: "tab-1", WindowID: 7, URL: "chrome://newtab/"}
	second := &entity.Tab{ID: "tab-2", WindowID: 7, URL: "chrome://newtab/"}
	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).Return(first, nil).Once()
	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-2")).Return(second, nil).Once()

	f.bridge.onTabCreated(ctx, "tab-1")
	f.bridge.onTabCreated(ctx, "tab-2")

	assert.Equal(t, []target.ID{"tab-1", "tab-2"}, f.attached)
	assert.Equal(t, []string{"window-created", "tab-created", "tab-created"}, f.coord.calls)
	assert.Same(t, first, f.coord.tabs[1])
	assert.Same(t, second, f.coord.tabs[2])
}

func TestBridge_TabCreatedVanished(t *testing.T) {
	ctx := testContext()
	f := newBridgeFixture(t)

	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).
		Return(nil, &port.HostError{Op: "get", TabID: "tab-1", Err: port.ErrTabNotFound})

	f.bridge.onTabCreated(ctx, "tab-1")

	assert.Empty(t, f.coord.calls)
	assert.Empty(t, f.poster.names)
}

func TestBridge_LoadPostsNavigationCompleted(t *testing.T) {
	ctx := testContext()
	f := newBridgeFixture(t)

	tab := &entity.Tab{ID: "tab-1", WindowID: 1, URL: "https://example.com/"}
	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).Return(tab, nil)

	f.bridge.onLoad(ctx, "tab-1")

	require.Equal(t, []string{"navigation-completed"}, f.coord.calls)
	assert.Same(t, tab, f.coord.tabs[0])
}

func TestBridge_NoteWindow(t *testing.T) {
	f := newBridgeFixture(t)

	assert.False(t, f.bridge.noteWindow(0))
	assert.True(t, f.bridge.noteWindow(3))
	assert.False(t, f.bridge.noteWindow(3))
	assert.True(t, f.bridge.noteWindow(4))
}

func TestBridge_MessageRunsOnLoop(t *testing.T) {
	ctx := testContext()
	f := newBridgeFixture(t)

	sender := &entity.Tab{ID: "tab-1", URL: "chrome://newtab/"}
	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).Return(sender, nil)

	var seen *entity.Tab
	require.NoError(t, f.router.RegisterHandler("ping", messaging.HandlerFunc(
		func(_ context.Context, s *entity.Tab, _ json.RawMessage) (any, error) {
			seen = s
			return "pong", nil
		})))

	f.bridge.onMessage(ctx, "tab-1", `{"requestId":"r1","action":"ping"}`)

	resp := f.nextReply(t)
	assert.True(t, resp.Success)
	assert.Equal(t, "r1", resp.RequestID)
	assert.Equal(t, "pong", resp.Data)
	assert.Same(t, sender, seen)
	assert.Equal(t, []string{"message:ping"}, f.poster.names)
}

func TestBridge_ConcurrentMessageSkipsLoop(t *testing.T) {
	ctx := testContext()
	f := newBridgeFixture(t)

	f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).Return(&entity.Tab{ID: "tab-1"}, nil)
	require.NoError(t, f.router.RegisterConcurrentHandler("click", messaging.HandlerFunc(
		func(context.Context, *entity.Tab, json.RawMessage) (any, error) {
			return "ok", nil
		})))

	f.bridge.onMessage(ctx, "tab-1", `{"requestId":"r2","action":"click"}`)

	resp := f.nextReply(t)
	assert.True(t, resp.Success)
	assert.Empty(t, f.poster.names)
}

func TestBridge_MessageErrors(t *testing.T) {
	t.Run("malformed payload is dropped", func(t *testing.T) {
		f := newBridgeFixture(t)

		f.bridge.onMessage(testContext(), "tab-1", `{not json`)

		assert.Empty(t, f.replies)
	})

	t.Run("sender lookup fails", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).
			Return(nil, &port.HostError{Op: "get", TabID: "tab-1", Err: port.ErrTabNotFound})

		f.bridge.onMessage(testContext(), "tab-1", `{"requestId":"r3","action":"ping"}`)

		resp := f.nextReply(t)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, port.ErrTabNotFound.Error())
	})

	t.Run("loop full", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.poster.reject = true
		f.tabs.EXPECT().GetTab(mock.Anything, entity.TabID("tab-1")).Return(&entity.Tab{ID: "tab-1"}, nil)

		f.bridge.onMessage(testContext(), "tab-1", `{"requestId":"r4","action":"ping"}`)

		resp := f.nextReply(t)
		assert.False(t, resp.Success)
		assert.Equal(t, errBusy.Error(), resp.Error)
	})
}

func TestBridge_RunRequiresWiring(t *testing.T) {
	br, err := newBridge(mocks.NewMockTabHost(t))
	require.NoError(t, err)

	err = br.Run(testContext())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrBrowserClosed))
}

func TestBridge_AttachedCountsSessions(t *testing.T) {
	br, err := newBridge(mocks.NewMockTabHost(t))
	require.NoError(t, err)
	assert.Zero(t, br.Attached(), "no session table yet")

	br.sessions = newSessionTable(context.Background(), messaging.BindingName, "", time.Second)
	assert.Zero(t, br.Attached())
}
