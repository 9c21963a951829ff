package model

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/cli/styles"
	"github.com/bnema/takemehome/internal/domain/entity"
)

func newTestMonitor(t *testing.T) (MonitorModel, chan usecase.Event) {
	t.Helper()
	ch := make(chan usecase.Event, 4)
	return NewMonitorModel(styles.NewTheme(), "https://example.com/", ch), ch
}

func update(t *testing.T, m MonitorModel, msg tea.Msg) (MonitorModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(MonitorModel)
	require.True(t, ok)
	return out, cmd
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func event(kind usecase.EventKind, id string) EventMsg {
	return EventMsg(usecase.Event{Kind: kind, TabID: entity.TabID("tab-" + id), At: time.Now()})
}

func TestMonitor_WaitForEvent(t *testing.T) {
	ch := make(chan usecase.Event, 1)
	ch <- usecase.Event{Kind: usecase.EventRedirected}

	msg := WaitForEvent(ch)()
	ev, ok := msg.(EventMsg)
	require.True(t, ok)
	assert.Equal(t, usecase.EventRedirected, ev.Kind)

	close(ch)
	assert.IsType(t, SourceClosedMsg{}, WaitForEvent(ch)())
}

func TestMonitor_TracksHomepageTab(t *testing.T) {
	m, _ := newTestMonitor(t)

	m, cmd := update(t, m, event(usecase.EventTracked, "1"))
	assert.NotNil(t, cmd, "keeps listening")
	assert.Equal(t, "tab-1", string(m.Tracked()))

	m, _ = update(t, m, event(usecase.EventCleared, "2"))
	assert.Equal(t, "tab-1", string(m.Tracked()), "clearing another tab is ignored")

	m, _ = update(t, m, event(usecase.EventCleared, "1"))
	assert.Empty(t, m.Tracked())
	assert.Len(t, m.Events(), 3)
}

func TestMonitor_PauseHoldsEvents(t *testing.T) {
	m, _ := newTestMonitor(t)

	m, _ = update(t, m, keyMsg("p"))
	require.True(t, m.Paused())

	m, _ = update(t, m, event(usecase.EventRedirected, "1"))
	m, _ = update(t, m, event(usecase.EventTracked, "1"))
	assert.Empty(t, m.Events())
	assert.Equal(t, "tab-1", string(m.Tracked()), "header stays current while paused")
	assert.Contains(t, m.View(), "2 held")

	m, _ = update(t, m, keyMsg("p"))
	assert.False(t, m.Paused())
	assert.Len(t, m.Events(), 2)
}

func TestMonitor_ClearAndQuit(t *testing.T) {
	m, _ := newTestMonitor(t)
	m, _ = update(t, m, event(usecase.EventFocused, "1"))

	m, _ = update(t, m, keyMsg("c"))
	assert.Empty(t, m.Events())

	_, cmd := update(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMonitor_Backlog(t *testing.T) {
	m, _ := newTestMonitor(t)
	for i := 0; i < monitorBacklog+10; i++ {
		m, _ = update(t, m, event(usecase.EventRedirected, "x"))
	}
	assert.Len(t, m.Events(), monitorBacklog)
}

func TestMonitor_View(t *testing.T) {
	m, _ := newTestMonitor(t)
	assert.Contains(t, m.View(), "Waiting for tab events")

	m, _ = update(t, m, EventMsg(usecase.Event{
		Kind:   usecase.EventRedirected,
		TabID:  "tab-9",
		URL:    "https://example.com/?TakeMeHomeSameTab=true",
		Detail: "new tab",
		At:     time.Now(),
	}))
	m, _ = update(t, m, DaemonErrMsg{Err: errors.New("browser closed")})
	m, _ = update(t, m, SourceClosedMsg{})

	view := m.View()
	assert.Contains(t, view, "https://example.com/")
	assert.Contains(t, view, "tab-9")
	assert.Contains(t, view, "1 redirected")
	assert.Contains(t, view, "stopped")
	assert.Contains(t, view, "browser closed")
}
