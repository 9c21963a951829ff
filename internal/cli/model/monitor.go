package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/cli/styles"
	"github.com/bnema/takemehome/internal/domain/entity"
)

const monitorBacklog = 500

// EventMsg carries one coordinator event into the monitor.
type EventMsg usecase.Event

// SourceClosedMsg is sent once the event channel is closed.
type SourceClosedMsg struct{}

// DaemonErrMsg reports that the daemon stopped with an error.
type DaemonErrMsg struct{ Err error }

// MonitorModel shows coordinator events as they happen.
type MonitorModel struct {
	theme  *styles.Theme
	keys   styles.MonitorKeyMap
	help   help.Model
	source <-chan usecase.Event

	homepage string
	tracked  entity.TabID
	events   []usecase.Event
	counts   map[usecase.EventKind]int
	offset   int
	paused   bool
	buffered []usecase.Event
	closed   bool
	err      error
	started  time.Time

	width  int
	height int
}

// NewMonitorModel creates a monitor reading from source.
func NewMonitorModel(theme *styles.Theme, homepage string, source <-chan usecase.Event) MonitorModel {
	return MonitorModel{
		theme:    theme,
		keys:     styles.DefaultMonitorKeyMap(),
		help:     styles.NewStyledHelp(theme),
		source:   source,
		homepage: homepage,
		counts:   make(map[usecase.EventKind]int),
		started:  time.Now(),
		width:    80,
		height:   24,
	}
}

// WaitForEvent returns a command delivering the next event from source.
func WaitForEvent(source <-chan usecase.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-source
		if !ok {
			return SourceClosedMsg{}
		}
		return EventMsg(ev)
	}
}

// Init implements tea.Model.
func (m MonitorModel) Init() tea.Cmd {
	return WaitForEvent(m.source)
}

// Update implements tea.Model.
func (m MonitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		ev := usecase.Event(msg)
		m.track(ev)
		if m.paused {
			m.buffered = append(m.buffered, ev)
		} else {
			m.push(ev)
		}
		return m, WaitForEvent(m.source)

	case SourceClosedMsg:
		m.closed = true

	case DaemonErrMsg:
		m.err = msg.Err
	}

	return m, nil
}

func (m MonitorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		if !m.paused {
			for _, ev := range m.buffered {
				m.push(ev)
			}
			m.buffered = nil
		}
	case key.Matches(msg, m.keys.Clear):
		m.events = nil
		m.buffered = nil
		m.offset = 0
	case key.Matches(msg, m.keys.Up):
		if m.offset < len(m.events)-1 {
			m.offset++
		}
	case key.Matches(msg, m.keys.Down):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(msg, m.keys.Top):
		m.offset = 0
	}
	return m, nil
}

// track keeps the header in sync whether or not the list is paused.
func (m *MonitorModel) track(ev usecase.Event) {
	m.counts[ev.Kind]++
	switch ev.Kind {
	case usecase.EventTracked, usecase.EventRecovered:
		m.tracked = ev.TabID
	case usecase.EventCleared:
		if ev.TabID == m.tracked {
			m.tracked = ""
		}
	}
}

func (m *MonitorModel) push(ev usecase.Event) {
	m.events = append(m.events, ev)
	if len(m.events) > monitorBacklog {
		m.events = m.events[len(m.events)-monitorBacklog:]
	}
	if m.offset > 0 {
		m.offset++
	}
}

// Tracked returns the tab the monitor believes is the homepage tab.
func (m MonitorModel) Tracked() entity.TabID { return m.tracked }

// Events returns the visible event list, oldest first.
func (m MonitorModel) Events() []usecase.Event { return m.events }

// Paused reports whether new events are held back.
func (m MonitorModel) Paused() bool { return m.paused }

// View implements tea.Model.
func (m MonitorModel) View() string {
	t := m.theme

	header := lipgloss.JoinVertical(lipgloss.Left,
		t.Title.Render(fmt.Sprintf("%s takemehome", styles.IconHome)),
		m.renderSummary(),
	)

	body := m.renderEvents()
	footer := m.help.View(m.keys)
	if m.err != nil {
		footer = t.ErrorStyle.Render(fmt.Sprintf("%s %v", styles.IconX, m.err)) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m MonitorModel) renderSummary() string {
	t := m.theme

	home := t.Highlight.Render(m.homepage)
	if m.homepage == "" {
		home = t.WarningStyle.Render("no homepage set")
	}

	tracked := t.MutedBadge("untracked")
	if m.tracked != "" {
		tracked = t.AccentBadge("tab " + string(m.tracked))
	}

	state := t.SuccessStyle.Render(styles.IconPlay + " live")
	switch {
	case m.closed:
		state = t.Subtle.Render(styles.IconStop + " stopped")
	case m.paused:
		state = t.WarningStyle.Render(fmt.Sprintf("%s paused (%d held)", styles.IconStop, len(m.buffered)))
	}

	counts := fmt.Sprintf("%d redirected · %d focused · %d links",
		m.counts[usecase.EventRedirected], m.counts[usecase.EventFocused], m.counts[usecase.EventLinkOpened])

	return strings.Join([]string{home, tracked, state, t.Subtle.Render(counts)}, "  ")
}

func (m MonitorModel) renderEvents() string {
	t := m.theme
	if len(m.events) == 0 {
		return t.Subtle.Render("Waiting for tab events...")
	}

	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}

	end := len(m.events) - m.offset
	start := end - rows
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, end-start)
	for i := end - 1; i >= start; i-- {
		lines = append(lines, m.renderEvent(m.events[i]))
	}
	return strings.Join(lines, "\n")
}

func (m MonitorModel) renderEvent(ev usecase.Event) string {
	t := m.theme

	kind := t.Normal
	switch ev.Kind {
	case usecase.EventTracked, usecase.EventRecovered:
		kind = t.SuccessStyle
	case usecase.EventCleared:
		kind = t.WarningStyle
	case usecase.EventRedirected, usecase.EventFocused, usecase.EventWentHome:
		kind = t.Highlight
	}

	parts := []string{
		t.Subtle.Render(ev.At.Format("15:04:05")),
		kind.Width(12).Render(string(ev.Kind)),
	}
	if ev.TabID != "" {
		parts = append(parts, t.MutedBadge(string(ev.TabID)))
	}
	if ev.URL != "" {
		parts = append(parts, t.Normal.Render(truncate(ev.URL, m.width-40)))
	}
	if ev.Detail != "" {
		parts = append(parts, t.Subtle.Render(ev.Detail))
	}
	return strings.Join(parts, " ")
}

func truncate(s string, limit int) string {
	if limit < 16 {
		limit = 16
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
