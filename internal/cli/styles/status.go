package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StatusRenderer renders the output of `takemehome status`.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a new status renderer with the given theme.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// StatusReport is everything status knows without a running daemon.
type StatusReport struct {
	Homepage      string
	ConfigFile    string
	DatabaseFile  string
	SchemaVersion int64
	Browser       string
	LastRunLog    string
	LastRunAt     time.Time
	// Tracking is filled when a browser was reachable.
	Tracking *TrackingReport
}

// TrackingReport describes the homepage tab as seen in a live browser.
type TrackingReport struct {
	State   string
	TabID   string
	TabURL  string
	OpenTab int
	Err     string
}

// Render renders the report.
func (r *StatusRenderer) Render(report StatusReport) string {
	sections := []string{
		r.renderHeader(report.Homepage != ""),
		r.renderHomepage(report),
		r.renderFiles(report),
	}
	if report.Tracking != nil {
		sections = append(sections, r.renderTracking(*report.Tracking))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *StatusRenderer) renderHeader(configured bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "Configured"
	if !configured {
		statusStyle = r.theme.WarningStyle
		statusText = "No homepage"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconHome), r.theme.Title.Render("takemehome"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge) + "\n"
}

func (r *StatusRenderer) renderHomepage(report StatusReport) string {
	value := r.theme.Highlight.Render(report.Homepage)
	if report.Homepage == "" {
		value = r.theme.Subtle.Render("not set, run `takemehome set <url>`")
	}
	return r.row(IconGlobe, "Homepage", value)
}

func (r *StatusRenderer) renderFiles(report StatusReport) string {
	lines := []string{
		r.row(IconConfig, "Config", r.theme.Normal.Render(report.ConfigFile)),
		r.row(IconDatabase, "Database", fmt.Sprintf("%s %s",
			r.theme.Normal.Render(report.DatabaseFile),
			r.theme.MutedBadge(fmt.Sprintf("schema v%d", report.SchemaVersion)))),
		r.row(IconTab, "Browser", r.theme.Normal.Render(report.Browser)),
	}
	if report.LastRunLog != "" {
		lines = append(lines, r.row(IconLogs, "Last run", fmt.Sprintf("%s %s",
			r.theme.Normal.Render(report.LastRunLog),
			r.theme.MutedBadge(RelativeTime(report.LastRunAt)))))
	}
	return strings.Join(lines, "\n")
}

func (r *StatusRenderer) renderTracking(t TrackingReport) string {
	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Live browser", r.theme.Highlight.Render(IconPlay)))
	if t.Err != "" {
		return r.theme.Box.Render(header + "\n" +
			fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.Normal.Render(t.Err)))
	}

	stateStyle := r.theme.SuccessStyle
	icon := IconCheck
	if t.TabID == "" {
		stateStyle = r.theme.WarningStyle
		icon = IconWarning
	}
	lines := []string{
		fmt.Sprintf("%s %s %s", stateStyle.Render(icon), r.theme.Subtle.Render("State"), stateStyle.Render(t.State)),
		fmt.Sprintf("  %s %d", r.theme.Subtle.Render("Open tabs"), t.OpenTab),
	}
	if t.TabID != "" {
		lines = append(lines,
			fmt.Sprintf("  %s %s", r.theme.Subtle.Render("Homepage tab"), r.theme.Normal.Render(t.TabID)),
			fmt.Sprintf("  %s %s", r.theme.Subtle.Render("At"), r.theme.Normal.Render(t.TabURL)),
		)
	}
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *StatusRenderer) row(icon, label, value string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), r.theme.Subtle.Width(9).Render(label), value)
}

// RenderHomepageChange renders the result of set and clear.
func (t *Theme) RenderHomepageChange(action, url string) string {
	icon := t.SuccessStyle.Render(IconCheck)
	if url == "" {
		return fmt.Sprintf("%s %s", icon, t.Normal.Render(action))
	}
	return fmt.Sprintf("%s %s %s %s", icon, t.Normal.Render(action),
		t.Subtle.Render(IconArrow), t.Highlight.Render(url))
}
