// Package entity holds the browser objects takemehome reasons about.
package entity

// TabID uniquely identifies a tab (a CDP page target ID).
type TabID string

// WindowID identifies a browser window.
type WindowID int64

// Tab is a snapshot of an open browser tab as reported by the host.
// Snapshots go stale immediately; callers re-query before trusting them.
type Tab struct {
	ID         TabID
	WindowID   WindowID
	URL        string
	PendingURL string // URL being loaded but not yet committed, if known
	Active     bool   // visible tab of its window
}

// EffectiveURL returns the pending URL when one is set, otherwise the committed URL.
func (t *Tab) EffectiveURL() string {
	if t == nil {
		return ""
	}
	if t.PendingURL != "" {
		return t.PendingURL
	}
	return t.URL
}
