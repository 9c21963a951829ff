// Package port declares the interfaces the application layer needs from
// the browser host and the runtime.
package port

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/takemehome/internal/domain/entity"
)

// ErrTabNotFound is returned when a tab ID no longer refers to an open tab.
var ErrTabNotFound = errors.New("tab not found")

// HostError reports a failed host command. Callers log it and abandon the
// current step.
type HostError struct {
	Op    string
	TabID entity.TabID
	Err   error
}

func (e *HostError) Error() string {
	if e.TabID != "" {
		return fmt.Sprintf("host %s %s: %v", e.Op, e.TabID, e.Err)
	}
	return fmt.Sprintf("host %s: %v", e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// TabHost is the browser surface the coordinator drives.
// Every method may block on a browser round trip.
type TabHost interface {
	// GetTab returns a fresh snapshot of the tab, or ErrTabNotFound.
	GetTab(ctx context.Context, id entity.TabID) (*entity.Tab, error)

	// QueryTabs lists every open page tab across all windows.
	QueryTabs(ctx context.Context) ([]*entity.Tab, error)

	// CurrentWindow returns the window the user last interacted with.
	CurrentWindow(ctx context.Context) (entity.WindowID, error)

	// ActivateTab makes the tab the visible tab of its window.
	ActivateTab(ctx context.Context, id entity.TabID) error

	// FocusWindow raises the window.
	FocusWindow(ctx context.Context, id entity.WindowID) error

	// NavigateTab loads url in the tab.
	NavigateTab(ctx context.Context, id entity.TabID, url string) error

	// CreateTab opens a new foreground tab at url.
	CreateTab(ctx context.Context, url string) (entity.TabID, error)

	// CloseTab closes the tab.
	CloseTab(ctx context.Context, id entity.TabID) error

	// RequestPageFocus asks the page script to focus the document.
	RequestPageFocus(ctx context.Context, id entity.TabID) error

	// IsUserTyping reports whether a text input in the page holds focus and
	// a non-empty value.
	IsUserTyping(ctx context.Context, id entity.TabID) (bool, error)
}

// Scheduler runs fn on the event loop after delay.
type Scheduler interface {
	AfterFunc(delay time.Duration, name string, fn func(ctx context.Context))
}
