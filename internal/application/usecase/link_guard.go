package usecase

import (
	"context"
	"sync/atomic"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/logging"
)

// LinkClick describes an anchor clicked in a page.
type LinkClick struct {
	Href   string `json:"href"`
	Target string `json:"target"`
	Rel    string `json:"rel"`
}

// LinkOutcome is what the guard did with a click.
type LinkOutcome string

const (
	LinkIgnored   LinkOutcome = "ignored"
	LinkOpened    LinkOutcome = "opened"
	LinkNavigated LinkOutcome = "navigated"
	LinkDropped   LinkOutcome = "dropped"
	LinkFailed    LinkOutcome = "failed"
)

// LinkResult is the openLink response.
type LinkResult struct {
	PreventDefault bool         `json:"preventDefault"`
	Outcome        LinkOutcome  `json:"outcome"`
	TabID          entity.TabID `json:"tabId,omitempty"`
}

// LinkGuard keeps the homepage tab on its marked URL by opening outbound
// links in a new tab.
//
// It runs outside the dispatcher loop. At most one click is handled at a
// time; clicks arriving meanwhile are dropped.
type LinkGuard struct {
	host     port.TabHost
	observer Observer
	inFlight atomic.Bool
}

// NewLinkGuard creates a link guard.
func NewLinkGuard(host port.TabHost) *LinkGuard {
	return &LinkGuard{host: host}
}

// SetObserver installs the event observer. Call before clicks flow.
func (g *LinkGuard) SetObserver(o Observer) {
	g.observer = o
}

// HandleClick opens link in a new tab when sender is the active homepage
// tab. If the new tab cannot be opened, sender navigates instead.
func (g *LinkGuard) HandleClick(ctx context.Context, sender *entity.Tab, link LinkClick) LinkResult {
	if !g.intercepts(sender, link) {
		return LinkResult{Outcome: LinkIgnored}
	}
	log := logging.FromContext(ctx)

	if !g.inFlight.CompareAndSwap(false, true) {
		log.Debug().Str("href", link.Href).Msg("click already in flight, dropping")
		return LinkResult{PreventDefault: true, Outcome: LinkDropped}
	}
	defer g.inFlight.Store(false)

	id, err := g.host.CreateTab(ctx, link.Href)
	if err == nil {
		log.Debug().Str("href", link.Href).Str("tab_id", string(id)).Msg("opened homepage link in new tab")
		g.observer.emit(EventLinkOpened, id, link.Href, "")
		return LinkResult{PreventDefault: true, Outcome: LinkOpened, TabID: id}
	}
	log.Warn().Err(err).Str("href", link.Href).Msg("failed to open new tab, navigating homepage tab")

	if err := g.host.NavigateTab(ctx, sender.ID, link.Href); err != nil {
		log.Error().Err(err).Str("href", link.Href).Msg("failed to follow link")
		return LinkResult{PreventDefault: true, Outcome: LinkFailed}
	}
	return LinkResult{PreventDefault: true, Outcome: LinkNavigated, TabID: sender.ID}
}

func (g *LinkGuard) intercepts(sender *entity.Tab, link LinkClick) bool {
	if sender == nil || !sender.Active || !homepage.HasMarker(sender.URL) {
		return false
	}
	if link.Href == "" {
		return false
	}
	return link.Target != "_self" && link.Rel != "noopener"
}
