package usecase

import (
	"time"

	"github.com/bnema/takemehome/internal/domain/entity"
)

// EventKind names an observable coordinator decision.
type EventKind string

const (
	EventTracked    EventKind = "tracked"
	EventCleared    EventKind = "cleared"
	EventRedirected EventKind = "redirected"
	EventFocused    EventKind = "focused"
	EventReset      EventKind = "reset"
	EventRecovered  EventKind = "recovered"
	EventLinkOpened EventKind = "link-opened"
	EventWentHome   EventKind = "went-home"
)

// Event is emitted after the coordinator changed tracking state or drove
// the browser.
type Event struct {
	Kind   EventKind
	TabID  entity.TabID
	URL    string
	Detail string
	At     time.Time
}

// Observer receives events. It is called synchronously and must not block.
type Observer func(Event)

func (o Observer) emit(kind EventKind, id entity.TabID, url, detail string) {
	if o == nil {
		return
	}
	o(Event{Kind: kind, TabID: id, URL: url, Detail: detail, At: time.Now()})
}
