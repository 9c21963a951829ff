package homepage

import (
	"context"

	"github.com/samber/lo"

	"github.com/bnema/takemehome/internal/domain/entity"
)

// TrackingState is the coordinator's view of the homepage-tab slot.
type TrackingState int

const (
	// StateUnset means no homepage tab is known.
	StateUnset TrackingState = iota
	// StateTrackedValid means the tracked tab is open and still carries the marker.
	StateTrackedValid
	// StateTrackedStale means the tracked tab is open but navigated off the marked URL.
	StateTrackedStale
)

func (s TrackingState) String() string {
	switch s {
	case StateTrackedValid:
		return "tracked"
	case StateTrackedStale:
		return "stale"
	default:
		return "unset"
	}
}

// TabLookup resolves a tab ID against the live tab set.
type TabLookup interface {
	GetTab(ctx context.Context, id entity.TabID) (*entity.Tab, error)
}

// Validation is the outcome of Registry.Validate.
type Validation struct {
	Valid bool
	Tab   *entity.Tab
	URL   string // FormatURL of the tab URL, set whenever the tab was found
}

// Registry owns the single tracked homepage-tab slot.
//
// The slot is a weak reference: the tab may close or navigate at any time
// without telling the registry, so every read goes through Validate or
// Inspect. A Registry is not safe for concurrent use; it is owned by the
// dispatcher goroutine.
type Registry struct {
	lookup  TabLookup
	current entity.TabID
	set     bool
}

// NewRegistry creates an empty registry validating against lookup.
func NewRegistry(lookup TabLookup) *Registry {
	return &Registry{lookup: lookup}
}

// Set unconditionally overwrites the tracked tab.
func (r *Registry) Set(id entity.TabID) {
	r.current = id
	r.set = true
}

// Clear forgets the tracked tab.
func (r *Registry) Clear() {
	r.current = ""
	r.set = false
}

// clearIf forgets the tracked tab only if it is still id. A lookup may have
// suspended long enough for another event to retarget the slot.
func (r *Registry) clearIf(id entity.TabID) {
	if r.set && r.current == id {
		r.Clear()
	}
}

// Current returns the tracked tab without validating it.
func (r *Registry) Current() (entity.TabID, bool) {
	return r.current, r.set
}

// IsTracked reports whether id is the tracked tab, without validating it.
func (r *Registry) IsTracked(id entity.TabID) bool {
	return r.set && r.current == id
}

// Validate fails closed: an unset slot, a vanished tab or a tab whose URL
// lacks the marker all clear the slot and report invalid.
func (r *Registry) Validate(ctx context.Context) Validation {
	id, ok := r.Current()
	if !ok {
		return Validation{}
	}

	tab, err := r.lookup.GetTab(ctx, id)
	if err != nil || tab == nil || tab.URL == "" {
		r.clearIf(id)
		return Validation{}
	}

	result := Validation{Tab: tab, URL: FormatURL(tab.URL)}
	if !HasMarker(tab.URL) {
		r.clearIf(id)
		return result
	}

	result.Valid = true
	return result
}

// Inspect resolves the explicit tracking state. A vanished tab clears the
// slot; a stale tab keeps it so the caller can focus and reset that tab.
func (r *Registry) Inspect(ctx context.Context) (TrackingState, *entity.Tab) {
	id, ok := r.Current()
	if !ok {
		return StateUnset, nil
	}

	tab, err := r.lookup.GetTab(ctx, id)
	if err != nil || tab == nil {
		r.clearIf(id)
		return StateUnset, nil
	}

	if !HasMarker(tab.URL) {
		return StateTrackedStale, tab
	}
	return StateTrackedValid, tab
}

// ScanAndAdopt tracks the first marked tab in enumeration order and
// re-validates it straight away. With no marked tab the slot is cleared.
// Other marked tabs are left alone.
func (r *Registry) ScanAndAdopt(ctx context.Context, tabs []*entity.Tab) bool {
	found, ok := lo.Find(tabs, func(t *entity.Tab) bool {
		return t != nil && HasMarker(t.URL)
	})
	if !ok {
		r.Clear()
		return false
	}

	r.Set(found.ID)
	return r.Validate(ctx).Valid
}
