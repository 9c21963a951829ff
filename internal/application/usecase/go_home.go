package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/bnema/takemehome/internal/application/port"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/domain/repository"
	"github.com/bnema/takemehome/internal/logging"
)

// GoHomeAction is what GoHome did.
type GoHomeAction string

const (
	GoHomeNone    GoHomeAction = "none"
	GoHomeFocused GoHomeAction = "focused"
	GoHomeCreated GoHomeAction = "created"
)

// GoHomeOutput reports the tab GoHome focused or opened.
type GoHomeOutput struct {
	Action GoHomeAction
	TabID  entity.TabID
	URL    string
}

// GoHomeUseCase brings the user to a tab showing the homepage, opening one
// if none is open.
type GoHomeUseCase struct {
	prefs    repository.HomepageRepository
	host     port.TabHost
	observer Observer
}

// NewGoHomeUseCase creates a new go-home use case.
func NewGoHomeUseCase(prefs repository.HomepageRepository, host port.TabHost) *GoHomeUseCase {
	return &GoHomeUseCase{prefs: prefs, host: host}
}

// SetObserver installs the event observer.
func (uc *GoHomeUseCase) SetObserver(o Observer) {
	uc.observer = o
}

// Execute focuses the first tab whose normalized URL equals the normalized
// preference, preferring the current window, or creates one.
func (uc *GoHomeUseCase) Execute(ctx context.Context) (*GoHomeOutput, error) {
	log := logging.FromContext(ctx)

	pref, err := uc.prefs.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read homepage: %w", err)
	}
	pref = strings.TrimSpace(pref)
	if pref == "" {
		log.Debug().Msg("homepage not set, nothing to do")
		return &GoHomeOutput{Action: GoHomeNone}, nil
	}

	want, ok := homepage.Normalize(pref)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHomepage, pref)
	}

	tabs, err := uc.host.QueryTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tabs: %w", err)
	}

	matches := lo.Filter(tabs, func(t *entity.Tab, _ int) bool {
		if t == nil || t.URL == "" {
			return false
		}
		key, ok := homepage.Normalize(t.URL)
		return ok && key == want
	})

	if len(matches) == 0 {
		id, err := uc.host.CreateTab(ctx, pref)
		if err != nil {
			return nil, fmt.Errorf("failed to open homepage: %w", err)
		}
		log.Debug().Str("tab_id", string(id)).Str("url", pref).Msg("opened homepage in new tab")
		uc.observer.emit(EventWentHome, id, pref, "created")
		return &GoHomeOutput{Action: GoHomeCreated, TabID: id, URL: pref}, nil
	}

	target := matches[0]
	if current, err := uc.host.CurrentWindow(ctx); err != nil {
		log.Debug().Err(err).Msg("current window unknown, using first match")
	} else if inCurrent, found := lo.Find(matches, func(t *entity.Tab) bool {
		return t.WindowID == current
	}); found {
		target = inCurrent
	}

	if err := uc.host.FocusWindow(ctx, target.WindowID); err != nil {
		log.Warn().Err(err).Int64("window_id", int64(target.WindowID)).Msg("failed to focus window")
	}
	if err := uc.host.ActivateTab(ctx, target.ID); err != nil {
		return nil, fmt.Errorf("failed to activate homepage tab: %w", err)
	}

	uc.observer.emit(EventWentHome, target.ID, target.URL, "focused")
	return &GoHomeOutput{Action: GoHomeFocused, TabID: target.ID, URL: target.URL}, nil
}
