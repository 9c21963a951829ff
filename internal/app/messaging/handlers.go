package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/logging"
)

// Page message actions.
const (
	ActionGetConstants        = "getConstants"
	ActionCheckRedirectStatus = "checkRedirectStatus"
	ActionMarkAsHomepageTab   = "markAsHomepageTab"
	ActionRegisterHomepageTab = "registerHomepageTab"
	ActionIsHomepageTabOpen   = "isHomepageTabOpen"
	ActionTabUpdated          = "tabUpdated"
	ActionFocusExisting       = "focusExisting"
	ActionOpenLink            = "openLink"
)

// Config holds dependencies for the page message handlers.
type Config struct {
	Coordinator *usecase.TabCoordinator
	LinkGuard   *usecase.LinkGuard
}

// RegisterHandlers registers every page action with the router.
func RegisterHandlers(ctx context.Context, router *Router, cfg Config) error {
	log := logging.FromContext(ctx)
	coord := cfg.Coordinator

	mark := HandlerFunc(func(ctx context.Context, sender *entity.Tab, _ json.RawMessage) (any, error) {
		return coord.MarkAsHomepageTab(ctx, sender), nil
	})

	handlers := map[string]Handler{
		ActionGetConstants: HandlerFunc(func(context.Context, *entity.Tab, json.RawMessage) (any, error) {
			return coord.GetConstants(), nil
		}),
		ActionCheckRedirectStatus: HandlerFunc(func(ctx context.Context, sender *entity.Tab, _ json.RawMessage) (any, error) {
			return coord.CheckRedirectStatus(ctx, sender), nil
		}),
		ActionMarkAsHomepageTab:   mark,
		ActionRegisterHomepageTab: mark,
		ActionIsHomepageTabOpen: HandlerFunc(func(ctx context.Context, _ *entity.Tab, _ json.RawMessage) (any, error) {
			return coord.IsHomepageTabOpen(ctx), nil
		}),
		ActionTabUpdated: HandlerFunc(func(ctx context.Context, sender *entity.Tab, _ json.RawMessage) (any, error) {
			return coord.TabUpdated(ctx, sender), nil
		}),
		ActionFocusExisting: HandlerFunc(func(ctx context.Context, sender *entity.Tab, payload json.RawMessage) (any, error) {
			decision, err := ParsePayload[usecase.RedirectDecision](payload)
			if err != nil {
				return nil, err
			}
			if err := coord.FocusExistingTab(ctx, sender, decision); err != nil {
				return nil, fmt.Errorf("failed to focus existing tab: %w", err)
			}
			return usecase.Ack{Success: true}, nil
		}),
	}

	for action, handler := range handlers {
		if err := router.RegisterHandler(action, handler); err != nil {
			return fmt.Errorf("failed to register handler %s: %w", action, err)
		}
	}

	if cfg.LinkGuard != nil {
		guard := cfg.LinkGuard
		openLink := HandlerFunc(func(ctx context.Context, sender *entity.Tab, payload json.RawMessage) (any, error) {
			link, err := ParsePayload[usecase.LinkClick](payload)
			if err != nil {
				return nil, err
			}
			return guard.HandleClick(ctx, sender, link), nil
		})
		if err := router.RegisterConcurrentHandler(ActionOpenLink, openLink); err != nil {
			return fmt.Errorf("failed to register handler %s: %w", ActionOpenLink, err)
		}
	}

	log.Debug().Int("count", len(router.Actions())).Msg("page message handlers registered")
	return nil
}
