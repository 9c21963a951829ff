// Package messaging routes page-script messages to Go handlers.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/takemehome/internal/domain/entity"
	"github.com/bnema/takemehome/internal/logging"
)

// BindingName is the runtime binding the page script calls.
const BindingName = "takeMeHome"

// ErrUnknownAction is returned for messages no handler is registered for.
var ErrUnknownAction = errors.New("unknown action")

// Message is a page -> Go envelope passed to the binding as JSON.
type Message struct {
	RequestID string          `json:"requestId"`
	Action    string          `json:"action"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Response is sent back to the page.
// The page script expects: { requestId, success, data?, error? }
type Response struct {
	RequestID string `json:"requestId"`
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewSuccessResponse creates a success response with data.
func NewSuccessResponse(requestID string, data any) Response {
	return Response{
		RequestID: requestID,
		Success:   true,
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID string, err error) Response {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	return Response{
		RequestID: requestID,
		Success:   false,
		Error:     errMsg,
	}
}

// Handler handles a decoded message. sender is nil when the message did
// not come from a page tab.
type Handler interface {
	Handle(ctx context.Context, sender *entity.Tab, payload json.RawMessage) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, sender *entity.Tab, payload json.RawMessage) (any, error)

// Handle calls f(ctx, sender, payload).
func (f HandlerFunc) Handle(ctx context.Context, sender *entity.Tab, payload json.RawMessage) (any, error) {
	return f(ctx, sender, payload)
}

type handlerEntry struct {
	handler    Handler
	concurrent bool
}

// Router dispatches messages by action name.
type Router struct {
	mu       sync.RWMutex
	handlers map[string]handlerEntry
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]handlerEntry)}
}

// RegisterHandler registers a handler that must run on the dispatcher loop.
func (r *Router) RegisterHandler(action string, handler Handler) error {
	return r.register(action, handler, false)
}

// RegisterConcurrentHandler registers a handler that is safe to run from
// any goroutine and does not touch coordinator state.
func (r *Router) RegisterConcurrentHandler(action string, handler Handler) error {
	return r.register(action, handler, true)
}

func (r *Router) register(action string, handler Handler, concurrent bool) error {
	if action == "" {
		return errors.New("message action cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[action] = handlerEntry{handler: handler, concurrent: concurrent}
	return nil
}

// IsConcurrent reports whether action may bypass the dispatcher loop.
func (r *Router) IsConcurrent(action string) bool {
	entry, ok := r.getHandler(action)
	return ok && entry.concurrent
}

// Actions lists the registered action names.
func (r *Router) Actions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	actions := make([]string, 0, len(r.handlers))
	for a := range r.handlers {
		actions = append(actions, a)
	}
	return actions
}

// DecodeMessage parses a binding payload.
func DecodeMessage(raw string) (Message, error) {
	var msg Message
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		return msg, fmt.Errorf("decode message: %w", err)
	}
	if msg.Action == "" {
		return msg, errors.New("decode message: missing action")
	}
	return msg, nil
}

// Dispatch runs the handler for msg and wraps its result.
func (r *Router) Dispatch(ctx context.Context, sender *entity.Tab, msg Message) Response {
	log := logging.FromContext(ctx)

	entry, ok := r.getHandler(msg.Action)
	if !ok {
		log.Warn().Str("action", msg.Action).Msg("no handler registered for action")
		return NewErrorResponse(msg.RequestID, fmt.Errorf("%w: %s", ErrUnknownAction, msg.Action))
	}

	var senderID string
	if sender != nil {
		senderID = string(sender.ID)
	}
	log.Debug().
		Str("action", msg.Action).
		Str("tab_id", senderID).
		Int("payload_len", len(msg.Payload)).
		Msg("received page message")

	data, err := entry.handler.Handle(ctx, sender, msg.Payload)
	if err != nil {
		log.Warn().Err(err).Str("action", msg.Action).Msg("message handler returned error")
		return NewErrorResponse(msg.RequestID, err)
	}
	return NewSuccessResponse(msg.RequestID, data)
}

func (r *Router) getHandler(action string) (handlerEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.handlers[action]
	return entry, ok
}

// ParsePayload unmarshals a message payload. An empty payload yields the
// zero value.
func ParsePayload[T any](payload json.RawMessage) (T, error) {
	var target T
	if len(payload) == 0 || string(payload) == "null" {
		return target, nil
	}
	if err := json.Unmarshal(payload, &target); err != nil {
		return target, fmt.Errorf("parse payload: %w", err)
	}
	return target, nil
}
