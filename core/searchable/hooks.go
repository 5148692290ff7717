package searchable

import (
	"context"
	"fmt"
	"sync"
)

// Event is a point in a record's lifecycle the host persistence layer
// reports.
type Event string

const (
	EventAfterSave    Event = "after_save"
	EventAfterCommit  Event = "after_commit"
	EventAfterDestroy Event = "after_destroy"
)

func (e Event) IsValid() bool {
	switch e {
	case EventAfterSave, EventAfterCommit, EventAfterDestroy:
		return true
	}
	return false
}

type HookFunc[R any] func(ctx context.Context, rec R) error

// Hooks dispatches lifecycle events of one record type to subscribed
// handlers. The host fires events; synchronizers subscribe to them.
type Hooks[R any] struct {
	mu       sync.RWMutex
	handlers map[Event][]HookFunc[R]
}

func NewHooks[R any]() *Hooks[R] {
	return &Hooks[R]{handlers: make(map[Event][]HookFunc[R])}
}

func (h *Hooks[R]) Subscribe(event Event, fn HookFunc[R]) error {
	if !event.IsValid() {
		return fmt.Errorf("subscribe: %w: %q", ErrUnknownEvent, event)
	}
	if fn == nil {
		return fmt.Errorf("subscribe %s: %w", event, ErrNilHook)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.handlers[event] = append(h.handlers[event], fn)
	return nil
}

// Fire runs the handlers of event in subscription order and stops at the
// first failure. A host should roll back the triggering save on error.
func (h *Hooks[R]) Fire(ctx context.Context, event Event, rec R) error {
	if !event.IsValid() {
		return fmt.Errorf("fire: %w: %q", ErrUnknownEvent, event)
	}

	h.mu.RLock()
	handlers := append([]HookFunc[R](nil), h.handlers[event]...)
	h.mu.RUnlock()

	for _, fn := range handlers {
		if err := fn(ctx, rec); err != nil {
			return fmt.Errorf("%s hook: %w", event, err)
		}
	}
	return nil
}
