package contracts

import "context"

// Event is an in-process domain event, keyed by its name for dispatch.
type Event interface {
	EventName() string
}

type EventHandler func(ctx context.Context, event Event) error

// EventDispatcher is a synchronous publish/subscribe registry. Handlers run
// in subscription order; a handler error is logged and never propagated.
type EventDispatcher interface {
	Subscribe(eventName string, handler EventHandler)
	Dispatch(ctx context.Context, event Event)
}
