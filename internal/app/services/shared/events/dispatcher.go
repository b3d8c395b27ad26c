package events

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

type eventDispatcher struct {
	subs map[string][]contracts.EventHandler
	Log  *zap.Logger
}

// NewEventDispatcher builds the in-process pub/sub used to decouple the
// notification flow from its collaborators (CRM sync, broker publishing).
// Subscriptions happen during bootstrap; Dispatch is safe to call from a
// single dispatcher run at a time, matching the job execution model.
func NewEventDispatcher(logger *zap.Logger) contracts.EventDispatcher {
	return &eventDispatcher{
		subs: make(map[string][]contracts.EventHandler),
		Log:  logger,
	}
}

func (d *eventDispatcher) Subscribe(eventName string, handler contracts.EventHandler) {
	d.subs[eventName] = append(d.subs[eventName], handler)
	d.Log.Debug("eventDispatcher.Subscribe registered handler",
		zap.String(constvars.LoggingEventKey, eventName),
		zap.Int(constvars.LoggingListenersKey, len(d.subs[eventName])),
	)
}

// Dispatch invokes every handler subscribed to the event's exact name, in
// subscription order. Handler errors are logged and swallowed so one broken
// collaborator cannot abort delivery to the rest.
func (d *eventDispatcher) Dispatch(ctx context.Context, event contracts.Event) {
	handlers := d.subs[event.EventName()]
	d.Log.Info("eventDispatcher.Dispatch called",
		zap.String(constvars.LoggingEventKey, event.EventName()),
		zap.Int(constvars.LoggingListenersKey, len(handlers)),
	)
	for i, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			d.Log.Error("eventDispatcher.Dispatch handler error",
				zap.String(constvars.LoggingEventKey, event.EventName()),
				zap.Int(constvars.LoggingHandlerKey, i),
				zap.Error(err),
			)
		}
	}
}
