package notifiers

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"fmt"

	"golang.org/x/time/rate"
)

type registry struct {
	notifiers map[string]contracts.Notifier
}

// NewRegistry maps channels to their notifiers. Phonecall has no notifier:
// those schedules become pending calls for clinic staff.
func NewRegistry(byChannel map[string]contracts.Notifier) contracts.NotifierRegistry {
	return &registry{notifiers: byChannel}
}

func (r *registry) Get(channel string) (contracts.Notifier, error) {
	notifier, ok := r.notifiers[channel]
	if !ok {
		return nil, fmt.Errorf("no notifier configured for channel %s", channel)
	}
	return notifier, nil
}

type throttledNotifier struct {
	inner   contracts.Notifier
	limiter *rate.Limiter
}

// Throttle caps outbound sends so a large due batch cannot hammer a
// provider. The wait honors the caller's context deadline.
func Throttle(inner contracts.Notifier, perSecond float64) contracts.Notifier {
	if perSecond <= 0 {
		return inner
	}
	return &throttledNotifier{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (t *throttledNotifier) Send(ctx context.Context, contact contracts.ContactInfo, message string) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return Temporary(err)
	}
	return t.inner.Send(ctx, contact, message)
}
