package events

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDispatchInvokesHandlersInSubscriptionOrder(t *testing.T) {
	d := NewEventDispatcher(zap.NewNop())

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		d.Subscribe(ContactRecordedName, func(ctx context.Context, event contracts.Event) error {
			order = append(order, i)
			return nil
		})
	}

	d.Dispatch(context.Background(), ContactRecorded{ScheduleID: "s1"})

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestDispatchOnlyMatchesExactEventName(t *testing.T) {
	d := NewEventDispatcher(zap.NewNop())

	recorded := 0
	scheduled := 0
	d.Subscribe(ContactRecordedName, func(ctx context.Context, event contracts.Event) error {
		recorded++
		return nil
	})
	d.Subscribe(NotificationScheduledName, func(ctx context.Context, event contracts.Event) error {
		scheduled++
		return nil
	})

	d.Dispatch(context.Background(), NotificationScheduled{ScheduleID: "s1"})

	assert.Equal(t, 0, recorded)
	assert.Equal(t, 1, scheduled)
}

func TestDispatchHandlerErrorDoesNotStopRemainingHandlers(t *testing.T) {
	d := NewEventDispatcher(zap.NewNop())

	var calls []string
	d.Subscribe(ContactRecordedName, func(ctx context.Context, event contracts.Event) error {
		calls = append(calls, "first")
		return errors.New("boom")
	})
	d.Subscribe(ContactRecordedName, func(ctx context.Context, event contracts.Event) error {
		calls = append(calls, "second")
		return nil
	})

	d.Dispatch(context.Background(), ContactRecorded{ScheduleID: "s1"})

	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatchWithoutSubscribersIsNoop(t *testing.T) {
	d := NewEventDispatcher(zap.NewNop())

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), FlowExhausted{ScheduleID: "s1"})
	})
}

func TestEventPayloadIsDeliveredUntouched(t *testing.T) {
	d := NewEventDispatcher(zap.NewNop())

	var got ContactRecorded
	d.Subscribe(ContactRecordedName, func(ctx context.Context, event contracts.Event) error {
		got = event.(ContactRecorded)
		return nil
	})

	sent := ContactRecorded{
		HistoryID:  "h1",
		ScheduleID: "s1",
		PatientID:  "p1",
		ClinicID:   "c1",
		Channel:    "whatsapp",
		Step:       2,
		Success:    true,
	}
	d.Dispatch(context.Background(), sent)

	assert.Equal(t, sent, got)
}
