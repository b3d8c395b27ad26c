package pendingcalls

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCallRepo struct {
	items map[string]*models.PendingCall
}

func (r *fakeCallRepo) Insert(_ context.Context, call *models.PendingCall) (string, error) {
	r.items[call.ID] = call
	return call.ID, nil
}

func (r *fakeCallRepo) FindByID(_ context.Context, callID string) (*models.PendingCall, error) {
	return r.items[callID], nil
}

func (r *fakeCallRepo) FindOpenByClinic(_ context.Context, _ string, _, _ int) ([]models.PendingCall, int, error) {
	return nil, 0, nil
}

func (r *fakeCallRepo) Update(_ context.Context, call *models.PendingCall) error {
	r.items[call.ID] = call
	return nil
}

type fakeHistoryRepo struct {
	items []*models.ContactHistory
}

func (r *fakeHistoryRepo) Insert(_ context.Context, h *models.ContactHistory) (string, error) {
	r.items = append(r.items, h)
	return h.ID, nil
}

func (r *fakeHistoryRepo) FindByID(_ context.Context, _ string) (*models.ContactHistory, error) {
	return nil, nil
}

func (r *fakeHistoryRepo) List(_ context.Context, _ contracts.HistoryFilter, _, _ int) ([]models.ContactHistory, int, error) {
	return nil, 0, nil
}

func (r *fakeHistoryRepo) ListByClinicBetween(_ context.Context, _ string, _, _ time.Time) ([]models.ContactHistory, error) {
	return nil, nil
}

type fakeScheduler struct {
	advanced []string
	err      error
}

func (s *fakeScheduler) ScheduleInitial(_ context.Context, _, _, _ string) (*models.ContactSchedule, error) {
	return nil, nil
}

func (s *fakeScheduler) AdvanceAfterSuccess(_ context.Context, scheduleID string) (*models.ContactSchedule, error) {
	s.advanced = append(s.advanced, scheduleID)
	return nil, s.err
}

type callTestEnv struct {
	calls     *fakeCallRepo
	histories *fakeHistoryRepo
	scheduler *fakeScheduler
	recorded  []contracts.Event
	usecase   contracts.PendingCallUsecase
}

func newCallTestEnv() *callTestEnv {
	env := &callTestEnv{
		calls:     &fakeCallRepo{items: map[string]*models.PendingCall{}},
		histories: &fakeHistoryRepo{},
		scheduler: &fakeScheduler{},
	}
	dispatcher := events.NewEventDispatcher(zap.NewNop())
	dispatcher.Subscribe(events.ContactRecordedName, func(_ context.Context, event contracts.Event) error {
		env.recorded = append(env.recorded, event)
		return nil
	})
	env.usecase = NewPendingCallUsecase(
		env.calls,
		env.histories,
		env.scheduler,
		dispatcher,
		config.NewInternalConfig(),
		zap.NewNop(),
	)
	env.calls.items["call-1"] = &models.PendingCall{
		ID: "call-1", PatientID: "patient-1", ContractID: "contract-1",
		ClinicID: "clinic-1", ScheduleID: "sched-1", CurrentStep: 4,
		Status: constvars.PendingCallStatusOpen,
	}
	return env
}

func TestResolveSuccessRecordsHistoryAndAdvances(t *testing.T) {
	env := newCallTestEnv()

	err := env.usecase.Resolve(context.Background(), "call-1", &requests.ResolvePendingCall{
		Success: true, ResultNotes: "patient promised payment",
	})
	require.NoError(t, err)

	call := env.calls.items["call-1"]
	assert.Equal(t, constvars.PendingCallStatusDone, call.Status)
	assert.Equal(t, 1, call.Attempts)
	require.NotNil(t, call.LastAttemptAt)

	require.Len(t, env.histories.items, 1)
	history := env.histories.items[0]
	assert.Equal(t, constvars.ChannelPhoneCall, history.ContactType)
	assert.Equal(t, constvars.TriggerManual, history.NotificationTrigger)
	assert.True(t, history.Success)
	assert.Equal(t, "patient promised payment", history.Observation)

	require.Len(t, env.recorded, 1)
	assert.Equal(t, []string{"sched-1"}, env.scheduler.advanced)
}

func TestResolveMissedCallKeepsTaskOpen(t *testing.T) {
	env := newCallTestEnv()

	err := env.usecase.Resolve(context.Background(), "call-1", &requests.ResolvePendingCall{
		Success: false, ResultNotes: "no answer",
	})
	require.NoError(t, err)

	call := env.calls.items["call-1"]
	assert.Equal(t, constvars.PendingCallStatusOpen, call.Status)
	assert.Equal(t, 1, call.Attempts)
	assert.Equal(t, "no answer", call.ResultNotes)

	assert.Empty(t, env.histories.items)
	assert.Empty(t, env.recorded)
	assert.Empty(t, env.scheduler.advanced)
}

func TestResolveUnknownCallFails(t *testing.T) {
	env := newCallTestEnv()

	err := env.usecase.Resolve(context.Background(), "missing", &requests.ResolvePendingCall{Success: true})
	require.Error(t, err)
}

func TestResolveSwallowsAdvanceError(t *testing.T) {
	env := newCallTestEnv()
	env.scheduler.err = errors.New("flow repo down")

	err := env.usecase.Resolve(context.Background(), "call-1", &requests.ResolvePendingCall{Success: true})
	require.NoError(t, err)
	require.Len(t, env.histories.items, 1)
}
