package notification

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/app/services/shared/notifiers"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- in-memory fakes ----

type fakeScheduleRepo struct {
	items []*models.ContactSchedule
	seq   int
}

func (r *fakeScheduleRepo) Insert(_ context.Context, schedule *models.ContactSchedule) (string, error) {
	r.seq++
	if schedule.ID == "" {
		schedule.ID = fmt.Sprintf("sched-%d", r.seq)
	}
	cp := *schedule
	r.items = append(r.items, &cp)
	return schedule.ID, nil
}

func (r *fakeScheduleRepo) FindByID(_ context.Context, scheduleID string) (*models.ContactSchedule, error) {
	for _, s := range r.items {
		if s.ID == scheduleID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) FindByPatientContract(_ context.Context, patientID, contractID string) (*models.ContactSchedule, error) {
	for _, s := range r.items {
		if s.PatientID == patientID && s.ContractID == contractID && s.Status == constvars.ScheduleStatusPending {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeScheduleRepo) FindDue(_ context.Context, clinicID string, now time.Time, limit int) ([]models.ContactSchedule, error) {
	var due []models.ContactSchedule
	for _, s := range r.items {
		if s.ClinicID == clinicID && s.Status == constvars.ScheduleStatusPending && s.IsDue(now) {
			due = append(due, *s)
			if len(due) == limit {
				break
			}
		}
	}
	return due, nil
}

func (r *fakeScheduleRepo) List(_ context.Context, _ contracts.ScheduleFilter, _, _ int) ([]models.ContactSchedule, int, error) {
	return nil, 0, nil
}

func (r *fakeScheduleRepo) HasScheduleForPatient(_ context.Context, patientID string) (bool, error) {
	for _, s := range r.items {
		if s.PatientID == patientID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeScheduleRepo) HasPendingForPatient(_ context.Context, patientID string) (bool, error) {
	for _, s := range r.items {
		if s.PatientID == patientID && s.Status == constvars.ScheduleStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeScheduleRepo) CancelPendingForPatient(_ context.Context, patientID string) error {
	for _, s := range r.items {
		if s.PatientID == patientID && s.Status == constvars.ScheduleStatusPending {
			s.Status = constvars.ScheduleStatusCancelled
		}
	}
	return nil
}

func (r *fakeScheduleRepo) SetStatus(_ context.Context, scheduleID, status string) error {
	for _, s := range r.items {
		if s.ID == scheduleID {
			s.Status = status
			return nil
		}
	}
	return errors.New("schedule not found")
}

func (r *fakeScheduleRepo) pendingFor(patientID string) *models.ContactSchedule {
	for _, s := range r.items {
		if s.PatientID == patientID && s.Status == constvars.ScheduleStatusPending {
			return s
		}
	}
	return nil
}

func (r *fakeScheduleRepo) byID(scheduleID string) *models.ContactSchedule {
	for _, s := range r.items {
		if s.ID == scheduleID {
			return s
		}
	}
	return nil
}

type fakeInstallmentRepo struct {
	items map[string]*models.Installment
}

func (r *fakeInstallmentRepo) Insert(_ context.Context, inst *models.Installment) (string, error) {
	r.items[inst.ID] = inst
	return inst.ID, nil
}

func (r *fakeInstallmentRepo) FindByID(_ context.Context, installmentID string) (*models.Installment, error) {
	return r.items[installmentID], nil
}

func (r *fakeInstallmentRepo) GetCurrentInstallment(_ context.Context, contractID string) (*models.Installment, error) {
	for _, inst := range r.items {
		if inst.ContractID == contractID && inst.IsCurrent {
			return inst, nil
		}
	}
	return nil, nil
}

func (r *fakeInstallmentRepo) FindByContract(_ context.Context, _ string) ([]models.Installment, error) {
	return nil, nil
}

func (r *fakeInstallmentRepo) Update(_ context.Context, inst *models.Installment) error {
	r.items[inst.ID] = inst
	return nil
}

type fakeContractRepo struct {
	items map[string]*models.Contract
}

func (r *fakeContractRepo) Insert(_ context.Context, c *models.Contract) (string, error) {
	r.items[c.ID] = c
	return c.ID, nil
}

func (r *fakeContractRepo) FindByID(_ context.Context, contractID string) (*models.Contract, error) {
	return r.items[contractID], nil
}

func (r *fakeContractRepo) FindByPatient(_ context.Context, _ string) ([]models.Contract, error) {
	return nil, nil
}

func (r *fakeContractRepo) Update(_ context.Context, c *models.Contract) error {
	r.items[c.ID] = c
	return nil
}

type fakeClinicRepo struct {
	items map[string]*models.Clinic
}

func (r *fakeClinicRepo) Insert(_ context.Context, c *models.Clinic) (string, error) {
	r.items[c.ID] = c
	return c.ID, nil
}

func (r *fakeClinicRepo) FindByID(_ context.Context, clinicID string) (*models.Clinic, error) {
	return r.items[clinicID], nil
}

func (r *fakeClinicRepo) FindAll(_ context.Context, _, _ int) ([]models.Clinic, int, error) {
	return nil, 0, nil
}

func (r *fakeClinicRepo) FindActive(_ context.Context) ([]models.Clinic, error) {
	return nil, nil
}

func (r *fakeClinicRepo) Update(_ context.Context, c *models.Clinic) error {
	r.items[c.ID] = c
	return nil
}

type fakeFlowRepo struct {
	configs map[int]*models.FlowStepConfig
}

func (r *fakeFlowRepo) FindByStep(_ context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	return r.configs[stepNumber], nil
}

func (r *fakeFlowRepo) GetActive(_ context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	cfg := r.configs[stepNumber]
	if cfg == nil || !cfg.Active {
		return nil, nil
	}
	return cfg, nil
}

func (r *fakeFlowRepo) ListActive(_ context.Context) ([]models.FlowStepConfig, error) {
	var active []models.FlowStepConfig
	for _, cfg := range r.configs {
		if cfg.Active {
			active = append(active, *cfg)
		}
	}
	return active, nil
}

func (r *fakeFlowRepo) MaxActiveStep(_ context.Context) (int, error) {
	max := 0
	for step, cfg := range r.configs {
		if cfg.Active && step > max {
			max = step
		}
	}
	return max, nil
}

func (r *fakeFlowRepo) Upsert(_ context.Context, cfg *models.FlowStepConfig) error {
	r.configs[cfg.StepNumber] = cfg
	return nil
}

type fakeHistoryRepo struct {
	items []*models.ContactHistory
}

func (r *fakeHistoryRepo) Insert(_ context.Context, h *models.ContactHistory) (string, error) {
	cp := *h
	r.items = append(r.items, &cp)
	return h.ID, nil
}

func (r *fakeHistoryRepo) FindByID(_ context.Context, historyID string) (*models.ContactHistory, error) {
	for _, h := range r.items {
		if h.ID == historyID {
			return h, nil
		}
	}
	return nil, nil
}

func (r *fakeHistoryRepo) List(_ context.Context, _ contracts.HistoryFilter, _, _ int) ([]models.ContactHistory, int, error) {
	return nil, 0, nil
}

func (r *fakeHistoryRepo) ListByClinicBetween(_ context.Context, _ string, _, _ time.Time) ([]models.ContactHistory, error) {
	return nil, nil
}

type fakePendingCallRepo struct {
	items []*models.PendingCall
}

func (r *fakePendingCallRepo) Insert(_ context.Context, call *models.PendingCall) (string, error) {
	cp := *call
	r.items = append(r.items, &cp)
	return call.ID, nil
}

func (r *fakePendingCallRepo) FindByID(_ context.Context, callID string) (*models.PendingCall, error) {
	for _, c := range r.items {
		if c.ID == callID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakePendingCallRepo) FindOpenByClinic(_ context.Context, _ string, _, _ int) ([]models.PendingCall, int, error) {
	return nil, 0, nil
}

func (r *fakePendingCallRepo) Update(_ context.Context, _ *models.PendingCall) error {
	return nil
}

type fakeMessageRepo struct {
	items map[string]*models.Message
}

func (r *fakeMessageRepo) Insert(_ context.Context, m *models.Message) (string, error) {
	r.items[m.ID] = m
	return m.ID, nil
}

func (r *fakeMessageRepo) FindByID(_ context.Context, messageID string) (*models.Message, error) {
	return r.items[messageID], nil
}

func (r *fakeMessageRepo) GetMessage(_ context.Context, channel string, step int, _ string) (*models.Message, error) {
	for _, m := range r.items {
		if m.Type == channel && m.Step == step {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindByClinic(_ context.Context, _ string, _, _ int) ([]models.Message, int, error) {
	return nil, 0, nil
}

type fakePatientRepo struct {
	items map[string]*models.Patient
}

func (r *fakePatientRepo) Insert(_ context.Context, p *models.Patient) (string, error) {
	r.items[p.ID] = p
	return p.ID, nil
}

func (r *fakePatientRepo) FindByID(_ context.Context, patientID string) (*models.Patient, error) {
	return r.items[patientID], nil
}

func (r *fakePatientRepo) FindByClinic(_ context.Context, _ string, _, _ int) ([]models.Patient, int, error) {
	return nil, 0, nil
}

func (r *fakePatientRepo) Update(_ context.Context, p *models.Patient) error {
	r.items[p.ID] = p
	return nil
}

type fakeCollectionCaseRepo struct {
	items []*models.CollectionCase
}

func (r *fakeCollectionCaseRepo) Insert(_ context.Context, c *models.CollectionCase) (string, error) {
	cp := *c
	r.items = append(r.items, &cp)
	return c.ID, nil
}

func (r *fakeCollectionCaseRepo) FindOpenByContract(_ context.Context, contractID string) (*models.CollectionCase, error) {
	for _, c := range r.items {
		if c.ContractID == contractID && c.Status == constvars.CollectionCaseStatusOpen {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCollectionCaseRepo) Update(_ context.Context, _ *models.CollectionCase) error {
	return nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, _ contracts.ContactInfo, message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, message)
	return nil
}

// ---- fixtures ----

type testEnv struct {
	now          time.Time
	schedules    *fakeScheduleRepo
	installments *fakeInstallmentRepo
	contracts    *fakeContractRepo
	clinics      *fakeClinicRepo
	flows        *fakeFlowRepo
	histories    *fakeHistoryRepo
	pendingCalls *fakePendingCallRepo
	messages     *fakeMessageRepo
	patients     *fakePatientRepo
	cases        *fakeCollectionCaseRepo
	notifier     *fakeNotifier
	events       []contracts.Event
	scheduler    *schedulingService
	dispatcher   *dispatcherService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		now:          time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
		schedules:    &fakeScheduleRepo{},
		installments: &fakeInstallmentRepo{items: map[string]*models.Installment{}},
		contracts:    &fakeContractRepo{items: map[string]*models.Contract{}},
		clinics:      &fakeClinicRepo{items: map[string]*models.Clinic{}},
		flows:        &fakeFlowRepo{configs: map[int]*models.FlowStepConfig{}},
		histories:    &fakeHistoryRepo{},
		pendingCalls: &fakePendingCallRepo{},
		messages:     &fakeMessageRepo{items: map[string]*models.Message{}},
		patients:     &fakePatientRepo{items: map[string]*models.Patient{}},
		cases:        &fakeCollectionCaseRepo{},
		notifier:     &fakeNotifier{},
	}

	eventDispatcher := events.NewEventDispatcher(zap.NewNop())
	record := func(_ context.Context, event contracts.Event) error {
		env.events = append(env.events, event)
		return nil
	}
	eventDispatcher.Subscribe(events.NotificationScheduledName, record)
	eventDispatcher.Subscribe(events.ContactRecordedName, record)
	eventDispatcher.Subscribe(events.FlowExhaustedName, record)

	nowFn := func() time.Time { return env.now }
	env.scheduler = &schedulingService{
		scheduleRepo:          env.schedules,
		installmentRepo:       env.installments,
		contractRepo:          env.contracts,
		clinicRepo:            env.clinics,
		flowRepo:              env.flows,
		collectionCaseRepo:    env.cases,
		dispatcher:            eventDispatcher,
		defaultMinDaysOverdue: 90,
		now:                   nowFn,
		Log:                   zap.NewNop(),
	}

	registry := notifiers.NewRegistry(map[string]contracts.Notifier{
		constvars.ChannelWhatsApp: env.notifier,
		constvars.ChannelSMS:      env.notifier,
	})
	env.dispatcher = &dispatcherService{
		scheduleRepo:    env.schedules,
		installmentRepo: env.installments,
		contractRepo:    env.contracts,
		flowRepo:        env.flows,
		historyRepo:     env.histories,
		pendingCallRepo: env.pendingCalls,
		scheduler:       env.scheduler,
		sender:          newSenderService(env.messages, env.patients, registry, 0),
		dispatcher:      eventDispatcher,
		now:             nowFn,
		Log:             zap.NewNop(),
	}

	// Baseline fixture: one clinic, patient, contract and an overdue
	// installment, plus a three-step flow and whatsapp templates.
	env.clinics.items["clinic-1"] = &models.Clinic{ID: "clinic-1", Name: "Sorriso", Active: true}
	env.patients.items["patient-1"] = &models.Patient{
		ID: "patient-1", ClinicID: "clinic-1", Name: "Maria Souza",
		Email: "maria@example.com", Phone: "5511999990000",
	}
	env.contracts.items["contract-1"] = &models.Contract{
		ID: "contract-1", PatientID: "patient-1", ClinicID: "clinic-1", DoNotifications: true,
	}
	env.installments.items["inst-1"] = &models.Installment{
		ID: "inst-1", ContractID: "contract-1", Number: 3, Amount: 350.50,
		DueDate: env.now.AddDate(0, 0, -10), IsCurrent: true,
	}
	env.flows.configs[0] = &models.FlowStepConfig{StepNumber: 0, Channels: []string{constvars.ChannelWhatsApp}, CooldownDays: 7, Active: true}
	env.flows.configs[1] = &models.FlowStepConfig{StepNumber: 1, Channels: []string{constvars.ChannelWhatsApp}, CooldownDays: 2, Active: true}
	env.flows.configs[2] = &models.FlowStepConfig{StepNumber: 2, Channels: []string{constvars.ChannelWhatsApp, constvars.ChannelSMS}, CooldownDays: 7, Active: true}
	env.flows.configs[3] = &models.FlowStepConfig{StepNumber: 3, Channels: []string{constvars.ChannelPhoneCall}, CooldownDays: 7, Active: true}
	for step := 0; step <= 3; step++ {
		id := fmt.Sprintf("msg-wa-%d", step)
		env.messages.items[id] = &models.Message{
			ID: id, Type: constvars.ChannelWhatsApp, Step: step,
			Content: "Olá {{.Name}}, parcela de {{.Amount}} vencida em {{.DueDate}}.", IsDefault: true,
		}
	}
	return env
}

func (env *testEnv) eventsNamed(name string) []contracts.Event {
	var matched []contracts.Event
	for _, e := range env.events {
		if e.EventName() == name {
			matched = append(matched, e)
		}
	}
	return matched
}

// ---- scheduler tests ----

func TestScheduleInitialFirstContactIsStepOneNow(t *testing.T) {
	env := newTestEnv(t)

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	require.NotNil(t, schedule)

	assert.Equal(t, 1, schedule.CurrentStep)
	assert.Equal(t, env.now, schedule.ScheduledDate)
	assert.Equal(t, constvars.ScheduleStatusPending, schedule.Status)
	assert.Equal(t, constvars.ChannelWhatsApp, schedule.Channel)
	assert.Len(t, env.eventsNamed(events.NotificationScheduledName), 1)
}

func TestScheduleInitialReentryUsesProportionalStep(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "old", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		Status: constvars.ScheduleStatusSent, CurrentStep: 1,
	})
	// 20 days overdue: 20/7+1 = step 3.
	env.installments.items["inst-1"].DueDate = env.now.AddDate(0, 0, -20)

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	require.NotNil(t, schedule)

	assert.Equal(t, 3, schedule.CurrentStep)
	assert.Equal(t, env.now, schedule.ScheduledDate)
}

func TestScheduleInitialReentryCapsAtMaxActiveStep(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "old", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		Status: constvars.ScheduleStatusCancelled, CurrentStep: 2,
	})
	env.installments.items["inst-1"].DueDate = env.now.AddDate(0, 0, -200)

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	require.NotNil(t, schedule)

	assert.Equal(t, 3, schedule.CurrentStep)
}

func TestScheduleInitialPreDueSchedulesStepZero(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "old", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		Status: constvars.ScheduleStatusSent, CurrentStep: 1,
	})
	dueDate := env.now.AddDate(0, 0, 15)
	env.installments.items["inst-1"].DueDate = dueDate

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	require.NotNil(t, schedule)

	assert.Equal(t, 0, schedule.CurrentStep)
	assert.Equal(t, dueDate.AddDate(0, 0, -7), schedule.ScheduledDate)
}

func TestScheduleInitialLeavesActiveFlowAlone(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "active", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		Status: constvars.ScheduleStatusPending, CurrentStep: 2,
	})

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	assert.Nil(t, schedule)
	assert.Len(t, env.schedules.items, 1)
}

func TestScheduleInitialSkipsPaidInstallment(t *testing.T) {
	env := newTestEnv(t)
	env.installments.items["inst-1"].Received = true

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	assert.Nil(t, schedule)
	assert.Empty(t, env.schedules.items)
}

func TestScheduleInitialSkipsNonNotifiableContract(t *testing.T) {
	env := newTestEnv(t)
	env.contracts.items["contract-1"].DoNotifications = false

	schedule, err := env.scheduler.ScheduleInitial(context.Background(), "patient-1", "contract-1", "clinic-1")
	require.NoError(t, err)
	assert.Nil(t, schedule)
}

func TestAdvanceAfterSuccessMovesToNextStepAfterCooldown(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "s1", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelWhatsApp,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
	})

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, next)

	// Step 1's cooldown is 2 days, so step 2 runs at T+2d.
	assert.Equal(t, 2, next.CurrentStep)
	assert.Equal(t, env.now.AddDate(0, 0, 2), next.ScheduledDate)
	assert.Equal(t, constvars.ScheduleStatusSent, env.schedules.byID("s1").Status)
	assert.Equal(t, constvars.ScheduleStatusPending, env.schedules.byID(next.ID).Status)
}

func TestAdvanceAfterSuccessEmitsFlowExhaustedWhenNoNextStep(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "s3", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 3, Channel: constvars.ChannelPhoneCall,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
	})

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s3")
	require.NoError(t, err)
	assert.Nil(t, next)

	assert.Len(t, env.eventsNamed(events.FlowExhaustedName), 1)
	assert.Nil(t, env.schedules.pendingFor("patient-1"))
}

func TestAdvanceAfterSuccessStopsWhenInstallmentPaid(t *testing.T) {
	env := newTestEnv(t)
	env.installments.items["inst-1"].Received = true
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "s1", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelWhatsApp,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
	})

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Nil(t, env.schedules.pendingFor("patient-1"))
}

func TestAdvanceAfterSuccessHandsOffToBillingWhenTooOverdue(t *testing.T) {
	env := newTestEnv(t)
	env.installments.items["inst-1"].DueDate = env.now.AddDate(0, 0, -120)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "s2", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 2, Channel: constvars.ChannelWhatsApp,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
	})

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s2")
	require.NoError(t, err)
	assert.Nil(t, next)

	assert.True(t, env.contracts.items["contract-1"].DoBillings)
	require.Len(t, env.cases.items, 1)
	assert.Equal(t, "contract-1", env.cases.items[0].ContractID)
	assert.Equal(t, constvars.CollectionCaseStatusOpen, env.cases.items[0].Status)
	assert.Len(t, env.eventsNamed(events.FlowExhaustedName), 1)
}

func TestAdvanceAfterSuccessHonorsClinicThreshold(t *testing.T) {
	env := newTestEnv(t)
	env.clinics.items["clinic-1"].MinDaysOverdue = 30
	env.installments.items["inst-1"].DueDate = env.now.AddDate(0, 0, -45)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "s1", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelWhatsApp,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
	})

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.True(t, env.contracts.items["contract-1"].DoBillings)
}

func TestAdvanceAfterSuccessUnknownScheduleFails(t *testing.T) {
	env := newTestEnv(t)

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, next)
}

func TestAdvanceCancelsPreviousPendingSchedules(t *testing.T) {
	env := newTestEnv(t)
	env.schedules.items = append(env.schedules.items,
		&models.ContactSchedule{
			ID: "s1", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
			InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelWhatsApp,
			Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
		},
		&models.ContactSchedule{
			ID: "stray", PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
			InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelSMS,
			Status: constvars.ScheduleStatusPending, ScheduledDate: env.now,
		},
	)

	next, err := env.scheduler.AdvanceAfterSuccess(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, next)

	assert.Equal(t, constvars.ScheduleStatusCancelled, env.schedules.byID("stray").Status)
	pending := env.schedules.pendingFor("patient-1")
	require.NotNil(t, pending)
	assert.Equal(t, next.ID, pending.ID)
}

// ---- dispatcher tests ----

func addDueSchedule(env *testEnv, id string, step int, channel string) {
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: id, PatientID: "patient-1", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: step, Channel: channel,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now.AddDate(0, 0, -1),
		NotificationTrigger: constvars.TriggerAutomated,
	})
}

func TestRunDueProcessesOnlyDueSchedules(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.schedules.items = append(env.schedules.items, &models.ContactSchedule{
		ID: "future", PatientID: "patient-2", ContractID: "contract-1", ClinicID: "clinic-1",
		InstallmentID: "inst-1", CurrentStep: 1, Channel: constvars.ChannelWhatsApp,
		Status: constvars.ScheduleStatusPending, ScheduledDate: env.now.AddDate(0, 0, 3),
	})

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, constvars.ScheduleStatusPending, env.schedules.byID("future").Status)
}

func TestRunDueSuccessRecordsHistoryAndAdvances(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, env.notifier.sent, 1)
	assert.Contains(t, env.notifier.sent[0], "Maria Souza")
	assert.Contains(t, env.notifier.sent[0], "350.50")

	require.Len(t, env.histories.items, 1)
	history := env.histories.items[0]
	assert.True(t, history.Success)
	assert.Equal(t, constvars.TriggerAutomated, history.NotificationTrigger)
	assert.Equal(t, 1, history.Step)

	recorded := env.eventsNamed(events.ContactRecordedName)
	require.Len(t, recorded, 1)
	assert.True(t, recorded[0].(events.ContactRecorded).Success)

	next := env.schedules.pendingFor("patient-1")
	require.NotNil(t, next)
	assert.Equal(t, 2, next.CurrentStep)
	assert.Equal(t, env.now.AddDate(0, 0, 2), next.ScheduledDate)
}

func TestRunDuePermanentFailureMarksFailedWithoutAdvance(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.notifier.err = notifiers.Permanent(errors.New("number does not exist"))

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, constvars.ScheduleStatusFailed, env.schedules.byID("due").Status)
	assert.Nil(t, env.schedules.pendingFor("patient-1"))

	require.Len(t, env.histories.items, 1)
	assert.False(t, env.histories.items[0].Success)
	assert.Contains(t, env.histories.items[0].Observation, "number does not exist")

	recorded := env.eventsNamed(events.ContactRecordedName)
	require.Len(t, recorded, 1)
	assert.False(t, recorded[0].(events.ContactRecorded).Success)
}

func TestRunDueTemporaryFailureLeavesScheduleUntouched(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.notifier.err = notifiers.Temporary(errors.New("provider timeout"))

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Retried)
	assert.Equal(t, constvars.ScheduleStatusPending, env.schedules.byID("due").Status)
	assert.Empty(t, env.histories.items)
	assert.Empty(t, env.eventsNamed(events.ContactRecordedName))
}

func TestRunDueUnclassifiedErrorIsTreatedAsTemporary(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.notifier.err = errors.New("connection reset")

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Retried)
	assert.Equal(t, constvars.ScheduleStatusPending, env.schedules.byID("due").Status)
}

func TestRunDuePhonecallCreatesPendingCall(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 3, constvars.ChannelPhoneCall)

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Succeeded)
	require.Len(t, env.pendingCalls.items, 1)
	call := env.pendingCalls.items[0]
	assert.Equal(t, "patient-1", call.PatientID)
	assert.Equal(t, 3, call.CurrentStep)
	assert.Equal(t, constvars.PendingCallStatusOpen, call.Status)
	assert.Equal(t, constvars.ScheduleStatusSent, env.schedules.byID("due").Status)
	// No message goes out and no history is recorded until the call happens.
	assert.Empty(t, env.notifier.sent)
	assert.Empty(t, env.histories.items)
}

func TestRunDueSkipsPaidInstallment(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.installments.items["inst-1"].Received = true

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Processed)
	assert.Equal(t, 0, report.Succeeded)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Skipped)
	assert.Empty(t, env.notifier.sent)
}

func TestRunDueRespectsBatchSize(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due-1", 1, constvars.ChannelWhatsApp)
	addDueSchedule(env, "due-2", 1, constvars.ChannelWhatsApp)
	addDueSchedule(env, "due-3", 1, constvars.ChannelWhatsApp)

	report, err := env.dispatcher.RunDue(context.Background(), "clinic-1", env.now, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Processed)
}

func TestSendManualRecordsManualTrigger(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)

	result, err := env.dispatcher.SendManual(context.Background(), &requests.SendManualNotification{
		PatientID:  "patient-1",
		ContractID: "contract-1",
		Channel:    constvars.ChannelWhatsApp,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	require.Len(t, env.histories.items, 1)
	assert.Equal(t, constvars.TriggerManual, env.histories.items[0].NotificationTrigger)
}

func TestSendManualWithoutScheduleFails(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.dispatcher.SendManual(context.Background(), &requests.SendManualNotification{
		PatientID:  "patient-1",
		ContractID: "contract-1",
		Channel:    constvars.ChannelWhatsApp,
	})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestSendManualRejectsNonNotifiableContract(t *testing.T) {
	env := newTestEnv(t)
	addDueSchedule(env, "due", 1, constvars.ChannelWhatsApp)
	env.contracts.items["contract-1"].DoNotifications = false

	result, err := env.dispatcher.SendManual(context.Background(), &requests.SendManualNotification{
		PatientID:  "patient-1",
		ContractID: "contract-1",
		Channel:    constvars.ChannelWhatsApp,
	})
	require.Error(t, err)
	assert.Nil(t, result)
}
