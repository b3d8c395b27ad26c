package notification

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// schedulingService owns the step/date arithmetic of the notification flow:
// where a patient enters the flow, and where they go after a successful send.
type schedulingService struct {
	scheduleRepo          contracts.ContactScheduleRepository
	installmentRepo       contracts.InstallmentRepository
	contractRepo          contracts.ContractRepository
	clinicRepo            contracts.ClinicRepository
	flowRepo              contracts.FlowStepConfigRepository
	collectionCaseRepo    contracts.CollectionCaseRepository
	dispatcher            contracts.EventDispatcher
	defaultMinDaysOverdue int
	now                   func() time.Time
	Log                   *zap.Logger
}

func NewSchedulingService(
	scheduleRepo contracts.ContactScheduleRepository,
	installmentRepo contracts.InstallmentRepository,
	contractRepo contracts.ContractRepository,
	clinicRepo contracts.ClinicRepository,
	flowRepo contracts.FlowStepConfigRepository,
	collectionCaseRepo contracts.CollectionCaseRepository,
	dispatcher contracts.EventDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ContactScheduler {
	return &schedulingService{
		scheduleRepo:          scheduleRepo,
		installmentRepo:       installmentRepo,
		contractRepo:          contractRepo,
		clinicRepo:            clinicRepo,
		flowRepo:              flowRepo,
		collectionCaseRepo:    collectionCaseRepo,
		dispatcher:            dispatcher,
		defaultMinDaysOverdue: internalConfig.Notification.DefaultMinDaysOverdue,
		now:                   time.Now,
		Log:                   logger,
	}
}

// ScheduleInitial schedules the contact for the contract's current open
// installment. The first contact for a patient is always step 1 (friendly
// message); a patient re-entering the flow lands on the step proportional to
// how late the installment already is.
func (s *schedulingService) ScheduleInitial(ctx context.Context, patientID, contractID, clinicID string) (*models.ContactSchedule, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil || !contract.DoNotifications {
		return nil, nil
	}

	inst, err := s.installmentRepo.GetCurrentInstallment(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if inst == nil || inst.Received {
		return nil, nil
	}

	hasAny, err := s.scheduleRepo.HasScheduleForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var step int
	var when time.Time
	if !hasAny {
		step = 1
		when = s.now()
	} else {
		pending, err := s.scheduleRepo.HasPendingForPatient(ctx, patientID)
		if err != nil {
			return nil, err
		}
		if pending {
			// The flow is already active, do not interrupt it.
			return nil, nil
		}
		step, when, err = s.proportionalStepAndDate(ctx, inst)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := s.flowRepo.GetActive(ctx, step)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, nil
	}

	return s.upsertSchedule(ctx, upsertParams{
		patientID:     patientID,
		contractID:    contractID,
		clinicID:      clinicID,
		installmentID: inst.ID,
		step:          step,
		channel:       cfg.PrimaryChannel(),
		when:          when,
	})
}

// AdvanceAfterSuccess marks the schedule sent and creates the follow-up
// schedule one step further, due after the completed step's cooldown. The
// lineage ends when the installment was paid, the contract crossed into
// cordial billing, or no further active step exists.
func (s *schedulingService) AdvanceAfterSuccess(ctx context.Context, scheduleID string) (*models.ContactSchedule, error) {
	current, err := s.scheduleRepo.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, exceptions.ErrScheduleNotFound(errors.New("schedule " + scheduleID + " does not exist"))
	}

	if err := s.scheduleRepo.SetStatus(ctx, scheduleID, constvars.ScheduleStatusSent); err != nil {
		return nil, err
	}

	inst, err := s.installmentRepo.FindByID(ctx, current.InstallmentID)
	if err != nil {
		return nil, err
	}
	if inst == nil || inst.Received {
		// Installment settled, nothing left to notify.
		return nil, nil
	}

	handedOff, err := s.handOffToBillingIfOverdue(ctx, current, inst)
	if err != nil {
		return nil, err
	}
	if handedOff {
		s.dispatcher.Dispatch(ctx, events.FlowExhausted{
			ScheduleID: current.ID,
			PatientID:  current.PatientID,
			ContractID: current.ContractID,
			ClinicID:   current.ClinicID,
			LastStep:   current.CurrentStep,
		})
		return nil, nil
	}

	completedCfg, err := s.flowRepo.GetActive(ctx, current.CurrentStep)
	if err != nil {
		return nil, err
	}
	cooldownDays := constvars.DefaultCooldownDays
	if completedCfg != nil {
		cooldownDays = completedCfg.CooldownDays
	}

	nextStep := current.CurrentStep + 1
	nextCfg, err := s.flowRepo.GetActive(ctx, nextStep)
	if err != nil {
		return nil, err
	}
	if nextCfg == nil {
		s.dispatcher.Dispatch(ctx, events.FlowExhausted{
			ScheduleID: current.ID,
			PatientID:  current.PatientID,
			ContractID: current.ContractID,
			ClinicID:   current.ClinicID,
			LastStep:   current.CurrentStep,
		})
		return nil, nil
	}

	return s.upsertSchedule(ctx, upsertParams{
		patientID:     current.PatientID,
		contractID:    current.ContractID,
		clinicID:      current.ClinicID,
		installmentID: current.InstallmentID,
		step:          nextStep,
		channel:       nextCfg.PrimaryChannel(),
		when:          s.now().AddDate(0, 0, cooldownDays),
	})
}

// handOffToBillingIfOverdue flips the contract into cordial billing once the
// installment is older than the clinic's min-days-overdue threshold, opening
// a collection case for the CRM sync.
func (s *schedulingService) handOffToBillingIfOverdue(ctx context.Context, current *models.ContactSchedule, inst *models.Installment) (bool, error) {
	minDays := s.defaultMinDaysOverdue
	clinic, err := s.clinicRepo.FindByID(ctx, current.ClinicID)
	if err != nil {
		return false, err
	}
	if clinic != nil && clinic.MinDaysOverdue > 0 {
		minDays = clinic.MinDaysOverdue
	}

	daysOverdue := int(s.now().Sub(inst.DueDate).Hours() / 24)
	if daysOverdue <= minDays {
		return false, nil
	}

	contract, err := s.contractRepo.FindByID(ctx, current.ContractID)
	if err != nil {
		return false, err
	}
	if contract == nil || contract.DoBillings {
		return false, nil
	}

	contract.DoBillings = true
	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return false, err
	}

	_, err = s.collectionCaseRepo.Insert(ctx, &models.CollectionCase{
		ID:            uuid.NewString(),
		PatientID:     current.PatientID,
		ContractID:    current.ContractID,
		ClinicID:      current.ClinicID,
		InstallmentID: inst.ID,
		Amount:        inst.Amount,
		OpenedAt:      s.now(),
		Status:        constvars.CollectionCaseStatusOpen,
	})
	if err != nil {
		return false, err
	}

	s.Log.Info("schedulingService.AdvanceAfterSuccess handed contract to cordial billing",
		zap.String(constvars.LoggingContractIDKey, current.ContractID),
		zap.String(constvars.LoggingClinicIDKey, current.ClinicID),
	)
	return true, nil
}

func (s *schedulingService) proportionalStepAndDate(ctx context.Context, inst *models.Installment) (int, time.Time, error) {
	now := s.now()
	if inst.DueDate.After(now) {
		// Pre-due friendly reminder.
		return 0, inst.DueDate.AddDate(0, 0, -constvars.DefaultCooldownDays), nil
	}

	daysOverdue := int(now.Sub(inst.DueDate).Hours() / 24)
	rawStep := daysOverdue/constvars.DefaultCooldownDays + 1
	maxStep, err := s.flowRepo.MaxActiveStep(ctx)
	if err != nil {
		return 0, time.Time{}, err
	}
	if rawStep > maxStep {
		rawStep = maxStep
	}
	return rawStep, now, nil
}

type upsertParams struct {
	patientID     string
	contractID    string
	clinicID      string
	installmentID string
	step          int
	channel       string
	when          time.Time
}

// upsertSchedule keeps the single-pending invariant: any other pending
// schedule of the patient is cancelled before the new one is inserted.
func (s *schedulingService) upsertSchedule(ctx context.Context, p upsertParams) (*models.ContactSchedule, error) {
	if err := s.scheduleRepo.CancelPendingForPatient(ctx, p.patientID); err != nil {
		return nil, err
	}

	schedule := &models.ContactSchedule{
		ID:                  uuid.NewString(),
		PatientID:           p.patientID,
		ContractID:          p.contractID,
		ClinicID:            p.clinicID,
		InstallmentID:       p.installmentID,
		CurrentStep:         p.step,
		Channel:             p.channel,
		Status:              constvars.ScheduleStatusPending,
		ScheduledDate:       p.when,
		NotificationTrigger: constvars.TriggerAutomated,
	}
	if _, err := s.scheduleRepo.Insert(ctx, schedule); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, events.NotificationScheduled{
		ScheduleID:    schedule.ID,
		PatientID:     schedule.PatientID,
		ContractID:    schedule.ContractID,
		ClinicID:      schedule.ClinicID,
		Step:          schedule.CurrentStep,
		Channel:       schedule.Channel,
		ScheduledDate: schedule.ScheduledDate,
	})

	s.Log.Info("schedulingService.upsertSchedule created schedule",
		zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
		zap.String(constvars.LoggingPatientIDKey, schedule.PatientID),
		zap.Int(constvars.LoggingStepKey, schedule.CurrentStep),
		zap.String(constvars.LoggingChannelKey, schedule.Channel),
	)
	return schedule, nil
}
