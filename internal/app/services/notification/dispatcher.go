package notification

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/app/services/shared/notifiers"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/exceptions"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type dispatcherService struct {
	scheduleRepo    contracts.ContactScheduleRepository
	installmentRepo contracts.InstallmentRepository
	contractRepo    contracts.ContractRepository
	flowRepo        contracts.FlowStepConfigRepository
	historyRepo     contracts.ContactHistoryRepository
	pendingCallRepo contracts.PendingCallRepository
	scheduler       contracts.ContactScheduler
	sender          *senderService
	dispatcher      contracts.EventDispatcher
	now             func() time.Time
	Log             *zap.Logger
}

func NewDispatcherService(
	scheduleRepo contracts.ContactScheduleRepository,
	installmentRepo contracts.InstallmentRepository,
	contractRepo contracts.ContractRepository,
	flowRepo contracts.FlowStepConfigRepository,
	historyRepo contracts.ContactHistoryRepository,
	pendingCallRepo contracts.PendingCallRepository,
	messageRepo contracts.MessageRepository,
	patientRepo contracts.PatientRepository,
	registry contracts.NotifierRegistry,
	scheduler contracts.ContactScheduler,
	eventDispatcher contracts.EventDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.NotificationDispatcher {
	sendTimeout := time.Duration(internalConfig.Notification.SendTimeoutInSecond) * time.Second
	return &dispatcherService{
		scheduleRepo:    scheduleRepo,
		installmentRepo: installmentRepo,
		contractRepo:    contractRepo,
		flowRepo:        flowRepo,
		historyRepo:     historyRepo,
		pendingCallRepo: pendingCallRepo,
		scheduler:       scheduler,
		sender:          newSenderService(messageRepo, patientRepo, registry, sendTimeout),
		dispatcher:      eventDispatcher,
		now:             time.Now,
		Log:             logger,
	}
}

// RunDue processes the clinic's due pending schedules, oldest first. Each
// schedule ends the run in exactly one of four states: succeeded (sent,
// history recorded, flow advanced), failed (permanent error, history
// recorded, no advance), retried (temporary error, schedule untouched) or
// skipped (no longer eligible).
func (s *dispatcherService) RunDue(ctx context.Context, clinicID string, now time.Time, batchSize int) (*responses.DispatchReport, error) {
	s.Log.Info("dispatcherService.RunDue called",
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.Int("batch_size", batchSize),
	)

	schedules, err := s.scheduleRepo.FindDue(ctx, clinicID, now, batchSize)
	if err != nil {
		return nil, err
	}

	report := &responses.DispatchReport{ClinicID: clinicID, Results: make([]responses.DispatchResult, 0, len(schedules))}
	for i := range schedules {
		result := s.processSchedule(ctx, &schedules[i])
		report.Processed++
		switch {
		case result.Skipped:
		case result.Success, result.PendingCall:
			report.Succeeded++
		case result.Retriable:
			report.Retried++
		default:
			report.Failed++
		}
		report.Results = append(report.Results, result)
	}

	s.Log.Info("dispatcherService.RunDue finished",
		zap.String(constvars.LoggingClinicIDKey, clinicID),
		zap.Int(constvars.LoggingProcessedKey, report.Processed),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Int("retried", report.Retried),
	)
	return report, nil
}

func (s *dispatcherService) processSchedule(ctx context.Context, schedule *models.ContactSchedule) responses.DispatchResult {
	result := responses.DispatchResult{
		ScheduleID: schedule.ID,
		PatientID:  schedule.PatientID,
		ContractID: schedule.ContractID,
		Step:       schedule.CurrentStep,
		Channel:    schedule.Channel,
	}

	inst, skip := s.eligibleInstallment(ctx, schedule)
	if skip {
		result.Skipped = true
		return result
	}

	cfg, err := s.flowRepo.GetActive(ctx, schedule.CurrentStep)
	if err != nil || cfg == nil {
		result.Skipped = true
		return result
	}

	if schedule.Channel == constvars.ChannelPhoneCall {
		if err := s.createPendingCall(ctx, schedule); err != nil {
			result.Error = err.Error()
			return result
		}
		result.PendingCall = true
		return result
	}

	msg, err := s.sender.resolveMessage(ctx, schedule.Channel, schedule.CurrentStep, schedule.ClinicID, "")
	if err != nil {
		result.Skipped = true
		result.Error = err.Error()
		s.Log.Warn("dispatcherService.processSchedule no template",
			zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			zap.String(constvars.LoggingChannelKey, schedule.Channel),
			zap.Int(constvars.LoggingStepKey, schedule.CurrentStep),
		)
		return result
	}

	sendErr := s.sender.deliver(ctx, schedule, msg, inst)
	switch {
	case sendErr == nil:
		s.recordOutcome(ctx, schedule, msg.ID, true, "", constvars.TriggerAutomated)
		if _, err := s.scheduler.AdvanceAfterSuccess(ctx, schedule.ID); err != nil {
			s.Log.Error("dispatcherService.processSchedule advance error",
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
				zap.Error(err),
			)
		}
		result.Success = true
	case notifiers.IsPermanent(sendErr):
		if err := s.scheduleRepo.SetStatus(ctx, schedule.ID, constvars.ScheduleStatusFailed); err != nil {
			s.Log.Error("dispatcherService.processSchedule set status error",
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
				zap.Error(err),
			)
		}
		s.recordOutcome(ctx, schedule, msg.ID, false, sendErr.Error(), constvars.TriggerAutomated)
		result.Error = sendErr.Error()
	default:
		// Temporary failure: the schedule stays pending and is retried on
		// the next run. No history, no event.
		result.Error = sendErr.Error()
		result.Retriable = true
	}
	return result
}

// eligibleInstallment re-checks the schedule's preconditions at dispatch
// time: the installment must still be open and the contract notifiable.
func (s *dispatcherService) eligibleInstallment(ctx context.Context, schedule *models.ContactSchedule) (*models.Installment, bool) {
	contract, err := s.contractRepo.FindByID(ctx, schedule.ContractID)
	if err != nil || contract == nil || !contract.DoNotifications {
		return nil, true
	}

	inst, err := s.installmentRepo.FindByID(ctx, schedule.InstallmentID)
	if err != nil || inst == nil || inst.Received {
		return nil, true
	}
	return inst, false
}

// createPendingCall turns a phonecall schedule into a task for clinic staff.
// The flow does not advance until the call is resolved.
func (s *dispatcherService) createPendingCall(ctx context.Context, schedule *models.ContactSchedule) error {
	_, err := s.pendingCallRepo.Insert(ctx, &models.PendingCall{
		ID:          uuid.NewString(),
		PatientID:   schedule.PatientID,
		ContractID:  schedule.ContractID,
		ClinicID:    schedule.ClinicID,
		ScheduleID:  schedule.ID,
		CurrentStep: schedule.CurrentStep,
		ScheduledAt: schedule.ScheduledDate,
		Status:      constvars.PendingCallStatusOpen,
	})
	if err != nil {
		return err
	}
	return s.scheduleRepo.SetStatus(ctx, schedule.ID, constvars.ScheduleStatusSent)
}

// recordOutcome appends the ContactHistory row and emits ContactRecorded.
// Only final outcomes reach here; temporary failures never do.
func (s *dispatcherService) recordOutcome(ctx context.Context, schedule *models.ContactSchedule, messageID string, success bool, observation, trigger string) {
	sentAt := s.now()
	history := &models.ContactHistory{
		ID:                  uuid.NewString(),
		ScheduleID:          schedule.ID,
		PatientID:           schedule.PatientID,
		ContractID:          schedule.ContractID,
		ClinicID:            schedule.ClinicID,
		ContactType:         schedule.Channel,
		Step:                schedule.CurrentStep,
		SentAt:              sentAt,
		Success:             success,
		NotificationTrigger: trigger,
		Observation:         observation,
		MessageID:           messageID,
	}
	historyID, err := s.historyRepo.Insert(ctx, history)
	if err != nil {
		s.Log.Error("dispatcherService.recordOutcome insert error",
			zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
			zap.Error(err),
		)
		return
	}

	s.dispatcher.Dispatch(ctx, events.ContactRecorded{
		HistoryID:  historyID,
		ScheduleID: schedule.ID,
		PatientID:  schedule.PatientID,
		ContractID: schedule.ContractID,
		ClinicID:   schedule.ClinicID,
		Channel:    schedule.Channel,
		Step:       schedule.CurrentStep,
		Success:    success,
		Trigger:    trigger,
		SentAt:     sentAt,
	})
}

// SendManual sends one notification outside the automated cadence. The
// flow position is untouched unless the send succeeds.
func (s *dispatcherService) SendManual(ctx context.Context, request *requests.SendManualNotification) (*responses.DispatchResult, error) {
	schedule, err := s.scheduleRepo.FindByPatientContract(ctx, request.PatientID, request.ContractID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrScheduleNotFound(errors.New("no schedule for patient " + request.PatientID))
	}

	contract, err := s.contractRepo.FindByID(ctx, schedule.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil || !contract.DoNotifications {
		return nil, exceptions.ErrContractNotNotifiable(errors.New("contract " + request.ContractID + " is not notifiable"))
	}

	inst, err := s.installmentRepo.FindByID(ctx, schedule.InstallmentID)
	if err != nil {
		return nil, err
	}

	manual := *schedule
	manual.Channel = request.Channel

	result := &responses.DispatchResult{
		ScheduleID: schedule.ID,
		PatientID:  schedule.PatientID,
		ContractID: schedule.ContractID,
		Step:       schedule.CurrentStep,
		Channel:    request.Channel,
	}

	if request.Channel == constvars.ChannelPhoneCall {
		if err := s.createPendingCall(ctx, &manual); err != nil {
			return nil, err
		}
		result.PendingCall = true
		return result, nil
	}

	msg, err := s.sender.resolveMessage(ctx, request.Channel, schedule.CurrentStep, schedule.ClinicID, request.MessageID)
	if err != nil {
		return nil, err
	}

	sendErr := s.sender.deliver(ctx, &manual, msg, inst)
	switch {
	case sendErr == nil:
		s.recordOutcome(ctx, &manual, msg.ID, true, "", constvars.TriggerManual)
		if _, err := s.scheduler.AdvanceAfterSuccess(ctx, schedule.ID); err != nil {
			s.Log.Error("dispatcherService.SendManual advance error",
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
				zap.Error(err),
			)
		}
		result.Success = true
	case notifiers.IsPermanent(sendErr):
		if err := s.scheduleRepo.SetStatus(ctx, schedule.ID, constvars.ScheduleStatusFailed); err != nil {
			s.Log.Error("dispatcherService.SendManual set status error",
				zap.String(constvars.LoggingScheduleIDKey, schedule.ID),
				zap.Error(err),
			)
		}
		s.recordOutcome(ctx, &manual, msg.ID, false, sendErr.Error(), constvars.TriggerManual)
		result.Error = sendErr.Error()
	default:
		result.Error = sendErr.Error()
		result.Retriable = true
	}
	return result, nil
}
