package pendingcalls

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type pendingCallUsecase struct {
	PendingCallRepository contracts.PendingCallRepository
	HistoryRepository     contracts.ContactHistoryRepository
	Scheduler             contracts.ContactScheduler
	EventDispatcher       contracts.EventDispatcher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPendingCallUsecase(
	pendingCallRepository contracts.PendingCallRepository,
	historyRepository contracts.ContactHistoryRepository,
	scheduler contracts.ContactScheduler,
	eventDispatcher contracts.EventDispatcher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PendingCallUsecase {
	return &pendingCallUsecase{
		PendingCallRepository: pendingCallRepository,
		HistoryRepository:     historyRepository,
		Scheduler:             scheduler,
		EventDispatcher:       eventDispatcher,
		InternalConfig:        internalConfig,
		Log:                   logger,
	}
}

func (uc *pendingCallUsecase) FindOpenByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.PendingCall, *responses.Pagination, error) {
	calls, total, err := uc.PendingCallRepository.FindOpenByClinic(ctx, clinicID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.PendingCall, 0, len(calls))
	for i := range calls {
		result = append(result, *convertPendingCallToResponse(&calls[i]))
	}

	baseURL := fmt.Sprintf("%s/clinics/%s/pending-calls", uc.InternalConfig.App.BaseUrl, clinicID)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

// Resolve closes the loop on a phonecall contact. A completed call is a
// final outcome: history is recorded and the flow advances. A missed call
// keeps the task open with the attempt counted, to be retried by staff.
func (uc *pendingCallUsecase) Resolve(ctx context.Context, callID string, request *requests.ResolvePendingCall) error {
	call, err := uc.PendingCallRepository.FindByID(ctx, callID)
	if err != nil {
		return err
	}
	if call == nil {
		return exceptions.ErrResourceNotFound(errors.New("pending call "+callID+" does not exist"), "pending call")
	}

	now := time.Now()
	call.Attempts++
	call.LastAttemptAt = &now
	call.ResultNotes = request.ResultNotes

	if !request.Success {
		if err := uc.PendingCallRepository.Update(ctx, call); err != nil {
			return err
		}
		return nil
	}

	call.Status = constvars.PendingCallStatusDone
	if err := uc.PendingCallRepository.Update(ctx, call); err != nil {
		return err
	}

	history := &models.ContactHistory{
		ID:                  uuid.NewString(),
		ScheduleID:          call.ScheduleID,
		PatientID:           call.PatientID,
		ContractID:          call.ContractID,
		ClinicID:            call.ClinicID,
		ContactType:         constvars.ChannelPhoneCall,
		Step:                call.CurrentStep,
		SentAt:              now,
		Success:             true,
		NotificationTrigger: constvars.TriggerManual,
		Observation:         request.ResultNotes,
	}
	historyID, err := uc.HistoryRepository.Insert(ctx, history)
	if err != nil {
		return err
	}

	uc.EventDispatcher.Dispatch(ctx, events.ContactRecorded{
		HistoryID:  historyID,
		ScheduleID: call.ScheduleID,
		PatientID:  call.PatientID,
		ContractID: call.ContractID,
		ClinicID:   call.ClinicID,
		Channel:    constvars.ChannelPhoneCall,
		Step:       call.CurrentStep,
		Success:    true,
		Trigger:    constvars.TriggerManual,
		SentAt:     now,
	})

	if call.ScheduleID != "" {
		if _, err := uc.Scheduler.AdvanceAfterSuccess(ctx, call.ScheduleID); err != nil {
			uc.Log.Error("pendingCallUsecase.Resolve advance error",
				zap.String(constvars.LoggingScheduleIDKey, call.ScheduleID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func convertPendingCallToResponse(call *models.PendingCall) *responses.PendingCall {
	return &responses.PendingCall{
		ID:            call.ID,
		PatientID:     call.PatientID,
		ContractID:    call.ContractID,
		ClinicID:      call.ClinicID,
		ScheduleID:    call.ScheduleID,
		CurrentStep:   call.CurrentStep,
		ScheduledAt:   call.ScheduledAt,
		Attempts:      call.Attempts,
		Status:        call.Status,
		LastAttemptAt: call.LastAttemptAt,
		ResultNotes:   call.ResultNotes,
	}
}
