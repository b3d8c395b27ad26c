package schedules

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/utils"
	"fmt"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ContactScheduleRepository
	InternalConfig     *config.InternalConfig
}

func NewScheduleUsecase(scheduleRepository contracts.ContactScheduleRepository, internalConfig *config.InternalConfig) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		InternalConfig:     internalConfig,
	}
}

func (uc *scheduleUsecase) List(ctx context.Context, filter contracts.ScheduleFilter, page, pageSize int) ([]responses.ContactSchedule, *responses.Pagination, error) {
	schedules, total, err := uc.ScheduleRepository.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.ContactSchedule, 0, len(schedules))
	for i := range schedules {
		result = append(result, *convertScheduleToResponse(&schedules[i]))
	}

	baseURL := fmt.Sprintf("%s/schedules", uc.InternalConfig.App.BaseUrl)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

func (uc *scheduleUsecase) FindByID(ctx context.Context, scheduleID string) (*responses.ContactSchedule, error) {
	schedule, err := uc.ScheduleRepository.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}
	return convertScheduleToResponse(schedule), nil
}

func convertScheduleToResponse(schedule *models.ContactSchedule) *responses.ContactSchedule {
	return &responses.ContactSchedule{
		ID:                  schedule.ID,
		PatientID:           schedule.PatientID,
		ContractID:          schedule.ContractID,
		ClinicID:            schedule.ClinicID,
		InstallmentID:       schedule.InstallmentID,
		CurrentStep:         schedule.CurrentStep,
		Channel:             schedule.Channel,
		Status:              schedule.Status,
		ScheduledDate:       schedule.ScheduledDate,
		NotificationTrigger: schedule.NotificationTrigger,
	}
}
