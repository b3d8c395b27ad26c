package histories

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/utils"
	"fmt"
)

type historyUsecase struct {
	HistoryRepository contracts.ContactHistoryRepository
	InternalConfig    *config.InternalConfig
}

func NewHistoryUsecase(historyRepository contracts.ContactHistoryRepository, internalConfig *config.InternalConfig) contracts.HistoryUsecase {
	return &historyUsecase{
		HistoryRepository: historyRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *historyUsecase) List(ctx context.Context, filter contracts.HistoryFilter, page, pageSize int) ([]responses.ContactHistory, *responses.Pagination, error) {
	histories, total, err := uc.HistoryRepository.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.ContactHistory, 0, len(histories))
	for i := range histories {
		result = append(result, *convertHistoryToResponse(&histories[i]))
	}

	baseURL := fmt.Sprintf("%s/histories", uc.InternalConfig.App.BaseUrl)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

func (uc *historyUsecase) FindByID(ctx context.Context, historyID string) (*responses.ContactHistory, error) {
	history, err := uc.HistoryRepository.FindByID(ctx, historyID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, nil
	}
	return convertHistoryToResponse(history), nil
}

func convertHistoryToResponse(history *models.ContactHistory) *responses.ContactHistory {
	return &responses.ContactHistory{
		ID:             history.ID,
		ScheduleID:     history.ScheduleID,
		PatientID:      history.PatientID,
		ContractID:     history.ContractID,
		ClinicID:       history.ClinicID,
		ContactType:    history.ContactType,
		SentAt:         history.SentAt,
		Success:        history.Success,
		FeedbackStatus: history.FeedbackStatus,
		Observation:    history.Observation,
	}
}
