package messages

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/utils"
	"fmt"
)

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	InternalConfig    *config.InternalConfig
}

func NewMessageUsecase(messageRepository contracts.MessageRepository, internalConfig *config.InternalConfig) contracts.MessageUsecase {
	return &messageUsecase{
		MessageRepository: messageRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *messageUsecase) Create(ctx context.Context, request *requests.CreateMessageTemplate) (*responses.MessageTemplate, error) {
	message := &models.Message{
		Type:      request.Type,
		Content:   request.Content,
		Step:      request.Step,
		ClinicID:  request.ClinicID,
		IsDefault: request.IsDefault,
	}
	messageID, err := uc.MessageRepository.Insert(ctx, message)
	if err != nil {
		return nil, err
	}
	message.ID = messageID
	return convertMessageToResponse(message), nil
}

func (uc *messageUsecase) FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.MessageTemplate, *responses.Pagination, error) {
	messages, total, err := uc.MessageRepository.FindByClinic(ctx, clinicID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.MessageTemplate, 0, len(messages))
	for i := range messages {
		result = append(result, *convertMessageToResponse(&messages[i]))
	}

	baseURL := fmt.Sprintf("%s/clinics/%s/messages", uc.InternalConfig.App.BaseUrl, clinicID)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

func convertMessageToResponse(message *models.Message) *responses.MessageTemplate {
	return &responses.MessageTemplate{
		ID:        message.ID,
		Type:      message.Type,
		Content:   message.Content,
		Step:      message.Step,
		ClinicID:  message.ClinicID,
		IsDefault: message.IsDefault,
	}
}
