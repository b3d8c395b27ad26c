package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *models.Message) (string, error)
	FindByID(ctx context.Context, messageID string) (*models.Message, error)
	// GetMessage resolves the template for a channel/step, preferring the
	// clinic-specific template and falling back to the default one.
	GetMessage(ctx context.Context, channel string, step int, clinicID string) (*models.Message, error)
	FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]models.Message, int, error)
}

type MessageUsecase interface {
	Create(ctx context.Context, request *requests.CreateMessageTemplate) (*responses.MessageTemplate, error)
	FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.MessageTemplate, *responses.Pagination, error)
}
