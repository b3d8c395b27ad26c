package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type PendingCallRepository interface {
	Insert(ctx context.Context, call *models.PendingCall) (string, error)
	FindByID(ctx context.Context, callID string) (*models.PendingCall, error)
	FindOpenByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]models.PendingCall, int, error)
	Update(ctx context.Context, call *models.PendingCall) error
}

type PendingCallUsecase interface {
	FindOpenByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.PendingCall, *responses.Pagination, error)
	Resolve(ctx context.Context, callID string, request *requests.ResolvePendingCall) error
}
