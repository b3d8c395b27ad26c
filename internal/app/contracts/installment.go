package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type InstallmentRepository interface {
	Insert(ctx context.Context, installment *models.Installment) (string, error)
	FindByID(ctx context.Context, installmentID string) (*models.Installment, error)
	GetCurrentInstallment(ctx context.Context, contractID string) (*models.Installment, error)
	FindByContract(ctx context.Context, contractID string) ([]models.Installment, error)
	Update(ctx context.Context, installment *models.Installment) error
}

type InstallmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateInstallment) (*responses.Installment, error)
	FindByContract(ctx context.Context, contractID string) ([]responses.Installment, error)
	MarkReceived(ctx context.Context, installmentID string) error
}
