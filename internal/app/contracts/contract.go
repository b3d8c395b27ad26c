package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type ContractRepository interface {
	Insert(ctx context.Context, contract *models.Contract) (string, error)
	FindByID(ctx context.Context, contractID string) (*models.Contract, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Contract, error)
	Update(ctx context.Context, contract *models.Contract) error
}

type ContractUsecase interface {
	Create(ctx context.Context, request *requests.CreateContract) (*responses.Contract, error)
	FindByID(ctx context.Context, contractID string) (*responses.Contract, error)
	FindByPatient(ctx context.Context, patientID string) ([]responses.Contract, error)
}
