package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type ClinicRepository interface {
	Insert(ctx context.Context, clinic *models.Clinic) (string, error)
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
	FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, int, error)
	FindActive(ctx context.Context) ([]models.Clinic, error)
	Update(ctx context.Context, clinic *models.Clinic) error
}

type ClinicUsecase interface {
	Create(ctx context.Context, request *requests.CreateClinic) (*responses.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error)
	FindAll(ctx context.Context, page, pageSize int) ([]responses.Clinic, *responses.Pagination, error)
}
