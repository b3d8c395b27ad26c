package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	Insert(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]models.Patient, int, error)
	Update(ctx context.Context, patient *models.Patient) error
}

type PatientUsecase interface {
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.Patient, *responses.Pagination, error)
}
