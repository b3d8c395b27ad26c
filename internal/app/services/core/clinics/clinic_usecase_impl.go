package clinics

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

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	InternalConfig   *config.InternalConfig
}

func NewClinicUsecase(clinicRepository contracts.ClinicRepository, internalConfig *config.InternalConfig) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicRepository: clinicRepository,
		InternalConfig:   internalConfig,
	}
}

func (uc *clinicUsecase) Create(ctx context.Context, request *requests.CreateClinic) (*responses.Clinic, error) {
	clinic := &models.Clinic{
		Name:           request.Name,
		City:           request.City,
		Active:         true,
		MinDaysOverdue: request.MinDaysOverdue,
	}
	if clinic.MinDaysOverdue == 0 {
		clinic.MinDaysOverdue = uc.InternalConfig.Notification.DefaultMinDaysOverdue
	}

	clinicID, err := uc.ClinicRepository.Insert(ctx, clinic)
	if err != nil {
		return nil, err
	}
	clinic.ID = clinicID
	return convertClinicToResponse(clinic), nil
}

func (uc *clinicUsecase) FindByID(ctx context.Context, clinicID string) (*responses.Clinic, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, nil
	}
	return convertClinicToResponse(clinic), nil
}

func (uc *clinicUsecase) FindAll(ctx context.Context, page, pageSize int) ([]responses.Clinic, *responses.Pagination, error) {
	clinics, total, err := uc.ClinicRepository.FindAll(ctx, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Clinic, 0, len(clinics))
	for i := range clinics {
		result = append(result, *convertClinicToResponse(&clinics[i]))
	}

	baseURL := fmt.Sprintf("%s/clinics", uc.InternalConfig.App.BaseUrl)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

func convertClinicToResponse(clinic *models.Clinic) *responses.Clinic {
	return &responses.Clinic{
		ID:             clinic.ID,
		Name:           clinic.Name,
		City:           clinic.City,
		Active:         clinic.Active,
		MinDaysOverdue: clinic.MinDaysOverdue,
	}
}
