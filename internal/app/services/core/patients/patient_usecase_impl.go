package patients

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"errors"
	"fmt"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	ClinicRepository  contracts.ClinicRepository
	InternalConfig    *config.InternalConfig
}

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	clinicRepository contracts.ClinicRepository,
	internalConfig *config.InternalConfig,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		ClinicRepository:  clinicRepository,
		InternalConfig:    internalConfig,
	}
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	clinic, err := uc.ClinicRepository.FindByID(ctx, request.ClinicID)
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrResourceNotFound(errors.New("clinic "+request.ClinicID+" does not exist"), "clinic")
	}

	patient := &models.Patient{
		ClinicID: request.ClinicID,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Address:  request.Address,
	}
	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID
	return convertPatientToResponse(patient), nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}
	return convertPatientToResponse(patient), nil
}

func (uc *patientUsecase) FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]responses.Patient, *responses.Pagination, error) {
	patients, total, err := uc.PatientRepository.FindByClinic(ctx, clinicID, page, pageSize)
	if err != nil {
		return nil, nil, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *convertPatientToResponse(&patients[i]))
	}

	baseURL := fmt.Sprintf("%s/clinics/%s/patients", uc.InternalConfig.App.BaseUrl, clinicID)
	pagination := utils.BuildPaginationResponse(total, page, pageSize, baseURL)
	return result, pagination, nil
}

func convertPatientToResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:       patient.ID,
		ClinicID: patient.ClinicID,
		Name:     patient.Name,
		Email:    patient.Email,
		Phone:    patient.Phone,
		Address:  patient.Address,
	}
}
