package billing

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/exceptions"
	"errors"
)

type contractUsecase struct {
	ContractRepository contracts.ContractRepository
	PatientRepository  contracts.PatientRepository
}

func NewContractUsecase(
	contractRepository contracts.ContractRepository,
	patientRepository contracts.PatientRepository,
) contracts.ContractUsecase {
	return &contractUsecase{
		ContractRepository: contractRepository,
		PatientRepository:  patientRepository,
	}
}

func (uc *contractUsecase) Create(ctx context.Context, request *requests.CreateContract) (*responses.Contract, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrResourceNotFound(errors.New("patient "+request.PatientID+" does not exist"), "patient")
	}

	contract := &models.Contract{
		PatientID:       request.PatientID,
		ClinicID:        request.ClinicID,
		OralsinID:       request.OralsinID,
		DoNotifications: request.DoNotifications,
	}
	contractID, err := uc.ContractRepository.Insert(ctx, contract)
	if err != nil {
		return nil, err
	}
	contract.ID = contractID
	return convertContractToResponse(contract), nil
}

func (uc *contractUsecase) FindByID(ctx context.Context, contractID string) (*responses.Contract, error) {
	contract, err := uc.ContractRepository.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, nil
	}
	return convertContractToResponse(contract), nil
}

func (uc *contractUsecase) FindByPatient(ctx context.Context, patientID string) ([]responses.Contract, error) {
	contractModels, err := uc.ContractRepository.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Contract, 0, len(contractModels))
	for i := range contractModels {
		result = append(result, *convertContractToResponse(&contractModels[i]))
	}
	return result, nil
}

func convertContractToResponse(contract *models.Contract) *responses.Contract {
	return &responses.Contract{
		ID:              contract.ID,
		PatientID:       contract.PatientID,
		ClinicID:        contract.ClinicID,
		OralsinID:       contract.OralsinID,
		DoNotifications: contract.DoNotifications,
		DoBillings:      contract.DoBillings,
	}
}
