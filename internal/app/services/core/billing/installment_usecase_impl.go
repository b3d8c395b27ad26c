package billing

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"debtflow-service/internal/pkg/exceptions"
	"errors"

	"go.uber.org/zap"
)

type installmentUsecase struct {
	InstallmentRepository contracts.InstallmentRepository
	ContractRepository    contracts.ContractRepository
	ScheduleRepository    contracts.ContactScheduleRepository
	Scheduler             contracts.ContactScheduler
	Log                   *zap.Logger
}

func NewInstallmentUsecase(
	installmentRepository contracts.InstallmentRepository,
	contractRepository contracts.ContractRepository,
	scheduleRepository contracts.ContactScheduleRepository,
	scheduler contracts.ContactScheduler,
	logger *zap.Logger,
) contracts.InstallmentUsecase {
	return &installmentUsecase{
		InstallmentRepository: installmentRepository,
		ContractRepository:    contractRepository,
		ScheduleRepository:    scheduleRepository,
		Scheduler:             scheduler,
		Log:                   logger,
	}
}

// Create registers the installment and, when it becomes the contract's
// current one, enters the patient into the notification flow.
func (uc *installmentUsecase) Create(ctx context.Context, request *requests.CreateInstallment) (*responses.Installment, error) {
	contract, err := uc.ContractRepository.FindByID(ctx, request.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, exceptions.ErrResourceNotFound(errors.New("contract "+request.ContractID+" does not exist"), "contract")
	}

	installment := &models.Installment{
		ContractID: request.ContractID,
		Number:     request.Number,
		Amount:     request.Amount,
		DueDate:    request.DueDate,
		IsCurrent:  request.IsCurrent,
	}
	installmentID, err := uc.InstallmentRepository.Insert(ctx, installment)
	if err != nil {
		return nil, err
	}
	installment.ID = installmentID

	if installment.IsCurrent {
		if _, err := uc.Scheduler.ScheduleInitial(ctx, contract.PatientID, contract.ID, contract.ClinicID); err != nil {
			uc.Log.Error("installmentUsecase.Create schedule error",
				zap.String(constvars.LoggingContractIDKey, contract.ID),
				zap.Error(err),
			)
		}
	}
	return convertInstallmentToResponse(installment), nil
}

func (uc *installmentUsecase) FindByContract(ctx context.Context, contractID string) ([]responses.Installment, error) {
	installments, err := uc.InstallmentRepository.FindByContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Installment, 0, len(installments))
	for i := range installments {
		result = append(result, *convertInstallmentToResponse(&installments[i]))
	}
	return result, nil
}

// MarkReceived settles the installment and cancels the patient's pending
// contact, ending the lineage for this debt.
func (uc *installmentUsecase) MarkReceived(ctx context.Context, installmentID string) error {
	installment, err := uc.InstallmentRepository.FindByID(ctx, installmentID)
	if err != nil {
		return err
	}
	if installment == nil {
		return exceptions.ErrResourceNotFound(errors.New("installment "+installmentID+" does not exist"), "installment")
	}

	installment.Received = true
	installment.IsCurrent = false
	if err := uc.InstallmentRepository.Update(ctx, installment); err != nil {
		return err
	}

	contract, err := uc.ContractRepository.FindByID(ctx, installment.ContractID)
	if err != nil {
		return err
	}
	if contract != nil {
		if err := uc.ScheduleRepository.CancelPendingForPatient(ctx, contract.PatientID); err != nil {
			uc.Log.Error("installmentUsecase.MarkReceived cancel error",
				zap.String(constvars.LoggingPatientIDKey, contract.PatientID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func convertInstallmentToResponse(installment *models.Installment) *responses.Installment {
	return &responses.Installment{
		ID:         installment.ID,
		ContractID: installment.ContractID,
		Number:     installment.Number,
		Amount:     installment.Amount,
		DueDate:    installment.DueDate,
		Received:   installment.Received,
		IsCurrent:  installment.IsCurrent,
	}
}
