package billing

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BillingController struct {
	Log                *zap.Logger
	ContractUsecase    contracts.ContractUsecase
	InstallmentUsecase contracts.InstallmentUsecase
}

func NewBillingController(
	logger *zap.Logger,
	contractUsecase contracts.ContractUsecase,
	installmentUsecase contracts.InstallmentUsecase,
) *BillingController {
	return &BillingController{
		Log:                logger,
		ContractUsecase:    contractUsecase,
		InstallmentUsecase: installmentUsecase,
	}
}

func (ctrl *BillingController) CreateContract(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateContract
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContractUsecase.Create(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResourceSuccessMessage, result)
}

func (ctrl *BillingController) FindContractByID(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	if contractID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url param"), "contractID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContractUsecase.FindByID(ctx, contractID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResourceNotFound(errors.New("contract not found"), "contract"))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContractSuccessMessage, result)
}

func (ctrl *BillingController) FindContractsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url param"), "patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ContractUsecase.FindByPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetContractSuccessMessage, result)
}

func (ctrl *BillingController) CreateInstallment(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateInstallment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.InstallmentUsecase.Create(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResourceSuccessMessage, result)
}

func (ctrl *BillingController) FindInstallmentsByContract(w http.ResponseWriter, r *http.Request) {
	contractID := chi.URLParam(r, "contractID")
	if contractID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url param"), "contractID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.InstallmentUsecase.FindByContract(ctx, contractID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetInstallmentSuccessMessage, result)
}

func (ctrl *BillingController) MarkInstallmentReceived(w http.ResponseWriter, r *http.Request) {
	installmentID := chi.URLParam(r, "installmentID")
	if installmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url param"), "installmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.InstallmentUsecase.MarkReceived(ctx, installmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateResourceSuccessMessage, nil)
}
