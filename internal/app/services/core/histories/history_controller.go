package histories

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HistoryController struct {
	Log            *zap.Logger
	HistoryUsecase contracts.HistoryUsecase
}

func NewHistoryController(logger *zap.Logger, historyUsecase contracts.HistoryUsecase) *HistoryController {
	return &HistoryController{
		Log:            logger,
		HistoryUsecase: historyUsecase,
	}
}

func (ctrl *HistoryController) List(w http.ResponseWriter, r *http.Request) {
	filter := contracts.HistoryFilter{
		ClinicID:  r.URL.Query().Get("clinic_id"),
		PatientID: r.URL.Query().Get("patient_id"),
		Channel:   r.URL.Query().Get("channel"),
	}
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, paginationData, err := ctrl.HistoryUsecase.List(ctx, filter, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetHistorySuccessMessage, paginationData, result)
}

func (ctrl *HistoryController) FindByID(w http.ResponseWriter, r *http.Request) {
	historyID := chi.URLParam(r, "historyID")
	if historyID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(errors.New("missing url param"), "historyID"))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HistoryUsecase.FindByID(ctx, historyID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if result == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResourceNotFound(errors.New("history not found"), "contact history"))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHistorySuccessMessage, result)
}
