package flowsteps

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type FlowStepController struct {
	Log             *zap.Logger
	FlowStepUsecase contracts.FlowStepUsecase
}

func NewFlowStepController(logger *zap.Logger, flowStepUsecase contracts.FlowStepUsecase) *FlowStepController {
	return &FlowStepController{
		Log:             logger,
		FlowStepUsecase: flowStepUsecase,
	}
}

func (ctrl *FlowStepController) ListActive(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FlowStepUsecase.ListActive(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFlowStepSuccessMessage, result)
}
