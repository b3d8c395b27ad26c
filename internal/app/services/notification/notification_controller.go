package notification

import (
	"context"
	"debtflow-service/internal/app/config"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/exceptions"
	"debtflow-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log            *zap.Logger
	Dispatcher     contracts.NotificationDispatcher
	InternalConfig *config.InternalConfig
}

func NewNotificationController(
	logger *zap.Logger,
	dispatcher contracts.NotificationDispatcher,
	internalConfig *config.InternalConfig,
) *NotificationController {
	return &NotificationController{
		Log:            logger,
		Dispatcher:     dispatcher,
		InternalConfig: internalConfig,
	}
}

// Run triggers a dispatch pass for one clinic outside the worker cadence.
func (ctrl *NotificationController) Run(w http.ResponseWriter, r *http.Request) {
	var request requests.RunNotifications
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	batchSize := request.BatchSize
	if batchSize <= 0 {
		batchSize = ctrl.InternalConfig.Notification.BatchSize
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	report, err := ctrl.Dispatcher.RunDue(ctx, request.ClinicID, time.Now(), batchSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RunNotificationsSuccessMessage, report)
}

func (ctrl *NotificationController) SendManual(w http.ResponseWriter, r *http.Request) {
	var request requests.SendManualNotification
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ctrl.Dispatcher.SendManual(ctx, &request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SendManualSuccessMessage, result)
}
