package oralsin

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/services/shared/events"
	"debtflow-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// ActivitySyncService pushes every recorded contact back into the Oralsin
// billing API and onto the activities exchange.
type ActivitySyncService struct {
	OralsinClient     contracts.OralsinClient
	ActivityPublisher contracts.ActivityPublisher
	HistoryRepository contracts.ContactHistoryRepository
	Log               *zap.Logger
}

func NewActivitySyncService(
	oralsinClient contracts.OralsinClient,
	activityPublisher contracts.ActivityPublisher,
	historyRepository contracts.ContactHistoryRepository,
	logger *zap.Logger,
) *ActivitySyncService {
	return &ActivitySyncService{
		OralsinClient:     oralsinClient,
		ActivityPublisher: activityPublisher,
		HistoryRepository: historyRepository,
		Log:               logger,
	}
}

func (svc *ActivitySyncService) Register(dispatcher contracts.EventDispatcher) {
	dispatcher.Subscribe(events.ContactRecordedName, svc.HandleContactRecorded)
}

func (svc *ActivitySyncService) HandleContactRecorded(ctx context.Context, event contracts.Event) error {
	recorded, ok := event.(events.ContactRecorded)
	if !ok {
		return nil
	}

	history, err := svc.HistoryRepository.FindByID(ctx, recorded.HistoryID)
	if err != nil {
		return err
	}
	if history == nil {
		return nil
	}

	if err := svc.ActivityPublisher.PublishContactHistory(ctx, history); err != nil {
		svc.Log.Error("ActivitySyncService.HandleContactRecorded publish error",
			zap.String(constvars.LoggingHistoryIDKey, history.ID),
			zap.Error(err),
		)
	}
	return svc.OralsinClient.RegisterContactActivity(ctx, history)
}
