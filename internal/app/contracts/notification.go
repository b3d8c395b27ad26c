package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/requests"
	"debtflow-service/internal/pkg/dto/responses"
	"time"
)

// ContactScheduler owns the step/date arithmetic of the notification flow.
type ContactScheduler interface {
	// ScheduleInitial creates the first (or re-entry) schedule for an overdue
	// contract. Returns nil when nothing should be scheduled.
	ScheduleInitial(ctx context.Context, patientID, contractID, clinicID string) (*models.ContactSchedule, error)
	// AdvanceAfterSuccess marks the schedule sent and computes the follow-up
	// schedule, or ends the lineage when the flow is exhausted.
	AdvanceAfterSuccess(ctx context.Context, scheduleID string) (*models.ContactSchedule, error)
}

// NotificationDispatcher executes due contacts for a clinic.
type NotificationDispatcher interface {
	RunDue(ctx context.Context, clinicID string, now time.Time, batchSize int) (*responses.DispatchReport, error)
	SendManual(ctx context.Context, request *requests.SendManualNotification) (*responses.DispatchResult, error)
}
