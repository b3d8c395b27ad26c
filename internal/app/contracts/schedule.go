package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/responses"
	"time"
)

type ScheduleFilter struct {
	ClinicID  string
	PatientID string
	Status    string
}

type ContactScheduleRepository interface {
	Insert(ctx context.Context, schedule *models.ContactSchedule) (string, error)
	FindByID(ctx context.Context, scheduleID string) (*models.ContactSchedule, error)
	FindByPatientContract(ctx context.Context, patientID, contractID string) (*models.ContactSchedule, error)
	// FindDue returns pending schedules with scheduledDate <= now for the clinic,
	// oldest first, capped at limit.
	FindDue(ctx context.Context, clinicID string, now time.Time, limit int) ([]models.ContactSchedule, error)
	List(ctx context.Context, filter ScheduleFilter, page, pageSize int) ([]models.ContactSchedule, int, error)
	HasScheduleForPatient(ctx context.Context, patientID string) (bool, error)
	HasPendingForPatient(ctx context.Context, patientID string) (bool, error)
	// CancelPendingForPatient flips every pending schedule of the patient to
	// cancelled, keeping the single-pending invariant before an insert.
	CancelPendingForPatient(ctx context.Context, patientID string) error
	SetStatus(ctx context.Context, scheduleID, status string) error
}

type ScheduleUsecase interface {
	List(ctx context.Context, filter ScheduleFilter, page, pageSize int) ([]responses.ContactSchedule, *responses.Pagination, error)
	FindByID(ctx context.Context, scheduleID string) (*responses.ContactSchedule, error)
}
