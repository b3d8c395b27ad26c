package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/responses"
	"time"
)

type HistoryFilter struct {
	ClinicID  string
	PatientID string
	Channel   string
}

type ContactHistoryRepository interface {
	Insert(ctx context.Context, history *models.ContactHistory) (string, error)
	FindByID(ctx context.Context, historyID string) (*models.ContactHistory, error)
	List(ctx context.Context, filter HistoryFilter, page, pageSize int) ([]models.ContactHistory, int, error)
	ListByClinicBetween(ctx context.Context, clinicID string, from, to time.Time) ([]models.ContactHistory, error)
}

type HistoryUsecase interface {
	List(ctx context.Context, filter HistoryFilter, page, pageSize int) ([]responses.ContactHistory, *responses.Pagination, error)
	FindByID(ctx context.Context, historyID string) (*responses.ContactHistory, error)
}
