package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
)

// PipedriveClient is the outbound CRM surface used by the collection sync.
type PipedriveClient interface {
	SearchPersonByName(ctx context.Context, term string) (string, error)
	CreatePerson(ctx context.Context, name, email, phone string) (string, error)
	CreateDeal(ctx context.Context, personID, title string, value float64) (string, error)
	UpdateDealValue(ctx context.Context, dealID string, value float64) error
	CreateActivity(ctx context.Context, dealID, subject, note string) error
}

// OralsinClient pushes contact activity back into the external billing API.
type OralsinClient interface {
	RegisterContactActivity(ctx context.Context, history *models.ContactHistory) error
}

// ActivityPublisher emits contact-history records to the message broker for
// cross-service consumers.
type ActivityPublisher interface {
	PublishContactHistory(ctx context.Context, history *models.ContactHistory) error
}
