package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
)

type CollectionCaseRepository interface {
	Insert(ctx context.Context, collectionCase *models.CollectionCase) (string, error)
	FindOpenByContract(ctx context.Context, contractID string) (*models.CollectionCase, error)
	Update(ctx context.Context, collectionCase *models.CollectionCase) error
}
