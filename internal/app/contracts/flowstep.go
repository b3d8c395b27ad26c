package contracts

import (
	"context"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/dto/responses"
)

type FlowStepConfigRepository interface {
	FindByStep(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error)
	GetActive(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error)
	ListActive(ctx context.Context) ([]models.FlowStepConfig, error)
	MaxActiveStep(ctx context.Context) (int, error)
	Upsert(ctx context.Context, config *models.FlowStepConfig) error
}

type FlowStepUsecase interface {
	ListActive(ctx context.Context) ([]responses.FlowStep, error)
}
