package flowsteps

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/pkg/dto/responses"
)

type flowStepUsecase struct {
	FlowStepRepository contracts.FlowStepConfigRepository
}

func NewFlowStepUsecase(flowStepRepository contracts.FlowStepConfigRepository) contracts.FlowStepUsecase {
	return &flowStepUsecase{FlowStepRepository: flowStepRepository}
}

func (uc *flowStepUsecase) ListActive(ctx context.Context) ([]responses.FlowStep, error) {
	configs, err := uc.FlowStepRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.FlowStep, 0, len(configs))
	for _, cfg := range configs {
		result = append(result, responses.FlowStep{
			StepNumber:   cfg.StepNumber,
			Channels:     cfg.Channels,
			CooldownDays: cfg.CooldownDays,
			Active:       cfg.Active,
			Description:  cfg.Description,
		})
	}
	return result, nil
}
