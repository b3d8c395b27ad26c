package flowsteps

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/constvars"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const flowConfigCacheTTL = 10 * time.Minute

// cachedFlowStepRepository fronts the mongo repository with a redis cache of
// the full active-step list. Flow configs change rarely and are read on every
// schedule computation, so staleness up to the TTL is acceptable.
type cachedFlowStepRepository struct {
	inner contracts.FlowStepConfigRepository
	redis contracts.RedisRepository
	Log   *zap.Logger
}

func NewCachedFlowStepRepository(inner contracts.FlowStepConfigRepository, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.FlowStepConfigRepository {
	return &cachedFlowStepRepository{
		inner: inner,
		redis: redisRepository,
		Log:   logger,
	}
}

func (r *cachedFlowStepRepository) FindByStep(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	return r.inner.FindByStep(ctx, stepNumber)
}

func (r *cachedFlowStepRepository) GetActive(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	configs, err := r.activeConfigs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range configs {
		if configs[i].StepNumber == stepNumber {
			return &configs[i], nil
		}
	}
	return nil, nil
}

func (r *cachedFlowStepRepository) ListActive(ctx context.Context) ([]models.FlowStepConfig, error) {
	return r.activeConfigs(ctx)
}

func (r *cachedFlowStepRepository) MaxActiveStep(ctx context.Context) (int, error) {
	configs, err := r.activeConfigs(ctx)
	if err != nil {
		return 0, err
	}
	max := 0
	for i := range configs {
		if configs[i].StepNumber > max {
			max = configs[i].StepNumber
		}
	}
	return max, nil
}

func (r *cachedFlowStepRepository) Upsert(ctx context.Context, config *models.FlowStepConfig) error {
	if err := r.inner.Upsert(ctx, config); err != nil {
		return err
	}
	// Invalidate so the next read repopulates from mongo.
	if err := r.redis.Delete(ctx, constvars.RedisKeyFlowConfigCache); err != nil {
		r.Log.Warn("cachedFlowStepRepository.Upsert cache invalidation error",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyFlowConfigCache),
			zap.Error(err),
		)
	}
	return nil
}

func (r *cachedFlowStepRepository) activeConfigs(ctx context.Context) ([]models.FlowStepConfig, error) {
	cached, err := r.redis.Get(ctx, constvars.RedisKeyFlowConfigCache)
	if err == nil && cached != "" {
		var configs []models.FlowStepConfig
		if err := json.Unmarshal([]byte(cached), &configs); err == nil {
			return configs, nil
		}
	}

	configs, err := r.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.redis.Set(ctx, constvars.RedisKeyFlowConfigCache, configs, flowConfigCacheTTL); err != nil {
		r.Log.Warn("cachedFlowStepRepository.activeConfigs cache write error",
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyFlowConfigCache),
			zap.Error(err),
		)
	}
	return configs, nil
}
