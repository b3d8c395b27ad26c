package flowsteps

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FlowStepMongoRepository struct {
	Collection *mongo.Collection
}

func NewFlowStepMongoRepository(db *mongo.Client, dbName string) contracts.FlowStepConfigRepository {
	return &FlowStepMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFlowStepConfigs),
	}
}

func (r *FlowStepMongoRepository) FindByStep(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	var config models.FlowStepConfig
	err := r.Collection.FindOne(ctx, bson.M{"stepNumber": stepNumber}).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &config, nil
}

func (r *FlowStepMongoRepository) GetActive(ctx context.Context, stepNumber int) (*models.FlowStepConfig, error) {
	var config models.FlowStepConfig
	filter := bson.M{"stepNumber": stepNumber, "active": true}
	err := r.Collection.FindOne(ctx, filter).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &config, nil
}

func (r *FlowStepMongoRepository) ListActive(ctx context.Context) ([]models.FlowStepConfig, error) {
	findOptions := options.Find().SetSort(bson.M{"stepNumber": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"active": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var configs []models.FlowStepConfig
	if err := cursor.All(ctx, &configs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return configs, nil
}

func (r *FlowStepMongoRepository) MaxActiveStep(ctx context.Context) (int, error) {
	findOptions := options.FindOne().SetSort(bson.M{"stepNumber": -1})
	var config models.FlowStepConfig
	err := r.Collection.FindOne(ctx, bson.M{"active": true}, findOptions).Decode(&config)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return config.StepNumber, nil
}

func (r *FlowStepMongoRepository) Upsert(ctx context.Context, config *models.FlowStepConfig) error {
	if config.ID == "" {
		config.ID = uuid.NewString()
	}
	filter := bson.M{"stepNumber": config.StepNumber}
	update := bson.M{"$set": bson.M{
		"stepNumber":   config.StepNumber,
		"channels":     config.Channels,
		"cooldownDays": config.CooldownDays,
		"active":       config.Active,
		"description":  config.Description,
	}, "$setOnInsert": bson.M{"_id": config.ID}}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
