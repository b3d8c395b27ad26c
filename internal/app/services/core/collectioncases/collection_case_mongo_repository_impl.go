package collectioncases

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

type CollectionCaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCollectionCaseMongoRepository(db *mongo.Client, dbName string) contracts.CollectionCaseRepository {
	return &CollectionCaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCollectionCases),
	}
}

func (r *CollectionCaseMongoRepository) Insert(ctx context.Context, collectionCase *models.CollectionCase) (string, error) {
	if collectionCase.ID == "" {
		collectionCase.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, collectionCase)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return collectionCase.ID, nil
}

func (r *CollectionCaseMongoRepository) FindOpenByContract(ctx context.Context, contractID string) (*models.CollectionCase, error) {
	var collectionCase models.CollectionCase
	filter := bson.M{"contractId": contractID, "status": constvars.CollectionCaseStatusOpen}
	err := r.Collection.FindOne(ctx, filter).Decode(&collectionCase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &collectionCase, nil
}

func (r *CollectionCaseMongoRepository) Update(ctx context.Context, collectionCase *models.CollectionCase) error {
	filter := bson.M{"_id": collectionCase.ID}
	_, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": collectionCase}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
