package billing

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

type ContractMongoRepository struct {
	Collection *mongo.Collection
}

func NewContractMongoRepository(db *mongo.Client, dbName string) contracts.ContractRepository {
	return &ContractMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionContracts),
	}
}

func (r *ContractMongoRepository) Insert(ctx context.Context, contract *models.Contract) (string, error) {
	if contract.ID == "" {
		contract.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, contract)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return contract.ID, nil
}

func (r *ContractMongoRepository) FindByID(ctx context.Context, contractID string) (*models.Contract, error) {
	var contract models.Contract
	err := r.Collection.FindOne(ctx, bson.M{"_id": contractID}).Decode(&contract)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &contract, nil
}

func (r *ContractMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Contract, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Contract
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *ContractMongoRepository) Update(ctx context.Context, contract *models.Contract) error {
	filter := bson.M{"_id": contract.ID}
	_, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": contract}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
