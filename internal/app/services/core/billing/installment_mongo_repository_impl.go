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

type InstallmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewInstallmentMongoRepository(db *mongo.Client, dbName string) contracts.InstallmentRepository {
	return &InstallmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInstallments),
	}
}

func (r *InstallmentMongoRepository) Insert(ctx context.Context, installment *models.Installment) (string, error) {
	if installment.ID == "" {
		installment.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, installment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return installment.ID, nil
}

func (r *InstallmentMongoRepository) FindByID(ctx context.Context, installmentID string) (*models.Installment, error) {
	var installment models.Installment
	err := r.Collection.FindOne(ctx, bson.M{"_id": installmentID}).Decode(&installment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &installment, nil
}

// GetCurrentInstallment returns the contract's open installment flagged as
// current. At most one installment per contract carries the flag.
func (r *InstallmentMongoRepository) GetCurrentInstallment(ctx context.Context, contractID string) (*models.Installment, error) {
	var installment models.Installment
	filter := bson.M{"contractId": contractID, "isCurrent": true}
	err := r.Collection.FindOne(ctx, filter).Decode(&installment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &installment, nil
}

func (r *InstallmentMongoRepository) FindByContract(ctx context.Context, contractID string) ([]models.Installment, error) {
	findOptions := options.Find().SetSort(bson.M{"number": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"contractId": contractID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Installment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, nil
}

func (r *InstallmentMongoRepository) Update(ctx context.Context, installment *models.Installment) error {
	filter := bson.M{"_id": installment.ID}
	_, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": installment}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
