package pendingcalls

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

type PendingCallMongoRepository struct {
	Collection *mongo.Collection
}

func NewPendingCallMongoRepository(db *mongo.Client, dbName string) contracts.PendingCallRepository {
	return &PendingCallMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPendingCalls),
	}
}

func (r *PendingCallMongoRepository) Insert(ctx context.Context, call *models.PendingCall) (string, error) {
	if call.ID == "" {
		call.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, call)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return call.ID, nil
}

func (r *PendingCallMongoRepository) FindByID(ctx context.Context, callID string) (*models.PendingCall, error) {
	var call models.PendingCall
	err := r.Collection.FindOne(ctx, bson.M{"_id": callID}).Decode(&call)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &call, nil
}

func (r *PendingCallMongoRepository) FindOpenByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]models.PendingCall, int, error) {
	filter := bson.M{"clinicId": clinicID, "status": constvars.PendingCallStatusOpen}
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"scheduledAt": 1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var calls []models.PendingCall
	if err := cursor.All(ctx, &calls); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return calls, int(total), nil
}

func (r *PendingCallMongoRepository) Update(ctx context.Context, call *models.PendingCall) error {
	filter := bson.M{"_id": call.ID}
	_, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": call}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
