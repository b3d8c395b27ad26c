package histories

import (
	"context"
	"debtflow-service/internal/app/contracts"
	"debtflow-service/internal/app/models"
	"debtflow-service/internal/pkg/constvars"
	"debtflow-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HistoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewHistoryMongoRepository(db *mongo.Client, dbName string) contracts.ContactHistoryRepository {
	return &HistoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionHistories),
	}
}

func (r *HistoryMongoRepository) Insert(ctx context.Context, history *models.ContactHistory) (string, error) {
	if history.ID == "" {
		history.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, history)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return history.ID, nil
}

func (r *HistoryMongoRepository) FindByID(ctx context.Context, historyID string) (*models.ContactHistory, error) {
	var history models.ContactHistory
	err := r.Collection.FindOne(ctx, bson.M{"_id": historyID}).Decode(&history)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &history, nil
}

func (r *HistoryMongoRepository) List(ctx context.Context, filter contracts.HistoryFilter, page, pageSize int) ([]models.ContactHistory, int, error) {
	query := bson.M{}
	if filter.ClinicID != "" {
		query["clinicId"] = filter.ClinicID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Channel != "" {
		query["contactType"] = filter.Channel
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"sentAt": -1})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var histories []models.ContactHistory
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return histories, int(total), nil
}

func (r *HistoryMongoRepository) ListByClinicBetween(ctx context.Context, clinicID string, from, to time.Time) ([]models.ContactHistory, error) {
	filter := bson.M{
		"clinicId": clinicID,
		"sentAt":   bson.M{"$gte": from, "$lt": to},
	}
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"sentAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var histories []models.ContactHistory
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return histories, nil
}
