package messages

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

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) Insert(ctx context.Context, message *models.Message) (string, error) {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return message.ID, nil
}

func (r *MessageMongoRepository) FindByID(ctx context.Context, messageID string) (*models.Message, error) {
	var message models.Message
	err := r.Collection.FindOne(ctx, bson.M{"_id": messageID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

// GetMessage prefers the clinic's own template for the channel/step and
// falls back to the default template when the clinic has none.
func (r *MessageMongoRepository) GetMessage(ctx context.Context, channel string, step int, clinicID string) (*models.Message, error) {
	var message models.Message
	filter := bson.M{"type": channel, "step": step, "clinicId": clinicID}
	err := r.Collection.FindOne(ctx, filter).Decode(&message)
	if err == nil {
		return &message, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	fallback := bson.M{"type": channel, "step": step, "isDefault": true}
	err = r.Collection.FindOne(ctx, fallback).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

func (r *MessageMongoRepository) FindByClinic(ctx context.Context, clinicID string, page, pageSize int) ([]models.Message, int, error) {
	filter := bson.M{"$or": []bson.M{
		{"clinicId": clinicID},
		{"isDefault": true},
	}}
	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "step", Value: 1}, {Key: "type", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var result []models.Message
	if err := cursor.All(ctx, &result); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return result, int(total), nil
}
