package clinics

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

type ClinicMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicMongoRepository(db *mongo.Client, dbName string) contracts.ClinicRepository {
	return &ClinicMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClinics),
	}
}

func (r *ClinicMongoRepository) Insert(ctx context.Context, clinic *models.Clinic) (string, error) {
	if clinic.ID == "" {
		clinic.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, clinic)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return clinic.ID, nil
}

func (r *ClinicMongoRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.Collection.FindOne(ctx, bson.M{"_id": clinicID}).Decode(&clinic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}

func (r *ClinicMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, int, error) {
	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, int(total), nil
}

func (r *ClinicMongoRepository) FindActive(ctx context.Context) ([]models.Clinic, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, nil
}

func (r *ClinicMongoRepository) Update(ctx context.Context, clinic *models.Clinic) error {
	filter := bson.M{"_id": clinic.ID}
	_, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": clinic}, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
