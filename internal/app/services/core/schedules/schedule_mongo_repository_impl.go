package schedules

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

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ContactScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSchedules),
	}
}

func (r *ScheduleMongoRepository) Insert(ctx context.Context, schedule *models.ContactSchedule) (string, error) {
	if schedule.ID == "" {
		schedule.ID = uuid.NewString()
	}
	_, err := r.Collection.InsertOne(ctx, schedule)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return schedule.ID, nil
}

func (r *ScheduleMongoRepository) FindByID(ctx context.Context, scheduleID string) (*models.ContactSchedule, error) {
	var schedule models.ContactSchedule
	err := r.Collection.FindOne(ctx, bson.M{"_id": scheduleID}).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) FindByPatientContract(ctx context.Context, patientID, contractID string) (*models.ContactSchedule, error) {
	var schedule models.ContactSchedule
	filter := bson.M{
		"patientId":  patientID,
		"contractId": contractID,
		"status":     constvars.ScheduleStatusPending,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

func (r *ScheduleMongoRepository) FindDue(ctx context.Context, clinicID string, now time.Time, limit int) ([]models.ContactSchedule, error) {
	filter := bson.M{
		"clinicId":      clinicID,
		"status":        constvars.ScheduleStatusPending,
		"scheduledDate": bson.M{"$lte": now},
	}
	findOptions := options.Find().
		SetSort(bson.M{"scheduledDate": 1}).
		SetLimit(int64(limit))
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.ContactSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, nil
}

func (r *ScheduleMongoRepository) List(ctx context.Context, filter contracts.ScheduleFilter, page, pageSize int) ([]models.ContactSchedule, int, error) {
	query := bson.M{}
	if filter.ClinicID != "" {
		query["clinicId"] = filter.ClinicID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"scheduledDate": -1})
	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var schedules []models.ContactSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return schedules, int(total), nil
}

func (r *ScheduleMongoRepository) HasScheduleForPatient(ctx context.Context, patientID string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"patientId": patientID}, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (r *ScheduleMongoRepository) HasPendingForPatient(ctx context.Context, patientID string) (bool, error) {
	filter := bson.M{"patientId": patientID, "status": constvars.ScheduleStatusPending}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (r *ScheduleMongoRepository) CancelPendingForPatient(ctx context.Context, patientID string) error {
	filter := bson.M{"patientId": patientID, "status": constvars.ScheduleStatusPending}
	update := bson.M{"$set": bson.M{"status": constvars.ScheduleStatusCancelled, "updatedAt": time.Now()}}
	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ScheduleMongoRepository) SetStatus(ctx context.Context, scheduleID, status string) error {
	filter := bson.M{"_id": scheduleID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
