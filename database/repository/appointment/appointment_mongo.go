package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"mindhaven/database"
	"mindhaven/models"
	"mindhaven/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database("mindhaven")
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

// EnsureIndexes creates the unique partial index that makes double-booking
// impossible at the storage layer: at most one appointment with a
// non-terminal status may exist per (psychologist_id, start).
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "psychologist_id", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": []models.AppointmentStatus{models.StatusBooked, models.StatusInProgress}},
				}),
		},
		{
			Keys: bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "end", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("error creating appointment indexes: %w", err)
	}
	return nil
}

// Create inserts a new appointment document. A duplicate-key failure on the
// partial unique index means another non-terminal appointment already holds
// the window's start; that race loss surfaces as ErrSlotUnavailable.
func (repo *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return scheduling.ErrSlotUnavailable
		}
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment document by ID.
func (repo *MongoAppointmentRepo) GetByID(appointmentID string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	filter := bson.M{"id": appointmentID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&appt); err != nil {
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", appointmentID, err)
	}
	return &appt, nil
}

// ListForPsychologist retrieves all appointments for a psychologist whose
// window intersects [from, to), optionally restricted to non-terminal ones.
func (repo *MongoAppointmentRepo) ListForPsychologist(psychologistID string, from, to time.Time, nonTerminalOnly bool) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"psychologist_id": psychologistID,
		"start":           bson.M{"$lt": to},
		"end":             bson.M{"$gt": from},
	}
	if nonTerminalOnly {
		filter["status"] = bson.M{"$in": []models.AppointmentStatus{models.StatusBooked, models.StatusInProgress}}
	}

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error finding appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus commits a validated transition with a compare-and-set on the
// current status. When the stored status no longer matches, another caller
// won the race; the stale transition fails with ErrIllegalTransition.
func (repo *MongoAppointmentRepo) UpdateStatus(appointmentID string, from, to models.AppointmentStatus, now time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": appointmentID, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": now}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating appointment %s status: %w", appointmentID, err)
	}
	if res.MatchedCount == 0 {
		return scheduling.ErrIllegalTransition
	}
	return nil
}

// ListOverdueBooked returns appointments still in "booked" whose window has
// already elapsed, for the missed-status sweeper.
func (repo *MongoAppointmentRepo) ListOverdueBooked(now time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.StatusBooked,
		"end":    bson.M{"$lt": now},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding overdue appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding overdue appointments: %w", err)
	}
	return appts, nil
}
