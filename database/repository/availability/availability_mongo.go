package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"mindhaven/database"
	"mindhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new instance of MongoAvailabilityRepo.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("mindhaven")
	return &MongoAvailabilityRepo{coll: db.Collection("availability")}
}

// Upsert stores the full weekly schedule for a psychologist, replacing any
// previous configuration.
func (repo *MongoAvailabilityRepo) Upsert(schedule *models.AvailabilitySchedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"psychologist_id": schedule.PsychologistID}
	update := bson.M{"$set": schedule}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting availability for %s: %w", schedule.PsychologistID, err)
	}
	return nil
}

// Get retrieves the weekly schedule for a psychologist.
func (repo *MongoAvailabilityRepo) Get(psychologistID string) (*models.AvailabilitySchedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var schedule models.AvailabilitySchedule
	filter := bson.M{"psychologist_id": psychologistID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&schedule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no availability configured for psychologist %s: %w", psychologistID, err)
		}
		return nil, fmt.Errorf("error fetching availability for %s: %w", psychologistID, err)
	}
	return &schedule, nil
}
