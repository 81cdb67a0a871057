// Seeds the local database with sample psychologists, weekly availability and
// a handful of appointments for manual testing against a dev stack.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"mindhaven/config"
	"mindhaven/database"
	"mindhaven/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.MongoClient.Database("mindhaven")
	availColl := db.Collection("availability")
	apptColl := db.Collection("appointments")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := availColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear availability collection: %v", err)
	}
	if _, err := apptColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointments collection: %v", err)
	}

	durations := []int{45, 50, 60}
	now := time.Now().UTC()

	for i := 1; i <= 10; i++ {
		psychologistID := fmt.Sprintf("psy-%03d", i)
		duration := durations[rand.Intn(len(durations))]

		dayOff := 1 + rand.Intn(5)
		var days []models.WeeklyAvailability
		for dow := 0; dow <= 6; dow++ {
			// Weekends off, one random weekday off per psychologist.
			available := dow >= 1 && dow <= 5 && dow != dayOff
			days = append(days, models.WeeklyAvailability{
				DayOfWeek:       dow,
				Available:       available,
				StartTime:       "09:00",
				EndTime:         "17:00",
				SessionDuration: duration,
			})
		}

		schedule := models.AvailabilitySchedule{
			PsychologistID: psychologistID,
			Days:           days,
			UpdatedAt:      now,
		}
		if _, err := availColl.InsertOne(ctx, schedule); err != nil {
			log.Fatalf("Failed to seed availability for %s: %v", psychologistID, err)
		}

		// A booked appointment two days out, on the hour.
		start := time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC).AddDate(0, 0, 2)
		appt := models.Appointment{
			ID:             uuid.New().String(),
			PsychologistID: psychologistID,
			ClientID:       fmt.Sprintf("client-%03d", i),
			Start:          start,
			End:            start.Add(time.Duration(duration) * time.Minute),
			Status:         models.StatusBooked,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if _, err := apptColl.InsertOne(ctx, appt); err != nil {
			log.Fatalf("Failed to seed appointment for %s: %v", psychologistID, err)
		}
	}

	log.Println("Seeded 10 psychologists with availability and appointments")
}
