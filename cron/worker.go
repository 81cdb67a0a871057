package cron

import (
	"context"
	"log"
	"time"

	"mindhaven/config"
	"mindhaven/services/appointment"

	"github.com/hibiken/asynq"
)

const TypeSweepMissed = "appointment:sweep_missed"

// InitMissedSweeper runs the async worker and its periodic schedule in the
// background. The sweeper moves elapsed "booked" appointments into "missed"
// through the state machine, so a session nobody started eventually settles
// into a terminal state without anyone calling the API.
func InitMissedSweeper(apptSvc appointment.AppointmentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepMissed, handleSweepTask(apptSvc))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{Location: time.UTC})
	if _, err := scheduler.Register("@every 1m", asynq.NewTask(TypeSweepMissed, nil)); err != nil {
		log.Fatalf("[MissedSweeper] failed to register periodic task: %v", err)
	}

	go func() {
		log.Println("[MissedSweeper] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MissedSweeper] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MissedSweeper] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[MissedSweeper] scheduler stopped: %v", err)
		}
	}()
}

func handleSweepTask(apptSvc appointment.AppointmentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		swept, err := apptSvc.SweepMissed(time.Now().UTC())
		if err != nil {
			log.Printf("[MissedSweeper] sweep failed: %v", err)
			return err
		}
		if swept > 0 {
			log.Printf("[MissedSweeper] marked %d appointment(s) as missed", swept)
		}
		return nil
	}
}
