package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/safad643/eventBook/config"
	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/notification"
	"github.com/safad643/eventBook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(mailer notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingEmailTask(mailer, "Booking Confirmation - Event Booking Platform"))
	mux.HandleFunc(tasks.TypeBookingCancelled, handleBookingEmailTask(mailer, "Booking Cancelled - Event Booking Platform"))

	// Start async worker with retry logic
	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingEmailTask(mailer notification.Mailer, subject string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailHandler] invalid payload: %v", err)
			return err
		}

		if err := mailer.Send(p.Email, subject, renderBookingEmail(p)); err != nil {
			log.Printf("[EmailHandler] failed to send email to %s: %v", p.Email, err)
			return err
		}
		return nil
	}
}

func renderBookingEmail(p models.BookingEmailPayload) string {
	heading := "Booking Confirmed!"
	if p.Status == models.BookingStatusCancelled {
		heading = "Booking Cancelled"
	}
	return fmt.Sprintf(`
		<h2>%s</h2>
		<p><strong>Service:</strong> %s</p>
		<p><strong>Dates:</strong> %s to %s</p>
		<p><strong>Total Days:</strong> %d</p>
		<p><strong>Total Price:</strong> %.2f</p>
		<p><strong>Status:</strong> %s</p>`,
		heading, p.ServiceTitle, p.StartDate, p.EndDate, p.TotalDays, p.TotalPrice, p.Status)
}
