package tasks

import (
	"encoding/json"

	"github.com/safad643/eventBook/models"

	"github.com/hibiken/asynq"
)

// Task type names for the email queue.
const (
	TypeBookingConfirmed = "email:booking_confirmed"
	TypeBookingCancelled = "email:booking_cancelled"
)

// NewBookingConfirmedTask builds the asynq task for a confirmation email.
func NewBookingConfirmedTask(payload models.BookingEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmed, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}

// NewBookingCancelledTask builds the asynq task for a cancellation email.
func NewBookingCancelledTask(payload models.BookingEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingCancelled, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
