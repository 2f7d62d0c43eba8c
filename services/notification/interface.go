package notification

import (
	"fmt"

	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/tasks"

	"github.com/hibiken/asynq"
)

// NotificationService defines methods for dispatching booking emails.
// All dispatch is fire-and-forget relative to the booking transaction:
// callers log failures and never propagate them.
type NotificationService interface {
	BookingConfirmed(payload models.BookingEmailPayload) error
	BookingCancelled(payload models.BookingEmailPayload) error
}

// AsynqNotificationService enqueues email tasks onto the asynq queue; the
// email worker picks them up and delivers.
type AsynqNotificationService struct {
	Client *asynq.Client
}

func NewAsynqNotificationService(client *asynq.Client) (*AsynqNotificationService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &AsynqNotificationService{Client: client}, nil
}

// BookingConfirmed enqueues a confirmation email task.
func (s *AsynqNotificationService) BookingConfirmed(payload models.BookingEmailPayload) error {
	task, opts, err := tasks.NewBookingConfirmedTask(payload)
	if err != nil {
		return fmt.Errorf("BookingConfirmed: failed to build task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("BookingConfirmed: failed to enqueue task: %w", err)
	}
	return nil
}

// BookingCancelled enqueues a cancellation email task.
func (s *AsynqNotificationService) BookingCancelled(payload models.BookingEmailPayload) error {
	task, opts, err := tasks.NewBookingCancelledTask(payload)
	if err != nil {
		return fmt.Errorf("BookingCancelled: failed to build task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("BookingCancelled: failed to enqueue task: %w", err)
	}
	return nil
}
