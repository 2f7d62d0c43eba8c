package bookingRepo

import (
	"errors"

	"github.com/safad643/eventBook/models"
)

// Sentinel errors returned by BookingRepository implementations.
var (
	// ErrNotFound means no booking matched the given (id, user) pair.
	ErrNotFound = errors.New("booking not found")
	// ErrNoConfirmedMatch means the confirmed-to-cancelled compare-and-set
	// found no confirmed booking for the (id, user) pair: either the booking
	// does not exist, is not owned by the user, or is already cancelled.
	ErrNoConfirmedMatch = errors.New("no confirmed booking matched")
)

// BookingRepository defines methods for booking ledger access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByIDAndUser retrieves a booking by ID, scoped to its owner.
	GetByIDAndUser(id, userID string) (*models.Booking, error)
	// ListByUser retrieves all bookings made by a user, newest first.
	ListByUser(userID string) ([]models.Booking, error)
	// CancelIfConfirmed atomically flips a confirmed booking owned by the
	// user to cancelled and returns the updated record. Only one caller can
	// win this transition; losers get ErrNoConfirmedMatch.
	CancelIfConfirmed(id, userID string) (*models.Booking, error)
}
