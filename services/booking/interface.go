package booking

import "github.com/safad643/eventBook/models"

// BookingService defines the booking ledger operations exposed to handlers.
type BookingService interface {
	// CreateBooking reserves the requested date range on the service and
	// records a confirmed booking. userEmail is only used for the
	// fire-and-forget confirmation email.
	CreateBooking(userID, userEmail string, req models.BookingRequest) (*models.Booking, error)
	// CancelBooking flips a confirmed booking owned by userID to cancelled
	// and restores its date range to the service's availability.
	CancelBooking(bookingID, userID, userEmail string) (*models.Booking, error)
	// ListUserBookings returns the user's bookings, newest first.
	ListUserBookings(userID string) ([]models.Booking, error)
}
