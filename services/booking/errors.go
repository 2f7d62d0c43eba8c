package booking

import "fmt"

// BookingError is a typed service-level failure with a stable code.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrServiceNotFound means the requested service does not exist.
	ErrServiceNotFound = &BookingError{Code: "notFound", Message: "service not found"}
	// ErrBookingNotFound means no booking matched the ID for this user.
	ErrBookingNotFound = &BookingError{Code: "notFound", Message: "booking not found"}
	// ErrInvalidRange means the end date precedes the start date.
	ErrInvalidRange = &BookingError{Code: "invalidRange", Message: "endDate must be on or after startDate"}
	// ErrNotAvailable means at least one requested day is not bookable.
	ErrNotAvailable = &BookingError{Code: "notAvailable", Message: "service not available for selected dates"}
	// ErrAlreadyCancelled rejects a second cancellation of the same booking.
	ErrAlreadyCancelled = &BookingError{Code: "alreadyCancelled", Message: "booking already cancelled"}
	// ErrMalformedDate means a date string could not be parsed.
	ErrMalformedDate = &BookingError{Code: "malformedInput", Message: "dates must be ISO calendar dates (YYYY-MM-DD)"}
)
