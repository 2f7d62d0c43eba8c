package booking

import (
	"fmt"

	bookingRepo "github.com/safad643/eventBook/database/repository/booking"
	serviceRepo "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/utils"

	"go.uber.org/zap"
)

// CancelBooking flips a confirmed booking owned by userID to cancelled, then
// restores the booking's own stored date range to the service. The status
// compare-and-set decides who may restore: a second cancellation attempt
// never reaches the restore step, so the calendar cannot be credited twice.
func (s *DefaultBookingService) CancelBooking(bookingID, userID, userEmail string) (*models.Booking, error) {
	b, err := s.BookingRepo.CancelIfConfirmed(bookingID, userID)
	if err != nil {
		if err != bookingRepo.ErrNoConfirmedMatch {
			return nil, fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
		}
		// Work out whether the booking is missing or already cancelled.
		existing, gerr := s.BookingRepo.GetByIDAndUser(bookingID, userID)
		if gerr != nil {
			return nil, ErrBookingNotFound
		}
		if existing.Status == models.BookingStatusCancelled {
			return nil, ErrAlreadyCancelled
		}
		return nil, fmt.Errorf("failed to cancel booking %s: no confirmed match", bookingID)
	}

	// Restore exactly the dates this booking took at creation time.
	datesToRestore := DatesBetween(b.StartDate, b.EndDate)
	serviceTitle := ""
	if svc, serr := s.ServiceRepo.GetByID(b.ServiceID); serr == nil {
		serviceTitle = svc.Title
	}

	if err := s.ServiceRepo.RestoreDates(b.ServiceID, datesToRestore); err != nil {
		if err == serviceRepo.ErrNotFound {
			// Service was deleted after the booking; the cancellation still
			// stands, there is just no calendar left to credit.
			utils.GetLogger().Warn("cancelled booking references deleted service",
				zap.String("bookingID", b.ID), zap.String("serviceID", b.ServiceID))
		} else {
			return nil, fmt.Errorf("failed to restore dates for booking %s: %w", b.ID, err)
		}
	}

	s.invalidateServiceCache(b.ServiceID)
	s.notify(userEmail, serviceTitle, b)

	return b, nil
}
