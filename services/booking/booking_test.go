package booking

import (
	"errors"
	"sync"
	"testing"
	"time"

	bookingRepo "github.com/safad643/eventBook/database/repository/booking"
	serviceRepo "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingNotifier always errors; booking outcomes must not care.
type failingNotifier struct{ calls int }

func (n *failingNotifier) BookingConfirmed(models.BookingEmailPayload) error {
	n.calls++
	return errors.New("smtp relay down")
}

func (n *failingNotifier) BookingCancelled(models.BookingEmailPayload) error {
	n.calls++
	return errors.New("smtp relay down")
}

func newTestBookingService(t *testing.T) (*DefaultBookingService, *serviceRepo.MemoryServiceRepo, *models.Service) {
	t.Helper()

	repo := serviceRepo.NewMemoryServiceRepo()
	svc := &models.Service{
		ID:          "svc-1",
		Title:       "Grand Palace Venue",
		Category:    models.CategoryVenue,
		PricePerDay: 1000,
		ProviderID:  "provider-1",
		AvailabilityDates: []time.Time{
			utcDay(2025, 6, 1), utcDay(2025, 6, 2), utcDay(2025, 6, 3),
			utcDay(2025, 6, 4), utcDay(2025, 6, 5),
		},
	}
	require.NoError(t, repo.Create(svc))

	service := &DefaultBookingService{
		ServiceRepo: repo,
		BookingRepo: bookingRepo.NewMemoryBookingRepo(),
	}
	return service, repo, svc
}

func availability(t *testing.T, repo *serviceRepo.MemoryServiceRepo, id string) []time.Time {
	t.Helper()
	svc, err := repo.GetByID(id)
	require.NoError(t, err)
	return svc.AvailabilityDates
}

func TestCreateBooking(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	b, err := svc.CreateBooking("user-1", "user@example.com", models.BookingRequest{
		ServiceID: seeded.ID,
		StartDate: "2025-06-02",
		EndDate:   "2025-06-04",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.Equal(t, 3, b.TotalDays)
	assert.Equal(t, 3000.0, b.TotalPrice)
	assert.Equal(t, "user-1", b.UserID)
	assert.Equal(t, seeded.ID, b.ServiceID)

	// Jun 2..4 carved out, Jun 1 and Jun 5 remain.
	remaining := availability(t, repo, seeded.ID)
	require.Len(t, remaining, 2)
	assert.Equal(t, utcDay(2025, 6, 1), remaining[0])
	assert.Equal(t, utcDay(2025, 6, 5), remaining[1])
}

func TestCreateBookingOverlapRejected(t *testing.T) {
	svc, _, seeded := newTestBookingService(t)

	_, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)

	// Any overlap with the first booking is rejected whole.
	_, err = svc.CreateBooking("user-2", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-03",
	})
	assert.Equal(t, ErrNotAvailable, err)

	// A disjoint single day still books fine.
	_, err = svc.CreateBooking("user-2", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-05", EndDate: "2025-06-05",
	})
	assert.NoError(t, err)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	_, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-04", EndDate: "2025-06-02",
	})
	assert.Equal(t, ErrInvalidRange, err)

	_, err = svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "June 2nd", EndDate: "2025-06-04",
	})
	assert.Equal(t, ErrMalformedDate, err)

	_, err = svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: "no-such-service", StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	assert.Equal(t, ErrServiceNotFound, err)

	// None of the failures touched the calendar.
	assert.Len(t, availability(t, repo, seeded.ID), 5)
}

func TestCreateBookingPartialRangeRejectedWithoutMutation(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	// Jun 6 was never listed, so Jun 4..6 must be rejected whole.
	_, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-04", EndDate: "2025-06-06",
	})
	assert.Equal(t, ErrNotAvailable, err)
	assert.Len(t, availability(t, repo, seeded.ID), 5)
}

func TestCancelBookingRestoresDates(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	b, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)
	require.Len(t, availability(t, repo, seeded.ID), 2)

	cancelled, err := svc.CancelBooking(b.ID, "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	// Full round trip: exactly the taken dates come back.
	restored := availability(t, repo, seeded.ID)
	require.Len(t, restored, 5)
	for i, want := range []time.Time{
		utcDay(2025, 6, 1), utcDay(2025, 6, 2), utcDay(2025, 6, 3),
		utcDay(2025, 6, 4), utcDay(2025, 6, 5),
	} {
		assert.Equal(t, want, restored[i])
	}
}

func TestCancelBookingIdempotencyGuard(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	b, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)

	_, err = svc.CancelBooking(b.ID, "user-1", "")
	require.NoError(t, err)

	// A second cancellation is rejected and must not credit the calendar twice.
	_, err = svc.CancelBooking(b.ID, "user-1", "")
	assert.Equal(t, ErrAlreadyCancelled, err)
	assert.Len(t, availability(t, repo, seeded.ID), 5)
}

func TestCancelBookingOwnership(t *testing.T) {
	svc, _, seeded := newTestBookingService(t)

	b, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)

	// Another user cannot see or cancel the booking.
	_, err = svc.CancelBooking(b.ID, "user-2", "")
	assert.Equal(t, ErrBookingNotFound, err)

	_, err = svc.CancelBooking("no-such-booking", "user-1", "")
	assert.Equal(t, ErrBookingNotFound, err)
}

func TestPriceSnapshotFrozen(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	b, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)
	require.Equal(t, 3000.0, b.TotalPrice)

	// Doubling the service's rate must not touch the stored snapshot.
	newPrice := 2000.0
	require.NoError(t, repo.Update(seeded.ID, models.ServiceUpdate{PricePerDay: &newPrice}))

	stored, err := svc.BookingRepo.GetByIDAndUser(b.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3000.0, stored.TotalPrice)
	assert.Equal(t, 3, stored.TotalDays)
}

func TestNotifierFailureDoesNotFailBooking(t *testing.T) {
	svc, _, seeded := newTestBookingService(t)
	notifier := &failingNotifier{}
	svc.Notifier = notifier

	b, err := svc.CreateBooking("user-1", "user@example.com", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-02", EndDate: "2025-06-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, notifier.calls)

	_, err = svc.CancelBooking(b.ID, "user-1", "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, notifier.calls)
}

func TestListUserBookings(t *testing.T) {
	svc, _, seeded := newTestBookingService(t)

	first, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-01", EndDate: "2025-06-01",
	})
	require.NoError(t, err)
	second, err := svc.CreateBooking("user-1", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-05", EndDate: "2025-06-05",
	})
	require.NoError(t, err)
	_, err = svc.CreateBooking("user-2", "", models.BookingRequest{
		ServiceID: seeded.ID, StartDate: "2025-06-03", EndDate: "2025-06-03",
	})
	require.NoError(t, err)

	bookings, err := svc.ListUserBookings("user-1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	ids := []string{bookings[0].ID, bookings[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)
}

func TestConcurrentOverlappingBookings(t *testing.T) {
	svc, repo, seeded := newTestBookingService(t)

	const numGoroutines = 10
	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	results := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := svc.CreateBooking("user-1", "", models.BookingRequest{
				ServiceID: seeded.ID,
				StartDate: "2025-06-02",
				EndDate:   "2025-06-04",
			})
			results <- err
		}(i)
	}

	wg.Wait()
	close(results)

	successCount := 0
	failCount := 0
	for err := range results {
		if err == nil {
			successCount++
		} else {
			assert.Equal(t, ErrNotAvailable, err)
			failCount++
		}
	}

	// Exactly one overlapping request may win.
	assert.Equal(t, 1, successCount, "exactly one overlapping booking should succeed")
	assert.Equal(t, numGoroutines-1, failCount)
	assert.Len(t, availability(t, repo, seeded.ID), 2)
}
