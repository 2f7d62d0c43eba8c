// File: database/repository/booking/memory.go
package bookingRepo

import (
	"sort"
	"sync"
	"time"

	"github.com/safad643/eventBook/models"
)

// MemoryBookingRepo is an in-memory BookingRepository with the same
// compare-and-set cancellation semantics as the Mongo implementation.
type MemoryBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]*models.Booking)}
}

// Create inserts a new booking record.
func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	cp := *booking
	r.bookings[booking.ID] = &cp
	return nil
}

// GetByIDAndUser retrieves a booking by ID, scoped to its owner.
func (r *MemoryBookingRepo) GetByIDAndUser(id, userID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

// ListByUser retrieves all bookings made by a user, newest first.
func (r *MemoryBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// CancelIfConfirmed atomically flips a confirmed booking to cancelled.
func (r *MemoryBookingRepo) CancelIfConfirmed(id, userID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok || b.UserID != userID || b.Status != models.BookingStatusConfirmed {
		return nil, ErrNoConfirmedMatch
	}
	b.Status = models.BookingStatusCancelled
	cp := *b
	return &cp, nil
}
