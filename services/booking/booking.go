package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "github.com/safad643/eventBook/database/repository/booking"
	serviceRepo "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/notification"
	"github.com/safad643/eventBook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production BookingService implementation.
// Cache and Notifier are optional; a nil Cache disables service-detail
// invalidation and a nil Notifier disables emails.
type DefaultBookingService struct {
	ServiceRepo serviceRepo.ServiceRepository
	BookingRepo bookingRepo.BookingRepository
	Notifier    notification.NotificationService
	Cache       *redis.Client
}

// CreateBooking validates the request, atomically reserves the date range on
// the service, and records the confirmed booking. The availability pre-check
// gives a clean rejection for ranges that were never free; the conditional
// reservation update is what actually guarantees two overlapping requests
// cannot both succeed.
func (s *DefaultBookingService) CreateBooking(userID, userEmail string, req models.BookingRequest) (*models.Booking, error) {
	start, err := ParseDay(req.StartDate)
	if err != nil {
		return nil, ErrMalformedDate
	}
	end, err := ParseDay(req.EndDate)
	if err != nil {
		return nil, ErrMalformedDate
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	svc, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service %s: %w", req.ServiceID, err)
	}

	requested := DatesBetween(start, end)
	if !allDatesAvailable(svc.AvailabilityDates, requested) {
		return nil, ErrNotAvailable
	}

	if err := s.ServiceRepo.ReserveDates(svc.ID, requested); err != nil {
		switch err {
		case serviceRepo.ErrNotFound:
			return nil, ErrServiceNotFound
		case serviceRepo.ErrDatesUnavailable:
			// Lost the race to a concurrent booking.
			return nil, ErrNotAvailable
		default:
			return nil, fmt.Errorf("failed to reserve dates on service %s: %w", svc.ID, err)
		}
	}

	quote := ComputeQuote(start, end, svc.PricePerDay)
	b := &models.Booking{
		ID:         uuid.New().String(),
		UserID:     userID,
		ServiceID:  svc.ID,
		StartDate:  start,
		EndDate:    end,
		TotalDays:  quote.TotalDays,
		TotalPrice: quote.TotalPrice,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.BookingRepo.Create(b); err != nil {
		// Hand the reserved dates back so the calendar is not left holed.
		if rerr := s.ServiceRepo.RestoreDates(svc.ID, requested); rerr != nil {
			utils.GetLogger().Error("failed to restore dates after booking insert failure",
				zap.String("serviceID", svc.ID), zap.Error(rerr))
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.invalidateServiceCache(svc.ID)
	s.notify(userEmail, svc.Title, b)

	return b, nil
}

// ListUserBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	bookings, err := s.BookingRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// notify dispatches the booking email without ever failing the caller.
func (s *DefaultBookingService) notify(email, serviceTitle string, b *models.Booking) {
	if s.Notifier == nil || email == "" {
		return
	}
	payload := models.BookingEmailPayload{
		Email:        email,
		ServiceTitle: serviceTitle,
		StartDate:    FormatDay(b.StartDate),
		EndDate:      FormatDay(b.EndDate),
		TotalDays:    b.TotalDays,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
	}

	var err error
	if b.Status == models.BookingStatusConfirmed {
		err = s.Notifier.BookingConfirmed(payload)
	} else {
		err = s.Notifier.BookingCancelled(payload)
	}
	if err != nil {
		utils.GetLogger().Warn("booking email dispatch failed",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// invalidateServiceCache drops the cached service document after its
// availability changed.
func (s *DefaultBookingService) invalidateServiceCache(serviceID string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.ServiceCachePrefix+serviceID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate service cache",
			zap.String("serviceID", serviceID), zap.Error(err))
	}
}
