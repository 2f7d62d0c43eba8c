package serviceRepo

import (
	"errors"
	"time"

	"github.com/safad643/eventBook/models"
)

// Sentinel errors returned by ServiceRepository implementations.
var (
	// ErrNotFound means no service document matched the given ID.
	ErrNotFound = errors.New("service not found")
	// ErrDatesUnavailable means the conditional reservation did not apply
	// because at least one requested date was no longer in the service's
	// availability set.
	ErrDatesUnavailable = errors.New("requested dates no longer available")
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID.
	GetByID(id string) (*models.Service, error)
	// List retrieves services matching the given filter.
	List(filter models.ServiceFilter) ([]models.Service, error)
	// Create inserts a new service record.
	Create(service *models.Service) error
	// Update applies the non-nil fields of the update to an existing record.
	Update(id string, update models.ServiceUpdate) error
	// Delete removes a service record by its ID.
	Delete(id string) error

	// ReserveDates atomically removes the given days from the service's
	// availability set, but only if every one of them is still present.
	// Returns ErrDatesUnavailable when a concurrent writer got there first,
	// ErrNotFound when the service does not exist.
	ReserveDates(id string, dates []time.Time) error
	// RestoreDates adds the given days back into the service's availability
	// set with set semantics: a day already present is left alone.
	RestoreDates(id string, dates []time.Time) error
}
