// File: database/repository/service/memory.go
package serviceRepo

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/safad643/eventBook/models"
)

// MemoryServiceRepo is an in-memory ServiceRepository. It reproduces the
// conditional-update semantics of the Mongo implementation under a mutex,
// which makes the reservation invariants testable without a database.
type MemoryServiceRepo struct {
	mu       sync.Mutex
	services map[string]*models.Service
}

// NewMemoryServiceRepo creates an empty in-memory service repository.
func NewMemoryServiceRepo() *MemoryServiceRepo {
	return &MemoryServiceRepo{services: make(map[string]*models.Service)}
}

func cloneService(svc *models.Service) *models.Service {
	cp := *svc
	cp.AvailabilityDates = append([]time.Time(nil), svc.AvailabilityDates...)
	cp.Images = append([]string(nil), svc.Images...)
	return &cp
}

// GetByID retrieves a service by its unique ID.
func (r *MemoryServiceRepo) GetByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneService(svc), nil
}

// List retrieves services matching the given filter.
func (r *MemoryServiceRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Service
	for _, svc := range r.services {
		if matchesFilter(svc, filter) {
			out = append(out, *cloneService(svc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func matchesFilter(svc *models.Service, filter models.ServiceFilter) bool {
	if filter.Keyword != "" {
		kw := strings.ToLower(filter.Keyword)
		if !strings.Contains(strings.ToLower(svc.Title), kw) &&
			!strings.Contains(strings.ToLower(svc.Description), kw) {
			return false
		}
	}
	if filter.Category != "" && svc.Category != strings.ToLower(filter.Category) {
		return false
	}
	if filter.Location != "" &&
		!strings.Contains(strings.ToLower(svc.Location), strings.ToLower(filter.Location)) {
		return false
	}
	if filter.MinPrice != nil && svc.PricePerDay < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && svc.PricePerDay > *filter.MaxPrice {
		return false
	}
	if filter.AvailableOn != nil && !containsDate(svc.AvailabilityDates, *filter.AvailableOn) {
		return false
	}
	return true
}

func containsDate(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// Create inserts a new service record.
func (r *MemoryServiceRepo) Create(service *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if service.CreatedAt.IsZero() {
		service.CreatedAt = time.Now().UTC()
	}
	r.services[service.ID] = cloneService(service)
	return nil
}

// Update applies the non-nil fields of the update to an existing record.
func (r *MemoryServiceRepo) Update(id string, update models.ServiceUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return ErrNotFound
	}
	if update.Title != nil {
		svc.Title = *update.Title
	}
	if update.Category != nil {
		svc.Category = *update.Category
	}
	if update.PricePerDay != nil {
		svc.PricePerDay = *update.PricePerDay
	}
	if update.Description != nil {
		svc.Description = *update.Description
	}
	if update.AvailabilityDates != nil {
		svc.AvailabilityDates = append([]time.Time(nil), (*update.AvailabilityDates)...)
	}
	if update.ContactDetails != nil {
		svc.ContactDetails = *update.ContactDetails
	}
	if update.Location != nil {
		svc.Location = *update.Location
	}
	if update.Images != nil {
		svc.Images = append([]string(nil), (*update.Images)...)
	}
	return nil
}

// Delete removes a service record by its ID.
func (r *MemoryServiceRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.services[id]; !ok {
		return ErrNotFound
	}
	delete(r.services, id)
	return nil
}

// ReserveDates removes the given days if and only if all are still present.
func (r *MemoryServiceRepo) ReserveDates(id string, dates []time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return ErrNotFound
	}
	for _, d := range dates {
		if !containsDate(svc.AvailabilityDates, d) {
			return ErrDatesUnavailable
		}
	}

	remaining := svc.AvailabilityDates[:0]
	for _, d := range svc.AvailabilityDates {
		if !containsDate(dates, d) {
			remaining = append(remaining, d)
		}
	}
	svc.AvailabilityDates = remaining
	return nil
}

// RestoreDates adds the given days back, skipping any already present.
func (r *MemoryServiceRepo) RestoreDates(id string, dates []time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc, ok := r.services[id]
	if !ok {
		return ErrNotFound
	}
	for _, d := range dates {
		if !containsDate(svc.AvailabilityDates, d) {
			svc.AvailabilityDates = append(svc.AvailabilityDates, d)
		}
	}
	sort.Slice(svc.AvailabilityDates, func(i, j int) bool {
		return svc.AvailabilityDates[i].Before(svc.AvailabilityDates[j])
	})
	return nil
}
