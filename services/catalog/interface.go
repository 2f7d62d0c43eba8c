package catalog

import "github.com/safad643/eventBook/models"

// CatalogService defines the service-listing operations exposed to handlers.
type CatalogService interface {
	// ListServices returns services matching the filter.
	ListServices(filter models.ServiceFilter) ([]models.Service, error)
	// GetService returns a single service by ID.
	GetService(id string) (*models.Service, error)
	// CreateService lists a new service for the given provider.
	CreateService(providerID string, svc *models.Service) (*models.Service, error)
	// UpdateService applies an update to a listing owned by the provider.
	UpdateService(providerID, id string, update models.ServiceUpdate) (*models.Service, error)
	// DeleteService removes a listing owned by the provider. Bookings are
	// kept as a historical ledger.
	DeleteService(providerID, id string) error
}
