package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	serviceRepo "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/booking"
	"github.com/safad643/eventBook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var validCategories = map[string]struct{}{
	models.CategoryVenue:     {},
	models.CategoryHotel:     {},
	models.CategoryCaterer:   {},
	models.CategoryCameraman: {},
	models.CategoryDJ:        {},
	models.CategoryDecorator: {},
	models.CategoryOther:     {},
}

// DefaultCatalogService is the production CatalogService implementation.
// Cache is optional; when set, GetService reads through Redis.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// ListServices returns services matching the filter. An available-on date is
// normalized to its canonical day before it reaches the repository.
func (s *DefaultCatalogService) ListServices(filter models.ServiceFilter) ([]models.Service, error) {
	if filter.AvailableOn != nil {
		day := booking.NormalizeDay(*filter.AvailableOn)
		filter.AvailableOn = &day
	}
	services, err := s.Repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// GetService returns a single service by ID, through the cache when present.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	if cached := s.cacheGet(id); cached != nil {
		return cached, nil
	}

	svc, err := s.Repo.GetByID(id)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}

	s.cacheSet(svc)
	return svc, nil
}

// CreateService lists a new service. Availability dates are normalized to
// canonical days and deduplicated, the set-like discipline every later
// reservation relies on.
func (s *DefaultCatalogService) CreateService(providerID string, svc *models.Service) (*models.Service, error) {
	svc.Category = strings.ToLower(svc.Category)
	if _, ok := validCategories[svc.Category]; !ok {
		return nil, ErrInvalidCategory
	}

	svc.ID = uuid.New().String()
	svc.ProviderID = providerID
	svc.Location = strings.ToLower(strings.TrimSpace(svc.Location))
	svc.AvailabilityDates = booking.NormalizeDays(svc.AvailabilityDates)
	svc.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

// UpdateService applies an update to a listing owned by the provider.
func (s *DefaultCatalogService) UpdateService(providerID, id string, update models.ServiceUpdate) (*models.Service, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if existing.ProviderID != providerID {
		return nil, ErrNotOwner
	}

	if update.Category != nil {
		lowered := strings.ToLower(*update.Category)
		if _, ok := validCategories[lowered]; !ok {
			return nil, ErrInvalidCategory
		}
		update.Category = &lowered
	}
	if update.AvailabilityDates != nil {
		normalized := booking.NormalizeDays(*update.AvailabilityDates)
		update.AvailabilityDates = &normalized
	}
	if update.Location != nil {
		lowered := strings.ToLower(strings.TrimSpace(*update.Location))
		update.Location = &lowered
	}

	if err := s.Repo.Update(id, update); err != nil {
		if err == serviceRepo.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}

	s.cacheInvalidate(id)
	updated, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload service %s: %w", id, err)
	}
	return updated, nil
}

// DeleteService removes a listing owned by the provider.
func (s *DefaultCatalogService) DeleteService(providerID, id string) error {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		if err == serviceRepo.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if existing.ProviderID != providerID {
		return ErrNotOwner
	}

	if err := s.Repo.Delete(id); err != nil {
		if err == serviceRepo.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	s.cacheInvalidate(id)
	return nil
}

func (s *DefaultCatalogService) cacheGet(id string) *models.Service {
	if s.Cache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := s.Cache.Get(ctx, utils.ServiceCachePrefix+id).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("service cache read failed", zap.String("serviceID", id), zap.Error(err))
		}
		return nil
	}
	var svc models.Service
	if err := json.Unmarshal([]byte(data), &svc); err != nil {
		return nil
	}
	return &svc
}

func (s *DefaultCatalogService) cacheSet(svc *models.Service) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(svc)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Set(ctx, utils.ServiceCachePrefix+svc.ID, data, utils.ServiceCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("service cache write failed", zap.String("serviceID", svc.ID), zap.Error(err))
	}
}

func (s *DefaultCatalogService) cacheInvalidate(id string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Cache.Del(ctx, utils.ServiceCachePrefix+id).Err(); err != nil {
		utils.GetLogger().Warn("service cache invalidation failed", zap.String("serviceID", id), zap.Error(err))
	}
}
