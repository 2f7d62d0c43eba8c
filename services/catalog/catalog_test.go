package catalog

import (
	"testing"
	"time"

	serviceRepo "github.com/safad643/eventBook/database/repository/service"
	"github.com/safad643/eventBook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog() (*DefaultCatalogService, *serviceRepo.MemoryServiceRepo) {
	repo := serviceRepo.NewMemoryServiceRepo()
	return &DefaultCatalogService{Repo: repo}, repo
}

func TestCreateServiceNormalizesDates(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService("provider-1", &models.Service{
		Title:       "Skyline DJ",
		Category:    "DJ",
		PricePerDay: 300,
		Location:    "  Mumbai ",
		AvailabilityDates: []time.Time{
			time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
			time.Date(2025, 6, 2, 7, 0, 0, 0, time.UTC), // duplicate day
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "provider-1", created.ProviderID)
	assert.Equal(t, models.CategoryDJ, created.Category)
	assert.Equal(t, "mumbai", created.Location)

	// Dates are canonical days, deduplicated, ascending.
	require.Len(t, created.AvailabilityDates, 2)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), created.AvailabilityDates[0])
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), created.AvailabilityDates[1])
}

func TestCreateServiceInvalidCategory(t *testing.T) {
	svc, _ := newTestCatalog()
	_, err := svc.CreateService("provider-1", &models.Service{Title: "X", Category: "spaceship"})
	assert.Equal(t, ErrInvalidCategory, err)
}

func TestGetServiceNotFound(t *testing.T) {
	svc, _ := newTestCatalog()
	_, err := svc.GetService("missing")
	assert.Equal(t, ErrNotFound, err)
}

func TestListServicesFilters(t *testing.T) {
	svc, _ := newTestCatalog()

	june1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateService("p1", &models.Service{
		Title: "Grand Palace", Category: "venue", PricePerDay: 1000,
		Location: "Delhi", Description: "spacious wedding venue",
		AvailabilityDates: []time.Time{june1},
	})
	require.NoError(t, err)
	_, err = svc.CreateService("p2", &models.Service{
		Title: "Tasty Caterers", Category: "caterer", PricePerDay: 200,
		Location: "Mumbai", Description: "multi-cuisine catering",
	})
	require.NoError(t, err)

	out, err := svc.ListServices(models.ServiceFilter{Category: "venue"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Grand Palace", out[0].Title)

	out, err = svc.ListServices(models.ServiceFilter{Keyword: "cuisine"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tasty Caterers", out[0].Title)

	minPrice := 500.0
	out, err = svc.ListServices(models.ServiceFilter{MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Grand Palace", out[0].Title)

	// Available-on filters by set membership, with normalization.
	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out, err = svc.ListServices(models.ServiceFilter{AvailableOn: &noon})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Grand Palace", out[0].Title)

	out, err = svc.ListServices(models.ServiceFilter{Location: "mum"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Tasty Caterers", out[0].Title)
}

func TestUpdateServiceOwnership(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService("p1", &models.Service{Title: "Hall", Category: "venue"})
	require.NoError(t, err)

	title := "Renamed Hall"
	_, err = svc.UpdateService("p2", created.ID, models.ServiceUpdate{Title: &title})
	assert.Equal(t, ErrNotOwner, err)

	updated, err := svc.UpdateService("p1", created.ID, models.ServiceUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Hall", updated.Title)
}

func TestUpdateServiceNormalizesDates(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService("p1", &models.Service{Title: "Hall", Category: "venue"})
	require.NoError(t, err)

	dates := []time.Time{
		time.Date(2025, 7, 2, 15, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 16, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	updated, err := svc.UpdateService("p1", created.ID, models.ServiceUpdate{AvailabilityDates: &dates})
	require.NoError(t, err)
	require.Len(t, updated.AvailabilityDates, 2)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), updated.AvailabilityDates[0])
}

func TestDeleteService(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService("p1", &models.Service{Title: "Hall", Category: "venue"})
	require.NoError(t, err)

	assert.Equal(t, ErrNotOwner, svc.DeleteService("p2", created.ID))
	require.NoError(t, svc.DeleteService("p1", created.ID))
	assert.Equal(t, ErrNotFound, svc.DeleteService("p1", created.ID))
}
