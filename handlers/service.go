package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/safad643/eventBook/models"
	"github.com/safad643/eventBook/services/booking"
	"github.com/safad643/eventBook/services/catalog"
	"github.com/safad643/eventBook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the service-catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Catalog: svc, Logger: logger}
}

// parseListFilter reads the catalog search criteria from query parameters.
func parseListFilter(c *gin.Context) (models.ServiceFilter, error) {
	filter := models.ServiceFilter{
		Keyword:  c.Query("keyword"),
		Category: c.Query("category"),
		Location: c.Query("location"),
	}

	if v := c.Query("minPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("minPrice must be a number")
		}
		filter.MinPrice = &p
	}
	if v := c.Query("maxPrice"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, errors.New("maxPrice must be a number")
		}
		filter.MaxPrice = &p
	}
	if v := c.Query("date"); v != "" {
		day, err := booking.ParseDay(v)
		if err != nil {
			return filter, errors.New("date must be an ISO calendar date (YYYY-MM-DD)")
		}
		filter.AvailableOn = &day
	}

	return filter, nil
}

// ListServicesHandler returns services matching the query filters.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	filter, err := parseListFilter(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	services, err := h.Catalog.ListServices(filter)
	if err != nil {
		h.Logger.Error("failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(services), "services": services})
}

// GetServiceHandler returns a single service by ID.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Param("id"))
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// parseDays parses a list of ISO calendar dates.
func parseDays(in []string) ([]time.Time, error) {
	var days []time.Time
	for _, s := range in {
		day, err := booking.ParseDay(s)
		if err != nil {
			return nil, errors.New("availability_dates must be ISO calendar dates (YYYY-MM-DD)")
		}
		days = append(days, day)
	}
	return days, nil
}

// CreateServiceHandler lists a new service for the caller.
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var input models.ServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	days, err := parseDays(input.AvailabilityDates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	svc := models.Service{
		Title:             input.Title,
		Category:          input.Category,
		PricePerDay:       input.PricePerDay,
		Description:       input.Description,
		AvailabilityDates: days,
		ContactDetails:    input.ContactDetails,
		Location:          input.Location,
		Images:            input.Images,
	}

	created, err := h.Catalog.CreateService(c.GetString("userID"), &svc)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": created})
}

// UpdateServiceHandler updates a listing owned by the caller.
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var input models.ServiceUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	update := models.ServiceUpdate{
		Title:          input.Title,
		Category:       input.Category,
		PricePerDay:    input.PricePerDay,
		Description:    input.Description,
		ContactDetails: input.ContactDetails,
		Location:       input.Location,
		Images:         input.Images,
	}
	if input.AvailabilityDates != nil {
		days, err := parseDays(*input.AvailabilityDates)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		update.AvailabilityDates = &days
	}

	updated, err := h.Catalog.UpdateService(c.GetString("userID"), c.Param("id"), update)
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": updated})
}

// DeleteServiceHandler removes a listing owned by the caller.
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.DeleteService(c.GetString("userID"), c.Param("id")); err != nil {
		h.respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// respondCatalogError maps service-level catalog errors to HTTP statuses.
func (h *ServiceHandler) respondCatalogError(c *gin.Context, err error) {
	var cErr *catalog.CatalogError
	if !errors.As(err, &cErr) {
		h.Logger.Error("catalog operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "catalog operation failed", "")
		return
	}

	status := http.StatusBadRequest
	switch cErr {
	case catalog.ErrNotFound:
		status = http.StatusNotFound
	case catalog.ErrNotOwner:
		status = http.StatusForbidden
	}
	utils.JSONError(c, status, cErr.Message, "")
}
