// File: database/repository/service/serviceMongoCrud.go
package serviceRepo

import (
	"errors"
	"fmt"
	"time"

	"github.com/safad643/eventBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID retrieves a service by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.CreatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, service)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// Update applies the non-nil fields of the update to an existing document.
func (r *MongoServiceRepo) Update(id string, update models.ServiceUpdate) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.PricePerDay != nil {
		set["price_per_day"] = *update.PricePerDay
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.AvailabilityDates != nil {
		set["availability_dates"] = *update.AvailabilityDates
	}
	if update.ContactDetails != nil {
		set["contact_details"] = *update.ContactDetails
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if len(set) == 0 {
		return nil
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a service document by its ID.
func (r *MongoServiceRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
