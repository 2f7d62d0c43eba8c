// File: database/repository/service/serviceMongoQueries.go
package serviceRepo

import (
	"fmt"
	"strings"
	"time"

	"github.com/safad643/eventBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// buildListFilter translates a ServiceFilter into a MongoDB filter document.
func buildListFilter(filter models.ServiceFilter) bson.M {
	query := bson.M{}

	if filter.Keyword != "" {
		regex := primitive.Regex{Pattern: filter.Keyword, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
		}
	}
	if filter.Category != "" {
		query["category"] = strings.ToLower(filter.Category)
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: filter.Location, Options: "i"}
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price_per_day"] = price
	}
	if filter.AvailableOn != nil {
		// Equality on an array field matches any element, so this selects
		// services whose availability set contains the day.
		query["availability_dates"] = *filter.AvailableOn
	}

	return query
}

// List retrieves services matching the given filter.
func (r *MongoServiceRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, buildListFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}
