// File: database/repository/service/reservations.go
package serviceRepo

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReserveDates carves the requested days out of the service's availability
// set in a single conditional update: the filter only matches while every
// requested day is still present, so two overlapping reservations can never
// both apply. MatchedCount 0 on an existing service means a concurrent
// writer won the race.
func (r *MongoServiceRepo) ReserveDates(id string, dates []time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":                 id,
		"availability_dates": bson.M{"$all": dates},
	}
	update := bson.M{
		"$pullAll": bson.M{"availability_dates": dates},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve dates for service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing service from a lost reservation race.
		err := r.coll.FindOne(ctx, bson.M{"id": id}).Err()
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check service %s after reservation miss: %w", id, err)
		}
		return ErrDatesUnavailable
	}
	return nil
}

// RestoreDates adds the given days back into the availability set. $addToSet
// keeps set semantics, so restoring a day that is already present (or that an
// admin independently re-listed) is a no-op rather than a duplicate.
func (r *MongoServiceRepo) RestoreDates(id string, dates []time.Time) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$addToSet": bson.M{
			"availability_dates": bson.M{"$each": dates},
		},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to restore dates for service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
