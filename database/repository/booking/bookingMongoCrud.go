// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"errors"
	"fmt"
	"time"

	"github.com/safad643/eventBook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByIDAndUser retrieves a booking by ID, scoped to its owner.
func (r *MongoBookingRepo) GetByIDAndUser(id, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var b models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &b, nil
}

// ListByUser retrieves all bookings made by a user, newest first.
func (r *MongoBookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// CancelIfConfirmed atomically flips a confirmed booking to cancelled. The
// status field in the filter serializes concurrent cancellations: only the
// request that wins this compare-and-set may go on to restore dates.
func (r *MongoBookingRepo) CancelIfConfirmed(id, userID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"id":      id,
		"user_id": userID,
		"status":  models.BookingStatusConfirmed,
	}
	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var b models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoConfirmedMatch
		}
		return nil, fmt.Errorf("failed to cancel booking with id %s: %w", id, err)
	}
	return &b, nil
}
