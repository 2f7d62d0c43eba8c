package models

import "time"

// Booking status values. A booking is created confirmed and may transition
// once, irreversibly, to cancelled.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed or cancelled booking record.
// TotalDays and TotalPrice are a snapshot taken at booking time and are never
// recomputed from the service's current price.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	StartDate  time.Time `bson:"start_date" json:"start_date"`
	EndDate    time.Time `bson:"end_date" json:"end_date"`
	TotalDays  int       `bson:"total_days" json:"total_days"`
	TotalPrice float64   `bson:"total_price" json:"total_price"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// BookingRequest is the inbound payload for creating a booking.
// Dates are ISO calendar dates ("2006-01-02").
type BookingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}
