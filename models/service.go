package models

import "time"

// Service categories offered on the platform.
const (
	CategoryVenue     = "venue"
	CategoryHotel     = "hotel"
	CategoryCaterer   = "caterer"
	CategoryCameraman = "cameraman"
	CategoryDJ        = "dj"
	CategoryDecorator = "decorator"
	CategoryOther     = "other"
)

// Service represents a bookable event service listed by a provider.
// AvailabilityDates is the set of UTC-midnight days the service can still be
// booked for; it is mutated only by the reservation path.
type Service struct {
	ID                string      `bson:"id" json:"id"`
	Title             string      `bson:"title" json:"title"`
	Category          string      `bson:"category" json:"category"`
	PricePerDay       float64     `bson:"price_per_day" json:"price_per_day"`
	Description       string      `bson:"description" json:"description"`
	AvailabilityDates []time.Time `bson:"availability_dates" json:"availability_dates"`
	ContactDetails    string      `bson:"contact_details" json:"contact_details"`
	Location          string      `bson:"location" json:"location"`
	Images            []string    `bson:"images,omitempty" json:"images,omitempty"`
	ProviderID        string      `bson:"provider_id" json:"provider_id"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
}

// ServiceFilter holds the optional catalog search criteria.
type ServiceFilter struct {
	Keyword     string     // substring match on title or description
	Category    string     // exact match
	Location    string     // substring match
	MinPrice    *float64   // inclusive lower bound on price per day
	MaxPrice    *float64   // inclusive upper bound on price per day
	AvailableOn *time.Time // service must be bookable on this day
}

// ServiceUpdate carries the fields a provider may change on a listing.
// Nil fields are left untouched.
type ServiceUpdate struct {
	Title             *string      `json:"title,omitempty"`
	Category          *string      `json:"category,omitempty"`
	PricePerDay       *float64     `json:"price_per_day,omitempty"`
	Description       *string      `json:"description,omitempty"`
	AvailabilityDates *[]time.Time `json:"availability_dates,omitempty"`
	ContactDetails    *string      `json:"contact_details,omitempty"`
	Location          *string      `json:"location,omitempty"`
	Images            *[]string    `json:"images,omitempty"`
}
