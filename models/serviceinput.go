package models

// ServiceInput is the inbound payload for listing a new service.
// Availability dates are ISO calendar dates ("2006-01-02").
type ServiceInput struct {
	Title             string   `json:"title" binding:"required"`
	Category          string   `json:"category" binding:"required"`
	PricePerDay       float64  `json:"price_per_day" binding:"required"`
	Description       string   `json:"description"`
	AvailabilityDates []string `json:"availability_dates"`
	ContactDetails    string   `json:"contact_details"`
	Location          string   `json:"location"`
	Images            []string `json:"images"`
}

// ServiceUpdateInput is the inbound payload for updating a listing.
// Nil fields are left untouched.
type ServiceUpdateInput struct {
	Title             *string   `json:"title,omitempty"`
	Category          *string   `json:"category,omitempty"`
	PricePerDay       *float64  `json:"price_per_day,omitempty"`
	Description       *string   `json:"description,omitempty"`
	AvailabilityDates *[]string `json:"availability_dates,omitempty"`
	ContactDetails    *string   `json:"contact_details,omitempty"`
	Location          *string   `json:"location,omitempty"`
	Images            *[]string `json:"images,omitempty"`
}
