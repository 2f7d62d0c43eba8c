package models

// BookingEmailPayload is the asynq task payload for booking emails.
type BookingEmailPayload struct {
	Email        string  `json:"email"`
	ServiceTitle string  `json:"service_title"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	TotalPrice   float64 `json:"total_price"`
	Status       string  `json:"status"`
}
