package booking

import "time"

// Quote is the duration and price snapshot computed once at booking time.
type Quote struct {
	TotalDays  int
	TotalPrice float64
}

// ComputeQuote derives the inclusive day count for [start, end] and the total
// price at the given per-day rate. The result is frozen onto the booking
// record; later price changes on the service never alter it.
func ComputeQuote(start, end time.Time, pricePerDay float64) Quote {
	days := int(NormalizeDay(end).Sub(NormalizeDay(start)).Hours()/24) + 1
	return Quote{
		TotalDays:  days,
		TotalPrice: float64(days) * pricePerDay,
	}
}
