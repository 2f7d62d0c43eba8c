package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	quote := ComputeQuote(start, end, 1000)
	assert.Equal(t, 3, quote.TotalDays)
	assert.Equal(t, 3000.0, quote.TotalPrice)
}

func TestComputeQuoteSingleDay(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	quote := ComputeQuote(day, day, 750.5)
	assert.Equal(t, 1, quote.TotalDays)
	assert.Equal(t, 750.5, quote.TotalPrice)
}

func TestComputeQuoteIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 6, 2, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC)
	quote := ComputeQuote(start, end, 100)
	assert.Equal(t, 2, quote.TotalDays)
	assert.Equal(t, 200.0, quote.TotalPrice)
}
