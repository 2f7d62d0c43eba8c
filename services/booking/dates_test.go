package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDay(t *testing.T) {
	utc := time.Date(2025, 6, 2, 15, 4, 5, 123, time.UTC)
	normalized := NormalizeDay(utc)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), normalized)

	// Two timestamps on the same calendar day compare equal regardless of
	// timezone or time-of-day.
	kolkata := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 6, 2, 23, 59, 0, 0, kolkata) // 18:29 UTC
	assert.Equal(t, normalized, NormalizeDay(local))

	// A local time that crosses midnight UTC lands on the next day.
	lateLocal := time.Date(2025, 6, 2, 3, 0, 0, 0, kolkata) // Jun 1, 21:30 UTC
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), NormalizeDay(lateLocal))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), day)

	_, err = ParseDay("02-06-2025")
	assert.Error(t, err)
	_, err = ParseDay("not-a-date")
	assert.Error(t, err)
	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDatesBetween(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 2, 0, 0, 0, time.UTC)

	dates := DatesBetween(start, end)
	require.Len(t, dates, 3)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), dates[1])
	assert.Equal(t, time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), dates[2])
}

func TestDatesBetweenSingleDay(t *testing.T) {
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	dates := DatesBetween(day, day)
	require.Len(t, dates, 1)
	assert.Equal(t, day, dates[0])
}

func TestDatesBetweenCrossesMonth(t *testing.T) {
	dates := DatesBetween(
		time.Date(2025, 6, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
	)
	require.Len(t, dates, 4)
	assert.Equal(t, time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC), dates[3])
}

func TestDatesBetweenIsDeterministic(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, DatesBetween(start, end), DatesBetween(start, end))
}

func TestNormalizeDays(t *testing.T) {
	in := []time.Time{
		time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 1, 0, 0, 0, time.UTC), // duplicate day
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	}
	out := NormalizeDays(in)
	require.Len(t, out, 3)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), out[0])
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), out[1])
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), out[2])
}
