package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func utcDay(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAllDatesAvailable(t *testing.T) {
	available := []time.Time{
		utcDay(2025, 6, 1), utcDay(2025, 6, 2), utcDay(2025, 6, 3),
	}

	assert.True(t, allDatesAvailable(available, []time.Time{utcDay(2025, 6, 1)}))
	assert.True(t, allDatesAvailable(available, available))
	assert.True(t, allDatesAvailable(available, nil))
}

func TestAllDatesAvailableRejectsWholeRange(t *testing.T) {
	available := []time.Time{utcDay(2025, 6, 1), utcDay(2025, 6, 3)}

	// One missing day inside the range rejects everything.
	requested := []time.Time{utcDay(2025, 6, 1), utcDay(2025, 6, 2), utcDay(2025, 6, 3)}
	assert.False(t, allDatesAvailable(available, requested))
}

func TestAllDatesAvailableNormalizesInputs(t *testing.T) {
	available := []time.Time{time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)}
	requested := []time.Time{utcDay(2025, 6, 1)}
	assert.True(t, allDatesAvailable(available, requested))
}

func TestAllDatesAvailableEmptySet(t *testing.T) {
	assert.False(t, allDatesAvailable(nil, []time.Time{utcDay(2025, 6, 1)}))
}
