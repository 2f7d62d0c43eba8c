package booking

import (
	"sort"
	"time"
)

// dayLayout is the ISO calendar-date wire format.
const dayLayout = "2006-01-02"

// NormalizeDay truncates a timestamp to midnight UTC. Every membership test,
// comparison, and stored availability date uses this canonical form, so two
// timestamps on the same calendar day always compare equal regardless of
// input timezone or time-of-day.
func NormalizeDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses an ISO "YYYY-MM-DD" string into a canonical day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return NormalizeDay(t), nil
}

// FormatDay renders a canonical day in ISO "YYYY-MM-DD" form.
func FormatDay(t time.Time) string {
	return t.UTC().Format(dayLayout)
}

// DatesBetween expands the inclusive day-by-day sequence from start to end,
// ascending. Both bounds are normalized first; callers must ensure
// start <= end.
func DatesBetween(start, end time.Time) []time.Time {
	first := NormalizeDay(start)
	last := NormalizeDay(end)

	var dates []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// NormalizeDays maps every timestamp to its canonical day, drops duplicates,
// and returns the result sorted ascending.
func NormalizeDays(dates []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(dates))
	var out []time.Time
	for _, d := range dates {
		day := NormalizeDay(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
