package booking

import "time"

// allDatesAvailable reports whether every requested day is present in the
// service's availability set. Admission is all-or-nothing: one missing day
// rejects the whole range. Read-only; the authoritative check happens inside
// the conditional reservation update.
func allDatesAvailable(available, requested []time.Time) bool {
	set := make(map[time.Time]struct{}, len(available))
	for _, d := range available {
		set[NormalizeDay(d)] = struct{}{}
	}
	for _, d := range requested {
		if _, ok := set[NormalizeDay(d)]; !ok {
			return false
		}
	}
	return true
}
