package booking

import "time"

// Weekly slot pattern, bucketed by weekday mod 3 (Sunday is 0).
var slotPattern = [3][]string{
	// Sun, Wed, Sat
	{"09:00 AM", "10:00 AM", "11:00 AM"},
	// Mon, Thu
	{"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM"},
	// Tue, Fri
	{"09:30 AM", "10:30 AM", "02:30 PM", "03:30 PM", "04:30 PM"},
}

// SlotsFor returns the bookable time labels for the calendar day of date.
// Only the weekday is used. The result is a fresh slice.
func SlotsFor(date time.Time) []string {
	bucket := slotPattern[int(date.Weekday())%3]
	out := make([]string, len(bucket))
	copy(out, bucket)
	return out
}

func slotOffered(date time.Time, slot string) bool {
	for _, s := range slotPattern[int(date.Weekday())%3] {
		if s == slot {
			return true
		}
	}
	return false
}
