package pricing

import "time"

// TimeSlot is one bookable window on a given day. A slot is identified by
// its (date, start) pair and is read-only once produced by the data source.
// Slots on the same day are independent: they are not required to be
// contiguous or non-overlapping.
type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// AvailabilityDay groups the slots published for one calendar day.
type AvailabilityDay struct {
	Date  time.Time  `json:"date"`
	Slots []TimeSlot `json:"slots"`
}

// SameDay reports whether two instants fall on the same calendar day
// (year, month and day-of-month match; time-of-day is ignored). The
// comparison uses the times as given, with no zone normalization.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SlotsFor returns the slots of the first AvailabilityDay matching the target
// date by calendar-day equality, in their published order. Absence of data is
// not an error: when no day matches, an empty slice is returned.
func SlotsFor(days []AvailabilityDay, date time.Time) []TimeSlot {
	for _, day := range days {
		if SameDay(day.Date, date) {
			return day.Slots
		}
	}
	return []TimeSlot{}
}
