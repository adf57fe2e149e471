// Package pricing computes court booking prices and resolves bookable
// time slots. All functions are pure; persistence and transport live in
// the layers above.
package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// Default peak window: 17:00 inclusive to 20:00 exclusive, local court time.
const (
	DefaultPeakStartHour = 17
	DefaultPeakEndHour   = 20
)

// EquipmentSurcharge is a flat fee added when equipment rental is selected,
// independent of booking duration.
const EquipmentSurcharge = 10.0

// RateTable holds a court's hourly rates and its peak window [PeakStart, PeakEnd).
type RateTable struct {
	Peak      float64
	OffPeak   float64
	PeakStart int
	PeakEnd   int
}

// NewRateTable builds a RateTable with the default 17:00-20:00 peak window.
func NewRateTable(peak, offPeak float64) RateTable {
	return RateTable{
		Peak:      peak,
		OffPeak:   offPeak,
		PeakStart: DefaultPeakStartHour,
		PeakEnd:   DefaultPeakEndHour,
	}
}

// IsPeak reports whether a booking starting at the given hour is billed at
// the peak rate. Only the start hour matters: a booking that begins off-peak
// and runs into the peak window is billed off-peak for its whole duration.
func (rt RateTable) IsPeak(hour int) bool {
	return hour >= rt.PeakStart && hour < rt.PeakEnd
}

// Quote returns the total price for a booking that starts at start ("HH:MM"),
// runs for hours whole hours, and optionally includes equipment rental.
//
// The whole duration is billed at the rate selected by the start hour; there
// is no proration when a booking crosses the peak boundary. Duration bounds
// (the form allows 1-4 hours) are the caller's responsibility: Quote performs
// no range check.
func Quote(start string, hours int, equipmentRental bool, rates RateTable) (float64, error) {
	hour, _, err := ParseClock(start)
	if err != nil {
		return 0, err
	}

	rate := rates.OffPeak
	if rates.IsPeak(hour) {
		rate = rates.Peak
	}

	total := rate * float64(hours)
	if equipmentRental {
		total += EquipmentSurcharge
	}
	return total, nil
}

// ParseClock parses a "HH:MM" time-of-day string.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour, minute, nil
}
