package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	night := time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.True(t, SameDay(night, morning))
	assert.False(t, SameDay(night, nextDay))

	// same day-of-month, different month
	assert.False(t, SameDay(morning, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)))
	// same month/day, different year
	assert.False(t, SameDay(morning, time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)))
}

func TestSlotsFor_MatchDespiteTimeOfDay(t *testing.T) {
	days := []AvailabilityDay{
		{
			Date:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Slots: []TimeSlot{{Start: "08:00", End: "09:00", Available: true}},
		},
	}

	// query carries a time-of-day; calendar-day equality still matches
	got := SlotsFor(days, time.Date(2024, 5, 1, 23, 0, 0, 0, time.UTC))
	assert.Len(t, got, 1)
	assert.Equal(t, "08:00", got[0].Start)
}

func TestSlotsFor_NoMatchIsEmpty(t *testing.T) {
	days := []AvailabilityDay{
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Slots: []TimeSlot{{Start: "08:00", End: "09:00", Available: true}}},
	}

	got := SlotsFor(days, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = SlotsFor(nil, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSlotsFor_FirstMatchOrderPreserved(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	days := []AvailabilityDay{
		{Date: day, Slots: []TimeSlot{
			{Start: "10:00", End: "11:00", Available: true},
			{Start: "08:00", End: "09:00", Available: false},
			{Start: "09:00", End: "10:00", Available: true},
		}},
		// duplicate day entry: first one wins
		{Date: day, Slots: []TimeSlot{{Start: "20:00", End: "21:00", Available: true}}},
	}

	got := SlotsFor(days, day)
	assert.Len(t, got, 3)
	assert.Equal(t, "10:00", got[0].Start)
	assert.Equal(t, "08:00", got[1].Start)
	assert.Equal(t, "09:00", got[2].Start)
}
