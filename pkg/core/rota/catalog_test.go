package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_FourShiftsPerDay(t *testing.T) {
	catalog := DefaultCatalog()

	for _, day := range Weekdays {
		slots := catalog.Slots(day)
		require.Len(t, slots, ShiftsPerDay, "%s should have %d shifts", day, ShiftsPerDay)

		dayCount, nightCount := 0, 0
		for _, slot := range slots {
			assert.Equal(t, day, slot.Day)
			assert.Equal(t, slot.Range.Hours(), slot.Hours)
			switch slot.Type {
			case ShiftTypeDay:
				dayCount++
			case ShiftTypeNight:
				nightCount++
				assert.Equal(t, "20:00 - 08:00", slot.Label())
			}
		}

		assert.Equal(t, 3, dayCount, "%s day shifts", day)
		assert.Equal(t, 1, nightCount, "%s night shifts", day)
	}
}

func TestDefaultCatalog_FirstShift(t *testing.T) {
	catalog := DefaultCatalog()

	for _, day := range Weekdays {
		first, ok := catalog.First(day)
		require.True(t, ok)
		assert.Equal(t, "08:00 - 20:00", first.Label())
		assert.Equal(t, 12.0, first.Hours)
	}

	_, ok := catalog.First(NoDay)
	assert.False(t, ok)
}

func TestCatalogSlots_ReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	slots := catalog.Slots(Monday)
	slots[0], slots[3] = slots[3], slots[0]

	again := catalog.Slots(Monday)
	assert.Equal(t, "08:00 - 20:00", again[0].Label())
	assert.Equal(t, "20:00 - 08:00", again[3].Label())
}

func TestClassifyShift(t *testing.T) {
	tests := []struct {
		hour     int
		expected ShiftType
	}{
		{0, ShiftTypeNight},
		{7, ShiftTypeNight},
		{8, ShiftTypeDay},
		{12, ShiftTypeDay},
		{19, ShiftTypeDay},
		{20, ShiftTypeNight},
		{23, ShiftTypeNight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ClassifyShift(TimeOfDay{Hour: tt.hour}), "hour %d", tt.hour)
	}
}

func TestWeekdayPrev(t *testing.T) {
	assert.Equal(t, NoDay, Monday.Prev())
	assert.Equal(t, Monday, Tuesday.Prev())
	assert.Equal(t, Saturday, Sunday.Prev())
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "None", NoDay.String())
}

func TestNewCatalog_WrongShiftCount(t *testing.T) {
	table := map[Weekday][]string{}
	for _, day := range Weekdays {
		table[day] = []string{"08:00 - 20:00", "09:15 - 19:30", "10:30 - 19:30", "20:00 - 08:00"}
	}
	table[Wednesday] = table[Wednesday][:3]

	_, err := NewCatalog(table)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Wednesday")
}

func TestNewCatalog_InvalidRange(t *testing.T) {
	table := map[Weekday][]string{}
	for _, day := range Weekdays {
		table[day] = []string{"08:00 - 20:00", "09:15 - 19:30", "10:30 - 19:30", "20:00 - 08:00"}
	}
	table[Friday][2] = "10:30 to 19:30"

	_, err := NewCatalog(table)
	assert.Error(t, err)
}
