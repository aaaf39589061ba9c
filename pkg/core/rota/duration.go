package rota

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock hour and minute
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TimeRange is the start and end of a shift. An end hour earlier than the
// start hour means the shift runs past midnight.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// String renders the range the way the catalog and the rota grid display it,
// e.g. "20:00 - 08:00"
func (r TimeRange) String() string {
	return r.Start.String() + " - " + r.End.String()
}

// Hours returns the length of the range in hours.
//
// When the end hour is numerically below the start hour the shift crosses
// midnight and 24 hours are added to the end before taking the difference.
// The minute delta is then added as a fraction of an hour.
// Examples:
//   - 20:00 - 08:00 → (8+24-20) + 0 = 12.0
//   - 09:15 - 19:30 → (19-9) + 15/60 = 10.25
func (r TimeRange) Hours() float64 {
	endHour := r.End.Hour
	if endHour < r.Start.Hour {
		endHour += 24
	}

	hours := float64(endHour - r.Start.Hour)
	hours += float64(r.End.Minute-r.Start.Minute) / 60

	return hours
}

// ParseTimeRange parses a "HH:MM - HH:MM" string
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("time range %q must have the form HH:MM - HH:MM", s)
	}

	start, err := parseTimeOfDay(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid start in %q: %w", s, err)
	}

	end, err := parseTimeOfDay(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid end in %q: %w", s, err)
	}

	return TimeRange{Start: start, End: end}, nil
}

// MustParseTimeRange is ParseTimeRange for fixed tables; it panics on error
func MustParseTimeRange(s string) TimeRange {
	r, err := ParseTimeRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

func parseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time %q must have the form HH:MM", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %q must be between 00 and 23", hh)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %q must be between 00 and 59", mm)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
