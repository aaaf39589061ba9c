package rota

import "fmt"

// Weekday indexes the seven days of the rota week, Monday first.
// The ordering is significant: the scheduler walks days in this order and
// compares days by index.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NoDay marks an unset day, e.g. the day before Monday or a staff member who
// has not been assigned yet this week
const NoDay Weekday = -1

// Weekdays lists every day of the week in scheduling order
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "None"
	}
	return weekdayNames[d]
}

// Prev returns the day before d in the week, or NoDay for Monday
func (d Weekday) Prev() Weekday {
	if d <= Monday {
		return NoDay
	}
	return d - 1
}

// ShiftType is derived from a shift's start hour
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

// ClassifyShift returns night for shifts starting at or after 20:00 or before
// 08:00, and day otherwise
func ClassifyShift(start TimeOfDay) ShiftType {
	if start.Hour >= 20 || start.Hour < 8 {
		return ShiftTypeNight
	}
	return ShiftTypeDay
}

// ShiftSlot is one unit of work that must be covered on a given day
type ShiftSlot struct {
	Day   Weekday
	Range TimeRange
	Type  ShiftType
	Hours float64
}

// NewShiftSlot builds a slot and derives its type and duration from the range
func NewShiftSlot(day Weekday, r TimeRange) ShiftSlot {
	return ShiftSlot{
		Day:   day,
		Range: r,
		Type:  ClassifyShift(r.Start),
		Hours: r.Hours(),
	}
}

// Label is the time range as displayed in the rota grid
func (s ShiftSlot) Label() string {
	return s.Range.String()
}

// ShiftsPerDay is the number of slots the catalog defines for every day
const ShiftsPerDay = 4

// Catalog is the fixed set of shifts to cover each week
type Catalog struct {
	days [len(weekdayNames)][]ShiftSlot
}

// NewCatalog builds a catalog from "HH:MM - HH:MM" ranges per day.
// Every day must have exactly ShiftsPerDay ranges.
func NewCatalog(table map[Weekday][]string) (Catalog, error) {
	var c Catalog
	for _, day := range Weekdays {
		ranges := table[day]
		if len(ranges) != ShiftsPerDay {
			return Catalog{}, fmt.Errorf("%s has %d shifts, expected %d", day, len(ranges), ShiftsPerDay)
		}

		slots := make([]ShiftSlot, 0, len(ranges))
		for _, s := range ranges {
			r, err := ParseTimeRange(s)
			if err != nil {
				return Catalog{}, fmt.Errorf("%s: %w", day, err)
			}
			slots = append(slots, NewShiftSlot(day, r))
		}
		c.days[day] = slots
	}
	return c, nil
}

// Slots returns the day's shifts in catalog order. The returned slice is a
// copy and may be reordered by the caller.
func (c Catalog) Slots(day Weekday) []ShiftSlot {
	if day < Monday || day > Sunday {
		return nil
	}
	slots := make([]ShiftSlot, len(c.days[day]))
	copy(slots, c.days[day])
	return slots
}

// First returns the day's first shift in catalog order
func (c Catalog) First(day Weekday) (ShiftSlot, bool) {
	if day < Monday || day > Sunday || len(c.days[day]) == 0 {
		return ShiftSlot{}, false
	}
	return c.days[day][0], true
}

// defaultCatalogTable holds the weekly shift pattern. Each day has a full day
// shift, two staggered day shifts finishing at 19:30 and the night shift.
var defaultCatalogTable = map[Weekday][]string{
	Monday:    {"08:00 - 20:00", "09:15 - 19:30", "10:30 - 19:30", "20:00 - 08:00"},
	Tuesday:   {"08:00 - 20:00", "08:30 - 19:30", "10:00 - 19:30", "20:00 - 08:00"},
	Wednesday: {"08:00 - 20:00", "09:15 - 19:30", "10:30 - 19:30", "20:00 - 08:00"},
	Thursday:  {"08:00 - 20:00", "08:30 - 19:30", "10:00 - 19:30", "20:00 - 08:00"},
	Friday:    {"08:00 - 20:00", "09:15 - 19:30", "10:30 - 19:30", "20:00 - 08:00"},
	Saturday:  {"08:00 - 20:00", "08:30 - 19:30", "10:00 - 19:30", "20:00 - 08:00"},
	Sunday:    {"08:00 - 20:00", "10:00 - 19:30", "10:30 - 19:30", "20:00 - 08:00"},
}

var defaultCatalog = mustCatalog(defaultCatalogTable)

func mustCatalog(table map[Weekday][]string) Catalog {
	c, err := NewCatalog(table)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the standard weekly shift catalog
func DefaultCatalog() Catalog {
	return defaultCatalog
}
