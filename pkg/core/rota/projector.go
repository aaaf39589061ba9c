package rota

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// ErrInvalidMonth is returned for months outside 1..12
var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// WorkingDaysPerWeek divides contracted weekly hours into a daily rate
const WorkingDaysPerWeek = 5

// MonthlyProjection is a staff member's expected hours for a month
type MonthlyProjection struct {
	Name            string
	ContractedHours float64
	Weekdays        int
	ProjectedHours  float64
}

// WeekdayDates returns every Monday to Friday date in the month, in order
func WeekdayDates(year, month int) ([]time.Time, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMonth, month)
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   first,
		Until:     last,
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekday rule: %w", err)
	}

	return r.All(), nil
}

// WeekdayCount returns the number of Monday to Friday days in the month
func WeekdayCount(year, month int) (int, error) {
	dates, err := WeekdayDates(year, month)
	if err != nil {
		return 0, err
	}
	return len(dates), nil
}

// ProjectMonthlyHours projects each member's contracted weekly hours onto
// the given number of working days: contracted/5 * weekdays
func ProjectMonthlyHours(roster Roster, weekdays int) []MonthlyProjection {
	projections := make([]MonthlyProjection, 0, roster.Len())
	for _, member := range roster.members {
		projections = append(projections, MonthlyProjection{
			Name:            member.Name,
			ContractedHours: member.ContractedHours,
			Weekdays:        weekdays,
			ProjectedHours:  member.ContractedHours / WorkingDaysPerWeek * float64(weekdays),
		})
	}
	return projections
}

// ProjectMonth counts the month's weekdays and projects the roster onto them
func ProjectMonth(roster Roster, year, month int) ([]MonthlyProjection, error) {
	weekdays, err := WeekdayCount(year, month)
	if err != nil {
		return nil, err
	}
	return ProjectMonthlyHours(roster, weekdays), nil
}
