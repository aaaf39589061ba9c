package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/staff-rota/internal/config"
	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/db"
)

// ProjectionReport holds projected monthly hours for the roster
type ProjectionReport struct {
	Year  int
	Month time.Month

	// Weekdays is the number of working weekdays after closed days are removed
	Weekdays int

	// ClosedDates are weekdays in the month excluded by closedDays rules
	ClosedDates []time.Time

	Projections []rota.MonthlyProjection
}

// ProjectHours projects each staff member's contracted weekly hours onto
// the weekdays of the given month, skipping configured closed days
func ProjectHours(ctx context.Context, store db.RosterReader, cfg *config.Config, logger *zap.Logger, year, month int) (*ProjectionReport, error) {
	logger.Debug("Projecting monthly hours", zap.Int("year", year), zap.Int("month", month))

	dates, err := rota.WeekdayDates(year, month)
	if err != nil {
		return nil, err
	}

	var closedDays []config.ClosedDay
	if cfg != nil {
		closedDays = cfg.ClosedDays
	}

	working, closed, err := excludeClosedDays(dates, closedDays)
	if err != nil {
		return nil, err
	}
	if len(closed) > 0 {
		logger.Debug("Closed days excluded", zap.Int("count", len(closed)))
	}

	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	roster, err := toRoster(staff)
	if err != nil {
		return nil, err
	}

	projections := rota.ProjectMonthlyHours(roster, len(working))

	logger.Info("Monthly hours projected",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("weekdays", len(working)),
		zap.Int("staff_count", roster.Len()))

	return &ProjectionReport{
		Year:        year,
		Month:       time.Month(month),
		Weekdays:    len(working),
		ClosedDates: closed,
		Projections: projections,
	}, nil
}

// excludeClosedDays splits dates into working and closed according to the
// closed day rules. Rules are anchored at the first date so yearly and
// monthly rules line up with the month being projected.
func excludeClosedDays(dates []time.Time, closedDays []config.ClosedDay) ([]time.Time, []time.Time, error) {
	if len(dates) == 0 || len(closedDays) == 0 {
		return dates, []time.Time{}, nil
	}

	first := dates[0]
	last := dates[len(dates)-1]

	var occurrences []time.Time
	for i, closedDay := range closedDays {
		r, err := rrule.StrToRRule(closedDay.RRule)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid rrule in closedDays[%d]: %w", i, err)
		}
		r.DTStart(time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC))
		occurrences = append(occurrences, r.Between(first, last, true)...)
	}

	working := make([]time.Time, 0, len(dates))
	closed := []time.Time{}
	for _, d := range dates {
		isClosed := false
		for _, o := range occurrences {
			if sameDate(d, o) {
				isClosed = true
				break
			}
		}

		if isClosed {
			closed = append(closed, d)
		} else {
			working = append(working, d)
		}
	}

	return working, closed, nil
}
