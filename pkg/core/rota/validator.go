package rota

import "fmt"

// ScheduleViolation describes a result that breaks a scheduling invariant
type ScheduleViolation struct {
	Day         Weekday
	Rule        string
	Description string
}

func (v ScheduleViolation) String() string {
	return fmt.Sprintf("%s [%s]: %s", v.Day, v.Rule, v.Description)
}

// ValidateSchedule checks a result against the roster and catalog it was
// built from. An empty slice means the result is consistent.
//
// One slot per staff member per day is guaranteed by the shape of
// Assignments and is not checked separately.
func ValidateSchedule(result *ScheduleResult, roster Roster, catalog Catalog) []ScheduleViolation {
	var violations []ScheduleViolation

	violations = append(violations, validateConservation(result, catalog)...)
	violations = append(violations, validateHours(result, roster)...)
	violations = append(violations, validateTransitions(result, roster)...)

	return violations
}

// validateConservation checks every catalog slot is either assigned once or
// banked once
func validateConservation(result *ScheduleResult, catalog Catalog) []ScheduleViolation {
	var violations []ScheduleViolation

	for _, day := range Weekdays {
		counts := make(map[ShiftSlot]int)
		for _, slot := range result.Assignments[day] {
			counts[slot]++
		}
		for _, slot := range result.Bank[day] {
			counts[slot]++
		}

		for _, slot := range catalog.Slots(day) {
			switch n := counts[slot]; {
			case n == 0:
				violations = append(violations, ScheduleViolation{
					Day:         day,
					Rule:        "Conservation",
					Description: fmt.Sprintf("shift %s is neither assigned nor banked", slot.Label()),
				})
			case n > 1:
				violations = append(violations, ScheduleViolation{
					Day:         day,
					Rule:        "Conservation",
					Description: fmt.Sprintf("shift %s appears %d times", slot.Label(), n),
				})
			}
			delete(counts, slot)
		}

		for slot := range counts {
			violations = append(violations, ScheduleViolation{
				Day:         day,
				Rule:        "Conservation",
				Description: fmt.Sprintf("shift %s is not in the catalog", slot.Label()),
			})
		}
	}

	return violations
}

func validateHours(result *ScheduleResult, roster Roster) []ScheduleViolation {
	var violations []ScheduleViolation

	totals := make(map[string]float64)
	for _, day := range Weekdays {
		for name, slot := range result.Assignments[day] {
			if _, ok := roster.Lookup(name); !ok {
				violations = append(violations, ScheduleViolation{
					Day:         day,
					Rule:        "Roster",
					Description: fmt.Sprintf("%q is not on the roster", name),
				})
				continue
			}
			totals[name] += slot.Hours
		}
	}

	for _, member := range roster.members {
		total := totals[member.Name]
		if total > member.MaxHours() {
			violations = append(violations, ScheduleViolation{
				Day:         NoDay,
				Rule:        HourBudget{}.Name(),
				Description: fmt.Sprintf("%q assigned %.2f hours, limit %.2f", member.Name, total, member.MaxHours()),
			})
		}
		if reported := result.WeeklyHours[member.Name]; reported != total {
			violations = append(violations, ScheduleViolation{
				Day:         NoDay,
				Rule:        "WeeklyHours",
				Description: fmt.Sprintf("%q reported %.2f hours but assignments total %.2f", member.Name, reported, total),
			})
		}
	}

	return violations
}

// validateTransitions checks day/night switches are at least two days apart
func validateTransitions(result *ScheduleResult, roster Roster) []ScheduleViolation {
	var violations []ScheduleViolation

	for _, member := range roster.members {
		lastDay := NoDay
		var lastType ShiftType

		for _, day := range Weekdays {
			slot, ok := result.Assignments[day][member.Name]
			if !ok {
				continue
			}

			if lastType != "" && lastType != slot.Type && int(day-lastDay) < 2 {
				violations = append(violations, ScheduleViolation{
					Day:  day,
					Rule: ShiftTypeTransition{}.Name(),
					Description: fmt.Sprintf("%q switches from %s on %s to %s on %s",
						member.Name, lastType, lastDay, slot.Type, day),
				})
			}

			lastDay = day
			lastType = slot.Type
		}
	}

	return violations
}
