package rota

// StaffState is the per-run scheduling record for one staff member.
// A fresh StaffState is built for every run and discarded afterwards.
type StaffState struct {
	Member StaffMember

	// Assigned holds at most one slot per day
	Assigned map[Weekday]ShiftSlot

	// TotalHours is the running sum of assigned slot hours
	TotalHours float64

	// LastDay is the most recent day this member was assigned, NoDay if none
	LastDay Weekday

	// LastType is the type of the most recent assigned slot, empty if none
	LastType ShiftType

	// ConsecutiveDays counts the current run of back-to-back working days
	ConsecutiveDays int
}

func newStaffState(member StaffMember) StaffState {
	return StaffState{
		Member:   member,
		Assigned: make(map[Weekday]ShiftSlot),
		LastDay:  NoDay,
	}
}

// WorksOn reports whether the member already has a slot on day
func (s *StaffState) WorksOn(day Weekday) bool {
	_, ok := s.Assigned[day]
	return ok
}

// Constraint is a hard rule checked before a slot is given to a staff member.
// If any constraint rejects the pairing the candidate is skipped.
type Constraint interface {
	// Name identifies the constraint in validation output
	Name() string

	// Allows reports whether slot on day may be assigned to staff
	Allows(staff *StaffState, day Weekday, slot ShiftSlot) bool
}

// DefaultConstraints returns the rules the weekly scheduler enforces
func DefaultConstraints() []Constraint {
	return []Constraint{
		OneShiftPerDay{},
		HourBudget{},
		ShiftTypeTransition{},
		StaleAssignment{},
	}
}

// OneShiftPerDay rejects a second slot on the same day
type OneShiftPerDay struct{}

func (OneShiftPerDay) Name() string { return "OneShiftPerDay" }

func (OneShiftPerDay) Allows(staff *StaffState, day Weekday, slot ShiftSlot) bool {
	return !staff.WorksOn(day)
}

// HourBudget rejects slots that would take a member past contracted hours
// plus the overtime buffer
type HourBudget struct{}

func (HourBudget) Name() string { return "HourBudget" }

func (HourBudget) Allows(staff *StaffState, day Weekday, slot ShiftSlot) bool {
	return staff.TotalHours+slot.Hours <= staff.Member.MaxHours()
}

// ShiftTypeTransition requires at least two days between the last slot and a
// slot of the other type
type ShiftTypeTransition struct{}

func (ShiftTypeTransition) Name() string { return "ShiftTypeTransition" }

func (ShiftTypeTransition) Allows(staff *StaffState, day Weekday, slot ShiftSlot) bool {
	if staff.LastType == "" || staff.LastType == slot.Type {
		return true
	}
	return int(day-staff.LastDay) >= 2
}

// StaleAssignment blocks a member whose last slot is neither on the previous
// day nor within one day of this one.
//
// Combined with ShiftTypeTransition this means a member who misses a day
// after working is not assigned again that week.
type StaleAssignment struct{}

func (StaleAssignment) Name() string { return "StaleAssignment" }

func (StaleAssignment) Allows(staff *StaffState, day Weekday, slot ShiftSlot) bool {
	if staff.LastDay == NoDay || staff.LastDay == day.Prev() {
		return true
	}
	return int(day-staff.LastDay) <= 1
}
