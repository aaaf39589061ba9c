package rota

import "sort"

// StaffSummary is a member's final state after a run
type StaffSummary struct {
	Name            string
	ContractedHours float64
	AssignedHours   float64
	ShiftCount      int
	ConsecutiveDays int
	LastType        ShiftType
}

// ScheduleResult is the outcome of one scheduling run
type ScheduleResult struct {
	// Assignments maps day → staff name → slot
	Assignments map[Weekday]map[string]ShiftSlot

	// Bank holds, per day, the slots no eligible staff member could take,
	// in the order they were visited
	Bank map[Weekday][]ShiftSlot

	// WeeklyHours maps staff name → total hours assigned
	WeeklyHours map[string]float64

	// Staff summarises every roster member in roster order
	Staff []StaffSummary
}

func newScheduleResult() *ScheduleResult {
	r := &ScheduleResult{
		Assignments: make(map[Weekday]map[string]ShiftSlot, len(Weekdays)),
		Bank:        make(map[Weekday][]ShiftSlot, len(Weekdays)),
		WeeklyHours: make(map[string]float64),
		Staff:       []StaffSummary{},
	}
	for _, day := range Weekdays {
		r.Assignments[day] = make(map[string]ShiftSlot)
		r.Bank[day] = []ShiftSlot{}
	}
	return r
}

func (r *ScheduleResult) addStaff(s *StaffState) {
	r.WeeklyHours[s.Member.Name] = s.TotalHours
	r.Staff = append(r.Staff, StaffSummary{
		Name:            s.Member.Name,
		ContractedHours: s.Member.ContractedHours,
		AssignedHours:   s.TotalHours,
		ShiftCount:      len(s.Assigned),
		ConsecutiveDays: s.ConsecutiveDays,
		LastType:        s.LastType,
	})
}

// AssignmentLabels returns day → staff name → time range label for display
func (r *ScheduleResult) AssignmentLabels() map[Weekday]map[string]string {
	labels := make(map[Weekday]map[string]string, len(r.Assignments))
	for day, byName := range r.Assignments {
		labels[day] = make(map[string]string, len(byName))
		for name, slot := range byName {
			labels[day][name] = slot.Label()
		}
	}
	return labels
}

// BankLabels returns the banked slot labels per day, at most limit per day.
// A limit of zero or less means no cap.
func (r *ScheduleResult) BankLabels(limit int) map[Weekday][]string {
	labels := make(map[Weekday][]string, len(r.Bank))
	for day, slots := range r.Bank {
		n := len(slots)
		if limit > 0 && n > limit {
			n = limit
		}
		dayLabels := make([]string, 0, n)
		for _, slot := range slots[:n] {
			dayLabels = append(dayLabels, slot.Label())
		}
		labels[day] = dayLabels
	}
	return labels
}

// BankCount is the total number of unfilled slots across the week
func (r *ScheduleResult) BankCount() int {
	count := 0
	for _, slots := range r.Bank {
		count += len(slots)
	}
	return count
}

// AssignedCount is the total number of filled slots across the week
func (r *ScheduleResult) AssignedCount() int {
	count := 0
	for _, byName := range r.Assignments {
		count += len(byName)
	}
	return count
}

// StaffOn returns the names assigned on day, sorted
func (r *ScheduleResult) StaffOn(day Weekday) []string {
	names := make([]string, 0, len(r.Assignments[day]))
	for name := range r.Assignments[day] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
