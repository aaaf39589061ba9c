package rota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identitySource leaves every ordering as given
type identitySource struct{}

func (identitySource) Shuffle(n int, swap func(i, j int)) {}

// reverseSource reverses every ordering it is asked to shuffle
type reverseSource struct{}

func (reverseSource) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func mustRoster(t *testing.T, entries ...StaffMember) Roster {
	t.Helper()
	roster, err := NewRoster(entries)
	require.NoError(t, err)
	return roster
}

func TestSchedule_SingleStaffMemberFillsUntilBudget(t *testing.T) {
	roster := mustRoster(t, StaffMember{Name: "Alice", ContractedHours: 40})

	result := Schedule(roster, DefaultCatalog(), identitySource{})

	// Alice takes the 12h first shift Monday to Thursday, reaching 48h
	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday} {
		slot, ok := result.Assignments[day]["Alice"]
		require.True(t, ok, "Alice should work %s", day)
		assert.Equal(t, "08:00 - 20:00", slot.Label())
		assert.Len(t, result.Bank[day], 3)
	}

	// No budget left for Friday, and Saturday/Sunday are blocked by the stale rule
	for _, day := range []Weekday{Friday, Saturday, Sunday} {
		assert.Empty(t, result.Assignments[day], "%s should have no assignments", day)
		assert.Len(t, result.Bank[day], 4)
	}

	assert.Equal(t, 48.0, result.WeeklyHours["Alice"])
	require.Len(t, result.Staff, 1)
	assert.Equal(t, 4, result.Staff[0].ConsecutiveDays)
	assert.Equal(t, 4, result.Staff[0].ShiftCount)
	assert.Equal(t, ShiftTypeDay, result.Staff[0].LastType)
	assert.Equal(t, 4, result.AssignedCount())
	assert.Equal(t, 24, result.BankCount())
}

func TestSchedule_ReverseOrderingStartsWithNightShift(t *testing.T) {
	roster := mustRoster(t, StaffMember{Name: "Alice", ContractedHours: 40})

	result := Schedule(roster, DefaultCatalog(), reverseSource{})

	// Reversed slot order visits the night shift first each day, and Alice
	// stays on nights because switching type needs a two day gap
	for _, day := range []Weekday{Monday, Tuesday, Wednesday, Thursday} {
		slot, ok := result.Assignments[day]["Alice"]
		require.True(t, ok, "Alice should work %s", day)
		assert.Equal(t, ShiftTypeNight, slot.Type)
	}
	assert.Equal(t, 48.0, result.WeeklyHours["Alice"])
	assert.Empty(t, ValidateSchedule(result, roster, DefaultCatalog()))
}

func TestSchedule_EmptyRosterBanksEverything(t *testing.T) {
	result := Schedule(Roster{}, DefaultCatalog(), NewRandomSource(1))

	for _, day := range Weekdays {
		assert.Empty(t, result.Assignments[day])
		assert.Len(t, result.Bank[day], ShiftsPerDay)
	}
	assert.Empty(t, result.WeeklyHours)
	assert.Empty(t, result.Staff)
}

func TestSchedule_ZeroHourStaffIsNeverAssigned(t *testing.T) {
	// 0 contracted + 8 overtime cannot cover any catalog shift (shortest is 9h)
	roster := mustRoster(t, StaffMember{Name: "Casual", ContractedHours: 0})

	result := Schedule(roster, DefaultCatalog(), NewRandomSource(7))

	assert.Equal(t, 0.0, result.WeeklyHours["Casual"])
	assert.Equal(t, 28, result.BankCount())
}

func TestSchedule_AliceAndBob(t *testing.T) {
	roster := mustRoster(t,
		StaffMember{Name: "Alice", ContractedHours: 40},
		StaffMember{Name: "Bob", ContractedHours: 32},
	)
	catalog := DefaultCatalog()

	for seed := uint64(0); seed < 50; seed++ {
		result := Schedule(roster, catalog, NewRandomSource(seed))

		for _, day := range Weekdays {
			assert.Equal(t, ShiftsPerDay, len(result.Assignments[day])+len(result.Bank[day]),
				"seed %d %s: assigned + banked should cover the catalog", seed, day)
			for name := range result.Assignments[day] {
				assert.Contains(t, []string{"Alice", "Bob"}, name)
			}
		}

		assert.LessOrEqual(t, result.WeeklyHours["Alice"], 48.0, "seed %d", seed)
		assert.LessOrEqual(t, result.WeeklyHours["Bob"], 40.0, "seed %d", seed)
		assert.Empty(t, ValidateSchedule(result, roster, catalog), "seed %d", seed)
	}
}

func TestSchedule_InvariantsHoldAcrossSeeds(t *testing.T) {
	roster := mustRoster(t,
		StaffMember{Name: "Alice", ContractedHours: 40},
		StaffMember{Name: "Bob", ContractedHours: 32},
		StaffMember{Name: "Carol", ContractedHours: 24},
		StaffMember{Name: "Dan", ContractedHours: 37.5},
		StaffMember{Name: "Eve", ContractedHours: 16},
		StaffMember{Name: "Frank", ContractedHours: 40},
		StaffMember{Name: "Grace", ContractedHours: 20},
	)
	catalog := DefaultCatalog()

	for seed := uint64(0); seed < 200; seed++ {
		result := Schedule(roster, catalog, NewRandomSource(seed))

		violations := ValidateSchedule(result, roster, catalog)
		assert.Empty(t, violations, "seed %d", seed)

		for _, member := range roster.Members() {
			assert.LessOrEqual(t, result.WeeklyHours[member.Name], member.MaxHours(), "seed %d %s", seed, member.Name)
		}
		assert.Equal(t, len(Weekdays)*ShiftsPerDay, result.AssignedCount()+result.BankCount(), "seed %d", seed)
	}
}

func TestSchedule_DeterministicWithSeed(t *testing.T) {
	roster := mustRoster(t,
		StaffMember{Name: "Alice", ContractedHours: 40},
		StaffMember{Name: "Bob", ContractedHours: 32},
		StaffMember{Name: "Carol", ContractedHours: 24},
	)

	first := Schedule(roster, DefaultCatalog(), NewRandomSource(42))
	second := Schedule(roster, DefaultCatalog(), NewRandomSource(42))

	assert.Equal(t, first, second)
}

func TestSchedule_DoesNotCarryStateBetweenRuns(t *testing.T) {
	roster := mustRoster(t, StaffMember{Name: "Alice", ContractedHours: 40})
	scheduler := NewScheduler(DefaultConstraints()...)

	first := scheduler.Schedule(roster, DefaultCatalog(), identitySource{})
	second := scheduler.Schedule(roster, DefaultCatalog(), identitySource{})

	assert.Equal(t, first, second)
	assert.Equal(t, 48.0, second.WeeklyHours["Alice"])
}

func TestSchedule_OnlyOneShiftPerDay(t *testing.T) {
	// Without HourBudget four staff cover every slot and overrun their hours
	roster := mustRoster(t,
		StaffMember{Name: "Alice", ContractedHours: 40},
		StaffMember{Name: "Bob", ContractedHours: 40},
		StaffMember{Name: "Carol", ContractedHours: 40},
		StaffMember{Name: "Dan", ContractedHours: 40},
	)

	result := NewScheduler(OneShiftPerDay{}).Schedule(roster, DefaultCatalog(), identitySource{})

	for _, day := range Weekdays {
		assert.Len(t, result.Assignments[day], 4, "%s", day)
		assert.Empty(t, result.Bank[day], "%s", day)
	}
	assert.Greater(t, result.WeeklyHours["Alice"], 48.0)
}

func TestOrderCandidates_ContinuationFirst(t *testing.T) {
	catalog := DefaultCatalog()
	staff := []StaffState{
		newStaffState(StaffMember{Name: "Fresh", ContractedHours: 40}),
		newStaffState(StaffMember{Name: "Worked", ContractedHours: 40}),
		newStaffState(StaffMember{Name: "Tired", ContractedHours: 12}),
	}
	assign(&staff[1], Monday, catalog.Slots(Monday)[0])
	assign(&staff[2], Monday, catalog.Slots(Monday)[0])

	s := NewScheduler(DefaultConstraints()...)
	order := s.orderCandidates(staff, Tuesday, catalog, identitySource{})

	// Worked continues from Monday; Tired cannot afford another 12h shift
	assert.Equal(t, []int{1, 0, 2}, order)
}

func TestAssign_ConsecutiveDays(t *testing.T) {
	slot := DefaultCatalog().Slots(Monday)[0]
	state := newStaffState(StaffMember{Name: "Alice", ContractedHours: 40})

	assign(&state, Monday, slot)
	assert.Equal(t, 1, state.ConsecutiveDays)

	assign(&state, Tuesday, slot)
	assert.Equal(t, 2, state.ConsecutiveDays)

	assign(&state, Thursday, slot)
	assert.Equal(t, 1, state.ConsecutiveDays)
	assert.Equal(t, Thursday, state.LastDay)
	assert.Equal(t, 36.0, state.TotalHours)
}
