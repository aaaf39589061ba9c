package rota

import "math/rand/v2"

// RandomSource supplies the random orderings used to break ties.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Shuffle(n int, swap func(i, j int))
}

// NewRandomSource returns a deterministic source for the given seed
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// NewEntropySource returns a randomly seeded source
func NewEntropySource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Scheduler assigns staff to the weekly shift catalog
type Scheduler struct {
	constraints []Constraint
}

// NewScheduler creates a scheduler enforcing the given constraints
func NewScheduler(constraints ...Constraint) *Scheduler {
	return &Scheduler{constraints: constraints}
}

// Schedule runs the weekly scheduler with the default constraints
func Schedule(roster Roster, catalog Catalog, rng RandomSource) *ScheduleResult {
	return NewScheduler(DefaultConstraints()...).Schedule(roster, catalog, rng)
}

// Schedule assigns the catalog's slots to the roster and returns the result.
//
// Days are processed Monday to Sunday. On each day staff who worked the
// previous day and can still afford the day's first slot are tried first
// (continuation candidates), then everyone else; both groups are shuffled
// independently. The day's slots are visited in random order and each goes to
// the first candidate every constraint allows. Slots nobody can take are
// banked for that day.
//
// This is a single greedy pass without backtracking. An early choice can leave
// a later slot unfilled even when a different order would have covered it.
//
// Schedule never fails. All per-staff state is built fresh for the run.
func (s *Scheduler) Schedule(roster Roster, catalog Catalog, rng RandomSource) *ScheduleResult {
	staff := make([]StaffState, 0, roster.Len())
	for _, member := range roster.members {
		staff = append(staff, newStaffState(member))
	}

	result := newScheduleResult()

	for _, day := range Weekdays {
		candidates := s.orderCandidates(staff, day, catalog, rng)

		slots := catalog.Slots(day)
		rng.Shuffle(len(slots), func(i, j int) {
			slots[i], slots[j] = slots[j], slots[i]
		})

		for _, slot := range slots {
			chosen := s.firstEligible(staff, candidates, day, slot)
			if chosen < 0 {
				result.Bank[day] = append(result.Bank[day], slot)
				continue
			}

			assign(&staff[chosen], day, slot)
			result.Assignments[day][staff[chosen].Member.Name] = slot
		}
	}

	for i := range staff {
		result.addStaff(&staff[i])
	}

	return result
}

// orderCandidates returns staff indices for day: shuffled continuation
// candidates followed by the other shuffled candidates
func (s *Scheduler) orderCandidates(staff []StaffState, day Weekday, catalog Catalog, rng RandomSource) []int {
	prevDay := day.Prev()
	first, hasFirst := catalog.First(day)

	var continuation, others []int
	for i := range staff {
		member := &staff[i]
		if member.WorksOn(day) {
			continue
		}

		if prevDay != NoDay && member.LastDay == prevDay && hasFirst &&
			member.TotalHours+first.Hours <= member.Member.MaxHours() {
			continuation = append(continuation, i)
		} else {
			others = append(others, i)
		}
	}

	shuffleIndices(rng, continuation)
	shuffleIndices(rng, others)

	return append(continuation, others...)
}

// firstEligible returns the first candidate allowed to take slot, or -1
func (s *Scheduler) firstEligible(staff []StaffState, candidates []int, day Weekday, slot ShiftSlot) int {
	for _, idx := range candidates {
		if s.allows(&staff[idx], day, slot) {
			return idx
		}
	}
	return -1
}

func (s *Scheduler) allows(member *StaffState, day Weekday, slot ShiftSlot) bool {
	for _, c := range s.constraints {
		if !c.Allows(member, day, slot) {
			return false
		}
	}
	return true
}

// assign records slot against member and updates the running state
func assign(member *StaffState, day Weekday, slot ShiftSlot) {
	prevDay := day.Prev()
	if prevDay != NoDay && member.LastDay == prevDay {
		member.ConsecutiveDays++
	} else {
		member.ConsecutiveDays = 1
	}

	member.Assigned[day] = slot
	member.TotalHours += slot.Hours
	member.LastDay = day
	member.LastType = slot.Type
}

func shuffleIndices(rng RandomSource, indices []int) {
	rng.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
}
