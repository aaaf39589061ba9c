package rota

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRosterEntry is returned when a roster entry cannot be scheduled
var ErrInvalidRosterEntry = errors.New("invalid roster entry")

// OvertimeBuffer is the number of hours a staff member may be assigned above
// their contracted weekly hours
const OvertimeBuffer = 8.0

// StaffMember is a roster entry
type StaffMember struct {
	Name            string  `validate:"required"`
	ContractedHours float64 `validate:"gte=0"`
}

// MaxHours is the most a staff member can be assigned in a week
func (s StaffMember) MaxHours() float64 {
	return s.ContractedHours + OvertimeBuffer
}

// Roster is a validated, ordered list of staff members.
// Build it with NewRoster; the zero value is an empty roster.
type Roster struct {
	members []StaffMember
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// NewRoster validates entries and returns a roster in the given order.
// Names are trimmed. Empty names, negative or non-finite hours and duplicate
// names are rejected with ErrInvalidRosterEntry.
func NewRoster(entries []StaffMember) (Roster, error) {
	seen := make(map[string]bool, len(entries))
	members := make([]StaffMember, 0, len(entries))

	for i, entry := range entries {
		entry.Name = strings.TrimSpace(entry.Name)

		if err := ValidateStaffMember(entry); err != nil {
			return Roster{}, fmt.Errorf("roster[%d]: %w", i, err)
		}

		if seen[entry.Name] {
			return Roster{}, fmt.Errorf("roster[%d]: %w: duplicate name %q", i, ErrInvalidRosterEntry, entry.Name)
		}
		seen[entry.Name] = true

		members = append(members, entry)
	}

	return Roster{members: members}, nil
}

// ValidateStaffMember checks a single entry
func ValidateStaffMember(entry StaffMember) error {
	if math.IsNaN(entry.ContractedHours) || math.IsInf(entry.ContractedHours, 0) {
		return fmt.Errorf("%w: %q has non-finite contracted hours", ErrInvalidRosterEntry, entry.Name)
	}

	if err := validate.Struct(entry); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRosterEntry, entry.Name, err)
	}

	return nil
}

// Members returns a copy of the roster entries
func (r Roster) Members() []StaffMember {
	members := make([]StaffMember, len(r.members))
	copy(members, r.members)
	return members
}

// Len returns the number of staff on the roster
func (r Roster) Len() int {
	return len(r.members)
}

// Lookup finds a staff member by name
func (r Roster) Lookup(name string) (StaffMember, bool) {
	for _, m := range r.members {
		if m.Name == name {
			return m, true
		}
	}
	return StaffMember{}, false
}
