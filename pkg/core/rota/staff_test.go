package rota

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoster_Valid(t *testing.T) {
	roster, err := NewRoster([]StaffMember{
		{Name: " Alice ", ContractedHours: 40},
		{Name: "Bob", ContractedHours: 32},
		{Name: "Zero", ContractedHours: 0},
	})
	require.NoError(t, err)

	members := roster.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, "Bob", members[1].Name)

	bob, ok := roster.Lookup("Bob")
	require.True(t, ok)
	assert.Equal(t, 40.0, bob.MaxHours())

	_, ok = roster.Lookup("Carol")
	assert.False(t, ok)
}

func TestNewRoster_InvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []StaffMember
	}{
		{"empty name", []StaffMember{{Name: "", ContractedHours: 40}}},
		{"blank name", []StaffMember{{Name: "   ", ContractedHours: 40}}},
		{"negative hours", []StaffMember{{Name: "Alice", ContractedHours: -1}}},
		{"NaN hours", []StaffMember{{Name: "Alice", ContractedHours: math.NaN()}}},
		{"infinite hours", []StaffMember{{Name: "Alice", ContractedHours: math.Inf(1)}}},
		{"duplicate name", []StaffMember{{Name: "Alice", ContractedHours: 40}, {Name: "Alice", ContractedHours: 20}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoster(tt.entries)
			assert.ErrorIs(t, err, ErrInvalidRosterEntry)
		})
	}
}

func TestNewRoster_Empty(t *testing.T) {
	roster, err := NewRoster(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, roster.Len())
}

func TestRosterMembers_ReturnsCopy(t *testing.T) {
	roster, err := NewRoster([]StaffMember{{Name: "Alice", ContractedHours: 40}})
	require.NoError(t, err)

	members := roster.Members()
	members[0].ContractedHours = 10

	alice, _ := roster.Lookup("Alice")
	assert.Equal(t, 40.0, alice.ContractedHours)
}
