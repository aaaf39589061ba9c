package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/db"
)

// toRoster converts stored staff into a validated roster, keeping store order
func toRoster(staff []db.Staff) (rota.Roster, error) {
	entries := make([]rota.StaffMember, 0, len(staff))
	for _, s := range staff {
		entries = append(entries, rota.StaffMember{
			Name:            s.Name,
			ContractedHours: s.ContractedHours,
		})
	}

	roster, err := rota.NewRoster(entries)
	if err != nil {
		return rota.Roster{}, fmt.Errorf("invalid roster: %w", err)
	}
	return roster, nil
}

// findStaffByName looks a name up case-insensitively
func findStaffByName(staff []db.Staff, name string) *db.Staff {
	for i := range staff {
		if strings.EqualFold(staff[i].Name, name) {
			return &staff[i]
		}
	}
	return nil
}

// sameDate compares calendar dates, ignoring time of day and location
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
