package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/db"
)

// ListStaff returns the stored roster
func ListStaff(ctx context.Context, store db.RosterReader, logger *zap.Logger) ([]db.Staff, error) {
	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}

	logger.Debug("Staff fetched", zap.Int("count", len(staff)))
	return staff, nil
}

// AddStaff validates and stores a new roster entry
func AddStaff(ctx context.Context, store db.Database, logger *zap.Logger, name string, contractedHours float64) (*db.Staff, error) {
	member := rota.StaffMember{
		Name:            strings.TrimSpace(name),
		ContractedHours: contractedHours,
	}
	if err := rota.ValidateStaffMember(member); err != nil {
		return nil, err
	}

	existing, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	if match := findStaffByName(existing, member.Name); match != nil {
		return nil, fmt.Errorf("%w: %q is already on the roster as %q", rota.ErrInvalidRosterEntry, member.Name, match.Name)
	}

	staff := &db.Staff{
		ID:              uuid.New().String(),
		Name:            member.Name,
		ContractedHours: member.ContractedHours,
	}

	if err := store.InsertStaff(ctx, staff); err != nil {
		return nil, fmt.Errorf("failed to add staff: %w", err)
	}

	logger.Info("Staff added",
		zap.String("id", staff.ID),
		zap.String("name", staff.Name),
		zap.Float64("contracted_hours", staff.ContractedHours))

	return staff, nil
}

// RemoveStaff deletes a roster entry, matching the name case-insensitively
func RemoveStaff(ctx context.Context, store db.Database, logger *zap.Logger, name string) (*db.Staff, error) {
	existing, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	match := findStaffByName(existing, strings.TrimSpace(name))
	if match == nil {
		return nil, fmt.Errorf("failed to remove %q: %w", name, db.ErrStaffNotFound)
	}

	if err := store.DeleteStaff(ctx, match.Name); err != nil {
		return nil, fmt.Errorf("failed to remove staff: %w", err)
	}

	logger.Info("Staff removed", zap.String("id", match.ID), zap.String("name", match.Name))
	return match, nil
}
