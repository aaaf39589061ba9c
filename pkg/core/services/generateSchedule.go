package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/staff-rota/pkg/core/rota"
	"github.com/jakechorley/staff-rota/pkg/db"
)

// ScheduleOptions controls a scheduling run
type ScheduleOptions struct {
	// Seed makes the run reproducible. A nil seed uses a randomly seeded source.
	Seed *uint64
}

// ScheduleReport is the result of GenerateSchedule
type ScheduleReport struct {
	RunID   string
	Seed    *uint64
	Roster  rota.Roster
	Catalog rota.Catalog
	Result  *rota.ScheduleResult

	// Violations is empty unless the result breaks a scheduling invariant
	Violations []rota.ScheduleViolation
}

// GenerateSchedule loads the roster, validates it and schedules the default
// weekly catalog. Nothing is persisted; every call starts from scratch.
func GenerateSchedule(ctx context.Context, store db.RosterReader, logger *zap.Logger, opts ScheduleOptions) (*ScheduleReport, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Debug("Fetching roster")
	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	roster, err := toRoster(staff)
	if err != nil {
		return nil, err
	}
	logger.Debug("Roster loaded", zap.Int("staff_count", roster.Len()))

	if roster.Len() == 0 {
		logger.Warn("Roster is empty, every shift will be banked")
	}

	var rng rota.RandomSource
	if opts.Seed != nil {
		logger.Info("Scheduling with fixed seed", zap.Uint64("seed", *opts.Seed))
		rng = rota.NewRandomSource(*opts.Seed)
	} else {
		rng = rota.NewEntropySource()
	}

	catalog := rota.DefaultCatalog()
	result := rota.Schedule(roster, catalog, rng)

	violations := rota.ValidateSchedule(result, roster, catalog)
	for _, v := range violations {
		logger.Error("Schedule violation",
			zap.String("day", v.Day.String()),
			zap.String("rule", v.Rule),
			zap.String("description", v.Description))
	}

	for _, day := range rota.Weekdays {
		if banked := len(result.Bank[day]); banked > 0 {
			logger.Debug("Unfilled shifts",
				zap.String("day", day.String()),
				zap.Int("count", banked))
		}
	}

	logger.Info("Schedule generated",
		zap.Int("assigned", result.AssignedCount()),
		zap.Int("banked", result.BankCount()),
		zap.Int("violations", len(violations)))

	return &ScheduleReport{
		RunID:      runID,
		Seed:       opts.Seed,
		Roster:     roster,
		Catalog:    catalog,
		Result:     result,
		Violations: violations,
	}, nil
}
