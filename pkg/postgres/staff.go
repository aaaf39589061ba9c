package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jakechorley/staff-rota/pkg/db"
)

// uniqueViolation is the Postgres error code for a unique constraint failure
const uniqueViolation = "23505"

// GetStaff retrieves all roster entries in the order they were added
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, contracted_hours
		FROM staff_member
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	staff := []db.Staff{}
	for rows.Next() {
		var s db.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.ContractedHours); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a new roster entry
func (d *DB) InsertStaff(ctx context.Context, staff *db.Staff) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO staff_member (id, name, contracted_hours)
		VALUES ($1, $2, $3)
	`, staff.ID, staff.Name, staff.ContractedHours)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("failed to insert staff %q: %w", staff.Name, db.ErrDuplicateStaff)
		}
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

// DeleteStaff removes the roster entry with the given name
func (d *DB) DeleteStaff(ctx context.Context, name string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM staff_member WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete staff %q: %w", name, db.ErrStaffNotFound)
	}
	return nil
}
