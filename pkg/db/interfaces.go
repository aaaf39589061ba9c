package db

import (
	"context"
	"errors"
)

// ErrStaffNotFound is returned when removing a name that is not on the roster
var ErrStaffNotFound = errors.New("staff member not found")

// ErrDuplicateStaff is returned when inserting a name that is already on the roster
var ErrDuplicateStaff = errors.New("staff member already exists")

// RosterReader defines the read side of the roster store
type RosterReader interface {
	GetStaff(ctx context.Context) ([]Staff, error)
}

// Database defines the interface for all roster operations.
// Both the file-backed db.DB and postgres.DB implement this interface.
type Database interface {
	GetStaff(ctx context.Context) ([]Staff, error)
	InsertStaff(ctx context.Context, staff *Staff) error
	DeleteStaff(ctx context.Context, name string) error
}
