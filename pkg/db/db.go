package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// rosterFile is the on-disk layout of the roster
type rosterFile struct {
	Staff []Staff `yaml:"staff"`
}

// DB provides roster operations backed by a YAML file.
// The file is read on every call so edits made between runs are picked up.
type DB struct {
	path string
}

// NewDB creates a file-backed roster store. The file does not need to exist
// yet; it is created on the first insert.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Path returns the roster file location
func (db *DB) Path() string {
	return db.path
}

// GetStaff retrieves all roster entries in file order
func (db *DB) GetStaff(ctx context.Context) ([]Staff, error) {
	roster, err := db.read()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return roster.Staff, nil
}

// InsertStaff appends a roster entry
func (db *DB) InsertStaff(ctx context.Context, staff *Staff) error {
	roster, err := db.read()
	if err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}

	for _, existing := range roster.Staff {
		if existing.Name == staff.Name {
			return fmt.Errorf("failed to insert staff %q: %w", staff.Name, ErrDuplicateStaff)
		}
	}

	roster.Staff = append(roster.Staff, *staff)

	if err := db.write(roster); err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

// DeleteStaff removes the roster entry with the given name
func (db *DB) DeleteStaff(ctx context.Context, name string) error {
	roster, err := db.read()
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	kept := make([]Staff, 0, len(roster.Staff))
	for _, s := range roster.Staff {
		if s.Name != name {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(roster.Staff) {
		return fmt.Errorf("failed to delete staff %q: %w", name, ErrStaffNotFound)
	}
	roster.Staff = kept

	if err := db.write(roster); err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}

func (db *DB) read() (*rosterFile, error) {
	data, err := os.ReadFile(db.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &rosterFile{Staff: []Staff{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var roster rosterFile
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if roster.Staff == nil {
		roster.Staff = []Staff{}
	}
	return &roster, nil
}

func (db *DB) write(roster *rosterFile) error {
	data, err := yaml.Marshal(roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}

	if dir := filepath.Dir(db.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create roster directory: %w", err)
		}
	}

	// Replace atomically via a temp file
	tmp := db.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write roster file: %w", err)
	}
	if err := os.Rename(tmp, db.path); err != nil {
		return fmt.Errorf("failed to replace roster file: %w", err)
	}
	return nil
}
