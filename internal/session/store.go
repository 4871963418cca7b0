package session

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned by Store.Load when nothing has been saved.
var ErrNoSnapshot = errors.New("no saved session")

// Store persists session snapshots. Different implementations can keep them
// in a plain JSON file or in a database.
type Store interface {
	// Exists reports whether a snapshot is currently saved.
	Exists(ctx context.Context) (bool, error)
	// Load returns the saved snapshot, or an error wrapping ErrNoSnapshot.
	Load(ctx context.Context) (*Session, error)
	// Save overwrites the snapshot.
	Save(ctx context.Context, s *Session) error
	// Backup moves the current snapshot aside under a name derived from
	// reportFilename and returns where it went.
	Backup(ctx context.Context, reportFilename string) (string, error)
	// Backups lists the locations of every backed-up snapshot, oldest name
	// first.
	Backups(ctx context.Context) ([]string, error)
	// Remove deletes the snapshot. Removing a missing snapshot is not an error.
	Remove(ctx context.Context) error
	// Location describes where snapshots live, for user-facing messages.
	Location() string
	// Close releases any resources held by the store.
	Close() error
}
