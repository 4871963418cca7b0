// Package sqlitesession provides a session.Store backed by a single-file
// SQLite database. Snapshots are stored as the same JSON document the file
// store writes, one row per slot.
package sqlitesession

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/session"

	_ "modernc.org/sqlite"
)

// DefaultPath is the database location used when none is configured.
const DefaultPath = "flow_progress.db"

// CurrentSlot is the slot holding the resumable snapshot.
const CurrentSlot = "current"

const backupSlotPrefix = "backup:"

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	slot TEXT UNIQUE NOT NULL,
	payload TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_slot ON sessions(slot);
`

// Store implements session.Store with SQLite.
type Store struct {
	db   *sql.DB
	path string
}

var _ session.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and prepares its schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, err
	}

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare session schema: %w", err)
		}
	}

	ctxlog.FromContext(ctx).Debug("SQLite session store opened.", "path", path)
	return &Store{db: db, path: path}, nil
}

// Exists reports whether the current slot holds a snapshot.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sessions WHERE slot = ?)", CurrentSlot).Scan(&exists)
	return exists, err
}

// Load decodes the current slot's snapshot.
func (s *Store) Load(ctx context.Context) (*session.Session, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM sessions WHERE slot = ?", CurrentSlot).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", s.Location(), session.ErrNoSnapshot)
	}
	if err != nil {
		return nil, err
	}

	var snap session.Session
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return nil, fmt.Errorf("malformed session in %s: %w", s.Location(), err)
	}
	return &snap, nil
}

// Save upserts the current slot.
func (s *Store) Save(ctx context.Context, snap *session.Session) error {
	c := snap.Clone()
	c.Pad(0)
	payload, err := json.Marshal(c)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, slot, payload, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		uuid.NewString(), CurrentSlot, string(payload), time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Session row saved.", "location", s.Location(), "index", c.Index)
	return nil
}

// Backup re-keys the current slot to the first free backup slot derived
// from reportFilename. Older backups are kept.
func (s *Store) Backup(ctx context.Context, reportFilename string) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, "SELECT id FROM sessions WHERE slot = ?", CurrentSlot).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s: %w", s.Location(), session.ErrNoSnapshot)
	}
	if err != nil {
		return "", err
	}

	name, err := session.FreeBackupPath(CurrentSlot, reportFilename, func(candidate string) (bool, error) {
		var taken bool
		err := tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM sessions WHERE slot = ?)", backupSlotPrefix+candidate).Scan(&taken)
		return taken, err
	})
	if err != nil {
		return "", err
	}
	slot := backupSlotPrefix + name

	if _, err := tx.ExecContext(ctx, "UPDATE sessions SET slot = ?, updated_at = ? WHERE id = ?", slot, time.Now().UTC(), id); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}

	ctxlog.FromContext(ctx).Debug("Session row re-keyed.", "id", id, "slot", slot)
	return s.path + "#" + slot, nil
}

// Remove deletes the current slot.
func (s *Store) Remove(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE slot = ?", CurrentSlot)
	return err
}

// Location returns "<db path>#current".
func (s *Store) Location() string {
	return s.path + "#" + CurrentSlot
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Backups lists every backup slot location, sorted by slot name.
func (s *Store) Backups(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT slot FROM sessions WHERE substr(slot, 1, ?) = ? ORDER BY slot", len(backupSlotPrefix), backupSlotPrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		out = append(out, s.path+"#"+slot)
	}
	return out, rows.Err()
}
