// Package localsession provides the default session.Store: a single JSON file
// on the local file system.
package localsession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/specialistvlad/flowdoc/internal/ctxlog"
	"github.com/specialistvlad/flowdoc/internal/session"
)

// DefaultPath is the snapshot location used when none is configured.
const DefaultPath = "flow_progress.json"

// Store implements session.Store on top of one JSON file.
type Store struct {
	path string
}

var _ session.Store = (*Store)(nil)

// New returns a store for the snapshot file at path.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Exists reports whether the snapshot file is present.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Load reads and decodes the snapshot file.
func (s *Store) Load(ctx context.Context) (*session.Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, session.ErrNoSnapshot)
		}
		return nil, err
	}

	var snap session.Session
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("malformed session file %s: %w", s.path, err)
	}
	ctxlog.FromContext(ctx).Debug("Session file loaded.", "path", s.path, "index", snap.Index, "answers", len(snap.Answers))
	return &snap, nil
}

// Save overwrites the snapshot file with indented JSON.
func (s *Store) Save(ctx context.Context, snap *session.Session) error {
	c := snap.Clone()
	c.Pad(0)
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Session file saved.", "path", s.path, "index", c.Index)
	return nil
}

// Backup renames the snapshot file to the first free session.BackupPath
// variant, so an existing backup file is never replaced.
func (s *Store) Backup(ctx context.Context, reportFilename string) (string, error) {
	target, err := session.FreeBackupPath(s.path, reportFilename, fileExists)
	if err != nil {
		return "", err
	}
	if err := os.Rename(s.path, target); err != nil {
		return "", err
	}
	ctxlog.FromContext(ctx).Debug("Session file renamed.", "from", s.path, "to", target)
	return target, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Backups lists the backup files next to the snapshot file, sorted by name.
func (s *Store) Backups(ctx context.Context) ([]string, error) {
	dir, base := filepath.Split(s.path)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext) + "."

	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
			continue
		}
		if !strings.Contains(strings.TrimSuffix(name, ext), ".bak") {
			continue
		}
		out = append(out, filepath.Join(dir, name))
	}
	sort.Strings(out)
	return out, nil
}

// Remove deletes the snapshot file if present.
func (s *Store) Remove(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Session file removed.", "path", s.path)
	return nil
}

// Location returns the snapshot file path.
func (s *Store) Location() string {
	return s.path
}

// Close is a no-op; the file is never held open.
func (s *Store) Close() error {
	return nil
}
