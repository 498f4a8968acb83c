package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists one Portfolio as a single JSON snapshot file.
//
// There is no incremental persistence and no concurrent-writer protection:
// the whole document is rewritten after every mutation. The rewrite goes
// through a temp file renamed over the snapshot, so a crash mid-write leaves
// the previous snapshot intact.
type Store struct {
	path string
}

// NewStore creates a store for the snapshot file at path. The file is not
// touched until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the snapshot file path.
func (s *Store) Path() string { return s.path }

// Load reads the snapshot, or returns an empty portfolio when the file does
// not exist yet.
func (s *Store) Load() (*Portfolio, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read snapshot %q: %w", s.path, err)
	}

	portfolio := NewPortfolio()
	if err := json.Unmarshal(data, portfolio); err != nil {
		return nil, fmt.Errorf("could not decode snapshot %q: %w", s.path, err)
	}
	return portfolio, nil
}

// Save rewrites the snapshot with the given portfolio. The write is atomic:
// the content goes to a temp file in the same directory, which is then
// renamed over the snapshot.
func (s *Store) Save(portfolio *Portfolio) error {
	data, err := json.MarshalIndent(portfolio, "", "    ")
	if err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temp snapshot in %q: %w", dir, err)
	}
	tmpName := tmp.Name()
	// The temp file is removed unconditionally; after a successful rename
	// the removal is a no-op.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write temp snapshot %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temp snapshot %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("could not replace snapshot %q: %w", s.path, err)
	}
	return nil
}
