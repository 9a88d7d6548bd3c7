package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists the active profile name to a single file, by convention
// ~/.aws/current-profile. Shell hooks read it back on prompt render.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the state file
func (s *Store) Path() string {
	return s.path
}

// Write stores the profile name, creating the parent directory if needed
func (s *Store) Write(name string) error {
	if parent := filepath.Dir(s.path); parent != "." {
		if err := os.MkdirAll(parent, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", parent, err)
		}
	}

	if err := os.WriteFile(s.path, []byte(name), 0644); err != nil {
		return fmt.Errorf("failed to write state file %s: %w", s.path, err)
	}

	return nil
}

// Read returns the stored profile name, trimmed of surrounding whitespace
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Remove deletes the state file and reports whether one existed
func (s *Store) Remove() (bool, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return false, nil
	}

	if err := os.Remove(s.path); err != nil {
		return false, fmt.Errorf("failed to remove state file %s: %w", s.path, err)
	}

	return true, nil
}
