// Package favorites persists the user's bookmarked image folders as a
// JSON list on disk.
package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store holds the favorite folder list and writes it through to disk on
// every mutation. All methods are safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	path    string
	folders []string
}

// NewStore loads the favorites file at path. A missing file yields an
// empty store; a corrupt file is an error.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file: %w", err)
	}

	if err := json.Unmarshal(data, &s.folders); err != nil {
		return nil, fmt.Errorf("failed to parse favorites file: %w", err)
	}
	return s, nil
}

// Add appends a folder to the favorites and saves. It returns false
// without saving when the folder is already present.
func (s *Store) Add(folder string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.folders {
		if f == folder {
			return false, nil
		}
	}
	s.folders = append(s.folders, folder)

	if err := s.save(); err != nil {
		s.folders = s.folders[:len(s.folders)-1]
		return false, err
	}
	return true, nil
}

// Remove deletes a folder from the favorites and saves. It returns
// false when the folder was not present.
func (s *Store) Remove(folder string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.folders {
		if f == folder {
			kept := make([]string, 0, len(s.folders)-1)
			kept = append(kept, s.folders[:i]...)
			kept = append(kept, s.folders[i+1:]...)

			previous := s.folders
			s.folders = kept
			if err := s.save(); err != nil {
				s.folders = previous
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Contains reports whether the folder is a favorite.
func (s *Store) Contains(folder string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.folders {
		if f == folder {
			return true
		}
	}
	return false
}

// List returns the favorite folders in the order they were added.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.folders))
	copy(out, s.folders)
	return out
}

// save writes the list; callers hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.folders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write favorites file: %w", err)
	}
	return nil
}
