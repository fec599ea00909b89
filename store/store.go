// store.go - File-backed persistence for the user collection

package store // Declares the package name

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go-sesiones-backend/models"
)

// ErrCorruptStore reports a store file that exists but does not hold a
// valid user collection. There is no auto-repair; callers decide how to
// surface it.
var ErrCorruptStore = errors.New("user store: corrupt data file")

// UserStore reads and writes the full user collection as one snapshot.
// Implementations may later swap the flat file for a transactional store
// without touching the route handlers.
type UserStore interface {
	LoadAll() ([]models.User, error)
	SaveAll(users []models.User) error
}

// FileStore persists the collection as a single pretty-printed JSON file.
// Writes overwrite the whole file and take no lock: interleaved
// load-modify-save sequences from concurrent requests are last-write-wins
// on the full snapshot.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadAll returns the stored collection, or an empty one when the file
// does not exist yet. Any parse failure wraps ErrCorruptStore.
func (s *FileStore) LoadAll() ([]models.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.User{}, nil
		}
		return nil, err
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return users, nil
}

// SaveAll overwrites the store file with the given collection. Not atomic:
// a crash mid-write can truncate the file.
func (s *FileStore) SaveAll(users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// FindByEmail returns the first record whose email matches exactly.
// Duplicate emails may exist; later records are never reached.
func FindByEmail(users []models.User, email string) (models.User, bool) {
	for _, u := range users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}
