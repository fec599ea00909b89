// store_test.go - Tests for the file-backed user store
// Run with: go test ./...

package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-sesiones-backend/models"
)

func TestLoadAllMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "usuarios.json"))

	users, err := s.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.json")
	s := NewFileStore(path)

	in := []models.User{
		{Name: "Ana", Email: "ana@x.com", Age: "30", City: "Lima", Interests: models.Interests{"music"}},
		{Name: "Luis", Email: "luis@x.com", Age: "41", City: "Quito", Interests: models.Interests{"golf", "cine"}},
	}
	assert.NoError(t, s.SaveAll(in))

	out, err := s.LoadAll()
	assert.NoError(t, err)
	assert.Equal(t, in, out)

	// A single interest persists as a bare string, not a one-element list
	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"interests": "music"`)
}

func TestLoadAllCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usuarios.json")
	assert.NoError(t, os.WriteFile(path, []byte("{esto no es json"), 0o644))

	_, err := NewFileStore(path).LoadAll()
	assert.True(t, errors.Is(err, ErrCorruptStore))
}

func TestSaveAllCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "usuarios.json")
	s := NewFileStore(path)

	assert.NoError(t, s.SaveAll([]models.User{{Name: "Ana", Email: "ana@x.com"}}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFindByEmailFirstMatchWins(t *testing.T) {
	users := []models.User{
		{Name: "Ana", Email: "ana@x.com", City: "Lima"},
		{Name: "Otra Ana", Email: "ana@x.com", City: "Cusco"},
	}

	u, ok := FindByEmail(users, "ana@x.com")
	assert.True(t, ok)
	assert.Equal(t, "Ana", u.Name)

	_, ok = FindByEmail(users, "nadie@x.com")
	assert.False(t, ok)
}
