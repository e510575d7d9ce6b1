// internal/store/persist.go
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Storage is the durable key-value layer carts persist through. Load
// returns nil with no error when the key has never been written.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// FileStorage keeps each key as a JSON document in a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage verifies the directory is usable and returns a
// file-backed storage over it.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return nil, fmt.Errorf("storage dir not writable: %w", err)
	}
	os.Remove(probe)
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) path(key string) string {
	// Keys may carry a session suffix separated by ':'.
	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileStorage) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

func (s *FileStorage) Save(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *FileStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// DiscardStorage is the degraded mode when no durable storage is
// available: reads find nothing, writes vanish, nothing ever errors.
type DiscardStorage struct{}

func (DiscardStorage) Load(string) ([]byte, error) { return nil, nil }
func (DiscardStorage) Save(string, []byte) error   { return nil }
func (DiscardStorage) Delete(string) error         { return nil }

// OpenStorage returns file-backed storage over dir, degrading to
// DiscardStorage when the directory cannot be used.
func OpenStorage(dir string) Storage {
	fs, err := NewFileStorage(dir)
	if err != nil {
		logrus.WithError(err).Warn("Durable storage unavailable, carts will not persist")
		return DiscardStorage{}
	}
	return fs
}
