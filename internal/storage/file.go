// internal/storage/file.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore persists each key as a JSON file under a base directory. It is
// the default backend and the closest analog to browser local storage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

// Load reads the value stored for key
func (f *FileStore) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}

// Save writes the value for key. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated snapshot behind.
func (f *FileStore) Save(_ context.Context, key string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", key, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file for %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), f.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}

	return nil
}

// Delete removes the value stored for key
func (f *FileStore) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}
