// Package storage provides the content stores the resolution
// pipeline reads from. A store maps a path to its full byte
// contents; absence is signaled with ErrNotFound so callers can
// tell it apart from real I/O faults.
package storage

import (
	"errors"
	"io/fs"
	"os"
)

// ErrNotFound means the requested path does not exist in the store.
var ErrNotFound = errors.New("file not found")

// Store loads content by path. Load returns the full contents of
// path, ErrNotFound if it does not exist, or a distinct error for
// other faults.
type Store interface {
	Load(path string) ([]byte, error)
}

// FileStore serves content straight from the local filesystem.
// Paths given to Load are used as-is; the resolver is responsible
// for prepending the document root.
type FileStore struct{}

func NewFileStore() FileStore {
	return FileStore{}
}

func (FileStore) Load(path string) ([]byte, error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bytes, nil
}
