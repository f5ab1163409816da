// Package storage persists uploaded files on the local disk, under the same
// directory the HTTP layer serves statically.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes files into dir and reports them under the matching
// relative public path ("/<dir base>/<name>").
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes content under name and returns the relative public path.
// Callers generate unique names, so an existing file of the same name is
// simply replaced.
func (s *LocalStore) Save(name string, content io.Reader) (string, error) {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}
