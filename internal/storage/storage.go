// Package storage is the blob store backing document uploads.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists uploaded files under opaque names.
type Store interface {
	// Save writes the content under a freshly generated stored name and
	// returns that name.
	Save(ext string, r io.Reader) (string, error)

	// Path resolves a stored name to a filesystem path, or an error when
	// the blob is missing.
	Path(storedName string) (string, error)

	// Remove deletes a blob. Removing a missing blob is not an error.
	Remove(storedName string) error
}

// DiskStore keeps blobs in a flat directory on local disk.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(ext string, r io.Reader) (string, error) {
	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return name, nil
}

func (s *DiskStore) Path(storedName string) (string, error) {
	// Stored names are generated server side, but reject traversal anyway.
	if storedName != filepath.Base(storedName) {
		return "", os.ErrNotExist
	}
	path := filepath.Join(s.root, storedName)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

func (s *DiskStore) Remove(storedName string) error {
	if storedName != filepath.Base(storedName) {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, storedName))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
