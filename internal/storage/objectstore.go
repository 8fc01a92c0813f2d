package storage

import (
	"os"
	"path/filepath"
)

// DiskObjectStore persists raw image bytes under a local directory and hands
// back the URL path they are served from. It stands in for a hosted object
// store behind the same interface.
type DiskObjectStore struct {
	Dir     string
	BaseURL string
}

func NewDiskObjectStore(dir string) *DiskObjectStore {
	return &DiskObjectStore{Dir: dir, BaseURL: "/uploads/"}
}

func (s *DiskObjectStore) Upload(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(s.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return s.BaseURL + name, nil
}
