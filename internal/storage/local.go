package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DocumentStorage holds consent PDFs on the local filesystem. Keys are opaque
// strings issued by NewKey and never contain path separators.
type DocumentStorage struct {
	dir string
}

func NewDocumentStorage(dir string) (*DocumentStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create documents directory: %w", err)
	}
	return &DocumentStorage{dir: dir}, nil
}

// NewKey returns a fresh storage key for a document with the given extension.
func (s *DocumentStorage) NewKey(ext string) string {
	return uuid.New().String() + "." + strings.TrimPrefix(ext, ".")
}

// SaveFile writes the document bytes under the given key.
func (s *DocumentStorage) SaveFile(key string, reader io.Reader) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}
	return nil
}

// ReadFile opens the document under the given key for reading.
func (s *DocumentStorage) ReadFile(key string) (io.ReadCloser, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// FileExists checks if a document exists and returns its size.
func (s *DocumentStorage) FileExists(key string) (bool, int64, error) {
	path, err := s.path(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	return true, info.Size(), nil
}

// DeleteFile removes the document under the given key.
func (s *DocumentStorage) DeleteFile(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func (s *DocumentStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid document key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}
