// Package storage keeps uploaded files on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
)

// allowedExtensions lists the upload types accepted for payment proofs and
// sponsor logos.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".pdf":  true,
}

// LocalStore saves uploads under a single directory with random names.
type LocalStore struct {
	dir    string
	logger *zap.Logger
}

// NewLocalStore creates the upload directory when missing.
func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, logger: logger}, nil
}

// Save writes the upload under a random filename and returns the stored
// name. The original filename only contributes its extension.
func (s *LocalStore) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", domainerrors.ErrUnsupportedFileType
	}

	name := uuid.New().String() + ext
	path := filepath.Join(s.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	s.logger.Debug("upload stored", zap.String("file", name))
	return name, nil
}

// Open returns the stored file for serving. The name is sanitized so a
// crafted path cannot escape the upload directory.
func (s *LocalStore) Open(name string) (*os.File, error) {
	clean := filepath.Base(filepath.Clean(name))
	if clean == "." || clean == ".." || clean == "" {
		return nil, domainerrors.ErrFileNotFound
	}

	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("failed to open upload %s: %w", clean, err)
	}
	return f, nil
}

// Path returns the absolute path of a stored file without opening it.
func (s *LocalStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(filepath.Clean(name)))
}

// Remove deletes a stored file, ignoring files that are already gone.
func (s *LocalStore) Remove(name string) error {
	clean := filepath.Base(filepath.Clean(name))
	if clean == "." || clean == ".." || clean == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload %s: %w", clean, err)
	}
	return nil
}
