// Package storage persists uploaded digital-book files on disk.  Only the
// relative path is stored in the database; the bytes live under the
// configured base directory, one folder per catalog book.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/utmbiblio/library-service/internal/utils"
)

// FileStore saves uploaded files under a base directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Save writes an uploaded file under a book-specific folder and returns
// the stored path relative to the base directory.
func (f *FileStore) Save(bookID uint64, filename string, r io.Reader) (string, error) {
	dir := strconv.FormatUint(bookID, 10)
	targetDir := filepath.Join(f.basePath, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create book dir: %w", err)
	}
	name := utils.SafeFilename(filename)
	target := filepath.Join(targetDir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// Delete removes all stored files for a book.  Removing a book that has
// no files is not an error.
func (f *FileStore) Delete(bookID uint64) error {
	targetDir := filepath.Join(f.basePath, strconv.FormatUint(bookID, 10))
	if _, err := os.Stat(targetDir); os.IsNotExist(err) {
		return nil
	}
	return os.RemoveAll(targetDir)
}
