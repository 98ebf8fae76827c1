package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore persists attachment files under a root directory on disk.
// Paths handed out (and accepted back) are relative to that root, so the
// database never learns about the deployment's filesystem layout.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Save writes the stream to attachments/<uuid>_<name> and returns that
// relative path. The uuid prefix keeps same-named uploads from colliding.
func (s *LocalStore) Save(r io.Reader, fileName string) (string, error) {
	dir := filepath.Join(s.root, "attachments")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	unique := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileName))
	fullPath := filepath.Join(dir, unique)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write file: %w", err)
	}

	return filepath.Join("attachments", unique), nil
}

// Delete removes the file at the relative path. Deleting a file that is
// already gone is not an error.
func (s *LocalStore) Delete(relPath string) error {
	err := os.Remove(filepath.Join(s.root, relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(s.root, relPath))
	return err == nil
}
