// Package file implements ports.BlobStore on the local filesystem, one
// document per collection in a single directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/castkit/scenevault/pkg/domain"
)

// Ext is the fixed document extension. It is stripped from listings and not
// user-configurable.
const Ext = ".json"

// Store implements ports.BlobStore using the local filesystem.
type Store struct {
	Dir string
}

// New creates a new Store rooted at dir.
// If dir is empty, it defaults to ".scenevault".
func New(dir string) *Store {
	if dir == "" {
		dir = ".scenevault"
	}
	return &Store{Dir: dir}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name+Ext)
}

// Write persists the document atomically: it writes to a temporary file in
// the same directory, syncs it, and renames it over the destination, so a
// crash mid-write never leaves a truncated document.
func (s *Store) Write(ctx context.Context, name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("ensure document directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, "tmp-"+name+"-*"+Ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		return fmt.Errorf("rename temp file into place: %w", err)
	}
	return nil
}

// Read returns the document bytes.
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("document name cannot be empty")
	}

	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read document file: %w", err)
	}
	return data, nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete document file: %w", err)
	}
	return nil
}

// Exists reports whether the document is present.
func (s *Store) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat document file: %w", err)
}

// List returns the stored document names, extension stripped, in lexical
// order. A missing directory lists as empty.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list document directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		if strings.HasPrefix(e.Name(), "tmp-") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}
