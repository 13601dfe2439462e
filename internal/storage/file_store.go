package storage

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"embedcode/internal/fragment"
)

// ErrFragmentNotFound means the store holds no such fragment. Either the store
// is stale or the code file is outside the configured code includes.
var ErrFragmentNotFound = errors.New("fragment not found")

// FileStore keeps fragments as plain files in a tree mirroring the code root.
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at dir. The directory is created lazily.
func NewFileStore(dir string) *FileStore {
	return &FileStore{root: dir}
}

// Root returns the directory the store writes to.
func (s *FileStore) Root() string {
	return s.root
}

// Path returns the file a fragment is stored in.
//
// The default fragment keeps the code file name. A named fragment is stored as
// {basename}-{hash}{ext}, hash being the first 8 hex chars of the SHA-1 of its name.
func (s *FileStore) Path(codeFile, fragmentName string) string {
	rel := filepath.FromSlash(codeFile)
	if fragmentName == fragment.DefaultName {
		return filepath.Join(s.root, rel)
	}
	ext := filepath.Ext(rel)
	base := strings.TrimSuffix(rel, ext)
	return filepath.Join(s.root, fmt.Sprintf("%s-%s%s", base, nameHash(fragmentName), ext))
}

// Put writes the fragment content, creating parent directories as needed.
func (s *FileStore) Put(codeFile, fragmentName string, lines []string) error {
	path := s.Path(codeFile, fragmentName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create fragment directory: %w", err)
	}

	var content string
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write fragment file %s: %w", path, err)
	}
	return nil
}

// Get reads the fragment content back.
func (s *FileStore) Get(codeFile, fragmentName string) ([]string, error) {
	path := s.Path(codeFile, fragmentName)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: `%s` of %s (expected at %s)",
				ErrFragmentNotFound, fragmentName, codeFile, path)
		}
		return nil, fmt.Errorf("failed to read fragment file %s: %w", path, err)
	}
	return fragment.SplitLines(string(content)), nil
}

// Clean removes the whole store directory.
func (s *FileStore) Clean() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("failed to remove fragments directory %s: %w", s.root, err)
	}
	return nil
}

func nameHash(name string) string {
	sum := sha1.Sum([]byte(name))
	return hex.EncodeToString(sum[:])[:8]
}
