// Package filesystem provides directory primitives bound to a specification repository root.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Service lists directories inside a single repository root.
type Service struct {
	repoRoot string
}

// New creates a new Service rooted at repoRoot.
func New(repoRoot string) *Service {
	absPath, _ := filepath.Abs(repoRoot)
	return &Service{
		repoRoot: absPath,
	}
}

// Normalize converts a caller-supplied relative path into the slash-separated,
// cleaned form used for keys and comparisons. The repository root itself is ".".
func Normalize(relativePath string) string {
	normalizedPath := strings.TrimSpace(relativePath)
	normalizedPath = strings.ReplaceAll(normalizedPath, "\\", "/")
	normalizedPath = strings.TrimLeft(normalizedPath, "/")
	if normalizedPath == "" {
		return "."
	}
	return filepath.ToSlash(filepath.Clean(filepath.FromSlash(normalizedPath)))
}

// ResolvePath resolves a relative path within the repository and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	normalizedPath := Normalize(relativePath)

	fullPath := filepath.Join(s.repoRoot, filepath.FromSlash(normalizedPath))
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within the repository
	relPath, err := filepath.Rel(s.repoRoot, absPath)
	if err != nil {
		return "", err
	}
	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// ListDirectory returns the sorted names of the direct entries of a directory.
//
// Errors from the operating system are returned unwrapped: callers rely on
// errors.Is(err, fs.ErrNotExist) and on the native "no such file or directory"
// message to tell a stale path from an empty directory.
func (s *Service) ListDirectory(path string) ([]string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Exists checks if a path exists in the repository.
func (s *Service) Exists(path string) bool {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(fullPath)
	return err == nil
}

// IsDirectory checks if a path is a directory.
func (s *Service) IsDirectory(path string) (bool, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return false, nil
	}

	return info.IsDir(), nil
}

// RepoRoot returns the absolute repository root.
func (s *Service) RepoRoot() string {
	return s.repoRoot
}
