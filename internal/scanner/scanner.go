// Package scanner walks from a folder up through its ancestors looking for marker folders.
package scanner

import (
	"path"
	"strings"

	"github.com/taigrr/specmarker/internal/filesystem"
	"github.com/taigrr/specmarker/internal/marker"
)

// Scanner finds marker folders above a starting folder.
type Scanner struct {
	fs *filesystem.Service
}

// New creates a new Scanner over the given repository.
func New(fs *filesystem.Service) *Scanner {
	return &Scanner{fs: fs}
}

// Parents returns every folder from start upward that directly contains an
// entry matching p, nearest first.
//
// The walk never inspects boundary, anything above it, or the repository root.
// A start folder with a single path segment yields no results. A start folder
// that does not exist fails with the unwrapped listing error.
func (s *Scanner) Parents(start string, p marker.Pattern, boundary string) ([]string, error) {
	return s.walk(start, p, boundary, false)
}

// Nearest returns the closest marker folder at or above start. The boolean is
// false when the walk reached the boundary or the repository root first.
func (s *Scanner) Nearest(start string, p marker.Pattern, boundary string) (string, bool, error) {
	found, err := s.walk(start, p, boundary, true)
	if err != nil || len(found) == 0 {
		return "", false, err
	}
	return found[0], true, nil
}

func (s *Scanner) walk(start string, p marker.Pattern, boundary string, firstOnly bool) ([]string, error) {
	current := filesystem.Normalize(start)

	entries, err := s.fs.ListDirectory(current)
	if err != nil {
		return nil, err
	}

	found := []string{}
	if isTopLevel(current) {
		return found, nil
	}

	if boundary != "" {
		boundary = filesystem.Normalize(boundary)
	}

	for {
		if boundary != "" && current == boundary {
			break
		}

		if entries == nil {
			entries, err = s.fs.ListDirectory(current)
			if err != nil {
				return nil, err
			}
		}

		if marker.MatchAny(p, entries) {
			found = append(found, current)
			if firstOnly {
				break
			}
		}

		parent := path.Dir(current)
		if parent == "." || parent == current {
			break
		}
		current = parent
		entries = nil
	}

	return found, nil
}

// isTopLevel reports whether folder has no parent folder to climb to.
func isTopLevel(folder string) bool {
	return folder == "." || !strings.Contains(folder, "/")
}
