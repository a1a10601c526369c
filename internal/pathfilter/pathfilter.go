// Package pathfilter decides which changed files are worth grouping.
package pathfilter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/taigrr/specmarker/internal/types"
)

// PathFilter filters changed files by ignore globs and file extensions.
type PathFilter struct {
	ignoredPatterns   []string
	allowedExtensions []string
}

// New creates a new PathFilter with the given configuration.
func New(config *types.PathFilterConfig) *PathFilter {
	pf := &PathFilter{
		ignoredPatterns: []string{
			".git/**",
			"**/node_modules/**",
			"**/.DS_Store",
		},
	}

	if config != nil {
		pf.ignoredPatterns = append(pf.ignoredPatterns, config.IgnoredPatterns...)
		pf.allowedExtensions = append(pf.allowedExtensions, config.AllowedExtensions...)
	}

	return pf
}

// IsAllowed checks if a path is allowed based on the filter rules.
func (pf *PathFilter) IsAllowed(p string) bool {
	// Normalize path separators
	normalizedPath := strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	normalizedPath = strings.TrimPrefix(normalizedPath, "./")
	if normalizedPath == "" {
		return false
	}

	for _, pattern := range pf.ignoredPatterns {
		pattern = strings.ReplaceAll(pattern, "\\", "/")
		if matched, _ := doublestar.Match(pattern, normalizedPath); matched {
			return false
		}
	}

	if len(pf.allowedExtensions) == 0 {
		return true
	}

	ext := strings.ToLower(path.Ext(normalizedPath))
	for _, allowed := range pf.allowedExtensions {
		allowed = strings.ToLower(allowed)
		if !strings.HasPrefix(allowed, ".") {
			allowed = "." + allowed
		}
		if ext == allowed {
			return true
		}
	}
	return false
}

// FilterPaths filters a slice of paths to only include allowed ones,
// keeping their order.
func (pf *PathFilter) FilterPaths(paths []string) []string {
	var allowed []string
	for _, p := range paths {
		if pf.IsAllowed(p) {
			allowed = append(allowed, p)
		}
	}
	return allowed
}
