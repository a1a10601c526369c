// Package grouper maps changed files to the marker folders that govern them.
package grouper

import (
	"errors"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/taigrr/specmarker/internal/filesystem"
	"github.com/taigrr/specmarker/internal/marker"
	"github.com/taigrr/specmarker/internal/scanner"
)

// Options controls a single Group call.
type Options struct {
	// Pattern identifies marker files. Required.
	Pattern marker.Pattern
	// Boundary is the shallowest folder never considered. Optional.
	Boundary string
	// CollectAll reports every matching ancestor for files inside a tiered
	// layout instead of only the nearest one.
	CollectAll bool
	// TierMarkers overrides DefaultTierMarkers when non-empty.
	TierMarkers []string
	// SkipMissing drops files whose folder no longer exists instead of failing.
	SkipMissing bool
	// Logger receives per-file decisions at debug level. Optional.
	Logger *log.Logger
}

// Grouper groups changed files by marker folder.
type Grouper struct {
	scanner *scanner.Scanner
}

// New creates a new Grouper backed by sc.
func New(sc *scanner.Scanner) *Grouper {
	return &Grouper{scanner: sc}
}

type lookupKey struct {
	folder string
	all    bool
}

// Group resolves the marker folders of every file, in input order.
//
// Files inside a tiered layout are attached to every matching ancestor when
// opts.CollectAll is set; all other files are attached to their nearest marker
// folder only. Files without any marker folder are dropped.
func (g *Grouper) Group(files []string, opts Options) (*Result, error) {
	if opts.Pattern == nil {
		return nil, errors.New("marker pattern is required")
	}

	markers := opts.TierMarkers
	if len(markers) == 0 {
		markers = DefaultTierMarkers
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	result := newResult()
	lookups := make(map[lookupKey][]string)

	for _, file := range files {
		folder := path.Dir(filesystem.Normalize(file))
		key := lookupKey{
			folder: folder,
			all:    opts.CollectAll && IsTiered(folder, markers),
		}

		found, ok := lookups[key]
		if !ok {
			var err error
			found, err = g.lookup(key, opts)
			if err != nil {
				if opts.SkipMissing && errors.Is(err, fs.ErrNotExist) {
					logger.Debug("skipping file in missing folder", "file", file, "folder", folder)
					lookups[key] = nil
					continue
				}
				return nil, err
			}
			lookups[key] = found
		}

		if len(found) == 0 {
			logger.Debug("no marker folder", "file", file)
			continue
		}

		for _, markerFolder := range found {
			result.add(markerFolder, file)
		}
		logger.Debug("grouped file", "file", file, "folders", found, "collectAll", key.all)
	}

	return result, nil
}

func (g *Grouper) lookup(key lookupKey, opts Options) ([]string, error) {
	if key.all {
		return g.scanner.Parents(key.folder, opts.Pattern, opts.Boundary)
	}

	nearest, ok, err := g.scanner.Nearest(key.folder, opts.Pattern, opts.Boundary)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return []string{nearest}, nil
}
