// Package marker provides the file name patterns that identify marker folders.
package marker

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Pattern reports whether a single directory entry name marks its folder.
type Pattern interface {
	Match(name string) bool
	String() string
}

// Preset names accepted by Resolve.
const (
	PresetTypeSpec = "typespec"
	PresetReadme   = "readme"
)

// globPrefix selects glob syntax in Resolve.
const globPrefix = "glob:"

var (
	// TypeSpecProject matches TypeSpec project descriptors.
	TypeSpecProject Pattern = &regexpPattern{re: regexp.MustCompile(`^tspconfig\.yaml$`)}

	// ReadmeMd matches readme files regardless of case.
	ReadmeMd Pattern = &regexpPattern{re: regexp.MustCompile(`(?i)^readme\.md$`)}
)

type regexpPattern struct {
	re *regexp.Regexp
}

func (p *regexpPattern) Match(name string) bool { return p.re.MatchString(name) }
func (p *regexpPattern) String() string         { return p.re.String() }

// Regexp compiles a regular expression that is tested against file names.
func Regexp(expr string, caseSensitive bool) (Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &PatternError{Pattern: expr, Message: "pattern cannot be empty"}
	}

	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Pattern: expr, Message: "invalid regex pattern: " + err.Error()}
	}

	return &regexpPattern{re: re}, nil
}

type globPattern struct {
	expr string
}

func (p *globPattern) Match(name string) bool {
	matched, _ := doublestar.Match(p.expr, name)
	return matched
}

func (p *globPattern) String() string { return globPrefix + p.expr }

// Glob compiles a glob such as "tspconfig.y*ml" or "{readme,README}.md".
func Glob(expr string) (Pattern, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &PatternError{Pattern: expr, Message: "pattern cannot be empty"}
	}
	if !doublestar.ValidatePattern(expr) {
		return nil, &PatternError{Pattern: expr, Message: "invalid glob pattern"}
	}
	return &globPattern{expr: expr}, nil
}

type funcPattern struct {
	name string
	fn   func(string) bool
}

func (p *funcPattern) Match(name string) bool { return p.fn(name) }
func (p *funcPattern) String() string         { return p.name }

// Func adapts a plain predicate into a Pattern.
func Func(name string, fn func(string) bool) Pattern {
	return &funcPattern{name: name, fn: fn}
}

// Resolve turns a user-facing pattern spec into a Pattern.
//
// Lookup order: built-in presets, then named expressions from extra, then a
// "glob:" prefixed glob, and finally a case-sensitive regular expression.
func Resolve(spec string, extra map[string]string) (Pattern, error) {
	spec = strings.TrimSpace(spec)

	switch strings.ToLower(spec) {
	case PresetTypeSpec:
		return TypeSpecProject, nil
	case PresetReadme:
		return ReadmeMd, nil
	}

	if expr, ok := extra[spec]; ok {
		return Resolve(expr, nil)
	}

	if expr, ok := strings.CutPrefix(spec, globPrefix); ok {
		return Glob(expr)
	}

	return Regexp(spec, true)
}

// MatchAny reports whether at least one name satisfies the pattern.
func MatchAny(p Pattern, names []string) bool {
	for _, name := range names {
		if p.Match(name) {
			return true
		}
	}
	return false
}

// PatternError represents an invalid marker pattern.
type PatternError struct {
	Pattern string
	Message string
}

func (e *PatternError) Error() string {
	return e.Message
}
