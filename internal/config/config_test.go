package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/taigrr/specmarker/internal/grouper"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("root", ".", "")
	flags.String("pattern", "typespec", "")
	flags.String("boundary", "", "")
	flags.Bool("all", false, "")
	flags.StringSlice("tier-marker", nil, "")
	flags.Bool("skip-missing", false, "")
	flags.String("format", "text", "")
	flags.Bool("verbose", false, "")
	flags.StringSlice("ignore", nil, "")
	flags.StringSlice("ext", nil, "")
	return flags
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	root := t.TempDir()
	flags := newFlags(t)
	if err := flags.Parse([]string{"--root", root}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Root != root || cfg.Pattern != "typespec" || cfg.Format != FormatText {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if diff := cmp.Diff(grouper.DefaultTierMarkers, cfg.TierMarkers); diff != "" {
		t.Errorf("TierMarkers mismatch (-want +got):\n%s", diff)
	}
	if cfg.CollectAll || cfg.SkipMissing || cfg.Verbose {
		t.Errorf("boolean defaults should be false: %+v", cfg)
	}
	if cfg.File != "" {
		t.Errorf("File = %q, want empty", cfg.File)
	}
}

func TestLoad_RepoConfigFile(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
pattern: openapi
boundary: specification
collect_all: true
tier_markers: [resource-manager, data-plane, management-plane]
ignore:
  - "**/examples/**"
extensions: [.tsp, .yaml]
patterns:
  openapi: '^readme\.md$'
`)

	flags := newFlags(t)
	if err := flags.Parse([]string{"--root", root}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.File != path {
		t.Errorf("File = %q, want %q", cfg.File, path)
	}
	if cfg.Boundary != "specification" || !cfg.CollectAll {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if diff := cmp.Diff([]string{"resource-manager", "data-plane", "management-plane"}, cfg.TierMarkers); diff != "" {
		t.Errorf("TierMarkers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"**/examples/**"}, cfg.Filter.IgnoredPatterns); diff != "" {
		t.Errorf("IgnoredPatterns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{".tsp", ".yaml"}, cfg.Filter.AllowedExtensions); diff != "" {
		t.Errorf("AllowedExtensions mismatch (-want +got):\n%s", diff)
	}

	p, err := cfg.MarkerPattern()
	if err != nil {
		t.Fatalf("MarkerPattern() error = %v", err)
	}
	if !p.Match("readme.md") || p.Match("tspconfig.yaml") {
		t.Errorf("named pattern resolved to %s", p)
	}
}

func TestLoad_Precedence(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "boundary: from-file\nformat: yaml\n")

	t.Setenv("SPECMARKER_BOUNDARY", "from-env")
	t.Setenv("SPECMARKER_FORMAT", "json")

	flags := newFlags(t)
	if err := flags.Parse([]string{"--root", root, "--format", "text"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Boundary != "from-env" {
		t.Errorf("Boundary = %q, want env to override the file", cfg.Boundary)
	}
	if cfg.Format != FormatText {
		t.Errorf("Format = %q, want the flag to override env", cfg.Format)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("pattern: readme\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Pattern != "readme" || cfg.File != path {
		t.Errorf("explicit config not applied: %+v", cfg)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	if err == nil || !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("Load(missing) error = %v, want config file not found", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"format", "format: xml\n", "unsupported format"},
		{"pattern", "pattern: '('\n", "invalid pattern"},
		{"yaml", "pattern: [unterminated\n", "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := writeConfig(t, root, tt.content)

			_, err := Load(path, nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestConfig_GroupOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boundary = "specification"
	cfg.CollectAll = true
	cfg.SkipMissing = true

	opts, err := cfg.GroupOptions()
	if err != nil {
		t.Fatalf("GroupOptions() error = %v", err)
	}
	if opts.Pattern == nil || !opts.Pattern.Match("tspconfig.yaml") {
		t.Error("GroupOptions() should resolve the typespec preset")
	}
	if opts.Boundary != "specification" || !opts.CollectAll || !opts.SkipMissing {
		t.Errorf("GroupOptions() = %+v", opts)
	}

	cfg.Pattern = "("
	if _, err := cfg.GroupOptions(); err == nil {
		t.Error("GroupOptions() should fail for an invalid pattern")
	}
}
