// Package config loads specmarker settings from defaults, a YAML file,
// SPECMARKER_* environment variables and command line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/taigrr/specmarker/internal/grouper"
	"github.com/taigrr/specmarker/internal/marker"
	"github.com/taigrr/specmarker/internal/types"
)

const (
	// FileName is looked up in the repository root when no explicit config is given.
	FileName = ".specmarker.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SPECMARKER_BOUNDARY.
	EnvPrefix = "SPECMARKER"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the resolved settings for a run.
type Config struct {
	Root        string            `mapstructure:"root"`
	Pattern     string            `mapstructure:"pattern"`
	Boundary    string            `mapstructure:"boundary"`
	CollectAll  bool              `mapstructure:"collect_all"`
	TierMarkers []string          `mapstructure:"tier_markers"`
	SkipMissing bool              `mapstructure:"skip_missing"`
	Format      string            `mapstructure:"format"`
	Verbose     bool              `mapstructure:"verbose"`
	Patterns    map[string]string `mapstructure:"patterns"`

	Filter types.PathFilterConfig `mapstructure:",squash"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// flagKeys maps command line flag names to config keys.
var flagKeys = map[string]string{
	"root":         "root",
	"pattern":      "pattern",
	"boundary":     "boundary",
	"all":          "collect_all",
	"tier-marker":  "tier_markers",
	"skip-missing": "skip_missing",
	"format":       "format",
	"verbose":      "verbose",
	"ignore":       "ignore",
	"ext":          "extensions",
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Root:        ".",
		Pattern:     marker.PresetTypeSpec,
		TierMarkers: slices.Clone(grouper.DefaultTierMarkers),
		Format:      FormatText,
		Patterns:    map[string]string{},
	}
}

// Load resolves the configuration. configFile may be empty, in which case
// FileName is read from the repository root when present. flags may be nil.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("pattern", defaults.Pattern)
	v.SetDefault("boundary", defaults.Boundary)
	v.SetDefault("collect_all", defaults.CollectAll)
	v.SetDefault("tier_markers", defaults.TierMarkers)
	v.SetDefault("skip_missing", defaults.SkipMissing)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("patterns", defaults.Patterns)
	v.SetDefault("ignore", []string{})
	v.SetDefault("extensions", []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	resolvedPath, err := configPath(configFile, v.GetString("root"))
	if err != nil {
		return nil, err
	}
	if resolvedPath != "" {
		v.SetConfigFile(resolvedPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", resolvedPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = resolvedPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that the decoder cannot.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q: use %s, %s or %s", c.Format, FormatText, FormatJSON, FormatYAML)
	}

	if strings.TrimSpace(c.Root) == "" {
		return errors.New("repository root cannot be empty")
	}

	if _, err := c.MarkerPattern(); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", c.Pattern, err)
	}

	return nil
}

// MarkerPattern resolves Pattern against the presets and the configured Patterns.
func (c *Config) MarkerPattern() (marker.Pattern, error) {
	return marker.Resolve(c.Pattern, c.Patterns)
}

// GroupOptions converts the configuration into grouper options.
func (c *Config) GroupOptions() (grouper.Options, error) {
	p, err := c.MarkerPattern()
	if err != nil {
		return grouper.Options{}, err
	}
	return grouper.Options{
		Pattern:     p,
		Boundary:    c.Boundary,
		CollectAll:  c.CollectAll,
		TierMarkers: c.TierMarkers,
		SkipMissing: c.SkipMissing,
	}, nil
}

func configPath(explicit, root string) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	candidate := filepath.Join(root, FileName)
	if fileExists(candidate) {
		return candidate, nil
	}
	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
