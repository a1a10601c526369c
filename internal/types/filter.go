// Package types holds configuration shapes shared between packages.
package types

type (
	// PathFilterConfig contains configuration for the changed-file filter.
	PathFilterConfig struct {
		IgnoredPatterns   []string `json:"ignoredPatterns" mapstructure:"ignore"`
		AllowedExtensions []string `json:"allowedExtensions" mapstructure:"extensions"`
	}
)
