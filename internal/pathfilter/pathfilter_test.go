package pathfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/taigrr/specmarker/internal/types"
)

func TestPathFilter_AllowsSpecFiles(t *testing.T) {
	filter := New(nil)

	tests := []string{
		"specification/widget/main.tsp",
		"specification/widget/tspconfig.yaml",
		"specification/widget/resource-manager/readme.md",
		"./specification/widget/examples/Get.json",
		"specification\\widget\\client.tsp",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if !filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = false, want true", path)
			}
		})
	}
}

func TestPathFilter_BlocksDefaults(t *testing.T) {
	filter := New(nil)

	tests := []string{
		".git/config",
		".git/objects/abc123",
		"node_modules/package/index.js",
		"eng/tools/node_modules/package/index.js",
		".DS_Store",
		"specification/widget/.DS_Store",
		"",
		"   ",
	}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			if filter.IsAllowed(path) {
				t.Errorf("IsAllowed(%q) = true, want false", path)
			}
		})
	}
}

func TestPathFilter_CustomConfig(t *testing.T) {
	filter := New(&types.PathFilterConfig{
		IgnoredPatterns:   []string{"specification/**/examples/**", "eng/**"},
		AllowedExtensions: []string{".tsp", "yaml", ".JSON"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"specification/widget/main.tsp", true},
		{"specification/widget/tspconfig.yaml", true},
		{"specification/widget/preview/widgets.json", true},
		{"specification/widget/MAIN.TSP", true},
		{"specification/widget/preview/examples/Get.json", false},
		{"eng/scripts/run.yaml", false},
		{"specification/widget/readme.md", false},
		{"specification/widget/LICENSE", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_RegexSpecialCharacters(t *testing.T) {
	filter := New(&types.PathFilterConfig{IgnoredPatterns: []string{"specification/(archived)/**"}})

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"dots in file names", "specification/Microsoft.Widget/v1.0.0.json", true},
		{"parentheses ignored literally", "specification/(archived)/old.tsp", false},
		{"brackets in names", "specification/[draft]/note.tsp", true},
		{"plus sign", "specification/c++/main.tsp", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsAllowed(tt.path); got != tt.want {
				t.Errorf("IsAllowed(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathFilter_FilterPaths(t *testing.T) {
	filter := New(nil)

	paths := []string{
		"specification/b/main.tsp",
		".git/HEAD",
		"specification/a/main.tsp",
		"node_modules/x/index.js",
	}

	want := []string{"specification/b/main.tsp", "specification/a/main.tsp"}
	if diff := cmp.Diff(want, filter.FilterPaths(paths)); diff != "" {
		t.Errorf("FilterPaths() mismatch (-want +got):\n%s", diff)
	}

	if got := filter.FilterPaths(nil); got != nil {
		t.Errorf("FilterPaths(nil) = %v, want nil", got)
	}
}
