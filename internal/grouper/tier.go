package grouper

import (
	"slices"
	"strings"
)

// DefaultTierMarkers are the folder names that introduce a two-tier
// (service / sub-service) layout.
var DefaultTierMarkers = []string{"resource-manager", "data-plane"}

// IsTiered reports whether any segment of folder is one of markers.
// Segments must match whole: "my-data-plane" is not "data-plane".
func IsTiered(folder string, markers []string) bool {
	folder = strings.ReplaceAll(folder, "\\", "/")
	for segment := range strings.SplitSeq(folder, "/") {
		if segment != "" && slices.Contains(markers, segment) {
			return true
		}
	}
	return false
}
