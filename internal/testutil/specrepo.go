// Package testutil builds specification repository fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Well-known folders of the fixture built by SpecRepo.
const (
	Root             = "specification/contosowidgetmanager"
	WidgetManager    = Root + "/Contoso.WidgetManager"
	Management       = Root + "/Contoso.Management"
	NestedService    = Management + "/NestedService"
	ResourceManager  = Root + "/resource-manager"
	MicrosoftContoso = ResourceManager + "/Microsoft.Contoso"
	Service1         = MicrosoftContoso + "/Service1"
	SubService1      = Service1 + "/SubService1"
	SubService2      = Service1 + "/SubService2"
	Preview          = MicrosoftContoso + "/preview/2021-10-01-preview"
	DataPlane        = Root + "/data-plane"
	DataPlaneWidget  = DataPlane + "/Azure.Contoso.WidgetManager/preview/2022-11-01-preview"
	DataPlaneSvc     = DataPlane + "/DataPlaneService"
	DataPlaneSubSvc  = DataPlaneSvc + "/DataPlaneSubService"
)

// SpecRepoFiles lists every file of the fixture, relative to its root.
var SpecRepoFiles = []string{
	"readme.md",
	"specification/readme.md",

	WidgetManager + "/tspconfig.yaml",
	WidgetManager + "/main.tsp",

	Management + "/tspconfig.yaml",
	Management + "/main.tsp",
	Management + "/client.tsp",
	NestedService + "/tspconfig.yaml",
	NestedService + "/foo.tsp",

	ResourceManager + "/readme.md",
	Preview + "/contoso.json",
	Preview + "/examples/Employees_Get.json",
	Preview + "/examples/Employees_Delete.json",
	Service1 + "/tspconfig.yaml",
	Service1 + "/main.tsp",
	SubService1 + "/tspconfig.yaml",
	SubService1 + "/foo.tsp",
	SubService2 + "/tspconfig.yaml",
	SubService2 + "/bar.tsp",

	DataPlane + "/readme.md",
	DataPlaneWidget + "/widgets.json",
	DataPlaneSvc + "/tspconfig.yaml",
	DataPlaneSubSvc + "/tspconfig.yaml",
	DataPlaneSubSvc + "/widget.tsp",
}

// SpecRepo writes the fixture into a fresh temporary directory and returns it.
//
// The layout has a legacy one-marker-per-project area (Contoso.*), a two-tier
// resource-manager area (Service1 with SubService1/2) and a two-tier
// data-plane area, plus readme.md files at the repository root and in
// "specification" for boundary checks.
func SpecRepo(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range SpecRepoFiles {
		WriteFile(t, root, rel, "")
	}
	return root
}

// WriteFile creates rel under root along with any missing parent folders.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}
