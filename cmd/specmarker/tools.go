package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FindParentsInput contains parameters for listing marker folders above a folder.
	FindParentsInput struct {
		Folder   string `json:"folder" jsonschema:"Folder relative to the repository root"`
		Pattern  string `json:"pattern,omitempty" jsonschema:"Marker pattern: typespec, readme, glob:<glob> or a regex (default: configured pattern)"`
		Boundary string `json:"boundary,omitempty" jsonschema:"Folder at which the search stops; never reported (default: configured boundary)"`
	}

	// FindParentsOutput contains marker folders, nearest first.
	FindParentsOutput struct {
		Folders []string `json:"folders"`
	}

	// GroupChangesInput contains parameters for grouping changed files.
	GroupChangesInput struct {
		Files       []string `json:"files" jsonschema:"Changed file paths relative to the repository root"`
		Pattern     string   `json:"pattern,omitempty" jsonschema:"Marker pattern: typespec, readme, glob:<glob> or a regex (default: configured pattern)"`
		Boundary    string   `json:"boundary,omitempty" jsonschema:"Folder at which the search stops; never reported (default: configured boundary)"`
		CollectAll  bool     `json:"collectAll,omitempty" jsonschema:"Report every marker folder inside resource-manager/data-plane layouts (default: false)"`
		SkipMissing bool     `json:"skipMissing,omitempty" jsonschema:"Drop files whose folder no longer exists instead of failing (default: false)"`
	}

	// MarkerGroup is one marker folder with the files that led to it.
	MarkerGroup struct {
		Folder string   `json:"folder"`
		Files  []string `json:"files"`
	}

	// GroupChangesOutput contains marker folders in discovery order.
	GroupChangesOutput struct {
		Groups  []MarkerGroup `json:"groups"`
		Ignored int           `json:"ignored,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_parents",
		Description: "List the folders at and above a folder that directly contain a marker file (tspconfig.yaml by default), nearest first. Fails if the folder does not exist.",
	}, handleFindParents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "group_changes",
		Description: "Group changed files by the marker folders that govern them. With collectAll, files under resource-manager or data-plane are attached to every marker folder up to the boundary; otherwise to the nearest one only.",
	}, handleGroupChanges)
}
