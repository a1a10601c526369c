package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/specmarker/internal/marker"
)

func handleFindParents(ctx context.Context, req *mcp.CallToolRequest, input FindParentsInput) (*mcp.CallToolResult, FindParentsOutput, error) {
	folder := strings.TrimSpace(input.Folder)
	if folder == "" {
		return &mcp.CallToolResult{IsError: true}, FindParentsOutput{}, fmt.Errorf("folder cannot be empty")
	}

	p, err := resolvePattern(input.Pattern)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindParentsOutput{}, err
	}

	folders, err := markerScanner.Parents(folder, p, boundaryOrDefault(input.Boundary))
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindParentsOutput{}, err
	}

	return nil, FindParentsOutput{Folders: folders}, nil
}

func handleGroupChanges(ctx context.Context, req *mcp.CallToolRequest, input GroupChangesInput) (*mcp.CallToolResult, GroupChangesOutput, error) {
	if len(input.Files) == 0 {
		return &mcp.CallToolResult{IsError: true}, GroupChangesOutput{}, fmt.Errorf("files cannot be empty")
	}

	opts, err := settings.GroupOptions()
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GroupChangesOutput{}, err
	}
	opts.Pattern, err = resolvePattern(input.Pattern)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GroupChangesOutput{}, err
	}
	opts.Boundary = boundaryOrDefault(input.Boundary)
	opts.CollectAll = input.CollectAll
	opts.SkipMissing = opts.SkipMissing || input.SkipMissing
	opts.Logger = logger

	allowed := changeFilter.FilterPaths(input.Files)

	result, err := changeGrouper.Group(allowed, opts)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, GroupChangesOutput{}, err
	}

	groups := []MarkerGroup{}
	for _, folder := range result.Keys() {
		groups = append(groups, MarkerGroup{Folder: folder, Files: result.Files(folder)})
	}

	return nil, GroupChangesOutput{
		Groups:  groups,
		Ignored: len(input.Files) - len(allowed),
	}, nil
}

func resolvePattern(spec string) (marker.Pattern, error) {
	if strings.TrimSpace(spec) == "" {
		return settings.MarkerPattern()
	}
	return marker.Resolve(spec, settings.Patterns)
}

func boundaryOrDefault(boundary string) string {
	if b := strings.TrimSpace(boundary); b != "" {
		return b
	}
	return settings.Boundary
}
