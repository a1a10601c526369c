package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [repo-root]",
		Short: "Run an MCP server over stdio exposing find_parents and group_changes",
		Long: `serve runs a Model Context Protocol server on stdin/stdout so that
MCP-compatible harnesses can ask which project folders govern a set of
changed files. Logs are written to stderr.`,
		Example:     `specmarker serve ~/src/api-specs -b specification`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{rootArgAnnotation: "true"},
		RunE:        runServer,
	}

	cmd.Flags().StringSlice("tier-marker", nil, "folder names that introduce a tiered layout (default resource-manager,data-plane)")
	cmd.Flags().Bool("skip-missing", false, "drop files whose folder no longer exists instead of failing")
	cmd.Flags().StringSlice("ignore", nil, "glob of changed files to ignore (repeatable)")
	cmd.Flags().StringSlice("ext", nil, "only consider changed files with these extensions (repeatable)")

	return cmd
}

func runServer(cmd *cobra.Command, args []string) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "specmarker",
		Version: version,
	}, nil)

	registerTools(server)

	logger.Info("serving", "root", repo.RepoRoot(), "pattern", settings.Pattern)
	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
