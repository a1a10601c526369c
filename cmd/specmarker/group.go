package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group [files...]",
		Short: "Group changed files by the marker folders that govern them",
		Long: `Group reads changed file paths, relative to the repository root, and prints
each marker folder followed by the files that led to it. Paths come from
the arguments, or from stdin (one per line) when no arguments or "-" are given.`,
		Example: `git diff --name-only main... | specmarker group -b specification --all
specmarker group -p readme specification/widget/resource-manager/preview/2024-01-01/widget.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(args) == 0 || slices.Contains(args, "-") {
				stdinFiles, err := readFileList(cmd.InOrStdin())
				if err != nil {
					return err
				}
				files = append(slices.DeleteFunc(slices.Clone(args), func(a string) bool { return a == "-" }), stdinFiles...)
			}

			opts, err := settings.GroupOptions()
			if err != nil {
				return err
			}
			opts.Logger = logger

			allowed := changeFilter.FilterPaths(files)
			if dropped := len(files) - len(allowed); dropped > 0 {
				logger.Debug("filtered changed files", "dropped", dropped)
			}

			result, err := changeGrouper.Group(allowed, opts)
			if err != nil {
				return err
			}
			logger.Debug("grouped", "files", len(allowed), "folders", result.Len())

			return writeGroups(cmd.OutOrStdout(), result, settings.Format)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("all", "a", false, "report every marker folder up to the boundary inside tiered layouts")
	flags.StringSlice("tier-marker", nil, "folder names that introduce a tiered layout (default resource-manager,data-plane)")
	flags.Bool("skip-missing", false, "drop files whose folder no longer exists instead of failing")
	flags.StringSlice("ignore", nil, "glob of changed files to ignore (repeatable)")
	flags.StringSlice("ext", nil, "only consider changed files with these extensions (repeatable)")

	return cmd
}

// readFileList reads one path per line, skipping blank lines.
func readFileList(r io.Reader) ([]string, error) {
	var files []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file list: %w", err)
	}
	return files, nil
}
