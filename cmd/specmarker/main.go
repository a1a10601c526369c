// Package main implements the specmarker command line tool and MCP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/specmarker/internal/config"
	"github.com/taigrr/specmarker/internal/filesystem"
	"github.com/taigrr/specmarker/internal/grouper"
	"github.com/taigrr/specmarker/internal/pathfilter"
	"github.com/taigrr/specmarker/internal/scanner"
)

// rootArgAnnotation marks commands whose first argument is the repository root.
const rootArgAnnotation = "specmarker/root-arg"

var (
	settings      *config.Config
	logger        *log.Logger
	repo          *filesystem.Service
	markerScanner *scanner.Scanner
	changeGrouper *grouper.Grouper
	changeFilter  *pathfilter.PathFilter
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "specmarker",
		Short: "Find the project folders that govern changed specification files",
		Long: `specmarker maps changed files inside a specification repository to the
nearest folders containing a marker file (tspconfig.yaml, readme.md, ...).
A release pipeline uses the mapping to decide which project configurations
must be processed again.

Inside resource-manager and data-plane layouts, --all reports every marker
folder up to the boundary so that both a service and its sub-service are
notified.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[rootArgAnnotation] != "" && len(args) > 0 {
				if err := cmd.Flags().Set("root", args[0]); err != nil {
					return err
				}
			}
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return initServices(cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: <root>/"+config.FileName+")")
	flags.String("root", ".", "specification repository root")
	flags.StringP("pattern", "p", "typespec", "marker pattern: typespec, readme, a configured name, glob:<glob> or a regex")
	flags.StringP("boundary", "b", "", "folder at which the upward search stops (never reported)")
	flags.StringP("format", "o", config.FormatText, "output format: text, json or yaml")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newParentsCmd(), newGroupCmd(), newServeCmd())

	return cmd
}

// initServices wires the repository services for cfg.
func initServices(cfg *config.Config) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "specmarker",
	})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("invalid repository root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("repository root is not a directory: %s", cfg.Root)
	}

	settings = cfg
	repo = filesystem.New(cfg.Root)
	markerScanner = scanner.New(repo)
	changeGrouper = grouper.New(markerScanner)
	changeFilter = pathfilter.New(&cfg.Filter)

	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}
	logger.Debug("repository", "root", repo.RepoRoot(), "pattern", cfg.Pattern, "boundary", cfg.Boundary)

	return nil
}
