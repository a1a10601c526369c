package main

import (
	"github.com/spf13/cobra"
)

func newParentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parents <folder>",
		Short: "List the marker folders at and above a folder, nearest first",
		Example: `specmarker parents specification/widget/resource-manager/Microsoft.Widget/Service/Sub -b specification
specmarker parents specification/widget/data-plane/Widgets -p readme -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := settings.MarkerPattern()
			if err != nil {
				return err
			}

			folders, err := markerScanner.Parents(args[0], p, settings.Boundary)
			if err != nil {
				return err
			}
			logger.Debug("scanned", "folder", args[0], "found", len(folders))

			return writeFolders(cmd.OutOrStdout(), folders, settings.Format)
		},
	}
}
