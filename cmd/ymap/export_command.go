package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ymap/internal/channel"
	"ymap/internal/config"
	"ymap/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var jsonPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full snapshot to CSV",
		Long: "Writes every channel record as one row of the 9-column export " +
			"schema, preserving input order. No filtering, no sorting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ctx.resolvePath(jsonPath, (*config.Config).SnapshotPath)
			if err != nil {
				return err
			}
			dest, err := ctx.resolvePath(outputPath, (*config.Config).ExportPath)
			if err != nil {
				return err
			}

			channels, err := channel.Load(source)
			if err != nil {
				return err
			}
			if err := export.SaveChannels(dest, channels); err != nil {
				return err
			}

			ctx.log().Debug("export finished", "source", source, "dest", dest, "rows", len(channels))
			fmt.Fprintf(cmd.OutOrStdout(), "Готово. Записано %d каналів.\n", len(channels))
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json-path", "", "Snapshot JSON path (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default from config)")
	return cmd
}
