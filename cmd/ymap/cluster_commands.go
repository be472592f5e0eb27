package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"ymap/internal/channel"
	"ymap/internal/config"
	"ymap/internal/export"
	"ymap/internal/filter"
)

func newClusterCommand(ctx *commandContext) *cobra.Command {
	var jsonPath string
	var cluster string
	var minSubscribers int
	var outputPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Extract one cluster from the snapshot JSON",
		Long: "Keeps channels whose clusterName matches exactly (case matters) " +
			"and whose subscriber count meets the floor, then writes them in " +
			"the full 9-column export schema.",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ctx.resolvePath(jsonPath, (*config.Config).SnapshotPath)
			if err != nil {
				return err
			}
			channels, err := channel.Load(source)
			if err != nil {
				return err
			}

			matched := filter.MatchCluster(channels, cluster, minSubscribers)
			out := cmd.OutOrStdout()

			if asJSON {
				reportMatches(out, len(matched))
				return writeJSON(cmd, matched)
			}

			dest := strings.TrimSpace(outputPath)
			if dest == "" {
				dest = export.OutputName(cluster, minSubscribers)
			}
			if err := export.SaveChannels(dest, matched); err != nil {
				return err
			}

			reportMatches(out, len(matched))
			fmt.Fprintf(out, "Дані збережено у %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json-path", "", "Snapshot JSON path (default from config)")
	cmd.Flags().StringVar(&cluster, "cluster", "", "Exact clusterName to extract")
	cmd.Flags().IntVar(&minSubscribers, "min-subscribers", 0, "Inclusive subscriber floor")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default derived from the cluster name)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print matches as JSON instead of writing CSV")
	_ = cmd.MarkFlagRequired("cluster")
	return cmd
}

func newClusterCSVCommand(ctx *commandContext) *cobra.Command {
	var csvPath string
	var cluster string
	var minSubscribers int
	var outputPath string

	cmd := &cobra.Command{
		Use:   "cluster-csv",
		Short: "Extract one cluster from an existing CSV export",
		Long: "Re-filters a previously exported CSV by exact clusterName and " +
			"subscriber floor, passing matching rows through verbatim. A run " +
			"with no matches still writes a header-only CSV.",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ctx.resolvePath(csvPath, (*config.Config).ExportPath)
			if err != nil {
				return err
			}
			table, err := export.ReadTable(source)
			if err != nil {
				return err
			}
			filtered, err := table.FilterCluster(cluster, minSubscribers)
			if err != nil {
				return err
			}

			dest := strings.TrimSpace(outputPath)
			if dest == "" {
				dest = export.OutputName(cluster, minSubscribers)
			}
			if err := filtered.Save(dest); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			reportMatches(out, len(filtered.Rows))
			fmt.Fprintf(out, "Дані збережено у %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv-path", "", "Source CSV path (default from config)")
	cmd.Flags().StringVar(&cluster, "cluster", "", "Exact clusterName to extract")
	cmd.Flags().IntVar(&minSubscribers, "min-subscribers", 0, "Inclusive subscriber floor")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output CSV path (default derived from the cluster name)")
	_ = cmd.MarkFlagRequired("cluster")
	return cmd
}

func reportMatches(out io.Writer, count int) {
	if count == 0 {
		fmt.Fprintln(out, "Збігів не знайдено.")
		return
	}
	fmt.Fprintf(out, "Знайдено збігів: %d\n", count)
}
