package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ymap/internal/channel"
	"ymap/internal/config"
	"ymap/internal/export"
	"ymap/internal/filter"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var jsonPath string
	var clusterArg string
	var inferredClusterArg string
	var minSubscribers int
	var maxSubscribers int
	var categoryArg string
	var keyword string
	var limit int
	var outputCSV string
	var format string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter channels by cluster, categories, and other predicates",
		Long: "Applies the selected predicates (combined with AND), sorts " +
			"matches by subscriber count descending, and prints one summary " +
			"line per shown channel. Comma-separated filter values match " +
			"case-insensitively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := ctx.resolvePath(jsonPath, (*config.Config).SnapshotPath)
			if err != nil {
				return err
			}
			channels, err := channel.Load(source)
			if err != nil {
				return err
			}

			crit := filter.Criteria{
				Clusters:         filter.Values(clusterArg),
				InferredClusters: filter.Values(inferredClusterArg),
				MinSubscribers:   minSubscribers,
				Categories:       filter.Values(categoryArg),
				Keyword:          keyword,
			}
			if cmd.Flags().Changed("max-subscribers") {
				crit.MaxSubscribers = &maxSubscribers
			}

			matched := filter.Apply(channels, crit)
			total := len(matched)
			shown := filter.Truncate(matched, limit)

			out := cmd.OutOrStdout()
			switch strings.ToLower(strings.TrimSpace(format)) {
			case "", "plain":
				for _, ch := range shown {
					name := ch.ChannelName
					if name == "" {
						name = "(без назви)"
					}
					fmt.Fprintf(out, "%s | %d підписників | %s | %s\n",
						name,
						ch.Statistic.SubscribersCount.Int(),
						ch.ClusterName,
						ch.OriginalURL,
					)
				}
			case "table":
				rows := make([][]string, 0, len(shown))
				for _, ch := range shown {
					rows = append(rows, []string{
						ch.ChannelName,
						strconv.Itoa(ch.Statistic.SubscribersCount.Int()),
						ch.ClusterName,
						ch.OriginalURL,
					})
				}
				headers := []string{"channelName", "subscribersCount", "clusterName", "originalUrl"}
				aligns := []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
			default:
				return fmt.Errorf("unsupported format %q (expected plain or table)", format)
			}

			fmt.Fprintf(out, "Знайдено каналів: %d\n", total)
			if total != len(shown) {
				fmt.Fprintf(out, "Показано: %d\n", len(shown))
			}

			if strings.TrimSpace(outputCSV) != "" {
				dest, err := config.ExpandPath(strings.TrimSpace(outputCSV))
				if err != nil {
					return err
				}
				if err := export.SaveFiltered(dest, shown); err != nil {
					return err
				}
				fmt.Fprintf(out, "Дані збережено у %s\n", dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json-path", "", "Snapshot JSON path (default from config)")
	cmd.Flags().StringVar(&clusterArg, "cluster", "", "clusterName allow-list, comma-separated")
	cmd.Flags().StringVar(&inferredClusterArg, "inferred-cluster", "", "inferredClusterName allow-list, comma-separated")
	cmd.Flags().IntVar(&minSubscribers, "min-subscribers", 0, "Inclusive minimum subscriber count")
	cmd.Flags().IntVar(&maxSubscribers, "max-subscribers", 0, "Inclusive maximum subscriber count (unset means unbounded)")
	cmd.Flags().StringVar(&categoryArg, "category", "", "definedCategories substrings, comma-separated")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Keyword searched in lastVideoTitles")
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum result rows (<=0 for unlimited)")
	cmd.Flags().StringVar(&outputCSV, "output-csv", "", "Write the shown results to this CSV path")
	cmd.Flags().StringVar(&format, "format", "plain", "Output format: plain or table")
	return cmd
}
