// Package export writes channel records to the CSV schemas downstream
// sheets consume, and reads an existing export back for re-filtering.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ymap/internal/channel"
	"ymap/internal/textutil"
)

// Columns is the full snapshot export schema, in feed field order.
var Columns = []string{
	"channelName",
	"originalUrl",
	"subscribersCount",
	"viewsCount",
	"videosCount",
	"channelCategories",
	"definedCategories",
	"clusterName",
	"inferredClusterName",
}

// FilterColumns is the rich filter's narrower schema. definedCategories
// is joined with "; " here while the full export joins with "," —
// consumers of each file rely on its form, so the mismatch stays.
var FilterColumns = []string{
	"channelName",
	"originalUrl",
	"subscribersCount",
	"viewsCount",
	"videosCount",
	"clusterName",
	"inferredClusterName",
	"definedCategories",
}

// Row maps a channel onto the full export schema.
func Row(ch channel.Channel) []string {
	return []string{
		ch.ChannelName,
		ch.OriginalURL,
		ch.Statistic.SubscribersCount.String(),
		ch.Statistic.ViewsCount.String(),
		ch.Statistic.VideosCount.String(),
		ch.ChannelCategories.Join(","),
		ch.DefinedCategories.Join(","),
		ch.ClusterName,
		ch.InferredClusterName,
	}
}

// WriteChannels writes the full export (header plus one row per channel,
// input order preserved) to w.
func WriteChannels(w io.Writer, channels []channel.Channel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ch := range channels {
		if err := cw.Write(Row(ch)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFiltered writes the rich filter's 8-column CSV to w.
func WriteFiltered(w io.Writer, channels []channel.Channel) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(FilterColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, ch := range channels {
		row := []string{
			ch.ChannelName,
			ch.OriginalURL,
			ch.Statistic.SubscribersCount.String(),
			ch.Statistic.ViewsCount.String(),
			ch.Statistic.VideosCount.String(),
			ch.ClusterName,
			ch.InferredClusterName,
			ch.DefinedCategories.Join("; "),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveChannels writes the full export to path, creating parent
// directories as needed.
func SaveChannels(path string, channels []channel.Channel) error {
	return saveCSV(path, func(f *os.File) error {
		return WriteChannels(f, channels)
	})
}

// SaveFiltered writes the rich filter export to path.
func SaveFiltered(path string, channels []channel.Channel) error {
	return saveCSV(path, func(f *os.File) error {
		return WriteFiltered(f, channels)
	})
}

func saveCSV(path string, write func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// OutputName derives a CSV file name for a single-cluster filter from
// the cluster label and subscriber floor.
func OutputName(cluster string, minSubscribers int) string {
	return fmt.Sprintf("%s_min%d.csv", textutil.SanitizeToken(cluster, "cluster"), minSubscribers)
}
