package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ymap/internal/config"
	"ymap/internal/history"
	"ymap/internal/snapshot"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var urlFlag string
	var snapshotFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Fetch the remote dataset and refresh the local snapshot",
		Long: "Fetches the channel dataset, compares its SHA256 hash against the " +
			"local snapshot, and replaces the file only when upstream content " +
			"changed — writing a timestamped backup of the previous bytes first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			remoteURL := strings.TrimSpace(urlFlag)
			if remoteURL == "" {
				remoteURL = cfg.Remote.URL
			}
			path, err := ctx.resolvePath(snapshotFlag, (*config.Config).SnapshotPath)
			if err != nil {
				return err
			}

			updater := &snapshot.Updater{
				URL:  remoteURL,
				Path: path,
				Client: &http.Client{
					Timeout: time.Duration(cfg.Remote.TimeoutSeconds) * time.Second,
				},
			}
			res, err := updater.Run(cmd.Context(), dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			stamp := res.StartedAt.Format("2006-01-02 15:04:05")
			switch {
			case !res.Changed:
				fmt.Fprintf(out, "[%s] Змін не виявлено. Локальний файл актуальний.\n", stamp)
			case res.DryRun:
				fmt.Fprintf(out, "[%s] Виявлено зміни (пробний запуск, файл не записано).\n", stamp)
			default:
				fmt.Fprintf(out, "[%s] Файл оновлено.\n", stamp)
			}
			if res.Changed {
				if res.OldHash != "" {
					fmt.Fprintf(out, "Старий хеш: %s\n", res.OldHash)
				}
				fmt.Fprintf(out, "Новий хеш: %s\n", res.NewHash)
				if res.BackupPath != "" {
					fmt.Fprintf(out, "Шлях до бекапу: %s\n", res.BackupPath)
				}
			}

			if cfg.History.Enabled && !res.DryRun {
				recordRun(ctx, cfg, res)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&urlFlag, "url", "", "Remote dataset URL (default from config)")
	cmd.Flags().StringVar(&snapshotFlag, "snapshot", "", "Local snapshot path (default from config)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compare hashes without writing anything")
	return cmd
}

// recordRun appends the run to the history ledger. Ledger problems are
// logged and never fail an otherwise successful update.
func recordRun(ctx *commandContext, cfg *config.Config, res *snapshot.Result) {
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		ctx.log().Warn("open history ledger", "path", cfg.History.Path, "error", err)
		return
	}
	defer store.Close()

	run := history.Run{
		ID:         res.RunID,
		StartedAt:  res.StartedAt,
		Changed:    res.Changed,
		OldHash:    res.OldHash,
		NewHash:    res.NewHash,
		BackupPath: res.BackupPath,
		Bytes:      res.Bytes,
	}
	if err := store.Record(context.Background(), run); err != nil {
		ctx.log().Warn("record update run", "error", err)
	}
}
