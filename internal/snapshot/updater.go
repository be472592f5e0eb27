// Package snapshot keeps the local dataset file in sync with the remote
// endpoint, replacing it only when the content hash changes and backing
// up the previous bytes first.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"ymap/internal/fileutil"
)

// HTTPDoer describes the HTTP client used by the updater.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Updater fetches the remote dataset and replaces the local snapshot when
// its content hash changes.
type Updater struct {
	URL    string
	Path   string
	Client HTTPDoer
	Now    func() time.Time
}

// Result reports what an update run did.
type Result struct {
	RunID      string
	StartedAt  time.Time
	Changed    bool
	DryRun     bool
	OldHash    string
	NewHash    string
	BackupPath string
	Bytes      int64
}

const backupTimeFormat = "20060102_150405"

// Run performs one update. The fetch and hash comparison happen before
// any write; a network error or non-200 response leaves the local file
// untouched. With dryRun the comparison is reported but nothing is
// written. A file lock next to the snapshot serializes concurrent runs.
func (u *Updater) Run(ctx context.Context, dryRun bool) (*Result, error) {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	res := &Result{
		RunID:     uuid.NewString(),
		StartedAt: now,
		DryRun:    dryRun,
	}

	lock := flock.New(u.Path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire snapshot lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another update run holds the snapshot lock")
	}
	defer func() {
		_ = lock.Unlock()
	}()

	oldHash, err := fileutil.HashFile(u.Path)
	if err != nil {
		return nil, err
	}
	res.OldHash = oldHash

	body, err := u.fetch(ctx)
	if err != nil {
		return nil, err
	}
	res.NewHash = fileutil.SHA256Hex(body)
	res.Bytes = int64(len(body))

	if res.OldHash == res.NewHash {
		return res, nil
	}
	res.Changed = true
	if dryRun {
		return res, nil
	}

	if res.OldHash != "" {
		backupPath := u.Path + ".bak_" + now.Format(backupTimeFormat)
		if err := fileutil.CopyFile(u.Path, backupPath); err != nil {
			return nil, fmt.Errorf("write backup: %w", err)
		}
		res.BackupPath = backupPath
	}
	if err := os.WriteFile(u.Path, body, 0o644); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}
	return res, nil
}

func (u *Updater) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := u.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch snapshot: unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}
	return body, nil
}
