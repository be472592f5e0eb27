package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ymap/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "ymap")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.SnapshotPath() != filepath.Join(wantData, "y_map_channels.json") {
		t.Fatalf("unexpected snapshot path: %q", cfg.SnapshotPath())
	}
	if cfg.ExportPath() != filepath.Join(wantData, "channels_all.csv") {
		t.Fatalf("unexpected export path: %q", cfg.ExportPath())
	}
	if !cfg.History.Enabled {
		t.Fatal("expected history enabled by default")
	}
	if cfg.History.Path != filepath.Join(wantData, "update_history.db") {
		t.Fatalf("unexpected history path: %q", cfg.History.Path)
	}
	if cfg.Remote.TimeoutSeconds != 60 {
		t.Fatalf("unexpected timeout: %d", cfg.Remote.TimeoutSeconds)
	}
	if !strings.HasPrefix(cfg.Remote.URL, "https://") {
		t.Fatalf("unexpected remote url: %q", cfg.Remote.URL)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "ymap.toml")
	body := `
[paths]
data_dir = "~/data"
snapshot_file = "channels.json"

[remote]
url = "http://localhost:9099/feed"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected explicit config to resolve, got %q exists=%v", resolved, exists)
	}
	if cfg.Paths.DataDir != filepath.Join(tempHome, "data") {
		t.Fatalf("data dir not expanded: %q", cfg.Paths.DataDir)
	}
	if cfg.Paths.SnapshotFile != "channels.json" {
		t.Fatalf("snapshot file override lost: %q", cfg.Paths.SnapshotFile)
	}
	if cfg.Remote.URL != "http://localhost:9099/feed" {
		t.Fatalf("remote url override lost: %q", cfg.Remote.URL)
	}
	// Unset sections keep defaults.
	if cfg.Remote.TimeoutSeconds != 60 {
		t.Fatalf("timeout default lost: %d", cfg.Remote.TimeoutSeconds)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cases := []struct {
		name string
		body string
	}{
		{"bad url", "[remote]\nurl = \"ftp://example.com\"\n"},
		{"zero timeout", "[remote]\ntimeout_seconds = 0\n"},
		{"snapshot with separator", "[paths]\nsnapshot_file = \"a/b.json\"\n"},
		{"bad log format", "[logging]\nformat = \"yaml\"\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, _, _, err := config.Load(path); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[remote]") {
		t.Fatal("sample config missing [remote] section")
	}
}
