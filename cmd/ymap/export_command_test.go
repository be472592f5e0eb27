package main

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
)

func TestExportCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeSnapshot(t, `[
		{"channelName":"Кухня","originalUrl":"u1","channelCategories":["Food","Lifestyle"],"statistic":{"subscribersCount":"1200"}},
		{"originalUrl":"u2"}
	]`)

	out, _, err := runCLI(t, []string{"export"}, env.configPath)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Готово. Записано 2 каналів.")

	f, err := os.Open(env.cfg.ExportPath())
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	if records[0][0] != "channelName" || len(records[0]) != 9 {
		t.Fatalf("header = %v", records[0])
	}
	if records[1][5] != "Food,Lifestyle" {
		t.Fatalf("channelCategories join = %q", records[1][5])
	}
	// Input order preserved, missing fields exported empty.
	if records[2][0] != "" || records[2][1] != "u2" {
		t.Fatalf("second row = %v", records[2])
	}
}

func TestExportCommandMissingSnapshot(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"export"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "не знайдено") {
		t.Fatalf("expected missing-file error, got %v", err)
	}
}
