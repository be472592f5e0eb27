package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"ymap/internal/channel"
)

// Table is a loaded CSV export: header row plus data rows, kept verbatim.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads a previously exported CSV.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("файл %s не знайдено", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: порожній CSV без заголовка", path)
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Column returns the index of the named column, or -1.
func (t *Table) Column(name string) int {
	for i, col := range t.Header {
		if col == name {
			return i
		}
	}
	return -1
}

// FilterCluster returns a new table keeping rows whose clusterName column
// equals cluster exactly and whose subscribersCount column, coerced with
// the usual 0 fallback, meets minSubscribers. Rows pass through verbatim.
func (t *Table) FilterCluster(cluster string, minSubscribers int) (*Table, error) {
	clusterCol := t.Column("clusterName")
	subsCol := t.Column("subscribersCount")
	if clusterCol < 0 || subsCol < 0 {
		return nil, errors.New("CSV не містить колонок clusterName та subscribersCount")
	}

	out := &Table{Header: t.Header}
	for _, row := range t.Rows {
		if clusterCol >= len(row) || subsCol >= len(row) {
			continue
		}
		if row[clusterCol] != cluster {
			continue
		}
		if channel.ParseCount(row[subsCol]) < minSubscribers {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

// Save writes the table to path. A table with no rows still gets its
// header so downstream loaders see a valid, empty CSV.
func (t *Table) Save(path string) error {
	return saveCSV(path, func(f *os.File) error {
		cw := csv.NewWriter(f)
		if err := cw.Write(t.Header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
		for _, row := range t.Rows {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
