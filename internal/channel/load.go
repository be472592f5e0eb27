package channel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotArray reports a well-formed JSON document whose top level is not
// the expected array of channel objects.
var ErrNotArray = errors.New("очікується масив об'єктів у JSON")

// Load reads a snapshot file and decodes the channel array.
func Load(path string) ([]Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("файл %s не знайдено", path)
		}
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	channels, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("помилка читання JSON (%s): %w", path, err)
	}
	return channels, nil
}

// Decode parses a raw snapshot body into channel records.
func Decode(data []byte) ([]Channel, error) {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		var probe any
		err := json.Unmarshal(trimmed, &probe)
		return nil, fmt.Errorf("не вдалося прочитати JSON: %w", err)
	}
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotArray
	}
	var channels []Channel
	if err := json.Unmarshal(trimmed, &channels); err != nil {
		return nil, fmt.Errorf("не вдалося прочитати JSON: %w", err)
	}
	return channels, nil
}
