package channel

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Channel is one record of the channel map dataset.
type Channel struct {
	ChannelName         string     `json:"channelName,omitempty"`
	OriginalURL         string     `json:"originalUrl,omitempty"`
	Statistic           Statistic  `json:"statistic,omitempty"`
	ChannelCategories   StringList `json:"channelCategories,omitempty"`
	DefinedCategories   StringList `json:"definedCategories,omitempty"`
	ClusterName         string     `json:"clusterName,omitempty"`
	InferredClusterName string     `json:"inferredClusterName,omitempty"`
	LastVideoTitles     StringList `json:"lastVideoTitles,omitempty"`
}

// Statistic holds the per-channel counters.
type Statistic struct {
	SubscribersCount Count `json:"subscribersCount"`
	ViewsCount       Count `json:"viewsCount"`
	VideosCount      Count `json:"videosCount"`
}

// Count holds a statistic value as delivered upstream. The feed emits
// counts as JSON numbers, numeric strings, or null, so the raw textual
// form is preserved for export and only coerced on demand.
type Count struct {
	raw     string
	present bool
}

// CountOf returns a Count holding the given integer.
func CountOf(n int) Count {
	return Count{raw: strconv.Itoa(n), present: true}
}

func (c *Count) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*c = Count{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*c = Count{raw: s, present: true}
		return nil
	}
	*c = Count{raw: string(trimmed), present: true}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.present {
		return []byte("null"), nil
	}
	if _, err := strconv.Atoi(strings.TrimSpace(c.raw)); err == nil {
		return []byte(strings.TrimSpace(c.raw)), nil
	}
	return json.Marshal(c.raw)
}

// Int coerces the count to a non-negative integer. Missing, null, and
// non-numeric values all coerce to 0 rather than failing.
func (c Count) Int() int {
	if !c.present {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(c.raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// String returns the value as delivered, or "" when absent.
func (c Count) String() string {
	if !c.present {
		return ""
	}
	return c.raw
}

// ParseCount coerces a textual counter to a non-negative integer with a 0
// fallback, matching Count.Int for values read back from CSV.
func ParseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// StringList is a list field that tolerates null and scalar values in
// addition to arrays. Non-string elements keep their literal form.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*l = nil
		return nil
	}
	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		out := make(StringList, 0, len(items))
		for _, item := range items {
			out = append(out, rawText(item))
		}
		*l = out
		return nil
	}
	*l = StringList{rawText(trimmed)}
	return nil
}

// Join returns the elements joined with sep. A nil list joins to "".
func (l StringList) Join(sep string) string {
	return strings.Join(l, sep)
}

func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	}
	return string(raw)
}
