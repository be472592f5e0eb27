package channel_test

import (
	"encoding/json"
	"testing"

	"ymap/internal/channel"
)

func TestCountCoercion(t *testing.T) {
	cases := []struct {
		name string
		json string
		want int
		raw  string
	}{
		{"number", `123`, 123, "123"},
		{"numeric string", `"456"`, 456, "456"},
		{"padded string", `" 78 "`, 78, " 78 "},
		{"garbage string", `"abc"`, 0, "abc"},
		{"float string", `"1.5"`, 0, "1.5"},
		{"null", `null`, 0, ""},
		{"negative", `-5`, 0, "-5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c channel.Count
			if err := json.Unmarshal([]byte(tc.json), &c); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.json, err)
			}
			if got := c.Int(); got != tc.want {
				t.Fatalf("Int() = %d, want %d", got, tc.want)
			}
			if got := c.String(); got != tc.raw {
				t.Fatalf("String() = %q, want %q", got, tc.raw)
			}
		})
	}
}

func TestCountMissingField(t *testing.T) {
	var stat channel.Statistic
	if err := json.Unmarshal([]byte(`{"viewsCount": 10}`), &stat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stat.SubscribersCount.Int() != 0 {
		t.Fatalf("missing subscribersCount should coerce to 0, got %d", stat.SubscribersCount.Int())
	}
	if stat.SubscribersCount.String() != "" {
		t.Fatalf("missing subscribersCount should render empty, got %q", stat.SubscribersCount.String())
	}
	if stat.ViewsCount.Int() != 10 {
		t.Fatalf("viewsCount = %d, want 10", stat.ViewsCount.Int())
	}
}

func TestParseCount(t *testing.T) {
	if got := channel.ParseCount(" 42 "); got != 42 {
		t.Fatalf("ParseCount padded = %d, want 42", got)
	}
	if got := channel.ParseCount("abc"); got != 0 {
		t.Fatalf("ParseCount garbage = %d, want 0", got)
	}
	if got := channel.ParseCount(""); got != 0 {
		t.Fatalf("ParseCount empty = %d, want 0", got)
	}
}

func TestStringListShapes(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"array", `["Tech","Food"]`, "Tech,Food"},
		{"null", `null`, ""},
		{"scalar string", `"solo"`, "solo"},
		{"numeric elements", `[1,2]`, "1,2"},
		{"empty array", `[]`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l channel.StringList
			if err := json.Unmarshal([]byte(tc.json), &l); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.json, err)
			}
			if got := l.Join(","); got != tc.want {
				t.Fatalf("Join = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestChannelDecodeDefaults(t *testing.T) {
	raw := `[{"originalUrl":"https://example.com/c/1","statistic":{"subscribersCount":"1000"}}]`
	channels, err := channel.Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(channels) != 1 {
		t.Fatalf("expected 1 channel, got %d", len(channels))
	}
	ch := channels[0]
	if ch.ChannelName != "" {
		t.Fatalf("expected empty channelName, got %q", ch.ChannelName)
	}
	if ch.ClusterName != "" {
		t.Fatalf("expected empty clusterName, got %q", ch.ClusterName)
	}
	if ch.Statistic.SubscribersCount.Int() != 1000 {
		t.Fatalf("subscribers = %d, want 1000", ch.Statistic.SubscribersCount.Int())
	}
	if len(ch.DefinedCategories) != 0 {
		t.Fatalf("expected empty definedCategories, got %v", ch.DefinedCategories)
	}
}
