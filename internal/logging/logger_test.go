package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"nonsense": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := WithComponent(New(Config{Level: "warn", Output: &buf, Service: "urlfor"}), "helpers")

	logger.Info().Msg("dropped")
	logger.Warn().Str("setting", "static_root_url").Msg("deprecated")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single json entry, got %q: %v", buf.String(), err)
	}
	if entry["service"] != "urlfor" || entry["component"] != "helpers" || entry["message"] != "deprecated" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}
