package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", Format: "json"}, &buf)
	l.Debug().Msg("hidden")
	l.Info().Str("state", "processing").Msg("toggle")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, `"state":"processing"`) || !strings.Contains(out, `"message":"toggle"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "text"}, &buf)
	l.Debug().Msg("tap")
	out := buf.String()
	if !strings.Contains(out, "tap") || strings.HasPrefix(out, "{") {
		t.Errorf("expected console output, got %q", out)
	}
}
