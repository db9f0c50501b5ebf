package logger

import (
	"log/slog"
	"testing"

	"github.com/arkline/lifecycle/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestNewReturnsLogger(t *testing.T) {
	l := New(config.Logging{Level: "debug", Service: "test"})
	if l == nil {
		t.Fatal("expected logger")
	}
}
