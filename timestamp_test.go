package lifecycle_test

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arkline/lifecycle"
)

func TestTimestamp_Zero(t *testing.T) {
	var ts lifecycle.Timestamp
	if !ts.IsZero() {
		t.Fatal("zero Timestamp must report IsZero")
	}
	if _, err := ts.Time(); err == nil {
		t.Fatal("expected error resolving unset timestamp")
	}
}

func TestTimestamp_Native(t *testing.T) {
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	got, err := lifecycle.At(want).Time()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTimestamp_TrailingZ(t *testing.T) {
	got, err := lifecycle.ISO("2024-06-15T10:30:00Z").Time()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTimestamp_UnmarshalYAML(t *testing.T) {
	var cfg lifecycle.Config
	input := `deprecated_at: "2024-01-15T00:00:00Z"` + "\n" + `version: "1.0"`
	if err := yaml.Unmarshal([]byte(input), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DeprecatedAt.IsZero() {
		t.Fatal("expected deprecated_at to be set")
	}
	got, err := cfg.DeprecatedAt.Time()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %v", got)
	}
	if cfg.Version != "1.0" {
		t.Fatalf("expected version '1.0', got %q", cfg.Version)
	}
}
