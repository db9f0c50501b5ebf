package httpmw

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arkline/lifecycle"
)

// captureLogs swaps the default slog logger for one writing JSON to a
// buffer, restoring it when the test ends.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggerPreservesStatus(t *testing.T) {
	captureLogs(t)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rec.Code)
	}
}

func TestLoggerFlagsDeprecatedResponses(t *testing.T) {
	buf := captureLogs(t)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(lifecycle.HeaderDeprecation, "Mon, 15 Jan 2024 00:00:00 GMT")
		_, _ = w.Write([]byte(`{"users":[]}`))
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var record struct {
		Status     int    `json:"status"`
		Bytes      int    `json:"bytes"`
		Deprecated bool   `json:"deprecated"`
		Path       string `json:"path"`
	}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log record is not JSON: %v", err)
	}

	if !record.Deprecated {
		t.Error("expected deprecated=true for response with Deprecation header")
	}
	if record.Status != http.StatusOK {
		t.Errorf("expected status 200, got %d", record.Status)
	}
	if record.Bytes != len(`{"users":[]}`) {
		t.Errorf("expected %d bytes, got %d", len(`{"users":[]}`), record.Bytes)
	}
	if record.Path != "/api/v1/users" {
		t.Errorf("expected path /api/v1/users, got %q", record.Path)
	}
}

func TestLoggerOmitsFlagOnCurrentRoutes(t *testing.T) {
	buf := captureLogs(t)

	handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v2/users", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var record struct {
		Deprecated bool `json:"deprecated"`
	}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log record is not JSON: %v", err)
	}
	if record.Deprecated {
		t.Error("expected deprecated=false for response without Deprecation header")
	}
}
