package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// isoLayouts are tried in order when parsing textual timestamps. RFC 3339
// covers the common case including a trailing Z or a numeric offset; the
// remaining layouts accept offset-less and date-only input, which is read
// as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Timestamp holds a point in time given either as a native time.Time or as
// ISO 8601 text. Text is parsed lazily; Config.Validate surfaces parse
// failures at attachment time. The zero Timestamp means "not set".
type Timestamp struct {
	t   time.Time
	raw string
	set bool
}

// At wraps a native time value.
func At(t time.Time) Timestamp { return Timestamp{t: t, set: true} }

// ISO wraps ISO 8601 text, e.g. "2024-01-15T00:00:00Z".
func ISO(raw string) Timestamp { return Timestamp{raw: raw, set: true} }

// IsZero reports whether the timestamp was never set.
func (ts Timestamp) IsZero() bool { return !ts.set }

// Time resolves the timestamp to a time.Time, parsing textual input.
func (ts Timestamp) Time() (time.Time, error) {
	if !ts.set {
		return time.Time{}, errors.New("timestamp not set")
	}
	if ts.raw == "" {
		return ts.t, nil
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, ts.raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as ISO 8601", ts.raw)
}

// UnmarshalYAML reads a YAML scalar as ISO 8601 text.
func (ts *Timestamp) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*ts = ISO(raw)
	return nil
}
