// Package lifecycle adds API lifecycle metadata — deprecation timestamps,
// sunset dates, migration links, version identifiers — to HTTP responses as
// standard headers (RFC 8594 Deprecation/Sunset, RFC 8288 Link).
//
// Lifecycle configuration is declared per route at startup and recorded in a
// Registry. At response time one of three interchangeable strategies injects
// the headers: a router-wide middleware, a route-wrapping router, or an
// explicit call inside the handler. All three produce identical output; see
// Setup.
package lifecycle

import (
	"fmt"
)

// Kind names an independent lifecycle configuration slot on a route. A route
// may carry one config per kind; kinds are cumulative, not merged.
type Kind string

const (
	KindDeprecated Kind = "deprecated"
	KindSunset     Kind = "sunset"
	KindVersioned  Kind = "versioned"
)

// kindOrder fixes the injection order when a route carries multiple kinds.
// On header collisions the last kind injected wins.
var kindOrder = []Kind{KindDeprecated, KindSunset, KindVersioned}

func validKind(k Kind) bool {
	for _, known := range kindOrder {
		if k == known {
			return true
		}
	}
	return false
}

// Config describes the lifecycle of one route. All fields are optional and
// independent; absent fields produce no header. A Config is immutable once
// attached to a Registry.
type Config struct {
	DeprecatedAt Timestamp `yaml:"deprecated_at"` // when the route became deprecated
	SunsetAt     Timestamp `yaml:"sunset_at"`     // when the route will be removed
	MigrationURL string    `yaml:"migration_url"` // migration guidance link
	Replacement  string    `yaml:"replacement"`   // e.g. "GET /v2/users"
	Reason       string    `yaml:"reason"`        // human-readable explanation
	Version      string    `yaml:"version"`       // API version identifier
}

// Validate checks that every timestamp field given as text parses. Non-date
// fields are not validated. An empty Config is valid.
func (c Config) Validate() error {
	if !c.DeprecatedAt.IsZero() {
		if _, err := c.DeprecatedAt.Time(); err != nil {
			return &ConfigError{Field: "deprecated_at", Err: err}
		}
	}
	if !c.SunsetAt.IsZero() {
		if _, err := c.SunsetAt.Time(); err != nil {
			return &ConfigError{Field: "sunset_at", Err: err}
		}
	}
	return nil
}

// ConfigError reports an invalid lifecycle configuration value. It is
// returned at attachment time, before any request is served.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lifecycle: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
