package lifecycle

import "net/http"

// Inject sets lifecycle headers from cfg on h. Each header is gated on its
// config field being present; absent fields emit nothing. Timestamp fields
// are assumed pre-validated (Config.Validate); a field that still fails to
// parse is skipped rather than failing the response.
func Inject(h http.Header, cfg Config) {
	if !cfg.DeprecatedAt.IsZero() {
		if v, err := HTTPDate(cfg.DeprecatedAt); err == nil {
			h.Set(HeaderDeprecation, v)
		}
	}
	if !cfg.SunsetAt.IsZero() {
		if v, err := HTTPDate(cfg.SunsetAt); err == nil {
			h.Set(HeaderSunset, v)
		}
	}
	if cfg.MigrationURL != "" {
		h.Set(HeaderLink, LinkHeader(cfg.MigrationURL, RelationDeprecation))
	}
	if cfg.Version != "" {
		h.Set(HeaderVersion, cfg.Version)
	}
	if cfg.Replacement != "" {
		h.Set(HeaderReplacement, cfg.Replacement)
	}
	if cfg.Reason != "" {
		h.Set(HeaderReason, cfg.Reason)
	}
}
