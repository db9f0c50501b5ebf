package lifecycle

import (
	"fmt"
	"net/http"
)

// Headers set by injection. Absent config fields never emit their header.
const (
	HeaderDeprecation = "Deprecation"
	HeaderSunset      = "Sunset"
	HeaderLink        = "Link"
	HeaderVersion     = "X-API-Version"
	HeaderReplacement = "X-API-Replacement"
	HeaderReason      = "X-API-Deprecation-Reason"
)

// RelationDeprecation is the default link relation for migration links
// (RFC 8288).
const RelationDeprecation = "deprecation"

// HTTPDate formats a timestamp as an RFC 7231 HTTP-date, e.g.
// "Wed, 21 Oct 2015 07:28:00 GMT". The value is converted to UTC before
// formatting, so input carrying a non-UTC offset yields a truthful GMT
// string.
func HTTPDate(ts Timestamp) (string, error) {
	t, err := ts.Time()
	if err != nil {
		return "", err
	}
	return t.UTC().Format(http.TimeFormat), nil
}

// LinkHeader formats an RFC 8288 Link header value, e.g.
// `<https://api.example.com/docs>; rel="deprecation"`. An empty rel defaults
// to RelationDeprecation. The URL is not escaped; callers supply a
// syntactically valid URL.
func LinkHeader(url, rel string) string {
	if rel == "" {
		rel = RelationDeprecation
	}
	return fmt.Sprintf(`<%s>; rel=%q`, url, rel)
}
