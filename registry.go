package lifecycle

import (
	"fmt"
	"net/http"
	"strings"
)

// Registry is the side-table from route identity to lifecycle configuration.
// Routes are identified by HTTP method plus router pattern (e.g. GET
// "/api/v1/users/{id}"), which is what both chi and gorilla/mux expose at
// response time.
//
// Attach all configuration before the server starts serving; the registry is
// read-only afterwards and safe for concurrent lookup without locking.
type Registry struct {
	routes map[string]map[Kind]Config
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{routes: make(map[string]map[Kind]Config)}
}

func routeKey(method, pattern string) string {
	return strings.ToUpper(method) + " " + pattern
}

// Attach validates cfg and records it for the route under kind. Kinds are
// cumulative: attaching KindSunset does not disturb an earlier
// KindDeprecated record. Attaching the same kind twice to one route is an
// error; records are write-once.
func (reg *Registry) Attach(kind Kind, method, pattern string, cfg Config) error {
	if !validKind(kind) {
		return fmt.Errorf("lifecycle: unknown kind %q", kind)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	key := routeKey(method, pattern)
	kinds := reg.routes[key]
	if kinds == nil {
		kinds = make(map[Kind]Config)
		reg.routes[key] = kinds
	}
	if _, ok := kinds[kind]; ok {
		return fmt.Errorf("lifecycle: %s config already attached to %s", kind, key)
	}
	kinds[kind] = cfg
	return nil
}

// Deprecated attaches cfg under KindDeprecated.
func (reg *Registry) Deprecated(method, pattern string, cfg Config) error {
	return reg.Attach(KindDeprecated, method, pattern, cfg)
}

// Sunset attaches cfg under KindSunset.
func (reg *Registry) Sunset(method, pattern string, cfg Config) error {
	return reg.Attach(KindSunset, method, pattern, cfg)
}

// Versioned attaches cfg under KindVersioned.
func (reg *Registry) Versioned(method, pattern string, cfg Config) error {
	return reg.Attach(KindVersioned, method, pattern, cfg)
}

// Configs returns the per-kind configuration attached to the route. The
// result is a copy; it is empty (non-nil) when nothing is attached. Lookup
// never fails.
func (reg *Registry) Configs(method, pattern string) map[Kind]Config {
	out := make(map[Kind]Config)
	for kind, cfg := range reg.routes[routeKey(method, pattern)] {
		out[kind] = cfg
	}
	return out
}

// InjectFor injects headers for every config attached to the route, in the
// fixed order deprecated, sunset, versioned. When two kinds set the same
// header, the later one wins. Unknown routes are a no-op.
func (reg *Registry) InjectFor(h http.Header, method, pattern string) {
	kinds := reg.routes[routeKey(method, pattern)]
	if len(kinds) == 0 {
		return
	}
	for _, kind := range kindOrder {
		if cfg, ok := kinds[kind]; ok {
			Inject(h, cfg)
		}
	}
}
