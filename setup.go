package lifecycle

import (
	"fmt"

	"github.com/go-chi/chi/v5"
)

// Strategy selects how lifecycle headers are triggered at response time.
// All strategies produce identical header output for the same route.
type Strategy string

const (
	// StrategyMiddleware wires a router-wide middleware (Middleware).
	StrategyMiddleware Strategy = "middleware"
	// StrategyRouteClass returns a route-wrapping Router (NewRouter).
	StrategyRouteClass Strategy = "route_class"
	// StrategyManual wires nothing; handlers call Registry.InjectHeaders
	// themselves.
	StrategyManual Strategy = "manual"
)

// ParseStrategy converts a configuration string into a Strategy, failing on
// unrecognized names.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyMiddleware, StrategyRouteClass, StrategyManual:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("lifecycle: unknown strategy %q (use %q, %q or %q)",
		s, StrategyMiddleware, StrategyRouteClass, StrategyManual)
}

// Setup wires the chosen trigger strategy onto r and returns the router to
// register routes on. For StrategyMiddleware that is r itself with the
// middleware installed; for StrategyRouteClass it is a wrapping Router; for
// StrategyManual it is r unchanged. An unknown strategy fails before
// anything is wired.
//
// Call Setup before registering routes: chi rejects middleware added after
// the first route.
func Setup(r chi.Router, reg *Registry, strategy Strategy) (chi.Router, error) {
	switch strategy {
	case StrategyMiddleware:
		r.Use(Middleware(reg))
		return r, nil
	case StrategyRouteClass:
		return NewRouter(r, reg), nil
	case StrategyManual:
		return r, nil
	}
	_, err := ParseStrategy(string(strategy))
	return nil, err
}
