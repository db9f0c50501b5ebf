package lifecycle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// InjectHeaders is the explicit trigger strategy: handlers that opt in call
// it with their own ResponseWriter and Request, and headers for the matched
// route are injected immediately. If the request carries no resolvable
// route (or no configuration is attached), nothing happens — lifecycle
// headers are an enhancement, never an error.
func (reg *Registry) InjectHeaders(w http.ResponseWriter, r *http.Request) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		return
	}
	reg.InjectFor(w.Header(), r.Method, pattern)
}
