package lifecycle

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the route-wrapping trigger strategy: a chi.Router whose verb
// methods wrap every registered handler so lifecycle headers for that
// route's pattern are injected before the handler runs. Route descends into
// subrouters and keeps the composed pattern, so registry keys match the
// full path ("/api/v1/users", not "/users").
//
// Handlers registered through methods this type does not wrap (Handle,
// Method, With, Group) bypass injection; use the Middleware strategy when
// that flexibility is needed.
type Router struct {
	chi.Router
	reg    *Registry
	prefix string
}

// NewRouter wraps r so that registered handlers inject lifecycle headers
// from reg.
func NewRouter(r chi.Router, reg *Registry) *Router {
	return &Router{Router: r, reg: reg}
}

func (rt *Router) wrap(method, pattern string, h http.HandlerFunc) http.HandlerFunc {
	key := rt.prefix + pattern
	return func(w http.ResponseWriter, r *http.Request) {
		rt.reg.InjectFor(w.Header(), method, key)
		h(w, r)
	}
}

func (rt *Router) Get(pattern string, h http.HandlerFunc) {
	rt.Router.Get(pattern, rt.wrap(http.MethodGet, pattern, h))
}

func (rt *Router) Post(pattern string, h http.HandlerFunc) {
	rt.Router.Post(pattern, rt.wrap(http.MethodPost, pattern, h))
}

func (rt *Router) Put(pattern string, h http.HandlerFunc) {
	rt.Router.Put(pattern, rt.wrap(http.MethodPut, pattern, h))
}

func (rt *Router) Patch(pattern string, h http.HandlerFunc) {
	rt.Router.Patch(pattern, rt.wrap(http.MethodPatch, pattern, h))
}

func (rt *Router) Delete(pattern string, h http.HandlerFunc) {
	rt.Router.Delete(pattern, rt.wrap(http.MethodDelete, pattern, h))
}

func (rt *Router) Head(pattern string, h http.HandlerFunc) {
	rt.Router.Head(pattern, rt.wrap(http.MethodHead, pattern, h))
}

func (rt *Router) Options(pattern string, h http.HandlerFunc) {
	rt.Router.Options(pattern, rt.wrap(http.MethodOptions, pattern, h))
}

// Route mounts a lifecycle-aware subrouter at pattern. The subrouter passed
// to fn composes pattern onto its registry keys.
func (rt *Router) Route(pattern string, fn func(r chi.Router)) chi.Router {
	sub := &Router{Router: chi.NewRouter(), reg: rt.reg, prefix: rt.prefix + pattern}
	if fn != nil {
		fn(sub)
	}
	rt.Router.Mount(pattern, sub)
	return sub
}
